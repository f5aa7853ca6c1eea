package gpcollapse

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

//GPScorer caches the value-independent part of the posterior predictive
//log-pmf for one cluster, so repeated Eval calls against the same cluster
//state skip the Lgamma and log of the posterior hyperparameters.
type GPScorer struct {
	Score      float64
	PostAlpha  float64
	ScoreCoeff float64
}

//InitGPScorer will derive the scoring coefficients from the prior and the
//current cluster statistics. The scorer goes stale as soon as the cluster
//is mutated.
func InitGPScorer(prior *GPPrior, g *GPLike) *GPScorer {
	sc := new(GPScorer)
	post := prior.PlusGroup(g)
	sc.ScoreCoeff = -math.Log(1. + post.InvBeta)
	sc.Score = -Lgamma(post.Alpha) + post.Alpha*(math.Log(post.InvBeta)+sc.ScoreCoeff)
	sc.PostAlpha = post.Alpha
	return sc
}

//Eval will return the negative binomial log-pmf at value, in its posterior
//predictive form.
func (sc *GPScorer) Eval(value uint64) float64 {
	v := float64(value)
	return sc.Score + Lgamma(sc.PostAlpha+v) - LogFactorial(value) + sc.ScoreCoeff*v
}

//GPSampler draws counts from the posterior predictive of one cluster by
//ancestral sampling: the latent rate is fixed at init, Eval draws counts
//at that rate. Re-init to get an independent draw of the rate.
type GPSampler struct {
	Mean float64
}

//InitGPSampler will sample the latent Poisson rate from its posterior Gamma
func InitGPSampler(prior *GPPrior, g *GPLike, rng *rand.Rand) *GPSampler {
	s := new(GPSampler)
	post := prior.PlusGroup(g)
	gam := distuv.Gamma{Alpha: post.Alpha, Beta: post.InvBeta, Src: rng}
	s.Mean = gam.Rand()
	return s
}

//Eval will draw one Poisson count at the sampled rate
func (s *GPSampler) Eval(rng *rand.Rand) uint64 {
	pois := distuv.Poisson{Lambda: s.Mean, Src: rng}
	return uint64(pois.Rand())
}

//SampleValue will draw a single count from the posterior predictive of a cluster
func SampleValue(prior *GPPrior, g *GPLike, rng *rand.Rand) uint64 {
	s := InitGPSampler(prior, g, rng)
	return s.Eval(rng)
}

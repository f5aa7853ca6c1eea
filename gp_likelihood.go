package gpcollapse

import "math"

//GPLike will store the sufficient statistics for one count cluster
type GPLike struct {
	Count   uint64  // number of observations currently in the cluster
	Sum     uint64  // sum of the observed counts
	LogProd float64 // running sum of log(value!) over the observed counts
}

//Init will reset the statistics to those of an empty cluster
func (g *GPLike) Init() {
	g.Count = 0
	g.Sum = 0
	g.LogProd = 0.
}

//AddValue will fold one observed count into the cluster statistics
func (g *GPLike) AddValue(value uint64) {
	g.Count++
	g.Sum += value
	g.LogProd += LogFactorial(value)
}

//RemoveValue is the exact inverse of AddValue. The caller must only remove
//values it previously added and has not yet removed; removing anything else
//silently corrupts the statistics. There is no runtime check.
func (g *GPLike) RemoveValue(value uint64) {
	g.Count--
	g.Sum -= value
	g.LogProd -= LogFactorial(value)
}

//Merge will fold the statistics of source into g. Source is consumed by the
//merge; scoring it again afterward double counts its observations.
func (g *GPLike) Merge(source *GPLike) {
	g.Count += source.Count
	g.Sum += source.Sum
	g.LogProd += source.LogProd
}

//ScoreValue will return the posterior predictive log-probability of observing
//value next in this cluster. The hot path scores through a VectorizedScorer
//instead; this is the one-off form.
func (g *GPLike) ScoreValue(prior *GPPrior, value uint64) float64 {
	sc := InitGPScorer(prior, g)
	return sc.Eval(value)
}

//ScoreData will return the marginal log-likelihood of all observations
//currently folded into the cluster, from the closed-form Gamma-Poisson
//(negative binomial) decomposition.
func (g *GPLike) ScoreData(prior *GPPrior) float64 {
	post := prior.PlusGroup(g)
	score := Lgamma(post.Alpha) - Lgamma(prior.Alpha)
	score += prior.Alpha*math.Log(prior.InvBeta) - post.Alpha*math.Log(post.InvBeta)
	score += -g.LogProd
	return score
}

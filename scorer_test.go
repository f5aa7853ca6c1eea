package gpcollapse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestScorerEvalFormula(t *testing.T) {
	prior := InitGPPrior(1.0, 1.0)
	var g GPLike
	g.Init()
	g.AddValue(3)
	g.AddValue(5)
	sc := InitGPScorer(prior, &g)
	assert.Equal(t, 9.0, sc.PostAlpha)
	for _, v := range []uint64{0, 1, 4, 12} {
		fv := float64(v)
		want := -Lgamma(9.) + 9.*(math.Log(3.)-math.Log(4.)) +
			Lgamma(9.+fv) - LogFactorial(v) - math.Log(4.)*fv
		assert.InDelta(t, want, sc.Eval(v), 1e-12)
	}
}

func TestScorerEvalNormalizes(t *testing.T) {
	prior := InitGPPrior(1.0, 1.0)
	var g GPLike
	g.Init()
	g.AddValue(3)
	g.AddValue(5)
	sc := InitGPScorer(prior, &g)
	total := 0.
	for v := uint64(0); v < 200; v++ {
		total += math.Exp(sc.Eval(v))
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestSamplerMoments(t *testing.T) {
	prior := InitGPPrior(1.0, 1.0)
	var g GPLike
	g.Init()
	g.AddValue(3)
	g.AddValue(5)
	// posterior predictive mean is post.Alpha/post.InvBeta = 3
	rng := rand.New(rand.NewSource(13))
	total := 0.
	n := 20000
	for i := 0; i < n; i++ {
		total += float64(SampleValue(prior, &g, rng))
	}
	assert.InDelta(t, 3.0, total/float64(n), 0.1)
}

func TestSamplerFixedMean(t *testing.T) {
	prior := InitGPPrior(4.0, 2.0)
	var g GPLike
	g.Init()
	rng := rand.New(rand.NewSource(7))
	s := InitGPSampler(prior, &g, rng)
	mean := s.Mean
	assert.Greater(t, mean, 0.)
	s.Eval(rng)
	s.Eval(rng)
	assert.Equal(t, mean, s.Mean) // rate stays fixed across Eval calls
}

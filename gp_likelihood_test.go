package gpcollapse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddRemoveBalance(t *testing.T) {
	var g GPLike
	g.Init()
	for _, v := range []uint64{3, 5, 0, 7, 2, 11} {
		g.AddValue(v)
	}
	g.RemoveValue(0)
	g.RemoveValue(7)
	g.RemoveValue(11)

	var net GPLike
	net.Init()
	for _, v := range []uint64{3, 5, 2} {
		net.AddValue(v)
	}
	assert.Equal(t, net.Count, g.Count)
	assert.Equal(t, net.Sum, g.Sum)
	assert.InDelta(t, net.LogProd, g.LogProd, 1e-12)
}

func TestMergePartition(t *testing.T) {
	values := []uint64{4, 0, 9, 1, 6, 6, 2}
	var a, b, whole GPLike
	a.Init()
	b.Init()
	whole.Init()
	for i, v := range values {
		whole.AddValue(v)
		if i%2 == 0 {
			a.AddValue(v)
		} else {
			b.AddValue(v)
		}
	}
	a.Merge(&b)
	assert.Equal(t, whole.Count, a.Count)
	assert.Equal(t, whole.Sum, a.Sum)
	assert.InDelta(t, whole.LogProd, a.LogProd, 1e-12)
}

func TestPlusGroup(t *testing.T) {
	prior := InitGPPrior(1.0, 1.0)
	var g GPLike
	g.Init()
	g.AddValue(3)
	g.AddValue(5)
	assert.Equal(t, uint64(2), g.Count)
	assert.Equal(t, uint64(8), g.Sum)
	post := prior.PlusGroup(&g)
	assert.Equal(t, 9.0, post.Alpha)
	assert.Equal(t, 3.0, post.InvBeta)
}

func TestScoreDataClosedForm(t *testing.T) {
	prior := InitGPPrior(1.0, 1.0)
	var g GPLike
	g.Init()
	g.AddValue(3)
	g.AddValue(5)
	want := Lgamma(9.) - Lgamma(1.) + 1.*math.Log(1.) - 9.*math.Log(3.) -
		(LogFactorial(3) + LogFactorial(5))
	assert.InDelta(t, want, g.ScoreData(prior), 1e-12)
}

func TestScoreDataEmptyGroup(t *testing.T) {
	prior := InitGPPrior(2.5, 0.7)
	var g GPLike
	g.Init()
	assert.InDelta(t, 0., g.ScoreData(prior), 1e-12)
}

func TestScoreValueMatchesScorer(t *testing.T) {
	prior := InitGPPrior(1.5, 2.0)
	var g GPLike
	g.Init()
	for _, v := range []uint64{2, 2, 7, 0, 4} {
		g.AddValue(v)
	}
	sc := InitGPScorer(prior, &g)
	for v := uint64(0); v < 20; v++ {
		assert.Equal(t, sc.Eval(v), g.ScoreValue(prior, v))
	}
}

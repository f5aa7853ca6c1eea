package gpcollapse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogFactorial(t *testing.T) {
	assert.Equal(t, 0., LogFactorial(0))
	assert.Equal(t, 0., LogFactorial(1))
	assert.InDelta(t, math.Log(120.), LogFactorial(5), 1e-12)
	// table and Lgamma fallback must agree at the boundary
	assert.InDelta(t, Lgamma(64.), LogFactorial(63), 1e-12)
	assert.InDelta(t, Lgamma(101.), LogFactorial(100), 1e-12)
}

func TestLgamma(t *testing.T) {
	assert.InDelta(t, 0., Lgamma(1.), 1e-12)
	assert.InDelta(t, math.Log(24.), Lgamma(5.), 1e-12)
}

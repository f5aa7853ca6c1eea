package gpcollapse

import "math"

// log(n!) lookup for small counts, which dominate real count data.
var logFactorialTable [64]float64

func init() {
	for n := 2; n < len(logFactorialTable); n++ {
		logFactorialTable[n], _ = math.Lgamma(float64(n) + 1.)
	}
}

//Lgamma will return the log of the gamma function of x. X must be positive.
func Lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

//LogFactorial will return log(value!) for a nonnegative integer count.
func LogFactorial(value uint64) float64 {
	if value < uint64(len(logFactorialTable)) {
		return logFactorialTable[value]
	}
	return Lgamma(float64(value) + 1.)
}

package main

import (
	"flag"
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/emilyfertig/gpcollapse"
)

func main() {
	countArg := flag.String("m", "", "input counts (whitespace-separated nonnegative integers)")
	genArg := flag.Int("gen", 1000, "number of Gibbs sweeps to run")
	printFreqArg := flag.Int("pr", 100, "Frequency with which to print to the screen")
	clustArg := flag.Float64("a", 1.0, "clumpiness (DPP concentration) parameter for count clustering")
	shapeArg := flag.Float64("alpha", 1.0, "Gamma shape hyperparameter on the cluster rates")
	invScaleArg := flag.Float64("invbeta", 1.0, "Gamma inverse scale hyperparameter on the cluster rates")
	seedArg := flag.Uint64("seed", 0, "random seed (0 seeds from the clock)")
	flag.Parse()
	counts := gpcollapse.ReadCounts(*countArg)
	fmt.Println("SUCCESSFULLY READ IN ", len(counts), "COUNT OBSERVATIONS")
	seed := *seedArg
	if seed == 0 {
		seed = uint64(time.Now().UTC().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))
	prior := gpcollapse.InitGPPrior(*shapeArg, *invScaleArg)
	chain := gpcollapse.InitGPGibbs(counts, prior, *genArg, *printFreqArg, *clustArg, rng)
	start := time.Now()
	chain.Run()
	elapsed := time.Since(start)
	fmt.Println("COMPLETED ", *genArg, "GIBBS SWEEPS IN ", elapsed)
}

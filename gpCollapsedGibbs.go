package gpcollapse

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strconv"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//GPDPPGibbs is a struct to store the attributes of a collapsed DPP gibbs
//sampler for integer count data under the Gamma-Poisson model. It owns the
//cluster collection and keeps a VectorizedScorer in slot correspondence with
//it: every cluster mutation is followed by an UpdateGroup call, and cluster
//removal applies the same swap-and-pop renumbering on both sides.
type GPDPPGibbs struct {
	Data            []uint64
	Clusters        []*GPLike
	ClusterSites    [][]int
	SiteAssignments map[int]int
	Prior           *GPPrior
	Scorer          *VectorizedScorer
	Gen             int
	PrintFreq       int
	Alpha           float64
	Rng             *rand.Rand
	scoreBuf        []float64
}

//InitGPGibbs will initialize the parameters for the collapsed gibbs sampler.
func InitGPGibbs(data []uint64, prior *GPPrior, gen, print int, alpha float64, rng *rand.Rand) *GPDPPGibbs {
	gibbs := new(GPDPPGibbs)
	gibbs.Data = data
	gibbs.Prior = prior
	gibbs.Gen = gen
	gibbs.PrintFreq = print
	gibbs.Alpha = alpha
	gibbs.Rng = rng
	gibbs.Scorer = new(VectorizedScorer)
	gibbs.startingClusters()
	return gibbs
}

//ClusterString will return a string of the current set of clusters
func (chain *GPDPPGibbs) ClusterString() string {
	var buffer bytes.Buffer
	for _, sites := range chain.ClusterSites {
		buffer.WriteString("(")
		for ind, site := range sites {
			cur := strconv.Itoa(site)
			buffer.WriteString(cur)
			stop := len(sites) - 1
			if ind != stop {
				buffer.WriteString(",")
			}
		}
		buffer.WriteString(");")
	}
	return buffer.String()
}

//Run will run the Gibbs sweeps, printing progress and accumulating the mean
//co-assignment matrix for the summary
func (chain *GPDPPGibbs) Run() {
	nsites := len(chain.Data)
	assoc := mat.NewDense(nsites, nsites, nil)
	for gen := 0; gen <= chain.Gen; gen++ {
		chain.collapsedGibbsClusterUpdate()
		if chain.PrintFreq > 0 && gen%chain.PrintFreq == 0 {
			fmt.Println(gen, len(chain.Clusters), chain.ClusterString())
		}
		assoc.Add(assoc, chain.clusterAssociationMatrix())
	}
	assoc.Scale(1./float64(chain.Gen+1), assoc)
	chain.summarize(assoc)
}

func (chain *GPDPPGibbs) summarize(meanAssoc *mat.Dense) {
	fmt.Println("mean co-assignment frequencies:")
	matPrint(meanAssoc)
	fmt.Println("total marginal log-likelihood:", chain.Scorer.ScoreData(chain.Prior, chain.Clusters))
}

func (chain *GPDPPGibbs) clusterAssociationMatrix() *mat.Dense {
	nsites := len(chain.Data)
	m := mat.NewDense(nsites, nsites, nil)
	for site1 := 0; site1 < nsites; site1++ {
		for site2 := 0; site2 < nsites; site2++ {
			if chain.SiteAssignments[site1] == chain.SiteAssignments[site2] {
				m.Set(site1, site2, 1.)
			}
		}
	}
	return m
}

func (chain *GPDPPGibbs) collapsedGibbsClusterUpdate() {
	for site := range chain.SiteAssignments {
		chain.collapsedSiteClusterUpdate(site)
	}
}

//this will 'reseat' site i
func (chain *GPDPPGibbs) collapsedSiteClusterUpdate(site int) {
	value := chain.Data[site]
	slot := chain.SiteAssignments[site]
	if len(chain.ClusterSites[slot]) == 1 { // delete the cluster containing the current site if it is a singleton
		chain.removeCluster(slot)
	} else { // delete current site from its cluster and refresh its cached coefficients
		var newSlice []int
		for _, s := range chain.ClusterSites[slot] {
			if s != site {
				newSlice = append(newSlice, s)
			}
		}
		chain.ClusterSites[slot] = newSlice
		chain.Clusters[slot].RemoveValue(value)
		chain.Scorer.UpdateGroup(chain.Prior, slot, chain.Clusters[slot])
	}
	n := len(chain.Clusters)
	if cap(chain.scoreBuf) < n+1 {
		chain.scoreBuf = make([]float64, n+1)
	}
	scores := chain.scoreBuf[:n+1]
	for i := range scores {
		scores[i] = 0.
	}
	chain.Scorer.ScoreValue(value, scores)
	nsites := float64(len(chain.Data))
	for i := 0; i < n; i++ {
		scores[i] += math.Log(float64(len(chain.ClusterSites[i])) / (nsites + chain.Alpha - 1.))
	}
	var empty GPLike
	scores[n] = empty.ScoreValue(chain.Prior, value) + math.Log(chain.Alpha/(nsites+chain.Alpha-1.))
	total := floats.LogSumExp(scores)
	r := chain.Rng.Float64()
	cumprob := 0.
	newCluster := -1
	for k, v := range scores {
		cumprob += math.Exp(v - total)
		if cumprob > r {
			newCluster = k
			break
		}
	}
	if newCluster < 0 {
		fmt.Println("couldn't reseat site", site)
		os.Exit(0)
	}
	if newCluster < n {
		chain.Clusters[newCluster].AddValue(value)
		chain.ClusterSites[newCluster] = append(chain.ClusterSites[newCluster], site)
		chain.SiteAssignments[site] = newCluster
		chain.Scorer.UpdateGroup(chain.Prior, newCluster, chain.Clusters[newCluster])
	} else {
		chain.makeNewCluster(site, value)
	}
}

func (chain *GPDPPGibbs) makeNewCluster(site int, value uint64) {
	cur := new(GPLike)
	cur.Init()
	cur.AddValue(value)
	chain.Clusters = append(chain.Clusters, cur)
	chain.ClusterSites = append(chain.ClusterSites, []int{site})
	slot := len(chain.Clusters) - 1
	chain.SiteAssignments[site] = slot
	chain.Scorer.AddGroup()
	chain.Scorer.UpdateGroup(chain.Prior, slot, cur)
}

//removeCluster swaps the last cluster into the vacated slot and applies the
//identical renumbering to the scorer, keeping the two in correspondence
func (chain *GPDPPGibbs) removeCluster(slot int) {
	last := len(chain.Clusters) - 1
	if slot != last {
		chain.Clusters[slot] = chain.Clusters[last]
		chain.ClusterSites[slot] = chain.ClusterSites[last]
		for _, s := range chain.ClusterSites[slot] {
			chain.SiteAssignments[s] = slot
		}
	}
	chain.Clusters = chain.Clusters[:last]
	chain.ClusterSites = chain.ClusterSites[:last]
	chain.Scorer.RemoveGroup(slot)
}

func (chain *GPDPPGibbs) startingClusters() {
	chain.SiteAssignments = make(map[int]int)
	for site, value := range chain.Data {
		cur := new(GPLike)
		cur.Init()
		cur.AddValue(value)
		chain.Clusters = append(chain.Clusters, cur)
		chain.ClusterSites = append(chain.ClusterSites, []int{site})
		chain.SiteAssignments[site] = site
		chain.Scorer.AddGroup()
	}
	chain.Scorer.UpdateAll(chain.Prior, chain.Clusters)
}

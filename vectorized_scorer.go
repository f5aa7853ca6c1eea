package gpcollapse

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

//VectorizedScorer caches the scoring coefficients of a whole collection of
//count clusters in parallel slices, so one candidate count can be scored
//against every cluster in a single pass. Slot i of every slice always refers
//to the same cluster. RemoveGroup compacts by swapping the last slot into
//the removed one, so the owning collection must apply the identical
//renumbering to its own cluster storage or the slot correspondence is
//corrupted. The scorer never checks this.
type VectorizedScorer struct {
	scores      []float64
	postAlphas  []float64
	scoreCoeffs []float64
	temp        []float64 // scratch reused by ScoreValue; makes it non-reentrant
}

//NGroups will return the number of active cluster slots
func (vs *VectorizedScorer) NGroups() int {
	return len(vs.scores)
}

//Resize will set every cache slice to length size. All slots are stale until
//their next UpdateGroup call.
func (vs *VectorizedScorer) Resize(size int) {
	vs.scores = resizeFloats(vs.scores, size)
	vs.postAlphas = resizeFloats(vs.postAlphas, size)
	vs.scoreCoeffs = resizeFloats(vs.scoreCoeffs, size)
	vs.temp = resizeFloats(vs.temp, size)
}

//AddGroup will append one slot to every cache slice. The slot is stale until
//the next UpdateGroup call.
func (vs *VectorizedScorer) AddGroup() {
	vs.scores = append(vs.scores, 0.)
	vs.postAlphas = append(vs.postAlphas, 0.)
	vs.scoreCoeffs = append(vs.scoreCoeffs, 0.)
	vs.temp = append(vs.temp, 0.)
}

//RemoveGroup will remove slot groupid by swapping the last slot into its
//place. The cluster that lived in the last slot is renumbered to groupid;
//the owning collection must do the same.
func (vs *VectorizedScorer) RemoveGroup(groupid int) {
	last := len(vs.scores) - 1
	vs.scores[groupid] = vs.scores[last]
	vs.postAlphas[groupid] = vs.postAlphas[last]
	vs.scoreCoeffs[groupid] = vs.scoreCoeffs[last]
	vs.scores = vs.scores[:last]
	vs.postAlphas = vs.postAlphas[:last]
	vs.scoreCoeffs = vs.scoreCoeffs[:last]
	vs.temp = vs.temp[:last]
}

//UpdateGroup will refresh the cached coefficients for slot groupid from the
//cluster's current statistics. Callers must invoke this after any mutation
//of the cluster and before the next ScoreValue call; there is no dirty
//tracking, stale slots just score wrong.
func (vs *VectorizedScorer) UpdateGroup(prior *GPPrior, groupid int, g *GPLike) {
	sc := InitGPScorer(prior, g)
	vs.scores[groupid] = sc.Score
	vs.postAlphas[groupid] = sc.PostAlpha
	vs.scoreCoeffs[groupid] = sc.ScoreCoeff
}

//UpdateAll will refresh every slot from the cluster collection, in slot order
func (vs *VectorizedScorer) UpdateAll(prior *GPPrior, groups []*GPLike) {
	for groupid, g := range groups {
		vs.UpdateGroup(prior, groupid, g)
	}
}

//ScoreValue will evaluate the posterior predictive log-pmf of value under
//every active slot and add the result into scoresAccum, which must already
//have length >= NGroups. Accumulation lets scores from several independent
//feature dimensions compose into one running total per cluster. Not safe
//for concurrent calls on the same scorer: the scratch slice is shared.
func (vs *VectorizedScorer) ScoreValue(value uint64, scoresAccum []float64) {
	lf := LogFactorial(value)
	v := float64(value)
	for i := range vs.scores {
		vs.temp[i] = vs.scores[i] + Lgamma(vs.postAlphas[i]+v) - lf + vs.scoreCoeffs[i]*v
	}
	floats.Add(scoresAccum[:len(vs.scores)], vs.temp)
}

//ScoreData will return the marginal log-likelihood summed over every cluster
//in the collection, straight from the stored statistics. It does not touch
//the cached coefficients, which makes it an independent check on them.
func (vs *VectorizedScorer) ScoreData(prior *GPPrior, groups []*GPLike) float64 {
	alphaPart := Lgamma(prior.Alpha)
	betaPart := prior.Alpha * math.Log(prior.InvBeta)
	score := 0.
	for _, g := range groups {
		post := prior.PlusGroup(g)
		score += Lgamma(post.Alpha) - alphaPart
		score += betaPart - post.Alpha*math.Log(post.InvBeta)
		score += -g.LogProd
	}
	return score
}

func resizeFloats(s []float64, size int) []float64 {
	if cap(s) >= size {
		return s[:size]
	}
	out := make([]float64, size)
	copy(out, s)
	return out
}

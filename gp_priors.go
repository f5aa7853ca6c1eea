package gpcollapse

//GPPrior stores the Gamma hyperparameters placed on the Poisson rate of each count cluster
type GPPrior struct {
	Alpha   float64 // shape hyperparameter on the cluster rate
	InvBeta float64 // inverse scale hyperparameter on the cluster rate
}

//InitGPPrior will initialize the conjugate Gamma prior on the cluster rates. Both hyperparameters must be positive.
func InitGPPrior(alpha, invBeta float64) *GPPrior {
	p := new(GPPrior)
	p.Alpha = alpha
	p.InvBeta = invBeta
	return p
}

//PlusGroup will return the posterior hyperparameters given the sufficient statistics of one cluster
func (p *GPPrior) PlusGroup(g *GPLike) GPPrior {
	var post GPPrior
	post.Alpha = p.Alpha + float64(g.Sum)
	post.InvBeta = p.InvBeta + float64(g.Count)
	return post
}

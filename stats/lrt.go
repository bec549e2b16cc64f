package stats

import "gonum.org/v1/gonum/stat/distuv"

// LikelihoodRatioTest performs a log-likelihood ratio test for each feature
// based on two already fitted models.
//
// The null hypothesis is that the reduced model explains a feature as well
// as the full model. The reduced model has to be nested within the full
// model for the deviance to be chi-square distributed under the null
// hypothesis: the p-values are incorrect if the models are not nested.
// Nesting is not checked here, and neither is the degrees-of-freedom delta;
// calling with dfFull <= dfReduced puts a degenerate chi-square reference
// behind the p-values and is a caller error.
//
// llFull and llReduced are the per-feature log-likelihoods of the two
// models. dfFull and dfReduced are their parameter counts, shared by all
// features. A deviance of zero yields a p-value of exactly 1.
func LikelihoodRatioTest(llFull, llReduced []float64, dfFull, dfReduced int) ([]float64, error) {
	if err := checkLen("LikelihoodRatioTest", "llFull", "llReduced", len(llFull), len(llReduced)); err != nil {
		return nil, err
	}

	// Difference in degrees of freedom between the models.
	deltaDF := dfFull - dfReduced
	chi2 := distuv.ChiSquared{K: float64(deltaDF)}

	pvals := make([]float64, len(llFull))
	for i := range llFull {
		// Deviance test statistic.
		dev := 2 * (llFull[i] - llReduced[i])
		pvals[i] = chi2.Survival(dev)
	}
	return pvals, nil
}

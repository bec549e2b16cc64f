// Package stats provides the per-feature hypothesis tests for differential
// expression analysis.
//
// Each function compares two groups across many independent features and
// returns one p-value per feature, aligned index-for-index with its inputs.
// All functions are pure and stateless: inputs are never mutated and no
// state survives a call.
//
// # Fitted-Model Tests
//
// Compare models fitted by an external estimator:
//
//	// Likelihood-ratio test of a reduced model nested in a full model.
//	// H0: the reduced model is sufficient.
//	pvals, err := stats.LikelihoodRatioTest(llFull, llReduced, dfFull, dfReduced)
//
//	// Wald test of one coefficient against a reference value.
//	pvals, err := stats.WaldTest(thetaMLE, thetaSD, 0)
//
//	// z-test comparing two coefficients.
//	pvals, err := stats.TwoCoefZTest(thetaMLE0, thetaMLE1, thetaSD0, thetaSD1)
//
// # Raw-Observation Tests
//
// Compare raw observation matrices directly:
//
//	// Welch's t-test, from raw data or precomputed moments.
//	pvals, err := stats.TTestRaw(x0, x1)
//	pvals, err := stats.TTestMoments(mu0, mu1, var0, var1, n0, n1)
//
//	// Wilcoxon rank sum test (non-parametric).
//	pvals, err := stats.Wilcoxon(x0, x1)
//
// # Errors
//
// The only error class is *ShapeError: paired inputs disagreeing on feature
// count. Degenerate numeric inputs (zero variance, zero standard deviation,
// non-positive degrees of freedom) are deliberately not validated; the
// special values they produce (Inf, NaN) propagate through the reference
// distribution into the returned p-values.
//
// Note that WaldTest and TwoCoefZTest report the one-sided upper-tail
// probability 1 - Phi(z); see their doc comments.
package stats

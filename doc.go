// Package godiffexp provides per-feature hypothesis tests for differential
// expression analysis.
//
// GoDiffExp compares two groups of observations (for example cells or
// samples) measured across many independent features (for example genes)
// and computes one p-value per feature. It covers the test battery used in
// generalized-linear-model based differential expression workflows:
// likelihood-ratio and Wald tests on fitted-model outputs, z- and t-tests
// on coefficients and moments, and the non-parametric Wilcoxon rank sum
// test on raw observations.
//
// # Features
//
//   - Likelihood-ratio test on fitted full/reduced model log-likelihoods
//   - Single-coefficient Wald test
//   - Two-coefficient z-test
//   - Welch's unequal-variance t-test, from raw data or from group moments
//   - Wilcoxon rank sum (Mann-Whitney U) test
//   - Observation-by-feature matrix type with CSV ingestion
//   - Two-group synthetic dataset simulation for validation
//
// # Quick Start
//
// Test two groups of raw observations:
//
//	x0, _ := matrix.New(group0Rows) // observations x features
//	x1, _ := matrix.New(group1Rows)
//	pvals, err := stats.TTestRaw(x0, x1)
//
// Test already fitted models:
//
//	pvals, err := stats.LikelihoodRatioTest(llFull, llReduced, dfFull, dfReduced)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - stats: the per-feature hypothesis tests
//   - matrix: observation-by-feature data structures and CSV loading
//   - sim: synthetic two-group dataset generation
//
// Model fitting is out of scope: the likelihood-ratio and Wald tests consume
// log-likelihoods and coefficient standard deviations produced by an
// external estimator. Multiple-testing correction of the returned p-values
// is likewise left to the caller.
//
// # References
//
//   - Welch, B. L. (1947). The generalization of "Student's" problem when
//     several different population variances are involved
//   - Mann, H. B., & Whitney, D. R. (1947). On a test of whether one of two
//     random variables is stochastically larger than the other
package godiffexp

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// WaldTest performs a single-coefficient Wald test for each feature.
//
// The test asks whether a fitted coefficient deviates significantly from
// the reference value theta0, based on the standard deviation of the
// parameter estimate. For generalized linear models that standard deviation
// is typically derived from the Hessian at the maximum likelihood estimate,
// an approximation of the Fisher information matrix.
//
// The returned p-value is the upper-tail probability 1 - Phi(z): the test
// is one-sided, so only coefficients above theta0 produce small p-values.
// A zero standard deviation is not rejected; it drives the statistic to
// +/-Inf and the p-value to 0 or 1.
func WaldTest(thetaMLE, thetaSD []float64, theta0 float64) ([]float64, error) {
	if err := checkLen("WaldTest", "thetaMLE", "thetaSD", len(thetaMLE), len(thetaSD)); err != nil {
		return nil, err
	}

	norm := distuv.Normal{Mu: 0, Sigma: 1}
	pvals := make([]float64, len(thetaMLE))
	for i := range thetaMLE {
		z := (thetaMLE[i] - theta0) / thetaSD[i]
		pvals[i] = norm.Survival(z)
	}
	return pvals, nil
}

// TwoCoefZTest performs a z-test comparing two fitted coefficients for each
// feature.
//
// The null hypothesis is that the two coefficients are equal. The combined
// standard error is sqrt(sd0^2 + sd1^2), treating the two estimates as
// independent. As with WaldTest the returned p-value is the one-sided
// upper-tail probability 1 - Phi(z).
func TwoCoefZTest(thetaMLE0, thetaMLE1, thetaSD0, thetaSD1 []float64) ([]float64, error) {
	if err := checkLen("TwoCoefZTest", "thetaMLE0", "thetaMLE1", len(thetaMLE0), len(thetaMLE1)); err != nil {
		return nil, err
	}
	if err := checkLen("TwoCoefZTest", "thetaSD0", "thetaSD1", len(thetaSD0), len(thetaSD1)); err != nil {
		return nil, err
	}
	if err := checkLen("TwoCoefZTest", "thetaMLE0", "thetaSD0", len(thetaMLE0), len(thetaSD0)); err != nil {
		return nil, err
	}

	norm := distuv.Normal{Mu: 0, Sigma: 1}
	pvals := make([]float64, len(thetaMLE0))
	for i := range thetaMLE0 {
		s := math.Sqrt(thetaSD0[i]*thetaSD0[i] + thetaSD1[i]*thetaSD1[i])
		z := (thetaMLE0[i] - thetaMLE1[i]) / s
		pvals[i] = norm.Survival(z)
	}
	return pvals, nil
}

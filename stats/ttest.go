package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/godiffexp/matrix"
)

// TTestMoments performs Welch's unequal-variance t-test for each feature
// from group moments.
//
// mu0, mu1, var0 and var1 are the per-feature means and variances of the
// two groups; n0 and n1 are the group observation counts, shared by all
// features. The t-test assumes normally distributed observations but not
// equal group variances: the reference distribution is Student's t with the
// per-feature Welch-Satterthwaite degrees of freedom, which is generally
// non-integer.
//
// The returned p-value is the upper-tail probability 1 - CDF_t(df)(t). A
// feature with zero variance in both groups has an undefined statistic and
// propagates NaN.
func TTestMoments(mu0, mu1, var0, var1 []float64, n0, n1 int) ([]float64, error) {
	if err := checkLen("TTestMoments", "mu0", "mu1", len(mu0), len(mu1)); err != nil {
		return nil, err
	}
	if err := checkLen("TTestMoments", "var0", "var1", len(var0), len(var1)); err != nil {
		return nil, err
	}

	pvals := make([]float64, len(mu0))
	for i := range mu0 {
		se0 := var0[i] / float64(n0)
		se1 := var1[i] / float64(n1)

		s := math.Sqrt(se0 + se1)
		t := (mu0[i] - mu1[i]) / s

		// Welch-Satterthwaite approximation of the degrees of freedom.
		df := (se0 + se1) * (se0 + se1) /
			(se0*se0/float64(n0-1) + se1*se1/float64(n1-1))

		dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
		pvals[i] = dist.Survival(t)
	}
	return pvals, nil
}

// TTestRaw performs Welch's unequal-variance t-test for each feature on raw
// observations.
//
// x0 and x1 are the observation-by-feature matrices of the two groups; they
// must agree on feature count but may differ in observation count. The
// matrices are reduced over the observation axis to per-feature means and
// population variances, which are passed on to TTestMoments. Single-feature
// vectors promote with matrix.FromVector.
func TTestRaw(x0, x1 *matrix.Matrix) ([]float64, error) {
	if err := checkLen("TTestRaw", "x0", "x1", x0.Cols(), x1.Cols()); err != nil {
		return nil, err
	}

	return TTestMoments(
		x0.ColMeans(), x1.ColMeans(),
		x0.ColVariances(), x1.ColVariances(),
		x0.Rows(), x1.Rows(),
	)
}

package stats

import (
	"math"

	mstats "github.com/aclements/go-moremath/stats"

	"github.com/sartorproj/godiffexp/matrix"
)

// Wilcoxon performs a two-sided Wilcoxon rank sum (Mann-Whitney U) test for
// each feature.
//
// The rank sum test is non-parametric: it makes no distributional
// assumption about the observations and is the usual alternative to
// TTestRaw when normality cannot be assumed. Small tie-free samples use the
// exact U distribution; larger samples and samples with ties fall back to
// the tie-corrected normal approximation.
//
// Features are tested one column at a time, each independently of the
// others. A feature whose observations are one identical value across both
// groups has no defined rank ordering; its p-value is NaN and the remaining
// features are still computed.
func Wilcoxon(x0, x1 *matrix.Matrix) ([]float64, error) {
	if err := checkLen("Wilcoxon", "x0", "x1", x0.Cols(), x1.Cols()); err != nil {
		return nil, err
	}

	pvals := make([]float64, x0.Cols())
	for j := range pvals {
		r, err := mstats.MannWhitneyUTest(x0.Col(j), x1.Col(j), mstats.LocationDiffers)
		if err != nil {
			pvals[j] = math.NaN()
			continue
		}
		pvals[j] = r.P
	}
	return pvals, nil
}

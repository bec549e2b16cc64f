package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikelihoodRatioTest(t *testing.T) {
	// Full model with 3 parameters against a nested reduced model with 1.
	llFull := []float64{-100, -50}
	llReduced := []float64{-105, -50}

	pvals, err := LikelihoodRatioTest(llFull, llReduced, 3, 1)
	require.NoError(t, err)
	require.Len(t, pvals, 2)

	// Deviance 10 against chi-square with 2 degrees of freedom: exp(-5).
	assert.InDelta(t, 0.006737946999085467, pvals[0], 1e-12)

	// Zero deviance yields a p-value of exactly 1.
	assert.Equal(t, 1.0, pvals[1])
}

func TestLikelihoodRatioTestShapeMismatch(t *testing.T) {
	_, err := LikelihoodRatioTest([]float64{-1, -2}, []float64{-1}, 2, 1)
	require.Error(t, err)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "LikelihoodRatioTest", shapeErr.Func)
	assert.Equal(t, "llFull", shapeErr.Arg0)
	assert.Equal(t, "llReduced", shapeErr.Arg1)
	assert.Equal(t, 2, shapeErr.Len0)
	assert.Equal(t, 1, shapeErr.Len1)
}

func TestLikelihoodRatioTestRange(t *testing.T) {
	llFull := []float64{-10, -20, -30, -40.5, -0.1}
	llReduced := []float64{-12, -20.5, -30, -49, -0.1}

	pvals, err := LikelihoodRatioTest(llFull, llReduced, 4, 2)
	require.NoError(t, err)
	for i, p := range pvals {
		assert.GreaterOrEqual(t, p, 0.0, "feature %d", i)
		assert.LessOrEqual(t, p, 1.0, "feature %d", i)
	}
}

func TestLikelihoodRatioTestNegativeDeviance(t *testing.T) {
	// A reduced model reported as more likely than the full model is a
	// caller error (the models cannot be nested); the negative deviance is
	// passed through and lands in the lower tail.
	pvals, err := LikelihoodRatioTest([]float64{-10}, []float64{-5}, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, pvals[0])
}

// Package matrix provides the observation-by-feature data structures used
// by the differential expression tests.
package matrix

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Matrix represents one group of observations measured across features.
// Rows are observations (cells or samples), columns are features (genes).
type Matrix struct {
	Values [][]float64 // Values[i][j] is observation i of feature j
	Names  []string    // Optional feature names, one per column
}

// New creates a matrix from row-major values.
// All rows must have the same number of features.
func New(values [][]float64) (*Matrix, error) {
	if len(values) == 0 {
		return nil, errors.New("matrix must contain at least one observation")
	}
	cols := len(values[0])
	for _, row := range values[1:] {
		if len(row) != cols {
			return nil, errors.New("all observations must have the same number of features")
		}
	}
	return &Matrix{Values: values}, nil
}

// FromVector promotes a single-feature observation vector to an n-by-1
// matrix, so that per-feature tests can be applied to one feature.
func FromVector(v []float64) *Matrix {
	values := make([][]float64, len(v))
	for i, x := range v {
		values[i] = []float64{x}
	}
	return &Matrix{Values: values}
}

// Rows returns the number of observations.
func (m *Matrix) Rows() int {
	return len(m.Values)
}

// Cols returns the number of features.
func (m *Matrix) Cols() int {
	if len(m.Values) == 0 {
		return 0
	}
	return len(m.Values[0])
}

// Col returns a copy of the observation vector for feature j.
func (m *Matrix) Col(j int) []float64 {
	col := make([]float64, len(m.Values))
	for i, row := range m.Values {
		col[i] = row[j]
	}
	return col
}

// ColMeans reduces the matrix over the observation axis to per-feature means.
func (m *Matrix) ColMeans() []float64 {
	means := make([]float64, m.Cols())
	for j := range means {
		means[j] = stat.Mean(m.Col(j), nil)
	}
	return means
}

// ColVariances reduces the matrix over the observation axis to per-feature
// population variances (divide by n). A single observation yields 0.
func (m *Matrix) ColVariances() []float64 {
	n := float64(m.Rows())
	variances := make([]float64, m.Cols())
	for j := range variances {
		if m.Rows() < 2 {
			variances[j] = 0
			continue
		}
		_, v := stat.MeanVariance(m.Col(j), nil)
		variances[j] = v * (n - 1) / n
	}
	return variances
}

// ColSampleVariances reduces the matrix over the observation axis to
// per-feature unbiased sample variances (divide by n-1).
func (m *Matrix) ColSampleVariances() []float64 {
	variances := make([]float64, m.Cols())
	for j := range variances {
		if m.Rows() < 2 {
			variances[j] = 0
			continue
		}
		_, v := stat.MeanVariance(m.Col(j), nil)
		variances[j] = v
	}
	return variances
}

// ColMin returns the minimum value of feature j.
func (m *Matrix) ColMin(j int) float64 {
	if m.Rows() == 0 {
		return math.NaN()
	}
	min := m.Values[0][j]
	for _, row := range m.Values[1:] {
		if row[j] < min {
			min = row[j]
		}
	}
	return min
}

// ColMax returns the maximum value of feature j.
func (m *Matrix) ColMax(j int) float64 {
	if m.Rows() == 0 {
		return math.NaN()
	}
	max := m.Values[0][j]
	for _, row := range m.Values[1:] {
		if row[j] > max {
			max = row[j]
		}
	}
	return max
}

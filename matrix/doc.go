// Package matrix provides observation-by-feature data structures for
// differential expression testing.
//
// A Matrix holds one group of observations: rows are observations (cells or
// samples), columns are features (genes). The matrix reduces over the
// observation axis to the per-feature moments the test functions consume:
//
//	x, _ := matrix.New(rows)
//	mu := x.ColMeans()
//	v := x.ColVariances() // population variance, divide by n
//
// A single feature measured as a plain vector promotes to an n-by-1 matrix:
//
//	x := matrix.FromVector(observations)
//
// # CSV Loading
//
// Wide numeric tables load directly, with feature names taken from the
// header row:
//
//	opts := matrix.DefaultCSVOptions()
//	x, err := matrix.LoadCSV("counts.csv", opts)
//
//	// Restrict to a subset of features:
//	opts.Columns = []string{"geneA", "geneB"}
package matrix

package stats

import "fmt"

// ShapeError reports a feature-count mismatch between two paired inputs of
// a test function. Every test validates the pairings relevant to its own
// inputs before computing anything; a ShapeError always indicates a
// malformed call that the caller has to fix.
type ShapeError struct {
	Func string // Test function that rejected the inputs
	Arg0 string // Name of the first argument of the mismatched pair
	Arg1 string // Name of the second argument of the mismatched pair
	Len0 int    // Feature count of Arg0
	Len1 int    // Feature count of Arg1
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("stats.%s: %s and %s have to contain the same number of features (%d != %d)",
		e.Func, e.Arg0, e.Arg1, e.Len0, e.Len1)
}

// checkLen returns a ShapeError if a paired input disagrees on feature count.
func checkLen(fn, arg0, arg1 string, len0, len1 int) error {
	if len0 != len1 {
		return &ShapeError{Func: fn, Arg0: arg0, Arg1: arg1, Len0: len0, Len1: len1}
	}
	return nil
}

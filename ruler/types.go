// Package ruler types, sentinel errors, and the Distance record.
package ruler

import "errors"

// Mark is a single integer position on a ruler. Distances between marks
// are always taken as absolute values, so negative intermediate results
// never escape this package.
type Mark = int64

// Sentinel errors for ruler operations.
var (
	// ErrMarkNotPositive indicates a mark ≤ 0 was supplied to New.
	// The implicit leading 0 is never stored and must not be passed in.
	ErrMarkNotPositive = errors.New("ruler: marks must be strictly positive")

	// ErrMarksNotAscending indicates the supplied marks are not in
	// strictly increasing order.
	ErrMarksNotAscending = errors.New("ruler: marks must be strictly ascending")

	// ErrIDOverflow indicates the ruler's length exceeds 64, so no
	// uint64 id can represent it. This is an absence signal, not a
	// defect: callers decide whether it terminates their iteration.
	ErrIDOverflow = errors.New("ruler: length exceeds 64, no id available")
)

// Distance records one pairwise distance of a ruler: the two marks it
// spans and their absolute difference. Distance values are diagnostic
// output only; enumeration control never depends on them.
type Distance struct {
	Left  Mark // smaller mark of the pair (0 for the implicit origin)
	Right Mark // larger mark of the pair
	Dist  Mark // |Right − Left|
}

// Ruler is an ordered, strictly increasing sequence of positive marks,
// excluding the implicit leading mark 0. The zero value is the empty
// ruler of order 1 and length 0.
//
// Ruler is an immutable value object: every accessor either returns a
// scalar or copies, and no method mutates the receiver.
type Ruler struct {
	marks []Mark
}

// dist returns the absolute difference of two marks.
func dist(a, b Mark) Mark {
	if a < b {
		return b - a
	}

	return a - b
}

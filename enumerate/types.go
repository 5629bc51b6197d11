// Package enumerate types and sentinel errors for traversal strategies.
package enumerate

import "errors"

// Sentinel errors for iterator construction. Facade functions never
// return them: out-of-range enumeration parameters yield empty results
// there, because an impossible query has an empty answer, not a failure.
var (
	// ErrLengthTooSmall indicates a traversal length below 2. Lengths 0
	// and 1 have no interior positions to traverse; the facade serves
	// them from the id bijection instead.
	ErrLengthTooSmall = errors.New("enumerate: length must be at least 2")

	// ErrOrderTooSmall indicates a pruned traversal order below 3. The
	// termination test of the pruned transition inspects the first
	// order−2 bits and is only well-defined from order 3 up; order 2 is
	// special-cased by PrunedRulers (exactly one ruler, [length]).
	ErrOrderTooSmall = errors.New("enumerate: order must be at least 3")

	// ErrDepthTooSmall indicates a depth-limited traversal depth below 1.
	ErrDepthTooSmall = errors.New("enumerate: depth must be at least 1")
)

// Strategy selects the transition rule an Iterator advances with.
//
//   - Exhaustive        — visit all 2^(length−1) subsets of interior
//     positions in binary-counter order.
//   - CardinalityPruned — visit exactly the C(length−1, order−2) states
//     with order total marks, skipping saturated branches.
//   - DepthLimited      — cardinality-pruned, additionally discarding
//     states that fail the depth-1 partial Golomb check.
type Strategy uint8

const (
	// Exhaustive walks the full subset tree of a fixed length.
	Exhaustive Strategy = iota

	// CardinalityPruned restricts the walk to states of a fixed order.
	CardinalityPruned

	// DepthLimited filters the pruned walk by the depth-1 check.
	DepthLimited
)

// String returns the strategy name for diagnostics.
func (st Strategy) String() string {
	switch st {
	case Exhaustive:
		return "Exhaustive"
	case CardinalityPruned:
		return "CardinalityPruned"
	case DepthLimited:
		return "DepthLimited"
	default:
		return "Unknown"
	}
}

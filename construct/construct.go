// SPDX-License-Identifier: MIT
// Package: golomb/construct
//
// construct.go - recursive single-ruler constructors.
//
// Contract:
//   - order ≥ 1 (else ErrNonPositiveOrder); order ≤ 63 (else ErrOrderTooLarge,
//     marks grow as 2^order and must fit a ruler.Mark).
//   - Naive(k) extends Naive(k−1) with the mark 2^(k−1)−1; the result always
//     satisfies the Golomb property but its length is exponential in k.
//   - Improved(k) extends Improved(k−1) with the first candidate c in
//     (last, 2·last+1] whose gaps to every existing mark avoid the existing
//     distance set. Exhausting that range without a candidate is an internal
//     invariant violation (ErrNoCandidate), unreachable for valid orders.
//   - Returns only sentinel errors; never panics.
//
// Complexity:
//   - Naive:    O(order) marks, O(order) time.
//   - Improved: O(order³) time (per level: O(last) candidates × O(order) gaps),
//     O(order²) memory for the distance set.
//
// Determinism:
//   - Both constructors are fully deterministic; no RNG, no options.

package construct

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/golomb/ruler"
)

// File-local constants for method tagging and parameter bounds.
const (
	methodNaive    = "Naive"
	methodImproved = "Improved"
	minOrder       = 1
	maxOrder       = 63
)

// Sentinel errors for constructor operations.
var (
	// ErrNonPositiveOrder indicates order < 1: a ruler has at least the
	// implicit mark 0. Classification: validation error (parameters).
	ErrNonPositiveOrder = errors.New("construct: order must be greater than 0")

	// ErrOrderTooLarge indicates order > 63: the naive mark 2^(order−1)−1
	// (the improved bound is smaller still) would overflow a 64-bit mark.
	ErrOrderTooLarge = errors.New("construct: order exceeds 64-bit mark range")

	// ErrNoCandidate indicates the bounded greedy search found no mark
	// admitting the Golomb property. This is an internal invariant
	// violation — the doubled upper bound always admits a candidate — so
	// callers should treat it as fatal, not as a user-facing condition.
	ErrNoCandidate = errors.New("construct: no candidate admits the golomb property within bounded range")
)

// Naive builds a Golomb ruler of the given order by the powers-of-two
// construction: mark k is 2^k − 1. Valid but wasteful — the length is
// exponential in the order.
func Naive(order int) (ruler.Ruler, error) {
	if order < minOrder {
		return ruler.Ruler{}, fmt.Errorf("%s: order=%d < min=%d: %w", methodNaive, order, minOrder, ErrNonPositiveOrder)
	}
	if order > maxOrder {
		return ruler.Ruler{}, fmt.Errorf("%s: order=%d > max=%d: %w", methodNaive, order, maxOrder, ErrOrderTooLarge)
	}

	// Mark k (1-based, after the implicit 0) is 2^k − 1: each new mark
	// doubles past the sum of all prior distances, so no distance repeats.
	marks := make([]ruler.Mark, 0, order-1)
	for k := 1; k < order; k++ {
		marks = append(marks, ruler.Mark(1)<<uint(k)-1)
	}

	r, err := ruler.New(marks...)
	if err != nil {
		return ruler.Ruler{}, fmt.Errorf("%s: New: %w", methodNaive, err)
	}

	return r, nil
}

// Improved builds a Golomb ruler of the given order by bounded greedy
// extension: starting from the seed [0, 1, 3], each level appends the
// first candidate past the current last mark, at most one doubling
// away, whose gaps to every existing mark avoid the distances already
// on the ruler. Produces far shorter rulers than Naive (order 5 yields
// [0, 1, 3, 7, 12], the optimal one), though not optimal in general.
func Improved(order int) (ruler.Ruler, error) {
	if order < minOrder {
		return ruler.Ruler{}, fmt.Errorf("%s: order=%d < min=%d: %w", methodImproved, order, minOrder, ErrNonPositiveOrder)
	}
	if order > maxOrder {
		return ruler.Ruler{}, fmt.Errorf("%s: order=%d > max=%d: %w", methodImproved, order, maxOrder, ErrOrderTooLarge)
	}

	// Seed levels: [0], [0,1], [0,1,3]. Recursion bottoms out here.
	// The working sequence includes the implicit 0 so that gap and
	// distance bookkeeping covers the origin pairs.
	seq := []ruler.Mark{0, 1, 3}
	if order < 3 {
		seq = seq[:order]
	}

	for level := 4; level <= order; level++ {
		var ok bool
		if seq, ok = extendGreedy(seq); !ok {
			return ruler.Ruler{}, fmt.Errorf("%s: order=%d level=%d: %w", methodImproved, order, level, ErrNoCandidate)
		}
	}

	r, err := ruler.New(seq[1:]...) // drop the explicit 0
	if err != nil {
		return ruler.Ruler{}, fmt.Errorf("%s: New: %w", methodImproved, err)
	}

	return r, nil
}

// extendGreedy appends the first acceptable candidate in
// (last, 2·last+1] to seq (which includes the leading 0), keeping the
// sequence sorted. The second return is false when the bounded range is
// exhausted.
func extendGreedy(seq []ruler.Mark) ([]ruler.Mark, bool) {
	last := seq[len(seq)-1]
	distances := pairwiseDistances(seq)
	upper := 2*last + 1

	for c := last; c <= upper; c++ {
		if containsMark(seq, c) {
			continue
		}
		if acceptCandidate(c, distances, seq) {
			out := append(append([]ruler.Mark{}, seq...), c)
			sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

			return out, true
		}
	}

	return nil, false
}

// pairwiseDistances collects every pairwise absolute distance of seq.
func pairwiseDistances(seq []ruler.Mark) map[ruler.Mark]struct{} {
	out := make(map[ruler.Mark]struct{}, len(seq)*(len(seq)-1)/2)
	for i, lhs := range seq {
		for _, rhs := range seq[i+1:] {
			out[abs(lhs-rhs)] = struct{}{}
		}
	}

	return out
}

// acceptCandidate reports whether every gap from candidate to the
// existing marks avoids the existing distance set.
func acceptCandidate(candidate ruler.Mark, distances map[ruler.Mark]struct{}, seq []ruler.Mark) bool {
	for _, m := range seq {
		if _, hit := distances[abs(candidate-m)]; hit {
			return false
		}
	}

	return true
}

// containsMark reports whether seq already holds m.
func containsMark(seq []ruler.Mark, m ruler.Mark) bool {
	for _, v := range seq {
		if v == m {
			return true
		}
	}

	return false
}

// abs returns the absolute value of a mark difference.
func abs(v ruler.Mark) ruler.Mark {
	if v < 0 {
		return -v
	}

	return v
}

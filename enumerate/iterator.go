package enumerate

import (
	"fmt"

	"github.com/katalvlaran/golomb/ruler"
)

// Iterator lazily produces the rulers of one traversal strategy.
//
// An Iterator owns a private current state and shares nothing with
// other iterators, so independent traversals may run concurrently
// without synchronization. The sequence is finite; Next reports
// exhaustion through its second return, never an error.
//
// All three strategies share one advance contract — "given the current
// state, produce the next state or report terminal" — and differ only
// in the transition rule selected by Strategy.
type Iterator struct {
	strategy Strategy
	st       state
	length   int
	order    int // CardinalityPruned and DepthLimited only
	depth    int // DepthLimited only; reserved, currently always the depth-1 check
	done     bool
}

// NewExhaustive returns an iterator over every ruler of exactly the
// given length: all 2^(length−1) subsets of interior positions, in
// binary-counter order, regardless of order or the Golomb property.
//
// Errors: ErrLengthTooSmall if length < 2.
func NewExhaustive(length int) (*Iterator, error) {
	if length < 2 {
		return nil, fmt.Errorf("length %d: %w", length, ErrLengthTooSmall)
	}

	return &Iterator{
		strategy: Exhaustive,
		st:       preState(length),
		length:   length,
	}, nil
}

// NewPruned returns an iterator over every ruler of exactly the given
// order and length: the C(length−1, order−2) interior mark combinations,
// visited without duplicates or omissions, independent of the Golomb
// property.
//
// Errors: ErrLengthTooSmall if length < 2, ErrOrderTooSmall if order < 3
// (order 2 is the facade's special case — see PrunedRulers).
func NewPruned(order, length int) (*Iterator, error) {
	if length < 2 {
		return nil, fmt.Errorf("length %d: %w", length, ErrLengthTooSmall)
	}
	if order < 3 {
		return nil, fmt.Errorf("order %d: %w", order, ErrOrderTooSmall)
	}

	return &Iterator{
		strategy: CardinalityPruned,
		st:       preState(length),
		length:   length,
		order:    order,
	}, nil
}

// NewDepthLimited returns a cardinality-pruned iterator that
// additionally discards candidates failing the cheap partial Golomb
// check before yielding. The depth parameter is reserved for deeper
// partial checks; every depth ≥ 1 currently applies the depth-1 rule
// (distances anchored at the final mark only).
//
// Errors: ErrLengthTooSmall, ErrOrderTooSmall, ErrDepthTooSmall.
func NewDepthLimited(order, length, depth int) (*Iterator, error) {
	if depth < 1 {
		return nil, fmt.Errorf("depth %d: %w", depth, ErrDepthTooSmall)
	}
	it, err := NewPruned(order, length)
	if err != nil {
		return nil, err
	}
	it.strategy = DepthLimited
	it.depth = depth

	return it, nil
}

// preState is the synthetic state one level above the traversal root:
// logical length length−2, all clear. The first advance extends it to
// the root (the all-clear state of length length−1), so the root is
// yielded like every other state.
func preState(length int) state {
	return newState(uint(length - 2))
}

// Strategy returns the transition rule this iterator advances with.
func (it *Iterator) Strategy() Strategy {
	return it.strategy
}

// Next produces the next ruler of the sequence. The second return is
// false once the traversal is exhausted; the iterator stays exhausted
// afterwards.
func (it *Iterator) Next() (ruler.Ruler, bool) {
	if it.done {
		return ruler.Ruler{}, false
	}

	var (
		next state
		ok   bool
	)
	switch it.strategy {
	case Exhaustive:
		next, ok = nextExhaustive(it.st, it.length)
	case CardinalityPruned:
		next, ok = nextPruned(it.st, it.order, it.length)
	case DepthLimited:
		next, ok = nextDepth1(it.st, it.order, it.length)
	}
	if !ok {
		it.done = true

		return ruler.Ruler{}, false
	}
	it.st = next

	return next.toRuler(), true
}

// Collect drains the iterator into a slice.
func (it *Iterator) Collect() []ruler.Ruler {
	var out []ruler.Ruler
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		out = append(out, r)
	}

	return out
}

// nextExhaustive implements the exhaustive transition of a fixed target
// length:
//  1. below target depth: descend leftmost-first until the target is
//     reached, and yield that state;
//  2. final bit clear: flip it (sibling move);
//  3. final bit set: backtrack, unless the state is all-ones — then the
//     walk is complete.
func nextExhaustive(s state, length int) (state, bool) {
	target := uint(length - 1)
	if s.n > target {
		return state{}, false
	}

	if s.n < target {
		for s.n < target {
			s = s.extend()
		}

		return s, true
	}

	if !s.lastSet() {
		return s.flipLast(), true
	}
	if s.allSet() {
		return state{}, false
	}

	return s.backtrack(), true
}

// nextPruned implements the cardinality-pruned transition: descend to
// the target depth if needed, then re-apply the propose step until a
// state with exactly order total marks appears or the walk terminates.
// Intermediate proposals with the wrong popcount are never yielded.
func nextPruned(s state, order, length int) (state, bool) {
	target := uint(length - 1)
	if s.n > target {
		return state{}, false
	}
	for s.n < target {
		s = s.extend()
	}

	next, ok := proposeNext(s, order)
	for ok && next.totalMarks() != order {
		next, ok = proposeNext(next, order)
	}

	return next, ok
}

// proposeNext is the single propose step of the pruned transition:
//
//   - final bit clear, popcount saturated: the branch cannot grow — the
//     walk is complete when the first order−2 bits are all set,
//     otherwise jump back to the next same-cardinality combination;
//   - final bit clear, popcount below order: add a mark;
//   - final bit set: backtrack, unless all-ones (complete).
//
// The proposed state may have the wrong popcount; nextPruned loops.
func proposeNext(s state, order int) (state, bool) {
	if !s.lastSet() {
		if s.totalMarks() == order {
			if s.leadingSet(order - 2) {
				return state{}, false
			}

			return s.jumpBack(), true
		}

		return s.addMark()
	}

	if s.allSet() {
		return state{}, false
	}

	return s.backtrack(), true
}

// nextDepth1 layers the depth-1 partial check over the pruned
// transition, skipping candidates whose final-mark distances collide
// with an existing position.
func nextDepth1(s state, order, length int) (state, bool) {
	next, ok := nextPruned(s, order, length)
	for ok && !next.isGolombDepth1() {
		next, ok = nextPruned(next, order, length)
	}

	return next, ok
}

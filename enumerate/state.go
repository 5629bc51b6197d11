package enumerate

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/golomb/ruler"
)

// state is the bit-vector encoding of a candidate ruler of length n+1:
// bit i set means the interior mark i+1 is present. The endpoint marks 0
// and n+1 are implicit and never stored, so a state of logical length 0
// denotes the degenerate rulers of length 0 or 1.
//
// The "rightmost" bit of a state is its highest index n−1, the least
// significant end of the subset counter: backtrack is exactly a binary
// increment anchored there.
//
// Every transition is pure — the receiver is cloned, never edited in
// place — so iterators holding distinct states share nothing. The
// backing bitset may be over-allocated after clones; only bits below n
// are ever read or written, and popcounts ignore capacity.
type state struct {
	bits *bitset.BitSet
	n    uint // logical length: number of interior positions
}

// newState returns the all-clear state of logical length n.
func newState(n uint) state {
	return state{bits: bitset.New(n), n: n}
}

// clone returns an independent copy of s.
func (s state) clone() state {
	return state{bits: s.bits.Clone(), n: s.n}
}

// extend appends a cleared bit: descend one level deeper into the
// subset tree ("go left").
func (s state) extend() state {
	out := s.clone()
	out.n++

	return out
}

// flipLast sets the final bit without changing the length: the sibling
// move ("go right" from the same parent).
func (s state) flipLast() state {
	out := s.clone()
	out.bits.Set(out.n - 1)

	return out
}

// lastSet reports whether the final (rightmost) bit is set.
func (s state) lastSet() bool {
	return s.bits.Test(s.n - 1)
}

// backtrack clears every trailing set bit, scanning from the rightmost
// bit toward index 0, then sets the first cleared bit found:
//
//	0111 → 1000
//
// This is the binary-counter increment with the rightmost bit as the
// least significant. Callers must not invoke it on the all-ones state
// (check allSet first); the result there would wrap to all-zero.
func (s state) backtrack() state {
	out := s.clone()
	for i := int(s.n) - 1; i >= 0; i-- {
		if out.bits.Test(uint(i)) {
			out.bits.Clear(uint(i))
			continue
		}
		out.bits.Set(uint(i))

		break
	}

	return out
}

// addMark sets the first cleared bit found scanning from the rightmost
// bit backward. The second return is false when every bit is already
// set and no mark can be added.
func (s state) addMark() (state, bool) {
	for i := int(s.n) - 1; i >= 0; i-- {
		if !s.bits.Test(uint(i)) {
			out := s.clone()
			out.bits.Set(uint(i))

			return out, true
		}
	}

	return state{}, false
}

// jumpBack advances to the lexicographically next combination with the
// same popcount once the trailing run of set bits is saturated: it
// clears the trailing maximal run of set bits, keeps clearing through
// the immediately preceding run, and sets the first cleared bit found:
//
//	010 → 100   (with 1 mark: skip 011, which would have 2)
//
// When the preceding run extends all the way to index 0 there is no
// cleared bit left to set and the result is all-zero; reachable paths
// always check termination before calling jumpBack, so the engine never
// acts on that output.
func (s state) jumpBack() state {
	out := s.clone()

	// Clear the first set bit encountered from the right.
	j := 0
	for i := int(s.n) - 1; i >= 0; i-- {
		if out.bits.Test(uint(i)) {
			out.bits.Clear(uint(i))
			j = i

			break
		}
	}

	// Walk left through the adjacent run of ones, then set the first zero.
	for i := j - 1; i >= 0; i-- {
		if !out.bits.Test(uint(i)) {
			out.bits.Set(uint(i))

			break
		}
		out.bits.Clear(uint(i))
	}

	return out
}

// countMarks returns the popcount of the state.
func (s state) countMarks() int {
	return int(s.bits.Count())
}

// totalMarks returns the popcount plus 2 for the implicit endpoints.
func (s state) totalMarks() int {
	return s.countMarks() + 2
}

// allSet reports whether every interior position is marked.
func (s state) allSet() bool {
	return s.bits.Count() == s.n
}

// leadingSet reports whether the first k bits are all set (true for
// k ≤ 0). Used by the pruned termination check.
func (s state) leadingSet(k int) bool {
	for i := 0; i < k && i < int(s.n); i++ {
		if !s.bits.Test(uint(i)) {
			return false
		}
	}

	return true
}

// contains reports whether value is a mark of the ruler this state
// encodes, counting the implicit endpoints 0 and n+1. Values outside
// [0, n+1] are absent; negative values are always absent.
func (s state) contains(value ruler.Mark) bool {
	length := ruler.Mark(s.n + 1)
	switch {
	case value < 0:
		return false
	case value == 0 || value == length:
		return true
	case value > length:
		return false
	default:
		return s.bits.Test(uint(value - 1))
	}
}

// isGolombDepth1 applies the depth-1 partial check directly on the
// state: every interior mark's distance to the final mark (the length)
// must miss the currently marked positions. O(n) with n set bits.
func (s state) isGolombDepth1() bool {
	base := ruler.Mark(s.n + 1)
	for i, ok := s.bits.NextSet(0); ok && i < s.n; i, ok = s.bits.NextSet(i + 1) {
		if s.contains(base - ruler.Mark(i+1)) {
			return false
		}
	}

	return true
}

// toRuler converts the state into its Ruler value: one mark per set bit
// plus the final mark n+1. States always decode to valid strictly
// ascending positive marks; a failure here is an engine defect.
func (s state) toRuler() ruler.Ruler {
	marks := make([]ruler.Mark, 0, s.countMarks()+1)
	for i, ok := s.bits.NextSet(0); ok && i < s.n; i, ok = s.bits.NextSet(i + 1) {
		marks = append(marks, ruler.Mark(i+1))
	}
	marks = append(marks, ruler.Mark(s.n+1))

	r, err := ruler.New(marks...)
	if err != nil {
		panic(fmt.Sprintf("enumerate: state %q decoded invalid marks: %v", s, err))
	}

	return r
}

// String renders the state as a bit string, index 0 first: "0101".
func (s state) String() string {
	var sb strings.Builder
	sb.Grow(int(s.n))
	for i := uint(0); i < s.n; i++ {
		if s.bits.Test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

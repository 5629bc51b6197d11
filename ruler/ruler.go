package ruler

import (
	"fmt"
	"strings"
)

// New builds a Ruler from the given marks, excluding the implicit 0.
// The marks must be strictly positive and strictly ascending.
//
// New() with no marks yields the empty ruler (order 1, length 0).
//
// Errors:
//   - ErrMarkNotPositive  — a mark ≤ 0 was supplied.
//   - ErrMarksNotAscending — marks are unordered or duplicated.
func New(marks ...Mark) (Ruler, error) {
	var prev Mark
	for i, m := range marks {
		if m <= 0 {
			return Ruler{}, fmt.Errorf("mark %d at index %d: %w", m, i, ErrMarkNotPositive)
		}
		if i > 0 && m <= prev {
			return Ruler{}, fmt.Errorf("mark %d at index %d: %w", m, i, ErrMarksNotAscending)
		}
		prev = m
	}

	out := make([]Mark, len(marks))
	copy(out, marks)

	return Ruler{marks: out}, nil
}

// Order returns the number of marks on the ruler, counting the implicit 0.
func (r Ruler) Order() int {
	return len(r.marks) + 1
}

// Length returns the largest mark, or 0 for the empty ruler.
func (r Ruler) Length() Mark {
	if len(r.marks) == 0 {
		return 0
	}

	return r.marks[len(r.marks)-1]
}

// Marks returns a copy of the stored marks (excluding the implicit 0).
func (r Ruler) Marks() []Mark {
	out := make([]Mark, len(r.marks))
	copy(out, r.marks)

	return out
}

// Equal reports structural equality of two rulers.
func (r Ruler) Equal(o Ruler) bool {
	if len(r.marks) != len(o.marks) {
		return false
	}
	for i, m := range r.marks {
		if o.marks[i] != m {
			return false
		}
	}

	return true
}

// String renders the ruler with its implicit leading 0, e.g. "[0, 1, 3, 7]".
func (r Ruler) String() string {
	var sb strings.Builder
	sb.WriteString("[0")
	for _, m := range r.marks {
		fmt.Fprintf(&sb, ", %d", m)
	}
	sb.WriteByte(']')

	return sb.String()
}

// IsGolomb verifies the full Golomb property: all n·(n+1)/2 pairwise
// distances among {0} ∪ marks are distinct. It rejects on the first
// repeated distance. Degenerate rulers (0 or 1 marks) are trivially
// Golomb.
//
// Complexity: O(n²) time, O(n²) memory for the distance set.
func (r Ruler) IsGolomb() bool {
	return IsGolombSequence(r.marks)
}

// IsGolombSequence verifies the Golomb property for a raw interior mark
// sequence (the implicit 0 is accounted for, do not include it).
func IsGolombSequence(marks []Mark) bool {
	distances := make(map[Mark]struct{}, len(marks)*(len(marks)+1)/2)
	for i, lhs := range marks {
		// Distance from the implicit 0 to lhs.
		if _, seen := distances[lhs]; seen {
			return false
		}
		distances[lhs] = struct{}{}

		for _, rhs := range marks[i+1:] {
			d := dist(lhs, rhs)
			if _, seen := distances[d]; seen {
				return false
			}
			distances[d] = struct{}{}
		}
	}

	return true
}

// IsGolombDepth1 applies the depth-1 partial check: for every mark other
// than the final one, the distance to the final mark must not collide
// with an existing mark position. This is an O(n) necessary (but not
// sufficient) condition for the full Golomb property, used to cheaply
// reject candidates during enumeration.
func (r Ruler) IsGolombDepth1() bool {
	if len(r.marks) <= 1 {
		return true
	}

	positions := make(map[Mark]struct{}, len(r.marks))
	for _, m := range r.marks {
		positions[m] = struct{}{}
	}

	base := r.Length()
	for _, m := range r.marks[:len(r.marks)-1] {
		if _, hit := positions[dist(m, base)]; hit {
			return false
		}
	}

	return true
}

// Distances returns every pairwise distance of the ruler as a Distance
// record, including the pairs anchored at the implicit 0. For each mark,
// its implicit-0 pair is emitted first, then the pairs with later marks.
func (r Ruler) Distances() []Distance {
	out := make([]Distance, 0, (len(r.marks)*(len(r.marks)+1))/2)
	for i, lhs := range r.marks {
		out = append(out, Distance{Left: 0, Right: lhs, Dist: lhs})
		for _, rhs := range r.marks[i+1:] {
			out = append(out, Distance{Left: lhs, Right: rhs, Dist: rhs - lhs})
		}
	}

	return out
}

package ruler

import "math/bits"

// The id bijection treats an id's binary representation as a
// sentinel-prefixed state vector: the highest set bit encodes the
// ruler's length, every lower bit i encodes the interior mark i+1.
//
//	id = 0b1_0101
//	       │ └┴┴┴─ interior marks {1, 3}   (bits 0 and 2 set)
//	       └────── sentinel: length = 5    (bit position 4 = length − 1)
//
//	FromID(0b10101) = [0, 1, 3, 5]
//
// Every uint64 decodes to exactly one ruler and every ruler of length
// ≤ 64 encodes to exactly one id, so ids form a dense index over the
// candidate space — convenient for sampling and partitioned scans.

// FromID decodes a natural-number id into its Ruler.
//
// Degenerate ids: 0 decodes to the empty ruler (order 1) and 1 decodes
// to [0, 1] — neither has room for a sentinel-prefixed state.
func FromID(id uint64) Ruler {
	switch id {
	case 0:
		return Ruler{}
	case 1:
		return Ruler{marks: []Mark{1}}
	}

	// bits.Len64 is floor(log2(id)) + 1 for id ≥ 1: the ruler length.
	length := bits.Len64(id)

	marks := make([]Mark, 0, bits.OnesCount64(id))
	for i := 0; i < length-1; i++ {
		if id&(1<<uint(i)) != 0 {
			marks = append(marks, Mark(i+1))
		}
	}
	marks = append(marks, Mark(length))

	return Ruler{marks: marks}
}

// ID encodes the ruler into its natural-number id, the inverse of
// FromID. Rulers longer than 64 cannot be represented in a uint64 and
// yield ErrIDOverflow.
func (r Ruler) ID() (uint64, error) {
	switch {
	case len(r.marks) == 0:
		return 0, nil
	case r.Length() == 1:
		return 1, nil
	case r.Length() > 64:
		return 0, ErrIDOverflow
	}

	// Sentinel bit marks the length; one bit per interior mark.
	id := uint64(1) << uint(r.Length()-1)
	for _, m := range r.marks[:len(r.marks)-1] {
		id |= 1 << uint(m-1)
	}

	return id, nil
}

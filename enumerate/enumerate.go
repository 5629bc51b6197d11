package enumerate

import "github.com/katalvlaran/golomb/ruler"

// This file is the enumeration facade: entry points combining the
// traversal strategies with the Golomb verifier for the common query
// shapes. Out-of-range parameters yield empty results — an impossible
// query has no answer, which is exhaustion, not an error. Use the
// iterator constructors directly when validation sentinels are wanted.

// Rulers enumerates every ruler of every length from 2 up to maxLength,
// via exhaustive traversal, concatenated in ascending length order.
// Returns 2^1 + 2^2 + … + 2^(maxLength−1) rulers; empty for maxLength < 2.
func Rulers(maxLength int) []ruler.Ruler {
	var out []ruler.Ruler
	for length := 2; length <= maxLength; length++ {
		it, err := NewExhaustive(length)
		if err != nil {
			continue
		}
		out = append(out, it.Collect()...)
	}

	return out
}

// RulersWithLength enumerates every ruler of exactly the given length.
// The degenerate lengths 0 and 1 decode from the id bijection (ids 0
// and 1); negative lengths yield nothing.
func RulersWithLength(length int) []ruler.Ruler {
	switch {
	case length < 0:
		return nil
	case length == 0:
		return []ruler.Ruler{ruler.FromID(0)}
	case length == 1:
		return []ruler.Ruler{ruler.FromID(1)}
	}

	it, err := NewExhaustive(length)
	if err != nil {
		return nil
	}

	return it.Collect()
}

// RulersWithOrder enumerates every ruler of the given order among all
// lengths 2..length, by filtering the exhaustive enumeration post hoc.
// The rulers do not need to satisfy the Golomb property.
func RulersWithOrder(order, length int) []ruler.Ruler {
	var out []ruler.Ruler
	for _, r := range Rulers(length) {
		if r.Order() == order {
			out = append(out, r)
		}
	}

	return out
}

// PrunedRulers enumerates every ruler of exactly the given order and
// length via cardinality-pruned traversal: C(length−1, order−2) rulers,
// no duplicates, no omissions, independent of the Golomb property.
//
// Order 2 is special-cased without tree traversal: the only order-2
// ruler of a given length is [0, length]. The pruned termination rule
// is not defined below order 3 and is deliberately not generalized.
func PrunedRulers(order, length int) []ruler.Ruler {
	if order == 2 && length >= 1 {
		r, err := ruler.New(ruler.Mark(length))
		if err != nil {
			return nil
		}

		return []ruler.Ruler{r}
	}

	it, err := NewPruned(order, length)
	if err != nil {
		return nil
	}

	return it.Collect()
}

// GolombRulers enumerates every Golomb ruler of the given order among
// all lengths 2..maxLength: exhaustive traversal filtered by order and
// by the full Golomb verifier.
func GolombRulers(order, maxLength int) []ruler.Ruler {
	var out []ruler.Ruler
	for _, r := range Rulers(maxLength) {
		if r.Order() == order && r.IsGolomb() {
			out = append(out, r)
		}
	}

	return out
}

// GolombRulersWithLength enumerates every Golomb ruler of exactly the
// given order and length, via exhaustive traversal and the full
// verifier.
func GolombRulersWithLength(order, length int) []ruler.Ruler {
	var out []ruler.Ruler
	for _, r := range RulersWithLength(length) {
		if r.Order() == order && r.IsGolomb() {
			out = append(out, r)
		}
	}

	return out
}

// GolombRulersPruned enumerates every Golomb ruler of the given order
// among lengths 2..maxLength, via cardinality-pruned traversal filtered
// by the full verifier. Equivalent to GolombRulers with far fewer
// states visited.
func GolombRulersPruned(order, maxLength int) []ruler.Ruler {
	var out []ruler.Ruler
	for length := 2; length <= maxLength; length++ {
		out = append(out, GolombRulersPrunedWithLength(order, length)...)
	}

	return out
}

// GolombRulersPrunedWithLength enumerates every Golomb ruler of exactly
// the given order and length: the pruned traversal (order-2 special
// case included) filtered by the full verifier.
func GolombRulersPrunedWithLength(order, length int) []ruler.Ruler {
	var out []ruler.Ruler
	for _, r := range PrunedRulers(order, length) {
		if r.IsGolomb() {
			out = append(out, r)
		}
	}

	return out
}

// GolombRulersDepth enumerates depth-filtered candidates of the given
// order among lengths 2..maxLength: the cardinality-pruned traversal
// with candidates failing the cheap partial check discarded. The output
// is a superset of the true Golomb rulers of those parameters — apply
// the full verifier to finish the job. Depth is reserved; every depth
// ≥ 1 currently applies the depth-1 check.
func GolombRulersDepth(order, maxLength, depth int) []ruler.Ruler {
	var out []ruler.Ruler
	for length := 2; length <= maxLength; length++ {
		out = append(out, GolombRulersDepthWithLength(order, length, depth)...)
	}

	return out
}

// GolombRulersDepthWithLength is GolombRulersDepth for a single exact
// length.
func GolombRulersDepthWithLength(order, length, depth int) []ruler.Ruler {
	it, err := NewDepthLimited(order, length, depth)
	if err != nil {
		return nil
	}

	return it.Collect()
}

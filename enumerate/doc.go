// Package enumerate walks the combinatorial space of candidate rulers:
// tree-pruned depth-first traversal over bit-vector states, exposed as
// lazy, finite, pull-based iterators and a facade of common queries.
//
// 🚀 How it works
//
//	A ruler of length L is encoded as a bit-vector of L−1 interior
//	positions (the endpoints 0 and L are implicit). The candidate space
//	is then the binary tree of all 2^(L−1) subsets, and enumeration is
//	a depth-first walk driven by pure state transitions:
//
//	  extend     — descend one level ("go left", append a cleared bit)
//	  flipLast   — sibling move ("go right", set the final bit)
//	  backtrack  — binary-counter increment from the rightmost bit
//	  addMark    — set the first cleared bit from the right
//	  jumpBack   — next same-cardinality combination past a saturated run
//
// ✨ Strategies (see Strategy):
//   - Exhaustive        — every subset of a fixed length, exactly once
//   - CardinalityPruned — only the C(L−1, order−2) states of a fixed
//     order, skipping branches that cannot match
//   - DepthLimited      — pruned, plus an O(n) partial Golomb filter
//     anchored at the final mark
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/golomb/enumerate"
//
//	// lazy iteration
//	it, err := enumerate.NewPruned(4, 15)
//	if err != nil { ... }
//	for r, ok := it.Next(); ok; r, ok = it.Next() {
//	    if r.IsGolomb() {
//	        fmt.Println(r)
//	    }
//	}
//
//	// or the facade, eager and filtered
//	rulers := enumerate.GolombRulersPrunedWithLength(4, 15)
//
// Iterators own their state and share nothing: run as many as you like
// concurrently without synchronization. Sequences are finite; there is
// no cancellation beyond ceasing to pull and no resumability — a fresh
// traversal restarts from its parameters.
//
// Complexity: Exhaustive visits 2^(L−1) states; CardinalityPruned
// visits C(L−1, order−2); DepthLimited adds an O(order) check per
// visited state.
package enumerate

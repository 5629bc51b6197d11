// Package ruler defines the immutable Ruler value type, the Golomb
// property verifier, distance diagnostics, and the bijection between
// rulers and dense natural-number ids.
//
// 🚀 What is a Ruler?
//
//	A strictly increasing sequence of positive integer marks, with an
//	implicit leading mark at 0.  Its order is the number of marks
//	(counting the implicit 0) and its length is the largest mark:
//
//	  [0, 1, 3, 7]  →  order 4, length 7
//
//	A ruler is a Golomb ruler when all pairwise distances between its
//	marks (including the implicit 0) are distinct.
//
// ✨ Key features:
//   - Ruler is an immutable value object; equality is structural
//   - IsGolomb: exact O(n²) verification with early rejection
//   - IsGolombDepth1: O(n) necessary condition anchored at the final mark
//   - Distances: (left, right, |right−left|) triples for diagnostics
//   - FromID / ID: a bijection between rulers and uint64 ids, usable for
//     sampling and iteration by index
//
// Marks are int64 values (see Mark); a ruler longer than 64 cannot be
// represented as an id and ID reports ErrIDOverflow.
//
// See examples in example_test.go.
package ruler

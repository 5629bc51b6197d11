// Package golomb is an in-memory toolkit for enumerating and verifying
// Golomb rulers — sets of integer marks in which every pairwise distance
// is unique.
//
// 🚀 What is golomb?
//
//	A pure, pull-based enumeration library that brings together:
//		• Value types: immutable Ruler with order, length & distance records
//		• Verification: the full Golomb property check and a cheap depth-1 filter
//		• Traversals: exhaustive, cardinality-pruned and depth-limited walks
//		  of the binary subset tree of interior mark positions
//		• Sampling: a dense bijection between rulers and natural-number ids
//		• Construction: naive and bounded-greedy single-ruler builders
//
// ✨ Why choose golomb?
//
//   - Lazy & finite – every traversal is a self-contained value generator
//   - No shared state – independent iterators run concurrently without locks
//   - Pure Go – no cgo, no I/O, no hidden machinery
//   - Boundary-honest – exhaustion is absence, bad parameters are sentinels
//
// Everything is organized under three subpackages:
//
//	ruler/     — the Ruler value type, Golomb verifier & id bijection
//	enumerate/ — the bit-vector state engine, traversal strategies & facade
//	construct/ — recursive single-ruler constructors (naive & improved)
//
// Quick ASCII example:
//
//	0   1       3               7
//	├───┼───────┼───────────────┤
//
//	the ruler [0, 1, 3, 7]: six pairwise distances {1, 2, 3, 4, 6, 7},
//	all distinct, hence a Golomb ruler of order 4 and length 7.
//
// Finding the shortest ruler of a given order (the Optimal Golomb Ruler
// problem) is a downstream consumer concern: this module enumerates the
// candidate space, it does not minimize over it.
//
//	go get github.com/katalvlaran/golomb
package golomb

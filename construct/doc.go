// Package construct provides standalone recursive constructors that each
// build a single Golomb ruler of a requested order — the quick way to get
// *a* valid ruler, as opposed to package enumerate, which walks the whole
// candidate space.
//
// The package offers two constructors:
//
//   - Naive:    powers-of-two construction; mark k is 2^k − 1. Always
//     Golomb, exponentially long.
//   - Improved: bounded greedy extension from the seed [0, 1, 3]; each
//     level appends the first candidate within one doubling of the last
//     mark whose gaps avoid the existing distance set. Much shorter
//     rulers, still not optimal in general.
//
// Guarantees:
//
//   - Deterministic output for a given order; no RNG, no options.
//   - Every returned ruler satisfies the full Golomb property.
//   - Sentinel-only error policy: ErrNonPositiveOrder, ErrOrderTooLarge,
//     ErrNoCandidate (internal invariant violation, treat as fatal).
//
// Neither constructor attempts the Optimal Golomb Ruler problem; for
// candidate search over a fixed order and length, see package enumerate.
package construct

// Package xorshift implements a small deterministic 64-bit pseudo-random
// generator with explicit and entropy-based seeding.
//
// The generator keeps a single 64-bit state word and advances it through a
// three-step xorshift transform (right 12, left 25, right 27), returning the
// post-shift state scrambled by a fixed odd multiplier. It exists for cheap,
// reproducible randomness — seeded name generation, test fixtures, jitter —
// not for anything security-sensitive.
//
// # Features
//
// - Deterministic: the same seed always produces the same output sequence
// - Zero-seed safe: seed 0 is remapped to a fixed non-zero constant
// - Entropy seeding: clock time perturbed by an atomic process-wide counter
// - Bounded draws: Index(n) maps outputs into [0, n) without ever panicking
// - Cloneable: a clone continues the exact sequence of its source
//
// # Usage
//
// Reproducible sequence from a fixed seed:
//
//	rng := xorshift.New(42)
//	i := rng.Index(100) // same value on every run
//
// Best-effort unique seeding:
//
//	rng := xorshift.NewFromEntropy()
//	v := rng.Next()
//
// # Concurrency
//
// A Rand is plain mutable state and is not safe for concurrent use. Hold one
// instance per goroutine, or synchronize externally. Only the internal
// entropy counter is shared process-wide, and it is a lock-free atomic.
//
// # Caveats
//
// Index uses modulo reduction, so non-power-of-two bounds carry a modulo
// bias. Against a 64-bit draw space the bias is statistically negligible for
// small bounds, and it is accepted here; do not use this package where
// uniformity guarantees matter, and never for cryptographic purposes.
package xorshift

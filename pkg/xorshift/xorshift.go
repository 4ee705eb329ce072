package xorshift

import (
	"math/bits"
	"sync/atomic"
	"time"
)

const (
	// zeroSeedReplacement substitutes an explicit zero seed. An all-zero state
	// is a fixed point of the shift transform and would emit zeros forever.
	zeroSeedReplacement = 0x4d595df4d0f33173

	// scrambler is the odd multiplier applied to the post-shift state so that
	// low-order bits of consecutive outputs are not trivially correlated.
	scrambler = 0x2545F4914F6CDD1D

	// counterStep perturbs the entropy counter between seedings.
	counterStep = 0x9E37
)

// entropyCounter separates generators created within the same clock tick.
// Plain atomic increment is all it needs; it never establishes ordering.
var entropyCounter atomic.Uint64

func init() {
	entropyCounter.Store(1)
}

// Rand is a deterministic 64-bit xorshift generator. It is cheap to create
// and clone but holds plain mutable state, so a single instance must not be
// shared between goroutines without external synchronization.
//
// This is not a cryptographic generator and must never be used where
// uniformity or unpredictability guarantees matter.
type Rand struct {
	state uint64
}

// New returns a generator seeded with the given value. A zero seed is
// remapped to a fixed non-zero constant.
func New(seed uint64) *Rand {
	if seed == 0 {
		seed = zeroSeedReplacement
	}
	return &Rand{state: seed}
}

// NewFromEntropy returns a generator seeded from the wall clock combined
// with a process-wide counter, so that generators created in rapid
// succession still receive distinct seeds.
func NewFromEntropy() *Rand {
	now := uint64(time.Now().UnixNano())
	extra := entropyCounter.Add(counterStep) - counterStep
	return New(now ^ extra ^ bits.RotateLeft64(extra, 32))
}

// Next advances the state through the 12/25/27 xorshift transform and
// returns the scrambled output.
func (r *Rand) Next() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.state = x
	return x * scrambler
}

// Index returns a value in [0, n) via modulo reduction. For n <= 0 it
// returns 0 without advancing the state. The modulo bias for
// non-power-of-two bounds is negligible for small n against a 64-bit draw
// space and is accepted.
func (r *Rand) Index(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Clone returns an independent generator with the same current state, which
// therefore reproduces the same future draw sequence as the receiver.
func (r *Rand) Clone() *Rand {
	return &Rand{state: r.state}
}

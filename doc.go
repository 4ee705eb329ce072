// Package namegen generates human-readable two-word names — a Title Case
// adjective plus a themed noun, like "Shiny Mango" or "Nebulous Rocket" —
// for use as identifiers, slugs, or placeholder labels.
//
// Two themes are built in (food and sci-fi), each combining a shared
// adjective catalog with its own noun catalog for several thousand
// combinations per theme.
//
// # Features
//
// - Quick global API backed by shared entropy-seeded generators
// - Seedable Generator for fully reproducible sequences
// - Title Case rendering with per-segment capitalization of compound nouns
// - Cloneable generators that replay the same future draws
// - No error paths: every operation is total
//
// # Usage
//
// One-off random names:
//
//	name := namegen.RandomFoodName()  // "Zesty Dumpling"
//	name = namegen.RandomSciFiName()  // "Cosmic Pulsar"
//
// Raw pairs instead of rendered names:
//
//	pair := namegen.RandomFoodWords() // {glossy black cod}
//	pair.Adjective                    // "glossy"
//	pair.String()                     // "Glossy Black Cod"
//
// Reproducible output from a fixed seed:
//
//	gen := namegen.FromSeed(42)
//	gen.FoodName()  // same name on every run
//	gen.SciFiName()
//
// Branch a sequence without disturbing the original:
//
//	fork := gen.Clone()
//	// fork now replays the same future draws as gen
//
// # Randomness
//
// Draws come from a small deterministic xorshift generator (pkg/xorshift),
// seeded either explicitly or from the wall clock perturbed by an atomic
// counter. This is convenience randomness for naming things: it is not
// cryptographically secure and repeated draws may collide — callers that
// need uniqueness must track it themselves.
//
// # Concurrency
//
// The package-level Random functions are safe for concurrent use. A
// Generator instance is not internally synchronized: hold one per goroutine
// or add external locking.
package namegen

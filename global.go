package namegen

import "sync"

// generators backs the package-level Random functions. Pooled instances are
// created lazily with entropy seeding and each carries its own evolving
// random state, so concurrent callers never contend on a shared state word;
// the only cross-goroutine shared value is the entropy counter inside
// pkg/xorshift.
var generators = sync.Pool{
	New: func() any { return New() },
}

func randomPair(nouns []string) NamePair {
	g := generators.Get().(*Generator)
	pair := drawPair(g.rng, nouns)
	generators.Put(g)
	return pair
}

// RandomFoodWords draws a food-themed adjective + noun pair from a shared
// entropy-seeded generator.
func RandomFoodWords() NamePair {
	return randomPair(foodNouns)
}

// RandomSciFiWords draws a sci-fi-themed adjective + noun pair from a
// shared entropy-seeded generator.
func RandomSciFiWords() NamePair {
	return randomPair(scifiNouns)
}

// RandomFoodName returns a Title Case food name such as "Shiny Mango".
func RandomFoodName() string {
	return randomPair(foodNouns).String()
}

// RandomSciFiName returns a Title Case sci-fi name such as "Nebulous Rocket".
func RandomSciFiName() string {
	return randomPair(scifiNouns).String()
}

package namegen

import "slices"

// The catalogs are compile-time data and must stay immutable for the
// process lifetime, so the accessors below hand out copies. An empty
// catalog is a build bug, guarded by tests rather than runtime checks.

// Adjectives returns a copy of the adjective catalog shared by all themes.
func Adjectives() []string {
	return slices.Clone(adjectives)
}

// FoodNouns returns a copy of the food-themed noun catalog.
func FoodNouns() []string {
	return slices.Clone(foodNouns)
}

// SciFiNouns returns a copy of the sci-fi-themed noun catalog.
func SciFiNouns() []string {
	return slices.Clone(scifiNouns)
}

// Package titlecase renders words in Title Case with delimiter-aware
// segment capitalization.
//
// Each word is capitalized on its first character and lower-cased on the
// rest, and an internal hyphen, underscore, or embedded space starts a new
// capitalized segment, mirroring natural Title Case for compound words.
//
// # Usage
//
//	titlecase.Word("mango")       // "Mango"
//	titlecase.Word("black cod")   // "Black Cod"
//	titlecase.Word("warp-drive")  // "Warp-Drive"
//	titlecase.Join("shiny", "mango") // "Shiny Mango"
//
// # Unicode
//
// Conversion uses golang.org/x/text full casing rather than simple rune
// mapping, so characters whose case conversion expands to multiple code
// points (such as ß) are handled correctly. Locale-specific case-folding
// rules (Turkish dotless i and similar) are out of scope; the undetermined
// locale is used throughout.
package titlecase

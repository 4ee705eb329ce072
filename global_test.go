package namegen_test

import (
	"strings"
	"sync"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastylab/namegen"
)

func TestRandomNamesAreWellFormed(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		for _, name := range []string{namegen.RandomFoodName(), namegen.RandomSciFiName()} {
			first, _ := utf8.DecodeRuneInString(name)
			require.True(t, unicode.IsUpper(first), "name %q must start uppercase", name)
			require.Contains(t, name, " ", "name %q must contain a space", name)
			require.Equal(t, strings.TrimSpace(name), name, "name %q has stray whitespace", name)
		}
	}
}

func TestRandomWordsComeFromCatalogs(t *testing.T) {
	t.Parallel()

	adjectives := toSet(namegen.Adjectives())
	foodNouns := toSet(namegen.FoodNouns())
	scifiNouns := toSet(namegen.SciFiNouns())

	for i := 0; i < 100; i++ {
		food := namegen.RandomFoodWords()
		require.Contains(t, adjectives, food.Adjective)
		require.Contains(t, foodNouns, food.Noun)

		scifi := namegen.RandomSciFiWords()
		require.Contains(t, adjectives, scifi.Adjective)
		require.Contains(t, scifiNouns, scifi.Noun)
	}
}

func TestRandomNamesShowVariety(t *testing.T) {
	t.Parallel()

	// With thousands of combinations, 40 draws repeating a single name
	// would mean the shared generator is stuck.
	seen := make(map[string]struct{})
	for i := 0; i < 40; i++ {
		seen[namegen.RandomFoodName()] = struct{}{}
	}
	assert.GreaterOrEqual(t, len(seen), 5, "expected variety, got %d unique names", len(seen))
}

func TestRandomFunctionsAreConcurrencySafe(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				_ = namegen.RandomFoodName()
				_ = namegen.RandomSciFiName()
				_ = namegen.RandomFoodWords()
				_ = namegen.RandomSciFiWords()
			}
		}()
	}
	wg.Wait()
}

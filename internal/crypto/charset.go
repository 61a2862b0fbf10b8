package crypto

import (
	"errors"
	"strings"
)

const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Numbers   = "0123456789"

	// Symbols is shared by the generator and the validator so the two
	// definitions cannot drift apart.
	Symbols = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// AmbiguousChars are visually confusable and can be excluded on request.
	AmbiguousChars = "Il1O0o"
)

var (
	ErrNoCategories    = errors.New("at least one character category must be enabled")
	ErrCategoryEmptied = errors.New("a character category has no characters left after exclusions")
)

// GenerateOptions configures the password generator.
type GenerateOptions struct {
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool

	// Exclude lists individual characters to remove from every category.
	Exclude string
	// ExcludeAmbiguous additionally removes AmbiguousChars.
	ExcludeAmbiguous bool
	// RequireEach guarantees at least one character from every enabled category.
	RequireEach bool
}

// DefaultOptions returns sensible defaults: all categories enabled, nothing excluded.
func DefaultOptions() GenerateOptions {
	return GenerateOptions{
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// characterSets holds the per-category alphabets after exclusions, in
// declaration order, plus their concatenation used for random fill.
type characterSets struct {
	categories [][]rune
	pool       []rune
}

// buildCharacterSets resolves the enabled categories under the exclusion
// rules. Exclusions operate on code points, so multi-byte characters in
// opts.Exclude behave as single units.
func buildCharacterSets(opts GenerateOptions) (characterSets, error) {
	exclude := opts.Exclude
	if opts.ExcludeAmbiguous {
		exclude += AmbiguousChars
	}

	var sets characterSets
	for _, c := range []struct {
		enabled  bool
		alphabet string
	}{
		{opts.Uppercase, Uppercase},
		{opts.Lowercase, Lowercase},
		{opts.Numbers, Numbers},
		{opts.Symbols, Symbols},
	} {
		if !c.enabled {
			continue
		}
		filtered := filterRunes(c.alphabet, exclude)
		if len(filtered) == 0 {
			return characterSets{}, ErrCategoryEmptied
		}
		sets.categories = append(sets.categories, filtered)
		sets.pool = append(sets.pool, filtered...)
	}

	if len(sets.categories) == 0 {
		return characterSets{}, ErrNoCategories
	}
	return sets, nil
}

// filterRunes returns alphabet without the characters in exclude.
func filterRunes(alphabet, exclude string) []rune {
	out := make([]rune, 0, len(alphabet))
	for _, r := range alphabet {
		if !strings.ContainsRune(exclude, r) {
			out = append(out, r)
		}
	}
	return out
}

package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	MinLength = 4
	MaxLength = 128

	MinCount = 1
	MaxCount = 100
)

var (
	ErrLengthTooShort = errors.New("password length must be at least 4")
	ErrLengthTooLong  = errors.New("password length must be at most 128")
	ErrCountTooLow    = errors.New("password count must be at least 1")
	ErrCountTooHigh   = errors.New("password count must be at most 100")

	// ErrLengthTooFewCategories is returned when RequireEach is set and the
	// requested length cannot fit one character from every enabled category.
	// Failing loudly beats returning a password longer than asked for.
	ErrLengthTooFewCategories = errors.New("password length must be at least equal to the number of enabled categories when requiring each")
)

// IsRangeError reports whether err is a length or count bounds violation.
func IsRangeError(err error) bool {
	return errors.Is(err, ErrLengthTooShort) ||
		errors.Is(err, ErrLengthTooLong) ||
		errors.Is(err, ErrCountTooLow) ||
		errors.Is(err, ErrCountTooHigh) ||
		errors.Is(err, ErrLengthTooFewCategories)
}

// IsConfigurationError reports whether err comes from unusable options.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrNoCategories) || errors.Is(err, ErrCategoryEmptied)
}

// Generate creates a cryptographically secure random password based on the
// given options. When opts.RequireEach is set the result contains at least
// one character from every enabled category.
func Generate(length int, opts GenerateOptions) (string, error) {
	if length < MinLength {
		return "", ErrLengthTooShort
	}
	if length > MaxLength {
		return "", ErrLengthTooLong
	}

	sets, err := buildCharacterSets(opts)
	if err != nil {
		return "", err
	}
	if opts.RequireEach && length < len(sets.categories) {
		return "", ErrLengthTooFewCategories
	}

	result := make([]rune, 0, length)

	// Guarantee one character from each enabled category up front; the
	// shuffle below disperses them.
	if opts.RequireEach {
		for _, alphabet := range sets.categories {
			r, err := randRune(alphabet)
			if err != nil {
				return "", err
			}
			result = append(result, r)
		}
	}

	// Fill the remaining positions from the full pool.
	for len(result) < length {
		r, err := randRune(sets.pool)
		if err != nil {
			return "", err
		}
		result = append(result, r)
	}

	if err := secureShuffle(result); err != nil {
		return "", err
	}
	return string(result), nil
}

// GenerateMany creates count independent passwords with the same length and
// options. The first failure aborts the batch; no partial results are returned.
func GenerateMany(count, length int, opts GenerateOptions) ([]string, error) {
	if count < MinCount {
		return nil, ErrCountTooLow
	}
	if count > MaxCount {
		return nil, ErrCountTooHigh
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		password, err := Generate(length, opts)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, password)
	}
	return passwords, nil
}

// randRune picks a uniformly random rune from alphabet using crypto/rand.
func randRune(alphabet []rune) (rune, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		return 0, err
	}
	return alphabet[n.Int64()], nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand. Working on
// runes keeps multi-byte characters intact.
func secureShuffle(data []rune) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}

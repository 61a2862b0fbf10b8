package crypto

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Requirements configures password validation. Length checks always run;
// each Require flag adds one more check when set.
type Requirements struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireNumbers   bool
	RequireSymbols   bool
}

// DefaultRequirements returns the baseline: length 8-128, no class requirements.
func DefaultRequirements() Requirements {
	return Requirements{
		MinLength: 8,
		MaxLength: 128,
	}
}

// Check is the outcome of a single validation rule.
type Check struct {
	Name    string
	Passed  bool
	Message string
}

// Report aggregates all evaluated checks. Valid holds iff every check passed.
type Report struct {
	Checks   []Check
	Passed   int
	Total    int
	Score    int
	Strength string
	Valid    bool
}

// Validate evaluates password against req and always returns a report; there
// are no failure modes. Lengths are measured in code points, matching the
// generator's notion of length.
func Validate(password string, req Requirements) Report {
	length := utf8.RuneCountInString(password)

	checks := []Check{
		{
			Name:    "minLength",
			Passed:  length >= req.MinLength,
			Message: fmt.Sprintf("must be at least %d characters", req.MinLength),
		},
		{
			Name:    "maxLength",
			Passed:  length <= req.MaxLength,
			Message: fmt.Sprintf("must be at most %d characters", req.MaxLength),
		},
	}

	if req.RequireUppercase {
		checks = append(checks, Check{
			Name:    "uppercase",
			Passed:  strings.ContainsAny(password, Uppercase),
			Message: "must contain an uppercase letter",
		})
	}
	if req.RequireLowercase {
		checks = append(checks, Check{
			Name:    "lowercase",
			Passed:  strings.ContainsAny(password, Lowercase),
			Message: "must contain a lowercase letter",
		})
	}
	if req.RequireNumbers {
		checks = append(checks, Check{
			Name:    "numbers",
			Passed:  strings.ContainsAny(password, Numbers),
			Message: "must contain a number",
		})
	}
	if req.RequireSymbols {
		checks = append(checks, Check{
			Name:    "symbols",
			Passed:  strings.ContainsAny(password, Symbols),
			Message: "must contain a symbol",
		})
	}

	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}

	score := 100
	if len(checks) > 0 {
		score = int(math.Round(float64(passed) / float64(len(checks)) * 100))
	}

	return Report{
		Checks:   checks,
		Passed:   passed,
		Total:    len(checks),
		Score:    score,
		Strength: strengthLabel(score),
		Valid:    passed == len(checks),
	}
}

func strengthLabel(score int) string {
	switch {
	case score >= 100:
		return "strong"
	case score >= 75:
		return "moderate"
	case score >= 50:
		return "weak"
	default:
		return "very_weak"
	}
}

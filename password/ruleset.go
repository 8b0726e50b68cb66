// SPDX-License-Identifier: MIT
// Package: password
//
// ruleset.go — the RuleSet configuration object and its validation logic.
//
// Contract (strict):
//   • Setters validate immediately and reject a mutation that would leave
//     the RuleSet in an impossible state; the minLength ≤ maxLength
//     invariant can never observably break between calls.
//   • A RuleSet is read-only during a generation call; Clone() produces a
//     fully independent copy for per-call variants.

package password

import (
	"fmt"
	"strings"
)

// RuleSet defines password composition constraints: length bounds, per-class
// minimum counts, the consecutive-identical cap, the special-character
// alphabet, and the generation/enumeration budgets.
//
// Construct with NewRuleSet and mutate through the setters; the zero value
// is not usable.
type RuleSet struct {
	minLength               int
	maxLength               int
	maxConsecutiveIdentical int
	minLowercase            int
	minUppercase            int
	minNumeric              int
	minSpecial              int
	specialCharacters       string
	maxAttempts             int
	maxEnumerations         int
}

// NewRuleSet returns a RuleSet populated with the package defaults:
// length 16–64, at most 2 consecutive identical characters, a minimum of
// one character from each class, 10000 generation attempts and 100
// sequence enumerations.
func NewRuleSet() *RuleSet {
	return &RuleSet{
		minLength:               DefaultMinLength,
		maxLength:               DefaultMaxLength,
		maxConsecutiveIdentical: DefaultMaxConsecutiveIdentical,
		minLowercase:            DefaultMinLowercase,
		minUppercase:            DefaultMinUppercase,
		minNumeric:              DefaultMinNumeric,
		minSpecial:              DefaultMinSpecial,
		specialCharacters:       DefaultSpecialCharacters,
		maxAttempts:             DefaultMaxAttempts,
		maxEnumerations:         DefaultMaxEnumerations,
	}
}

// Clone returns a deep, independent copy of r. Mutating the copy never
// affects the original and vice versa.
//
// Complexity: O(1) plus the special-character string copy.
func (r *RuleSet) Clone() *RuleSet {
	cp := *r

	return &cp
}

//-----------------------------------------------------------------------------
// Getters — read-only view of the configuration.
//-----------------------------------------------------------------------------

// MinLength returns the lower length bound.
func (r *RuleSet) MinLength() int { return r.minLength }

// MaxLength returns the upper length bound.
func (r *RuleSet) MaxLength() int { return r.maxLength }

// MaxConsecutiveIdentical returns the consecutive-identical cap: a run of
// MaxConsecutiveIdentical+1 identical adjacent characters is forbidden.
func (r *RuleSet) MaxConsecutiveIdentical() int { return r.maxConsecutiveIdentical }

// MinLowercase returns the required minimum count of lowercase characters.
func (r *RuleSet) MinLowercase() int { return r.minLowercase }

// MinUppercase returns the required minimum count of uppercase characters.
func (r *RuleSet) MinUppercase() int { return r.minUppercase }

// MinNumeric returns the required minimum count of numeric characters.
func (r *RuleSet) MinNumeric() int { return r.minNumeric }

// MinSpecial returns the required minimum count of special characters.
func (r *RuleSet) MinSpecial() int { return r.minSpecial }

// SpecialCharacters returns the alphabet of the special character class.
func (r *RuleSet) SpecialCharacters() string { return r.specialCharacters }

// MaxAttempts returns the generate-and-validate retry budget.
func (r *RuleSet) MaxAttempts() int { return r.maxAttempts }

// MaxEnumerations returns the bound of the Passwords sequence.
func (r *RuleSet) MaxEnumerations() int { return r.maxEnumerations }

//-----------------------------------------------------------------------------
// Setters — each validates immediately, not deferred.
//-----------------------------------------------------------------------------

// SetMinLength sets the lower length bound. It fails with
// ErrInvalidConfiguration if v is negative or exceeds the current upper
// bound.
func (r *RuleSet) SetMinLength(v int) error {
	if v < 0 {
		return fmt.Errorf("SetMinLength: negative length %d: %w", v, ErrInvalidConfiguration)
	}
	if v > r.maxLength {
		return fmt.Errorf("SetMinLength: min %d exceeds max %d: %w", v, r.maxLength, ErrInvalidConfiguration)
	}
	r.minLength = v

	return nil
}

// SetMaxLength sets the upper length bound. It fails with
// ErrInvalidConfiguration if v is below the current lower bound.
func (r *RuleSet) SetMaxLength(v int) error {
	if v < r.minLength {
		return fmt.Errorf("SetMaxLength: max %d below min %d: %w", v, r.minLength, ErrInvalidConfiguration)
	}
	r.maxLength = v

	return nil
}

// SetLengthRange overwrites both length bounds atomically. It fails with
// ErrInvalidConfiguration if min is negative or min > max; on failure
// neither bound changes.
func (r *RuleSet) SetLengthRange(min, max int) error {
	if min < 0 {
		return fmt.Errorf("SetLengthRange: negative min %d: %w", min, ErrInvalidConfiguration)
	}
	if min > max {
		return fmt.Errorf("SetLengthRange: min %d exceeds max %d: %w", min, max, ErrInvalidConfiguration)
	}
	r.minLength, r.maxLength = min, max

	return nil
}

// SetExactLength pins both bounds to v, so every generated password has
// exactly that length. Delegates to SetLengthRange; the old bounds play no
// part in validation.
func (r *RuleSet) SetExactLength(v int) error {
	return r.SetLengthRange(v, v)
}

// SetMaxConsecutiveIdentical sets the consecutive-identical cap. A run of
// v+1 identical adjacent characters is forbidden by IsValid.
//
// Note: v = 0 forbids a "run" of a single character, so every non-empty
// candidate fails validation and generation exhausts its attempt budget.
func (r *RuleSet) SetMaxConsecutiveIdentical(v int) error {
	if v < 0 {
		return fmt.Errorf("SetMaxConsecutiveIdentical: negative cap %d: %w", v, ErrInvalidConfiguration)
	}
	r.maxConsecutiveIdentical = v

	return nil
}

// SetMinLowercase sets the required minimum count of lowercase characters.
func (r *RuleSet) SetMinLowercase(v int) error {
	if v < 0 {
		return fmt.Errorf("SetMinLowercase: negative minimum %d: %w", v, ErrInvalidConfiguration)
	}
	r.minLowercase = v

	return nil
}

// SetMinUppercase sets the required minimum count of uppercase characters.
func (r *RuleSet) SetMinUppercase(v int) error {
	if v < 0 {
		return fmt.Errorf("SetMinUppercase: negative minimum %d: %w", v, ErrInvalidConfiguration)
	}
	r.minUppercase = v

	return nil
}

// SetMinNumeric sets the required minimum count of numeric characters.
func (r *RuleSet) SetMinNumeric(v int) error {
	if v < 0 {
		return fmt.Errorf("SetMinNumeric: negative minimum %d: %w", v, ErrInvalidConfiguration)
	}
	r.minNumeric = v

	return nil
}

// SetMinSpecial sets the required minimum count of special characters.
func (r *RuleSet) SetMinSpecial(v int) error {
	if v < 0 {
		return fmt.Errorf("SetMinSpecial: negative minimum %d: %w", v, ErrInvalidConfiguration)
	}
	r.minSpecial = v

	return nil
}

// SetSpecialCharacters replaces the special-class alphabet. It fails with
// ErrInvalidConfiguration when s is empty, since an empty alphabet cannot
// be drawn from.
//
// Membership is tested independently of letter/digit classification: a set
// that contains letters or digits makes those characters count toward both
// their base class and the special class.
func (r *RuleSet) SetSpecialCharacters(s string) error {
	if s == "" {
		return fmt.Errorf("SetSpecialCharacters: empty set: %w", ErrInvalidConfiguration)
	}
	r.specialCharacters = s

	return nil
}

// SetMaxAttempts sets the generate-and-validate retry budget; at least one
// attempt is required.
func (r *RuleSet) SetMaxAttempts(v int) error {
	if v < 1 {
		return fmt.Errorf("SetMaxAttempts: budget %d below 1: %w", v, ErrInvalidConfiguration)
	}
	r.maxAttempts = v

	return nil
}

// SetMaxEnumerations sets the bound of the Passwords sequence.
func (r *RuleSet) SetMaxEnumerations(v int) error {
	if v < 0 {
		return fmt.Errorf("SetMaxEnumerations: negative bound %d: %w", v, ErrInvalidConfiguration)
	}
	r.maxEnumerations = v

	return nil
}

//-----------------------------------------------------------------------------
// Derived data and validation.
//-----------------------------------------------------------------------------

// CharacterSet returns the fallback alphabet: the concatenation of the
// class alphabets in the fixed order lowercase, uppercase, numeric,
// special, each included iff its minimum count is greater than zero.
//
// Disabling a class (minimum 0) removes its alphabet entirely, even though
// individual characters of that class may still appear through a custom
// special set.
//
// Complexity: O(total alphabet length) per call; the Generator computes it
// once per generation call.
func (r *RuleSet) CharacterSet() string {
	var sb strings.Builder
	if r.minLowercase > 0 {
		sb.WriteString(LowercaseAlphabet)
	}
	if r.minUppercase > 0 {
		sb.WriteString(UppercaseAlphabet)
	}
	if r.minNumeric > 0 {
		sb.WriteString(NumericAlphabet)
	}
	if r.minSpecial > 0 {
		sb.WriteString(r.specialCharacters)
	}

	return sb.String()
}

// IsValid reports whether candidate satisfies every constraint of r.
//
// Algorithm (single left-to-right scan):
//  1. Reject when len(candidate) lies outside [MinLength, MaxLength].
//  2. At each position, tally special membership independently, then run
//     the mutually exclusive cascade numeric → lowercase → uppercase
//     (a digit is never also tallied as a letter).
//  3. At each position i ≥ MaxConsecutiveIdentical, reject immediately
//     when the window of the last MaxConsecutiveIdentical+1 characters
//     ending at i is uniform.
//  4. Accept iff every tally meets its configured minimum.
//
// Complexity: O(len(candidate) · (len(SpecialCharacters) +
// MaxConsecutiveIdentical)) time, O(1) space.
func (r *RuleSet) IsValid(candidate string) bool {
	n := len(candidate)
	if n < r.minLength || n > r.maxLength {
		return false
	}

	var lower, upper, numeric, special int
	for i := 0; i < n; i++ {
		c := candidate[i]
		if strings.IndexByte(r.specialCharacters, c) >= 0 {
			special++
		}
		switch {
		case c >= '0' && c <= '9':
			numeric++
		case c >= 'a' && c <= 'z':
			lower++
		case c >= 'A' && c <= 'Z':
			upper++
		}
		if i >= r.maxConsecutiveIdentical && uniformWindow(candidate, i-r.maxConsecutiveIdentical, i) {
			return false
		}
	}

	return lower >= r.minLowercase &&
		upper >= r.minUppercase &&
		numeric >= r.minNumeric &&
		special >= r.minSpecial
}

// uniformWindow reports whether candidate[lo..hi] consists of a single
// repeated character.
func uniformWindow(candidate string, lo, hi int) bool {
	for k := lo; k < hi; k++ {
		if candidate[k] != candidate[hi] {
			return false
		}
	}

	return true
}

// Package password defines shared constants used by RuleSet and Generator,
// ensuring consistent defaults and class alphabets across the package.
package password

//-----------------------------------------------------------------------------
// Character Class Alphabets
//   fixed ASCII alphabets; concatenation order in CharacterSet() is
//   lowercase, uppercase, numeric, special.
//-----------------------------------------------------------------------------

const (
	// LowercaseAlphabet is the alphabet of the lowercase character class.
	LowercaseAlphabet = "abcdefghijklmnopqrstuvwxyz"

	// UppercaseAlphabet is the alphabet of the uppercase character class.
	UppercaseAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// NumericAlphabet is the alphabet of the numeric character class.
	NumericAlphabet = "0123456789"

	// DefaultSpecialCharacters is the special-class alphabet used when a
	// RuleSet has not been given a custom set via SetSpecialCharacters.
	DefaultSpecialCharacters = "!;#$%&()*+,-./:;<=>?@[]^_`{|}~"
)

//-----------------------------------------------------------------------------
// RuleSet Defaults
//-----------------------------------------------------------------------------

const (
	// DefaultMinLength is the default lower length bound.
	DefaultMinLength = 16

	// DefaultMaxLength is the default upper length bound.
	DefaultMaxLength = 64

	// DefaultMaxConsecutiveIdentical is the default cap on a run of
	// identical adjacent characters: a run of DefaultMaxConsecutiveIdentical+1
	// is forbidden.
	DefaultMaxConsecutiveIdentical = 2

	// DefaultMinLowercase is the default minimum count of lowercase characters.
	DefaultMinLowercase = 1

	// DefaultMinUppercase is the default minimum count of uppercase characters.
	DefaultMinUppercase = 1

	// DefaultMinNumeric is the default minimum count of numeric characters.
	DefaultMinNumeric = 1

	// DefaultMinSpecial is the default minimum count of special characters.
	DefaultMinSpecial = 1

	// DefaultMaxAttempts is the default generate-and-validate retry budget.
	// Each attempt is O(length); the budget is the only termination bound
	// of the generation loop.
	DefaultMaxAttempts = 10000

	// DefaultMaxEnumerations is the default number of passwords yielded by
	// the Passwords sequence before it terminates.
	DefaultMaxEnumerations = 100
)

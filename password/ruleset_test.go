package password_test

import (
	"strings"
	"testing"

	"github.com/NCodeGroup/PasswordGenerator/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRuleSet_Defaults verifies the documented default configuration.
func TestNewRuleSet_Defaults(t *testing.T) {
	r := password.NewRuleSet()

	assert.Equal(t, 16, r.MinLength(), "default minimum length")
	assert.Equal(t, 64, r.MaxLength(), "default maximum length")
	assert.Equal(t, 2, r.MaxConsecutiveIdentical(), "default consecutive cap")
	assert.Equal(t, 1, r.MinLowercase(), "default lowercase minimum")
	assert.Equal(t, 1, r.MinUppercase(), "default uppercase minimum")
	assert.Equal(t, 1, r.MinNumeric(), "default numeric minimum")
	assert.Equal(t, 1, r.MinSpecial(), "default special minimum")
	assert.Equal(t, password.DefaultSpecialCharacters, r.SpecialCharacters(), "default special set")
	assert.Equal(t, 10000, r.MaxAttempts(), "default attempt budget")
	assert.Equal(t, 100, r.MaxEnumerations(), "default enumeration bound")
}

// TestRuleSet_SetMinLength ensures the minLength ≤ maxLength invariant is
// enforced on the lower-bound setter.
func TestRuleSet_SetMinLength(t *testing.T) {
	r := password.NewRuleSet()

	require.NoError(t, r.SetMinLength(32), "raising min within max must succeed")
	assert.Equal(t, 32, r.MinLength())

	err := r.SetMinLength(65)
	assert.ErrorIs(t, err, password.ErrInvalidConfiguration, "min above max must be rejected")
	assert.Equal(t, 32, r.MinLength(), "rejected mutation must not change the bound")

	err = r.SetMinLength(-1)
	assert.ErrorIs(t, err, password.ErrInvalidConfiguration, "negative min must be rejected")
}

// TestRuleSet_SetMaxLength ensures the invariant is enforced on the
// upper-bound setter as well.
func TestRuleSet_SetMaxLength(t *testing.T) {
	r := password.NewRuleSet()

	require.NoError(t, r.SetMaxLength(20), "lowering max within min must succeed")
	assert.Equal(t, 20, r.MaxLength())

	err := r.SetMaxLength(15)
	assert.ErrorIs(t, err, password.ErrInvalidConfiguration, "max below min must be rejected")
	assert.Equal(t, 20, r.MaxLength(), "rejected mutation must not change the bound")
}

// TestRuleSet_SetLengthRange covers the atomic overwrite of both bounds.
func TestRuleSet_SetLengthRange(t *testing.T) {
	cases := []struct {
		name     string
		min, max int
		wantErr  bool
	}{
		{name: "valid range", min: 8, max: 12, wantErr: false},
		{name: "degenerate range", min: 10, max: 10, wantErr: false},
		{name: "inverted range", min: 12, max: 8, wantErr: true},
		{name: "negative min", min: -1, max: 8, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := password.NewRuleSet()
			err := r.SetLengthRange(tc.min, tc.max)
			if tc.wantErr {
				assert.ErrorIs(t, err, password.ErrInvalidConfiguration)
				assert.Equal(t, 16, r.MinLength(), "failed overwrite must leave min untouched")
				assert.Equal(t, 64, r.MaxLength(), "failed overwrite must leave max untouched")

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.min, r.MinLength(), "min must reflect the new value exactly")
			assert.Equal(t, tc.max, r.MaxLength(), "max must reflect the new value exactly")
		})
	}
}

// TestRuleSet_SetExactLength verifies both bounds are pinned, ignoring the
// old bounds entirely.
func TestRuleSet_SetExactLength(t *testing.T) {
	r := password.NewRuleSet()

	// 4 is below the old minimum of 16; SetExactLength must not care.
	require.NoError(t, r.SetExactLength(4))
	assert.Equal(t, 4, r.MinLength())
	assert.Equal(t, 4, r.MaxLength())
}

// TestRuleSet_SetterRejections covers the remaining immediate validations.
func TestRuleSet_SetterRejections(t *testing.T) {
	r := password.NewRuleSet()

	assert.ErrorIs(t, r.SetMaxConsecutiveIdentical(-1), password.ErrInvalidConfiguration)
	assert.ErrorIs(t, r.SetMinLowercase(-1), password.ErrInvalidConfiguration)
	assert.ErrorIs(t, r.SetMinUppercase(-1), password.ErrInvalidConfiguration)
	assert.ErrorIs(t, r.SetMinNumeric(-1), password.ErrInvalidConfiguration)
	assert.ErrorIs(t, r.SetMinSpecial(-1), password.ErrInvalidConfiguration)
	assert.ErrorIs(t, r.SetSpecialCharacters(""), password.ErrInvalidConfiguration)
	assert.ErrorIs(t, r.SetMaxAttempts(0), password.ErrInvalidConfiguration)
	assert.ErrorIs(t, r.SetMaxEnumerations(-1), password.ErrInvalidConfiguration)
}

// TestRuleSet_Clone verifies the copy is value-equal yet reference-independent.
func TestRuleSet_Clone(t *testing.T) {
	orig := password.NewRuleSet()
	require.NoError(t, orig.SetLengthRange(10, 20))

	cp := orig.Clone()
	assert.Equal(t, orig, cp, "clone must be value-equal")

	require.NoError(t, cp.SetLengthRange(1, 2))
	require.NoError(t, cp.SetSpecialCharacters("^"))
	assert.Equal(t, 10, orig.MinLength(), "mutating the clone must not touch the original")
	assert.Equal(t, 20, orig.MaxLength(), "mutating the clone must not touch the original")
	assert.Equal(t, password.DefaultSpecialCharacters, orig.SpecialCharacters())

	require.NoError(t, orig.SetMinSpecial(5))
	assert.Equal(t, 1, cp.MinSpecial(), "mutating the original must not touch the clone")
}

// TestRuleSet_CharacterSet checks class inclusion follows the minimums, in
// the fixed lowercase→uppercase→numeric→special order.
func TestRuleSet_CharacterSet(t *testing.T) {
	r := password.NewRuleSet()
	want := password.LowercaseAlphabet + password.UppercaseAlphabet +
		password.NumericAlphabet + password.DefaultSpecialCharacters
	assert.Equal(t, want, r.CharacterSet(), "all classes enabled by default")

	// Disabling a class's minimum removes its alphabet entirely.
	require.NoError(t, r.SetMinNumeric(0))
	require.NoError(t, r.SetMinSpecial(0))
	want = password.LowercaseAlphabet + password.UppercaseAlphabet
	assert.Equal(t, want, r.CharacterSet(), "disabled classes must be excluded")

	// Re-enabling includes the full alphabet exactly once.
	require.NoError(t, r.SetMinNumeric(3))
	assert.Equal(t, 1, strings.Count(r.CharacterSet(), password.NumericAlphabet),
		"re-enabled class appears exactly once")
}

// TestRuleSet_IsValid_LengthBounds rejects candidates outside [min, max].
func TestRuleSet_IsValid_LengthBounds(t *testing.T) {
	r := password.NewRuleSet()
	require.NoError(t, r.SetLengthRange(4, 6))

	assert.False(t, r.IsValid("aB1"), "below minimum length")
	assert.True(t, r.IsValid("aB1"+password.DefaultSpecialCharacters[:1]), "within bounds")
	assert.False(t, r.IsValid("aB1!aB1"), "above maximum length")
}

// TestRuleSet_IsValid_CustomSpecial pins the custom special-set scenario:
// only the configured characters count as special.
func TestRuleSet_IsValid_CustomSpecial(t *testing.T) {
	r := password.NewRuleSet()
	require.NoError(t, r.SetLengthRange(1, 10))
	require.NoError(t, r.SetSpecialCharacters("^"))

	assert.False(t, r.IsValid("aB1%"), "% is not in the special set")
	assert.True(t, r.IsValid("aB1^"), "^ satisfies the special minimum")
}

// TestRuleSet_IsValid_ConsecutiveRuns checks the identical-window rule.
func TestRuleSet_IsValid_ConsecutiveRuns(t *testing.T) {
	r := password.NewRuleSet()
	require.NoError(t, r.SetLengthRange(1, 10))
	require.NoError(t, r.SetMinUppercase(0))
	require.NoError(t, r.SetMinNumeric(0))
	require.NoError(t, r.SetMinSpecial(0))

	assert.False(t, r.IsValid("aaa"), "run of three with cap 2")
	assert.True(t, r.IsValid("aa"), "run of two with cap 2")
	assert.False(t, r.IsValid("xyaaaz"), "embedded run of three with cap 2")

	require.NoError(t, r.SetMaxConsecutiveIdentical(3))
	assert.True(t, r.IsValid("aaa"), "run of three with cap 3")
}

// TestRuleSet_IsValid_SpecialOverlap pins the double-counting behavior: a
// character in a custom special set counts toward both the special tally
// and its letter/digit class.
func TestRuleSet_IsValid_SpecialOverlap(t *testing.T) {
	r := password.NewRuleSet()
	require.NoError(t, r.SetLengthRange(1, 10))
	require.NoError(t, r.SetMinUppercase(0))
	require.NoError(t, r.SetMinNumeric(0))
	require.NoError(t, r.SetSpecialCharacters("a1"))

	// Single "a" satisfies both minLowercase=1 and minSpecial=1.
	assert.True(t, r.IsValid("a"), "overlapping character fills both tallies")

	// A digit is tallied as numeric and special, never as a letter.
	require.NoError(t, r.SetMinLowercase(0))
	require.NoError(t, r.SetMinNumeric(1))
	assert.True(t, r.IsValid("1"), "digit counts as numeric and special")

	require.NoError(t, r.SetMinNumeric(0))
	require.NoError(t, r.SetMinLowercase(1))
	assert.False(t, r.IsValid("1"), "digit never counts as lowercase")
}

// TestRuleSet_IsValid_CountsBelowMinimum rejects candidates missing a class.
func TestRuleSet_IsValid_CountsBelowMinimum(t *testing.T) {
	r := password.NewRuleSet()
	require.NoError(t, r.SetLengthRange(1, 20))
	require.NoError(t, r.SetMinNumeric(3))

	assert.False(t, r.IsValid("aB12!"), "two digits with minNumeric=3")
	assert.True(t, r.IsValid("aB123!"), "three digits with minNumeric=3")
}

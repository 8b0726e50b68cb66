// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin package-level facade over a shared default Generator.
// Policy:
//   - No algorithms or hidden state here; every function delegates.
//   - The default Generator reads from crypto/rand.Reader and is safe for
//     concurrent use.

package password

import "iter"

// defaultGenerator backs the package-level convenience functions.
var defaultGenerator = NewGenerator()

// Generate produces a password satisfying rules using the default
// Generator; a nil rules uses a fresh default RuleSet.
func Generate(rules *RuleSet) (string, error) {
	return defaultGenerator.Generate(rules)
}

// GenerateFunc clones a default RuleSet, applies mutate, and generates
// with the result using the default Generator.
func GenerateFunc(mutate func(*RuleSet) error) (string, error) {
	return defaultGenerator.GenerateFunc(mutate)
}

// Fill writes a password satisfying rules into dst using the default
// Generator; len(dst) fixes the password length.
func Fill(rules *RuleSet, dst []byte) error {
	return defaultGenerator.Fill(rules, dst)
}

// FillFunc clones a default RuleSet, applies mutate, and fills dst with
// the result using the default Generator.
func FillFunc(mutate func(*RuleSet) error, dst []byte) error {
	return defaultGenerator.FillFunc(mutate, dst)
}

// Passwords returns the bounded lazy password sequence of the default
// Generator; see Generator.Passwords.
func Passwords(rules *RuleSet) iter.Seq2[string, error] {
	return defaultGenerator.Passwords(rules)
}

// IsValid reports whether candidate satisfies rules. Exposed for checking
// externally supplied passwords against a policy; a nil rules checks
// against the defaults.
func IsValid(rules *RuleSet, candidate string) bool {
	if rules == nil {
		rules = NewRuleSet()
	}

	return rules.IsValid(candidate)
}

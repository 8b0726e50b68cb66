// Package password generates random passwords that satisfy configurable
// composition rules, using a cryptographically secure uniform source for
// every random decision.
//
// 🚀 What does it do?
//
//	A RuleSet describes the policy: length bounds, minimum counts of
//	lowercase / uppercase / numeric / special characters, and a cap on
//	consecutive identical characters. A Generator consumes the RuleSet and
//	produces passwords that always satisfy it:
//	  1. pick a target length uniformly within [MinLength, MaxLength]
//	  2. place the guaranteed per-class minimums, then fill the remainder
//	     from the fallback alphabet of all enabled classes
//	  3. shuffle the buffer with a Fisher–Yates permutation
//	  4. validate against the RuleSet; retry (bounded by MaxAttempts) when
//	     the shuffle produced a forbidden run of identical characters
//
// ✨ Key features:
//   - crypto/rand for index sampling, length selection and shuffling —
//     no seed-predictable or statistically weak source, ever
//   - setters validate immediately; a RuleSet can never hold an
//     impossible configuration between calls
//   - IsValid is exposed on its own, so externally supplied passwords can
//     be checked against the same policy
//   - Passwords() yields a lazy, MaxEnumerations-bounded sequence of
//     independently generated passwords
//
// ⚙️ Usage:
//
//	import "github.com/NCodeGroup/PasswordGenerator/password"
//
//	// Defaults: length 16–64, one of each class, no triple repeats.
//	pw, err := password.Generate(nil)
//
//	// Custom policy:
//	rules := password.NewRuleSet()
//	if err := rules.SetLengthRange(20, 30); err != nil { ... }
//	if err := rules.SetMinSpecial(3); err != nil { ... }
//	pw, err = password.Generate(rules)
//
// Errors are sentinel values (ErrInvalidConfiguration,
// ErrDestinationLength, ErrTooManyAttempts); branch with errors.Is.
//
// Concurrency model:
//
//	Generation is synchronous and lock-free. A Generator is stateless and
//	a RuleSet is read-only during a generation call, so both may be shared
//	across goroutines — provided no goroutine mutates a shared RuleSet
//	while another generates with it. Callers that need a variant policy
//	should Clone() first and mutate the copy.
//
// Performance:
//
//   - Time:   O(MaxAttempts · length) worst case; one attempt in the
//     common case
//   - Memory: O(length) per call, no retained state
//
// See example_test.go for runnable examples and ../examples for a demo
// program.
package password

// SPDX-License-Identifier: MIT
// Package: password
//
// errors.go — sentinel errors for the password package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Call sites attach context with fmt.Errorf("...: %w", ErrX).
//   • Generation MUST NOT panic at runtime; validation panics are confined
//     to option constructors (WithRand), per the package rules.

package password

import "errors"

// ErrInvalidConfiguration indicates a RuleSet mutation or a generation
// pre-flight check rejected the configuration: minLength > maxLength, a
// negative counter, an empty special-character set, a zero total of class
// minimums, or class minimums that cannot fit the destination buffer.
// Always recoverable by adjusting the RuleSet; never retried internally.
// Usage: if errors.Is(err, ErrInvalidConfiguration) { /* fix the rules */ }.
var ErrInvalidConfiguration = errors.New("password: invalid configuration")

// ErrDestinationLength indicates a caller-supplied destination buffer whose
// length lies outside [MinLength, MaxLength] of the RuleSet in use.
// Usage: if errors.Is(err, ErrDestinationLength) { /* resize the buffer */ }.
var ErrDestinationLength = errors.New("password: destination length out of range")

// ErrTooManyAttempts indicates the generate-and-validate loop exhausted its
// MaxAttempts budget without producing a valid candidate. Callers may relax
// constraints (loosen MaxConsecutiveIdentical, widen the length range,
// raise MaxAttempts) and retry externally.
// Usage: if errors.Is(err, ErrTooManyAttempts) { /* relax and retry */ }.
var ErrTooManyAttempts = errors.New("password: too many attempts")

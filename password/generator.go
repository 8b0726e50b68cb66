// SPDX-License-Identifier: MIT
// Package: password
//
// generator.go — the Generator: length selection, guaranteed-minimum
// placement, Fisher–Yates shuffling, and the bounded validate-or-retry loop.
//
// Contract (strict):
//   • Every random draw (index sampling, length selection, shuffle swaps)
//     comes from the injected uniform source; the default is
//     crypto/rand.Reader and substitutes are a test seam only.
//   • Generation holds no state beyond local buffers; a Generator is safe
//     for concurrent use.
//   • On failure the destination contents are undefined — the loop
//     overwrites them on every attempt and never restores prior state.

package password

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Generator produces passwords that satisfy a RuleSet. It is a stateless
// policy object over an injected random source; the zero value is not
// usable, construct with NewGenerator.
type Generator struct {
	rand io.Reader
}

// Option customizes a Generator at construction time.
type Option func(*Generator)

// WithRand sets the random source used for every draw. Panics on nil to
// surface programmer error early; substituting a source other than
// crypto/rand.Reader forfeits the cryptographic guarantees and belongs in
// tests only.
func WithRand(r io.Reader) Option {
	if r == nil {
		panic("password: WithRand(nil)")
	}

	return func(g *Generator) { g.rand = r }
}

// NewGenerator returns a Generator reading from crypto/rand.Reader unless
// overridden by options. Options are applied left to right.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{rand: rand.Reader}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate produces a password satisfying rules. A nil rules uses a fresh
// default RuleSet.
//
// The target length is fixed when MinLength == MaxLength and otherwise
// drawn uniformly from [MinLength, MaxLength] inclusive. Errors:
// ErrInvalidConfiguration when no class has a positive minimum or the
// minimums exceed the target length; ErrTooManyAttempts when the retry
// budget runs out.
func (g *Generator) Generate(rules *RuleSet) (string, error) {
	if rules == nil {
		rules = NewRuleSet()
	}
	length, err := g.pickLength(rules)
	if err != nil {
		return "", err
	}
	buf := make([]byte, length)
	if err = g.fill(rules, buf); err != nil {
		return "", err
	}

	return string(buf), nil
}

// GenerateFunc clones a default RuleSet, applies mutate to the clone, and
// generates with the result. A nil mutate generates with plain defaults.
func (g *Generator) GenerateFunc(mutate func(*RuleSet) error) (string, error) {
	rules, err := mutateDefaults(mutate)
	if err != nil {
		return "", err
	}

	return g.Generate(rules)
}

// Fill writes a password satisfying rules into dst, whose length fixes the
// password length. A nil rules uses a fresh default RuleSet. It fails with
// ErrDestinationLength when len(dst) lies outside [MinLength, MaxLength];
// on any error dst's contents are undefined.
func (g *Generator) Fill(rules *RuleSet, dst []byte) error {
	if rules == nil {
		rules = NewRuleSet()
	}
	if len(dst) < rules.minLength || len(dst) > rules.maxLength {
		return fmt.Errorf("Fill: destination length %d outside [%d, %d]: %w",
			len(dst), rules.minLength, rules.maxLength, ErrDestinationLength)
	}

	return g.fill(rules, dst)
}

// FillFunc clones a default RuleSet, applies mutate to the clone, and
// fills dst with the result, as Fill does.
func (g *Generator) FillFunc(mutate func(*RuleSet) error, dst []byte) error {
	rules, err := mutateDefaults(mutate)
	if err != nil {
		return err
	}

	return g.Fill(rules, dst)
}

// mutateDefaults builds the RuleSet for the Func variants: defaults,
// optionally reshaped by the caller's mutator.
func mutateDefaults(mutate func(*RuleSet) error) (*RuleSet, error) {
	rules := NewRuleSet()
	if mutate == nil {
		return rules, nil
	}
	if err := mutate(rules); err != nil {
		return nil, err
	}

	return rules, nil
}

// fill runs the pre-flight checks once, then the bounded attempt loop:
// build a raw candidate honoring per-class minimums, shuffle it in place,
// validate, and retry on failure.
//
// Candidate construction walks dst left to right, draining the remaining
// per-class minimums in the fixed precedence order special → numeric →
// lowercase → uppercase (mirroring the classification cascade of IsValid),
// then draws the rest uniformly from the fallback alphabet. Placing the
// minimums before shuffling guarantees the count constraints hold on every
// attempt; the retry loop exists solely for the probabilistic
// consecutive-identical constraint, which a shuffle can occasionally
// violate.
func (g *Generator) fill(rules *RuleSet, dst []byte) error {
	required := rules.minSpecial + rules.minNumeric + rules.minLowercase + rules.minUppercase
	if required == 0 {
		return fmt.Errorf("at least one character class must have a minimum greater than zero: %w",
			ErrInvalidConfiguration)
	}
	if required > len(dst) {
		return fmt.Errorf("destination too small for required minimums (%d > %d): %w",
			required, len(dst), ErrInvalidConfiguration)
	}

	// The fallback alphabet is shuffled once and reused across attempts.
	fallback := []byte(rules.CharacterSet())
	if err := g.shuffle(fallback); err != nil {
		return err
	}

	for attempt := 0; attempt < rules.maxAttempts; attempt++ {
		if err := g.buildCandidate(rules, fallback, dst); err != nil {
			return err
		}
		if err := g.shuffle(dst); err != nil {
			return err
		}
		if rules.IsValid(string(dst)) {
			return nil
		}
	}

	return fmt.Errorf("too many attempts (%d): %w", rules.maxAttempts, ErrTooManyAttempts)
}

// buildCandidate fills dst with one raw candidate: per-class minimums
// first, fallback draws for the remainder.
func (g *Generator) buildCandidate(rules *RuleSet, fallback, dst []byte) error {
	needSpecial := rules.minSpecial
	needNumeric := rules.minNumeric
	needLower := rules.minLowercase
	needUpper := rules.minUppercase

	for i := range dst {
		var alphabet string
		switch {
		case needSpecial > 0:
			alphabet, needSpecial = rules.specialCharacters, needSpecial-1
		case needNumeric > 0:
			alphabet, needNumeric = NumericAlphabet, needNumeric-1
		case needLower > 0:
			alphabet, needLower = LowercaseAlphabet, needLower-1
		case needUpper > 0:
			alphabet, needUpper = UppercaseAlphabet, needUpper-1
		default:
			idx, err := g.intn(len(fallback))
			if err != nil {
				return err
			}
			dst[i] = fallback[idx]

			continue
		}
		idx, err := g.intn(len(alphabet))
		if err != nil {
			return err
		}
		dst[i] = alphabet[idx]
	}

	return nil
}

// shuffle applies a uniform Fisher–Yates permutation to buf in place: each
// position i from 0 to len-2 swaps with a uniformly random j in
// [i, len-1]. The draw is consumed even when it lands on i itself.
func (g *Generator) shuffle(buf []byte) error {
	for i := 0; i < len(buf)-1; i++ {
		off, err := g.intn(len(buf) - i)
		if err != nil {
			return err
		}
		if j := i + off; j != i {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}

	return nil
}

// pickLength returns the target password length: fixed when the bounds
// coincide, otherwise uniform over [minLength, maxLength] inclusive.
func (g *Generator) pickLength(rules *RuleSet) (int, error) {
	if rules.minLength == rules.maxLength {
		return rules.minLength, nil
	}
	off, err := g.intn(rules.maxLength - rules.minLength + 1)
	if err != nil {
		return 0, err
	}

	return rules.minLength + off, nil
}

// intn draws a uniformly distributed integer in [0, n) from the configured
// source. crypto/rand.Int performs rejection sampling, so the result
// carries no modulo bias.
func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("random draw: %w", err)
	}

	return int(v.Int64()), nil
}

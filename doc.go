// Package passwordgenerator generates random passwords that satisfy
// configurable composition rules, backed by a cryptographically secure
// random source.
//
// 🚀 What is PasswordGenerator?
//
//	A small, dependency-light library built around two cooperating pieces:
//		• RuleSet   — length bounds, per-class minimum counts, a cap on
//		  consecutive identical characters, and the validation logic itself
//		• Generator — length selection, guaranteed-minimum placement,
//		  Fisher–Yates shuffling, and a bounded validate-or-retry loop
//
// ✨ Why choose it?
//
//   - Secure by construction — every draw comes from crypto/rand
//   - Validated configuration — setters reject impossible rule sets at
//     mutation time, never mid-generation
//   - Concurrency-friendly — share a RuleSet and Generator freely for
//     read-only use; Clone before mutating
//   - Pure Go — no cgo, no hidden deps
//
// Everything lives in one subpackage:
//
//	password/ — RuleSet, Generator, the bounded password sequence, and a
//	            package-level facade over a default Generator
//
// Quick taste:
//
//	pw, err := password.GenerateFunc(func(r *password.RuleSet) error {
//		return r.SetExactLength(24)
//	})
//
// Dive into password/doc.go for the full contract, and examples/ for a
// runnable credential-rotation demo.
//
//	go get github.com/NCodeGroup/PasswordGenerator/password
package passwordgenerator

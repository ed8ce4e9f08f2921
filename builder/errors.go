// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with builderErrorf and `%w`.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates that the requested grid size is below MinGridSize.
// Usage: if errors.Is(err, ErrTooSmall) { /* report invalid size */ }.
var ErrTooSmall = errors.New("builder: grid size too small")

// ErrInvalidDensity indicates an obstacle density outside the closed
// interval [0,1].
// Usage: if errors.Is(err, ErrInvalidDensity) { /* clamp or reject */ }.
var ErrInvalidDensity = errors.New("builder: density out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs a non-nil
// *rand.Rand (WithSeed or WithRand) but none was configured.
// A density of exactly 0 or 1 draws nothing and therefore needs no source.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf prefixes a formatted message with the constructor name.
// Use %w in format to keep the sentinel visible to errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}

// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with %w wrapping.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, index)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that cannot proceed, such as a
// nil constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownShape indicates a shape name that ByName does not recognise.
var ErrUnknownShape = errors.New("builder: unknown shape")

// ErrUnknownIDScheme indicates an ID scheme name that IDSchemeByName does not recognise.
var ErrUnknownIDScheme = errors.New("builder: unknown id scheme")

// builderErrorf prefixes a formatted message with the method name and wraps
// sentinel so that errors.Is keeps working:
//
//	builderErrorf(methodCycle, ErrTooFewVertices, "n=%d < min=%d", n, 3)
//	→ "Cycle: n=2 < min=3: builder: parameter too small"
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

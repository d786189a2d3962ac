// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
)

// builderConfig is the resolved, immutable configuration handed to every
// constructor. Constructors receive it by value, so Scoped can derive a
// per-component copy without affecting siblings.
type builderConfig struct {
	// idFn maps a vertex index to its ID. Never nil after resolution.
	idFn IDFn

	// rng drives stochastic constructors. Nil unless WithSeed/WithRand.
	rng *rand.Rand
}

// newBuilderConfig resolves opts on top of the defaults:
// decimal IDs and no RNG.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

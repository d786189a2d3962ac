// SPDX-License-Identifier: MIT

package builder

// Minimum sizes per topology.
const (
	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
	minGridDim       = 1
	minIsolatedNodes = 1
	minRandomNodes   = 1

	probMin = 0.0
	probMax = 1.0
)

func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "%s=%d < min=%d", name, got, min)
	}

	return nil
}

func validateProbability(method string, p float64) error {
	if p < probMin || p > probMax {
		return builderErrorf(method, ErrInvalidProbability, "p=%.6f not in [%.1f,%.1f]", p, probMin, probMax)
	}

	return nil
}

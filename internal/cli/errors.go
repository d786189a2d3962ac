package cli

import (
	"errors"
	"fmt"
)

var (
	errUnknownOutput = errors.New("unknown output format")
	errIDRange       = errors.New("id scheme cannot name that many vertices")
)

// symbolIDLimit is the number of vertices the "symbol" ID scheme can name.
const symbolIDLimit = 26

// errCycleFound is returned by "has --exit-code" when the graph has a cycle.
type errCycleFound struct{}

func (e *errCycleFound) Error() string {
	return "graph contains a cycle"
}

// ExitCode makes the process exit with status 1 without an error message.
func (e *errCycleFound) ExitCode() int {
	return 1
}

type errInvalidOutput struct {
	value   string
	allowed []string
}

func (e *errInvalidOutput) Error() string {
	return fmt.Sprintf("output %q must be one of %v", e.value, e.allowed)
}

func (e *errInvalidOutput) Unwrap() error {
	return errUnknownOutput
}

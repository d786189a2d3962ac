package cli

import (
	"os"
	"strings"

	"github.com/fatih/color"
)

const colorEnvVar = "COLOR"

var lookupEnv = os.LookupEnv

var (
	red   = color.New(color.FgHiRed, color.Bold)
	green = color.New(color.FgHiGreen)
	cyan  = color.New(color.FgHiCyan)
)

// DisableColorBasedOnEnvVar determines whether the CLI will produce color
// output based on the environment variable, COLOR. When it is unset the
// color library's terminal detection applies.
func DisableColorBasedOnEnvVar() {
	value, exists := lookupEnv(colorEnvVar)
	if !exists {
		return
	}

	switch strings.ToLower(value) {
	case "false":
		color.NoColor = true
	case "true":
		color.NoColor = false
	}
}

// highlightCycle colors a verdict or witness that reports a cycle.
func highlightCycle(s string) string {
	return red.Sprint(s)
}

// highlightAcyclic colors a verdict that reports no cycle.
func highlightAcyclic(s string) string {
	return green.Sprint(s)
}

// highlightNode colors a node name inside a message.
func highlightNode(s string) string {
	return cyan.Sprint(s)
}

package cli

// Long flag names.
const (
	// Global flags.
	verboseFlag    = "verbose"
	symmetrizeFlag = "symmetrize"

	// Command specific flags.
	exitCodeFlag  = "exit-code"
	outputFlag    = "output"
	canonicalFlag = "canonical"
	nFlag         = "n"
	rowsFlag      = "rows"
	colsFlag      = "cols"
	probFlag      = "p"
	seedFlag      = "seed"
	idsFlag       = "ids"
)

// Short flag names.
const (
	verboseFlagShort = "v"
	outputFlagShort  = "o"
)

// Output formats.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// Descriptions for flags.
const (
	verboseFlagDescription    = "Log traversal events at debug level to stderr."
	symmetrizeFlagDescription = `Add the missing mirror of every one-way neighbour entry
instead of rejecting the input.`
	exitCodeFlagDescription   = "Exit with status 1 when the graph has a cycle."
	findOutputFlagDescription = `Output format for the witness.
Must be one of "text", "json" or "yaml".`
	canonicalFlagDescription = "Print the cycle in canonical form: smallest rotation of either direction."
	nFlagDescription         = "Number of vertices."
	rowsFlagDescription      = "Grid rows."
	colsFlagDescription      = "Grid columns."
	probFlagDescription      = "Edge probability for the sparse shape."
	seedFlagDescription      = "Random seed for the tree and sparse shapes."
	idsFlagDescription       = `Vertex ID scheme.
Must be one of "decimal", "symbol", "excel" or "hex".`
	genOutputFlagDescription = `Output format for the graph.
Must be one of "yaml" or "json".`
)

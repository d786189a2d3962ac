// Package cli contains the cyclecheck subcommands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/undicycle/adjacency"
)

// stdinArg is the file argument that selects standard input.
const stdinArg = "-"

// globalOpts holds fields that are used across multiple commands.
type globalOpts struct {
	verbose    bool
	symmetrize bool

	fs    afero.Fs
	stdin io.Reader
	w     io.Writer // command output
	errW  io.Writer // logs

	log *zap.Logger
}

func newGlobalOpts() *globalOpts {
	return &globalOpts{
		fs:    afero.NewOsFs(),
		stdin: os.Stdin,
		w:     os.Stdout,
		errW:  os.Stderr,
	}
}

// logger returns the command logger, building it on first use from the
// --verbose flag: a development console logger at debug level, otherwise a
// production JSON logger at info level. Both write to errW.
func (o *globalOpts) logger() *zap.Logger {
	if o.log != nil {
		return o.log
	}

	sink := zapcore.AddSync(o.errW)
	if o.verbose {
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		o.log = zap.New(zapcore.NewCore(enc, sink, zapcore.DebugLevel), zap.AddCaller())
	} else {
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		o.log = zap.New(zapcore.NewCore(enc, sink, zapcore.InfoLevel))
	}

	return o.log
}

// readGraph decodes the graph in path, or in standard input when path is
// empty or "-". Asymmetric input is rejected unless --symmetrize is set, in
// which case the missing mirror entries are added.
func (o *globalOpts) readGraph(path string) (*adjacency.Ordered[string], error) {
	name := path
	var r io.Reader
	if path == "" || path == stdinArg {
		name = "stdin"
		r = o.stdin
	} else {
		f, err := o.fs.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open graph file: %w", err)
		}
		defer f.Close()
		r = f
	}

	g, err := adjacency.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("read graph from %s: %w", name, err)
	}

	if bad := adjacency.Asymmetries(g.Graph); len(bad) > 0 {
		if !o.symmetrize {
			return nil, fmt.Errorf("read graph from %s: %w (use --%s to repair)",
				name, adjacency.RequireSymmetric(g.Graph), symmetrizeFlag)
		}
		o.logger().Info("added missing mirror entries",
			zap.String("source", name), zap.Int("arcs", len(bad)))
		g = g.Symmetrize()
	}
	o.logger().Debug("graph loaded",
		zap.String("source", name), zap.Int("nodes", g.Len()))

	return g, nil
}

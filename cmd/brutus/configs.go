package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cdhooper/brutus28/analyze"
	"github.com/cdhooper/brutus28/capture"
	"github.com/cdhooper/brutus28/config"
	"github.com/cdhooper/brutus28/emit"
	"github.com/cdhooper/brutus28/pins"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize output'"`
	Quiet bool `cli:"name=q aliases=quiet desc='suppress analysis warnings'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// emitOpts decides coloring the way the -o/-color pair interact: an
// explicit -color wins, otherwise a terminal on the output side turns
// color on.
func (cfg *MainConfig) emitOpts(w io.Writer, extra ...emit.Opt) []emit.Opt {
	res := extra
	if cfg.Color {
		return append(res, emit.WithColor(true))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, emit.WithColor(true))
	}
	return res
}

// loadCapture reads a capture file, routing reader warnings to
// stderr unless -q.
func (cfg *MainConfig) loadCapture(path string) (*capture.Capture, error) {
	var opts []capture.ReadOption
	if !cfg.Quiet {
		opts = append(opts, capture.ReadWarnf(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "brutus: "+format+"\n", args...)
		}))
	}
	c, err := capture.ReadFile(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("error reading capture %s: %w", path, err)
	}
	return c, nil
}

// loadNamer builds the pin namer from an optional config file path.
func (cfg *MainConfig) loadNamer(path string) (*pins.Namer, error) {
	if path == "" {
		return pins.NewNamer(nil), nil
	}
	c, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config %s: %w", path, err)
	}
	return c.Namer(), nil
}

// runAnalysis runs the pipeline with diagnostics streamed to stderr
// unless -q.
func (cfg *MainConfig) runAnalysis(c *capture.Capture) (*analyze.Analysis, error) {
	var opts []analyze.Option
	if !cfg.Quiet {
		opts = append(opts, analyze.WithDiagSink(func(d analyze.Diag) {
			fmt.Fprintf(os.Stderr, "brutus: %s\n", d)
		}))
	}
	a, err := analyze.Run(c, opts...)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	return a, nil
}

// captureAndNamer resolves the common "capture [config]" positional
// form shared by most commands.
func (cfg *MainConfig) captureAndNamer(args []string) (*capture.Capture, *pins.Namer, error) {
	if len(args) < 1 {
		return nil, nil, fmt.Errorf("%w: a capture file is required", cli.ErrUsage)
	}
	if len(args) > 2 {
		return nil, nil, fmt.Errorf("%w: unknown argument %q", cli.ErrUsage, args[2])
	}
	c, err := cfg.loadCapture(args[0])
	if err != nil {
		return nil, nil, err
	}
	cfgPath := ""
	if len(args) == 2 {
		cfgPath = args[1]
	}
	nm, err := cfg.loadNamer(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	return c, nm, nil
}

type AnalyzeConfig struct {
	*MainConfig
	NoPins bool `cli:"name=nopins desc='omit the PIN declaration block'"`
	NoInv  bool `cli:"name=noinv desc='omit the inverted reference block'"`

	Analyze *cli.Command
}

type ClassifyConfig struct {
	*MainConfig

	Classify *cli.Command
}

type VerifyConfig struct {
	*MainConfig

	Verify *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Exprs []string

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

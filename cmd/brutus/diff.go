package main

import (
	"fmt"
	"strings"

	"github.com/cdhooper/brutus28/emit"
	"github.com/cdhooper/brutus28/eqdiff"

	"github.com/scott-cotton/cli"
)

func diffRun(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: diff takes two captures and an optional config", cli.ErrUsage)
	}
	cfgPath := ""
	if len(args) == 3 {
		cfgPath = args[2]
	}
	nm, err := cfg.loadNamer(cfgPath)
	if err != nil {
		return err
	}
	listings := make([]string, 2)
	for i, path := range args[:2] {
		c, err := cfg.loadCapture(path)
		if err != nil {
			return err
		}
		a, err := cfg.runAnalysis(c)
		if err != nil {
			return err
		}
		var sb strings.Builder
		// Listings diff uncolored; color goes on the diff itself.
		if err := emit.Listing(&sb, a, nm); err != nil {
			return err
		}
		listings[i] = sb.String()
	}
	lines := eqdiff.Lines(listings[0], listings[1])
	if !eqdiff.Changed(lines) {
		return nil
	}
	colorize := len(cfg.emitOpts(cc.Out)) > 0 || cfg.Color
	if err := eqdiff.Format(cc.Out, lines, colorize); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

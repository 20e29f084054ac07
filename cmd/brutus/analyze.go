package main

import (
	"github.com/cdhooper/brutus28/emit"

	"github.com/scott-cotton/cli"
)

func analyzeRun(cfg *AnalyzeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Analyze.Parse(cc, args)
	if err != nil {
		return err
	}
	c, nm, err := cfg.captureAndNamer(args)
	if err != nil {
		return err
	}
	a, err := cfg.runAnalysis(c)
	if err != nil {
		return err
	}
	opts := cfg.emitOpts(cc.Out,
		emit.WithPinBlock(!cfg.NoPins),
		emit.WithInvertedBlock(!cfg.NoInv))
	return emit.Listing(cc.Out, a, nm, opts...)
}

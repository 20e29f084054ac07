package main

import (
	"github.com/cdhooper/brutus28/emit"

	"github.com/scott-cotton/cli"
)

func classifyRun(cfg *ClassifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Classify.Parse(cc, args)
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
	return emit.Summary(cc.Out, a, nm, cfg.emitOpts(cc.Out)...)
}

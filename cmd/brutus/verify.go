package main

import (
	"fmt"

	"github.com/cdhooper/brutus28/verify"

	"github.com/scott-cotton/cli"
)

func verifyRun(cfg *VerifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Verify.Parse(cc, args)
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
	failed := 0
	for _, r := range verify.All(a) {
		name := nm.Name(r.Bit, false)
		switch {
		case r.Err != nil:
			failed++
			fmt.Fprintf(cc.Out, "%-8s error: %v\n", name, r.Err)
		case r.Equivalent:
			fmt.Fprintf(cc.Out, "%-8s ok\n", name)
		default:
			failed++
			fmt.Fprintf(cc.Out, "%-8s MISMATCH\n", name)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d pin(s) failed verification", failed)
	}
	return nil
}

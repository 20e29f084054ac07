package main

import (
	"fmt"

	"github.com/cdhooper/brutus28/analyze"
	"github.com/cdhooper/brutus28/capture"
	"github.com/cdhooper/brutus28/pins"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/scott-cotton/cli"
)

func checkRun(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(cfg.Exprs) == 0 {
		return fmt.Errorf("%w: at least one -e expression is required", cli.ErrUsage)
	}
	c, nm, err := cfg.captureAndNamer(args)
	if err != nil {
		return err
	}
	a, err := cfg.runAnalysis(c)
	if err != nil {
		return err
	}

	programs := make([]*vm.Program, len(cfg.Exprs))
	for i, src := range cfg.Exprs {
		programs[i], err = expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
		if err != nil {
			return fmt.Errorf("error compiling %q: %w", src, err)
		}
	}

	failed := 0
	for i, prg := range programs {
		if rec, err := checkRecords(prg, a, nm, c); err != nil {
			return err
		} else if rec >= 0 {
			failed++
			fmt.Fprintf(cc.Out, "FAIL %s (record %d)\n", cfg.Exprs[i], rec)
		} else {
			fmt.Fprintf(cc.Out, "ok   %s\n", cfg.Exprs[i])
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d expression(s) failed", failed)
	}
	return nil
}

// checkRecords runs one compiled expression over every record and
// returns the first record index where it is false, or -1.
func checkRecords(prg *vm.Program, a *analyze.Analysis, nm *pins.Namer, c *capture.Capture) (int, error) {
	out := a.Class().Output
	env := map[string]any{}
	for k := 0; k < c.Len(); k++ {
		rin, rout := c.Get(k)
		for b := 0; b < pins.Count; b++ {
			v := rin
			if out.Has(b) {
				v = rout
			}
			level := v>>uint(b)&1 == 1
			// Names declared inverted see the logical level.
			if nm.Inverted(b) {
				level = !level
			}
			env[nm.Name(b, nm.Inverted(b))] = level
		}
		res, err := vm.Run(prg, env)
		if err != nil {
			return 0, fmt.Errorf("error evaluating record %d: %w", k, err)
		}
		ok, isBool := res.(bool)
		if !isBool {
			return 0, fmt.Errorf("expression is not boolean (record %d)", k)
		}
		if !ok {
			return k, nil
		}
	}
	return -1, nil
}

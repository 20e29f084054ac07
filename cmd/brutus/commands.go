package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "brutus").
		WithSynopsis("brutus [opts] command [opts] <capture> [<config>]").
		WithDescription("brutus recovers combinational logic equations from PLD pin captures.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bMain(cfg, cc, args)
		}).
		WithSubs(
			AnalyzeCommand(cfg),
			ClassifyCommand(cfg),
			VerifyCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg))
}

func AnalyzeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AnalyzeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Analyze, "analyze").
		WithAliases("a", "an").
		WithSynopsis("analyze [opts] <capture> [<config>]").
		WithDescription("Recover and print sum-of-products equations from a capture.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return analyzeRun(cfg, cc, args)
		})
}

func ClassifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ClassifyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Classify, "classify").
		WithAliases("c", "cl").
		WithSynopsis("classify <capture> [<config>]").
		WithDescription("Print pin classification masks and the affect table.").
		WithRun(func(cc *cli.Context, args []string) error {
			return classifyRun(cfg, cc, args)
		})
}

func VerifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VerifyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Verify, "verify").
		WithAliases("v").
		WithSynopsis("verify <capture> [<config>]").
		WithDescription("Prove each recovered equation equivalent to the capture's truth table.").
		WithRun(func(cc *cli.Context, args []string) error {
			return verifyRun(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("ch").
		WithSynopsis("check -e <expr> [-e <expr>]... <capture> [<config>]").
		WithDescription(checkDescription).
		WithOpts(&cli.Opt{
			Name:        "e",
			Description: "boolean expression over pin names",
			Type:        cli.NamedFuncOpt(cfg.exprOpt, "(expr)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return checkRun(cfg, cc, args)
		})
}

const checkDescription = `check evaluates boolean expressions against every capture record.

Each -e expression sees one boolean variable per pin, named as in the
config file (P<pin> without one). Output pins carry their read-back
level, all other pins the driven level. An expression that is false
for any record fails the check and names the first offending record.

Example:

  brutus check -e 'P3 == (P1 and P2)' capture.bin`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff <capture-a> <capture-b> [<config>]").
		WithDescription("Diff the equation listings recovered from two captures.").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffRun(cfg, cc, args)
		})
}

func (cfg *CheckConfig) exprOpt(cc *cli.Context, a string) (any, error) {
	cfg.Exprs = append(cfg.Exprs, a)
	return a, nil
}

package main

import (
	"fmt"

	"github.com/stablejson/go-stablejson/encode"
	"github.com/stablejson/go-stablejson/value"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %d", cli.ErrUsage, len(args))
	}
	a, err := getDocFile(cc, args[0], cfg.parseOptsFor(args[0])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getDocFile(cc, args[1], cfg.parseOptsFor(args[1])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if value.Equal(a, b) {
		return nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(encode.MustString(a), encode.MustString(b), false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	if cfg.Color || useColor(cc.Out) {
		fmt.Fprintln(cc.Out, diffCfg.DiffPrettyText(diffs))
		return cli.ExitCodeErr(1)
	}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			fmt.Fprintf(cc.Out, "[-%s-]", d.Text)
		case diffpatch.DiffInsert:
			fmt.Fprintf(cc.Out, "{+%s+}", d.Text)
		case diffpatch.DiffEqual:
			fmt.Fprint(cc.Out, d.Text)
		}
	}
	fmt.Fprintln(cc.Out)
	return cli.ExitCodeErr(1)
}

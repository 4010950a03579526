package main

import (
	"fmt"

	"github.com/stablejson/go-stablejson/value"

	"github.com/scott-cotton/cli"
)

func eq(cfg *EqConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eq.Parse(cc, args)
	if err != nil {
		cfg.Eq.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: eq requires 2 args, got %d", cli.ErrUsage, len(args))
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
	if !cfg.Quiet {
		fmt.Fprintf(cc.Out, "%s and %s differ\n", args[0], args[1])
	}
	return cli.ExitCodeErr(1)
}

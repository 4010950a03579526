package main

import (
	"fmt"

	"github.com/stablejson/go-stablejson/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := false
	for _, arg := range args {
		doc, err := getDocFile(cc, arg, cfg.parseOptsFor(arg)...)
		if err != nil {
			theLog.Error("error decoding", "file", arg, "err", err)
			failed = true
			continue
		}
		if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

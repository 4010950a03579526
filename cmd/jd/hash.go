package main

import (
	"fmt"

	"github.com/stablejson/go-stablejson/value"

	"github.com/scott-cotton/cli"
)

func hash(cfg *HashConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Hash.Parse(cc, args)
	if err != nil {
		cfg.Hash.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := getDocFile(cc, arg, cfg.parseOptsFor(arg)...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		fmt.Fprintf(cc.Out, "%08x  %s\n", uint32(value.PersistentHash(doc)), arg)
	}
	return nil
}

package main

import "os"

type DecodeCmd struct {
	Row     string `optional:"" help:"Only print one annotation row (address, register, warning, error)."`
	Summary bool   `optional:"" help:"Print per-register access counts after decoding."`

	Trace string `arg:"" name:"trace" help:"Event trace file to decode."`
}

func (l *DecodeCmd) Run(c *Context) error {
	f, err := os.Open(l.Trace)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := newRenderer(os.Stdout, l.Row)
	if err != nil {
		return err
	}

	dec, err := newDecoder(c, r)
	if err != nil {
		return err
	}

	if err := feedTrace(f, dec, nil); err != nil {
		return err
	}

	if l.Summary {
		r.printSummary(os.Stdout)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/tracetools/stusb-tools/stusbdec"
)

type Context struct {
	addr uint8
}

var CLI struct {
	Address uint8  `optional:"" type:"hex" help:"7-bit I2C address of the chip (0x28-0x2B)." default:"28"`
	RegMap  string `optional:"" help:"YAML file with extra register names to merge into the catalog."`

	Decode DecodeCmd `cmd:"" help:"Decode an event trace file and print annotations."`
	Regs   RegsCmd   `cmd:"" help:"List the known register map."`
	Live   LiveCmd   `cmd:"" help:"Decode a trace streamed on stdin with a live register view."`
}

func main() {
	k, err := kong.New(&CLI,
		kong.NamedMapper("int", intMapper{}),
		kong.NamedMapper("hex", intMapper{base: 16}))
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, err := k.Parse(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		return
	}

	if CLI.RegMap != "" {
		if err := loadRegMap(CLI.RegMap); err != nil {
			fmt.Println("Failed to load register map:", err)
			return
		}
	}

	c := &Context{addr: CLI.Address}
	err = ctx.Run(c)
	ctx.FatalIfErrorf(err)
}

func newDecoder(c *Context, sink stusbdec.Sink) (*stusbdec.Decoder, error) {
	return stusbdec.New(stusbdec.Config{Address: c.addr, Sink: sink})
}

package main

import (
	"fmt"
	"io/ioutil"

	"github.com/tracetools/stusb-tools/stusbdec"
	"gopkg.in/yaml.v3"
)

type RegsCmd struct {
}

func (l *RegsCmd) Run(c *Context) error {
	fmt.Printf("Addr | Name\n")
	for _, e := range stusbdec.Registers() {
		fmt.Printf("0x%02X | %s\n", e.Address, e.Name)
	}
	return nil
}

type regMapFile struct {
	Registers []struct {
		Address uint8  `yaml:"address"`
		Name    string `yaml:"name"`
	} `yaml:"registers"`
}

// loadRegMap merges extra register names from a YAML file into the catalog.
func loadRegMap(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}

	var file regMapFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}

	entries := make([]stusbdec.RegisterEntry, 0, len(file.Registers))
	for _, r := range file.Registers {
		if r.Name == "" {
			return fmt.Errorf("register 0x%02X has no name", r.Address)
		}
		entries = append(entries, stusbdec.RegisterEntry{Address: r.Address, Name: r.Name})
	}
	stusbdec.AddRegisters(entries)
	return nil
}

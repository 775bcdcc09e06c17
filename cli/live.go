package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/inancgumus/screen"
	"github.com/tracetools/stusb-tools/stusbdec"
)

type LiveCmd struct {
	Depth int `optional:"" help:"Number of recent warnings/errors to keep on screen." default:"5"`
}

// regShadow tracks the most recent access per register plus a short tail
// of warnings and errors; the screen is redrawn after every decoded event.
type regShadow struct {
	last   map[string]string
	counts map[string]int
	tail   []string
	depth  int
	dirty  bool
}

func (v *regShadow) Put(ann stusbdec.Annotation) {
	switch ann.Cat {
	case stusbdec.CatRegister:
		label, ok := accessLabel(ann)
		if !ok {
			return
		}
		op := "write"
		if strings.HasPrefix(ann.Text[0], "Read ") {
			op = "read"
		}
		v.last[label] = op
		v.counts[label]++
		v.dirty = true
	case stusbdec.CatWarning, stusbdec.CatError:
		line := catColors[ann.Cat].Sprintf("%s: %s", ann.Cat, ann.Text[0])
		v.tail = append(v.tail, line)
		if len(v.tail) > v.depth {
			v.tail = v.tail[len(v.tail)-v.depth:]
		}
		v.dirty = true
	}
}

func (v *regShadow) draw() {
	if !v.dirty {
		return
	}
	v.dirty = false

	screen.Clear()
	screen.MoveTopLeft()

	labels := make([]string, 0, len(v.counts))
	for label := range v.counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	fmt.Printf("%-28s %-5s %5s\n", "Register", "Last", "Count")
	for _, label := range labels {
		fmt.Printf("%-28s %-5s %5d\n", label, v.last[label], v.counts[label])
	}
	for _, line := range v.tail {
		fmt.Println(line)
	}
}

func (l *LiveCmd) Run(c *Context) error {
	view := &regShadow{
		last:   map[string]string{},
		counts: map[string]int{},
		depth:  l.Depth,
	}

	dec, err := newDecoder(c, view)
	if err != nil {
		return err
	}

	return feedTrace(os.Stdin, dec, view.draw)
}

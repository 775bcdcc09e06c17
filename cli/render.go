package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/tracetools/stusb-tools/stusbdec"
)

var catColors = map[stusbdec.Category]*color.Color{
	stusbdec.CatAddress:  color.New(color.FgCyan),
	stusbdec.CatRegister: color.New(color.FgGreen),
	stusbdec.CatWarning:  color.New(color.FgYellow),
	stusbdec.CatError:    color.New(color.FgRed),
}

// renderer prints annotations one per line, colored by row, and keeps
// per-register access counts for the summary.
type renderer struct {
	out    io.Writer
	row    stusbdec.Category
	filter bool
	counts map[string]int
}

func newRenderer(out io.Writer, row string) (*renderer, error) {
	r := &renderer{out: out, counts: map[string]int{}}
	if row != "" {
		cat, err := parseCategory(row)
		if err != nil {
			return nil, err
		}
		r.row = cat
		r.filter = true
	}
	return r, nil
}

func parseCategory(name string) (stusbdec.Category, error) {
	switch strings.ToLower(name) {
	case "address":
		return stusbdec.CatAddress, nil
	case "register":
		return stusbdec.CatRegister, nil
	case "warning":
		return stusbdec.CatWarning, nil
	case "error":
		return stusbdec.CatError, nil
	}
	return 0, errors.New("Unknown annotation row: " + name)
}

func (r *renderer) Put(ann stusbdec.Annotation) {
	if label, ok := accessLabel(ann); ok {
		r.counts[label]++
	}
	if r.filter && ann.Cat != r.row {
		return
	}
	c := catColors[ann.Cat]
	fmt.Fprintf(r.out, "%10d-%-10d %s %s\n",
		ann.SS, ann.ES, c.Sprintf("%-8s", ann.Cat.String()), ann.Text[0])
}

// accessLabel extracts the register label from read/write annotations.
func accessLabel(ann stusbdec.Annotation) (string, bool) {
	if ann.Cat != stusbdec.CatRegister || len(ann.Text) == 0 {
		return "", false
	}
	for _, prefix := range []string{"Write ", "Read "} {
		if strings.HasPrefix(ann.Text[0], prefix) {
			return strings.TrimPrefix(ann.Text[0], prefix), true
		}
	}
	return "", false
}

func (r *renderer) printSummary(out io.Writer) {
	labels := make([]string, 0, len(r.counts))
	for label := range r.counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	fmt.Fprintf(out, "\nRegister accesses:\n")
	for _, label := range labels {
		fmt.Fprintf(out, "%6d  %s\n", r.counts[label], label)
	}
}

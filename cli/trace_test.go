package main

import (
	"strings"
	"testing"

	"github.com/tracetools/stusb-tools/stusbdec"
)

func TestParseTraceLine(t *testing.T) {
	cases := []struct {
		line string
		want stusbdec.Event
	}{
		{"100 110 START", stusbdec.Event{Cmd: stusbdec.CmdStart, SS: 100, ES: 110}},
		{"110 120 ADDRESS_WRITE 50", stusbdec.Event{Cmd: stusbdec.CmdAddressWrite, Byte: 0x50, SS: 110, ES: 120}},
		{"120 130 DATA_READ ff", stusbdec.Event{Cmd: stusbdec.CmdDataRead, Byte: 0xFF, SS: 120, ES: 130}},
		{"130 132 NACK", stusbdec.Event{Cmd: stusbdec.CmdNack, SS: 130, ES: 132}},
	}
	for _, c := range cases {
		ev, ok, err := parseTraceLine(c.line)
		if err != nil || !ok {
			t.Fatalf("parseTraceLine(%q) ok=%v err=%v", c.line, ok, err)
		}
		if ev != c.want {
			t.Errorf("parseTraceLine(%q) = %+v, want %+v", c.line, ev, c.want)
		}
	}
}

func TestParseTraceLineSkips(t *testing.T) {
	for _, line := range []string{"", "   ", "# comment", "  # indented comment"} {
		if _, ok, err := parseTraceLine(line); ok || err != nil {
			t.Errorf("parseTraceLine(%q) ok=%v err=%v, want skip", line, ok, err)
		}
	}
}

func TestParseTraceLineBits(t *testing.T) {
	line := "130 162 BITS 130:134 134:138 138:142 142:146 146:150 150:154 154:158 158:162"
	ev, ok, err := parseTraceLine(line)
	if err != nil || !ok {
		t.Fatalf("parseTraceLine ok=%v err=%v", ok, err)
	}
	if ev.Cmd != stusbdec.CmdBits {
		t.Fatalf("cmd = %v, want CmdBits", ev.Cmd)
	}
	// First pair on the line is the MSB.
	if ev.Bits[7] != (stusbdec.BitSpan{SS: 130, ES: 134}) {
		t.Errorf("MSB span = %+v", ev.Bits[7])
	}
	if ev.Bits[0] != (stusbdec.BitSpan{SS: 158, ES: 162}) {
		t.Errorf("LSB span = %+v", ev.Bits[0])
	}
}

func TestParseTraceLineErrors(t *testing.T) {
	for _, line := range []string{
		"100 110",
		"x 110 START",
		"100 y START",
		"100 110 FNORD",
		"100 110 DATA_WRITE",
		"100 110 DATA_WRITE zz",
		"100 110 START 00",
		"100 110 BITS 1:2",
	} {
		if _, _, err := parseTraceLine(line); err == nil {
			t.Errorf("parseTraceLine(%q) expected error", line)
		}
	}
}

func TestFeedTraceReportsLineNumber(t *testing.T) {
	sink := stusbdec.SinkFunc(func(stusbdec.Annotation) {})
	dec, err := stusbdec.New(stusbdec.Config{Address: 0x28, Sink: sink})
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	trace := "# capture\n100 110 START\nbogus line here\n"
	err = feedTrace(strings.NewReader(trace), dec, nil)
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("feedTrace err=%v, want line 3 error", err)
	}
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tracetools/stusb-tools/stusbdec"
)

// Trace files carry one event per line: "SS ES CMD [payload]". Address and
// data commands take a hex byte payload; BITS lines take eight "ss:es"
// pairs, MSB first. Blank lines and lines starting with # are skipped.
var traceCmds = map[string]stusbdec.Cmd{
	"START":         stusbdec.CmdStart,
	"STOP":          stusbdec.CmdStop,
	"ADDRESS_WRITE": stusbdec.CmdAddressWrite,
	"ADDRESS_READ":  stusbdec.CmdAddressRead,
	"DATA_WRITE":    stusbdec.CmdDataWrite,
	"DATA_READ":     stusbdec.CmdDataRead,
	"ACK":           stusbdec.CmdAck,
	"NACK":          stusbdec.CmdNack,
	"BITS":          stusbdec.CmdBits,
}

func parseTraceLine(line string) (ev stusbdec.Event, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return ev, false, nil
	}

	fields := strings.Fields(line)
	if len(fields) < 3 {
		return ev, false, errors.New("expected at least SS ES CMD")
	}

	ev.SS, err = strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return ev, false, fmt.Errorf("bad start sample %q", fields[0])
	}
	ev.ES, err = strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return ev, false, fmt.Errorf("bad end sample %q", fields[1])
	}

	cmd, found := traceCmds[fields[2]]
	if !found {
		return ev, false, fmt.Errorf("unknown command %q", fields[2])
	}
	ev.Cmd = cmd

	switch cmd {
	case stusbdec.CmdAddressWrite, stusbdec.CmdAddressRead,
		stusbdec.CmdDataWrite, stusbdec.CmdDataRead:
		if len(fields) != 4 {
			return ev, false, fmt.Errorf("%s requires a byte payload", fields[2])
		}
		b, err := strconv.ParseUint(fields[3], 16, 8)
		if err != nil {
			return ev, false, fmt.Errorf("bad payload byte %q", fields[3])
		}
		ev.Byte = uint8(b)
	case stusbdec.CmdBits:
		if len(fields) != 11 {
			return ev, false, errors.New("BITS requires eight ss:es pairs")
		}
		for i, pair := range fields[3:] {
			span, err := parseBitSpan(pair)
			if err != nil {
				return ev, false, err
			}
			ev.Bits[7-i] = span // pairs listed MSB first
		}
	default:
		if len(fields) != 3 {
			return ev, false, fmt.Errorf("%s takes no payload", fields[2])
		}
	}
	return ev, true, nil
}

func parseBitSpan(pair string) (stusbdec.BitSpan, error) {
	var span stusbdec.BitSpan
	idx := strings.IndexByte(pair, ':')
	if idx < 0 {
		return span, fmt.Errorf("bad bit span %q", pair)
	}
	ss, err := strconv.ParseUint(pair[:idx], 10, 64)
	if err != nil {
		return span, fmt.Errorf("bad bit span %q", pair)
	}
	es, err := strconv.ParseUint(pair[idx+1:], 10, 64)
	if err != nil {
		return span, fmt.Errorf("bad bit span %q", pair)
	}
	span.SS = ss
	span.ES = es
	return span, nil
}

// feedTrace decodes every event in r, calling after (if set) once per
// decoded event.
func feedTrace(r io.Reader, dec *stusbdec.Decoder, after func()) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		ev, ok, err := parseTraceLine(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %v", lineNo, err)
		}
		if !ok {
			continue
		}
		dec.Decode(ev)
		if after != nil {
			after()
		}
	}
	return scanner.Err()
}

// Package stusbdec decodes captured I2C bus traffic with an STUSB4500 USB
// Power-Delivery controller into a stream of timestamped annotations.
//
// The decoder consumes already-parsed I2C events one at a time and tracks
// the chip's register-access protocol: address phase, register-select
// write, then sequential register reads or writes against an
// auto-incrementing register pointer. It performs no I/O and has no
// internal concurrency; annotations are handed synchronously to the
// configured Sink. Register values are not interpreted.
package stusbdec

import "fmt"

// Phase is the transaction state of the decoder.
type Phase int

const (
	// PhaseIdle waits for a start condition. Anything else on the bus is
	// ignored.
	PhaseIdle Phase = iota
	// PhaseAwaitAddress expects the address byte that reveals the target
	// chip and the transfer direction.
	PhaseAwaitAddress
	// PhaseAwaitRegister expects the data-write byte that loads the
	// register pointer.
	PhaseAwaitRegister
	// PhaseWriteRegs consumes sequential register writes until a stop
	// condition.
	PhaseWriteRegs
	// PhaseReadRegs consumes sequential register reads until a NACK or
	// stop condition.
	PhaseReadRegs
)

// Config carries the decode session configuration.
type Config struct {
	// Address is the 7-bit bus address of the chip. The STUSB4500 straps
	// to one of 0x28, 0x29, 0x2A or 0x2B; anything else is rejected.
	Address uint8

	// Sink receives every produced annotation.
	Sink Sink
}

// Decoder is the per-capture transaction state machine. It is not safe
// for concurrent use; drive it from a single goroutine.
type Decoder struct {
	config Config

	phase    Phase
	blockSS  uint64
	reg      uint8
	regValid bool
	needAck  bool
	bits     *[8]BitSpan
}

// New validates the configuration and returns a decoder in PhaseIdle.
func New(config Config) (*Decoder, error) {
	switch config.Address {
	case 0x28, 0x29, 0x2A, 0x2B:
	default:
		return nil, ErrorInvalidAddress
	}
	if config.Sink == nil {
		return nil, ErrorNoSink
	}
	return &Decoder{config: config}, nil
}

// Reset restores the decoder to its initial state, as if freshly created.
func (d *Decoder) Reset() {
	d.phase = PhaseIdle
	d.blockSS = 0
	d.reg = 0
	d.regValid = false
	d.needAck = false
	d.bits = nil
}

// Phase returns the current transaction state.
func (d *Decoder) Phase() Phase {
	return d.phase
}

// Decode processes one bus event, emitting zero or more annotations to the
// sink. It never fails: malformed traffic is annotated and the machine
// re-synchronizes at the next start condition.
//
// Note the deliberate asymmetry in error recovery: an unexpected event
// during the address or register-select phase drops back to PhaseIdle,
// while the same situation during a read or write burst only annotates and
// stays put, tolerating a single spurious event between data bytes.
func (d *Decoder) Decode(ev Event) {
	// A BITS event describes the byte event that immediately follows and
	// is cached, never annotated.
	if ev.Cmd == CmdBits {
		bits := ev.Bits
		d.bits = &bits
		return
	}

	switch d.phase {
	case PhaseIdle:
		if ev.Cmd == CmdStart {
			d.blockSS = ev.SS
			d.phase = PhaseAwaitAddress
		}
	case PhaseAwaitAddress:
		d.handleAddress(ev)
	case PhaseAwaitRegister:
		d.handleRegisterSelect(ev)
	case PhaseWriteRegs:
		d.handleWrite(ev)
	case PhaseReadRegs:
		d.handleRead(ev)
	}

	switch ev.Cmd {
	case CmdAddressWrite, CmdAddressRead, CmdDataWrite, CmdDataRead:
		d.bits = nil
	}
}

func (d *Decoder) handleAddress(ev Event) {
	if ev.Cmd != CmdAddressWrite && ev.Cmd != CmdAddressRead {
		d.put(ev.SS, ev.ES, CatError,
			"Expected ADDRESS READ/WRITE (got "+ev.Cmd.String()+")", "ERR")
		d.resync()
		return
	}

	addr := ev.Byte >> 1
	if addr != d.config.Address {
		// Traffic for another slave on the bus, not a fault.
		d.put(d.blockSS, ev.ES, CatAddress,
			fmt.Sprintf("Ignoring wrong address (slave 0x%02X)", addr))
		d.resync()
		return
	}

	d.put(d.blockSS, ev.ES, CatAddress, fmt.Sprintf("Address (slave 0x%02X)", addr))
	d.needAck = true
	if ev.Cmd == CmdAddressWrite {
		d.phase = PhaseAwaitRegister
	} else {
		d.phase = PhaseReadRegs
	}
}

func (d *Decoder) handleRegisterSelect(ev Event) {
	if ev.Cmd == CmdAck {
		d.handleAck(ev)
		return
	}
	if ev.Cmd != CmdDataWrite {
		d.put(ev.SS, ev.ES, CatError,
			"Expected DATA WRITE (got "+ev.Cmd.String()+")", "ERR")
		d.resync()
		return
	}

	d.reg = ev.Byte
	d.regValid = true
	ss, es := d.byteSpan(ev)
	d.put(ss, es, CatRegister,
		"Reg "+RegisterLabel(ev.Byte), fmt.Sprintf("Reg %02X", ev.Byte))
	d.needAck = true
	d.phase = PhaseWriteRegs
}

func (d *Decoder) handleWrite(ev Event) {
	switch ev.Cmd {
	case CmdAck:
		d.handleAck(ev)
	case CmdDataWrite:
		d.put(ev.SS, ev.ES, CatRegister,
			"Write "+d.regLabel(), fmt.Sprintf("W %02X", d.reg))
		// The chip auto-increments its register pointer and does not
		// wrap at the top of the map.
		d.reg++
		d.needAck = true
	case CmdStop:
		d.resync()
	default:
		d.put(ev.SS, ev.ES, CatError,
			"Expected DATA WRITE or STOP (got "+ev.Cmd.String()+")", "ERR")
	}
}

func (d *Decoder) handleRead(ev Event) {
	switch ev.Cmd {
	case CmdAck:
		d.handleAck(ev)
	case CmdNack:
		// Normal terminator of a read burst.
		d.resync()
	case CmdDataRead:
		d.put(ev.SS, ev.ES, CatRegister,
			"Read "+d.regLabel(), fmt.Sprintf("R %02X", d.reg))
		d.reg++
		d.needAck = true
	case CmdStop:
		d.resync()
	default:
		d.put(ev.SS, ev.ES, CatError,
			"Expected DATA READ or STOP (got "+ev.Cmd.String()+")", "ERR")
	}
}

// handleAck consumes the acknowledgement gating the previous addressed
// byte. An ACK nobody asked for is reported and otherwise ignored.
func (d *Decoder) handleAck(ev Event) {
	if d.needAck {
		d.needAck = false
		return
	}
	d.put(ev.SS, ev.ES, CatWarning, "Unexpected ACK")
}

// resync drops back to PhaseIdle after a finished or unrecoverable
// transaction. The register pointer survives: the chip keeps it across
// transactions, and a read burst legitimately continues from wherever the
// previous access left it.
func (d *Decoder) resync() {
	d.phase = PhaseIdle
	d.needAck = false
}

// byteSpan is the annotation span for the current byte event: from the
// start of its MSB to the end of its LSB when bit timing is cached, the
// whole event span otherwise.
func (d *Decoder) byteSpan(ev Event) (uint64, uint64) {
	if d.bits != nil {
		return d.bits[7].SS, d.bits[0].ES
	}
	return ev.SS, ev.ES
}

func (d *Decoder) regLabel() string {
	if !d.regValid {
		return fmt.Sprintf("unselected (0x%02X)", d.reg)
	}
	return RegisterLabel(d.reg)
}

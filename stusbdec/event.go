package stusbdec

// Cmd identifies one decoded I2C-layer occurrence.
type Cmd int

const (
	CmdStart Cmd = iota
	CmdStop
	CmdAddressWrite
	CmdAddressRead
	CmdDataWrite
	CmdDataRead
	CmdAck
	CmdNack
	CmdBits
)

func (c Cmd) String() string {
	switch c {
	case CmdStart:
		return "START"
	case CmdStop:
		return "STOP"
	case CmdAddressWrite:
		return "ADDRESS WRITE"
	case CmdAddressRead:
		return "ADDRESS READ"
	case CmdDataWrite:
		return "DATA WRITE"
	case CmdDataRead:
		return "DATA READ"
	case CmdAck:
		return "ACK"
	case CmdNack:
		return "NACK"
	case CmdBits:
		return "BITS"
	}
	return "UNKNOWN"
}

// BitSpan is the sample span of a single bit on the wire.
type BitSpan struct {
	SS uint64
	ES uint64
}

// Event is one decoded I2C bus occurrence tagged with its sample span.
//
// Byte carries the payload of address and data commands (for address
// commands it is the full 8-bit field, 7-bit address plus R/W bit).
// Bits is only meaningful for CmdBits and describes the byte event that
// immediately follows, indexed by bit number (7 = MSB, first on the wire).
type Event struct {
	Cmd  Cmd
	Byte uint8
	SS   uint64
	ES   uint64
	Bits [8]BitSpan
}

package stusbdec

import "errors"

var (
	ErrorInvalidAddress = errors.New("Address must be one of 0x28, 0x29, 0x2A, 0x2B")
	ErrorNoSink         = errors.New("No annotation sink configured")
)

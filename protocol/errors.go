package protocol

import "fmt"

// FramingError indicates a response buffer that does not form a valid
// frame: wrong marker byte, unknown status byte, or a declared payload
// length that disagrees with the bytes actually present.
type FramingError struct {
	// Reason describes the specific violation
	Reason string
}

func (e *FramingError) Error() string {
	return "invalid response frame: " + e.Reason
}

func framingErrorf(format string, args ...interface{}) error {
	return &FramingError{Reason: fmt.Sprintf(format, args...)}
}

// DecodeError indicates a well-framed success payload whose shape does
// not match what the opcode's decoder expects: wrong length, an echoed
// field that disagrees with the request, or an enum byte outside the
// known set. The raw byte is carried in the message so hardware state
// is never silently coerced to a known value.
type DecodeError struct {
	// Opcode is the request the payload was decoded for
	Opcode Opcode

	// Reason describes the mismatch
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s response: %s", e.Opcode, e.Reason)
}

func decodeErrorf(op Opcode, format string, args ...interface{}) error {
	return &DecodeError{Opcode: op, Reason: fmt.Sprintf(format, args...)}
}

// ValueError indicates a caller-supplied value outside the range the
// device accepts. It is raised during encoding, before any bytes reach
// the transport; values are never silently clamped.
type ValueError struct {
	// Param names the parameter being encoded
	Param string

	// Value is the rejected value
	Value int

	// Min and Max bound the accepted range (inclusive)
	Min, Max int
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s %d out of range %d..%d", e.Param, e.Value, e.Min, e.Max)
}

// DeviceError is a device-reported failure: a response with the error
// status. The payload is preserved verbatim; the device is known to
// return a descriptive payload for some conditions (e.g. its internal
// slave timeout) but the bytes are not interpreted here.
type DeviceError struct {
	// Opcode is the request the device rejected
	Opcode Opcode

	// Payload is the error payload exactly as received
	Payload []byte
}

func (e *DeviceError) Error() string {
	if len(e.Payload) == 0 {
		return fmt.Sprintf("device reported error for %s", e.Opcode)
	}
	return fmt.Sprintf("device reported error for %s: payload % X", e.Opcode, e.Payload)
}

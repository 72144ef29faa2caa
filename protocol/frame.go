package protocol

import "fmt"

// Request is one protocol request: an opcode plus its payload bytes.
// The Build* functions construct requests with validated payloads;
// a Request with an undocumented opcode is legal and passes through
// the framing layer unmodified.
type Request struct {
	Opcode  Opcode
	Payload []byte
}

// Encode renders the request into wire form.
//
// Frame structure:
//
//	[0x02][OPCODE][PAYLOAD_LEN][PAYLOAD...]
//
// The length byte and payload are omitted entirely when the payload is
// empty; the device's minimal-frame convention does not use a
// zero-length marker.
func (r Request) Encode() ([]byte, error) {
	if len(r.Payload) > MaxPayloadSize {
		return nil, fmt.Errorf("payload too large: %d bytes, maximum is %d", len(r.Payload), MaxPayloadSize)
	}

	frame := make([]byte, 0, 3+len(r.Payload))
	frame = append(frame, FrameMarker)
	frame = append(frame, byte(r.Opcode))

	if len(r.Payload) > 0 {
		frame = append(frame, byte(len(r.Payload)))
		frame = append(frame, r.Payload...)
	}

	if len(frame) > MaxFrameSize {
		return nil, fmt.Errorf("frame too large: %d bytes, maximum is %d", len(frame), MaxFrameSize)
	}

	return frame, nil
}

// Response is one parsed response: a status plus its payload bytes.
type Response struct {
	Status  Status
	Payload []byte
}

// DecodeResponse parses a raw response buffer.
//
// Response frame structure:
//
//	[0x02][STATUS]                          status = 0x00 (no-response)
//	[0x02][STATUS][PAYLOAD_LEN][PAYLOAD...] status = 0x01 or 0x02
//
// A no-response frame is exactly two bytes; no further bytes are read.
// For the other statuses the declared length must match the remaining
// bytes exactly. Any violation returns a *FramingError.
func DecodeResponse(buf []byte) (Response, error) {
	if len(buf) < 2 {
		return Response{}, framingErrorf("frame too short: got %d bytes, minimum is 2", len(buf))
	}

	if buf[0] != FrameMarker {
		return Response{}, framingErrorf("invalid frame marker: got 0x%02X, expected 0x%02X", buf[0], FrameMarker)
	}

	status := Status(buf[1])
	switch status {
	case StatusNoResponse:
		return Response{Status: StatusNoResponse}, nil
	case StatusError, StatusSuccess:
	default:
		return Response{}, framingErrorf("unknown status byte 0x%02X", buf[1])
	}

	if len(buf) < 3 {
		return Response{}, framingErrorf("missing payload length byte for status %s", status)
	}

	payloadLen := int(buf[2])
	if len(buf) != 3+payloadLen {
		return Response{}, framingErrorf("payload length mismatch: declared %d bytes, %d present", payloadLen, len(buf)-3)
	}

	resp := Response{Status: status}
	if payloadLen > 0 {
		resp.Payload = make([]byte, payloadLen)
		copy(resp.Payload, buf[3:])
	}

	return resp, nil
}

// FrameLength reports the total length of the response frame starting
// at the head of buf, based on its status and declared payload length.
// Used to strip USB packet padding before DecodeResponse. Returns a
// *FramingError if the head of buf is not a valid frame prefix.
func FrameLength(buf []byte) (int, error) {
	if len(buf) < 2 {
		return 0, framingErrorf("frame too short: got %d bytes, minimum is 2", len(buf))
	}
	if buf[0] != FrameMarker {
		return 0, framingErrorf("invalid frame marker: got 0x%02X, expected 0x%02X", buf[0], FrameMarker)
	}

	switch Status(buf[1]) {
	case StatusNoResponse:
		return 2, nil
	case StatusError, StatusSuccess:
		if len(buf) < 3 {
			return 0, framingErrorf("missing payload length byte for status %s", Status(buf[1]))
		}
		return 3 + int(buf[2]), nil
	default:
		return 0, framingErrorf("unknown status byte 0x%02X", buf[1])
	}
}

// Package protocol implements the vendor request/response protocol of
// the Astro A50 gen 4 base station.
//
// # Wire Format
//
// Every exchange is one request frame followed by one response frame:
//
//	Request:  [0x02][OPCODE][PAYLOAD_LEN][PAYLOAD...]
//	Response: [0x02][STATUS][PAYLOAD_LEN][PAYLOAD...]
//
// The length-prefixed tail is present only when the payload is
// non-empty; a response with the no-response status (0x00) is exactly
// two bytes. The payload length fits in one byte and frames never
// exceed the device's 64-byte packet size.
//
// # Request Builders
//
// Use the Build* functions to construct validated requests:
//
//	req, err := protocol.BuildSetSliderValueRequest(protocol.SliderMic, 80)
//	frame, err := req.Encode()
//
// Out-of-range values are rejected with *ValueError before any bytes
// are produced; nothing is clamped.
//
// # Response Parsers
//
// Use DecodeResponse to validate the framing of a raw buffer, then the
// Parse* function matching the opcode that was sent:
//
//	resp, err := protocol.DecodeResponse(buf)
//	if resp.Status == protocol.StatusSuccess {
//	    value, err := protocol.ParseGetSliderValueResponse(resp.Payload, protocol.SliderMic)
//	}
//
// # Active and Saved Banks
//
// The device keeps two configuration banks: the live (active) settings
// and a snapshot written only by the save command (0x61). Getters for
// sliders, the noise gate, the mic EQ preset and the EQ parameters
// return both banks in one response; the alert volume, default balance
// and preset name getters instead carry a scope selector byte in the
// request. Setters always act on the active bank.
//
// # Protocol Provenance
//
// The opcode table and payload shapes come from reverse engineering,
// not a vendor document. Opcodes outside the documented set (0x03,
// 0x55, 0x83, 0xDA, 0xD6 have been observed) are representable as raw
// requests but have no typed encode/decode pair here.
package protocol

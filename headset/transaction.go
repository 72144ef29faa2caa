package headset

import (
	"errors"
	"fmt"

	"github.com/a50kit/go-a50/protocol"
	"github.com/rs/zerolog"
)

// txState tracks one exchange through its lifecycle. The channel has no
// request IDs, so at most one transaction may be outstanding per
// session; the session's mutex enforces that.
type txState int

const (
	txIdle txState = iota
	txSent
	txAwaitingResponse
	txComplete
	txProtocolError
	txTransportError
	txTimedOut
)

func (s txState) String() string {
	switch s {
	case txIdle:
		return "idle"
	case txSent:
		return "sent"
	case txAwaitingResponse:
		return "awaiting-response"
	case txComplete:
		return "complete"
	case txProtocolError:
		return "protocol-error"
	case txTransportError:
		return "transport-error"
	case txTimedOut:
		return "timed-out"
	default:
		return fmt.Sprintf("txState(%d)", int(s))
	}
}

// exchange drives one request through the transport and returns the
// parsed response. The caller must hold s.mu.
//
// A device-reported error status completes the transaction but the
// result is a *protocol.DeviceError carrying the error payload, so
// callers can tell protocol-level failures from transport failures and
// from malformed frames.
func (s *Session) exchange(req protocol.Request) (protocol.Response, error) {
	if s.closed {
		return protocol.Response{}, ErrSessionClosed
	}

	logger := s.cfg.Logger.With().Stringer("opcode", req.Opcode).Logger()
	resp, state, err := s.runTransaction(logger, req)
	logger.Debug().Stringer("state", state).Msg("transaction finished")
	return resp, err
}

func (s *Session) runTransaction(logger zerolog.Logger, req protocol.Request) (protocol.Response, txState, error) {
	frame, err := req.Encode()
	if err != nil {
		return protocol.Response{}, txIdle, err
	}

	logger.Debug().Hex("frame", frame).Msg("writing request")
	n, err := s.transport.Write(frame, s.cfg.Timeout)
	if err != nil {
		return s.transportFailure(logger, "write", err)
	}
	if n != len(frame) {
		err = &TransportError{Op: "write", Err: fmt.Errorf("short write: %d of %d bytes", n, len(frame))}
		return protocol.Response{}, txTransportError, err
	}

	// Sent; await the response packet.
	buf := make([]byte, maxPacketSize)
	n, err = s.transport.Read(buf, s.cfg.Timeout)
	if err != nil {
		return s.transportFailure(logger, "read", err)
	}

	raw := buf[:n]
	logger.Debug().Hex("frame", raw).Msg("received response")

	// The device pads responses to full packets; strip the padding
	// before the strict framing check.
	frameLen, err := protocol.FrameLength(raw)
	if err == nil && frameLen > len(raw) {
		err = &protocol.FramingError{
			Reason: fmt.Sprintf("truncated frame: declared %d bytes, received %d", frameLen, len(raw)),
		}
	}
	if err != nil {
		logger.Warn().Err(err).Msg("malformed response")
		return protocol.Response{}, txProtocolError, err
	}

	resp, err := protocol.DecodeResponse(raw[:frameLen])
	if err != nil {
		logger.Warn().Err(err).Msg("malformed response")
		return protocol.Response{}, txProtocolError, err
	}

	switch resp.Status {
	case protocol.StatusSuccess:
		return resp, txComplete, nil
	case protocol.StatusError:
		// Device-side failures, including its internal slave timeout,
		// arrive here with a descriptive payload intact.
		logger.Warn().Hex("payload", resp.Payload).Msg("device reported error")
		return resp, txComplete, &protocol.DeviceError{Opcode: req.Opcode, Payload: resp.Payload}
	default:
		logger.Debug().Msg("device returned no-response status")
		return resp, txComplete, ErrNoResponse
	}
}

// transportFailure classifies a transport error, resetting the device
// after a timeout; without the reset the device returns garbage in
// subsequent responses.
func (s *Session) transportFailure(logger zerolog.Logger, op string, err error) (protocol.Response, txState, error) {
	if errors.Is(err, ErrTimeout) {
		logger.Warn().Str("op", op).Msg("resetting device after timeout")
		if resetErr := s.handle.Reset(); resetErr != nil {
			logger.Error().Err(resetErr).Msg("device reset failed")
		}
		return protocol.Response{}, txTimedOut, fmt.Errorf("%s: %w", op, ErrTimeout)
	}

	return protocol.Response{}, txTransportError, &TransportError{Op: op, Err: err}
}

package headset

import (
	"errors"
	"fmt"
)

// Sentinel errors for session lifecycle and transaction outcomes.
var (
	// ErrDeviceNotFound indicates no base station with the expected
	// vendor/product identity is connected.
	ErrDeviceNotFound = errors.New("base station not found")

	// ErrTimeout indicates the device did not respond within the
	// configured bound. Getters are safe to retry; the device state
	// after a timed-out setter is unknown, so setters are not.
	ErrTimeout = errors.New("timed out waiting for device")

	// ErrNoResponse indicates the device answered with the no-response
	// status instead of a result.
	ErrNoResponse = errors.New("device returned no-response status")

	// ErrSessionClosed indicates use of a session after Close.
	ErrSessionClosed = errors.New("session is closed")
)

// AccessError indicates the vendor interface could not be claimed.
// This is commonly a permissions problem; on Linux a udev rule granting
// access to the device node is the usual fix.
type AccessError struct {
	Err error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot claim device interface: %v", e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// TransportError indicates an I/O failure below the protocol layer.
type TransportError struct {
	// Op is the transport operation that failed ("write" or "read")
	Op string

	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Package headset manages an exclusive configuration session with an
// Astro A50 gen 4 base station over USB.
//
// # Overview
//
// A Session composes the protocol codec with a transaction engine over
// the device's vendor interface:
//   - Open locates the device, detaches any kernel driver and claims
//     the interface exclusively
//   - one method per parameter drives a single request/response
//     exchange, bounded by a timeout
//   - Close releases the interface and restores the kernel driver, and
//     is safe to call more than once
//
// # Basic Usage
//
//	s, err := headset.Open()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	battery, err := s.BatteryStatus()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("charge: %d%%\n", battery.ChargePercent)
//
// Or with scoped acquisition, which closes on every exit path:
//
//	err := headset.WithSession(func(s *headset.Session) error {
//	    if err := s.SetMicLevel(80); err != nil {
//	        return err
//	    }
//	    return s.SaveValues()
//	})
//
// # Concurrency
//
// The model is synchronous and blocking: each call performs one write
// and one read against the device, and the underlying channel has no
// request multiplexing. The session serializes its own calls; sharing
// one Session across goroutines is safe but calls queue behind each
// other. Cancellation mid-transaction is not supported — the timeout is
// the only way a blocked call returns without a device response.
//
// # Error Handling
//
// Failures are scoped to the failing call:
//   - ErrDeviceNotFound, *AccessError: open-time conditions
//   - *TransportError, ErrTimeout: I/O below the protocol
//   - *protocol.FramingError, *protocol.DecodeError: malformed device
//     output
//   - *protocol.DeviceError: the device itself rejected the request
//   - *protocol.ValueError: the caller's value was rejected before any
//     bytes were sent
//
// Nothing is retried internally. Getters are idempotent and safe for
// callers to retry after ErrTimeout; the device state after a timed-out
// setter is unknown.
//
// # Permissions
//
// Claiming the interface typically requires access to the USB device
// node. On Linux, install a udev rule such as:
//
//	SUBSYSTEM=="usb", ATTRS{idVendor}=="9886", ATTRS{idProduct}=="002c", TAG+="uaccess"
package headset

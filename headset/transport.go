package headset

import "time"

// Transport is the raw byte channel to the base station: one write and
// one read per exchange, each bounded by a timeout. Implementations
// report a timed-out operation with an error wrapping ErrTimeout and
// any other I/O failure as an ordinary error.
//
// A Transport carries a single logical request/response pipe with no
// multiplexing; the session serializes access to it.
type Transport interface {
	// Write sends p to the device. Short writes are errors.
	Write(p []byte, timeout time.Duration) (int, error)

	// Read fills p with the next packet from the device and reports
	// how many bytes were received.
	Read(p []byte, timeout time.Duration) (int, error)
}

// DeviceHandle is the platform access layer below the session: device
// ownership and kernel-driver primitives, kept opaque so the session
// logic is independent of the USB stack underneath.
type DeviceHandle interface {
	// KernelDriverActive reports whether an OS driver is bound to the
	// vendor interface.
	KernelDriverActive() (bool, error)

	// DetachKernelDriver unbinds the OS driver from the vendor
	// interface so it can be claimed.
	DetachKernelDriver() error

	// AttachKernelDriver rebinds the OS driver to the vendor interface.
	AttachKernelDriver() error

	// Claim claims the vendor interface exclusively and returns the
	// transport over its endpoint pair.
	Claim() (Transport, error)

	// Release releases a claimed interface.
	Release() error

	// Reset resets the device. Required after a timed-out exchange;
	// the device otherwise returns garbage in subsequent responses.
	Reset() error

	// Close releases all remaining platform resources for the handle.
	Close() error
}

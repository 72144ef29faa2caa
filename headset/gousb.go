package headset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/gousb"
)

// USB identity of the A50 gen 4 base station.
const (
	// VendorID is the USB vendor ID of the base station
	VendorID = 0x9886

	// ProductID is the USB product ID of the base station
	ProductID = 0x002C

	// InterfaceNumber is the vendor interface carrying the
	// configuration channel
	InterfaceNumber = 6

	// outEndpointNumber and inEndpointNumber are the endpoint numbers
	// of the configuration channel (OUT 0x05, IN 0x85)
	outEndpointNumber = 5
	inEndpointNumber  = 5

	// maxPacketSize is the endpoint packet size; responses are padded
	// to it
	maxPacketSize = 64

	configNumber = 1
)

// usbHandle is the libusb-backed DeviceHandle. Kernel-driver handling
// is delegated to libusb's auto-detach: the driver is detached when the
// interface is claimed and reattached when it is released, so the
// explicit detach/attach primitives report nothing to do.
type usbHandle struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	cfg  *gousb.Config
	intf *gousb.Interface
	in   *gousb.InEndpoint
	out  *gousb.OutEndpoint
}

// openUSBDevice locates the base station by its fixed vendor/product
// identity.
func openUSBDevice() (DeviceHandle, error) {
	ctx := gousb.NewContext()

	dev, err := ctx.OpenDeviceWithVIDPID(gousb.ID(VendorID), gousb.ID(ProductID))
	if err != nil {
		_ = ctx.Close()
		return nil, fmt.Errorf("open device: %w", err)
	}
	if dev == nil {
		_ = ctx.Close()
		return nil, ErrDeviceNotFound
	}

	if err := dev.SetAutoDetach(true); err != nil {
		_ = dev.Close()
		_ = ctx.Close()
		return nil, fmt.Errorf("enable driver auto-detach: %w", err)
	}

	return &usbHandle{ctx: ctx, dev: dev}, nil
}

// KernelDriverActive reports false: libusb detaches and reattaches the
// driver itself around claim/release (SetAutoDetach), so there is never
// a driver for the session to manage explicitly.
func (h *usbHandle) KernelDriverActive() (bool, error) { return false, nil }

func (h *usbHandle) DetachKernelDriver() error { return nil }

func (h *usbHandle) AttachKernelDriver() error { return nil }

// Claim claims the vendor interface and resolves its endpoint pair.
func (h *usbHandle) Claim() (Transport, error) {
	cfg, err := h.dev.Config(configNumber)
	if err != nil {
		return nil, fmt.Errorf("select configuration %d: %w", configNumber, err)
	}

	intf, err := cfg.Interface(InterfaceNumber, 0)
	if err != nil {
		_ = cfg.Close()
		return nil, fmt.Errorf("claim interface %d: %w", InterfaceNumber, err)
	}

	in, err := intf.InEndpoint(inEndpointNumber)
	if err != nil {
		intf.Close()
		_ = cfg.Close()
		return nil, fmt.Errorf("resolve IN endpoint: %w", err)
	}

	out, err := intf.OutEndpoint(outEndpointNumber)
	if err != nil {
		intf.Close()
		_ = cfg.Close()
		return nil, fmt.Errorf("resolve OUT endpoint: %w", err)
	}

	h.cfg = cfg
	h.intf = intf
	h.in = in
	h.out = out
	return h, nil
}

func (h *usbHandle) Release() error {
	if h.intf != nil {
		h.intf.Close()
		h.intf = nil
	}
	if h.cfg != nil {
		err := h.cfg.Close()
		h.cfg = nil
		return err
	}
	return nil
}

func (h *usbHandle) Reset() error {
	return h.dev.Reset()
}

func (h *usbHandle) Close() error {
	_ = h.Release()

	var firstErr error
	if h.dev != nil {
		firstErr = h.dev.Close()
		h.dev = nil
	}
	if h.ctx != nil {
		if err := h.ctx.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		h.ctx = nil
	}
	return firstErr
}

// Write sends one packet on the OUT endpoint.
func (h *usbHandle) Write(p []byte, timeout time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	n, err := h.out.WriteContext(ctx, p)
	return n, mapUSBError(err)
}

// Read receives one packet from the IN endpoint.
func (h *usbHandle) Read(p []byte, timeout time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	n, err := h.in.ReadContext(ctx, p)
	return n, mapUSBError(err)
}

// mapUSBError folds libusb and context timeout conditions into
// ErrTimeout so the transaction engine can classify them.
func mapUSBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, gousb.TransferTimedOut) {
		return fmt.Errorf("%v: %w", err, ErrTimeout)
	}
	return err
}

package headset

import (
	"time"

	"github.com/rs/zerolog"
)

// Config holds the session configuration.
type Config struct {
	// Timeout bounds each transport write and read. The default leaves
	// headroom for the save command, whose response can take over two
	// seconds.
	Timeout time.Duration

	// Logger receives exchange traces at debug level and lifecycle
	// events at info/warn. Defaults to a no-op logger.
	Logger zerolog.Logger

	// open locates and opens the device; overridable for tests and
	// alternative platform layers.
	open func() (DeviceHandle, error)
}

func defaultConfig() Config {
	return Config{
		Timeout: DefaultTimeout,
		Logger:  zerolog.Nop(),
		open:    openUSBDevice,
	}
}

// Option is a functional option for configuring a Session.
type Option func(*Config)

// WithTimeout sets the per-operation transport timeout.
//
// Example:
//
//	s, err := headset.Open(headset.WithTimeout(5 * time.Second))
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.Timeout = timeout
		}
	}
}

// WithLogger sets the logger for session and transaction events.
//
// Example:
//
//	logger := zerolog.New(os.Stderr).Level(zerolog.DebugLevel)
//	s, err := headset.Open(headset.WithLogger(logger))
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithDeviceHandle makes the session use the given handle instead of
// discovering a USB device. Intended for tests and for callers with
// their own platform access layer.
func WithDeviceHandle(handle DeviceHandle) Option {
	return func(c *Config) {
		c.open = func() (DeviceHandle, error) { return handle, nil }
	}
}

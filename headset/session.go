package headset

import (
	"fmt"
	"sync"
	"time"

	"github.com/a50kit/go-a50/protocol"
)

// DefaultTimeout bounds each transport operation. The save command's
// response can take over two seconds.
const DefaultTimeout = 3 * time.Second

// Session is an exclusive configuration session with a base station.
// It owns the claimed vendor interface and the record of whether a
// kernel driver had to be detached to claim it.
//
// A Session serializes its own calls; at most one transaction is in
// flight at a time because the underlying channel has no request IDs.
// Close is mandatory and idempotent, and restores the kernel driver if
// one was detached.
type Session struct {
	handle    DeviceHandle
	transport Transport
	cfg       Config

	mu                sync.Mutex
	claimed           bool
	driverWasAttached bool
	closed            bool
}

// Open locates the base station, detaches any kernel driver bound to
// the vendor interface, claims the interface exclusively, and returns
// the session.
//
// Returns ErrDeviceNotFound when no matching device is connected and a
// *AccessError when the interface cannot be claimed. If open fails
// partway (driver detached but claim refused), the driver is reattached
// before Open returns.
//
// Example:
//
//	s, err := headset.Open()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
func Open(opts ...Option) (*Session, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	handle, err := cfg.open()
	if err != nil {
		return nil, err
	}

	s := &Session{handle: handle, cfg: cfg}
	if err := s.acquire(); err != nil {
		// Close still runs the full teardown: the driver must not be
		// left detached with no owner.
		_ = s.Close()
		return nil, err
	}

	return s, nil
}

// WithSession opens a session, runs fn, and closes the session on every
// exit path, including a panic inside fn.
//
// Example:
//
//	err := headset.WithSession(func(s *headset.Session) error {
//	    return s.SetAlertVolume(40)
//	})
func WithSession(fn func(*Session) error, opts ...Option) (err error) {
	s, err := Open(opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return fn(s)
}

// acquire detaches the kernel driver if one is bound and claims the
// vendor interface.
func (s *Session) acquire() error {
	active, err := s.handle.KernelDriverActive()
	if err != nil {
		return fmt.Errorf("query kernel driver: %w", err)
	}

	if active {
		if err := s.handle.DetachKernelDriver(); err != nil {
			return fmt.Errorf("detach kernel driver: %w", err)
		}
		s.driverWasAttached = true
		s.cfg.Logger.Info().Msg("detached kernel driver")
	}

	transport, err := s.handle.Claim()
	if err != nil {
		return &AccessError{Err: err}
	}

	s.transport = transport
	s.claimed = true
	s.cfg.Logger.Info().Msg("claimed device interface")
	return nil
}

// Close releases the claimed interface, reattaches the kernel driver if
// one was detached, and frees the device handle. It must run even after
// failed operations; calling it again is a no-op.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var firstErr error

	if s.claimed {
		s.claimed = false
		if err := s.handle.Release(); err != nil {
			firstErr = fmt.Errorf("release interface: %w", err)
			s.cfg.Logger.Error().Err(err).Msg("release failed")
		}
	}

	if s.driverWasAttached {
		s.driverWasAttached = false
		if err := s.handle.AttachKernelDriver(); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("reattach kernel driver: %w", err)
			}
			s.cfg.Logger.Error().Err(err).Msg("kernel driver reattach failed")
		} else {
			s.cfg.Logger.Info().Msg("reattached kernel driver")
		}
	}

	if err := s.handle.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close device: %w", err)
	}

	return firstErr
}

// roundTrip serializes one exchange against the session.
func (s *Session) roundTrip(req protocol.Request) (protocol.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exchange(req)
}

// SliderValue returns a slider's value in percent for the given scope.
func (s *Session) SliderValue(slider protocol.SliderType, scope protocol.Scope) (int, error) {
	req, err := protocol.BuildGetSliderValueRequest(slider)
	if err != nil {
		return 0, err
	}
	resp, err := s.roundTrip(req)
	if err != nil {
		return 0, err
	}
	value, err := protocol.ParseGetSliderValueResponse(resp.Payload, slider)
	if err != nil {
		return 0, err
	}
	if scope == protocol.ScopeSaved {
		return value.Saved, nil
	}
	return value.Active, nil
}

// SetSliderValue sets a slider to the given percentage. Setters always
// act on the active configuration.
func (s *Session) SetSliderValue(slider protocol.SliderType, percent int) error {
	req, err := protocol.BuildSetSliderValueRequest(slider, percent)
	if err != nil {
		return err
	}
	resp, err := s.roundTrip(req)
	if err != nil {
		return err
	}
	return protocol.ParseSetSliderValueResponse(resp.Payload, slider)
}

// MicLevel returns the microphone level in percent for the given scope.
func (s *Session) MicLevel(scope protocol.Scope) (int, error) {
	return s.SliderValue(protocol.SliderMic, scope)
}

// SetMicLevel sets the microphone level in percent.
func (s *Session) SetMicLevel(percent int) error {
	return s.SetSliderValue(protocol.SliderMic, percent)
}

// SideToneVolume returns the side tone volume in percent for the given
// scope.
func (s *Session) SideToneVolume(scope protocol.Scope) (int, error) {
	return s.SliderValue(protocol.SliderSideTone, scope)
}

// SetSideToneVolume sets the side tone volume in percent.
func (s *Session) SetSideToneVolume(percent int) error {
	return s.SetSliderValue(protocol.SliderSideTone, percent)
}

// NoiseGateMode returns the noise gate mode for the given scope.
func (s *Session) NoiseGateMode(scope protocol.Scope) (protocol.NoiseGateMode, error) {
	resp, err := s.roundTrip(protocol.BuildGetNoiseGateModeRequest())
	if err != nil {
		return 0, err
	}
	value, err := protocol.ParseGetNoiseGateModeResponse(resp.Payload)
	if err != nil {
		return 0, err
	}
	if scope == protocol.ScopeSaved {
		return value.Saved, nil
	}
	return value.Active, nil
}

// SetNoiseGateMode sets the noise gate mode.
func (s *Session) SetNoiseGateMode(mode protocol.NoiseGateMode) error {
	req, err := protocol.BuildSetNoiseGateModeRequest(mode)
	if err != nil {
		return err
	}
	resp, err := s.roundTrip(req)
	if err != nil {
		return err
	}
	return protocol.ParseSetNoiseGateModeResponse(resp.Payload, mode)
}

// ActiveEQPreset returns the currently active EQ preset (1-based).
func (s *Session) ActiveEQPreset() (int, error) {
	resp, err := s.roundTrip(protocol.BuildGetActiveEQPresetRequest())
	if err != nil {
		return 0, err
	}
	return protocol.ParseGetActiveEQPresetResponse(resp.Payload)
}

// SetActiveEQPreset selects the active EQ preset (1-based). The device
// takes about half a second to settle after switching.
func (s *Session) SetActiveEQPreset(preset int) error {
	req, err := protocol.BuildSetActiveEQPresetRequest(preset)
	if err != nil {
		return err
	}
	resp, err := s.roundTrip(req)
	if err != nil {
		return err
	}
	return protocol.ParseSetActiveEQPresetResponse(resp.Payload, preset)
}

// EQPresetGain returns a preset's per-band gains in dB for the given
// scope.
func (s *Session) EQPresetGain(preset int, scope protocol.Scope) ([protocol.EQBandCount]int, error) {
	var zero [protocol.EQBandCount]int
	req, err := protocol.BuildGetEQPresetGainRequest(preset)
	if err != nil {
		return zero, err
	}
	resp, err := s.roundTrip(req)
	if err != nil {
		return zero, err
	}
	gain, err := protocol.ParseGetEQPresetGainResponse(resp.Payload, preset)
	if err != nil {
		return zero, err
	}
	if scope == protocol.ScopeSaved {
		return gain.Saved, nil
	}
	return gain.Active, nil
}

// SetEQPresetGain sets a preset's per-band gains in dB.
func (s *Session) SetEQPresetGain(preset int, gains [protocol.EQBandCount]int) error {
	req, err := protocol.BuildSetEQPresetGainRequest(preset, gains)
	if err != nil {
		return err
	}
	resp, err := s.roundTrip(req)
	if err != nil {
		return err
	}
	return protocol.ParseSetEQPresetGainResponse(resp.Payload, preset)
}

// EQPresetName returns a preset's name for the given scope.
func (s *Session) EQPresetName(preset int, scope protocol.Scope) (string, error) {
	req, err := protocol.BuildGetEQPresetNameRequest(preset, scope)
	if err != nil {
		return "", err
	}
	resp, err := s.roundTrip(req)
	if err != nil {
		return "", err
	}
	return protocol.ParseGetEQPresetNameResponse(resp.Payload, preset)
}

// SetEQPresetName renames a preset. Names longer than
// protocol.EQPresetNameSize bytes are rejected.
func (s *Session) SetEQPresetName(preset int, name string) error {
	req, err := protocol.BuildSetEQPresetNameRequest(preset, name)
	if err != nil {
		return err
	}
	resp, err := s.roundTrip(req)
	if err != nil {
		return err
	}
	return protocol.ParseSetEQPresetNameResponse(resp.Payload, preset)
}

// EQPresetFreqBW returns one band's center frequency and bandwidth for
// the given scope.
func (s *Session) EQPresetFreqBW(preset, band int, scope protocol.Scope) (protocol.FreqBW, error) {
	req, err := protocol.BuildGetEQPresetFreqBWRequest(preset, band)
	if err != nil {
		return protocol.FreqBW{}, err
	}
	resp, err := s.roundTrip(req)
	if err != nil {
		return protocol.FreqBW{}, err
	}
	value, err := protocol.ParseGetEQPresetFreqBWResponse(resp.Payload, preset, band)
	if err != nil {
		return protocol.FreqBW{}, err
	}
	if scope == protocol.ScopeSaved {
		return value.Saved, nil
	}
	return value.Active, nil
}

// SetEQPresetFreqBW sets one band's center frequency and bandwidth.
// Bands 1 and 5 are shelving filters and only accept a bandwidth of 0.
func (s *Session) SetEQPresetFreqBW(preset, band, centerFreq, bandwidth int) error {
	req, err := protocol.BuildSetEQPresetFreqBWRequest(preset, band, centerFreq, bandwidth)
	if err != nil {
		return err
	}
	resp, err := s.roundTrip(req)
	if err != nil {
		return err
	}
	return protocol.ParseSetEQPresetFreqBWResponse(resp.Payload, preset, band)
}

// MicEQPreset returns the microphone EQ preset for the given scope.
func (s *Session) MicEQPreset(scope protocol.Scope) (int, error) {
	resp, err := s.roundTrip(protocol.BuildGetMicEQPresetRequest())
	if err != nil {
		return 0, err
	}
	value, err := protocol.ParseGetMicEQPresetResponse(resp.Payload)
	if err != nil {
		return 0, err
	}
	if scope == protocol.ScopeSaved {
		return value.Saved, nil
	}
	return value.Active, nil
}

// SetMicEQPreset selects the microphone EQ preset.
func (s *Session) SetMicEQPreset(preset int) error {
	req, err := protocol.BuildSetMicEQPresetRequest(preset)
	if err != nil {
		return err
	}
	resp, err := s.roundTrip(req)
	if err != nil {
		return err
	}
	return protocol.ParseSetMicEQPresetResponse(resp.Payload, preset)
}

// Balance returns the current game/chat balance (0 = all game audio,
// 255 = all chat audio). This tracks headset button adjustments made on
// top of the default balance.
func (s *Session) Balance() (int, error) {
	resp, err := s.roundTrip(protocol.BuildGetBalanceRequest())
	if err != nil {
		return 0, err
	}
	return protocol.ParseGetBalanceResponse(resp.Payload)
}

// DefaultBalance returns the default game/chat balance for the given
// scope.
func (s *Session) DefaultBalance(scope protocol.Scope) (int, error) {
	resp, err := s.roundTrip(protocol.BuildGetDefaultBalanceRequest(scope))
	if err != nil {
		return 0, err
	}
	return protocol.ParseGetDefaultBalanceResponse(resp.Payload)
}

// SetDefaultBalance sets the default game/chat balance. The balance
// takes about 50 ms to settle.
func (s *Session) SetDefaultBalance(balance int) error {
	req, err := protocol.BuildSetDefaultBalanceRequest(balance)
	if err != nil {
		return err
	}
	resp, err := s.roundTrip(req)
	if err != nil {
		return err
	}
	return protocol.ParseSetDefaultBalanceResponse(resp.Payload)
}

// AutoShutoffTimeout returns the auto-shutoff timeout in minutes.
func (s *Session) AutoShutoffTimeout() (int, error) {
	resp, err := s.roundTrip(protocol.BuildGetAutoShutoffTimeoutRequest())
	if err != nil {
		return 0, err
	}
	return protocol.ParseGetAutoShutoffTimeoutResponse(resp.Payload)
}

// SetAutoShutoffTimeout sets the auto-shutoff timeout in minutes. The
// device acknowledges the request but the setting has no observable
// effect on this hardware revision.
func (s *Session) SetAutoShutoffTimeout(minutes int) error {
	req, err := protocol.BuildSetAutoShutoffTimeoutRequest(minutes)
	if err != nil {
		return err
	}
	resp, err := s.roundTrip(req)
	if err != nil {
		return err
	}
	return protocol.ParseSetAutoShutoffTimeoutResponse(resp.Payload)
}

// Brightness returns the base station brightness level.
func (s *Session) Brightness() (int, error) {
	resp, err := s.roundTrip(protocol.BuildGetBrightnessRequest())
	if err != nil {
		return 0, err
	}
	return protocol.ParseGetBrightnessResponse(resp.Payload)
}

// SetBrightness sets the base station brightness level. The device
// acknowledges the request but the setting has no observable effect on
// this hardware revision.
func (s *Session) SetBrightness(level int) error {
	req, err := protocol.BuildSetBrightnessRequest(level)
	if err != nil {
		return err
	}
	resp, err := s.roundTrip(req)
	if err != nil {
		return err
	}
	return protocol.ParseSetBrightnessResponse(resp.Payload)
}

// AlertVolume returns the alert volume in percent for the given scope.
func (s *Session) AlertVolume(scope protocol.Scope) (int, error) {
	resp, err := s.roundTrip(protocol.BuildGetAlertVolumeRequest(scope))
	if err != nil {
		return 0, err
	}
	return protocol.ParseGetAlertVolumeResponse(resp.Payload)
}

// SetAlertVolume sets the alert volume in percent.
func (s *Session) SetAlertVolume(percent int) error {
	req, err := protocol.BuildSetAlertVolumeRequest(percent)
	if err != nil {
		return err
	}
	resp, err := s.roundTrip(req)
	if err != nil {
		return err
	}
	return protocol.ParseSetAlertVolumeResponse(resp.Payload)
}

// SaveValues copies the full active configuration to the saved bank.
// The copy happens atomically on the device side.
func (s *Session) SaveValues() error {
	resp, err := s.roundTrip(protocol.BuildSaveValuesRequest())
	if err != nil {
		return err
	}
	return protocol.ParseSaveValuesResponse(resp.Payload)
}

// BatteryStatus returns the headset battery charge and charging state.
func (s *Session) BatteryStatus() (protocol.BatteryStatus, error) {
	resp, err := s.roundTrip(protocol.BuildGetBatteryStatusRequest())
	if err != nil {
		return protocol.BatteryStatus{}, err
	}
	return protocol.ParseGetBatteryStatusResponse(resp.Payload)
}

// HeadsetStatus returns the headset power and dock state.
func (s *Session) HeadsetStatus() (protocol.HeadsetStatus, error) {
	resp, err := s.roundTrip(protocol.BuildGetHeadsetStatusRequest())
	if err != nil {
		return protocol.HeadsetStatus{}, err
	}
	return protocol.ParseGetHeadsetStatusResponse(resp.Payload)
}

// Raw sends an arbitrary opcode and payload and returns the parsed
// response without interpreting its payload. Intended for probing the
// opcodes reverse engineering has not identified; a device-reported
// error still comes back as a *protocol.DeviceError with the response.
func (s *Session) Raw(opcode protocol.Opcode, payload []byte) (protocol.Response, error) {
	return s.roundTrip(protocol.Request{Opcode: opcode, Payload: payload})
}

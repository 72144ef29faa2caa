package protocol

import "fmt"

// Opcode identifies a request type. Opcodes outside the documented set
// are representable but have no typed encode/decode pair.
type Opcode byte

func (o Opcode) String() string {
	switch o {
	case OpGetHeadsetStatus:
		return "GetHeadsetStatus"
	case OpSaveValues:
		return "SaveValues"
	case OpSetSliderValue:
		return "SetSliderValue"
	case OpSetEQPresetGain:
		return "SetEQPresetGain"
	case OpSetNoiseGateMode:
		return "SetNoiseGateMode"
	case OpSetActiveEQPreset:
		return "SetActiveEQPreset"
	case OpGetSliderValue:
		return "GetSliderValue"
	case OpGetEQPresetGain:
		return "GetEQPresetGain"
	case OpGetNoiseGateMode:
		return "GetNoiseGateMode"
	case OpGetActiveEQPreset:
		return "GetActiveEQPreset"
	case OpSetEQPresetName:
		return "SetEQPresetName"
	case OpGetEQPresetName:
		return "GetEQPresetName"
	case OpSetEQPresetFreqBW:
		return "SetEQPresetFreqBW"
	case OpGetEQPresetFreqBW:
		return "GetEQPresetFreqBW"
	case OpSetMicEQPreset:
		return "SetMicEQPreset"
	case OpGetBalance:
		return "GetBalance"
	case OpSetDefaultBalance:
		return "SetDefaultBalance"
	case OpSetAutoShutoffTimeout:
		return "SetAutoShutoffTimeout"
	case OpSetBrightness:
		return "SetBrightness"
	case OpSetAlertVolume:
		return "SetAlertVolume"
	case OpGetDefaultBalance:
		return "GetDefaultBalance"
	case OpGetAutoShutoffTimeout:
		return "GetAutoShutoffTimeout"
	case OpGetBrightness:
		return "GetBrightness"
	case OpGetAlertVolume:
		return "GetAlertVolume"
	case OpGetMicEQPreset:
		return "GetMicEQPreset"
	case OpGetBatteryStatus:
		return "GetBatteryStatus"
	default:
		return fmt.Sprintf("Opcode(0x%02X)", byte(o))
	}
}

// Status is the second byte of a response frame.
type Status byte

// Response status values.
const (
	// StatusNoResponse indicates the device has nothing to report;
	// the frame carries no length byte and no payload
	StatusNoResponse Status = 0x00

	// StatusError indicates the device rejected or failed the request;
	// the payload describes the condition
	StatusError Status = 0x01

	// StatusSuccess indicates the request was executed
	StatusSuccess Status = 0x02
)

func (s Status) String() string {
	switch s {
	case StatusNoResponse:
		return "no-response"
	case StatusError:
		return "error"
	case StatusSuccess:
		return "success"
	default:
		return fmt.Sprintf("Status(0x%02X)", byte(s))
	}
}

// Scope selects between the live configuration and the device-side
// snapshot written by the save command.
type Scope int

const (
	// ScopeActive targets the live, currently-effective configuration
	ScopeActive Scope = iota

	// ScopeSaved targets the last-saved snapshot
	ScopeSaved
)

func (s Scope) String() string {
	if s == ScopeSaved {
		return "saved"
	}
	return "active"
}

// wireByte renders the scope as the selector byte some getters carry.
func (s Scope) wireByte() byte {
	if s == ScopeSaved {
		return 1
	}
	return 0
}

// SliderType identifies a continuous percentage parameter.
type SliderType byte

// Slider types.
const (
	SliderStreamMixMic  SliderType = 0x00
	SliderStreamMixChat SliderType = 0x01
	SliderStreamMixGame SliderType = 0x02
	SliderStreamMixAux  SliderType = 0x03
	SliderMic           SliderType = 0x04
	SliderSideTone      SliderType = 0x05
)

func (t SliderType) String() string {
	switch t {
	case SliderStreamMixMic:
		return "stream-mix-mic"
	case SliderStreamMixChat:
		return "stream-mix-chat"
	case SliderStreamMixGame:
		return "stream-mix-game"
	case SliderStreamMixAux:
		return "stream-mix-aux"
	case SliderMic:
		return "mic"
	case SliderSideTone:
		return "side-tone"
	default:
		return fmt.Sprintf("SliderType(0x%02X)", byte(t))
	}
}

func (t SliderType) valid() bool { return t <= SliderSideTone }

// NoiseGateMode controls microphone squelch behavior.
type NoiseGateMode byte

// Noise gate modes.
const (
	NoiseGateStreaming  NoiseGateMode = 0x00
	NoiseGateNight      NoiseGateMode = 0x01
	NoiseGateHome       NoiseGateMode = 0x02
	NoiseGateTournament NoiseGateMode = 0x03
)

func (m NoiseGateMode) String() string {
	switch m {
	case NoiseGateStreaming:
		return "streaming"
	case NoiseGateNight:
		return "night"
	case NoiseGateHome:
		return "home"
	case NoiseGateTournament:
		return "tournament"
	default:
		return fmt.Sprintf("NoiseGateMode(0x%02X)", byte(m))
	}
}

func (m NoiseGateMode) valid() bool { return m <= NoiseGateTournament }

// SliderValue holds both banks of a slider as returned by the device.
type SliderValue struct {
	// Active is the live value in percent
	Active int

	// Saved is the last-saved value in percent
	Saved int
}

// NoiseGateValue holds both banks of the noise gate mode.
type NoiseGateValue struct {
	Active NoiseGateMode
	Saved  NoiseGateMode
}

// MicEQValue holds both banks of the microphone EQ preset.
type MicEQValue struct {
	Active int
	Saved  int
}

// EQGain holds both banks of an EQ preset's per-band gains in dB.
type EQGain struct {
	Active [EQBandCount]int
	Saved  [EQBandCount]int
}

// FreqBW is one EQ band's center frequency and bandwidth.
type FreqBW struct {
	// CenterFreq is the band center frequency in Hz
	CenterFreq int

	// Bandwidth is the filter bandwidth; 0 for the shelving bands
	Bandwidth int
}

// EQFreqBW holds both banks of one band's frequency and bandwidth.
type EQFreqBW struct {
	Active FreqBW
	Saved  FreqBW
}

// BatteryStatus is the headset battery state.
type BatteryStatus struct {
	// ChargePercent is the battery charge (0-100)
	ChargePercent int

	// Charging reports whether the headset is currently charging
	Charging bool
}

// HeadsetStatus is the headset power and dock state.
type HeadsetStatus struct {
	// PoweredOn reports whether the headset is switched on
	PoweredOn bool

	// Docked reports whether the headset is seated on the base station
	Docked bool
}

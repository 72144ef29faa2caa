package protocol

// Frame structure constants.
const (
	// FrameMarker is the first byte of every request and response (0x02)
	FrameMarker = 0x02

	// MaxPayloadSize is the largest payload a single length byte can describe
	MaxPayloadSize = 255

	// MaxFrameSize is the USB packet size of the base station; no request
	// or response frame exceeds it
	MaxFrameSize = 64
)

// Request opcodes, as observed on the A50 gen 4 base station.
const (
	// OpGetHeadsetStatus queries headset power and dock state
	OpGetHeadsetStatus Opcode = 0x54

	// OpSaveValues copies the full active configuration to the saved bank
	OpSaveValues Opcode = 0x61

	// OpSetSliderValue sets a slider (mic level, side tone, stream mix)
	OpSetSliderValue Opcode = 0x62

	// OpSetEQPresetGain sets the per-band gains of an EQ preset
	OpSetEQPresetGain Opcode = 0x63

	// OpSetNoiseGateMode sets the microphone noise gate mode
	OpSetNoiseGateMode Opcode = 0x64

	// OpSetActiveEQPreset selects the active EQ preset
	OpSetActiveEQPreset Opcode = 0x67

	// OpGetSliderValue queries a slider's active and saved values
	OpGetSliderValue Opcode = 0x68

	// OpGetEQPresetGain queries the active and saved per-band gains
	OpGetEQPresetGain Opcode = 0x69

	// OpGetNoiseGateMode queries the active and saved noise gate mode
	OpGetNoiseGateMode Opcode = 0x6A

	// OpGetActiveEQPreset queries the active EQ preset
	OpGetActiveEQPreset Opcode = 0x6C

	// OpSetEQPresetName renames an EQ preset
	OpSetEQPresetName Opcode = 0x6D

	// OpGetEQPresetName queries an EQ preset name
	OpGetEQPresetName Opcode = 0x6E

	// OpSetEQPresetFreqBW sets one band's center frequency and bandwidth
	OpSetEQPresetFreqBW Opcode = 0x6F

	// OpGetEQPresetFreqBW queries one band's active and saved
	// center frequency and bandwidth
	OpGetEQPresetFreqBW Opcode = 0x70

	// OpSetMicEQPreset selects the microphone EQ preset
	OpSetMicEQPreset Opcode = 0x71

	// OpGetBalance queries the current game/chat balance
	OpGetBalance Opcode = 0x72

	// OpSetDefaultBalance sets the default game/chat balance
	OpSetDefaultBalance Opcode = 0x73

	// OpSetAutoShutoffTimeout sets the auto-shutoff timeout
	// (accepted but has no effect on this hardware revision)
	OpSetAutoShutoffTimeout Opcode = 0x74

	// OpSetBrightness sets the base station brightness
	// (accepted but has no effect on this hardware revision)
	OpSetBrightness Opcode = 0x75

	// OpSetAlertVolume sets the alert volume
	OpSetAlertVolume Opcode = 0x76

	// OpGetDefaultBalance queries the default game/chat balance
	OpGetDefaultBalance Opcode = 0x77

	// OpGetAutoShutoffTimeout queries the auto-shutoff timeout
	OpGetAutoShutoffTimeout Opcode = 0x78

	// OpGetBrightness queries the base station brightness
	OpGetBrightness Opcode = 0x79

	// OpGetAlertVolume queries the alert volume
	OpGetAlertVolume Opcode = 0x7A

	// OpGetMicEQPreset queries the active and saved microphone EQ preset
	OpGetMicEQPreset Opcode = 0x7B

	// OpGetBatteryStatus queries headset battery charge and charging state
	OpGetBatteryStatus Opcode = 0x7C
)

// Parameter limits.
const (
	// EQPresetCount is the number of EQ presets (numbered 1..EQPresetCount)
	EQPresetCount = 3

	// MicEQPresetCount is the number of microphone EQ presets
	MicEQPresetCount = 2

	// EQBandCount is the number of bands per EQ preset
	EQBandCount = 5

	// EQPresetNameSize is the fixed on-wire size of an EQ preset name
	EQPresetNameSize = 32

	// MinEQGain and MaxEQGain bound the per-band gain in dB
	MinEQGain = -10
	MaxEQGain = 10

	// MinEQCenterFreq and MaxEQCenterFreq bound a band's center
	// frequency in Hz
	MinEQCenterFreq = 20
	MaxEQCenterFreq = 20000

	// MaxEQBandwidth bounds a band's bandwidth. Bands 1 and 5 are
	// shelving filters and only accept 0.
	MaxEQBandwidth = 32767

	// MaxBalance is the upper bound of the game/chat balance
	// (0 = 100% game audio, MaxBalance = 100% chat audio)
	MaxBalance = 255

	// MaxPercent is the upper bound of percentage parameters
	MaxPercent = 100
)

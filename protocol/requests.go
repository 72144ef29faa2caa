package protocol

// Build functions construct validated requests, one per documented
// opcode. Each validates its inputs and returns a *ValueError before
// any bytes are produced; nothing is clamped.

// BuildSaveValuesRequest constructs a Save Values request.
// The device atomically copies the full active configuration to the
// saved bank. The request carries no payload.
func BuildSaveValuesRequest() Request {
	return Request{Opcode: OpSaveValues}
}

// BuildSetSliderValueRequest constructs a Set Slider Value request.
//
// Payload: [SLIDER][PERCENT]
func BuildSetSliderValueRequest(slider SliderType, percent int) (Request, error) {
	if !slider.valid() {
		return Request{}, &ValueError{Param: "slider type", Value: int(slider), Min: 0, Max: int(SliderSideTone)}
	}
	if percent < 0 || percent > MaxPercent {
		return Request{}, &ValueError{Param: "slider value", Value: percent, Min: 0, Max: MaxPercent}
	}
	return Request{Opcode: OpSetSliderValue, Payload: []byte{byte(slider), byte(percent)}}, nil
}

// BuildGetSliderValueRequest constructs a Get Slider Value request.
// The response carries both the active and saved value.
//
// Payload: [SLIDER]
func BuildGetSliderValueRequest(slider SliderType) (Request, error) {
	if !slider.valid() {
		return Request{}, &ValueError{Param: "slider type", Value: int(slider), Min: 0, Max: int(SliderSideTone)}
	}
	return Request{Opcode: OpGetSliderValue, Payload: []byte{byte(slider)}}, nil
}

// BuildSetNoiseGateModeRequest constructs a Set Noise Gate Mode request.
//
// Payload: [MODE]
func BuildSetNoiseGateModeRequest(mode NoiseGateMode) (Request, error) {
	if !mode.valid() {
		return Request{}, &ValueError{Param: "noise gate mode", Value: int(mode), Min: 0, Max: int(NoiseGateTournament)}
	}
	return Request{Opcode: OpSetNoiseGateMode, Payload: []byte{byte(mode)}}, nil
}

// BuildGetNoiseGateModeRequest constructs a Get Noise Gate Mode request.
// The response carries both the active and saved mode.
func BuildGetNoiseGateModeRequest() Request {
	return Request{Opcode: OpGetNoiseGateMode}
}

// BuildSetActiveEQPresetRequest constructs a Set Active EQ Preset request.
//
// Payload: [PRESET]
func BuildSetActiveEQPresetRequest(preset int) (Request, error) {
	if err := validEQPreset(preset); err != nil {
		return Request{}, err
	}
	return Request{Opcode: OpSetActiveEQPreset, Payload: []byte{byte(preset)}}, nil
}

// BuildGetActiveEQPresetRequest constructs a Get Active EQ Preset request.
func BuildGetActiveEQPresetRequest() Request {
	return Request{Opcode: OpGetActiveEQPreset}
}

// BuildSetEQPresetGainRequest constructs a Set EQ Preset Gain request.
// Gains are in dB, one per band, encoded as signed bytes.
//
// Payload: [PRESET][GAIN_1]..[GAIN_5]
func BuildSetEQPresetGainRequest(preset int, gains [EQBandCount]int) (Request, error) {
	if err := validEQPreset(preset); err != nil {
		return Request{}, err
	}

	payload := make([]byte, 0, 1+EQBandCount)
	payload = append(payload, byte(preset))
	for _, g := range gains {
		if g < MinEQGain || g > MaxEQGain {
			return Request{}, &ValueError{Param: "EQ gain", Value: g, Min: MinEQGain, Max: MaxEQGain}
		}
		payload = append(payload, byte(int8(g)))
	}

	return Request{Opcode: OpSetEQPresetGain, Payload: payload}, nil
}

// BuildGetEQPresetGainRequest constructs a Get EQ Preset Gain request.
// The response carries both banks of all five gains.
//
// Payload: [PRESET]
func BuildGetEQPresetGainRequest(preset int) (Request, error) {
	if err := validEQPreset(preset); err != nil {
		return Request{}, err
	}
	return Request{Opcode: OpGetEQPresetGain, Payload: []byte{byte(preset)}}, nil
}

// BuildSetEQPresetNameRequest constructs a Set EQ Preset Name request.
// The name is NUL-padded to its fixed on-wire size; names longer than
// EQPresetNameSize bytes are rejected, not truncated.
//
// Payload: [PRESET][NAME(32)]
func BuildSetEQPresetNameRequest(preset int, name string) (Request, error) {
	if err := validEQPreset(preset); err != nil {
		return Request{}, err
	}
	if len(name) > EQPresetNameSize {
		return Request{}, &ValueError{Param: "EQ preset name length", Value: len(name), Min: 0, Max: EQPresetNameSize}
	}

	payload := make([]byte, 1+EQPresetNameSize)
	payload[0] = byte(preset)
	copy(payload[1:], name)

	return Request{Opcode: OpSetEQPresetName, Payload: payload}, nil
}

// BuildGetEQPresetNameRequest constructs a Get EQ Preset Name request.
//
// Payload: [SCOPE][PRESET]
func BuildGetEQPresetNameRequest(preset int, scope Scope) (Request, error) {
	if err := validEQPreset(preset); err != nil {
		return Request{}, err
	}
	return Request{Opcode: OpGetEQPresetName, Payload: []byte{scope.wireByte(), byte(preset)}}, nil
}

// BuildSetEQPresetFreqBWRequest constructs a Set EQ Preset Frequency and
// Bandwidth request for one band. Bands 1 and 5 are shelving filters and
// only accept a bandwidth of 0.
//
// Payload: [PRESET][BAND][FREQ_L][FREQ_H][BW_L][BW_H]
func BuildSetEQPresetFreqBWRequest(preset, band, centerFreq, bandwidth int) (Request, error) {
	if err := validEQPreset(preset); err != nil {
		return Request{}, err
	}
	if err := validEQBand(band); err != nil {
		return Request{}, err
	}
	if centerFreq < MinEQCenterFreq || centerFreq > MaxEQCenterFreq {
		return Request{}, &ValueError{Param: "EQ center frequency", Value: centerFreq, Min: MinEQCenterFreq, Max: MaxEQCenterFreq}
	}
	maxBW := MaxEQBandwidth
	if band == 1 || band == EQBandCount {
		maxBW = 0
	}
	if bandwidth < 0 || bandwidth > maxBW {
		return Request{}, &ValueError{Param: "EQ bandwidth", Value: bandwidth, Min: 0, Max: maxBW}
	}

	payload := []byte{
		byte(preset),
		byte(band),
		byte(centerFreq), byte(centerFreq >> 8),
		byte(bandwidth), byte(bandwidth >> 8),
	}

	return Request{Opcode: OpSetEQPresetFreqBW, Payload: payload}, nil
}

// BuildGetEQPresetFreqBWRequest constructs a Get EQ Preset Frequency and
// Bandwidth request for one band. The response carries both banks.
//
// Payload: [PRESET][BAND]
func BuildGetEQPresetFreqBWRequest(preset, band int) (Request, error) {
	if err := validEQPreset(preset); err != nil {
		return Request{}, err
	}
	if err := validEQBand(band); err != nil {
		return Request{}, err
	}
	return Request{Opcode: OpGetEQPresetFreqBW, Payload: []byte{byte(preset), byte(band)}}, nil
}

// BuildSetMicEQPresetRequest constructs a Set Mic EQ Preset request.
//
// Payload: [PRESET]
func BuildSetMicEQPresetRequest(preset int) (Request, error) {
	if preset < 1 || preset > MicEQPresetCount {
		return Request{}, &ValueError{Param: "mic EQ preset", Value: preset, Min: 1, Max: MicEQPresetCount}
	}
	return Request{Opcode: OpSetMicEQPreset, Payload: []byte{byte(preset)}}, nil
}

// BuildGetMicEQPresetRequest constructs a Get Mic EQ Preset request.
// The response carries both the active and saved preset.
func BuildGetMicEQPresetRequest() Request {
	return Request{Opcode: OpGetMicEQPreset}
}

// BuildGetBalanceRequest constructs a Get Balance request. The balance
// reflects headset button adjustments on top of the default balance.
func BuildGetBalanceRequest() Request {
	return Request{Opcode: OpGetBalance}
}

// BuildSetDefaultBalanceRequest constructs a Set Default Balance request.
//
// Payload: [BALANCE]
func BuildSetDefaultBalanceRequest(balance int) (Request, error) {
	if balance < 0 || balance > MaxBalance {
		return Request{}, &ValueError{Param: "balance", Value: balance, Min: 0, Max: MaxBalance}
	}
	return Request{Opcode: OpSetDefaultBalance, Payload: []byte{byte(balance)}}, nil
}

// BuildGetDefaultBalanceRequest constructs a Get Default Balance request.
//
// Payload: [SCOPE]
func BuildGetDefaultBalanceRequest(scope Scope) Request {
	return Request{Opcode: OpGetDefaultBalance, Payload: []byte{scope.wireByte()}}
}

// BuildSetAutoShutoffTimeoutRequest constructs a Set Auto-Shutoff
// Timeout request. The device acknowledges it but the setting has no
// observable effect on this hardware revision.
//
// Payload: [MINUTES]
func BuildSetAutoShutoffTimeoutRequest(minutes int) (Request, error) {
	if minutes < 0 || minutes > 255 {
		return Request{}, &ValueError{Param: "auto-shutoff timeout", Value: minutes, Min: 0, Max: 255}
	}
	return Request{Opcode: OpSetAutoShutoffTimeout, Payload: []byte{byte(minutes)}}, nil
}

// BuildGetAutoShutoffTimeoutRequest constructs a Get Auto-Shutoff
// Timeout request.
func BuildGetAutoShutoffTimeoutRequest() Request {
	return Request{Opcode: OpGetAutoShutoffTimeout}
}

// BuildSetBrightnessRequest constructs a Set Brightness request. The
// device acknowledges it but the setting has no observable effect on
// this hardware revision.
//
// Payload: [LEVEL]
func BuildSetBrightnessRequest(level int) (Request, error) {
	if level < 0 || level > 255 {
		return Request{}, &ValueError{Param: "brightness", Value: level, Min: 0, Max: 255}
	}
	return Request{Opcode: OpSetBrightness, Payload: []byte{byte(level)}}, nil
}

// BuildGetBrightnessRequest constructs a Get Brightness request.
func BuildGetBrightnessRequest() Request {
	return Request{Opcode: OpGetBrightness}
}

// BuildSetAlertVolumeRequest constructs a Set Alert Volume request.
//
// Payload: [PERCENT]
func BuildSetAlertVolumeRequest(percent int) (Request, error) {
	if percent < 0 || percent > MaxPercent {
		return Request{}, &ValueError{Param: "alert volume", Value: percent, Min: 0, Max: MaxPercent}
	}
	return Request{Opcode: OpSetAlertVolume, Payload: []byte{byte(percent)}}, nil
}

// BuildGetAlertVolumeRequest constructs a Get Alert Volume request.
//
// Payload: [SCOPE]
func BuildGetAlertVolumeRequest(scope Scope) Request {
	return Request{Opcode: OpGetAlertVolume, Payload: []byte{scope.wireByte()}}
}

// BuildGetBatteryStatusRequest constructs a Get Battery Status request.
func BuildGetBatteryStatusRequest() Request {
	return Request{Opcode: OpGetBatteryStatus}
}

// BuildGetHeadsetStatusRequest constructs a Get Headset Status request.
func BuildGetHeadsetStatusRequest() Request {
	return Request{Opcode: OpGetHeadsetStatus}
}

func validEQPreset(preset int) error {
	if preset < 1 || preset > EQPresetCount {
		return &ValueError{Param: "EQ preset", Value: preset, Min: 1, Max: EQPresetCount}
	}
	return nil
}

func validEQBand(band int) error {
	if band < 1 || band > EQBandCount {
		return &ValueError{Param: "EQ band", Value: band, Min: 1, Max: EQBandCount}
	}
	return nil
}

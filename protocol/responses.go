package protocol

// Parse functions decode success payloads, one per documented opcode.
// Each validates the payload length against the opcode's fixed shape
// and checks any bytes the device echoes back from the request;
// mismatches return a *DecodeError.

// ParseSaveValuesResponse validates the Save Values acknowledgment.
//
// Payload: [0x61][0x00]
func ParseSaveValuesResponse(data []byte) error {
	if len(data) != 2 {
		return decodeErrorf(OpSaveValues, "got %d bytes, expected 2", len(data))
	}
	if Opcode(data[0]) != OpSaveValues || data[1] != 0x00 {
		return decodeErrorf(OpSaveValues, "unexpected acknowledgment % X", data)
	}
	return nil
}

// ParseSetSliderValueResponse validates the Set Slider Value
// acknowledgment against the slider that was set.
//
// Payload: [0x62][SLIDER]
func ParseSetSliderValueResponse(data []byte, slider SliderType) error {
	if len(data) != 2 {
		return decodeErrorf(OpSetSliderValue, "got %d bytes, expected 2", len(data))
	}
	if Opcode(data[0]) != OpSetSliderValue {
		return decodeErrorf(OpSetSliderValue, "echoed opcode 0x%02X, expected 0x%02X", data[0], byte(OpSetSliderValue))
	}
	if SliderType(data[1]) != slider {
		return decodeErrorf(OpSetSliderValue, "echoed slider 0x%02X, expected 0x%02X", data[1], byte(slider))
	}
	return nil
}

// ParseGetSliderValueResponse decodes a Get Slider Value payload.
//
// Payload: [0x68][SLIDER][ACTIVE][SAVED]
func ParseGetSliderValueResponse(data []byte, slider SliderType) (SliderValue, error) {
	if len(data) != 4 {
		return SliderValue{}, decodeErrorf(OpGetSliderValue, "got %d bytes, expected 4", len(data))
	}
	if Opcode(data[0]) != OpGetSliderValue {
		return SliderValue{}, decodeErrorf(OpGetSliderValue, "echoed opcode 0x%02X, expected 0x%02X", data[0], byte(OpGetSliderValue))
	}
	if SliderType(data[1]) != slider {
		return SliderValue{}, decodeErrorf(OpGetSliderValue, "echoed slider 0x%02X, expected 0x%02X", data[1], byte(slider))
	}

	value := SliderValue{Active: int(data[2]), Saved: int(data[3])}
	if value.Active > MaxPercent || value.Saved > MaxPercent {
		return SliderValue{}, decodeErrorf(OpGetSliderValue, "slider value out of range: active=%d saved=%d", value.Active, value.Saved)
	}

	return value, nil
}

// ParseSetNoiseGateModeResponse validates the Set Noise Gate Mode
// acknowledgment, which echoes the mode rather than the opcode.
//
// Payload: [MODE]
func ParseSetNoiseGateModeResponse(data []byte, mode NoiseGateMode) error {
	if len(data) != 1 {
		return decodeErrorf(OpSetNoiseGateMode, "got %d bytes, expected 1", len(data))
	}
	if NoiseGateMode(data[0]) != mode {
		return decodeErrorf(OpSetNoiseGateMode, "echoed mode 0x%02X, expected 0x%02X", data[0], byte(mode))
	}
	return nil
}

// ParseGetNoiseGateModeResponse decodes a Get Noise Gate Mode payload.
//
// Payload: [0x6A][ACTIVE][SAVED]
func ParseGetNoiseGateModeResponse(data []byte) (NoiseGateValue, error) {
	if len(data) != 3 {
		return NoiseGateValue{}, decodeErrorf(OpGetNoiseGateMode, "got %d bytes, expected 3", len(data))
	}
	if Opcode(data[0]) != OpGetNoiseGateMode {
		return NoiseGateValue{}, decodeErrorf(OpGetNoiseGateMode, "echoed opcode 0x%02X, expected 0x%02X", data[0], byte(OpGetNoiseGateMode))
	}

	value := NoiseGateValue{Active: NoiseGateMode(data[1]), Saved: NoiseGateMode(data[2])}
	if !value.Active.valid() {
		return NoiseGateValue{}, decodeErrorf(OpGetNoiseGateMode, "unrecognized active mode 0x%02X", data[1])
	}
	if !value.Saved.valid() {
		return NoiseGateValue{}, decodeErrorf(OpGetNoiseGateMode, "unrecognized saved mode 0x%02X", data[2])
	}

	return value, nil
}

// ParseSetActiveEQPresetResponse validates the Set Active EQ Preset
// acknowledgment.
//
// Payload: [0x67][PRESET]
func ParseSetActiveEQPresetResponse(data []byte, preset int) error {
	if len(data) != 2 {
		return decodeErrorf(OpSetActiveEQPreset, "got %d bytes, expected 2", len(data))
	}
	if Opcode(data[0]) != OpSetActiveEQPreset {
		return decodeErrorf(OpSetActiveEQPreset, "echoed opcode 0x%02X, expected 0x%02X", data[0], byte(OpSetActiveEQPreset))
	}
	if int(data[1]) != preset {
		return decodeErrorf(OpSetActiveEQPreset, "echoed preset %d, expected %d", data[1], preset)
	}
	return nil
}

// ParseGetActiveEQPresetResponse decodes a Get Active EQ Preset payload.
//
// Payload: [PRESET]
func ParseGetActiveEQPresetResponse(data []byte) (int, error) {
	if len(data) != 1 {
		return 0, decodeErrorf(OpGetActiveEQPreset, "got %d bytes, expected 1", len(data))
	}
	preset := int(data[0])
	if preset < 1 || preset > EQPresetCount {
		return 0, decodeErrorf(OpGetActiveEQPreset, "unrecognized preset %d", preset)
	}
	return preset, nil
}

// ParseSetEQPresetGainResponse validates the Set EQ Preset Gain
// acknowledgment.
//
// Payload: [0x63][PRESET]
func ParseSetEQPresetGainResponse(data []byte, preset int) error {
	if len(data) != 2 {
		return decodeErrorf(OpSetEQPresetGain, "got %d bytes, expected 2", len(data))
	}
	if Opcode(data[0]) != OpSetEQPresetGain {
		return decodeErrorf(OpSetEQPresetGain, "echoed opcode 0x%02X, expected 0x%02X", data[0], byte(OpSetEQPresetGain))
	}
	if int(data[1]) != preset {
		return decodeErrorf(OpSetEQPresetGain, "echoed preset %d, expected %d", data[1], preset)
	}
	return nil
}

// ParseGetEQPresetGainResponse decodes a Get EQ Preset Gain payload.
// Gains are signed bytes in dB.
//
// Payload: [0x69][PRESET][ACTIVE_1..5][SAVED_1..5]
func ParseGetEQPresetGainResponse(data []byte, preset int) (EQGain, error) {
	want := 2 + 2*EQBandCount
	if len(data) != want {
		return EQGain{}, decodeErrorf(OpGetEQPresetGain, "got %d bytes, expected %d", len(data), want)
	}
	if Opcode(data[0]) != OpGetEQPresetGain {
		return EQGain{}, decodeErrorf(OpGetEQPresetGain, "echoed opcode 0x%02X, expected 0x%02X", data[0], byte(OpGetEQPresetGain))
	}
	if int(data[1]) != preset {
		return EQGain{}, decodeErrorf(OpGetEQPresetGain, "echoed preset %d, expected %d", data[1], preset)
	}

	var gain EQGain
	for i := 0; i < EQBandCount; i++ {
		gain.Active[i] = int(int8(data[2+i]))
		gain.Saved[i] = int(int8(data[2+EQBandCount+i]))
	}

	return gain, nil
}

// ParseSetEQPresetNameResponse validates the Set EQ Preset Name
// acknowledgment.
//
// Payload: [0x6D][PRESET]
func ParseSetEQPresetNameResponse(data []byte, preset int) error {
	if len(data) != 2 {
		return decodeErrorf(OpSetEQPresetName, "got %d bytes, expected 2", len(data))
	}
	if Opcode(data[0]) != OpSetEQPresetName {
		return decodeErrorf(OpSetEQPresetName, "echoed opcode 0x%02X, expected 0x%02X", data[0], byte(OpSetEQPresetName))
	}
	if int(data[1]) != preset {
		return decodeErrorf(OpSetEQPresetName, "echoed preset %d, expected %d", data[1], preset)
	}
	return nil
}

// ParseGetEQPresetNameResponse decodes a Get EQ Preset Name payload.
// The name is NUL-terminated within its fixed-size field; trailing
// padding is trimmed.
//
// Payload: [0x6E][PRESET][NAME...]
func ParseGetEQPresetNameResponse(data []byte, preset int) (string, error) {
	if len(data) < 3 {
		return "", decodeErrorf(OpGetEQPresetName, "got %d bytes, expected at least 3", len(data))
	}
	if Opcode(data[0]) != OpGetEQPresetName {
		return "", decodeErrorf(OpGetEQPresetName, "echoed opcode 0x%02X, expected 0x%02X", data[0], byte(OpGetEQPresetName))
	}
	if int(data[1]) != preset {
		return "", decodeErrorf(OpGetEQPresetName, "echoed preset %d, expected %d", data[1], preset)
	}

	name := data[2:]
	for i, c := range name {
		if c == 0 {
			name = name[:i]
			break
		}
	}

	return string(name), nil
}

// ParseSetEQPresetFreqBWResponse validates the Set EQ Preset Frequency
// and Bandwidth acknowledgment.
//
// Payload: [0x6F][PRESET][BAND]
func ParseSetEQPresetFreqBWResponse(data []byte, preset, band int) error {
	if len(data) != 3 {
		return decodeErrorf(OpSetEQPresetFreqBW, "got %d bytes, expected 3", len(data))
	}
	if Opcode(data[0]) != OpSetEQPresetFreqBW {
		return decodeErrorf(OpSetEQPresetFreqBW, "echoed opcode 0x%02X, expected 0x%02X", data[0], byte(OpSetEQPresetFreqBW))
	}
	if int(data[1]) != preset || int(data[2]) != band {
		return decodeErrorf(OpSetEQPresetFreqBW, "echoed preset/band %d/%d, expected %d/%d", data[1], data[2], preset, band)
	}
	return nil
}

// ParseGetEQPresetFreqBWResponse decodes a Get EQ Preset Frequency and
// Bandwidth payload. Multi-byte fields are little-endian.
//
// Payload: [0x70][PRESET][BAND][A_FREQ(2)][A_BW(2)][S_FREQ(2)][S_BW(2)]
func ParseGetEQPresetFreqBWResponse(data []byte, preset, band int) (EQFreqBW, error) {
	if len(data) != 11 {
		return EQFreqBW{}, decodeErrorf(OpGetEQPresetFreqBW, "got %d bytes, expected 11", len(data))
	}
	if Opcode(data[0]) != OpGetEQPresetFreqBW {
		return EQFreqBW{}, decodeErrorf(OpGetEQPresetFreqBW, "echoed opcode 0x%02X, expected 0x%02X", data[0], byte(OpGetEQPresetFreqBW))
	}
	if int(data[1]) != preset || int(data[2]) != band {
		return EQFreqBW{}, decodeErrorf(OpGetEQPresetFreqBW, "echoed preset/band %d/%d, expected %d/%d", data[1], data[2], preset, band)
	}

	le16 := func(b []byte) int { return int(b[0]) | int(b[1])<<8 }
	return EQFreqBW{
		Active: FreqBW{CenterFreq: le16(data[3:5]), Bandwidth: le16(data[5:7])},
		Saved:  FreqBW{CenterFreq: le16(data[7:9]), Bandwidth: le16(data[9:11])},
	}, nil
}

// ParseSetMicEQPresetResponse validates the Set Mic EQ Preset
// acknowledgment, which echoes the preset.
//
// Payload: [PRESET]
func ParseSetMicEQPresetResponse(data []byte, preset int) error {
	if len(data) != 1 {
		return decodeErrorf(OpSetMicEQPreset, "got %d bytes, expected 1", len(data))
	}
	if int(data[0]) != preset {
		return decodeErrorf(OpSetMicEQPreset, "echoed preset %d, expected %d", data[0], preset)
	}
	return nil
}

// ParseGetMicEQPresetResponse decodes a Get Mic EQ Preset payload.
//
// Payload: [0x7B][ACTIVE][SAVED]
func ParseGetMicEQPresetResponse(data []byte) (MicEQValue, error) {
	if len(data) != 3 {
		return MicEQValue{}, decodeErrorf(OpGetMicEQPreset, "got %d bytes, expected 3", len(data))
	}
	if Opcode(data[0]) != OpGetMicEQPreset {
		return MicEQValue{}, decodeErrorf(OpGetMicEQPreset, "echoed opcode 0x%02X, expected 0x%02X", data[0], byte(OpGetMicEQPreset))
	}

	value := MicEQValue{Active: int(data[1]), Saved: int(data[2])}
	if value.Active < 1 || value.Active > MicEQPresetCount {
		return MicEQValue{}, decodeErrorf(OpGetMicEQPreset, "unrecognized active preset %d", value.Active)
	}
	if value.Saved < 1 || value.Saved > MicEQPresetCount {
		return MicEQValue{}, decodeErrorf(OpGetMicEQPreset, "unrecognized saved preset %d", value.Saved)
	}

	return value, nil
}

// ParseGetBalanceResponse decodes a Get Balance payload.
//
// Payload: [BALANCE]
func ParseGetBalanceResponse(data []byte) (int, error) {
	if len(data) != 1 {
		return 0, decodeErrorf(OpGetBalance, "got %d bytes, expected 1", len(data))
	}
	return int(data[0]), nil
}

// ParseSetDefaultBalanceResponse validates the Set Default Balance
// acknowledgment.
//
// Payload: [0x73]
func ParseSetDefaultBalanceResponse(data []byte) error {
	if len(data) != 1 {
		return decodeErrorf(OpSetDefaultBalance, "got %d bytes, expected 1", len(data))
	}
	if Opcode(data[0]) != OpSetDefaultBalance {
		return decodeErrorf(OpSetDefaultBalance, "echoed opcode 0x%02X, expected 0x%02X", data[0], byte(OpSetDefaultBalance))
	}
	return nil
}

// ParseGetDefaultBalanceResponse decodes a Get Default Balance payload.
//
// Payload: [BALANCE]
func ParseGetDefaultBalanceResponse(data []byte) (int, error) {
	if len(data) != 1 {
		return 0, decodeErrorf(OpGetDefaultBalance, "got %d bytes, expected 1", len(data))
	}
	return int(data[0]), nil
}

// ParseSetAutoShutoffTimeoutResponse validates the Set Auto-Shutoff
// Timeout acknowledgment.
//
// Payload: [0x74]
func ParseSetAutoShutoffTimeoutResponse(data []byte) error {
	if len(data) != 1 {
		return decodeErrorf(OpSetAutoShutoffTimeout, "got %d bytes, expected 1", len(data))
	}
	if Opcode(data[0]) != OpSetAutoShutoffTimeout {
		return decodeErrorf(OpSetAutoShutoffTimeout, "echoed opcode 0x%02X, expected 0x%02X", data[0], byte(OpSetAutoShutoffTimeout))
	}
	return nil
}

// ParseGetAutoShutoffTimeoutResponse decodes a Get Auto-Shutoff Timeout
// payload.
//
// Payload: [MINUTES]
func ParseGetAutoShutoffTimeoutResponse(data []byte) (int, error) {
	if len(data) != 1 {
		return 0, decodeErrorf(OpGetAutoShutoffTimeout, "got %d bytes, expected 1", len(data))
	}
	return int(data[0]), nil
}

// ParseSetBrightnessResponse validates the Set Brightness acknowledgment.
//
// Payload: [0x75]
func ParseSetBrightnessResponse(data []byte) error {
	if len(data) != 1 {
		return decodeErrorf(OpSetBrightness, "got %d bytes, expected 1", len(data))
	}
	if Opcode(data[0]) != OpSetBrightness {
		return decodeErrorf(OpSetBrightness, "echoed opcode 0x%02X, expected 0x%02X", data[0], byte(OpSetBrightness))
	}
	return nil
}

// ParseGetBrightnessResponse decodes a Get Brightness payload.
//
// Payload: [LEVEL]
func ParseGetBrightnessResponse(data []byte) (int, error) {
	if len(data) != 1 {
		return 0, decodeErrorf(OpGetBrightness, "got %d bytes, expected 1", len(data))
	}
	return int(data[0]), nil
}

// ParseSetAlertVolumeResponse validates the Set Alert Volume
// acknowledgment.
//
// Payload: [0x76]
func ParseSetAlertVolumeResponse(data []byte) error {
	if len(data) != 1 {
		return decodeErrorf(OpSetAlertVolume, "got %d bytes, expected 1", len(data))
	}
	if Opcode(data[0]) != OpSetAlertVolume {
		return decodeErrorf(OpSetAlertVolume, "echoed opcode 0x%02X, expected 0x%02X", data[0], byte(OpSetAlertVolume))
	}
	return nil
}

// ParseGetAlertVolumeResponse decodes a Get Alert Volume payload.
//
// Payload: [PERCENT]
func ParseGetAlertVolumeResponse(data []byte) (int, error) {
	if len(data) != 1 {
		return 0, decodeErrorf(OpGetAlertVolume, "got %d bytes, expected 1", len(data))
	}
	percent := int(data[0])
	if percent > MaxPercent {
		return 0, decodeErrorf(OpGetAlertVolume, "alert volume %d out of range", percent)
	}
	return percent, nil
}

// ParseGetBatteryStatusResponse decodes a Get Battery Status payload.
// Bit 7 is the charging flag; the low seven bits are the charge percent.
//
// Payload: [CHARGING<<7 | PERCENT]
func ParseGetBatteryStatusResponse(data []byte) (BatteryStatus, error) {
	if len(data) != 1 {
		return BatteryStatus{}, decodeErrorf(OpGetBatteryStatus, "got %d bytes, expected 1", len(data))
	}

	status := BatteryStatus{
		Charging:      data[0]&0x80 != 0,
		ChargePercent: int(data[0] & 0x7F),
	}
	if status.ChargePercent > MaxPercent {
		return BatteryStatus{}, decodeErrorf(OpGetBatteryStatus, "charge percent %d out of range", status.ChargePercent)
	}

	return status, nil
}

// ParseGetHeadsetStatusResponse decodes a Get Headset Status payload.
// Bit 0 is the dock flag; bit 1 is the power flag.
//
// Payload: [POWER<<1 | DOCKED]
func ParseGetHeadsetStatusResponse(data []byte) (HeadsetStatus, error) {
	if len(data) != 1 {
		return HeadsetStatus{}, decodeErrorf(OpGetHeadsetStatus, "got %d bytes, expected 1", len(data))
	}
	return HeadsetStatus{
		Docked:    data[0]&0x01 != 0,
		PoweredOn: data[0]&0x02 != 0,
	}, nil
}

package protocol

import (
	"errors"
	"strings"
	"testing"
)

func TestParseGetSliderValueResponse(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		slider  SliderType
		want    SliderValue
		wantErr bool
		errMsg  string
	}{
		{
			name:   "both banks decoded",
			data:   []byte{0x68, 0x04, 0x50, 0x32},
			slider: SliderMic,
			want:   SliderValue{Active: 80, Saved: 50},
		},
		{
			name:   "zero in both banks",
			data:   []byte{0x68, 0x05, 0x00, 0x00},
			slider: SliderSideTone,
			want:   SliderValue{},
		},
		{
			name:    "wrong length",
			data:    []byte{0x68, 0x04, 0x50},
			slider:  SliderMic,
			wantErr: true,
			errMsg:  "got 3 bytes, expected 4",
		},
		{
			name:    "wrong echoed opcode",
			data:    []byte{0x62, 0x04, 0x50, 0x32},
			slider:  SliderMic,
			wantErr: true,
			errMsg:  "echoed opcode 0x62",
		},
		{
			name:    "wrong echoed slider",
			data:    []byte{0x68, 0x02, 0x50, 0x32},
			slider:  SliderMic,
			wantErr: true,
			errMsg:  "echoed slider 0x02, expected 0x04",
		},
		{
			name:    "active value above maximum",
			data:    []byte{0x68, 0x04, 0x65, 0x32},
			slider:  SliderMic,
			wantErr: true,
			errMsg:  "slider value out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGetSliderValueResponse(tt.data, tt.slider)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseGetSliderValueResponse() succeeded, want error")
				}
				var de *DecodeError
				if !errors.As(err, &de) {
					t.Errorf("error type = %T, want *DecodeError", err)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error = %v, want containing %q", err, tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGetSliderValueResponse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseGetSliderValueResponse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseGetNoiseGateModeResponse(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    NoiseGateValue
		wantErr bool
		errMsg  string
	}{
		{
			name: "banks differ before save",
			data: []byte{0x6A, 0x01, 0x02},
			want: NoiseGateValue{Active: NoiseGateNight, Saved: NoiseGateHome},
		},
		{
			name:    "unrecognized active mode preserved in error",
			data:    []byte{0x6A, 0x07, 0x02},
			wantErr: true,
			errMsg:  "unrecognized active mode 0x07",
		},
		{
			name:    "unrecognized saved mode preserved in error",
			data:    []byte{0x6A, 0x00, 0xFF},
			wantErr: true,
			errMsg:  "unrecognized saved mode 0xFF",
		},
		{
			name:    "wrong length",
			data:    []byte{0x6A, 0x01},
			wantErr: true,
			errMsg:  "got 2 bytes, expected 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGetNoiseGateModeResponse(tt.data)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseGetNoiseGateModeResponse() succeeded, want error")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error = %v, want containing %q", err, tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGetNoiseGateModeResponse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseGetNoiseGateModeResponse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseGetEQPresetGainResponse(t *testing.T) {
	t.Run("signed gains in both banks", func(t *testing.T) {
		data := []byte{0x69, 0x02, 0xF6, 0xFF, 0x00, 0x01, 0x0A, 0x05, 0x05, 0x05, 0x05, 0x05}
		got, err := ParseGetEQPresetGainResponse(data, 2)
		if err != nil {
			t.Fatalf("ParseGetEQPresetGainResponse() error = %v", err)
		}
		wantActive := [EQBandCount]int{-10, -1, 0, 1, 10}
		wantSaved := [EQBandCount]int{5, 5, 5, 5, 5}
		if got.Active != wantActive {
			t.Errorf("active gains = %v, want %v", got.Active, wantActive)
		}
		if got.Saved != wantSaved {
			t.Errorf("saved gains = %v, want %v", got.Saved, wantSaved)
		}
	})

	t.Run("echoed preset mismatch", func(t *testing.T) {
		data := []byte{0x69, 0x01, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
		_, err := ParseGetEQPresetGainResponse(data, 2)
		if err == nil {
			t.Fatal("ParseGetEQPresetGainResponse() succeeded, want error")
		}
		if !strings.Contains(err.Error(), "echoed preset 1, expected 2") {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := ParseGetEQPresetGainResponse([]byte{0x69, 0x01, 0x00}, 1)
		if err == nil {
			t.Fatal("ParseGetEQPresetGainResponse() succeeded, want error")
		}
		if !strings.Contains(err.Error(), "got 3 bytes, expected 12") {
			t.Errorf("error = %v", err)
		}
	})
}

func TestParseGetEQPresetNameResponse(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		preset  int
		want    string
		wantErr bool
		errMsg  string
	}{
		{
			name:   "padding trimmed",
			data:   append([]byte{0x6E, 0x01, 'F', 'l', 'a', 't'}, make([]byte, 28)...),
			preset: 1,
			want:   "Flat",
		},
		{
			name:   "full-width name has no padding",
			data:   append([]byte{0x6E, 0x02}, []byte(strings.Repeat("x", 32))...),
			preset: 2,
			want:   strings.Repeat("x", 32),
		},
		{
			name:    "echoed preset mismatch",
			data:    []byte{0x6E, 0x03, 'F', 0x00},
			preset:  1,
			wantErr: true,
			errMsg:  "echoed preset 3, expected 1",
		},
		{
			name:    "too short",
			data:    []byte{0x6E, 0x01},
			preset:  1,
			wantErr: true,
			errMsg:  "expected at least 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGetEQPresetNameResponse(tt.data, tt.preset)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseGetEQPresetNameResponse() succeeded, want error")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error = %v, want containing %q", err, tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGetEQPresetNameResponse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseGetEQPresetNameResponse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseGetEQPresetFreqBWResponse(t *testing.T) {
	t.Run("little-endian fields in both banks", func(t *testing.T) {
		data := []byte{
			0x70, 0x01, 0x03,
			0xE8, 0x03, 0xF4, 0x01, // active: 1000 Hz, BW 500
			0x20, 0x4E, 0xFF, 0x7F, // saved: 20000 Hz, BW 32767
		}
		got, err := ParseGetEQPresetFreqBWResponse(data, 1, 3)
		if err != nil {
			t.Fatalf("ParseGetEQPresetFreqBWResponse() error = %v", err)
		}
		want := EQFreqBW{
			Active: FreqBW{CenterFreq: 1000, Bandwidth: 500},
			Saved:  FreqBW{CenterFreq: 20000, Bandwidth: 32767},
		}
		if got != want {
			t.Errorf("ParseGetEQPresetFreqBWResponse() = %+v, want %+v", got, want)
		}
	})

	t.Run("echoed band mismatch", func(t *testing.T) {
		data := []byte{0x70, 0x01, 0x02, 0, 0, 0, 0, 0, 0, 0, 0}
		_, err := ParseGetEQPresetFreqBWResponse(data, 1, 3)
		if err == nil {
			t.Fatal("ParseGetEQPresetFreqBWResponse() succeeded, want error")
		}
		if !strings.Contains(err.Error(), "echoed preset/band 1/2, expected 1/3") {
			t.Errorf("error = %v", err)
		}
	})
}

func TestParseGetMicEQPresetResponse(t *testing.T) {
	got, err := ParseGetMicEQPresetResponse([]byte{0x7B, 0x02, 0x01})
	if err != nil {
		t.Fatalf("ParseGetMicEQPresetResponse() error = %v", err)
	}
	if got.Active != 2 || got.Saved != 1 {
		t.Errorf("ParseGetMicEQPresetResponse() = %+v", got)
	}

	_, err = ParseGetMicEQPresetResponse([]byte{0x7B, 0x00, 0x01})
	if err == nil || !strings.Contains(err.Error(), "unrecognized active preset 0") {
		t.Errorf("error = %v, want unrecognized active preset", err)
	}
}

func TestParseGetActiveEQPresetResponse(t *testing.T) {
	got, err := ParseGetActiveEQPresetResponse([]byte{0x03})
	if err != nil {
		t.Fatalf("ParseGetActiveEQPresetResponse() error = %v", err)
	}
	if got != 3 {
		t.Errorf("ParseGetActiveEQPresetResponse() = %d, want 3", got)
	}

	_, err = ParseGetActiveEQPresetResponse([]byte{0x04})
	if err == nil || !strings.Contains(err.Error(), "unrecognized preset 4") {
		t.Errorf("error = %v, want unrecognized preset", err)
	}
}

func TestParseGetBatteryStatusResponse(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    BatteryStatus
		wantErr bool
		errMsg  string
	}{
		{
			name: "charging at 60 percent",
			data: []byte{0xBC},
			want: BatteryStatus{ChargePercent: 60, Charging: true},
		},
		{
			name: "discharging at 100 percent",
			data: []byte{0x64},
			want: BatteryStatus{ChargePercent: 100},
		},
		{
			name: "charging at full",
			data: []byte{0xE4},
			want: BatteryStatus{ChargePercent: 100, Charging: true},
		},
		{
			name:    "percent beyond 100",
			data:    []byte{0x65},
			wantErr: true,
			errMsg:  "charge percent 101 out of range",
		},
		{
			name:    "wrong length",
			data:    []byte{0x64, 0x00},
			wantErr: true,
			errMsg:  "got 2 bytes, expected 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGetBatteryStatusResponse(tt.data)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseGetBatteryStatusResponse() succeeded, want error")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error = %v, want containing %q", err, tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGetBatteryStatusResponse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseGetBatteryStatusResponse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseGetHeadsetStatusResponse(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want HeadsetStatus
	}{
		{name: "off and undocked", data: []byte{0x00}, want: HeadsetStatus{}},
		{name: "off and docked", data: []byte{0x01}, want: HeadsetStatus{Docked: true}},
		{name: "on and undocked", data: []byte{0x02}, want: HeadsetStatus{PoweredOn: true}},
		{name: "on and docked", data: []byte{0x03}, want: HeadsetStatus{PoweredOn: true, Docked: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGetHeadsetStatusResponse(tt.data)
			if err != nil {
				t.Fatalf("ParseGetHeadsetStatusResponse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseGetHeadsetStatusResponse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseSetAcknowledgments(t *testing.T) {
	tests := []struct {
		name    string
		parse   func() error
		wantErr bool
		errMsg  string
	}{
		{
			name:  "save values",
			parse: func() error { return ParseSaveValuesResponse([]byte{0x61, 0x00}) },
		},
		{
			name:    "save values unexpected acknowledgment",
			parse:   func() error { return ParseSaveValuesResponse([]byte{0x61, 0x01}) },
			wantErr: true,
			errMsg:  "unexpected acknowledgment",
		},
		{
			name:  "set slider value",
			parse: func() error { return ParseSetSliderValueResponse([]byte{0x62, 0x04}, SliderMic) },
		},
		{
			name:    "set slider value wrong echo",
			parse:   func() error { return ParseSetSliderValueResponse([]byte{0x62, 0x05}, SliderMic) },
			wantErr: true,
			errMsg:  "echoed slider 0x05, expected 0x04",
		},
		{
			name:  "set noise gate echoes mode not opcode",
			parse: func() error { return ParseSetNoiseGateModeResponse([]byte{0x03}, NoiseGateTournament) },
		},
		{
			name:    "set noise gate wrong echo",
			parse:   func() error { return ParseSetNoiseGateModeResponse([]byte{0x02}, NoiseGateTournament) },
			wantErr: true,
			errMsg:  "echoed mode 0x02, expected 0x03",
		},
		{
			name:  "set active EQ preset",
			parse: func() error { return ParseSetActiveEQPresetResponse([]byte{0x67, 0x02}, 2) },
		},
		{
			name:  "set EQ preset gain",
			parse: func() error { return ParseSetEQPresetGainResponse([]byte{0x63, 0x01}, 1) },
		},
		{
			name:  "set EQ preset name",
			parse: func() error { return ParseSetEQPresetNameResponse([]byte{0x6D, 0x03}, 3) },
		},
		{
			name:  "set EQ preset freq and bandwidth",
			parse: func() error { return ParseSetEQPresetFreqBWResponse([]byte{0x6F, 0x01, 0x02}, 1, 2) },
		},
		{
			name:    "set EQ preset freq and bandwidth wrong echo",
			parse:   func() error { return ParseSetEQPresetFreqBWResponse([]byte{0x6F, 0x01, 0x03}, 1, 2) },
			wantErr: true,
			errMsg:  "echoed preset/band 1/3, expected 1/2",
		},
		{
			name:  "set mic EQ preset echoes preset not opcode",
			parse: func() error { return ParseSetMicEQPresetResponse([]byte{0x02}, 2) },
		},
		{
			name:  "set default balance",
			parse: func() error { return ParseSetDefaultBalanceResponse([]byte{0x73}) },
		},
		{
			name:  "set auto-shutoff timeout",
			parse: func() error { return ParseSetAutoShutoffTimeoutResponse([]byte{0x74}) },
		},
		{
			name:  "set brightness",
			parse: func() error { return ParseSetBrightnessResponse([]byte{0x75}) },
		},
		{
			name:  "set alert volume",
			parse: func() error { return ParseSetAlertVolumeResponse([]byte{0x76}) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse()
			if tt.wantErr {
				if err == nil {
					t.Fatal("parse succeeded, want error")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error = %v, want containing %q", err, tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("parse error = %v", err)
			}
		})
	}
}

func TestParseScalarGetters(t *testing.T) {
	if got, err := ParseGetBalanceResponse([]byte{0x80}); err != nil || got != 128 {
		t.Errorf("ParseGetBalanceResponse() = %d, %v", got, err)
	}
	if got, err := ParseGetDefaultBalanceResponse([]byte{0xFF}); err != nil || got != 255 {
		t.Errorf("ParseGetDefaultBalanceResponse() = %d, %v", got, err)
	}
	if got, err := ParseGetAutoShutoffTimeoutResponse([]byte{0x1E}); err != nil || got != 30 {
		t.Errorf("ParseGetAutoShutoffTimeoutResponse() = %d, %v", got, err)
	}
	if got, err := ParseGetBrightnessResponse([]byte{0x02}); err != nil || got != 2 {
		t.Errorf("ParseGetBrightnessResponse() = %d, %v", got, err)
	}
	if got, err := ParseGetAlertVolumeResponse([]byte{0x64}); err != nil || got != 100 {
		t.Errorf("ParseGetAlertVolumeResponse() = %d, %v", got, err)
	}
	if _, err := ParseGetAlertVolumeResponse([]byte{0x78}); err == nil {
		t.Error("ParseGetAlertVolumeResponse() accepted 120, want error")
	}
}

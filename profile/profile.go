package profile

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/a50kit/go-a50/protocol"
)

// Device is the subset of the session API a profile needs to apply
// itself. *headset.Session satisfies it.
type Device interface {
	SetSliderValue(slider protocol.SliderType, percent int) error
	SetNoiseGateMode(mode protocol.NoiseGateMode) error
	SetMicEQPreset(preset int) error
	SetActiveEQPreset(preset int) error
	SetEQPresetGain(preset int, gains [protocol.EQBandCount]int) error
	SetEQPresetName(preset int, name string) error
	SetEQPresetFreqBW(preset, band, centerFreq, bandwidth int) error
	SetDefaultBalance(balance int) error
	SetAlertVolume(percent int) error
	SaveValues() error
}

// Profile is a named set of base-station settings. Fields left out of
// the profile file are nil and are not written to the device.
type Profile struct {
	// Name identifies the profile; informational only
	Name string

	MicLevel       *int
	SideTone       *int
	AlertVolume    *int
	DefaultBalance *int
	NoiseGate      *protocol.NoiseGateMode
	MicEQPreset    *int
	ActiveEQPreset *int

	// Sliders holds additional slider settings keyed by slider type
	Sliders map[protocol.SliderType]int

	// EQ holds per-preset equalizer settings
	EQ []EQSettings

	// Save requests a save-to-device after all settings are applied
	Save bool
}

// EQSettings describes one EQ preset in a profile.
type EQSettings struct {
	// Preset is the 1-based preset number
	Preset int

	// Name renames the preset when non-empty
	Name string

	// Gains sets all five band gains in dB when non-nil
	Gains *[protocol.EQBandCount]int

	// Bands sets individual band filters
	Bands []BandSettings
}

// BandSettings describes one EQ band filter.
type BandSettings struct {
	// Band is the 1-based band number
	Band int

	// CenterFreq is the band center frequency in Hz
	CenterFreq int

	// Bandwidth is the filter bandwidth; must be 0 for bands 1 and 5
	Bandwidth int
}

// fileProfile is the raw TOML document shape.
type fileProfile struct {
	Name           string         `toml:"name"`
	MicLevel       int            `toml:"mic-level"`
	SideTone       int            `toml:"side-tone"`
	AlertVolume    int            `toml:"alert-volume"`
	DefaultBalance int            `toml:"default-balance"`
	NoiseGate      string         `toml:"noise-gate"`
	MicEQPreset    int            `toml:"mic-eq-preset"`
	ActiveEQPreset int            `toml:"active-eq-preset"`
	Sliders        map[string]int `toml:"sliders"`
	EQ             []fileEQ       `toml:"eq"`
	Save           bool           `toml:"save"`
}

type fileEQ struct {
	Preset int        `toml:"preset"`
	Name   string     `toml:"name"`
	Gains  []int      `toml:"gains"`
	Bands  []fileBand `toml:"bands"`
}

type fileBand struct {
	Band       int `toml:"band"`
	CenterFreq int `toml:"center-freq"`
	Bandwidth  int `toml:"bandwidth"`
}

var sliderNames = map[string]protocol.SliderType{
	"stream-mix-mic":  protocol.SliderStreamMixMic,
	"stream-mix-chat": protocol.SliderStreamMixChat,
	"stream-mix-game": protocol.SliderStreamMixGame,
	"stream-mix-aux":  protocol.SliderStreamMixAux,
	"mic":             protocol.SliderMic,
	"side-tone":       protocol.SliderSideTone,
}

var noiseGateNames = map[string]protocol.NoiseGateMode{
	"streaming":  protocol.NoiseGateStreaming,
	"night":      protocol.NoiseGateNight,
	"home":       protocol.NoiseGateHome,
	"tournament": protocol.NoiseGateTournament,
}

// Load reads and validates a profile file.
//
// Example:
//
//	p, err := profile.Load("night.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = p.Apply(session)
func Load(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profile: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadReader(f)
}

// LoadReader reads and validates a profile from any io.Reader.
func LoadReader(r io.Reader) (*Profile, error) {
	var raw fileProfile
	meta, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}

	p := &Profile{Name: raw.Name, Save: raw.Save}

	if meta.IsDefined("mic-level") {
		p.MicLevel = intPtr(raw.MicLevel)
	}
	if meta.IsDefined("side-tone") {
		p.SideTone = intPtr(raw.SideTone)
	}
	if meta.IsDefined("alert-volume") {
		p.AlertVolume = intPtr(raw.AlertVolume)
	}
	if meta.IsDefined("default-balance") {
		p.DefaultBalance = intPtr(raw.DefaultBalance)
	}
	if meta.IsDefined("mic-eq-preset") {
		p.MicEQPreset = intPtr(raw.MicEQPreset)
	}
	if meta.IsDefined("active-eq-preset") {
		p.ActiveEQPreset = intPtr(raw.ActiveEQPreset)
	}

	if meta.IsDefined("noise-gate") {
		mode, ok := noiseGateNames[raw.NoiseGate]
		if !ok {
			return nil, fmt.Errorf("unknown noise-gate mode %q", raw.NoiseGate)
		}
		p.NoiseGate = &mode
	}

	if len(raw.Sliders) > 0 {
		p.Sliders = make(map[protocol.SliderType]int, len(raw.Sliders))
		for name, value := range raw.Sliders {
			slider, ok := sliderNames[name]
			if !ok {
				return nil, fmt.Errorf("unknown slider %q", name)
			}
			p.Sliders[slider] = value
		}
	}

	for i, eq := range raw.EQ {
		settings := EQSettings{Preset: eq.Preset, Name: eq.Name}

		if eq.Gains != nil {
			if len(eq.Gains) != protocol.EQBandCount {
				return nil, fmt.Errorf("eq %d: got %d gains, expected %d", i, len(eq.Gains), protocol.EQBandCount)
			}
			var gains [protocol.EQBandCount]int
			copy(gains[:], eq.Gains)
			settings.Gains = &gains
		}

		for _, band := range eq.Bands {
			settings.Bands = append(settings.Bands, BandSettings{
				Band:       band.Band,
				CenterFreq: band.CenterFreq,
				Bandwidth:  band.Bandwidth,
			})
		}

		p.EQ = append(p.EQ, settings)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks every value in the profile against the ranges the
// device accepts, by running it through the protocol request builders.
// A valid profile fails Apply only on device or transport errors.
func (p *Profile) Validate() error {
	if p.MicLevel != nil {
		if _, err := protocol.BuildSetSliderValueRequest(protocol.SliderMic, *p.MicLevel); err != nil {
			return err
		}
	}
	if p.SideTone != nil {
		if _, err := protocol.BuildSetSliderValueRequest(protocol.SliderSideTone, *p.SideTone); err != nil {
			return err
		}
	}
	if p.AlertVolume != nil {
		if _, err := protocol.BuildSetAlertVolumeRequest(*p.AlertVolume); err != nil {
			return err
		}
	}
	if p.DefaultBalance != nil {
		if _, err := protocol.BuildSetDefaultBalanceRequest(*p.DefaultBalance); err != nil {
			return err
		}
	}
	if p.MicEQPreset != nil {
		if _, err := protocol.BuildSetMicEQPresetRequest(*p.MicEQPreset); err != nil {
			return err
		}
	}
	if p.ActiveEQPreset != nil {
		if _, err := protocol.BuildSetActiveEQPresetRequest(*p.ActiveEQPreset); err != nil {
			return err
		}
	}
	for slider, value := range p.Sliders {
		if _, err := protocol.BuildSetSliderValueRequest(slider, value); err != nil {
			return err
		}
	}

	for _, eq := range p.EQ {
		if eq.Name != "" {
			if _, err := protocol.BuildSetEQPresetNameRequest(eq.Preset, eq.Name); err != nil {
				return err
			}
		}
		if eq.Gains != nil {
			if _, err := protocol.BuildSetEQPresetGainRequest(eq.Preset, *eq.Gains); err != nil {
				return err
			}
		}
		if eq.Name == "" && eq.Gains == nil && len(eq.Bands) == 0 {
			// Catch preset typos even when the entry is otherwise empty.
			if _, err := protocol.BuildGetEQPresetGainRequest(eq.Preset); err != nil {
				return err
			}
		}
		for _, band := range eq.Bands {
			if _, err := protocol.BuildSetEQPresetFreqBWRequest(eq.Preset, band.Band, band.CenterFreq, band.Bandwidth); err != nil {
				return err
			}
		}
	}

	return nil
}

// Apply writes every setting in the profile to the device, then saves
// the configuration when the profile requests it. Settings are applied
// in a fixed order (sliders, noise gate, mic EQ, EQ presets, active
// preset, balance, alert volume); the first failure aborts the pass.
func (p *Profile) Apply(d Device) error {
	if p.MicLevel != nil {
		if err := d.SetSliderValue(protocol.SliderMic, *p.MicLevel); err != nil {
			return fmt.Errorf("mic level: %w", err)
		}
	}
	if p.SideTone != nil {
		if err := d.SetSliderValue(protocol.SliderSideTone, *p.SideTone); err != nil {
			return fmt.Errorf("side tone: %w", err)
		}
	}
	for slider, value := range p.Sliders {
		if err := d.SetSliderValue(slider, value); err != nil {
			return fmt.Errorf("slider %s: %w", slider, err)
		}
	}

	if p.NoiseGate != nil {
		if err := d.SetNoiseGateMode(*p.NoiseGate); err != nil {
			return fmt.Errorf("noise gate: %w", err)
		}
	}
	if p.MicEQPreset != nil {
		if err := d.SetMicEQPreset(*p.MicEQPreset); err != nil {
			return fmt.Errorf("mic EQ preset: %w", err)
		}
	}

	for _, eq := range p.EQ {
		if eq.Name != "" {
			if err := d.SetEQPresetName(eq.Preset, eq.Name); err != nil {
				return fmt.Errorf("EQ preset %d name: %w", eq.Preset, err)
			}
		}
		if eq.Gains != nil {
			if err := d.SetEQPresetGain(eq.Preset, *eq.Gains); err != nil {
				return fmt.Errorf("EQ preset %d gains: %w", eq.Preset, err)
			}
		}
		for _, band := range eq.Bands {
			if err := d.SetEQPresetFreqBW(eq.Preset, band.Band, band.CenterFreq, band.Bandwidth); err != nil {
				return fmt.Errorf("EQ preset %d band %d: %w", eq.Preset, band.Band, err)
			}
		}
	}

	if p.ActiveEQPreset != nil {
		if err := d.SetActiveEQPreset(*p.ActiveEQPreset); err != nil {
			return fmt.Errorf("active EQ preset: %w", err)
		}
	}
	if p.DefaultBalance != nil {
		if err := d.SetDefaultBalance(*p.DefaultBalance); err != nil {
			return fmt.Errorf("default balance: %w", err)
		}
	}
	if p.AlertVolume != nil {
		if err := d.SetAlertVolume(*p.AlertVolume); err != nil {
			return fmt.Errorf("alert volume: %w", err)
		}
	}

	if p.Save {
		if err := d.SaveValues(); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}

	return nil
}

func intPtr(v int) *int { return &v }

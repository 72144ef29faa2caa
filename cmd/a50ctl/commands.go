package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/a50kit/go-a50/headset"
	"github.com/a50kit/go-a50/profile"
	"github.com/a50kit/go-a50/protocol"
)

type cliOptions struct {
	saved   bool
	timeout time.Duration
	verbose bool
}

func (o cliOptions) scope() protocol.Scope {
	if o.saved {
		return protocol.ScopeSaved
	}
	return protocol.ScopeActive
}

func (o cliOptions) sessionOptions() []headset.Option {
	var opts []headset.Option
	if o.timeout > 0 {
		opts = append(opts, headset.WithTimeout(o.timeout))
	}
	if o.verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
		opts = append(opts, headset.WithLogger(logger))
	}
	return opts
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

func cmdStatus(opts cliOptions, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("status takes no arguments")
	}

	return headset.WithSession(func(s *headset.Session) error {
		status, err := s.HeadsetStatus()
		if err != nil {
			return err
		}
		battery, err := s.BatteryStatus()
		if err != nil {
			return err
		}
		balance, err := s.Balance()
		if err != nil {
			return err
		}
		preset, err := s.ActiveEQPreset()
		if err != nil {
			return err
		}
		name, err := s.EQPresetName(preset, protocol.ScopeActive)
		if err != nil {
			return err
		}

		fmt.Printf("headset:    powered=%t docked=%t\n", status.PoweredOn, status.Docked)
		charging := "discharging"
		if battery.Charging {
			charging = "charging"
		}
		fmt.Printf("battery:    %d%% (%s)\n", battery.ChargePercent, charging)
		fmt.Printf("balance:    %d (0=game, 255=chat)\n", balance)
		fmt.Printf("eq preset:  %d (%s)\n", preset, name)
		return nil
	}, opts.sessionOptions()...)
}

func cmdGet(opts cliOptions, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("get: missing parameter")
	}
	param, rest := args[0], args[1:]
	scope := opts.scope()

	return headset.WithSession(func(s *headset.Session) error {
		switch param {
		case "mic-level":
			return printInt(s.MicLevel(scope))
		case "side-tone":
			return printInt(s.SideToneVolume(scope))
		case "alert-volume":
			return printInt(s.AlertVolume(scope))
		case "default-balance":
			return printInt(s.DefaultBalance(scope))
		case "balance":
			return printInt(s.Balance())
		case "auto-shutoff":
			return printInt(s.AutoShutoffTimeout())
		case "brightness":
			return printInt(s.Brightness())
		case "active-eq-preset":
			return printInt(s.ActiveEQPreset())
		case "mic-eq-preset":
			return printInt(s.MicEQPreset(scope))

		case "noise-gate":
			mode, err := s.NoiseGateMode(scope)
			if err != nil {
				return err
			}
			fmt.Println(mode)
			return nil

		case "slider":
			if len(rest) != 1 {
				return fmt.Errorf("get slider: expected a slider name")
			}
			slider, err := parseSliderName(rest[0])
			if err != nil {
				return err
			}
			return printInt(s.SliderValue(slider, scope))

		case "eq-name":
			preset, err := parsePreset(rest, "get eq-name")
			if err != nil {
				return err
			}
			name, err := s.EQPresetName(preset, scope)
			if err != nil {
				return err
			}
			fmt.Println(name)
			return nil

		case "eq-gains":
			preset, err := parsePreset(rest, "get eq-gains")
			if err != nil {
				return err
			}
			gains, err := s.EQPresetGain(preset, scope)
			if err != nil {
				return err
			}
			parts := make([]string, len(gains))
			for i, g := range gains {
				parts[i] = strconv.Itoa(g)
			}
			fmt.Println(strings.Join(parts, " "))
			return nil

		case "eq-band":
			if len(rest) != 2 {
				return fmt.Errorf("get eq-band: expected <preset> <band>")
			}
			preset, err := strconv.Atoi(rest[0])
			if err != nil {
				return fmt.Errorf("get eq-band: bad preset %q", rest[0])
			}
			band, err := strconv.Atoi(rest[1])
			if err != nil {
				return fmt.Errorf("get eq-band: bad band %q", rest[1])
			}
			fb, err := s.EQPresetFreqBW(preset, band, scope)
			if err != nil {
				return err
			}
			fmt.Printf("%d Hz, bandwidth %d\n", fb.CenterFreq, fb.Bandwidth)
			return nil

		default:
			return fmt.Errorf("unknown parameter %q", param)
		}
	}, opts.sessionOptions()...)
}

func cmdSet(opts cliOptions, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("set: expected <param> <value>")
	}
	param, rest := args[0], args[1:]

	return headset.WithSession(func(s *headset.Session) error {
		switch param {
		case "mic-level":
			return setIntValue(rest, param, s.SetMicLevel)
		case "side-tone":
			return setIntValue(rest, param, s.SetSideToneVolume)
		case "alert-volume":
			return setIntValue(rest, param, s.SetAlertVolume)
		case "default-balance":
			return setIntValue(rest, param, s.SetDefaultBalance)
		case "auto-shutoff":
			return setIntValue(rest, param, s.SetAutoShutoffTimeout)
		case "brightness":
			return setIntValue(rest, param, s.SetBrightness)
		case "active-eq-preset":
			return setIntValue(rest, param, s.SetActiveEQPreset)
		case "mic-eq-preset":
			return setIntValue(rest, param, s.SetMicEQPreset)

		case "noise-gate":
			if len(rest) != 1 {
				return fmt.Errorf("set noise-gate: expected a mode name")
			}
			mode, ok := noiseGateNames[rest[0]]
			if !ok {
				return fmt.Errorf("unknown noise-gate mode %q", rest[0])
			}
			return s.SetNoiseGateMode(mode)

		case "slider":
			if len(rest) != 2 {
				return fmt.Errorf("set slider: expected <name> <percent>")
			}
			slider, err := parseSliderName(rest[0])
			if err != nil {
				return err
			}
			percent, err := strconv.Atoi(rest[1])
			if err != nil {
				return fmt.Errorf("set slider: bad value %q", rest[1])
			}
			return s.SetSliderValue(slider, percent)

		case "eq-name":
			if len(rest) != 2 {
				return fmt.Errorf("set eq-name: expected <preset> <name>")
			}
			preset, err := strconv.Atoi(rest[0])
			if err != nil {
				return fmt.Errorf("set eq-name: bad preset %q", rest[0])
			}
			return s.SetEQPresetName(preset, rest[1])

		case "eq-gains":
			if len(rest) != 1+protocol.EQBandCount {
				return fmt.Errorf("set eq-gains: expected <preset> and %d gains", protocol.EQBandCount)
			}
			preset, err := strconv.Atoi(rest[0])
			if err != nil {
				return fmt.Errorf("set eq-gains: bad preset %q", rest[0])
			}
			var gains [protocol.EQBandCount]int
			for i := range gains {
				gains[i], err = strconv.Atoi(rest[1+i])
				if err != nil {
					return fmt.Errorf("set eq-gains: bad gain %q", rest[1+i])
				}
			}
			return s.SetEQPresetGain(preset, gains)

		case "eq-band":
			if len(rest) != 4 {
				return fmt.Errorf("set eq-band: expected <preset> <band> <freq> <bandwidth>")
			}
			values := make([]int, 4)
			for i, arg := range rest {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("set eq-band: bad value %q", arg)
				}
				values[i] = v
			}
			return s.SetEQPresetFreqBW(values[0], values[1], values[2], values[3])

		default:
			return fmt.Errorf("unknown parameter %q", param)
		}
	}, opts.sessionOptions()...)
}

func cmdSave(opts cliOptions, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("save takes no arguments")
	}
	return headset.WithSession(func(s *headset.Session) error {
		return s.SaveValues()
	}, opts.sessionOptions()...)
}

func cmdApply(opts cliOptions, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("apply: expected a profile file")
	}

	p, err := profile.Load(args[0])
	if err != nil {
		return err
	}

	return headset.WithSession(func(s *headset.Session) error {
		if err := p.Apply(s); err != nil {
			return err
		}
		if p.Name != "" {
			fmt.Printf("applied profile %q\n", p.Name)
		}
		return nil
	}, opts.sessionOptions()...)
}

func cmdProbe(opts cliOptions, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("probe: expected <opcode> [payload], both hex")
	}

	opcode, err := strconv.ParseUint(strings.TrimPrefix(args[0], "0x"), 16, 8)
	if err != nil {
		return fmt.Errorf("probe: bad opcode %q", args[0])
	}

	var payload []byte
	if len(args) == 2 {
		payload, err = hex.DecodeString(args[1])
		if err != nil {
			return fmt.Errorf("probe: bad payload %q", args[1])
		}
	}

	return headset.WithSession(func(s *headset.Session) error {
		resp, err := s.Raw(protocol.Opcode(opcode), payload)
		if err != nil {
			return err
		}
		fmt.Printf("status:  %s\n", resp.Status)
		if len(resp.Payload) > 0 {
			fmt.Printf("payload: % X\n", resp.Payload)
		}
		return nil
	}, opts.sessionOptions()...)
}

func parseSliderName(name string) (protocol.SliderType, error) {
	slider, ok := sliderNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown slider %q", name)
	}
	return slider, nil
}

func parsePreset(args []string, context string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s: expected a preset number", context)
	}
	preset, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%s: bad preset %q", context, args[0])
	}
	return preset, nil
}

func setIntValue(args []string, param string, set func(int) error) error {
	if len(args) != 1 {
		return fmt.Errorf("set %s: expected a single value", param)
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("set %s: bad value %q", param, args[0])
	}
	return set(v)
}

func printInt(v int, err error) error {
	if err != nil {
		return err
	}
	fmt.Println(v)
	return nil
}

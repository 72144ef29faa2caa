package headset

import (
	"errors"
	"fmt"
	"time"

	"github.com/a50kit/go-a50/protocol"
)

// fakeHandle is a DeviceHandle backed by an arbitrary Transport. It
// counts lifecycle calls so tests can assert on detach/reattach and
// reset behavior.
type fakeHandle struct {
	transport    Transport
	driverActive bool
	claimErr     error

	detachCalls  int
	attachCalls  int
	releaseCalls int
	resetCalls   int
	closeCalls   int
}

func (h *fakeHandle) KernelDriverActive() (bool, error) { return h.driverActive, nil }

func (h *fakeHandle) DetachKernelDriver() error {
	h.detachCalls++
	h.driverActive = false
	return nil
}

func (h *fakeHandle) AttachKernelDriver() error {
	h.attachCalls++
	h.driverActive = true
	return nil
}

func (h *fakeHandle) Claim() (Transport, error) {
	if h.claimErr != nil {
		return nil, h.claimErr
	}
	return h.transport, nil
}

func (h *fakeHandle) Release() error { h.releaseCalls++; return nil }
func (h *fakeHandle) Reset() error   { h.resetCalls++; return nil }
func (h *fakeHandle) Close() error   { h.closeCalls++; return nil }

// scriptStep is one scripted read result.
type scriptStep struct {
	resp []byte
	err  error
}

// scriptTransport plays back canned read results and records every
// write, for driving the transaction engine through specific frames
// and failure modes.
type scriptTransport struct {
	writes   [][]byte
	writeErr error
	steps    []scriptStep
}

func (t *scriptTransport) Write(p []byte, _ time.Duration) (int, error) {
	if t.writeErr != nil {
		return 0, t.writeErr
	}
	frame := make([]byte, len(p))
	copy(frame, p)
	t.writes = append(t.writes, frame)
	return len(p), nil
}

func (t *scriptTransport) Read(p []byte, _ time.Duration) (int, error) {
	if len(t.steps) == 0 {
		return 0, errors.New("unexpected read")
	}
	step := t.steps[0]
	t.steps = t.steps[1:]
	if step.err != nil {
		return 0, step.err
	}
	return copy(p, step.resp), nil
}

// bank is a value held in both the active and saved configuration.
type bank struct {
	active, saved int
}

type bankBytes struct {
	active, saved []byte
}

// simDevice emulates a base station behind the Transport interface:
// it parses each written request, mutates its active bank, and answers
// the next read with a response padded to the USB packet size. Save
// copies the active bank over the saved bank, matching the device's
// atomic snapshot.
type simDevice struct {
	pending []byte

	sliders     [6]bank
	noiseGate   bank
	micEQ       bank
	activeEQ    bank
	defBalance  bank
	alertVolume bank
	autoShutoff bank
	brightness  bank
	balance     int

	eqNames [3]bankBytes
	eqGains [3][5]bank
	eqFreqs [3][5]bank
	eqBWs   [3][5]bank
	battery byte
	headset byte
}

func newSimDevice() *simDevice {
	d := &simDevice{
		noiseGate:   bank{int(protocol.NoiseGateHome), int(protocol.NoiseGateHome)},
		micEQ:       bank{1, 1},
		activeEQ:    bank{1, 1},
		defBalance:  bank{128, 128},
		alertVolume: bank{100, 100},
		autoShutoff: bank{30, 30},
		balance:     128,
		battery:     0xBC, // charging, 60%
		headset:     0x03, // powered and docked
	}
	for i := range d.sliders {
		d.sliders[i] = bank{50, 50}
	}
	for p := 0; p < 3; p++ {
		name := []byte(fmt.Sprintf("Preset %d", p+1))
		d.eqNames[p] = bankBytes{active: name, saved: name}
		for b := 0; b < 5; b++ {
			d.eqFreqs[p][b] = bank{1000, 1000}
			d.eqBWs[p][b] = bank{500, 500}
		}
		d.eqBWs[p][0] = bank{}
		d.eqBWs[p][4] = bank{}
	}
	return d
}

func (d *simDevice) Write(p []byte, _ time.Duration) (int, error) {
	d.handleRequest(p)
	return len(p), nil
}

func (d *simDevice) Read(p []byte, _ time.Duration) (int, error) {
	if d.pending == nil {
		return 0, errors.New("no response pending")
	}
	packet := make([]byte, 64)
	copy(packet, d.pending)
	d.pending = nil
	return copy(p, packet), nil
}

func (d *simDevice) success(payload ...byte) {
	d.pending = append([]byte{0x02, 0x02, byte(len(payload))}, payload...)
}

func (d *simDevice) failure(payload ...byte) {
	d.pending = append([]byte{0x02, 0x01, byte(len(payload))}, payload...)
}

func (d *simDevice) handleRequest(frame []byte) {
	op := protocol.Opcode(frame[1])
	var payload []byte
	if len(frame) > 2 {
		payload = frame[3 : 3+int(frame[2])]
	}

	switch op {
	case protocol.OpSaveValues:
		d.save()
		d.success(byte(op), 0x00)

	case protocol.OpSetSliderValue:
		d.sliders[payload[0]].active = int(payload[1])
		d.success(byte(op), payload[0])

	case protocol.OpGetSliderValue:
		v := d.sliders[payload[0]]
		d.success(byte(op), payload[0], byte(v.active), byte(v.saved))

	case protocol.OpSetNoiseGateMode:
		d.noiseGate.active = int(payload[0])
		d.success(payload[0])

	case protocol.OpGetNoiseGateMode:
		d.success(byte(op), byte(d.noiseGate.active), byte(d.noiseGate.saved))

	case protocol.OpSetActiveEQPreset:
		d.activeEQ.active = int(payload[0])
		d.success(byte(op), payload[0])

	case protocol.OpGetActiveEQPreset:
		d.success(byte(d.activeEQ.active))

	case protocol.OpSetEQPresetGain:
		for i := 0; i < 5; i++ {
			d.eqGains[payload[0]-1][i].active = int(int8(payload[1+i]))
		}
		d.success(byte(op), payload[0])

	case protocol.OpGetEQPresetGain:
		resp := []byte{byte(op), payload[0]}
		for i := 0; i < 5; i++ {
			resp = append(resp, byte(int8(d.eqGains[payload[0]-1][i].active)))
		}
		for i := 0; i < 5; i++ {
			resp = append(resp, byte(int8(d.eqGains[payload[0]-1][i].saved)))
		}
		d.success(resp...)

	case protocol.OpSetEQPresetName:
		name := make([]byte, len(payload)-1)
		copy(name, payload[1:])
		d.eqNames[payload[0]-1].active = name
		d.success(byte(op), payload[0])

	case protocol.OpGetEQPresetName:
		scope, preset := payload[0], payload[1]
		name := d.eqNames[preset-1].active
		if scope == 1 {
			name = d.eqNames[preset-1].saved
		}
		field := make([]byte, 32)
		copy(field, name)
		d.success(append([]byte{byte(op), preset}, field...)...)

	case protocol.OpSetEQPresetFreqBW:
		preset, band := payload[0]-1, payload[1]-1
		d.eqFreqs[preset][band].active = int(payload[2]) | int(payload[3])<<8
		d.eqBWs[preset][band].active = int(payload[4]) | int(payload[5])<<8
		d.success(byte(op), payload[0], payload[1])

	case protocol.OpGetEQPresetFreqBW:
		preset, band := payload[0]-1, payload[1]-1
		f, bw := d.eqFreqs[preset][band], d.eqBWs[preset][band]
		d.success(byte(op), payload[0], payload[1],
			byte(f.active), byte(f.active>>8), byte(bw.active), byte(bw.active>>8),
			byte(f.saved), byte(f.saved>>8), byte(bw.saved), byte(bw.saved>>8))

	case protocol.OpSetMicEQPreset:
		d.micEQ.active = int(payload[0])
		d.success(payload[0])

	case protocol.OpGetMicEQPreset:
		d.success(byte(op), byte(d.micEQ.active), byte(d.micEQ.saved))

	case protocol.OpGetBalance:
		d.success(byte(d.balance))

	case protocol.OpSetDefaultBalance:
		d.defBalance.active = int(payload[0])
		d.balance = int(payload[0])
		d.success(byte(op))

	case protocol.OpGetDefaultBalance:
		v := d.defBalance.active
		if payload[0] == 1 {
			v = d.defBalance.saved
		}
		d.success(byte(v))

	case protocol.OpSetAutoShutoffTimeout:
		d.autoShutoff.active = int(payload[0])
		d.success(byte(op))

	case protocol.OpGetAutoShutoffTimeout:
		d.success(byte(d.autoShutoff.active))

	case protocol.OpSetBrightness:
		d.brightness.active = int(payload[0])
		d.success(byte(op))

	case protocol.OpGetBrightness:
		d.success(byte(d.brightness.active))

	case protocol.OpSetAlertVolume:
		d.alertVolume.active = int(payload[0])
		d.success(byte(op))

	case protocol.OpGetAlertVolume:
		v := d.alertVolume.active
		if payload[0] == 1 {
			v = d.alertVolume.saved
		}
		d.success(byte(v))

	case protocol.OpGetBatteryStatus:
		d.success(d.battery)

	case protocol.OpGetHeadsetStatus:
		d.success(d.headset)

	default:
		// The real device reports an error with a descriptive payload
		// for reserved opcodes such as 0x83.
		d.failure([]byte("Slave ACK Timeout")...)
	}
}

func (d *simDevice) save() {
	for i := range d.sliders {
		d.sliders[i].saved = d.sliders[i].active
	}
	d.noiseGate.saved = d.noiseGate.active
	d.micEQ.saved = d.micEQ.active
	d.activeEQ.saved = d.activeEQ.active
	d.defBalance.saved = d.defBalance.active
	d.alertVolume.saved = d.alertVolume.active
	d.autoShutoff.saved = d.autoShutoff.active
	d.brightness.saved = d.brightness.active
	for p := 0; p < 3; p++ {
		d.eqNames[p].saved = d.eqNames[p].active
		for b := 0; b < 5; b++ {
			d.eqGains[p][b].saved = d.eqGains[p][b].active
			d.eqFreqs[p][b].saved = d.eqFreqs[p][b].active
			d.eqBWs[p][b].saved = d.eqBWs[p][b].active
		}
	}
}

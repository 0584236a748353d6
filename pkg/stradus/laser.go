// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Openscope Instruments

package stradus

import (
	"fmt"
	"sync"
)

// Laser is the device facade. It owns its Transport exclusively and
// serializes every exchange: interleaving two write/read pairs on one
// physical line corrupts both responses.
//
// Get and Set return raw payload strings throughout; device-side
// formatting and rounding are passed through untouched. The typed
// accessors layer one decode step on top and always query live.
// Nothing is cached, since device state can change on the hardware
// side at any time.
type Laser struct {
	mu sync.Mutex
	t  Transport
}

// New wraps an already-open transport. Most callers want Open.
func New(t Transport) *Laser {
	return &Laser{t: t}
}

// Open connects to the laser described by cfg and puts the serial
// interface into a known state (echo and prompt disabled). The port
// is released on every failure path.
func Open(cfg Config) (*Laser, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t, err := OpenSerial(cfg)
	if err != nil {
		return nil, err
	}
	l := New(t)
	if err := l.setup(); err != nil {
		t.Close()
		return nil, fmt.Errorf("connected to %s but the device is not responding: %w", cfg.Port, err)
	}
	return l, nil
}

// setup disables reply echo and the prompt prefix so that replies
// come back in the bare `MNEMONIC=value` form the decoder expects.
func (l *Laser) setup() error {
	if _, err := l.Set(CmdEcho, BoolOff); err != nil {
		return err
	}
	_, err := l.Set(CmdPrompt, BoolOff)
	return err
}

// Close releases the underlying serial channel, unblocking any
// in-flight exchange with ErrChannelClosed.
func (l *Laser) Close() error {
	return l.t.Close()
}

// Get requests a setting from the device and returns the raw payload
// string with the echoed mnemonic prefix stripped.
func (l *Laser) Get(id CommandID) (string, error) {
	spec, err := Lookup(id)
	if err != nil {
		return "", err
	}
	line, err := EncodeQuery(spec)
	if err != nil {
		return "", err
	}
	payload, err := l.exchange(spec, line)
	if err != nil {
		return "", err
	}
	return TrimEcho(spec, payload), nil
}

// Set issues a command with a value. The device typically echoes the
// accepted value or an acknowledgement, returned as-is.
func (l *Laser) Set(id CommandID, value string) (string, error) {
	spec, err := Lookup(id)
	if err != nil {
		return "", err
	}
	line, err := EncodeSet(spec, value)
	if err != nil {
		return "", err
	}
	payload, err := l.exchange(spec, line)
	if err != nil {
		return "", err
	}
	return TrimEcho(spec, payload), nil
}

// exchange is the single critical section: one write/read pair at a
// time per connection.
func (l *Laser) exchange(spec CommandSpec, line string) (string, error) {
	l.mu.Lock()
	raw, err := l.t.Exchange(line)
	l.mu.Unlock()
	if err != nil {
		return "", fmt.Errorf("%s: %w", spec.Name, err)
	}
	payload, err := DecodeReply(raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", spec.Name, err)
	}
	return payload, nil
}

// Enable turns laser emission on.
func (l *Laser) Enable() error {
	_, err := l.Set(CmdLaserEmission, BoolOn)
	return err
}

// Disable turns laser emission off.
func (l *Laser) Disable() error {
	_, err := l.Set(CmdLaserEmission, BoolOff)
	return err
}

// State returns the laser operating state. StateFault covers many
// conditions; Faults lists the specific ones. Note the underlying
// fault code query also clears latched faults on the device.
func (l *Laser) State() (LaserState, error) {
	raw, err := l.Get(CmdFaultCode)
	if err != nil {
		return 0, err
	}
	return DecodeState(raw)
}

// Faults returns the list of active fault descriptions, empty when no
// faults are present. Computed fresh from a single fault code query.
func (l *Laser) Faults() ([]string, error) {
	raw, err := l.Get(CmdFaultCode)
	if err != nil {
		return nil, err
	}
	return DecodeFaults(raw)
}

// InterlockClosed reports whether the external safety key is turned
// and the laser is armed.
func (l *Laser) InterlockClosed() (bool, error) {
	return l.getBool(CmdInterlockStatus)
}

// IsEmitting reports whether the laser is currently emitting.
func (l *Laser) IsEmitting() (bool, error) {
	return l.getBool(CmdLaserEmission)
}

// Wavelength returns the laser wavelength in nm. Constant per
// physical unit, but still queried live; the facade holds no device
// metadata.
func (l *Laser) Wavelength() (string, error) {
	return l.Get(CmdWavelength)
}

// Temperature returns the base plate temperature.
func (l *Laser) Temperature() (string, error) {
	return l.Get(CmdBasePlateTemp)
}

// Power returns the measured laser power in mW.
func (l *Laser) Power() (string, error) {
	return l.Get(CmdLaserPower)
}

// MaxPower returns the maximum laser power.
func (l *Laser) MaxPower() (string, error) {
	return l.Get(CmdMaxPower)
}

// PowerSetpoint returns the active power setpoint: pulse power while
// pulse mode is on, otherwise the laser power setting.
func (l *Laser) PowerSetpoint() (string, error) {
	pulsed, err := l.getBool(CmdPulseMode)
	if err != nil {
		return "", err
	}
	if pulsed {
		return l.Get(CmdPulsePower)
	}
	return l.Get(CmdLaserPowerSetting)
}

// SetPowerSetpoint sets the power setpoint in mW, routing to pulse
// power while pulse mode is on.
func (l *Laser) SetPowerSetpoint(mw float64) error {
	pulsed, err := l.getBool(CmdPulseMode)
	if err != nil {
		return err
	}
	id := CmdLaserPower
	if pulsed {
		id = CmdPulsePower
	}
	_, err = l.Set(id, FormatNumber(mw))
	return err
}

// PulseModeEnabled reports whether digital modulation is on.
func (l *Laser) PulseModeEnabled() (bool, error) {
	return l.getBool(CmdPulseMode)
}

// SetPulseMode switches digital modulation. Pulse mode requires
// constant current mode; enabling it in constant power mode is
// refused without touching the device setting.
func (l *Laser) SetPulseMode(on bool) error {
	if on {
		constCurrent, err := l.getBool(CmdDriverControlMode)
		if err != nil {
			return err
		}
		if !constCurrent {
			return fmt.Errorf("pulse mode requires constant current mode")
		}
	}
	_, err := l.Set(CmdPulseMode, boolValue(on))
	return err
}

// ConstantCurrentEnabled reports whether the driver is in constant
// current mode.
func (l *Laser) ConstantCurrentEnabled() (bool, error) {
	return l.getBool(CmdDriverControlMode)
}

// SetConstantCurrent switches between constant power (off) and
// constant current (on) drive modes.
func (l *Laser) SetConstantCurrent(on bool) error {
	_, err := l.Set(CmdDriverControlMode, boolValue(on))
	return err
}

// EmissionDelayEnabled reports the 5-second CDRH emission delay state.
func (l *Laser) EmissionDelayEnabled() (bool, error) {
	return l.getBool(CmdEmissionDelay)
}

// SetEmissionDelay switches the 5-second CDRH emission delay.
func (l *Laser) SetEmissionDelay(on bool) error {
	_, err := l.Set(CmdEmissionDelay, boolValue(on))
	return err
}

// ExternalControlEnabled reports whether output power follows the
// external analog input.
func (l *Laser) ExternalControlEnabled() (bool, error) {
	return l.getBool(CmdExternalPowerControl)
}

// SetExternalControl routes power control to the external analog
// input: 0 to max output power maps linearly to 0-5V.
func (l *Laser) SetExternalControl(on bool) error {
	_, err := l.Set(CmdExternalPowerControl, boolValue(on))
	return err
}

// ClearFaults clears the stored fault code.
func (l *Laser) ClearFaults() error {
	_, err := l.Set(CmdClearFaults, "")
	return err
}

func (l *Laser) getBool(id CommandID) (bool, error) {
	raw, err := l.Get(id)
	if err != nil {
		return false, err
	}
	switch raw {
	case BoolOn:
		return true, nil
	case BoolOff:
		return false, nil
	}
	return false, fmt.Errorf("%s: unrecognized boolean reply %q", id, raw)
}

func boolValue(on bool) string {
	if on {
		return BoolOn
	}
	return BoolOff
}

// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Openscope Instruments

package stradus

import (
	"strconv"
	"strings"
)

// LaserState is the enumerated operating state of the device, derived
// from the fault code query. Codes above StateFault all collapse to
// StateFault; the specific conditions are available via DecodeFaults.
type LaserState int

const (
	StateEmissionActive LaserState = iota
	StateStandby
	StateWarmup
	StateFault
)

// String returns the human-readable state name.
func (s LaserState) String() string {
	switch s {
	case StateEmissionActive:
		return "EMISSION_ACTIVE"
	case StateStandby:
		return "STANDBY"
	case StateWarmup:
		return "WARMUP"
	case StateFault:
		return "FAULT"
	}
	return "UNKNOWN"
}

// DecodeState maps a fault code reply to the operating state. Codes
// below StateFault name a state directly; anything higher carries
// fault bits and decodes to StateFault. Tokens that are not an
// unsigned decimal fail with *UnknownStateError: an unrecognized
// status may indicate protocol drift and must never be defaulted.
func DecodeState(raw string) (LaserState, error) {
	code, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, &UnknownStateError{Raw: raw}
	}
	if code > uint64(StateFault) {
		return StateFault, nil
	}
	return LaserState(code), nil
}

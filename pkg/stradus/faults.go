// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Openscope Instruments

package stradus

import (
	"fmt"
	"strconv"
	"strings"
)

// FaultCode is the bitfield reported by the fault code query. Many
// bits can be asserted at once. Values below FaultValueOutOfRange
// describe the operating state rather than a fault.
type FaultCode uint32

const (
	FaultValueOutOfRange FaultCode = 1 << (iota + 2)
	FaultInvalidCommand
	FaultInterlockOpen
	FaultTECOff
	FaultDiodeOverCurrent
	FaultDiodeTemperature
	FaultBasePlateTemperature
	FaultPowerLockLost
	FaultEEPROM
	FaultI2C
	FaultFan
	FaultPowerSupply
	FaultTemperature
	FaultDiodeEndOfLife
)

var faultDescriptions = map[FaultCode]string{
	FaultValueOutOfRange:      "value out of range",
	FaultInvalidCommand:       "invalid command",
	FaultInterlockOpen:        "interlock open",
	FaultTECOff:               "thermo-electric cooler off",
	FaultDiodeOverCurrent:     "diode over-current",
	FaultDiodeTemperature:     "diode temperature fault",
	FaultBasePlateTemperature: "base plate temperature fault",
	FaultPowerLockLost:        "power lock lost",
	FaultEEPROM:               "EEPROM error",
	FaultI2C:                  "I2C error",
	FaultFan:                  "fan fault",
	FaultPowerSupply:          "power supply fault",
	FaultTemperature:          "temperature fault",
	FaultDiodeEndOfLife:       "diode end-of-life indicator",
}

// Description returns the human-readable text for a single fault bit,
// or a hex rendering for bits without a registered description.
func (f FaultCode) Description() string {
	if desc, ok := faultDescriptions[f]; ok {
		return desc
	}
	return fmt.Sprintf("unrecognized fault 0x%04X", uint32(f))
}

// DecodeFaults expands a fault code reply into an ordered list of
// fault descriptions, lowest bit first; empty when no faults are
// present. Set bits without a registered description pass through as
// opaque hex codes so that no fault is ever silently dropped.
func DecodeFaults(raw string) ([]string, error) {
	code, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("fault code reply %q is not a number", raw)
	}
	var faults []string
	for bit := 2; bit < 32; bit++ {
		f := FaultCode(1) << bit
		if FaultCode(code)&f == 0 {
			continue
		}
		faults = append(faults, f.Description())
	}
	return faults, nil
}

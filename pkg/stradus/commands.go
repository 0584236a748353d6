// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Openscope Instruments

package stradus

import "fmt"

// CommandID is the symbolic identifier for a device command or query.
// Every identifier maps to exactly one wire mnemonic through the
// registry; no other component hardcodes a mnemonic string.
type CommandID int

// Settable commands. Most are also queryable; see the registry table
// for each command's direction capability and value kind.
const (
	CmdEcho CommandID = iota
	CmdPrompt
	CmdDriverControlMode
	CmdClearFaults
	CmdRecallFaults
	CmdEmissionDelay
	CmdExternalPowerControl
	CmdLaserEmission
	CmdLaserPower
	CmdLaserCurrent
	CmdPulsePower
	CmdPulseMode
	CmdTEC
)

// Query-only identifiers.
const (
	CmdBasePlateTemp CommandID = iota + 100
	CmdSystemFirmwareVersion
	CmdSystemProtocolVersion
	CmdComputerControl
	CmdFaultCode
	CmdFaultDescription
	CmdFirmwareProtocol
	CmdFirmwareVersion
	CmdHelp
	CmdInterlockStatus
	CmdLaserCurrentSetting
	CmdOperatingHours
	CmdLaserID
	CmdLaserPowerSetting
	CmdWavelength
	CmdMaxPower
	CmdOpticalBlockTemp
	CmdOpticalBlockTempSetting
	CmdRatedPower
)

// Direction is the exchange direction a command supports.
type Direction int

const (
	DirQuery Direction = 1 << iota
	DirSet
)

// DirBoth marks commands that are both queryable and settable.
const DirBoth = DirQuery | DirSet

// ValueKind classifies the value a set exchange carries.
type ValueKind int

const (
	// KindNone marks action commands that take no value.
	KindNone ValueKind = iota
	// KindBool values are "0" or "1" on the wire.
	KindBool
	// KindNumeric values are decimal, always point-separated.
	KindNumeric
	// KindText values are free-form printable ASCII.
	KindText
)

// CommandSpec is one registry entry: the wire mnemonic plus the
// metadata the codec needs. Mnemonics are stable wire constants.
type CommandSpec struct {
	ID       CommandID
	Name     string
	Mnemonic string
	Dir      Direction
	Kind     ValueKind
}

var commandTable = map[CommandID]CommandSpec{
	CmdEcho:                 {CmdEcho, "Echo", "ECHO", DirBoth, KindBool},
	CmdPrompt:               {CmdPrompt, "Prompt", "PROMPT", DirSet, KindBool},
	CmdDriverControlMode:    {CmdDriverControlMode, "DriverControlMode", "C", DirBoth, KindBool},
	CmdClearFaults:          {CmdClearFaults, "ClearFaults", "CFC", DirSet, KindNone},
	CmdRecallFaults:         {CmdRecallFaults, "RecallFaults", "RFC", DirSet, KindNone},
	CmdEmissionDelay:        {CmdEmissionDelay, "EmissionDelay", "DELAY", DirBoth, KindBool},
	CmdExternalPowerControl: {CmdExternalPowerControl, "ExternalPowerControl", "EPC", DirBoth, KindBool},
	CmdLaserEmission:        {CmdLaserEmission, "LaserEmission", "LE", DirBoth, KindBool},
	CmdLaserPower:           {CmdLaserPower, "LaserPower", "LP", DirBoth, KindNumeric},
	CmdLaserCurrent:         {CmdLaserCurrent, "LaserCurrent", "LC", DirBoth, KindNumeric},
	CmdPulsePower:           {CmdPulsePower, "PulsePower", "PP", DirBoth, KindNumeric},
	CmdPulseMode:            {CmdPulseMode, "PulseMode", "PUL", DirBoth, KindBool},
	CmdTEC:                  {CmdTEC, "TEC", "TEC", DirBoth, KindBool},

	CmdBasePlateTemp:           {CmdBasePlateTemp, "BasePlateTemp", "BPT", DirQuery, KindNumeric},
	CmdSystemFirmwareVersion:   {CmdSystemFirmwareVersion, "SystemFirmwareVersion", "SFV", DirQuery, KindText},
	CmdSystemProtocolVersion:   {CmdSystemProtocolVersion, "SystemProtocolVersion", "SPV", DirQuery, KindText},
	CmdComputerControl:         {CmdComputerControl, "ComputerControl", "CC", DirQuery, KindBool},
	CmdFaultCode:               {CmdFaultCode, "FaultCode", "FC", DirQuery, KindNumeric},
	CmdFaultDescription:        {CmdFaultDescription, "FaultDescription", "FD", DirQuery, KindText},
	CmdFirmwareProtocol:        {CmdFirmwareProtocol, "FirmwareProtocol", "FP", DirQuery, KindText},
	CmdFirmwareVersion:         {CmdFirmwareVersion, "FirmwareVersion", "FV", DirQuery, KindText},
	CmdHelp:                    {CmdHelp, "Help", "H", DirQuery, KindText},
	CmdInterlockStatus:         {CmdInterlockStatus, "InterlockStatus", "IL", DirQuery, KindBool},
	CmdLaserCurrentSetting:     {CmdLaserCurrentSetting, "LaserCurrentSetting", "LCS", DirQuery, KindNumeric},
	CmdOperatingHours:          {CmdOperatingHours, "OperatingHours", "LH", DirQuery, KindNumeric},
	CmdLaserID:                 {CmdLaserID, "LaserID", "LI", DirQuery, KindText},
	CmdLaserPowerSetting:       {CmdLaserPowerSetting, "LaserPowerSetting", "LPS", DirQuery, KindNumeric},
	CmdWavelength:              {CmdWavelength, "Wavelength", "LW", DirQuery, KindNumeric},
	CmdMaxPower:                {CmdMaxPower, "MaxPower", "MAXP", DirQuery, KindNumeric},
	CmdOpticalBlockTemp:        {CmdOpticalBlockTemp, "OpticalBlockTemp", "OBT", DirQuery, KindNumeric},
	CmdOpticalBlockTempSetting: {CmdOpticalBlockTempSetting, "OpticalBlockTempSetting", "OBTS", DirQuery, KindNumeric},
	CmdRatedPower:              {CmdRatedPower, "RatedPower", "RP", DirQuery, KindNumeric},
}

// Lookup returns the CommandSpec registered for id.
func Lookup(id CommandID) (CommandSpec, error) {
	spec, ok := commandTable[id]
	if !ok {
		return CommandSpec{}, fmt.Errorf("%w: CommandID(%d)", ErrUnknownCommand, int(id))
	}
	return spec, nil
}

// String returns the symbolic name of the identifier.
func (id CommandID) String() string {
	if spec, ok := commandTable[id]; ok {
		return spec.Name
	}
	return fmt.Sprintf("CommandID(%d)", int(id))
}

// CanQuery reports whether the command supports query exchanges.
func (s CommandSpec) CanQuery() bool { return s.Dir&DirQuery != 0 }

// CanSet reports whether the command supports set exchanges.
func (s CommandSpec) CanSet() bool { return s.Dir&DirSet != 0 }

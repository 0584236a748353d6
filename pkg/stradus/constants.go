// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Openscope Instruments

// Package stradus implements an RS232 command/response client for
// Vortran Stradus lasers.
//
// The wire protocol is ASCII line-oriented: requests are
// `<mnemonic>[=<value>]\r`, replies are `\r\n`-terminated lines that
// echo the mnemonic followed by the result. The package is split into
// a command registry (commands.go), a purely syntactic line codec
// (encoder.go, decoder.go), a serial transport (transport.go), the
// device facade (laser.go) and the state/fault interpreter
// (status.go, faults.go).
package stradus

// Wire framing. Requests end with a bare carriage return; the device
// terminates every reply line with CRLF and frames the payload with a
// leading blank line.
const (
	RequestTerminator = "\r"
	ReplyTerminator   = "\r\n"
	QuerySigil        = "?"
	SetSeparator      = "="

	// ErrorPrefix marks a device error reply, e.g. "!UK" for an
	// unknown command.
	ErrorPrefix = "!"
)

// Serial line defaults per the Stradus manual: 19200 baud, 8 data
// bits, no parity, one stop bit, no flow control.
const (
	DefaultBaudRate  = 19200
	DefaultTimeoutMs = 5000
)

// Boolean wire values. The device encodes every on/off setting as
// "1"/"0".
const (
	BoolOn  = "1"
	BoolOff = "0"
)

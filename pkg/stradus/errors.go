// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Openscope Instruments

package stradus

import (
	"errors"
	"fmt"
)

// Sentinel errors for the driver's failure taxonomy. All of them are
// surfaced to the immediate caller; the driver never retries.
var (
	// ErrUnknownCommand reports a symbolic identifier with no
	// registry entry. Raised before any transport exchange.
	ErrUnknownCommand = errors.New("unknown command identifier")

	// ErrUnsupportedDirection reports an identifier used with the
	// wrong get/set direction.
	ErrUnsupportedDirection = errors.New("direction not supported by command")

	// ErrInvalidValue reports a set value that fails validation for
	// the command's value kind. Raised before any transport exchange.
	ErrInvalidValue = errors.New("invalid command value")

	// ErrTimeout reports that no terminated reply line arrived
	// within the configured bound.
	ErrTimeout = errors.New("exchange timed out")

	// ErrChannelClosed reports that the serial channel is
	// unavailable, including an in-flight read unblocked by Close.
	ErrChannelClosed = errors.New("serial channel closed")
)

// DeviceError is a reply the device itself flagged as an error. The
// raw token is carried verbatim for caller diagnosis.
type DeviceError struct {
	Token string
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("device error reply %q", e.Token)
}

// UnknownStateError reports a status reply the interpreter cannot
// classify. Unknown states may indicate protocol drift or an
// unhandled hardware revision, so they are never silently defaulted.
type UnknownStateError struct {
	Raw string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unrecognized laser state %q", e.Raw)
}

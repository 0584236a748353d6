// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Openscope Instruments

package stradus

import "strings"

// DecodeReply strips line termination from a raw reply and classifies
// it. Replies carrying the device error prefix come back as a
// *DeviceError holding the raw token; everything else is returned as
// the trimmed payload, unmodified. The decode is purely syntactic;
// semantic interpretation belongs to the facade and the interpreter.
func DecodeReply(raw string) (string, error) {
	line := strings.TrimSpace(strings.TrimRight(raw, ReplyTerminator))
	if strings.HasPrefix(line, ErrorPrefix) {
		return "", &DeviceError{Token: line}
	}
	return line, nil
}

// TrimEcho removes the echoed mnemonic prefix the device prepends to
// reply payloads, e.g. "?LW= 488" -> "488". Payloads without the
// prefix pass through unchanged.
func TrimEcho(spec CommandSpec, payload string) string {
	for _, prefix := range []string{
		QuerySigil + spec.Mnemonic + SetSeparator,
		spec.Mnemonic + SetSeparator,
	} {
		if strings.HasPrefix(payload, prefix) {
			return strings.TrimSpace(payload[len(prefix):])
		}
	}
	return payload
}

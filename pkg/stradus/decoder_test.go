package stradus

import (
	"errors"
	"testing"
)

func TestDecodeReply(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"strips terminator", "488\r\n", "488"},
		{"strips surrounding space", " 488 \r\n", "488"},
		{"no terminator", "488", "488"},
		{"blank line", "\r\n", ""},
		{"echoed prefix untouched", "?LW= 488\r\n", "?LW= 488"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeReply(tt.raw)
			if err != nil {
				t.Fatalf("DecodeReply(%q) error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("DecodeReply(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDecodeReply_DeviceError(t *testing.T) {
	_, err := DecodeReply("!UK\r\n")
	var devErr *DeviceError
	if !errors.As(err, &devErr) {
		t.Fatalf("DecodeReply error = %v, want *DeviceError", err)
	}
	if devErr.Token != "!UK" {
		t.Errorf("DeviceError.Token = %q, want %q", devErr.Token, "!UK")
	}
}

func TestTrimEcho(t *testing.T) {
	wavelength := mustLookup(t, CmdWavelength)
	power := mustLookup(t, CmdLaserPower)

	tests := []struct {
		name    string
		spec    CommandSpec
		payload string
		want    string
	}{
		{"query echo with space", wavelength, "?LW= 488", "488"},
		{"query echo", wavelength, "?LW=488", "488"},
		{"set echo", power, "LP=12.5", "12.5"},
		{"bare payload", wavelength, "488", "488"},
		{"foreign prefix untouched", wavelength, "LP=12.5", "LP=12.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimEcho(tt.spec, tt.payload); got != tt.want {
				t.Errorf("TrimEcho(%s, %q) = %q, want %q", tt.spec.Name, tt.payload, got, tt.want)
			}
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Openscope Instruments

package stradus

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"go.bug.st/serial"
)

// Transport is a byte-oriented request/response channel: one write
// followed by one blocking read of a single terminated line. The
// driver performs no retries; retry policy belongs to the caller.
type Transport interface {
	Exchange(line string) (string, error)
	Close() error
}

// readPollInterval bounds individual port reads so the overall
// exchange deadline is honored promptly.
const readPollInterval = 50 * time.Millisecond

// SerialTransport drives a single RS232 port. It is created via
// OpenSerial and owned exclusively by one Laser; serialization of
// concurrent exchanges is the facade's job.
type SerialTransport struct {
	port    serial.Port
	timeout time.Duration
	log     *slog.Logger
}

// OpenSerial opens the serial port described by cfg with the framing
// the device expects (8 data bits, no parity, one stop bit) and
// flushes any stale input.
func OpenSerial(cfg Config) (*SerialTransport, error) {
	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(cfg.Port, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Port, err)
	}
	if err := port.SetReadTimeout(readPollInterval); err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to configure read timeout on %s: %w", cfg.Port, err)
	}
	if err := port.ResetInputBuffer(); err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to flush input buffer on %s: %w", cfg.Port, err)
	}

	return newSerialTransport(port, cfg.Timeout(), cfg.Logger), nil
}

func newSerialTransport(port serial.Port, timeout time.Duration, log *slog.Logger) *SerialTransport {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SerialTransport{port: port, timeout: timeout, log: log}
}

// Exchange writes one request line and reads the next terminated,
// non-blank reply line. The device frames payloads with a leading
// blank line; blank lines are consumed within the same deadline.
func (t *SerialTransport) Exchange(line string) (string, error) {
	t.log.Debug("tx", "line", line)

	if _, err := t.port.Write([]byte(line)); err != nil {
		return "", fmt.Errorf("write failed: %v: %w", err, ErrChannelClosed)
	}

	deadline := time.Now().Add(t.timeout)
	for {
		reply, err := t.readLine(deadline)
		if err != nil {
			return "", err
		}
		if strings.TrimRight(reply, ReplyTerminator) != "" {
			t.log.Debug("rx", "line", reply)
			return reply, nil
		}
	}
}

// readLine reads bytes until a line feed arrives or the deadline
// passes. Individual reads are bounded by readPollInterval; a read
// error means the channel went away, which also unblocks an in-flight
// exchange when the port is closed from another goroutine.
func (t *SerialTransport) readLine(deadline time.Time) (string, error) {
	var line []byte
	buf := make([]byte, 1)
	for {
		if time.Now().After(deadline) {
			return "", fmt.Errorf("no terminated reply within %v: %w", t.timeout, ErrTimeout)
		}
		n, err := t.port.Read(buf)
		if err != nil {
			return "", fmt.Errorf("read failed: %v: %w", err, ErrChannelClosed)
		}
		if n == 0 {
			continue
		}
		line = append(line, buf[0])
		if buf[0] == '\n' {
			return string(line), nil
		}
	}
}

// Close releases the serial port. Safe on every exit path; an
// in-flight read unblocks with ErrChannelClosed.
func (t *SerialTransport) Close() error {
	return t.port.Close()
}

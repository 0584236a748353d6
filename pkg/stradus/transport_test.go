// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Openscope Instruments

package stradus

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.bug.st/serial"
)

// stubPort is a scriptable serial.Port. Read and Write default to a
// silent line (zero-byte reads, accepted writes).
type stubPort struct {
	readFn  func(p []byte) (int, error)
	writeFn func(p []byte) (int, error)
	closed  int32
}

func (s *stubPort) Read(p []byte) (int, error) {
	if atomic.LoadInt32(&s.closed) == 1 {
		return 0, errors.New("port closed")
	}
	if s.readFn != nil {
		return s.readFn(p)
	}
	time.Sleep(time.Millisecond)
	return 0, nil
}

func (s *stubPort) Write(p []byte) (int, error) {
	if s.writeFn != nil {
		return s.writeFn(p)
	}
	return len(p), nil
}

func (s *stubPort) Close() error {
	atomic.StoreInt32(&s.closed, 1)
	return nil
}

func (s *stubPort) SetMode(*serial.Mode) error         { return nil }
func (s *stubPort) SetReadTimeout(time.Duration) error { return nil }
func (s *stubPort) SetDTR(bool) error                  { return nil }
func (s *stubPort) SetRTS(bool) error                  { return nil }
func (s *stubPort) ResetInputBuffer() error            { return nil }
func (s *stubPort) ResetOutputBuffer() error           { return nil }
func (s *stubPort) Drain() error                       { return nil }
func (s *stubPort) Break(time.Duration) error          { return nil }
func (s *stubPort) GetModemStatusBits() (*serial.ModemStatusBits, error) {
	return &serial.ModemStatusBits{}, nil
}

// scriptedReads feeds a canned byte stream one byte per Read call.
func scriptedReads(stream string) func(p []byte) (int, error) {
	data := []byte(stream)
	pos := 0
	return func(p []byte) (int, error) {
		if pos >= len(data) {
			time.Sleep(time.Millisecond)
			return 0, nil
		}
		p[0] = data[pos]
		pos++
		return 1, nil
	}
}

func TestSerialTransport_Exchange(t *testing.T) {
	var written []byte
	port := &stubPort{
		readFn: scriptedReads("\r\n?LW= 488\r\n"),
		writeFn: func(p []byte) (int, error) {
			written = append(written, p...)
			return len(p), nil
		},
	}
	tr := newSerialTransport(port, time.Second, nil)

	reply, err := tr.Exchange("?LW\r")
	if err != nil {
		t.Fatalf("Exchange error: %v", err)
	}
	// The leading blank framing line is consumed.
	if reply != "?LW= 488\r\n" {
		t.Errorf("Exchange = %q, want %q", reply, "?LW= 488\r\n")
	}
	if string(written) != "?LW\r" {
		t.Errorf("wrote %q, want %q", written, "?LW\r")
	}
}

func TestSerialTransport_Timeout(t *testing.T) {
	port := &stubPort{} // never produces a terminated line
	tr := newSerialTransport(port, 30*time.Millisecond, nil)

	start := time.Now()
	_, err := tr.Exchange("?LW\r")
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("Exchange error = %v, want ErrTimeout", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("timeout took %v, bound was 30ms", elapsed)
	}
}

func TestSerialTransport_PartialLineTimesOut(t *testing.T) {
	// Bytes arrive but no terminator ever does.
	port := &stubPort{readFn: scriptedReads("?LW= 48")}
	tr := newSerialTransport(port, 30*time.Millisecond, nil)

	_, err := tr.Exchange("?LW\r")
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("Exchange error = %v, want ErrTimeout", err)
	}
}

func TestSerialTransport_WriteFailure(t *testing.T) {
	port := &stubPort{
		writeFn: func(p []byte) (int, error) {
			return 0, errors.New("input/output error")
		},
	}
	tr := newSerialTransport(port, time.Second, nil)

	_, err := tr.Exchange("?LW\r")
	if !errors.Is(err, ErrChannelClosed) {
		t.Errorf("Exchange error = %v, want ErrChannelClosed", err)
	}
}

func TestSerialTransport_CloseUnblocksRead(t *testing.T) {
	port := &stubPort{}
	tr := newSerialTransport(port, 10*time.Second, nil)

	done := make(chan error, 1)
	go func() {
		_, err := tr.Exchange("?LW\r")
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	if err := tr.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	select {
	case err := <-done:
		if !errors.Is(err, ErrChannelClosed) {
			t.Errorf("Exchange error = %v, want ErrChannelClosed", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Close did not unblock the in-flight read")
	}
}

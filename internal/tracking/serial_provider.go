// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package tracking

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	serial "github.com/jacobsa/go-serial/serial"

	"github.com/relabs-tech/hand_computer/internal/logsink"
	"github.com/relabs-tech/hand_computer/internal/skeleton"
)

// ErrNoSnapshot reports that no complete pose line has arrived from
// the bridge yet.
var ErrNoSnapshot = errors.New("no pose snapshot received")

// SerialProvider reads pose lines from a serial glove bridge. A
// background reader keeps the latest snapshot; Joints/Root return it
// without blocking, as the pipeline must never wait on I/O.
type SerialProvider struct {
	side string
	port io.ReadWriteCloser
	sink logsink.Sink

	mu      sync.RWMutex
	have    bool
	tracked bool
	joints  []skeleton.JointPose

	closeOnce sync.Once
}

// NewSerialProvider opens the serial port and starts the line
// reader. side selects which hand's lines to accept; lines for the
// other hand are ignored.
func NewSerialProvider(side, portName string, baudRate uint, sink logsink.Sink) (*SerialProvider, error) {
	opts := serial.OpenOptions{
		PortName:              portName,
		BaudRate:              baudRate,
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       1,
		ParityMode:            serial.PARITY_NONE,
		InterCharacterTimeout: 0,
	}

	port, err := serial.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("tracking serial port %s: %w", portName, err)
	}
	sink.Logf("tracking serial", "port opened on %s at %d baud", portName, baudRate)

	p := &SerialProvider{side: side, port: port, sink: sink}
	go p.readLoop()
	return p, nil
}

func (p *SerialProvider) readLoop() {
	reader := bufio.NewReader(p.port)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			p.sink.Logf("tracking serial", "read error: %v", err)
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		snap, err := parsePoseLine(line)
		if err != nil {
			// noisy bridge or partial lines; skip and keep reading
			p.sink.Logf("tracking serial", "bad pose line: %v", err)
			continue
		}
		if snap.side != p.side {
			continue
		}

		p.mu.Lock()
		p.have = true
		p.tracked = snap.tracked
		p.joints = snap.joints
		p.mu.Unlock()
	}
}

func (p *SerialProvider) Side() string { return p.side }

func (p *SerialProvider) Tracked() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.have && p.tracked
}

func (p *SerialProvider) Joints() ([]skeleton.JointPose, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.have {
		return nil, ErrNoSnapshot
	}
	out := make([]skeleton.JointPose, len(p.joints))
	copy(out, p.joints)
	return out, nil
}

func (p *SerialProvider) Root() (skeleton.JointPose, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.have || len(p.joints) <= skeleton.Wrist {
		return skeleton.JointPose{}, ErrNoSnapshot
	}
	return p.joints[skeleton.Wrist], nil
}

// Close releases the serial port. Safe to call more than once.
func (p *SerialProvider) Close() error {
	var err error
	p.closeOnce.Do(func() {
		err = p.port.Close()
	})
	return err
}

// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package telemetry

import (
	"fmt"
	"io"
	"net"

	"github.com/relabs-tech/hand_computer/internal/logsink"
)

// Policy controls how a Broadcaster reacts to a failed send.
type Policy int

const (
	// FailOpen logs the failure and keeps attempting sends on
	// subsequent calls. Used for the angle stream, which tolerates
	// dropped telemetry.
	FailOpen Policy = iota
	// FailStop logs the failure and permanently disables the
	// broadcaster for the rest of the session. Used for the pose
	// stream, where repeated failure means the transport is broken
	// and not worth retrying every tick.
	FailStop
)

// Broadcaster owns a send-only transport handle and emits encoded
// telemetry lines to it. Failures never reach the caller; they are
// reported to the sink and handled per the configured Policy.
//
// The pipeline invokes Send strictly sequentially, so no locking.
type Broadcaster struct {
	name     string
	conn     io.WriteCloser
	policy   Policy
	sink     logsink.Sink
	disabled bool
	closed   bool
}

// New wraps an existing transport handle. The Broadcaster takes
// ownership of conn.
func New(name string, conn io.WriteCloser, policy Policy, sink logsink.Sink) *Broadcaster {
	return &Broadcaster{name: name, conn: conn, policy: policy, sink: sink}
}

// NewUDP dials a UDP destination ("host:port") and returns a
// Broadcaster that sends each line as one datagram.
func NewUDP(name, addr string, policy Policy, sink logsink.Sink) (*Broadcaster, error) {
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("%s: dial udp %s: %w", name, addr, err)
	}
	return New(name, conn, policy, sink), nil
}

// Send attempts a single fire-and-forget send of line. After a
// failure under FailStop, all further calls are no-ops.
func (b *Broadcaster) Send(line string) {
	if b.closed || b.disabled {
		return
	}

	if _, err := b.conn.Write([]byte(line)); err != nil {
		b.sink.Logf(b.name, "send failed: %v", err)
		if b.policy == FailStop {
			b.disabled = true
			b.sink.Logf(b.name, "transport disabled for the rest of the session")
		}
	}
}

// Close releases the transport handle. Safe to call more than once.
func (b *Broadcaster) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	return b.conn.Close()
}

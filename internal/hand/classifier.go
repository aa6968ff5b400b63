// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package hand

import (
	"fmt"

	"github.com/relabs-tech/hand_computer/internal/logsink"
)

// State is the discrete open/closed classification of the hand.
type State int

const (
	// StateUnknown is the initial state of every tracking session.
	StateUnknown State = iota
	// StateNotTracked means the provider's validity flag is false: a
	// normal transient condition.
	StateNotTracked
	// StateError means joint pose retrieval failed structurally: a
	// provider malfunction, distinct from not tracked.
	StateError
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateNotTracked:
		return "not tracked"
	case StateError:
		return "error"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// DefaultBendThreshold is the per-finger flexion threshold in
// degrees beyond which a finger counts as bent.
const DefaultBendThreshold = 40.0

// DefaultClosureThreshold is the bent-finger count at which the hand
// counts as closed.
const DefaultClosureThreshold = 4

// Classifier turns per-finger primary flexion angles into a stable
// discrete state. Emission is edge-triggered: Observe reports a
// change only when the state differs from the last observed one, so
// a noisy angle stream does not flood the transport.
//
// No hysteresis band is applied at the threshold; an angle
// oscillating across the exact threshold oscillates the state.
type Classifier struct {
	bendThreshold    float64
	closureThreshold int
	last             State
	sink             logsink.Sink
}

// NewClassifier creates a Classifier in the Unknown state.
func NewClassifier(bendThreshold float64, closureThreshold int, sink logsink.Sink) *Classifier {
	return &Classifier{
		bendThreshold:    bendThreshold,
		closureThreshold: closureThreshold,
		last:             StateUnknown,
		sink:             sink,
	}
}

// Reset returns the classifier to the Unknown state, as at the start
// of a tracking session.
func (c *Classifier) Reset() {
	c.last = StateUnknown
}

// Last returns the most recently observed state.
func (c *Classifier) Last() State {
	return c.last
}

// BentCount returns how many fingers exceed the bend threshold.
// The comparison is strictly greater-than.
func (c *Classifier) BentCount(flexions [5]float64) int {
	count := 0
	for _, f := range flexions {
		if f > c.bendThreshold {
			count++
		}
	}
	return count
}

// Classify maps the per-finger flexions to Open or Closed.
func (c *Classifier) Classify(flexions [5]float64) State {
	if c.BentCount(flexions) >= c.closureThreshold {
		return StateClosed
	}
	return StateOpen
}

// Observe records the state computed for this pass and reports
// whether it differs from the previous one. The first observation of
// a session always counts as a transition, so a consumer attaching
// at session start learns the current state immediately.
func (c *Classifier) Observe(s State) bool {
	if s == c.last {
		return false
	}
	c.sink.Logf("fist classifier", "state change: %s -> %s", c.last, s)
	c.last = s
	return true
}

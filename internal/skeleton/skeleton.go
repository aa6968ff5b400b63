// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package skeleton defines the fixed 25-joint hand layout and the
// per-finger joint chains used by the angle extractor.
package skeleton

import (
	"fmt"

	"github.com/relabs-tech/hand_computer/internal/orientation"
)

// Joint indices in the fixed 0-24 hand layout.
const (
	Wrist = 0

	ThumbMetacarpal = 1
	ThumbProximal   = 2
	ThumbDistal     = 3
	ThumbTip        = 4

	IndexMetacarpal   = 5
	IndexProximal     = 6
	IndexIntermediate = 7
	IndexDistal       = 8
	IndexTip          = 9

	MiddleMetacarpal   = 10
	MiddleProximal     = 11
	MiddleIntermediate = 12
	MiddleDistal       = 13
	MiddleTip          = 14

	RingMetacarpal   = 15
	RingProximal     = 16
	RingIntermediate = 17
	RingDistal       = 18
	RingTip          = 19

	PinkyMetacarpal   = 20
	PinkyProximal     = 21
	PinkyIntermediate = 22
	PinkyDistal       = 23
	PinkyTip          = 24

	NumJoints = 25
)

// JointPose is one joint's position and orientation in the shared
// tracking reference frame. Read-only to the pipeline.
type JointPose struct {
	Position    orientation.Vec3       `json:"pos"`
	Orientation orientation.Quaternion `json:"rot"`
}

// Finger identifies one digit.
type Finger int

const (
	Thumb Finger = iota
	Index
	Middle
	Ring
	Pinky

	NumFingers = 5
)

func (f Finger) String() string {
	switch f {
	case Thumb:
		return "thumb"
	case Index:
		return "index"
	case Middle:
		return "middle"
	case Ring:
		return "ring"
	case Pinky:
		return "pinky"
	default:
		return fmt.Sprintf("finger(%d)", int(f))
	}
}

// Chain is an ordered sequence of joint indices for one finger,
// proximal to distal.
type Chain []int

// Table maps each finger to its joint chain. Built once at startup
// and validated so per-frame code never re-checks the layout.
type Table struct {
	chains [NumFingers]Chain
}

// NewTable builds the joint index table for the fixed hand layout.
func NewTable() (*Table, error) {
	return newTable([NumFingers]Chain{
		Thumb:  {ThumbMetacarpal, ThumbProximal, ThumbDistal, ThumbTip},
		Index:  {IndexMetacarpal, IndexProximal, IndexIntermediate, IndexDistal, IndexTip},
		Middle: {MiddleMetacarpal, MiddleProximal, MiddleIntermediate, MiddleDistal, MiddleTip},
		Ring:   {RingMetacarpal, RingProximal, RingIntermediate, RingDistal, RingTip},
		Pinky:  {PinkyMetacarpal, PinkyProximal, PinkyIntermediate, PinkyDistal, PinkyTip},
	})
}

func newTable(chains [NumFingers]Chain) (*Table, error) {
	for f, chain := range chains {
		if err := validateChain(Finger(f), chain); err != nil {
			return nil, err
		}
	}
	return &Table{chains: chains}, nil
}

func validateChain(f Finger, chain Chain) error {
	want := 5
	if f == Thumb {
		want = 4
	}
	if len(chain) != want {
		return fmt.Errorf("%s chain: expected %d joints, got %d", f, want, len(chain))
	}
	prev := -1
	for _, idx := range chain {
		if idx < 0 || idx >= NumJoints {
			return fmt.Errorf("%s chain: joint index %d out of range [0,%d)", f, idx, NumJoints)
		}
		if idx <= prev {
			return fmt.Errorf("%s chain: joint indices must be strictly increasing, got %d after %d", f, idx, prev)
		}
		prev = idx
	}
	return nil
}

// Chain returns the joint chain for f. The returned slice must not
// be modified.
func (t *Table) Chain(f Finger) Chain {
	return t.chains[f]
}

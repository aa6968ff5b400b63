// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package hand

import (
	"errors"
	"fmt"

	"github.com/relabs-tech/hand_computer/internal/logsink"
	"github.com/relabs-tech/hand_computer/internal/orientation"
	"github.com/relabs-tech/hand_computer/internal/skeleton"
)

// ErrInsufficientData reports that the joint array is shorter than a
// finger chain requires. No partial frame is produced.
var ErrInsufficientData = errors.New("insufficient joint data")

// ErrPoseUnavailable reports that the provider could not supply a
// root pose.
var ErrPoseUnavailable = errors.New("wrist pose unavailable")

// Extractor walks each finger chain of a joint pose snapshot and
// computes the flexion/adduction pair per joint transition.
type Extractor struct {
	table *skeleton.Table
	sink  logsink.Sink
}

// NewExtractor creates an Extractor over a validated joint table.
func NewExtractor(table *skeleton.Table, sink logsink.Sink) *Extractor {
	return &Extractor{table: table, sink: sink}
}

// Frame computes the 16-angle frame for one snapshot of joint poses.
// If any chain reaches past the end of the array the whole frame is
// aborted: a consumer must never see a partially filled frame.
func (e *Extractor) Frame(joints []skeleton.JointPose) (Frame, error) {
	var f Frame

	thumb, err := e.thumbAngles(joints)
	if err != nil {
		return Frame{}, err
	}
	f.Thumb = thumb

	for _, fc := range []struct {
		finger skeleton.Finger
		out    *[3]float64
	}{
		{skeleton.Index, &f.Index},
		{skeleton.Middle, &f.Middle},
		{skeleton.Ring, &f.Ring},
		{skeleton.Pinky, &f.Pinky},
	} {
		angles, err := e.fingerAngles(fc.finger, joints)
		if err != nil {
			return Frame{}, err
		}
		*fc.out = angles
	}

	return f, nil
}

// thumbAngles computes the thumb's two Euler transitions: CMC
// (metacarpal to proximal) and MCP (proximal to distal). The thumb
// has one fewer chain segment, so no angle-axis step applies.
func (e *Extractor) thumbAngles(joints []skeleton.JointPose) ([4]float64, error) {
	chain, err := e.checkChain(skeleton.Thumb, joints)
	if err != nil {
		return [4]float64{}, err
	}

	cmcFlex, cmcAdd := eulerTransition(joints[chain[0]], joints[chain[1]])
	mcpFlex, mcpAdd := eulerTransition(joints[chain[1]], joints[chain[2]])

	return [4]float64{cmcFlex, cmcAdd, mcpFlex, mcpAdd}, nil
}

// fingerAngles computes a non-thumb finger's MCP flexion/adduction
// and the compensated PIP flexion.
func (e *Extractor) fingerAngles(finger skeleton.Finger, joints []skeleton.JointPose) ([3]float64, error) {
	chain, err := e.checkChain(finger, joints)
	if err != nil {
		return [3]float64{}, err
	}

	mcpFlex, mcpAdd := eulerTransition(joints[chain[0]], joints[chain[1]])

	// The PIP transition uses the angle-axis magnitude rather than an
	// Euler decomposition. Joint orientations share one reference
	// frame, so the raw PIP rotation already contains the MCP
	// contribution; adding the MCP flexion keeps the value cumulative
	// along the finger. The addition is the intended model, not
	// double-counting removal gone wrong.
	rel := relative(joints[chain[1]], joints[chain[2]])
	pipFlex := orientation.NormalizeDeg(rel.AngleDeg() + mcpFlex)

	// DIP would be the chain[2]->chain[3] transition:
	//   dipFlex := NormalizeDeg(relative(joints[chain[2]], joints[chain[3]]).AngleDeg() + pipFlex)
	// Not wired into the frame.

	return [3]float64{mcpFlex, mcpAdd, pipFlex}, nil
}

// checkChain verifies the snapshot covers every joint the chain
// needs, logging and failing fast otherwise.
func (e *Extractor) checkChain(finger skeleton.Finger, joints []skeleton.JointPose) (skeleton.Chain, error) {
	chain := e.table.Chain(finger)
	for _, idx := range chain {
		if idx >= len(joints) {
			e.sink.Logf("hand extractor", "insufficient data for %s: joint %d not in snapshot of %d", finger, idx, len(joints))
			return nil, fmt.Errorf("%w: %s needs joint %d, snapshot has %d", ErrInsufficientData, finger, idx, len(joints))
		}
	}
	return chain, nil
}

// Wrist extracts position, Euler orientation, and raw quaternion
// from the root pose. Reports ErrPoseUnavailable when the provider
// had none.
func (e *Extractor) Wrist(root *skeleton.JointPose) (Wrist, error) {
	if root == nil {
		e.sink.Log("wrist extractor", "pose unavailable")
		return Wrist{}, ErrPoseUnavailable
	}
	return Wrist{
		Position:    root.Position,
		Orientation: root.Orientation,
		Euler:       root.Orientation.EulerPose(),
	}, nil
}

// relative returns the child orientation expressed relative to the
// parent: inverse(parent) * child.
func relative(parent, child skeleton.JointPose) orientation.Quaternion {
	return parent.Orientation.Conjugate().Mul(child.Orientation)
}

// eulerTransition decomposes a joint transition into its flexion (X)
// and adduction (Y) components in degrees. Z is out of scope for
// this model.
func eulerTransition(parent, child skeleton.JointPose) (flexion, adduction float64) {
	x, y, _ := relative(parent, child).Euler()
	return x, y
}

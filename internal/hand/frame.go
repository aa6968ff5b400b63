// Package hand implements the joint angle extraction and fist
// classification pipeline for one tracked hand.
package hand

import (
	"github.com/relabs-tech/hand_computer/internal/orientation"
)

// Frame is the full output of one extraction pass: 16 joint angles
// in degrees. The thumb carries two Euler transitions (CMC, MCP);
// each other finger carries its MCP flexion/adduction pair and the
// compensated PIP flexion.
type Frame struct {
	// CMC flexion, CMC adduction, MCP flexion, MCP adduction.
	Thumb [4]float64 `json:"thumb"`
	// MCP flexion, MCP adduction, compensated PIP flexion.
	Index  [3]float64 `json:"index"`
	Middle [3]float64 `json:"middle"`
	Ring   [3]float64 `json:"ring"`
	Pinky  [3]float64 `json:"pinky"`
}

// Values returns the angles in fixed wire order: thumb(4), index(3),
// middle(3), ring(3), pinky(3).
func (f Frame) Values() [16]float64 {
	var v [16]float64
	copy(v[0:4], f.Thumb[:])
	copy(v[4:7], f.Index[:])
	copy(v[7:10], f.Middle[:])
	copy(v[10:13], f.Ring[:])
	copy(v[13:16], f.Pinky[:])
	return v
}

// PrimaryFlexions returns the per-finger flexion the classifier
// thresholds on: CMC flexion for the thumb, MCP flexion for the rest.
func (f Frame) PrimaryFlexions() [5]float64 {
	return [5]float64{f.Thumb[0], f.Index[0], f.Middle[0], f.Ring[0], f.Pinky[0]}
}

// Wrist is the extracted root pose: position, raw quaternion for
// transport, and Euler angles for display.
type Wrist struct {
	Position    orientation.Vec3       `json:"pos"`
	Orientation orientation.Quaternion `json:"rot"`
	Euler       orientation.Pose       `json:"euler"`
}

// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package tracking

import (
	"math"
	"time"

	"github.com/relabs-tech/hand_computer/internal/orientation"
	"github.com/relabs-tech/hand_computer/internal/skeleton"
)

type mockProvider struct {
	side  string
	start time.Time
	table *skeleton.Table
}

// NewMockProvider creates a mock tracking provider that cycles the
// hand smoothly between straight and a closed fist.
func NewMockProvider(side string) Provider {
	// the built-in layout always validates
	table, _ := skeleton.NewTable()
	return &mockProvider{side: side, start: time.Now(), table: table}
}

func (m *mockProvider) Side() string { return m.side }

func (m *mockProvider) Tracked() bool { return true }

// curl returns the current per-segment bend in degrees, sweeping
// 0..80 and back over a few seconds.
func (m *mockProvider) curl() float64 {
	elapsed := time.Since(m.start).Seconds()
	return 40 * (1 - math.Cos(elapsed*0.8))
}

func (m *mockProvider) Joints() ([]skeleton.JointPose, error) {
	curl := m.curl()
	joints := make([]skeleton.JointPose, skeleton.NumJoints)
	for i := range joints {
		joints[i].Orientation = orientation.Identity()
	}

	// Each joint down a chain accumulates one more segment of bend
	// around X, so every joint transition shows the same curl.
	axis := orientation.Vec3{X: 1}
	for f := skeleton.Finger(0); f < skeleton.NumFingers; f++ {
		for depth, idx := range m.table.Chain(f) {
			joints[idx].Orientation = orientation.FromAxisAngle(axis, curl*float64(depth))
			joints[idx].Position = orientation.Vec3{
				X: float64(f) * 0.02,
				Y: 0.03 * float64(depth),
				Z: 0,
			}
		}
	}

	return joints, nil
}

func (m *mockProvider) Root() (skeleton.JointPose, error) {
	elapsed := time.Since(m.start).Seconds()
	return skeleton.JointPose{
		Position: orientation.Vec3{
			X: 0.05 * math.Sin(elapsed*0.5),
			Y: 0.1,
			Z: 0.05 * math.Cos(elapsed*0.5),
		},
		Orientation: orientation.FromAxisAngle(orientation.Vec3{Z: 1}, 15*math.Sin(elapsed)),
	}, nil
}

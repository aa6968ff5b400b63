package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/relabs-tech/hand_computer/internal/orientation"
)

func TestWristLineFormat(t *testing.T) {
	pos := orientation.Vec3{X: 0.1, Y: -0.25, Z: 1}
	q := orientation.Quaternion{X: 0, Y: 0.5, Z: -0.5, W: 0.707}

	got := WristLine("Left", pos, q)
	assert.Equal(t,
		"Left wrist:, 0.100, -0.250, 1.000, 0.000, 0.500, -0.500, 0.707",
		got)
}

func TestHandLineFormat(t *testing.T) {
	angles := [16]float64{
		10, 20.5, -3.26, 0,
		45, -1, 90.07,
		12.34, 0, -180,
		180, 5.5, 6.24,
		7, 8, 9.9,
	}

	got := HandLine("Right", angles)
	assert.Equal(t,
		"Right hand:, 10.0, 20.5, -3.3, 0.0, 45.0, -1.0, 90.1, 12.3, 0.0, -180.0, 180.0, 5.5, 6.2, 7.0, 8.0, 9.9",
		got)
}

func TestPoseLineFormat(t *testing.T) {
	assert.Equal(t, "Fist: open", PoseLine("open"))
	assert.Equal(t, "Fist: closed", PoseLine("closed"))
	assert.Equal(t, "Fist: not tracked", PoseLine("not tracked"))
}

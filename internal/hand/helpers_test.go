package hand

import (
	"testing"

	"github.com/relabs-tech/hand_computer/internal/orientation"
	"github.com/relabs-tech/hand_computer/internal/skeleton"
)

func testTable(t *testing.T) *skeleton.Table {
	t.Helper()
	table, err := skeleton.NewTable()
	if err != nil {
		t.Fatalf("skeleton.NewTable: %v", err)
	}
	return table
}

// straightHand returns a snapshot where every joint has identity
// orientation: all relative rotations are identity.
func straightHand() []skeleton.JointPose {
	joints := make([]skeleton.JointPose, skeleton.NumJoints)
	for i := range joints {
		joints[i].Orientation = orientation.Identity()
	}
	return joints
}

// bentHand returns a snapshot where every finger accumulates curl
// degrees of X rotation per chain segment, so each joint transition
// shows the same curl.
func bentHand(t *testing.T, curl float64) []skeleton.JointPose {
	t.Helper()
	joints := straightHand()
	table := testTable(t)

	axis := orientation.Vec3{X: 1}
	for f := skeleton.Finger(0); f < skeleton.NumFingers; f++ {
		for depth, idx := range table.Chain(f) {
			joints[idx].Orientation = orientation.FromAxisAngle(axis, curl*float64(depth))
		}
	}
	return joints
}

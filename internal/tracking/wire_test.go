package tracking

import (
	"fmt"
	"strings"
	"testing"

	"github.com/relabs-tech/hand_computer/internal/skeleton"
)

// validLine builds a well-formed bridge line with per-joint positions
// (i, 2i, 3i) and identity orientations.
func validLine(side string, tracked int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s,%s,%d", wirePrefix, side, tracked)
	for i := 0; i < skeleton.NumJoints; i++ {
		fmt.Fprintf(&b, ",%d,%d,%d,0,0,0,1", i, 2*i, 3*i)
	}
	return b.String()
}

func TestParsePoseLine(t *testing.T) {
	snap, err := parsePoseLine(validLine("Left", 1))
	if err != nil {
		t.Fatalf("parsePoseLine: %v", err)
	}

	if snap.side != "Left" {
		t.Errorf("side = %q, want Left", snap.side)
	}
	if !snap.tracked {
		t.Errorf("tracked = false, want true")
	}
	if len(snap.joints) != skeleton.NumJoints {
		t.Fatalf("joints = %d, want %d", len(snap.joints), skeleton.NumJoints)
	}

	j := snap.joints[7]
	if j.Position.X != 7 || j.Position.Y != 14 || j.Position.Z != 21 {
		t.Errorf("joint 7 position = %+v", j.Position)
	}
	if j.Orientation.W != 1 {
		t.Errorf("joint 7 orientation = %+v, want identity", j.Orientation)
	}
}

func TestParsePoseLineUntracked(t *testing.T) {
	snap, err := parsePoseLine(validLine("Right", 0))
	if err != nil {
		t.Fatalf("parsePoseLine: %v", err)
	}
	if snap.tracked {
		t.Errorf("tracked = true, want false")
	}
}

func TestParsePoseLineRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"wrong prefix", strings.Replace(validLine("Left", 1), "HT", "XX", 1)},
		{"truncated", validLine("Left", 1)[:100]},
		{"extra field", validLine("Left", 1) + ",0"},
		{"bad side", strings.Replace(validLine("Left", 1), "HT,Left", "HT,left", 1)},
		{"bad tracked flag", strings.Replace(validLine("Left", 1), "HT,Left,1", "HT,Left,2", 1)},
		{"bad float", strings.Replace(validLine("Left", 1), ",0,0,0,1", ",0,0,x,1", 1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parsePoseLine(tc.line); err == nil {
				t.Errorf("expected parse error")
			}
		})
	}
}

func TestMockProviderSnapshot(t *testing.T) {
	p := NewMockProvider("Right")

	if p.Side() != "Right" {
		t.Errorf("side = %q", p.Side())
	}
	if !p.Tracked() {
		t.Errorf("mock provider should always track")
	}

	joints, err := p.Joints()
	if err != nil {
		t.Fatalf("Joints: %v", err)
	}
	if len(joints) != skeleton.NumJoints {
		t.Fatalf("joints = %d, want %d", len(joints), skeleton.NumJoints)
	}

	if _, err := p.Root(); err != nil {
		t.Fatalf("Root: %v", err)
	}
}

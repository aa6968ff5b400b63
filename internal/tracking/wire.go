package tracking

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/relabs-tech/hand_computer/internal/orientation"
	"github.com/relabs-tech/hand_computer/internal/skeleton"
)

// The glove bridge streams one snapshot per line:
//
//	HT,<side>,<tracked 0|1>,<px py pz qx qy qz qw ... x25>
//
// 178 comma-separated fields in total.
const (
	wirePrefix    = "HT"
	wireFieldsPer = 7
	wireFields    = 3 + skeleton.NumJoints*wireFieldsPer
)

type snapshot struct {
	side    string
	tracked bool
	joints  []skeleton.JointPose
}

// parsePoseLine decodes one bridge line into a snapshot.
func parsePoseLine(line string) (snapshot, error) {
	fields := strings.Split(line, ",")
	if len(fields) != wireFields {
		return snapshot{}, fmt.Errorf("expected %d fields, got %d", wireFields, len(fields))
	}
	if fields[0] != wirePrefix {
		return snapshot{}, fmt.Errorf("unexpected prefix %q", fields[0])
	}

	side := strings.TrimSpace(fields[1])
	if side != "Left" && side != "Right" {
		return snapshot{}, fmt.Errorf("unknown side %q", side)
	}

	var tracked bool
	switch strings.TrimSpace(fields[2]) {
	case "1":
		tracked = true
	case "0":
		tracked = false
	default:
		return snapshot{}, fmt.Errorf("invalid tracked flag %q", fields[2])
	}

	joints := make([]skeleton.JointPose, skeleton.NumJoints)
	for i := 0; i < skeleton.NumJoints; i++ {
		var vals [wireFieldsPer]float64
		for k := 0; k < wireFieldsPer; k++ {
			raw := strings.TrimSpace(fields[3+i*wireFieldsPer+k])
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return snapshot{}, fmt.Errorf("joint %d field %d: %w", i, k, err)
			}
			vals[k] = v
		}
		joints[i] = skeleton.JointPose{
			Position:    orientation.Vec3{X: vals[0], Y: vals[1], Z: vals[2]},
			Orientation: orientation.Quaternion{X: vals[3], Y: vals[4], Z: vals[5], W: vals[6]}.Normalized(),
		}
	}

	return snapshot{side: side, tracked: tracked, joints: joints}, nil
}

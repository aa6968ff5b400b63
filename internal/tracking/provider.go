// Package tracking provides access to the hand tracking provider:
// per-joint poses, a validity flag, and the hand side identity.
package tracking

import (
	"github.com/relabs-tech/hand_computer/internal/skeleton"
)

// Provider is anything that can supply hand pose snapshots over
// time. Later you'll have: mock provider, serial glove bridge, maybe
// a replay provider from file.
type Provider interface {
	// Side reports the hand identity, "Left" or "Right".
	Side() string
	// Tracked reports the provider's validity flag. False is a
	// normal transient condition, not an error.
	Tracked() bool
	// Joints returns the full ordered joint pose snapshot. An error
	// is a structural retrieval failure, distinct from untracked.
	Joints() ([]skeleton.JointPose, error)
	// Root returns the wrist/root pose.
	Root() (skeleton.JointPose, error)
}

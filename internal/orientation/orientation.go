package orientation

import (
	"math"
)

// Vec3 is a 3D position in the tracking reference frame.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Quaternion is a unit rotation quaternion (x, y, z, w).
type Quaternion struct {
	X float64 `json:"qx"`
	Y float64 `json:"qy"`
	Z float64 `json:"qz"`
	W float64 `json:"qw"`
}

// Pose is the canonical Euler representation of orientation for display.
type Pose struct {
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
}

// Identity returns the identity rotation.
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// Conjugate returns the inverse rotation for a unit quaternion.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Mul returns the Hamilton product q*r: the rotation r followed by q.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Norm returns the quaternion magnitude.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalized returns q scaled to unit length. The zero quaternion
// normalizes to identity rather than NaN.
func (q Quaternion) Normalized() Quaternion {
	n := q.Norm()
	if n == 0 {
		return Identity()
	}
	return Quaternion{X: q.X / n, Y: q.Y / n, Z: q.Z / n, W: q.W / n}
}

// FromAxisAngle builds a quaternion rotating by deg degrees around axis.
func FromAxisAngle(axis Vec3, deg float64) Quaternion {
	n := math.Sqrt(axis.X*axis.X + axis.Y*axis.Y + axis.Z*axis.Z)
	if n == 0 {
		return Identity()
	}
	half := deg * math.Pi / 360.0
	s := math.Sin(half) / n
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math.Cos(half),
	}
}

// Euler decomposes q into X/Y/Z rotation components in degrees,
// each normalized to (-180, 180].
//
// Uses the standard decomposition:
//
//	x = atan2(2(wx + yz), 1 - 2(x² + y²))
//	y = asin(2(wy - zx))
//	z = atan2(2(wz + xy), 1 - 2(y² + z²))
func (q Quaternion) Euler() (x, y, z float64) {
	q = q.Normalized()

	xRad := math.Atan2(2*(q.W*q.X+q.Y*q.Z), 1-2*(q.X*q.X+q.Y*q.Y))

	sinY := 2 * (q.W*q.Y - q.Z*q.X)
	if sinY > 1 {
		sinY = 1
	} else if sinY < -1 {
		sinY = -1
	}
	yRad := math.Asin(sinY)

	zRad := math.Atan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z))

	x = NormalizeDeg(xRad * 180.0 / math.Pi)
	y = NormalizeDeg(yRad * 180.0 / math.Pi)
	z = NormalizeDeg(zRad * 180.0 / math.Pi)
	return x, y, z
}

// EulerPose returns the Euler decomposition as a display Pose
// (roll = X, pitch = Y, yaw = Z).
func (q Quaternion) EulerPose() Pose {
	x, y, z := q.Euler()
	return Pose{Roll: x, Pitch: y, Yaw: z}
}

// AngleDeg returns the scalar rotation magnitude of q in degrees,
// normalized to (-180, 180]. The rotation axis is discarded.
func (q Quaternion) AngleDeg() float64 {
	q = q.Normalized()
	w := q.W
	if w > 1 {
		w = 1
	} else if w < -1 {
		w = -1
	}
	return NormalizeDeg(2 * math.Acos(w) * 180.0 / math.Pi)
}

// NormalizeDeg maps an angle in degrees to the half-open interval
// (-180, 180]. Any input a+360k normalizes to the same value.
func NormalizeDeg(a float64) float64 {
	b := math.Mod(a, 360)
	if b < 0 {
		b += 360
	}
	if b > 180 {
		b -= 360
	}
	return b
}

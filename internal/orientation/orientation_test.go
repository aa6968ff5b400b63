package orientation

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNormalizeDeg(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{90, 90},
		{180, 180},
		{-180, 180},
		{181, -179},
		{-181, 179},
		{360, 0},
		{540, 180},
		{-90, -90},
		{190, -170},
		{-190, 170},
		{720.5, 0.5},
	}

	for _, c := range cases {
		got := NormalizeDeg(c.in)
		if !approx(got, c.want) {
			t.Errorf("NormalizeDeg(%g) = %g, want %g", c.in, got, c.want)
		}
	}
}

func TestNormalizeDegPeriodic(t *testing.T) {
	// normalize(a + 360k) == normalize(a) for any integer k
	angles := []float64{0, 13.7, -45.2, 179.99, -179.99, 180}
	for _, a := range angles {
		want := NormalizeDeg(a)
		for k := -3; k <= 3; k++ {
			got := NormalizeDeg(a + 360*float64(k))
			if math.Abs(got-want) > 1e-6 {
				t.Errorf("NormalizeDeg(%g + 360*%d) = %g, want %g", a, k, got, want)
			}
		}
	}
}

func TestNormalizeDegRange(t *testing.T) {
	// result always in (-180, 180]
	for a := -1000.0; a <= 1000.0; a += 7.3 {
		got := NormalizeDeg(a)
		if got <= -180 || got > 180 {
			t.Errorf("NormalizeDeg(%g) = %g out of (-180, 180]", a, got)
		}
	}
}

func TestIdentityEuler(t *testing.T) {
	x, y, z := Identity().Euler()
	if x != 0 || y != 0 || z != 0 {
		t.Errorf("identity Euler = (%g, %g, %g), want zeros", x, y, z)
	}
}

func TestFromAxisAngleEuler(t *testing.T) {
	x, y, _ := FromAxisAngle(Vec3{X: 1}, 30).Euler()
	if math.Abs(x-30) > 1e-6 || math.Abs(y) > 1e-6 {
		t.Errorf("Rx(30) Euler = (%g, %g), want (30, 0)", x, y)
	}

	x, y, _ = FromAxisAngle(Vec3{Y: 1}, 45).Euler()
	if math.Abs(x) > 1e-6 || math.Abs(y-45) > 1e-6 {
		t.Errorf("Ry(45) Euler = (%g, %g), want (0, 45)", x, y)
	}

	x, _, _ = FromAxisAngle(Vec3{X: 1}, -60).Euler()
	if math.Abs(x+60) > 1e-6 {
		t.Errorf("Rx(-60) Euler X = %g, want -60", x)
	}
}

func TestAngleDeg(t *testing.T) {
	if got := Identity().AngleDeg(); got != 0 {
		t.Errorf("identity AngleDeg = %g, want 0", got)
	}

	if got := FromAxisAngle(Vec3{X: 1}, 60).AngleDeg(); math.Abs(got-60) > 1e-6 {
		t.Errorf("Rx(60) AngleDeg = %g, want 60", got)
	}

	// the axis sign is discarded; magnitude only
	if got := FromAxisAngle(Vec3{X: 1}, -60).AngleDeg(); math.Abs(got-60) > 1e-6 {
		t.Errorf("Rx(-60) AngleDeg = %g, want 60", got)
	}
}

func TestConjugateCancels(t *testing.T) {
	q := FromAxisAngle(Vec3{X: 0.3, Y: -1, Z: 0.5}, 73)
	r := q.Conjugate().Mul(q)

	if math.Abs(r.W-1) > 1e-9 || math.Abs(r.X) > 1e-9 || math.Abs(r.Y) > 1e-9 || math.Abs(r.Z) > 1e-9 {
		t.Errorf("q^-1 * q = %+v, want identity", r)
	}
}

func TestRelativeRotationComposition(t *testing.T) {
	// parent Rx(a), child Rx(a+b): relative rotation is Rx(b)
	parent := FromAxisAngle(Vec3{X: 1}, 25)
	child := FromAxisAngle(Vec3{X: 1}, 65)

	rel := parent.Conjugate().Mul(child)
	if got := rel.AngleDeg(); math.Abs(got-40) > 1e-6 {
		t.Errorf("relative angle = %g, want 40", got)
	}
}

func TestNormalizedZero(t *testing.T) {
	got := Quaternion{}.Normalized()
	if got != Identity() {
		t.Errorf("zero quaternion normalized = %+v, want identity", got)
	}
}

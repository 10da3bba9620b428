package spatial

import (
	"math"
	"testing"
)

func quatNear(a, b Quaternion, tol float64) bool {
	return near(a.W, b.W, tol) && near(a.X, b.X, tol) &&
		near(a.Y, b.Y, tol) && near(a.Z, b.Z, tol)
}

func TestQuaternionIdentity(t *testing.T) {
	q := QuaternionIdentity()
	if q != (Quaternion{W: 1}) {
		t.Errorf("identity = %+v", q)
	}
	if !q.IsUnit() {
		t.Error("identity should report IsUnit")
	}
	if got := q.Angle(false); got != 0 {
		t.Errorf("identity angle = %v", got)
	}
}

func TestFromAnglesZeroIsIdentity(t *testing.T) {
	if got := FromAngles(0, 0, 0); got != QuaternionIdentity() {
		t.Errorf("FromAngles(0,0,0) = %+v", got)
	}
}

func TestFromAnglesRollQuarterTurn(t *testing.T) {
	got := FromAngles(math.Pi/2, 0, 0)
	s := math.Sqrt(2) / 2
	want := Quaternion{W: s, X: s}
	if !quatNear(got, want, 1e-12) {
		t.Errorf("FromAngles(π/2,0,0) = %+v, want %+v", got, want)
	}
}

func TestFromAnglesComposition(t *testing.T) {
	roll, pitch, yaw := 0.35, -1.1, 2.4

	qx := FromAngles(roll, 0, 0)
	qy := FromAngles(0, pitch, 0)
	qz := FromAngles(0, 0, yaw)

	got := qx.Mul(qy).Mul(qz)
	want := FromAngles(roll, pitch, yaw)
	if !quatNear(got, want, 1e-12) {
		t.Errorf("composed = %+v, direct = %+v", got, want)
	}
}

func TestQuaternionMulAssociative(t *testing.T) {
	q1 := FromAngles(0.4, 1.2, -0.6)
	q2 := FromAngles(-2.2, 0.1, 0.9)
	q3 := FromAngles(1.7, -0.8, 0.25)

	a := q1.Mul(q2).Mul(q3)
	b := q1.Mul(q2.Mul(q3))
	if !quatNear(a, b, 1e-12) {
		t.Errorf("(q1q2)q3 = %+v, q1(q2q3) = %+v", a, b)
	}
}

func TestQuaternionMulNonCommutative(t *testing.T) {
	q1 := FromAngles(math.Pi/2, 0, 0)
	q2 := FromAngles(0, math.Pi/2, 0)
	if quatNear(q1.Mul(q2), q2.Mul(q1), 1e-9) {
		t.Error("expected q1q2 != q2q1 for distinct axis rotations")
	}
}

func TestConjugateProduct(t *testing.T) {
	q := Quaternion{W: 0.9, X: -0.3, Y: 1.4, Z: 0.2}
	got := q.Conjugate().Mul(q)
	want := Quaternion{W: q.NormSqr()}
	if !quatNear(got, want, 1e-12) {
		t.Errorf("conj(q)·q = %+v, want %+v", got, want)
	}
}

func TestQuaternionNormFamily(t *testing.T) {
	q := Quaternion{W: 1, X: 2, Y: 3, Z: 4}
	if got := q.NormSqr(); got != 30 {
		t.Errorf("NormSqr = %v", got)
	}
	if got := q.Norm(); !near(got, math.Sqrt(30), eps) {
		t.Errorf("Norm = %v", got)
	}

	n := q.Normalised()
	if !near(n.Norm(), 1, eps) {
		t.Errorf("Normalised norm = %v", n.Norm())
	}

	p := q
	p.Normalize()
	if !quatNear(p, n, eps) {
		t.Errorf("Normalize = %+v, Normalised = %+v", p, n)
	}

	var zero Quaternion
	zero.Normalize()
	if !math.IsNaN(zero.W) {
		t.Errorf("normalizing zero quaternion = %+v, want NaN", zero)
	}
}

func TestQuaternionElementwise(t *testing.T) {
	a := Quaternion{1, 2, 3, 4}
	b := Quaternion{0.5, -1, 2, 0}

	if got := a.Add(b); got != (Quaternion{1.5, 1, 5, 4}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (Quaternion{0.5, 3, 1, 4}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Neg(); got != (Quaternion{-1, -2, -3, -4}) {
		t.Errorf("Neg = %+v", got)
	}
	if got := a.Scale(2); got != (Quaternion{2, 4, 6, 8}) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.Div(2); got != (Quaternion{0.5, 1, 1.5, 2}) {
		t.Errorf("Div = %+v", got)
	}
	if got := a.Conjugate(); got != (Quaternion{1, -2, -3, -4}) {
		t.Errorf("Conjugate = %+v", got)
	}
}

func TestQuaternionAngleAxis(t *testing.T) {
	theta := 1.25
	q := FromAngles(theta, 0, 0)

	if got := q.Angle(false); !near(got, theta, 1e-12) {
		t.Errorf("Angle = %v, want %v", got, theta)
	}
	if got := q.Angle(true); !near(got, theta*RadToDeg, 1e-9) {
		t.Errorf("Angle(degrees) = %v", got)
	}

	// Axis returns the raw vector part, scaled by sin(θ/2).
	axis := q.Axis()
	if !vecNear(axis, Vector{math.Sin(theta / 2), 0, 0}, 1e-12) {
		t.Errorf("Axis = %+v", axis)
	}
}

func TestQuaternionSetAndSetAxis(t *testing.T) {
	var q Quaternion
	q.Set(0, 1)
	q.Set(1, 2)
	q.Set(2, 3)
	q.Set(3, 4)
	if q != (Quaternion{1, 2, 3, 4}) {
		t.Errorf("Set mapping = %+v", q)
	}

	// Out-of-range index is a no-op.
	q.Set(7, 99)
	if q != (Quaternion{1, 2, 3, 4}) {
		t.Errorf("Set(7) mutated = %+v", q)
	}

	q.SetAxis(Vector{9, 8, 7})
	if q != (Quaternion{1, 9, 8, 7}) {
		t.Errorf("SetAxis = %+v", q)
	}

	q.Clear()
	if q != QuaternionIdentity() {
		t.Errorf("Clear = %+v", q)
	}

	q.FromQuaternion(Quaternion{0.5, 0.5, 0.5, 0.5})
	if q != (Quaternion{0.5, 0.5, 0.5, 0.5}) {
		t.Errorf("FromQuaternion = %+v", q)
	}
}

func TestIsUnitIsAnExactIdentityCheck(t *testing.T) {
	// IsUnit keeps its exact-identity semantics: a unit-norm quaternion that
	// is not the identity reports false.
	q := FromAngles(0.5, 0, 0)
	if !near(q.Norm(), 1, eps) {
		t.Fatalf("precondition: expected unit norm, got %v", q.Norm())
	}
	if q.IsUnit() {
		t.Error("non-identity unit quaternion should not report IsUnit")
	}
	if !QuaternionIdentity().IsUnit() {
		t.Error("identity should report IsUnit")
	}
}

func TestFromArray(t *testing.T) {
	q := FromArray([4]float64{0.5, 0.1, 0.2, 0.3})
	if q != (Quaternion{0.5, 0.1, 0.2, 0.3}) {
		t.Errorf("FromArray = %+v", q)
	}
}

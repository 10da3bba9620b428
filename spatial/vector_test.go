package spatial

import (
	"math"
	"testing"
)

const eps = 1e-12

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func vecNear(a, b Vector, tol float64) bool {
	return near(a.X, b.X, tol) && near(a.Y, b.Y, tol) && near(a.Z, b.Z, tol)
}

func TestVectorArithmetic(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{4, -5, 6}

	if got := a.Add(b); got != (Vector{5, -3, 9}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (Vector{-3, 7, -3}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Neg(); got != (Vector{-1, -2, -3}) {
		t.Errorf("Neg = %+v", got)
	}
	if got := a.Scale(2); got != (Vector{2, 4, 6}) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.Mul(b); got != (Vector{4, -10, 18}) {
		t.Errorf("Mul = %+v", got)
	}
	if got := a.Div(2); got != (Vector{0.5, 1, 1.5}) {
		t.Errorf("Div = %+v", got)
	}
	if got := a.DivVec(Vector{2, 4, 6}); got != (Vector{0.5, 0.5, 0.5}) {
		t.Errorf("DivVec = %+v", got)
	}
	if got := a.AddScalar(1); got != (Vector{2, 3, 4}) {
		t.Errorf("AddScalar = %+v", got)
	}
	if got := a.SubScalar(1); got != (Vector{0, 1, 2}) {
		t.Errorf("SubScalar = %+v", got)
	}
	if got := a.Sum(); got != 6 {
		t.Errorf("Sum = %v", got)
	}
	if got := Identical(7); got != (Vector{7, 7, 7}) {
		t.Errorf("Identical = %+v", got)
	}
}

func TestVectorDotIsPlanar(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{4, 5, 6}

	// Dot excludes the z term on purpose.
	if got := a.Dot(b); got != 14 {
		t.Errorf("Dot = %v, want 14", got)
	}
	if got := a.Dot3(b); got != 32 {
		t.Errorf("Dot3 = %v, want 32", got)
	}
	if got, want := a.Dot3(a), a.NormSqr(); !near(got, want, eps) {
		t.Errorf("Dot3(v,v) = %v, NormSqr = %v", got, want)
	}
}

func TestVectorCross(t *testing.T) {
	x := Vector{1, 0, 0}
	y := Vector{0, 1, 0}
	z := Vector{0, 0, 1}

	if got := x.Cross(y); got != z {
		t.Errorf("x × y = %+v, want z", got)
	}
	if got := y.Cross(z); got != x {
		t.Errorf("y × z = %+v, want x", got)
	}
	if got := z.Cross(x); got != y {
		t.Errorf("z × x = %+v, want y", got)
	}

	for _, v := range []Vector{{1, 2, 3}, {-4, 0.5, 9}, {0, 0, 0}} {
		if got := v.Cross(v); !got.IsNil() {
			t.Errorf("v × v = %+v, want zero", got)
		}
	}
}

func TestVectorNorm(t *testing.T) {
	v := Vector{3, 4, 12}
	if got := v.Norm(); !near(got, 13, eps) {
		t.Errorf("Norm = %v", got)
	}
	if got := v.NormSqr(); got != 169 {
		t.Errorf("NormSqr = %v", got)
	}

	n := v.Normalised()
	if !near(n.Norm(), 1, eps) {
		t.Errorf("Normalised norm = %v", n.Norm())
	}

	u := v
	u.Normalize()
	if !vecNear(u, n, eps) {
		t.Errorf("Normalize = %+v, Normalised = %+v", u, n)
	}
}

func TestVectorNormalizeZeroPropagatesNaN(t *testing.T) {
	var v Vector
	v.Normalize()
	if !v.IsNaN() {
		t.Errorf("normalizing zero vector = %+v, want NaN components", v)
	}
}

func TestVectorPredicatesAndMutators(t *testing.T) {
	var v Vector
	if !v.IsNil() {
		t.Error("zero vector should be nil")
	}
	if v.IsNaN() {
		t.Error("zero vector should not be NaN")
	}

	v.SetNaN()
	if !v.IsNaN() {
		t.Error("SetNaN should poison the vector")
	}

	v.Clear()
	if !v.IsNil() {
		t.Error("Clear should zero the vector")
	}

	w := Vector{0, 2, 0}
	w.NoZeros()
	if w != (Vector{1, 2, 1}) {
		t.Errorf("NoZeros = %+v", w)
	}

	// Mutators chain.
	u := Vector{0, 3, 0}
	if got := u.NoZeros().Normalize(); !near(got.Norm(), 1, eps) {
		t.Errorf("chained mutators norm = %v", got.Norm())
	}
}

func TestVectorElementwiseFunctions(t *testing.T) {
	v := Vector{4, 9, 16}
	if got := v.Sqrt(); !vecNear(got, Vector{2, 3, 4}, eps) {
		t.Errorf("Sqrt = %+v", got)
	}
	if got := v.Power(0.5); !vecNear(got, Vector{2, 3, 4}, eps) {
		t.Errorf("Power(0.5) = %+v", got)
	}
	if got := (Vector{-1, 2, -3}).Absf(); got != (Vector{1, 2, 3}) {
		t.Errorf("Absf = %+v", got)
	}
}

func TestVectorMulQuatMatchesPureQuaternionProduct(t *testing.T) {
	v := Vector{0.3, -0.7, 1.1}
	q := FromAngles(0.4, -0.9, 1.3)

	got := v.MulQuat(q)
	want := Quaternion{W: 0, X: v.X, Y: v.Y, Z: v.Z}.Mul(q)

	if !quatNear(got, want, eps) {
		t.Errorf("MulQuat = %+v, pure product = %+v", got, want)
	}
}

package spatial

import "math"

// Quaternion represents a 3D rotation as a scalar part W and a vector part
// (X, Y, Z). Rotation semantics assume unit norm (W²+X²+Y²+Z² = 1); the type
// never renormalizes on its own, so callers must Normalize after arithmetic
// that denormalizes (Add, Scale, ...). The zero value is NOT a valid
// rotation; use QuaternionIdentity or Clear for the identity.
type Quaternion struct {
	W, X, Y, Z float64
}

// QuaternionIdentity returns the identity rotation (1, 0, 0, 0).
func QuaternionIdentity() Quaternion {
	return Quaternion{W: 1}
}

// FromArray builds a quaternion from coefficients ordered w, x, y, z.
func FromArray(a [4]float64) Quaternion {
	return Quaternion{a[0], a[1], a[2], a[3]}
}

// FromAngles builds the rotation quaternion for Euler angles roll, pitch and
// yaw, in radians. The half-angle composition order and sign pattern are
// fixed: callers relying on compatibility with existing rotation data get
// exactly this convention (roll about x, pitch about y, yaw about z, applied
// in that order).
func FromAngles(roll, pitch, yaw float64) Quaternion {
	cosR, sinR := math.Cos(roll/2), math.Sin(roll/2)
	cosP, sinP := math.Cos(pitch/2), math.Sin(pitch/2)
	cosY, sinY := math.Cos(yaw/2), math.Sin(yaw/2)

	return Quaternion{
		W: cosR*cosP*cosY + sinR*sinP*sinY,
		X: sinR*cosP*cosY - cosR*sinP*sinY,
		Y: cosR*sinP*cosY + sinR*cosP*sinY,
		Z: cosR*cosP*sinY - sinR*sinP*cosY,
	}
}

// QuaternionFromMatrix extracts a quaternion from a rotation matrix using the
// numerically stable branch selection. See (*Quaternion).FromMatrix.
func QuaternionFromMatrix(m Matrix3x3) Quaternion {
	var q Quaternion
	q.FromMatrix(m)
	return q
}

// NormSqr returns the squared norm w² + x² + y² + z².
func (q Quaternion) NormSqr() float64 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Norm returns the quaternion norm.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.NormSqr())
}

// Normalize scales the quaternion to unit norm in place and returns it.
// There is no guard against a zero norm: normalizing a zero quaternion
// yields NaN components.
func (q *Quaternion) Normalize() *Quaternion {
	n := q.Norm()
	q.W /= n
	q.X /= n
	q.Y /= n
	q.Z /= n
	return q
}

// Normalised returns a unit-norm copy. Like Normalize, a zero norm produces
// NaN components.
func (q Quaternion) Normalised() Quaternion {
	return q.Div(q.Norm())
}

// Conjugate returns the quaternion with the vector part negated.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.W, -q.X, -q.Y, -q.Z}
}

// Add returns the elementwise sum q + rhs.
func (q Quaternion) Add(rhs Quaternion) Quaternion {
	return Quaternion{q.W + rhs.W, q.X + rhs.X, q.Y + rhs.Y, q.Z + rhs.Z}
}

// Sub returns the elementwise difference q − rhs.
func (q Quaternion) Sub(rhs Quaternion) Quaternion {
	return Quaternion{q.W - rhs.W, q.X - rhs.X, q.Y - rhs.Y, q.Z - rhs.Z}
}

// Neg returns the negation of q. For unit quaternions q and Neg(q) represent
// the same rotation (double cover).
func (q Quaternion) Neg() Quaternion {
	return Quaternion{-q.W, -q.X, -q.Y, -q.Z}
}

// Scale multiplies every coefficient by s.
func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{q.W * s, q.X * s, q.Y * s, q.Z * s}
}

// Div divides every coefficient by s.
func (q Quaternion) Div(s float64) Quaternion {
	return Quaternion{q.W / s, q.X / s, q.Y / s, q.Z / s}
}

// Mul returns the quaternion product of q and rhs with the library's fixed
// sign pattern. The product is non-commutative but associative, and
// q.Conjugate().Mul(q) yields (NormSqr(q), 0, 0, 0).
func (q Quaternion) Mul(rhs Quaternion) Quaternion {
	return Quaternion{
		W: q.W*rhs.W - q.X*rhs.X - q.Y*rhs.Y - q.Z*rhs.Z,
		X: q.W*rhs.X + q.X*rhs.W - q.Y*rhs.Z + q.Z*rhs.Y,
		Y: q.W*rhs.Y + q.X*rhs.Z + q.Y*rhs.W - q.Z*rhs.X,
		Z: q.W*rhs.Z - q.X*rhs.Y + q.Y*rhs.X + q.Z*rhs.W,
	}
}

// MulVec multiplies q by rhs treated as a pure quaternion (zero scalar
// part), using the same sign pattern as Mul. This is the raw product, not a
// rotation: rotating a vector requires the q·v·q⁻¹ sandwich, which callers
// compose themselves.
func (q Quaternion) MulVec(rhs Vector) Quaternion {
	return Quaternion{
		W: -q.X*rhs.X - q.Y*rhs.Y - q.Z*rhs.Z,
		X: q.W*rhs.X - q.Y*rhs.Z + q.Z*rhs.Y,
		Y: q.W*rhs.Y + q.X*rhs.Z - q.Z*rhs.X,
		Z: q.W*rhs.Z - q.X*rhs.Y + q.Y*rhs.X,
	}
}

// Angle returns the rotation angle 2·acos(w), in radians by default or in
// degrees when inDegrees is true. Meaningful only for unit quaternions.
func (q Quaternion) Angle(inDegrees bool) float64 {
	a := 2 * math.Acos(q.W)
	if inDegrees {
		return a * RadToDeg
	}
	return a
}

// Axis returns the raw vector part (x, y, z) without renormalizing. For a
// unit quaternion this is the rotation axis scaled by sin(angle/2); callers
// needing a unit axis normalize the result themselves.
func (q Quaternion) Axis() Vector {
	return Vector{q.X, q.Y, q.Z}
}

// SetAxis replaces the vector part.
func (q *Quaternion) SetAxis(v Vector) {
	q.X = v.X
	q.Y = v.Y
	q.Z = v.Z
}

// Set assigns a coefficient by index, with the fixed mapping
// 0, 1, 2, 3 → w, x, y, z. Indices outside 0..3 are ignored.
func (q *Quaternion) Set(idx int, value float64) {
	switch idx {
	case 0:
		q.W = value
	case 1:
		q.X = value
	case 2:
		q.Y = value
	case 3:
		q.Z = value
	}
}

// Clear resets the quaternion to the identity rotation.
func (q *Quaternion) Clear() {
	q.W = 1
	q.X = 0
	q.Y = 0
	q.Z = 0
}

// IsUnit reports whether the quaternion is exactly the identity rotation
// (w = 1, x = y = z = 0). Despite the name it is not a unit-norm check: a
// normalized non-identity quaternion reports false.
func (q Quaternion) IsUnit() bool {
	return q.W == 1 && q.X == 0 && q.Y == 0 && q.Z == 0
}

// FromQuaternion copies all coefficients from rhs.
func (q *Quaternion) FromQuaternion(rhs Quaternion) {
	*q = rhs
}

// ToRotationMatrix converts a unit quaternion to its 3×3 rotation matrix.
// The input is not normalized internally: a non-unit quaternion silently
// produces a non-orthonormal matrix.
func (q Quaternion) ToRotationMatrix() Matrix3x3 {
	twx := 2 * q.X * q.W
	twy := 2 * q.Y * q.W
	twz := 2 * q.Z * q.W
	txx := 2 * q.X * q.X
	txy := 2 * q.Y * q.X
	txz := 2 * q.Z * q.X
	tyy := 2 * q.Y * q.Y
	tyz := 2 * q.Z * q.Y
	tzz := 2 * q.Z * q.Z

	return Matrix3x3{
		1 - (tyy + tzz), txy - twz, txz + twy,
		txy + twz, 1 - (txx + tzz), tyz - twx,
		txz - twy, tyz + twx, 1 - (txx + tyy),
	}
}

// FromMatrix extracts the quaternion from a rotation matrix using the
// branch-based method of Shoemake ("Quaternion Calculus and Fast Animation",
// 1987 SIGGRAPH course notes). When the trace is positive the dominant term
// is w; otherwise the largest diagonal element selects which vector-part
// component carries the dominant square root, keeping the sqrt argument
// bounded away from zero for any valid orthonormal rotation matrix. The
// diagonal comparison order (row 1 before row 2) and the cyclic j/k
// assignment are part of the contract.
func (q *Quaternion) FromMatrix(mat Matrix3x3) {
	t := mat.Trace()

	if t > 0 {
		t = math.Sqrt(t + 1)
		q.W = 0.5 * t
		t = 0.5 / t
		q.X = (mat.Coeff(2, 1) - mat.Coeff(1, 2)) * t
		q.Y = (mat.Coeff(0, 2) - mat.Coeff(2, 0)) * t
		q.Z = (mat.Coeff(1, 0) - mat.Coeff(0, 1)) * t
		return
	}

	i := 0
	if mat.Coeff(1, 1) > mat.Coeff(0, 0) {
		i = 1
	}
	if mat.Coeff(2, 2) > mat.Coeff(i, i) {
		i = 2
	}
	j := (i + 1) % 3
	k := (j + 1) % 3

	t = math.Sqrt(mat.Coeff(i, i) - mat.Coeff(j, j) - mat.Coeff(k, k) + 1)
	q.Set(i+1, 0.5*t)
	t = 0.5 / t
	q.W = (mat.Coeff(k, j) - mat.Coeff(j, k)) * t
	q.Set(j+1, (mat.Coeff(j, i)+mat.Coeff(i, j))*t)
	q.Set(k+1, (mat.Coeff(k, i)+mat.Coeff(i, k))*t)
}

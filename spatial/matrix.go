package spatial

import "math"

// Matrix3x3 is a 3×3 matrix stored row-major: element (r,c) lives at index
// 3r + c. An arbitrary matrix is allowed; only the quaternion conversions
// assume rotation-matrix structure (orthonormal columns, determinant +1) and
// silently produce NaN/Inf when that assumption is violated.
//
// Row/column accessors index the backing array directly, so an out-of-range
// index panics.
type Matrix3x3 [9]float64

// MatrixFromArray builds a matrix from a flat row-major array of 9 values.
func MatrixFromArray(a [9]float64) Matrix3x3 {
	return Matrix3x3(a)
}

// Merge assembles a matrix from three column vectors.
func Merge(v1, v2, v3 Vector) Matrix3x3 {
	return Matrix3x3{
		v1.X, v2.X, v3.X,
		v1.Y, v2.Y, v3.Y,
		v1.Z, v2.Z, v3.Z,
	}
}

// MatrixIdentity returns the 3×3 identity matrix.
func MatrixIdentity() Matrix3x3 {
	return Matrix3x3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// MatrixMul returns the matrix product a × b.
func MatrixMul(a, b Matrix3x3) Matrix3x3 {
	var m Matrix3x3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[3*r+c] = a[3*r]*b[c] + a[3*r+1]*b[3+c] + a[3*r+2]*b[6+c]
		}
	}
	return m
}

// Coeff returns the element at row r, column c.
func (m Matrix3x3) Coeff(r, c int) float64 {
	return m[3*r+c]
}

// Set assigns the element at row r, column c.
func (m *Matrix3x3) Set(r, c int, value float64) {
	m[3*r+c] = value
}

// SetDiagonal assigns the diagonal element (i,i).
func (m *Matrix3x3) SetDiagonal(i int, value float64) {
	m[3*i+i] = value
}

// Trace returns the sum of the diagonal elements.
func (m Matrix3x3) Trace() float64 {
	return m[0] + m[4] + m[8]
}

// Transpose returns the transposed matrix.
func (m Matrix3x3) Transpose() Matrix3x3 {
	return Matrix3x3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Row returns row idx as a vector.
func (m Matrix3x3) Row(idx int) Vector {
	return Vector{m[3*idx], m[3*idx+1], m[3*idx+2]}
}

// Col returns column idx as a vector.
func (m Matrix3x3) Col(idx int) Vector {
	return Vector{m[idx], m[3+idx], m[6+idx]}
}

// FromVectors fills the matrix from three vectors, as rows when rows is true
// and as columns otherwise.
func (m *Matrix3x3) FromVectors(vx, vy, vz Vector, rows bool) {
	if rows {
		*m = Matrix3x3{
			vx.X, vx.Y, vx.Z,
			vy.X, vy.Y, vy.Z,
			vz.X, vz.Y, vz.Z,
		}
		return
	}
	*m = Merge(vx, vy, vz)
}

// MulVec applies the matrix to v as a linear map.
func (m Matrix3x3) MulVec(v Vector) Vector {
	return Vector{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Det returns the determinant, by cofactor expansion along the first row.
func (m Matrix3x3) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) +
		m[1]*(m[5]*m[6]-m[3]*m[8]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// ToQuaternion extracts a quaternion using the direct formula:
// w = 0.5·sqrt(1+trace), the vector part from the antisymmetric off-diagonal
// differences over 4w, renormalized. This path loses precision as the trace
// approaches −1 (w near zero); use QuaternionFromMatrix for the numerically
// stable branch there. The two paths differ by conjugation for the same
// input: this one follows the transpose sign convention of its source.
func (m Matrix3x3) ToQuaternion() Quaternion {
	w := 0.5 * math.Sqrt(1+m.Trace())
	w4 := 4 * w

	q := Quaternion{
		W: w,
		X: (m.Coeff(1, 2) - m.Coeff(2, 1)) / w4,
		Y: (m.Coeff(2, 0) - m.Coeff(0, 2)) / w4,
		Z: (m.Coeff(0, 1) - m.Coeff(1, 0)) / w4,
	}
	return q.Normalised()
}

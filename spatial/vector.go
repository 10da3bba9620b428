// Package spatial provides 3D rotation value types — Vector, Quaternion and
// Matrix3x3 — and the conversions between rotation representations that relate
// them: Euler angles to quaternion, quaternion to rotation matrix, and both
// the direct and the numerically stable (Shoemake) matrix-to-quaternion paths.
//
// All types are plain value types. Operations never mutate their operands
// unless documented as in-place; in-place mutators take pointer receivers and
// return the receiver so calls can be chained. Numeric edge cases (zero-norm
// normalization, non-orthonormal conversion input) propagate IEEE-754 NaN/Inf
// silently rather than returning errors.
package spatial

import "math"

// Vector is a point or direction in 3D space.
type Vector struct {
	X, Y, Z float64
}

// Identical returns a vector with the same value on all three axes.
func Identical(a float64) Vector {
	return Vector{a, a, a}
}

// IsNil reports whether all components are exactly zero.
func (v Vector) IsNil() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsNaN reports whether any component is NaN.
func (v Vector) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// Norm returns the Euclidean length.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.NormSqr())
}

// NormSqr returns the squared Euclidean length.
func (v Vector) NormSqr() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize scales the vector to unit length in place and returns it.
// There is no guard against a zero norm: normalizing a zero vector yields
// NaN components.
func (v *Vector) Normalize() *Vector {
	n := v.Norm()
	v.X /= n
	v.Y /= n
	v.Z /= n
	return v
}

// Normalised returns a unit-length copy. Like Normalize, a zero norm
// produces NaN components.
func (v Vector) Normalised() Vector {
	return v.Div(v.Norm())
}

// SetNaN invalidates the vector by assigning NaN to all components.
func (v *Vector) SetNaN() *Vector {
	v.X = math.NaN()
	v.Y = math.NaN()
	v.Z = math.NaN()
	return v
}

// Clear sets all components to zero.
func (v *Vector) Clear() *Vector {
	v.X = 0
	v.Y = 0
	v.Z = 0
	return v
}

// NoZeros replaces any exactly-zero component with 1 so the vector can be
// used as an elementwise divisor.
func (v *Vector) NoZeros() *Vector {
	if v.X == 0 {
		v.X = 1
	}
	if v.Y == 0 {
		v.Y = 1
	}
	if v.Z == 0 {
		v.Z = 1
	}
	return v
}

// Cross returns the right-handed cross product v × rhs.
func (v Vector) Cross(rhs Vector) Vector {
	return Vector{
		v.Y*rhs.Z - v.Z*rhs.Y,
		v.Z*rhs.X - v.X*rhs.Z,
		v.X*rhs.Y - v.Y*rhs.X,
	}
}

// Dot returns the planar dot product over the x and y components only.
// The z term is deliberately excluded; use Dot3 for the full 3D product.
func (v Vector) Dot(rhs Vector) float64 {
	return v.X*rhs.X + v.Y*rhs.Y
}

// Dot3 returns the full three-axis dot product.
func (v Vector) Dot3(rhs Vector) float64 {
	return v.X*rhs.X + v.Y*rhs.Y + v.Z*rhs.Z
}

// Add returns the elementwise sum v + rhs.
func (v Vector) Add(rhs Vector) Vector {
	return Vector{v.X + rhs.X, v.Y + rhs.Y, v.Z + rhs.Z}
}

// AddScalar adds s to every component.
func (v Vector) AddScalar(s float64) Vector {
	return Vector{v.X + s, v.Y + s, v.Z + s}
}

// Sub returns the elementwise difference v − rhs.
func (v Vector) Sub(rhs Vector) Vector {
	return Vector{v.X - rhs.X, v.Y - rhs.Y, v.Z - rhs.Z}
}

// SubScalar subtracts s from every component.
func (v Vector) SubScalar(s float64) Vector {
	return Vector{v.X - s, v.Y - s, v.Z - s}
}

// Neg returns the negation of v.
func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Scale multiplies every component by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the elementwise (Hadamard) product v ∘ rhs.
func (v Vector) Mul(rhs Vector) Vector {
	return Vector{v.X * rhs.X, v.Y * rhs.Y, v.Z * rhs.Z}
}

// Div divides every component by s.
func (v Vector) Div(s float64) Vector {
	return Vector{v.X / s, v.Y / s, v.Z / s}
}

// DivVec returns the elementwise quotient v / rhs.
func (v Vector) DivVec(rhs Vector) Vector {
	return Vector{v.X / rhs.X, v.Y / rhs.Y, v.Z / rhs.Z}
}

// MulQuat treats v as a pure quaternion (zero scalar part) and multiplies it
// by rhs using the same sign pattern as Quaternion.Mul.
func (v Vector) MulQuat(rhs Quaternion) Quaternion {
	return Quaternion{
		W: -v.X*rhs.X - v.Y*rhs.Y - v.Z*rhs.Z,
		X: v.X*rhs.W - v.Y*rhs.Z + v.Z*rhs.Y,
		Y: v.X*rhs.Z + v.Y*rhs.W - v.Z*rhs.X,
		Z: -v.X*rhs.Y + v.Y*rhs.X + v.Z*rhs.W,
	}
}

// Power raises every component to the power n.
func (v Vector) Power(n float64) Vector {
	return Vector{math.Pow(v.X, n), math.Pow(v.Y, n), math.Pow(v.Z, n)}
}

// Sqrt returns the elementwise square root.
func (v Vector) Sqrt() Vector {
	return Vector{math.Sqrt(v.X), math.Sqrt(v.Y), math.Sqrt(v.Z)}
}

// Absf returns the elementwise absolute value.
func (v Vector) Absf() Vector {
	return Vector{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

// Sum returns x + y + z.
func (v Vector) Sum() float64 {
	return v.X + v.Y + v.Z
}

package spatial

import "math"

// RotX returns the rotation matrix for angle a (radians) about the x axis.
func RotX(a float64) Matrix3x3 {
	c, s := math.Cos(a), math.Sin(a)
	return Matrix3x3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns the rotation matrix for angle a (radians) about the y axis.
func RotY(a float64) Matrix3x3 {
	c, s := math.Cos(a), math.Sin(a)
	return Matrix3x3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ returns the rotation matrix for angle a (radians) about the z axis.
func RotZ(a float64) Matrix3x3 {
	c, s := math.Cos(a), math.Sin(a)
	return Matrix3x3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

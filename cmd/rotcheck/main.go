package main

import (
	"flag"
	"fmt"
	"math"

	"rotkit/spatial"
)

// rotcheck prints the quaternion and matrix forms of an Euler pose, then
// compares the direct and stable matrix-to-quaternion extraction paths for
// that pose. Useful for eyeballing precision loss near half-turns, where the
// direct formula's divisor collapses.
func main() {
	roll := flag.Float64("roll", 0, "Roll in degrees")
	pitch := flag.Float64("pitch", 0, "Pitch in degrees")
	yaw := flag.Float64("yaw", 0, "Yaw in degrees")

	flag.Parse()

	q := spatial.FromAngles(
		*roll*spatial.DegToRad,
		*pitch*spatial.DegToRad,
		*yaw*spatial.DegToRad,
	)
	m := q.ToRotationMatrix()

	fmt.Printf("pose: roll=%.4g° pitch=%.4g° yaw=%.4g°\n", *roll, *pitch, *yaw)
	fmt.Printf("quaternion: w=%+.9f x=%+.9f y=%+.9f z=%+.9f (norm %.12f)\n",
		q.W, q.X, q.Y, q.Z, q.Norm())
	fmt.Printf("angle: %.6f rad (%.4f°), axis: %+v\n",
		q.Angle(false), q.Angle(true), q.Axis())

	fmt.Println("rotation matrix:")
	for r := 0; r < 3; r++ {
		fmt.Printf("  [%+.9f %+.9f %+.9f]\n",
			m.Coeff(r, 0), m.Coeff(r, 1), m.Coeff(r, 2))
	}
	fmt.Printf("trace: %+.9f, det: %+.9f\n", m.Trace(), m.Det())

	stable := spatial.QuaternionFromMatrix(m)
	direct := m.ToQuaternion()

	fmt.Printf("stable extraction: w=%+.9f x=%+.9f y=%+.9f z=%+.9f\n",
		stable.W, stable.X, stable.Y, stable.Z)
	fmt.Printf("direct extraction: w=%+.9f x=%+.9f y=%+.9f z=%+.9f\n",
		direct.W, direct.X, direct.Y, direct.Z)

	fmt.Printf("stable round-trip drift: %.3g\n", drift(stable.ToRotationMatrix(), m))
	// The direct path follows the transpose sign convention; compare its
	// conjugate's reconstruction against the input.
	fmt.Printf("direct round-trip drift: %.3g\n", drift(direct.Conjugate().ToRotationMatrix(), m))
}

// drift returns the largest absolute elementwise difference between two
// matrices.
func drift(a, b spatial.Matrix3x3) float64 {
	var worst float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > worst {
			worst = d
		}
	}
	return worst
}

// Package gizmo renders an orientation gizmo — a textured cube with RGB axis
// beams — under an arbitrary rotation, as a quick visual check that a
// quaternion or matrix orientation means what the caller thinks it means.
package gizmo

import (
	"image"
	"math"

	"rotkit/spatial"
)

// Lighting holds the flat-shading parameters.
type Lighting struct {
	LightDir spatial.Vector
	Ambient  float64
	Direct   float64
}

// DefaultLighting returns a single key light high to the upper left.
func DefaultLighting() Lighting {
	light := spatial.Vector{X: -0.4, Y: 0.8, Z: -0.5}
	light.Normalize()
	return Lighting{
		LightDir: light,
		Ambient:  0.35,
		Direct:   0.65,
	}
}

// Camera returns the fixed view matrix: a slight downward tilt composed with
// a swing off the z axis, so all three beams stay visible.
func Camera() spatial.Matrix3x3 {
	return spatial.MatrixMul(
		spatial.RotX(-20*spatial.DegToRad),
		spatial.RotY(30*spatial.DegToRad),
	)
}

// Render draws the mesh under the given orientation into a size×size image,
// orthographically projected. skin textures the cube faces; nil falls back to
// the mesh's flat colors. supersample scales the internal resolution (the
// caller downsamples afterwards).
func Render(mesh Mesh, orientation spatial.Quaternion, skin *image.NRGBA, size, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample

	// Model rotation then fixed camera.
	r := spatial.MatrixMul(Camera(), orientation.ToRotationMatrix())

	// The gizmo fits in a sphere of radius ~1.6; leave a small margin.
	scale := float64(renderSize) / 3.6
	center := float64(renderSize) / 2

	fb := NewFrameBuffer(renderSize, renderSize)
	lt := DefaultLighting()

	for _, tri := range mesh.Tris {
		var sx, sy, sz [3]float64
		for i, v := range tri.V {
			p := r.MulVec(v)
			sx[i] = center + p.X*scale
			sy[i] = center - p.Y*scale
			sz[i] = p.Z
		}
		rasterize(fb, tri, sx, sy, sz, skin, &lt)
	}

	return fb.Image()
}

// rasterize fills one screen-space triangle with z-buffering and flat
// shading. Hot path: no allocations in the pixel loop.
func rasterize(fb *FrameBuffer, tri Triangle, sx, sy, sz [3]float64, skin *image.NRGBA, lt *Lighting) {
	x0, y0, z0 := sx[0], sy[0], sz[0]
	x1, y1, z1 := sx[1], sy[1], sz[1]
	x2, y2, z2 := sx[2], sy[2], sz[2]

	// Face normal in view space for flat shading.
	e1 := spatial.Vector{X: x1 - x0, Y: y1 - y0, Z: z1 - z0}
	e2 := spatial.Vector{X: x2 - x0, Y: y2 - y0, Z: z2 - z0}
	n := e1.Cross(e2)
	nl := n.Norm()
	if nl < 1e-8 {
		return
	}
	n = n.Div(nl)

	shade := lt.Ambient + lt.Direct*math.Abs(n.Dot3(lt.LightDir))
	if shade > 1 {
		shade = 1
	}

	// Clipped bounding box.
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1
	if minX < 0 {
		minX = 0
	}
	if maxX > fb.Width-1 {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > fb.Height-1 {
		maxY = fb.Height - 1
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	// Barycentric setup.
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	textured := tri.Textured && skin != nil

	for py := minY; py <= maxY; py++ {
		dsy := float64(py) - y2
		rowOff := py * fb.Width
		for px := minX; px <= maxX; px++ {
			dsx := float64(px) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + px
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			cr, cg, cb := tri.R, tri.G, tri.B
			if textured {
				u := w0*tri.UV[0][0] + w1*tri.UV[1][0] + w2*tri.UV[2][0]
				v := w0*tri.UV[0][1] + w1*tri.UV[1][1] + w2*tri.UV[2][1]
				cr, cg, cb = sampleSkin(skin, u, v)
			}

			i := zIdx * 4
			fb.Color[i] = uint8(float64(cr)*shade + 0.5)
			fb.Color[i+1] = uint8(float64(cg)*shade + 0.5)
			fb.Color[i+2] = uint8(float64(cb)*shade + 0.5)
			fb.Color[i+3] = 255
		}
	}
}

// sampleSkin reads the nearest texel for (u, v) in [0,1]², clamped.
func sampleSkin(skin *image.NRGBA, u, v float64) (uint8, uint8, uint8) {
	b := skin.Bounds()
	tx := b.Min.X + int(u*float64(b.Dx()-1)+0.5)
	ty := b.Min.Y + int(v*float64(b.Dy()-1)+0.5)
	if tx < b.Min.X {
		tx = b.Min.X
	}
	if tx >= b.Max.X {
		tx = b.Max.X - 1
	}
	if ty < b.Min.Y {
		ty = b.Min.Y
	}
	if ty >= b.Max.Y {
		ty = b.Max.Y - 1
	}
	i := skin.PixOffset(tx, ty)
	return skin.Pix[i], skin.Pix[i+1], skin.Pix[i+2]
}

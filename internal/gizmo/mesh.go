package gizmo

import "rotkit/spatial"

// Triangle is one renderable face: three vertices in model space, per-vertex
// UVs for textured faces, and a flat fallback color.
type Triangle struct {
	V        [3]spatial.Vector
	UV       [3][2]float64
	R, G, B  uint8
	Textured bool
}

// Mesh is a bag of triangles in model space.
type Mesh struct {
	Tris []Triangle
}

// Build returns the orientation gizmo: a textured unit cube centered at the
// origin plus three axis beams along +x (red), +y (green) and +z (blue). The
// beams make the handedness of an orientation readable at a glance.
func Build() Mesh {
	var m Mesh
	m.addCube(spatial.Vector{}, spatial.Identical(0.5), 200, 200, 210, true)

	const reach = 1.55
	const girth = 0.07
	m.addBeam(spatial.Vector{X: 1}, reach, girth, 230, 60, 60)
	m.addBeam(spatial.Vector{Y: 1}, reach, girth, 60, 200, 80)
	m.addBeam(spatial.Vector{Z: 1}, reach, girth, 70, 90, 230)
	return m
}

// addCube appends an axis-aligned box centered at c with half-extents h.
// Each face gets the full [0,1]² UV range when textured.
func (m *Mesh) addCube(c, h spatial.Vector, r, g, b uint8, textured bool) {
	lo := c.Sub(h)
	hi := c.Add(h)

	corner := func(mask int) spatial.Vector {
		v := lo
		if mask&1 != 0 {
			v.X = hi.X
		}
		if mask&2 != 0 {
			v.Y = hi.Y
		}
		if mask&4 != 0 {
			v.Z = hi.Z
		}
		return v
	}

	// Corner masks per face, wound counter-clockwise seen from outside.
	faces := [6][4]int{
		{1, 5, 7, 3}, // +x
		{4, 0, 2, 6}, // −x
		{2, 3, 7, 6}, // +y
		{4, 5, 1, 0}, // −y
		{5, 4, 6, 7}, // +z
		{0, 1, 3, 2}, // −z
	}
	uv := [4][2]float64{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

	for _, f := range faces {
		q := [4]spatial.Vector{corner(f[0]), corner(f[1]), corner(f[2]), corner(f[3])}
		m.Tris = append(m.Tris,
			Triangle{
				V:        [3]spatial.Vector{q[0], q[1], q[2]},
				UV:       [3][2]float64{uv[0], uv[1], uv[2]},
				R:        r, G: g, B: b,
				Textured: textured,
			},
			Triangle{
				V:        [3]spatial.Vector{q[0], q[2], q[3]},
				UV:       [3][2]float64{uv[0], uv[2], uv[3]},
				R:        r, G: g, B: b,
				Textured: textured,
			},
		)
	}
}

// addBeam appends a thin solid-color box running from the cube surface
// outward along the unit basis vector dir.
func (m *Mesh) addBeam(dir spatial.Vector, reach, girth float64, r, g, b uint8) {
	const inner = 0.5
	c := dir.Scale((inner + reach) / 2)
	half := (reach - inner) / 2

	h := spatial.Identical(girth)
	if dir.X != 0 {
		h.X = half
	}
	if dir.Y != 0 {
		h.Y = half
	}
	if dir.Z != 0 {
		h.Z = half
	}
	m.addCube(c, h, r, g, b, false)
}

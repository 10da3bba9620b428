package gizmo

import (
	"testing"

	"rotkit/spatial"
)

func TestBuildMeshShape(t *testing.T) {
	m := Build()
	// One cube (12 tris) plus three beams (12 tris each).
	if got := len(m.Tris); got != 48 {
		t.Fatalf("gizmo has %d triangles, want 48", got)
	}
	for i, tri := range m.Tris[:12] {
		if !tri.Textured {
			t.Errorf("cube face %d should be textured", i)
		}
	}
	for i, tri := range m.Tris[12:] {
		if tri.Textured {
			t.Errorf("beam face %d should be flat-colored", i)
		}
	}
}

func TestRenderCoversPixels(t *testing.T) {
	img := Render(Build(), spatial.FromAngles(0.4, 0.8, -0.2), nil, 64, 1)

	b := img.Bounds()
	if b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("bounds = %v", b)
	}

	opaque := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 255 {
			opaque++
		}
	}
	// The gizmo should cover a meaningful share of the frame but not all of it.
	if opaque == 0 {
		t.Fatal("render produced no opaque pixels")
	}
	if opaque == 64*64 {
		t.Fatal("render filled the whole frame")
	}
}

func TestRenderOrientationChangesImage(t *testing.T) {
	a := Render(Build(), spatial.QuaternionIdentity(), nil, 48, 1)
	b := Render(Build(), spatial.FromAngles(1.2, 0.5, 0.9), nil, 48, 1)

	same := true
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different orientations rendered identical frames")
	}
}

func TestCameraIsRotation(t *testing.T) {
	c := Camera()
	if d := c.Det(); d < 0.999999 || d > 1.000001 {
		t.Errorf("camera det = %v", d)
	}
}

package gridworld

import "testing"

func TestNewImageDimensions(t *testing.T) {
	img := NewImage(64, 48)
	if img.Width() != 64 || img.Height() != 48 {
		t.Errorf("dimensions = %dx%d, want 64x48", img.Width(), img.Height())
	}
	if img.Alpha() != 1 {
		t.Errorf("Alpha() = %f, want 1", img.Alpha())
	}
}

func TestSetAlphaClamps(t *testing.T) {
	img := NewImage(8, 8)
	img.SetAlpha(1.5)
	if img.Alpha() != 1 {
		t.Errorf("Alpha() = %f, want 1", img.Alpha())
	}
	img.SetAlpha(-0.2)
	if img.Alpha() != 0 {
		t.Errorf("Alpha() = %f, want 0", img.Alpha())
	}
	img.SetAlpha(0.5)
	if img.Alpha() != 0.5 {
		t.Errorf("Alpha() = %f, want 0.5", img.Alpha())
	}
}

func TestScaleResizes(t *testing.T) {
	img := NewImage(10, 10)
	img.Scale(25, 5)
	if img.Width() != 25 || img.Height() != 5 {
		t.Errorf("dimensions after Scale = %dx%d, want 25x5", img.Width(), img.Height())
	}
}

func TestMirrorKeepsDimensionsAndState(t *testing.T) {
	img := NewImage(12, 6)
	img.SetAlpha(0.7)
	img.Pen = ColorWhite

	m := img.Mirror(true, false)
	if m == img {
		t.Fatal("Mirror should return a new image")
	}
	if m.Width() != 12 || m.Height() != 6 {
		t.Errorf("mirrored dimensions = %dx%d, want 12x6", m.Width(), m.Height())
	}
	if m.Alpha() != 0.7 || m.Pen != ColorWhite {
		t.Error("Mirror should carry alpha and pen over")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	img := NewImage(10, 10)
	c := img.Copy()
	if c == img || c.surface() == img.surface() {
		t.Fatal("Copy should not share the backing surface")
	}
	c.Scale(20, 20)
	if img.Width() != 10 {
		t.Error("scaling the copy must not touch the original")
	}
}

func TestColorAtOutOfBounds(t *testing.T) {
	img := NewImage(4, 4)
	if _, err := img.ColorAt(4, 0); err == nil {
		t.Error("ColorAt outside the image should fail")
	}
	if _, err := img.ColorAt(0, -1); err == nil {
		t.Error("ColorAt with a negative coordinate should fail")
	}
}

func TestDrawPolygonNeedsThreePoints(t *testing.T) {
	img := NewImage(16, 16)
	if err := img.DrawPolygon([][2]int{{0, 0}, {5, 5}}, true); err == nil {
		t.Error("a two-point polygon should be rejected")
	}
	if err := img.DrawPolygon([][2]int{{0, 0}, {10, 0}, {5, 10}}, true); err != nil {
		t.Errorf("a triangle should draw, got %v", err)
	}
}

func TestRectWithImageCenteredOnCell(t *testing.T) {
	w := newTestWorld(10, 10, 40, true)
	a := newStub(kindPlayer)
	w.Add(a, 2, 3)
	a.SetImage(NewImage(20, 60))

	want := Rect{X: 90, Y: 110, Width: 20, Height: 60}
	if a.Rect() != want {
		t.Errorf("Rect() = %v, want image centered on the cell %v", a.Rect(), want)
	}
}

func TestToRGBA(t *testing.T) {
	c := toRGBA(Color{R: 1, G: 0.5, B: 0, A: 1})
	if c.R != 255 || c.G != 127 || c.B != 0 || c.A != 255 {
		t.Errorf("toRGBA = %+v", c)
	}
	c = toRGBA(Color{R: 2, G: -1, B: 0, A: 1})
	if c.R != 255 || c.G != 0 {
		t.Error("out-of-range components should clamp")
	}
}

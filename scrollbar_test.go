package gridworld

import (
	"testing"

	"github.com/tanema/gween/ease"
)

// scenarioViewport is a 2000x2000 canvas behind an 800x600 window, the
// standard oversized-world setup.
func scenarioViewport() *Viewport {
	return NewViewport(800, 600, 2000, 2000)
}

func TestViewportNeedsScrollbars(t *testing.T) {
	v := scenarioViewport()
	if !v.NeedsHorizontal() || !v.NeedsVertical() {
		t.Error("a canvas larger than the window needs both scrollbars")
	}

	small := NewViewport(800, 600, 400, 300)
	if small.NeedsHorizontal() || small.NeedsVertical() {
		t.Error("a canvas smaller than the window needs no scrollbars")
	}
}

func TestViewportShowFlagsDisableBars(t *testing.T) {
	v := scenarioViewport()
	v.ShowHorizontal = false
	if v.NeedsHorizontal() {
		t.Error("a disabled scrollbar is never shown")
	}
	if !v.NeedsVertical() {
		t.Error("disabling one bar must not affect the other")
	}
}

func TestThumbLength(t *testing.T) {
	// win * (win / (canvas + win)): 800 * 800/2800 and 600 * 600/2600.
	if got := thumbLen(800, 2000); !approxEqual(got, 800.0*800.0/2800.0, epsilon) {
		t.Errorf("thumbLen(800, 2000) = %f", got)
	}
	if got := thumbLen(600, 2000); !approxEqual(got, 600.0*600.0/2600.0, epsilon) {
		t.Errorf("thumbLen(600, 2000) = %f", got)
	}
}

func TestOffsetAtOrigin(t *testing.T) {
	v := scenarioViewport()
	x, y := v.Offset()
	if x != 0 || y != 0 {
		t.Errorf("Offset() = (%f, %f), want (0, 0) before panning", x, y)
	}
}

func TestOffsetAtTrackLimitShowsFarEdge(t *testing.T) {
	v := scenarioViewport()
	v.SetPosition(1e9, 1e9)

	x, y := v.Offset()
	if !approxEqual(x, -(2000 - 800), epsilon) {
		t.Errorf("x offset = %f, want %f", x, -(2000.0 - 800.0))
	}
	if !approxEqual(y, -(2000 - 600), epsilon) {
		t.Errorf("y offset = %f, want %f", y, -(2000.0 - 600.0))
	}
}

func TestOffsetNeverExceedsCanvas(t *testing.T) {
	v := scenarioViewport()
	v.Move(1e6, 1e6)
	x, y := v.Offset()
	if x < -(2000-800) || y < -(2000-600) {
		t.Errorf("Offset() = (%f, %f), pan must never slide past the canvas", x, y)
	}
	v.Move(-1e6, -1e6)
	x, y = v.Offset()
	if x > 0 || y > 0 {
		t.Errorf("Offset() = (%f, %f), pan must never go positive", x, y)
	}
}

func TestResizeSnapsThumbWhenBarNotNeeded(t *testing.T) {
	v := scenarioViewport()
	v.SetPosition(100, 100)

	v.Resize(2400, 2400)
	if v.hPos != 0 || v.vPos != 0 {
		t.Errorf("thumbs = (%f, %f), want (0, 0) after growing past the canvas", v.hPos, v.vPos)
	}
	x, y := v.Offset()
	if x != 0 || y != 0 {
		t.Errorf("Offset() = (%f, %f), want (0, 0)", x, y)
	}
}

func TestSetCanvasSizeReclamps(t *testing.T) {
	v := scenarioViewport()
	v.SetPosition(1e9, 1e9)
	v.SetCanvasSize(1000, 1000)

	if v.hPos > maxThumb(800, 1000) || v.vPos > maxThumb(600, 1000) {
		t.Error("thumbs should be re-clamped after a canvas swap")
	}
}

func TestThumbRects(t *testing.T) {
	v := scenarioViewport()
	h := v.HorizontalThumb()
	if h.Y != 600-scrollbarThickness || h.Height != scrollbarThickness {
		t.Errorf("horizontal thumb = %v, want it pinned to the bottom edge", h)
	}
	vt := v.VerticalThumb()
	if vt.X != 800-scrollbarThickness || vt.Width != scrollbarThickness {
		t.Errorf("vertical thumb = %v, want it pinned to the right edge", vt)
	}
}

func TestDragHorizontalThumb(t *testing.T) {
	v := scenarioViewport()
	var in InputState

	// Press inside the horizontal thumb.
	in.mouseX = 10
	in.mouseY = 600 - scrollbarThickness/2
	in.buttons[MouseButtonLeft] = true
	in.focused = true
	v.update(&in, 0)
	if v.drag != dragHorizontal {
		t.Fatal("press inside the thumb should start a horizontal drag")
	}

	// Drag 50px to the right.
	in.prevButtons[MouseButtonLeft] = true
	in.mouseX = 60
	v.update(&in, 0)
	if !approxEqual(v.hPos, 50, epsilon) {
		t.Errorf("hPos = %f, want 50 after a 50px drag", v.hPos)
	}

	// Release.
	in.buttons[MouseButtonLeft] = false
	v.update(&in, 0)
	if v.drag != dragNone {
		t.Error("button release should end the drag")
	}
}

func TestDragEndsOnFocusLoss(t *testing.T) {
	v := scenarioViewport()
	var in InputState
	in.mouseX = 10
	in.mouseY = 600 - scrollbarThickness/2
	in.buttons[MouseButtonLeft] = true
	in.focused = true
	v.update(&in, 0)

	in.prevButtons[MouseButtonLeft] = true
	in.focused = false
	v.update(&in, 0)
	if v.drag != dragNone {
		t.Error("losing focus mid-drag should end the drag")
	}
}

func TestDragClampedToTrack(t *testing.T) {
	v := scenarioViewport()
	var in InputState
	in.mouseX = 10
	in.mouseY = 600 - scrollbarThickness/2
	in.buttons[MouseButtonLeft] = true
	in.focused = true
	v.update(&in, 0)

	in.prevButtons[MouseButtonLeft] = true
	in.mouseX = 5000
	v.update(&in, 0)

	if !approxEqual(v.hPos, maxThumb(800, 2000), epsilon) {
		t.Errorf("hPos = %f, want the track limit %f", v.hPos, maxThumb(800, 2000))
	}
	x, _ := v.Offset()
	if !approxEqual(x, -(2000 - 800), epsilon) {
		t.Errorf("x offset at track limit = %f, want %f", x, -(2000.0 - 800.0))
	}
}

func TestScrollToAnimates(t *testing.T) {
	v := scenarioViewport()
	v.ScrollTo(100, 0, 1, ease.Linear)

	v.update(nil, 0.5)
	if !approxEqual(v.hPos, 50, 0.01) {
		t.Errorf("hPos = %f halfway through, want 50", v.hPos)
	}

	v.update(nil, 0.5)
	if !approxEqual(v.hPos, 100, 0.01) {
		t.Errorf("hPos = %f at the end, want 100", v.hPos)
	}
	if v.scrollTween != nil {
		t.Error("finished animation should be released")
	}
}

func TestSetPositionCancelsScrollTo(t *testing.T) {
	v := scenarioViewport()
	v.ScrollTo(100, 100, 1, ease.Linear)
	v.SetPosition(5, 5)

	if v.scrollTween != nil {
		t.Error("SetPosition should cancel a running scroll animation")
	}
	if v.hPos != 5 || v.vPos != 5 {
		t.Errorf("position = (%f, %f), want (5, 5)", v.hPos, v.vPos)
	}
}

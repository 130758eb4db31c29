package gridworld

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollbarThickness is the pixel width of a scrollbar track.
const scrollbarThickness = 14

// dragAxis identifies which scrollbar thumb, if any, is being dragged.
type dragAxis uint8

const (
	dragNone dragAxis = iota
	dragHorizontal
	dragVertical
)

// scrollAnim holds active scroll-to tweens for the two thumb positions.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport reconciles a window smaller than the world canvas with user
// panning. It owns the two scrollbar thumbs, the drag state, and the pan
// offset applied when the canvas is blitted to the window.
//
// Thumb positions live in track space: a thumb position of zero shows the
// canvas origin and the track's far end shows the canvas's far edge. The
// pan offset derived from them is always clamped so the visible window
// never slides past the canvas.
type Viewport struct {
	winW, winH       float64
	canvasW, canvasH float64

	// ShowHorizontal and ShowVertical independently enable each scrollbar.
	// A disabled bar is neither drawn nor draggable, but programmatic
	// panning still works on that axis.
	ShowHorizontal bool
	ShowVertical   bool

	hPos, vPos float64
	drag       dragAxis
	lastMouseX float64
	lastMouseY float64

	scrollTween *scrollAnim
}

// NewViewport creates a viewport for the given window and canvas pixel
// sizes. Both scrollbars start enabled.
func NewViewport(winW, winH, canvasW, canvasH int) *Viewport {
	return &Viewport{
		winW:           float64(winW),
		winH:           float64(winH),
		canvasW:        float64(canvasW),
		canvasH:        float64(canvasH),
		ShowHorizontal: true,
		ShowVertical:   true,
	}
}

// Resize records a new window size, re-clamps both thumbs, and snaps a
// thumb back to the origin when its scrollbar is no longer needed, so that
// previously panned content re-centers deterministically after a maximize.
func (v *Viewport) Resize(winW, winH int) {
	v.winW = float64(winW)
	v.winH = float64(winH)
	if !v.needsH() {
		v.hPos = 0
	}
	if !v.needsV() {
		v.vPos = 0
	}
	v.clampThumbs()
}

// SetCanvasSize records a new canvas size, typically after a world swap.
func (v *Viewport) SetCanvasSize(canvasW, canvasH int) {
	v.canvasW = float64(canvasW)
	v.canvasH = float64(canvasH)
	if !v.needsH() {
		v.hPos = 0
	}
	if !v.needsV() {
		v.vPos = 0
	}
	v.clampThumbs()
}

func (v *Viewport) needsH() bool { return v.winW < v.canvasW }
func (v *Viewport) needsV() bool { return v.winH < v.canvasH }

// NeedsHorizontal reports whether the horizontal scrollbar is shown.
func (v *Viewport) NeedsHorizontal() bool { return v.ShowHorizontal && v.needsH() }

// NeedsVertical reports whether the vertical scrollbar is shown.
func (v *Viewport) NeedsVertical() bool { return v.ShowVertical && v.needsV() }

// thumbLen returns the proportional thumb length for one axis. The fraction
// keeps the window size in its own denominator; the drag calibration and
// the offset mapping both assume exactly this length.
func thumbLen(win, canvas float64) float64 {
	return win * (win / (canvas + win))
}

// maxThumb returns the largest allowed thumb position on an axis, i.e. the
// track length minus the thumb length.
func maxThumb(win, canvas float64) float64 {
	if win >= canvas {
		return 0
	}
	return win - thumbLen(win, canvas)
}

func (v *Viewport) clampThumbs() {
	v.hPos = clampFloat(v.hPos, 0, maxThumb(v.winW, v.canvasW))
	v.vPos = clampFloat(v.vPos, 0, maxThumb(v.winH, v.canvasH))
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// HorizontalThumb returns the horizontal thumb rectangle in window space.
func (v *Viewport) HorizontalThumb() Rect {
	return Rect{
		X:      v.hPos,
		Y:      v.winH - scrollbarThickness,
		Width:  thumbLen(v.winW, v.canvasW),
		Height: scrollbarThickness,
	}
}

// VerticalThumb returns the vertical thumb rectangle in window space.
func (v *Viewport) VerticalThumb() Rect {
	return Rect{
		X:      v.winW - scrollbarThickness,
		Y:      v.vPos,
		Width:  scrollbarThickness,
		Height: thumbLen(v.winH, v.canvasH),
	}
}

// axisOffset maps a thumb position linearly onto the hidden portion of the
// canvas on one axis: the thumb at its track limit exposes the canvas's far
// edge, never more.
func axisOffset(pos, win, canvas float64) float64 {
	max := maxThumb(win, canvas)
	if max <= 0 {
		return 0
	}
	return -pos / max * (canvas - win)
}

// Offset returns the canvas blit offset in window space. Both components
// are <= 0 and never smaller than -(canvas-window) on their axis.
func (v *Viewport) Offset() (x, y float64) {
	return axisOffset(v.hPos, v.winW, v.canvasW), axisOffset(v.vPos, v.winH, v.canvasH)
}

// Move pans relatively by (dx, dy) in thumb-track space, clamped.
func (v *Viewport) Move(dx, dy float64) {
	v.SetPosition(v.hPos+dx, v.vPos+dy)
}

// SetPosition pans absolutely to (x, y) in thumb-track space, clamped.
func (v *Viewport) SetPosition(x, y float64) {
	v.scrollTween = nil
	v.hPos = x
	v.vPos = y
	v.clampThumbs()
}

// ScrollTo animates both thumbs to (x, y) in thumb-track space over
// duration seconds.
func (v *Viewport) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	x = clampFloat(x, 0, maxThumb(v.winW, v.canvasW))
	y = clampFloat(y, 0, maxThumb(v.winH, v.canvasH))
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.hPos), float32(x), duration, easeFn),
		tweenY: gween.New(float32(v.vPos), float32(y), duration, easeFn),
	}
}

// update advances scroll animation and thumb dragging for one frame.
// A drag starts when the primary button goes down inside a shown thumb and
// ends on button-up or when the window loses focus mid-drag.
func (v *Viewport) update(in *InputState, dt float32) {
	if v.scrollTween != nil {
		st := v.scrollTween
		if !st.doneX {
			val, done := st.tweenX.Update(dt)
			v.hPos = float64(val)
			st.doneX = done
		}
		if !st.doneY {
			val, done := st.tweenY.Update(dt)
			v.vPos = float64(val)
			st.doneY = done
		}
		if st.doneX && st.doneY {
			v.scrollTween = nil
		}
	}

	if in == nil {
		return
	}
	mx := float64(in.MouseX())
	my := float64(in.MouseY())

	switch {
	case v.drag != dragNone:
		if !in.MouseDown(MouseButtonLeft) || !in.Focused() {
			v.drag = dragNone
			break
		}
		if v.drag == dragHorizontal {
			v.hPos += mx - v.lastMouseX
		} else {
			v.vPos += my - v.lastMouseY
		}
		v.clampThumbs()
	case in.MouseJustPressed(MouseButtonLeft):
		if v.NeedsHorizontal() && v.HorizontalThumb().Contains(mx, my) {
			v.drag = dragHorizontal
			v.scrollTween = nil
		} else if v.NeedsVertical() && v.VerticalThumb().Contains(mx, my) {
			v.drag = dragVertical
			v.scrollTween = nil
		}
	}
	v.lastMouseX = mx
	v.lastMouseY = my
}

// Scrollbar drawing colors, in the muted style of desktop widget chrome.
var (
	scrollTrackColor = color.RGBA{0x20, 0x20, 0x20, 0xc0}
	scrollThumbColor = color.RGBA{0x90, 0x90, 0x90, 0xff}
)

// draw renders the needed scrollbars on top of the presented frame.
func (v *Viewport) draw(screen *ebiten.Image) {
	if v.NeedsHorizontal() {
		vector.DrawFilledRect(screen,
			0, float32(v.winH-scrollbarThickness),
			float32(v.winW), scrollbarThickness, scrollTrackColor, false)
		t := v.HorizontalThumb()
		vector.DrawFilledRect(screen,
			float32(t.X), float32(t.Y), float32(t.Width), float32(t.Height),
			scrollThumbColor, false)
	}
	if v.NeedsVertical() {
		vector.DrawFilledRect(screen,
			float32(v.winW-scrollbarThickness), 0,
			scrollbarThickness, float32(v.winH), scrollTrackColor, false)
		t := v.VerticalThumb()
		vector.DrawFilledRect(screen,
			float32(t.X), float32(t.Y), float32(t.Width), float32(t.Height),
			scrollThumbColor, false)
	}
}

package gridworld

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// World is the capability the driver expects from a world. Concrete worlds
// embed WorldBase, which supplies everything including a no-op Act hook:
//
//	type SavannaWorld struct {
//		gridworld.WorldBase
//	}
//
//	func NewSavannaWorld(app *gridworld.App) *SavannaWorld {
//		w := &SavannaWorld{WorldBase: gridworld.NewWorld(app, 20, 15, 40, true)}
//		...
//		return w
//	}
//
// Worlds that override Act get it called once per simulated frame, before
// actor dispatch.
type World interface {
	// Act is the world's own per-frame hook. The WorldBase default does
	// nothing.
	Act()

	base() *WorldBase
}

// cellPos addresses a single grid cell.
type cellPos struct {
	x, y int
}

// overlayText is a rendered text pinned to a cell, stored with its
// precomputed pixel position so repaint is a plain blit.
type overlayText struct {
	text   *Text
	px, py int
}

// WorldBase holds the fixed-size cell grid, the actor registry, the act and
// paint dispatch orders, the overlay texts, and the world-speed gate.
// Width, height, and cell size are immutable after construction.
type WorldBase struct {
	app      *App
	width    int
	height   int
	cellSize int
	bounding bool

	registry   *actorRegistry
	actOrder   []Kind
	paintOrder []Kind

	background *Image
	canvas     *ebiten.Image
	texts      map[cellPos]*overlayText

	running  bool
	speed    time.Duration
	lastStep time.Time
	clock    clock
}

// NewWorld creates a world of width x height cells, each cellSize pixels on
// a side. With bounding enabled, actor positions are clamped to the grid on
// every write. The world starts running, with its speed taken from the
// driver's defaultWorldSpeed configuration.
func NewWorld(app *App, width, height, cellSize int, bounding bool) WorldBase {
	w := WorldBase{
		app:      app,
		width:    width,
		height:   height,
		cellSize: cellSize,
		bounding: bounding,
		registry: newActorRegistry(),
		texts:    make(map[cellPos]*overlayText),
		running:  true,
		clock:    systemClock{},
	}
	if app != nil {
		w.speed = app.cfg.worldSpeed()
	}
	return w
}

func (w *WorldBase) base() *WorldBase { return w }

// Act is the world's per-frame hook. Override it in your world type; the
// default does nothing.
func (w *WorldBase) Act() {}

// Width returns the world width in cells.
func (w *WorldBase) Width() int { return w.width }

// Height returns the world height in cells.
func (w *WorldBase) Height() int { return w.height }

// CellSize returns the pixel edge length of one cell.
func (w *WorldBase) CellSize() int { return w.cellSize }

// Bounding reports whether actor positions are clamped to the grid.
func (w *WorldBase) Bounding() bool { return w.bounding }

// App returns the driver this world was constructed with.
func (w *WorldBase) App() *App { return w.app }

// Running reports whether the simulation is running (not paused).
func (w *WorldBase) Running() bool { return w.running }

// Pause suspends the simulation. While paused, step neither acts nor
// repaints; pressing the space key resumes.
func (w *WorldBase) Pause() { w.running = false }

// Resume restarts a paused simulation.
func (w *WorldBase) Resume() { w.running = true }

// Speed returns the minimum wall-clock interval between simulated frames.
func (w *WorldBase) Speed() time.Duration { return w.speed }

// SetSpeed sets the minimum wall-clock interval between simulated frames,
// decoupling the simulation rate from the display refresh rate. Zero runs
// the simulation every displayed frame.
func (w *WorldBase) SetSpeed(d time.Duration) { w.speed = d }

// SetActOrder sets the kinds whose actors act first each frame, in the
// given order. Kinds not listed act afterward in unspecified order.
func (w *WorldBase) SetActOrder(kinds ...Kind) {
	w.actOrder = append([]Kind(nil), kinds...)
}

// ActOrder returns the current act order.
func (w *WorldBase) ActOrder() []Kind { return w.actOrder }

// SetPaintOrder sets the kinds whose actors are painted first each frame,
// in the given order. Kinds not listed paint afterward in unspecified
// order. Paint order within a single kind cannot be influenced.
func (w *WorldBase) SetPaintOrder(kinds ...Kind) {
	w.paintOrder = append([]Kind(nil), kinds...)
}

// PaintOrder returns the current paint order.
func (w *WorldBase) PaintOrder() []Kind { return w.paintOrder }

// Add registers an actor in this world under its concrete kind, places it
// at cell (x, y) (clamped if bounding is on), and invokes the actor's
// OnWorldAdd hook if present. An actor already in another world is removed
// from it first; an actor may live in at most one world at a time.
//
// Add panics with *InvalidActorError for a nil actor or one whose kind was
// never declared with RegisterKind.
func (w *WorldBase) Add(a Actor, x, y int) {
	if a == nil || a.base() == nil {
		panic(&InvalidActorError{Msg: "nil actor"})
	}
	b := a.base()
	if !kindRegistered(b.kind) {
		panic(&InvalidActorError{Kind: b.kind, Msg: "kind not registered; declare it with RegisterKind"})
	}
	if b.world != nil && b.world != w {
		b.world.Remove(a)
	}
	w.registry.add(a)
	b.world = w
	b.self = a
	b.SetPosition(x, y)
	if h, ok := a.(WorldAddHandler); ok {
		h.OnWorldAdd(w)
	}
}

// Remove takes the given actors out of the world. For each actor that is
// actually present, the OnWorldRemove hook (if any) runs first, then the
// actor is unregistered. Removing an absent actor is a no-op, so a double
// remove never fires the hook twice.
func (w *WorldBase) Remove(actors ...Actor) {
	for _, a := range actors {
		if a == nil || !w.registry.contains(a) {
			continue
		}
		if h, ok := a.(WorldRemoveHandler); ok {
			h.OnWorldRemove(w)
		}
		w.registry.remove(a)
		b := a.base()
		b.world = nil
		b.self = nil
	}
}

// NumberOfActors returns how many actors currently live in the world.
func (w *WorldBase) NumberOfActors() int {
	return w.registry.size()
}

// ShowText renders text and pins it centered on cell (x, y), replacing any
// text already there. An empty string removes the cell's text.
func (w *WorldBase) ShowText(text string, x, y int) {
	if text == "" {
		delete(w.texts, cellPos{x, y})
		return
	}
	t := DefaultFont().Render(text, ColorBlack)
	half := w.cellSize / 2
	px := x*w.cellSize + half - t.Width()/2
	py := y*w.cellSize + half - t.Height()/2
	w.texts[cellPos{x, y}] = &overlayText{text: t, px: px, py: py}
}

// TextAt returns the overlay text at cell (x, y), or "" if there is none.
func (w *WorldBase) TextAt(x, y int) string {
	if t, ok := w.texts[cellPos{x, y}]; ok {
		return t.text.String()
	}
	return ""
}

// step runs one driver frame: the pause check, the world-speed gate, the
// act cycle, and the repaint. self is the concrete world, so the overridden
// Act hook is dispatched. in may be nil when no input has been polled yet.
//
// A paused world only watches for the resume key; a gated world returns
// without acting or repainting. The gate compares wall time elapsed since
// the last executed frame, and the completion time of each executed frame
// becomes the new reference point.
func (w *WorldBase) step(self World, in *InputState) {
	if !w.running {
		if in == nil || !in.KeyDown(ebiten.KeySpace) {
			return
		}
		w.running = true
	}
	if w.clock.Now().Sub(w.lastStep) < w.speed {
		return
	}
	w.actCycle(self)
	w.repaint()
	w.lastStep = w.clock.Now()
}

// actCycle runs the world hook, then every actor's Act in dispatch order.
// Each kind's actor set is snapshotted before iteration, so actors may
// safely add or remove actors (themselves included) mid-cycle. Panics from
// user hooks propagate; the frame loop is meant to die loudly on bugs.
func (w *WorldBase) actCycle(self World) {
	self.Act()
	for _, kind := range w.registry.orderedKinds(w.actOrder) {
		for _, a := range w.registry.snapshotOf(kind) {
			a.Act()
		}
	}
}

// ensureCanvas allocates the world canvas on first use. Worlds never
// attached to a driver (as in unit tests) allocate no GPU memory.
func (w *WorldBase) ensureCanvas() *ebiten.Image {
	if w.canvas == nil {
		w.canvas = ebiten.NewImage(w.width*w.cellSize, w.height*w.cellSize)
	}
	return w.canvas
}

// repaint redraws the whole canvas: background (or a black fill), actors in
// paint order, then overlay texts. A no-op until the canvas exists.
func (w *WorldBase) repaint() {
	if w.canvas == nil {
		return
	}
	if w.background != nil {
		var op ebiten.DrawImageOptions
		w.canvas.DrawImage(w.background.surface(), &op)
	} else {
		w.canvas.Fill(color.Black)
	}

	half := float64(w.cellSize) / 2
	for _, kind := range w.registry.orderedKinds(w.paintOrder) {
		for _, a := range w.registry.snapshotOf(kind) {
			b := a.base()
			if b.image == nil {
				continue
			}
			img := b.image.surface()
			bounds := img.Bounds()
			var op ebiten.DrawImageOptions
			op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
			if b.rot != 0 {
				op.GeoM.Rotate(b.rot * degToRad)
			}
			op.GeoM.Translate(float64(b.x*w.cellSize)+half, float64(b.y*w.cellSize)+half)
			op.ColorScale.ScaleAlpha(float32(b.image.alpha))
			w.canvas.DrawImage(img, &op)
		}
	}

	for _, t := range w.texts {
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(float64(t.px), float64(t.py))
		w.canvas.DrawImage(t.text.surface(), &op)
	}
}

// ColorAt returns the canvas color at the center of cell (x, y). Actors and
// texts already painted there are included. This reads pixels back from the
// GPU and is expensive; avoid calling it per actor per frame.
func (w *WorldBase) ColorAt(x, y int) Color {
	half := w.cellSize / 2
	c := w.ensureCanvas().At(x*w.cellSize+half, y*w.cellSize+half)
	r, g, b, a := c.RGBA()
	return Color{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
		A: float64(a) / 0xffff,
	}
}

// SetBackground tiles img across the world canvas, repeating it in both
// directions until every cell is covered. With scaleToCell set the image is
// first scaled to cellSize x cellSize so each cell gets one copy.
func (w *WorldBase) SetBackground(img *Image, scaleToCell bool) {
	if scaleToCell {
		img = img.Copy()
		img.Scale(w.cellSize, w.cellSize)
	}
	pw := w.width * w.cellSize
	ph := w.height * w.cellSize
	bg := NewImage(pw, ph)
	for x := 0; x < pw; x += img.Width() {
		for y := 0; y < ph; y += img.Height() {
			bg.DrawImage(img, x, y)
		}
	}
	w.background = bg
}

// SetBackgroundFile loads an image from the configured image resource
// folder and tiles it as the background.
func (w *WorldBase) SetBackgroundFile(name string, scaleToCell bool) error {
	if w.app == nil {
		return errors.New("gridworld: world has no driver to resolve resources")
	}
	img, err := w.app.LoadImage(name)
	if err != nil {
		return err
	}
	w.SetBackground(img, scaleToCell)
	return nil
}

// Background returns the tiled background image, or nil if none was set.
func (w *WorldBase) Background() *Image { return w.background }

package gridworld

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// chromeMargin is the window-size margin reserved for OS chrome (title
// bar, taskbar) when deriving a window size from the display.
const chromeMargin = 80

// wheelScrollStep is how far one mouse-wheel notch pans the viewport, in
// pixels of thumb track.
const wheelScrollStep = 30

// App is the application driver: it owns the single active world, the
// event pump, the frame clock, and the window. Construct one explicitly
// and pass it to whatever needs it; there is no hidden global instance.
//
//	app := gridworld.NewApp(gridworld.LoadConfig("gridworld.cfg"))
//	if err := app.SetWorld(NewMyWorld(app)); err != nil { ... }
//	if err := app.Run(); err != nil { ... }
type App struct {
	cfg      Config
	world    World
	viewport *Viewport
	input    InputState
	fallback fs.FS
	players  []*audio.Player

	screenshotQueue []string
	screenshotDir   string

	running  bool
	quitting bool
	debug    bool
	winW     int
	winH     int
}

// NewApp creates a driver with the given configuration and applies the
// window, frame-rate, and vsync settings to the host library.
func NewApp(cfg Config) *App {
	a := &App{cfg: cfg, viewport: NewViewport(1, 1, 1, 1), screenshotDir: "screenshots"}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.FPSLimit)
	ebiten.SetVsyncEnabled(cfg.VSync)
	switch cfg.WindowMode {
	case WindowFullscreen:
		ebiten.SetFullscreen(true)
	case WindowBorderless:
		ebiten.SetWindowDecorated(false)
		ebiten.SetWindowSize(ebiten.Monitor().Size())
	case WindowFixed:
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	default:
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return a
}

// Config returns the driver's configuration.
func (a *App) Config() Config { return a.cfg }

// World returns the active world, or nil before one is set.
func (a *App) World() World { return a.world }

// Viewport returns the viewport/scrollbar controller.
func (a *App) Viewport() *Viewport { return a.viewport }

// SetDebug toggles the FPS/TPS overlay.
func (a *App) SetDebug(enabled bool) { a.debug = enabled }

// SetWorld makes w the active world, replacing any previous one, and
// re-creates the window surface: the window is sized to fit the world
// canvas, the configured window size, or the display (minus a chrome
// margin), whichever is smallest. A nil world is an error.
func (a *App) SetWorld(w World) error {
	if w == nil || w.base() == nil {
		return fmt.Errorf("%w: SetWorld(nil)", ErrNoWorld)
	}
	a.world = w
	wb := w.base()
	wb.ensureCanvas()

	canvasW := wb.width * wb.cellSize
	canvasH := wb.height * wb.cellSize
	winW, winH := canvasW, canvasH
	if a.cfg.WindowWidth > 0 && a.cfg.WindowWidth < winW {
		winW = a.cfg.WindowWidth
	}
	if a.cfg.WindowHeight > 0 && a.cfg.WindowHeight < winH {
		winH = a.cfg.WindowHeight
	}
	if mw, mh := ebiten.Monitor().Size(); mw > 0 && mh > 0 {
		if mw-chromeMargin < winW {
			winW = mw - chromeMargin
		}
		if mh-chromeMargin < winH {
			winH = mh - chromeMargin
		}
	}
	ebiten.SetWindowSize(winW, winH)
	a.winW, a.winH = winW, winH
	a.viewport.Resize(winW, winH)
	a.viewport.SetCanvasSize(canvasW, canvasH)
	return nil
}

// Stop ends the frame loop: Run returns and the multimedia subsystem is
// released, but the process keeps running. Takes effect at the top of the
// next frame; an in-progress frame always completes.
func (a *App) Stop() {
	a.running = false
}

// Quit stops all sounds, ends the frame loop, and terminates the process
// with exit code 0. Library callers that want control back should use Stop
// instead.
func (a *App) Quit() {
	a.StopAllSounds()
	a.quitting = true
	a.running = false
}

// Input returns the driver's input snapshot for the current frame.
func (a *App) Input() *InputState { return &a.input }

// KeyStates returns the held state of each given key this frame.
func (a *App) KeyStates(keys ...ebiten.Key) []bool {
	return a.input.KeyStates(keys...)
}

// Mouse returns the mouse snapshot for the current frame.
func (a *App) Mouse() MouseInfo {
	_, wheelY := a.input.Wheel()
	return MouseInfo{
		X:     a.input.MouseX(),
		Y:     a.input.MouseY(),
		Wheel: wheelY,
		Buttons: [3]bool{
			a.input.MouseDown(MouseButtonLeft),
			a.input.MouseDown(MouseButtonRight),
			a.input.MouseDown(MouseButtonMiddle),
		},
		InWindow: a.input.MouseX() >= 0 && a.input.MouseX() < a.winW &&
			a.input.MouseY() >= 0 && a.input.MouseY() < a.winH,
	}
}

// MoveWorld pans the viewport by (dx, dy) in thumb-track space.
func (a *App) MoveWorld(dx, dy float64) {
	a.viewport.Move(dx, dy)
}

// SetWorldPosition pans the viewport to (x, y) in thumb-track space.
func (a *App) SetWorldPosition(x, y float64) {
	a.viewport.SetPosition(x, y)
}

// Run starts the frame loop and blocks until Stop, Quit, or the window
// closing. If no world is set, the configured firstWorld is instantiated;
// with neither, Run fails with ErrNoWorld. Errors from user callbacks
// propagate out of the loop and are returned.
func (a *App) Run() error {
	if a.world == nil {
		if a.cfg.FirstWorld == "" {
			return ErrNoWorld
		}
		factory, ok := lookupWorld(a.cfg.FirstWorld)
		if !ok {
			return fmt.Errorf("%w: firstWorld %q not registered", ErrNoWorld, a.cfg.FirstWorld)
		}
		if err := a.SetWorld(factory(a)); err != nil {
			return err
		}
	}
	if a.cfg.Icon != "" {
		if icon, err := a.LoadImage(a.cfg.Icon); err == nil {
			ebiten.SetWindowIcon([]image.Image{icon.surface()})
		} else {
			warnf("window icon: %v", err)
		}
	}

	a.running = true
	err := ebiten.RunGame(a)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if a.quitting {
		os.Exit(0)
	}
	return err
}

// Update is the ebiten.Game frame callback: poll input, step the world,
// advance the viewport. The running flag is the loop's only cancellation
// point, checked once per frame.
func (a *App) Update() error {
	if !a.running {
		return ebiten.Termination
	}
	a.input.poll()

	// Wheel pans vertically, shift+wheel horizontally. Ctrl+arrows pan in
	// steps for keyboard-only setups.
	if _, wy := a.input.Wheel(); wy != 0 {
		if a.input.shiftDown() {
			a.viewport.Move(-wy*wheelScrollStep, 0)
		} else {
			a.viewport.Move(0, -wy*wheelScrollStep)
		}
	}
	if a.input.KeyDown(ebiten.KeyControlLeft) || a.input.KeyDown(ebiten.KeyControlRight) {
		if a.input.KeyJustPressed(ebiten.KeyArrowLeft) {
			a.viewport.Move(-wheelScrollStep, 0)
		}
		if a.input.KeyJustPressed(ebiten.KeyArrowRight) {
			a.viewport.Move(wheelScrollStep, 0)
		}
		if a.input.KeyJustPressed(ebiten.KeyArrowUp) {
			a.viewport.Move(0, -wheelScrollStep)
		}
		if a.input.KeyJustPressed(ebiten.KeyArrowDown) {
			a.viewport.Move(0, wheelScrollStep)
		}
	}

	a.world.base().step(a.world, &a.input)

	dt := float32(1.0 / float64(ebiten.TPS()))
	a.viewport.update(&a.input, dt)

	if !a.running {
		return ebiten.Termination
	}
	return nil
}

// Draw presents the world canvas at the viewport's pan offset, then the
// scrollbars, then the debug overlay.
func (a *App) Draw(screen *ebiten.Image) {
	if a.world == nil {
		return
	}
	ox, oy := a.viewport.Offset()
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(ox, oy)
	screen.DrawImage(a.world.base().ensureCanvas(), &op)
	a.viewport.draw(screen)
	if a.debug {
		a.drawFPS(screen)
	}
	a.flushScreenshots(screen)
}

// Layout tracks the OS window size and forwards resizes to the viewport.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.winW || outsideHeight != a.winH {
		a.winW, a.winH = outsideWidth, outsideHeight
		a.viewport.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// World factory registry for the firstWorld configuration key. Worlds
// register a named constructor, typically from an init function:
//
//	func init() {
//		gridworld.RegisterWorld("savanna.SavannaWorld", func(app *gridworld.App) gridworld.World {
//			return NewSavannaWorld(app)
//		})
//	}
var (
	worldFactoryMu sync.RWMutex
	worldFactories = make(map[string]func(*App) World)
)

// RegisterWorld adds a named world constructor, resolvable through the
// firstWorld configuration key.
func RegisterWorld(name string, factory func(*App) World) {
	worldFactoryMu.Lock()
	defer worldFactoryMu.Unlock()
	worldFactories[name] = factory
}

func lookupWorld(name string) (func(*App) World, bool) {
	worldFactoryMu.RLock()
	defer worldFactoryMu.RUnlock()
	f, ok := worldFactories[name]
	return f, ok
}

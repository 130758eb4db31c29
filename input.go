package gridworld

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// InputState is the driver's read-only snapshot of keyboard and mouse
// state, refreshed once per frame. Values read from it are valid only for
// the current frame, until the next poll.
type InputState struct {
	keys        [ebiten.KeyMax + 1]bool
	prevKeys    [ebiten.KeyMax + 1]bool
	mouseX      int
	mouseY      int
	buttons     [3]bool
	prevButtons [3]bool
	wheelX      float64
	wheelY      float64
	focused     bool
}

// poll refreshes the snapshot from the host library. Called by the driver
// at the top of every frame, before anything else runs.
func (in *InputState) poll() {
	in.prevKeys = in.keys
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		in.keys[k] = ebiten.IsKeyPressed(k)
	}
	in.prevButtons = in.buttons
	in.buttons[MouseButtonLeft] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.buttons[MouseButtonRight] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	in.buttons[MouseButtonMiddle] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	in.mouseX, in.mouseY = ebiten.CursorPosition()
	in.wheelX, in.wheelY = ebiten.Wheel()
	in.focused = ebiten.IsFocused()
}

// KeyDown reports whether the key is held this frame.
func (in *InputState) KeyDown(key ebiten.Key) bool {
	if key < 0 || key > ebiten.KeyMax {
		return false
	}
	return in.keys[key]
}

// KeyJustPressed reports whether the key went down this frame.
func (in *InputState) KeyJustPressed(key ebiten.Key) bool {
	if key < 0 || key > ebiten.KeyMax {
		return false
	}
	return in.keys[key] && !in.prevKeys[key]
}

// KeyStates returns the held state of each given key, in argument order.
func (in *InputState) KeyStates(keys ...ebiten.Key) []bool {
	out := make([]bool, len(keys))
	for i, k := range keys {
		out[i] = in.KeyDown(k)
	}
	return out
}

// MouseX returns the cursor X in window pixels.
func (in *InputState) MouseX() int { return in.mouseX }

// MouseY returns the cursor Y in window pixels.
func (in *InputState) MouseY() int { return in.mouseY }

// MouseDown reports whether the button is held this frame.
func (in *InputState) MouseDown(b MouseButton) bool {
	return int(b) < len(in.buttons) && in.buttons[b]
}

// MouseJustPressed reports whether the button went down this frame.
func (in *InputState) MouseJustPressed(b MouseButton) bool {
	return int(b) < len(in.buttons) && in.buttons[b] && !in.prevButtons[b]
}

// Wheel returns the scroll wheel movement since the last frame. Negative Y
// means scrolling down.
func (in *InputState) Wheel() (x, y float64) {
	return in.wheelX, in.wheelY
}

// Focused reports whether the window had input focus at poll time.
func (in *InputState) Focused() bool { return in.focused }

// namedKeys maps friendly key names to keys, for IsKeyPressed.
var namedKeys = map[string]ebiten.Key{
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"escape":    ebiten.KeyEscape,
	"tab":       ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,
	"delete":    ebiten.KeyDelete,
	"insert":    ebiten.KeyInsert,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"alt":       ebiten.KeyAltLeft,
	"alt gr":    ebiten.KeyAltRight,
	".":         ebiten.KeyPeriod,
	",":         ebiten.KeyComma,
}

// IsKeyPressed reports whether the key identified by a friendly name is
// held. Recognized names: single letters and digits ("a", "7"; an
// upper-case letter additionally requires shift), function keys ("f3"),
// modifiers ("shift", "ctrl", "alt", "alt gr", "meta"), and the names in
// namedKeys. Unknown names are never pressed.
func (in *InputState) IsKeyPressed(name string) bool {
	switch {
	case len(name) == 1:
		c := name[0]
		switch {
		case c >= 'a' && c <= 'z':
			return in.KeyDown(ebiten.KeyA + ebiten.Key(c-'a'))
		case c >= 'A' && c <= 'Z':
			return in.shiftDown() && in.KeyDown(ebiten.KeyA+ebiten.Key(c-'A'))
		case c >= '0' && c <= '9':
			return in.KeyDown(ebiten.KeyDigit0 + ebiten.Key(c-'0'))
		}
	case len(name) == 2 || len(name) == 3:
		if name[0] == 'f' || name[0] == 'F' {
			if n := parseFKey(name[1:]); n >= 1 && n <= 12 {
				return in.KeyDown(ebiten.KeyF1 + ebiten.Key(n-1))
			}
		}
	}

	switch strings.ToLower(name) {
	case "shift":
		return in.shiftDown()
	case "ctrl", "strg":
		return in.KeyDown(ebiten.KeyControlLeft) || in.KeyDown(ebiten.KeyControlRight)
	case "meta":
		return in.KeyDown(ebiten.KeyMetaLeft) || in.KeyDown(ebiten.KeyMetaRight)
	}
	if k, ok := namedKeys[strings.ToLower(name)]; ok {
		return in.KeyDown(k)
	}
	return false
}

func (in *InputState) shiftDown() bool {
	return in.KeyDown(ebiten.KeyShiftLeft) || in.KeyDown(ebiten.KeyShiftRight)
}

// parseFKey parses the numeric part of a function key name; -1 on failure.
func parseFKey(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return -1
		}
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// MouseInfo bundles the cursor state exposed to game code.
type MouseInfo struct {
	X, Y     int     // cursor position in window pixels
	Wheel    float64 // vertical wheel movement since the last frame
	Buttons  [3]bool // left, right, middle
	InWindow bool    // cursor inside the window bounds
}

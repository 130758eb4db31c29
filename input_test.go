package gridworld

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyDownAndJustPressed(t *testing.T) {
	var in InputState
	in.keys[ebiten.KeyA] = true

	if !in.KeyDown(ebiten.KeyA) {
		t.Error("held key should be down")
	}
	if !in.KeyJustPressed(ebiten.KeyA) {
		t.Error("newly held key should be just-pressed")
	}

	in.prevKeys[ebiten.KeyA] = true
	if in.KeyJustPressed(ebiten.KeyA) {
		t.Error("a key held since last frame is not just-pressed")
	}
	if !in.KeyDown(ebiten.KeyA) {
		t.Error("the key is still down")
	}
}

func TestKeyDownOutOfRange(t *testing.T) {
	var in InputState
	if in.KeyDown(ebiten.Key(-1)) || in.KeyDown(ebiten.KeyMax+1) {
		t.Error("out-of-range keys are never down")
	}
}

func TestKeyStates(t *testing.T) {
	var in InputState
	in.keys[ebiten.KeyW] = true
	in.keys[ebiten.KeyD] = true

	got := in.KeyStates(ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD)
	want := []bool{true, false, false, true}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("KeyStates[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIsKeyPressedLetters(t *testing.T) {
	var in InputState
	in.keys[ebiten.KeyQ] = true

	if !in.IsKeyPressed("q") {
		t.Error("lower-case letter name should match the held key")
	}
	if in.IsKeyPressed("Q") {
		t.Error("upper-case letter requires shift")
	}

	in.keys[ebiten.KeyShiftLeft] = true
	if !in.IsKeyPressed("Q") {
		t.Error("upper-case letter with shift held should match")
	}
}

func TestIsKeyPressedDigitsAndFunctionKeys(t *testing.T) {
	var in InputState
	in.keys[ebiten.KeyDigit7] = true
	in.keys[ebiten.KeyF3] = true
	in.keys[ebiten.KeyF12] = true

	if !in.IsKeyPressed("7") {
		t.Error("digit name should match")
	}
	if !in.IsKeyPressed("f3") || !in.IsKeyPressed("F3") {
		t.Error("function key names should match case-insensitively")
	}
	if !in.IsKeyPressed("f12") {
		t.Error("two-digit function key should match")
	}
	if in.IsKeyPressed("f13") {
		t.Error("f13 does not exist")
	}
}

func TestIsKeyPressedModifiers(t *testing.T) {
	var in InputState
	in.keys[ebiten.KeyControlRight] = true
	in.keys[ebiten.KeyShiftRight] = true

	if !in.IsKeyPressed("ctrl") || !in.IsKeyPressed("strg") {
		t.Error("either control key should satisfy ctrl/strg")
	}
	if !in.IsKeyPressed("shift") {
		t.Error("either shift key should satisfy shift")
	}
	if in.IsKeyPressed("meta") {
		t.Error("meta is not held")
	}
}

func TestIsKeyPressedNamedKeys(t *testing.T) {
	var in InputState
	in.keys[ebiten.KeySpace] = true
	in.keys[ebiten.KeyArrowUp] = true

	if !in.IsKeyPressed("space") || !in.IsKeyPressed("SPACE") {
		t.Error("named keys should match case-insensitively")
	}
	if !in.IsKeyPressed("up") {
		t.Error("arrow key name should match")
	}
	if in.IsKeyPressed("no such key") {
		t.Error("unknown names are never pressed")
	}
}

func TestMouseButtons(t *testing.T) {
	var in InputState
	in.buttons[MouseButtonLeft] = true

	if !in.MouseDown(MouseButtonLeft) {
		t.Error("held button should be down")
	}
	if !in.MouseJustPressed(MouseButtonLeft) {
		t.Error("newly held button should be just-pressed")
	}
	if in.MouseDown(MouseButtonRight) {
		t.Error("right button is not held")
	}

	in.prevButtons[MouseButtonLeft] = true
	if in.MouseJustPressed(MouseButtonLeft) {
		t.Error("a button held since last frame is not just-pressed")
	}
}

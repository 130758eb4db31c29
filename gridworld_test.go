package gridworld

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// Shared test kinds. Registered once for the whole package; the ancestry
// table is process-global.
var (
	kindWall    = RegisterKind("wall")
	kindPlayer  = RegisterKind("player")
	kindEnemy   = RegisterKind("enemy")
	kindCrab    = RegisterKind("crab", kindEnemy)
	kindLobster = RegisterKind("lobster", kindEnemy)
)

// stubActor is a minimal actor recording its hook invocations.
type stubActor struct {
	ActorBase
	onAct   func()
	added   int
	removed int
}

func newStub(kind Kind) *stubActor {
	return &stubActor{ActorBase: NewActorBase(kind)}
}

func (s *stubActor) Act() {
	if s.onAct != nil {
		s.onAct()
	}
}

func (s *stubActor) OnWorldAdd(w *WorldBase) { s.added++ }

func (s *stubActor) OnWorldRemove(w *WorldBase) { s.removed++ }

// testWorld counts its own Act hook invocations.
type testWorld struct {
	WorldBase
	acts int
}

func newTestWorld(width, height, cellSize int, bounding bool) *testWorld {
	return &testWorld{WorldBase: NewWorld(nil, width, height, cellSize, bounding)}
}

func (w *testWorld) Act() { w.acts++ }

// --- Rect ---

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if !r.Contains(10, 20) {
		t.Error("top-left corner should be contained")
	}
	if !r.Contains(40, 60) {
		t.Error("bottom-right corner should be contained")
	}
	if r.Contains(9.9, 20) || r.Contains(10, 60.1) {
		t.Error("points outside should not be contained")
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !a.Overlaps(Rect{X: 5, Y: 5, Width: 10, Height: 10}) {
		t.Error("overlapping rects should overlap")
	}
	if a.Overlaps(Rect{X: 20, Y: 20, Width: 5, Height: 5}) {
		t.Error("disjoint rects should not overlap")
	}
}

func TestRectOverlapsEdgeTouching(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 10, Y: 0, Width: 10, Height: 10}
	// Collider semantics: sharing only an edge is not an overlap, so actors
	// in adjacent cells do not intersect.
	if a.Overlaps(b) {
		t.Error("edge-touching rects should not overlap")
	}
}

func TestCellRect(t *testing.T) {
	r := CellRect(3, 2, 40)
	want := Rect{X: 120, Y: 80, Width: 40, Height: 40}
	if r != want {
		t.Errorf("CellRect(3, 2, 40) = %v, want %v", r, want)
	}
}

func TestClampInt(t *testing.T) {
	if got := clampInt(-5, 0, 9); got != 0 {
		t.Errorf("clampInt(-5, 0, 9) = %d, want 0", got)
	}
	if got := clampInt(15, 0, 9); got != 9 {
		t.Errorf("clampInt(15, 0, 9) = %d, want 9", got)
	}
	if got := clampInt(4, 0, 9); got != 4 {
		t.Errorf("clampInt(4, 0, 9) = %d, want 4", got)
	}
}

func TestNormalizeDegrees(t *testing.T) {
	if got := normalizeDegrees(370); !approxEqual(got, 10, epsilon) {
		t.Errorf("normalizeDegrees(370) = %f, want 10", got)
	}
	if got := normalizeDegrees(-90); !approxEqual(got, 270, epsilon) {
		t.Errorf("normalizeDegrees(-90) = %f, want 270", got)
	}
	if got := normalizeDegrees(360); !approxEqual(got, 0, epsilon) {
		t.Errorf("normalizeDegrees(360) = %f, want 0", got)
	}
}

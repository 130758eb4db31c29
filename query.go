package gridworld

// Spatial queries over a world's actor registry. Every query materializes a
// fresh slice; results are never invalidated by later registry mutation.
// Kind arguments are polymorphic: passing a kind matches that kind and every
// registered subkind, and KindAny matches all actors.

// Actors returns all actors of the given kind currently in the world.
// Order within the result is unspecified.
func (w *WorldBase) Actors(kind Kind) []Actor {
	return w.registry.byKind(kind)
}

// ActorsAt returns the actors of the given kind whose pixel rectangle
// overlaps the cell (x, y).
func (w *WorldBase) ActorsAt(x, y int, kind Kind) []Actor {
	cell := CellRect(x, y, w.cellSize)
	var out []Actor
	for _, other := range w.registry.byKind(kind) {
		if other.base().Rect().Overlaps(cell) {
			out = append(out, other)
		}
	}
	return out
}

// Intersecting returns the actors of the given kind whose pixel rectangle
// overlaps a's rectangle. The result includes a itself when its kind
// matches; use IsTouching or RemoveFirstTouching for the self-excluding
// convenience forms.
func (w *WorldBase) Intersecting(a Actor, kind Kind) []Actor {
	rect := a.base().Rect()
	var out []Actor
	for _, other := range w.registry.byKind(kind) {
		if other.base().Rect().Overlaps(rect) {
			out = append(out, other)
		}
	}
	return out
}

// InRadius returns the actors of the given kind whose cell-space Euclidean
// distance to a is at most radius. The comparison is done on squared
// distances. An actor is inside its own radius: for radius >= 0 the result
// includes a itself when its kind matches.
func (w *WorldBase) InRadius(a Actor, radius float64, kind Kind) []Actor {
	b := a.base()
	r2 := radius * radius
	var out []Actor
	for _, other := range w.registry.byKind(kind) {
		ob := other.base()
		dx := float64(ob.x - b.x)
		dy := float64(ob.y - b.y)
		if dx*dx+dy*dy <= r2 {
			out = append(out, other)
		}
	}
	return out
}

// AtOffset returns the actors of the given kind whose pixel rectangle
// overlaps the single cell at (a.X()+dx, a.Y()+dy).
func (w *WorldBase) AtOffset(a Actor, dx, dy int, kind Kind) []Actor {
	b := a.base()
	return w.ActorsAt(b.x+dx, b.y+dy, kind)
}

// Neighbors returns the actors of the given kind near a. With diagonal set,
// it is equivalent to InRadius with a radius of cells*cellSize. Without
// diagonal, an actor neighbors a when either per-axis cell distance is
// within cells: |dx| <= cells OR |dy| <= cells. The OR is the contract;
// an actor aligned on one axis counts no matter how far away it is on the
// other. Do not tighten it to AND.
func (w *WorldBase) Neighbors(a Actor, cells int, diagonal bool, kind Kind) []Actor {
	if diagonal {
		return w.InRadius(a, float64(cells*w.cellSize), kind)
	}
	b := a.base()
	var out []Actor
	for _, other := range w.registry.byKind(kind) {
		ob := other.base()
		dx := ob.x - b.x
		dy := ob.y - b.y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		if dx <= cells || dy <= cells {
			out = append(out, other)
		}
	}
	return out
}

// IsTouching reports whether any actor of the given kind other than a
// itself overlaps a's rectangle.
func (w *WorldBase) IsTouching(a Actor, kind Kind) bool {
	for _, other := range w.Intersecting(a, kind) {
		if other.base() != a.base() {
			return true
		}
	}
	return false
}

// RemoveFirstTouching removes one actor of the given kind overlapping a
// (never a itself) from the world. When nothing matches it returns
// ErrTouchNotFound, or nil if failSilently is set.
func (w *WorldBase) RemoveFirstTouching(a Actor, kind Kind, failSilently bool) error {
	for _, other := range w.Intersecting(a, kind) {
		if other.base() != a.base() {
			w.Remove(other)
			return nil
		}
	}
	if failSilently {
		return nil
	}
	return ErrTouchNotFound
}

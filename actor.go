package gridworld

// Actor is the capability every simulation entity implements. Concrete actor
// types embed ActorBase (which supplies everything except Act) and provide
// their own Act method, executed once per simulated frame while the actor's
// world is active.
type Actor interface {
	// Act runs one simulation step for this actor.
	Act()

	base() *ActorBase
}

// WorldAddHandler is implemented by actors that want to be notified after
// they have been added to a world. The actor's position is already set when
// the hook runs.
type WorldAddHandler interface {
	OnWorldAdd(w *WorldBase)
}

// WorldRemoveHandler is implemented by actors that want to be notified
// before they are removed from their world.
type WorldRemoveHandler interface {
	OnWorldRemove(w *WorldBase)
}

// ActorBase carries the state shared by all actors: identity, cell position,
// rotation, and the actor's visual. Embed it by value and initialize it with
// NewActorBase:
//
//	type Crab struct {
//		gridworld.ActorBase
//	}
//
//	func NewCrab() *Crab {
//		return &Crab{ActorBase: gridworld.NewActorBase(KindCrab)}
//	}
type ActorBase struct {
	kind  Kind
	id    uint64
	x, y  int
	rot   float64
	image *Image
	world *WorldBase
	self  Actor
}

// NewActorBase returns an ActorBase of the given kind. The kind must have
// been declared with RegisterKind before the actor is added to a world.
func NewActorBase(kind Kind) ActorBase {
	return ActorBase{kind: kind}
}

func (b *ActorBase) base() *ActorBase { return b }

// Kind returns the actor's concrete kind.
func (b *ActorBase) Kind() Kind { return b.kind }

// ID returns the actor's identity, issued by the first world registry the
// actor joined. Zero until the actor has been added to a world.
func (b *ActorBase) ID() uint64 { return b.id }

// X returns the actor's cell column.
func (b *ActorBase) X() int { return b.x }

// Y returns the actor's cell row.
func (b *ActorBase) Y() int { return b.y }

// SetPosition moves the actor to cell (x, y). If the actor is in a world
// with bounding enabled, the position is clamped to the grid immediately;
// reading the position back yields the clamped value.
func (b *ActorBase) SetPosition(x, y int) {
	if b.world != nil && b.world.bounding {
		x = clampInt(x, 0, b.world.width-1)
		y = clampInt(y, 0, b.world.height-1)
	}
	b.x, b.y = x, y
}

// Move shifts the actor by (dx, dy) cells, subject to the same clamping as
// SetPosition.
func (b *ActorBase) Move(dx, dy int) {
	b.SetPosition(b.x+dx, b.y+dy)
}

// Rotation returns the actor's rotation in degrees, in [0, 360).
func (b *ActorBase) Rotation() float64 { return b.rot }

// SetRotation sets the actor's rotation in degrees. Any value is accepted
// and normalized into [0, 360).
func (b *ActorBase) SetRotation(degrees float64) {
	b.rot = normalizeDegrees(degrees)
}

// Turn rotates the actor by the given amount in degrees.
func (b *ActorBase) Turn(degrees float64) {
	b.SetRotation(b.rot + degrees)
}

// Image returns the actor's visual, or nil if none is set.
func (b *ActorBase) Image() *Image { return b.image }

// SetImage sets the actor's visual. The actor owns the image exclusively;
// sharing one Image between actors shares its pixels and rotation.
func (b *ActorBase) SetImage(img *Image) { b.image = img }

// World returns the world the actor currently lives in, or nil.
func (b *ActorBase) World() *WorldBase { return b.world }

// Rect returns the actor's pixel rectangle: the actor's image dimensions
// centered on its cell, or the cell itself when no image is set. The zero
// Rect is returned for an actor outside any world.
func (b *ActorBase) Rect() Rect {
	if b.world == nil {
		return Rect{}
	}
	cs := b.world.cellSize
	if b.image == nil {
		return CellRect(b.x, b.y, cs)
	}
	w := float64(b.image.Width())
	h := float64(b.image.Height())
	cx := float64(b.x*cs) + float64(cs)/2
	cy := float64(b.y*cs) + float64(cs)/2
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

// Package gridworld is an educational 2D "actor in a grid world" game
// framework built on [Ebitengine], in the spirit of the Greenfoot teaching
// environment.
//
// Learners define world and actor types, place actors on a cell grid, and
// the driver calls per-frame act and paint callbacks while handling
// keyboard and mouse input, collision queries, scrolling, images, sound,
// and text overlays.
//
// # Quick start
//
// Declare a kind per actor type, embed [ActorBase], and implement Act:
//
//	var KindCrab = gridworld.RegisterKind("crab")
//
//	type Crab struct {
//		gridworld.ActorBase
//	}
//
//	func NewCrab() *Crab {
//		return &Crab{ActorBase: gridworld.NewActorBase(KindCrab)}
//	}
//
//	func (c *Crab) Act() {
//		c.Move(1, 0)
//	}
//
// Worlds embed [WorldBase] the same way and may override Act for a
// per-frame hook. Wire everything up through an explicitly constructed
// [App]:
//
//	app := gridworld.NewApp(gridworld.LoadConfig("gridworld.cfg"))
//	world := NewBeachWorld(app)
//	world.Add(NewCrab(), 3, 4)
//	if err := app.SetWorld(world); err != nil {
//		log.Fatal(err)
//	}
//	if err := app.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Kinds and queries
//
// Every actor type declares a [Kind], optionally with ancestor kinds.
// Spatial queries ([WorldBase.Actors], [WorldBase.Intersecting],
// [WorldBase.InRadius], [WorldBase.Neighbors], ...) are polymorphic over
// this ancestry: querying a kind matches every registered subkind, and
// [KindAny] matches all actors.
//
// # Simulation rate
//
// Each world has a speed ([WorldBase.SetSpeed]): the minimum wall-clock
// interval between simulated frames. The display keeps refreshing at the
// configured FPS limit while the simulation steps at its own pace.
//
// # Concurrency
//
// The framework is single-threaded: input polling, actor
// dispatch, and drawing run strictly interleaved on the driver goroutine.
// Panics and errors from user callbacks propagate out of [App.Run];
// nothing is swallowed.
//
// [Ebitengine]: https://ebitengine.org
package gridworld

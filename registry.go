package gridworld

// actorRegistry is a world's mapping from concrete actor kind to the set of
// live actors of exactly that kind. Subkind traversal happens at query time
// through the package kind table, so the registry itself stays a flat index.
//
// All mutation happens on the driver goroutine between frames; the registry
// is deliberately lock-free.
type actorRegistry struct {
	actors map[Kind]map[*ActorBase]Actor
	nextID uint64
}

func newActorRegistry() *actorRegistry {
	return &actorRegistry{actors: make(map[Kind]map[*ActorBase]Actor)}
}

// add inserts the actor under its concrete kind and issues an identity if
// the actor never had one. Re-adding a present actor is a no-op.
func (r *actorRegistry) add(a Actor) {
	b := a.base()
	set := r.actors[b.kind]
	if set == nil {
		set = make(map[*ActorBase]Actor)
		r.actors[b.kind] = set
	}
	if _, present := set[b]; present {
		return
	}
	if b.id == 0 {
		r.nextID++
		b.id = r.nextID
	}
	set[b] = a
}

// remove deletes the actor and reports whether it was present.
func (r *actorRegistry) remove(a Actor) bool {
	b := a.base()
	set := r.actors[b.kind]
	if set == nil {
		return false
	}
	if _, present := set[b]; !present {
		return false
	}
	delete(set, b)
	return true
}

func (r *actorRegistry) contains(a Actor) bool {
	b := a.base()
	_, present := r.actors[b.kind][b]
	return present
}

// size returns the total number of registered actors.
func (r *actorRegistry) size() int {
	n := 0
	for _, set := range r.actors {
		n += len(set)
	}
	return n
}

// byKind returns a fresh snapshot of every actor whose concrete kind is
// kind or a registered subkind of kind. KindAny returns all actors. The
// returned slice is never invalidated by later registry mutation; order
// within it is unspecified (set semantics).
func (r *actorRegistry) byKind(kind Kind) []Actor {
	var out []Actor
	for k, set := range r.actors {
		if !kindMatches(k, kind) {
			continue
		}
		for _, a := range set {
			out = append(out, a)
		}
	}
	return out
}

// snapshotOf returns a snapshot of the actors of exactly the given concrete
// kind. Dispatch iterates over these snapshots so that actors may add or
// remove actors (including themselves) mid-cycle; such mutations take
// effect from the next snapshot on.
func (r *actorRegistry) snapshotOf(kind Kind) []Actor {
	set := r.actors[kind]
	if len(set) == 0 {
		return nil
	}
	out := make([]Actor, 0, len(set))
	for _, a := range set {
		out = append(out, a)
	}
	return out
}

// orderedKinds returns the registry's concrete kinds arranged for dispatch:
// kinds named in order first, in that order, then every remaining kind in
// unspecified order. Ordered kinds with no live actors are skipped.
func (r *actorRegistry) orderedKinds(order []Kind) []Kind {
	out := make([]Kind, 0, len(r.actors))
	done := make(map[Kind]bool, len(order))
	for _, k := range order {
		if done[k] {
			continue
		}
		done[k] = true
		if len(r.actors[k]) > 0 {
			out = append(out, k)
		}
	}
	for k, set := range r.actors {
		if !done[k] && len(set) > 0 {
			out = append(out, k)
		}
	}
	return out
}

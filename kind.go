package gridworld

import (
	"fmt"
	"sync"
)

// Kind identifies an actor type. Every concrete actor type declares its kind
// (and that kind's ancestors) once with RegisterKind, typically in an init
// function or a package-level var next to the type definition. The ancestry
// table is what gives queries their polymorphic semantics: querying a kind
// matches every kind registered somewhere below it.
type Kind string

// KindAny matches every registered kind in queries.
const KindAny Kind = ""

var (
	kindMu      sync.RWMutex
	kindParents = make(map[Kind][]Kind)
)

// RegisterKind declares an actor kind together with its ancestor kinds,
// nearest first. Parents need not be registered themselves; registering the
// same kind twice panics.
//
//	var KindEnemy = gridworld.RegisterKind("enemy")
//	var KindCrab  = gridworld.RegisterKind("crab", KindEnemy)
func RegisterKind(kind Kind, parents ...Kind) Kind {
	if kind == KindAny {
		panic("gridworld: cannot register the empty kind")
	}
	kindMu.Lock()
	defer kindMu.Unlock()
	if _, dup := kindParents[kind]; dup {
		panic(fmt.Sprintf("gridworld: kind %q registered twice", kind))
	}
	kindParents[kind] = append([]Kind(nil), parents...)
	return kind
}

// kindRegistered reports whether kind has been declared.
func kindRegistered(kind Kind) bool {
	kindMu.RLock()
	defer kindMu.RUnlock()
	_, ok := kindParents[kind]
	return ok
}

// kindMatches reports whether kind is query or has query in its ancestry.
// KindAny matches everything.
func kindMatches(kind, query Kind) bool {
	if query == KindAny || kind == query {
		return true
	}
	kindMu.RLock()
	defer kindMu.RUnlock()
	return hasAncestorLocked(kind, query)
}

func hasAncestorLocked(kind, ancestor Kind) bool {
	for _, p := range kindParents[kind] {
		if p == ancestor || hasAncestorLocked(p, ancestor) {
			return true
		}
	}
	return false
}

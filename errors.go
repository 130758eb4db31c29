package gridworld

import (
	"errors"
	"fmt"
	"os"
)

// Sentinel errors returned by the driver and query helpers.
var (
	// ErrNoWorld is returned when the driver is asked to run or queried
	// before a world has been assigned.
	ErrNoWorld = errors.New("gridworld: no world set")

	// ErrTouchNotFound is returned by RemoveFirstTouching when no actor of
	// the requested kind touches the subject and fail-silently is off.
	ErrTouchNotFound = errors.New("gridworld: no touching actor found")
)

// InvalidActorError reports an attempt to register an actor that the world
// cannot accept: a nil actor, or one whose kind was never declared with
// RegisterKind. World.Add panics with this value.
type InvalidActorError struct {
	Kind Kind
	Msg  string
}

func (e *InvalidActorError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("gridworld: invalid actor (kind %q): %s", e.Kind, e.Msg)
	}
	return "gridworld: invalid actor: " + e.Msg
}

// ResourceNotFoundError reports a resource file that exists neither in the
// configured resource folder nor in the fallback resource set.
type ResourceNotFoundError struct {
	Name string
	Kind string // "image" or "sound"
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("gridworld: %s resource %q not found", e.Kind, e.Name)
}

// ConfigError describes a single bad configuration entry. Config errors are
// reported and the offending value ignored; they never abort startup.
type ConfigError struct {
	Line int
	Key  string
	Msg  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("gridworld: config line %d (%s): %s", e.Line, e.Key, e.Msg)
}

// warnf prints a diagnostic to stderr. Used for config problems and other
// reported-but-not-fatal conditions.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[gridworld] "+format+"\n", args...)
}

package gridworld

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"time"
)

// WindowMode selects how the game window is created.
type WindowMode uint8

const (
	WindowResizable  WindowMode = iota // user-resizable window (default)
	WindowFullscreen                   // exclusive fullscreen
	WindowBorderless                   // borderless fullscreen-sized window
	WindowFixed                        // fixed-size window
)

// Config holds the driver configuration, loadable from a key=value text
// file. Every field has a usable default; bad or unknown entries in the
// file are reported to stderr and ignored, never fatal.
type Config struct {
	// FPSLimit caps the displayed frames per second.
	FPSLimit int
	// DefaultWorldSpeed is the minimum interval between simulated frames,
	// in seconds, applied to newly created worlds.
	DefaultWorldSpeed float64
	// WindowWidth and WindowHeight set the window size in pixels. Zero
	// means derive the size from the world canvas and the display.
	WindowWidth  int
	WindowHeight int
	// WindowMode selects resizable, fullscreen, borderless, or fixed.
	WindowMode WindowMode
	// ImageFolder and SoundFolder are the resource directories searched
	// before the fallback resource set.
	ImageFolder string
	SoundFolder string
	// Title is the window title; Icon an image resource for the window icon.
	Title string
	Icon  string
	// VSync synchronizes presentation with the display refresh.
	VSync bool
	// FirstWorld names the world (registered with RegisterWorld) that the
	// driver instantiates on startup when no world was set explicitly.
	FirstWorld string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		FPSLimit:    60,
		WindowMode:  WindowResizable,
		ImageFolder: "images",
		SoundFolder: "sounds",
		Title:       "gridworld",
		VSync:       true,
	}
}

// worldSpeed converts DefaultWorldSpeed to a duration.
func (c Config) worldSpeed() time.Duration {
	return time.Duration(c.DefaultWorldSpeed * float64(time.Second))
}

// LoadConfig reads a key=value configuration file and returns the defaults
// overridden by every valid entry. Lines are `key=value`, one per line;
// blank lines and lines starting with '#' are skipped. Problems (an
// unreadable file, unknown keys, unparsable values) are reported via
// stderr and the corresponding defaults kept; LoadConfig never fails.
func LoadConfig(path string) Config {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			warnf("config: %v", err)
		}
		return cfg
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		key, value, found := strings.Cut(raw, "=")
		if !found {
			report(&ConfigError{Line: line, Key: raw, Msg: "missing '='"})
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if err := cfg.apply(key, value); err != nil {
			report(&ConfigError{Line: line, Key: key, Msg: err.Error()})
		}
	}
	if err := sc.Err(); err != nil {
		warnf("config: %v", err)
	}
	return cfg
}

// report prints a config problem; the bad value is ignored by the caller.
func report(e *ConfigError) {
	warnf("%v (value ignored)", e)
}

// apply sets one configuration entry, validating the value.
func (c *Config) apply(key, value string) error {
	switch key {
	case "fpsLimit":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return errValue("positive integer", value)
		}
		c.FPSLimit = n
	case "defaultWorldSpeed":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return errValue("non-negative number of seconds", value)
		}
		c.DefaultWorldSpeed = f
	case "windowWidth", "windowHeight":
		n := 0
		if !strings.EqualFold(value, "none") {
			var err error
			n, err = strconv.Atoi(value)
			if err != nil || n <= 0 {
				return errValue(`positive integer or "none"`, value)
			}
		}
		if key == "windowWidth" {
			c.WindowWidth = n
		} else {
			c.WindowHeight = n
		}
	case "windowMode":
		switch strings.ToUpper(value) {
		case "RESIZABLE":
			c.WindowMode = WindowResizable
		case "FULLSCREEN":
			c.WindowMode = WindowFullscreen
		case "BORDERLESS":
			c.WindowMode = WindowBorderless
		case "FIXED":
			c.WindowMode = WindowFixed
		default:
			return errValue("RESIZABLE|FULLSCREEN|BORDERLESS|FIXED", value)
		}
	case "imageResourceFolder":
		c.ImageFolder = value
	case "soundResourceFolder":
		c.SoundFolder = value
	case "title":
		c.Title = value
	case "icon":
		c.Icon = value
	case "vsync":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errValue("boolean", value)
		}
		c.VSync = b
	case "firstWorld":
		c.FirstWorld = value
	default:
		return errUnknownKey
	}
	return nil
}

var errUnknownKey = errString("unknown key")

func errValue(want, got string) error {
	return errString("want " + want + ", got " + strconv.Quote(got))
}

// errString is a trivial constant-friendly error type.
type errString string

func (e errString) Error() string { return string(e) }

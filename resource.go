package gridworld

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Resource resolution. A resource is looked up first in the configured
// resource folder (relative to the current working directory), then in the
// driver's fallback resource set under an "images" or "sounds" subtree.
// If neither has it, the lookup fails with *ResourceNotFoundError.

// SetFallbackResources installs a fallback resource set, searched when a
// file is absent from the configured folders. Games typically pass an
// embed.FS holding their bundled assets:
//
//	//go:embed images sounds
//	var assets embed.FS
//
//	app.SetFallbackResources(assets)
func (a *App) SetFallbackResources(fsys fs.FS) {
	a.fallback = fsys
}

// openResource resolves and opens the named resource of the given kind
// ("image" or "sound"; any other kind is treated as a literal folder name
// with no fallback).
func (a *App) openResource(name, kind string) (io.ReadCloser, error) {
	var dir, sub string
	switch kind {
	case "image":
		dir, sub = a.cfg.ImageFolder, "images"
	case "sound":
		dir, sub = a.cfg.SoundFolder, "sounds"
	default:
		dir = kind
	}
	if f, err := os.Open(filepath.Join(dir, name)); err == nil {
		return f, nil
	}
	if a.fallback != nil && sub != "" {
		if f, err := a.fallback.Open(path.Join(sub, name)); err == nil {
			return f, nil
		}
	}
	return nil, &ResourceNotFoundError{Name: name, Kind: kind}
}

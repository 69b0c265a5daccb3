package render

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownBackend is returned when no backend matches a name or file
// extension.
var ErrUnknownBackend = errors.New("render: unknown backend")

// BackendFactory creates a new backend instance.
// Factories are registered via Register() and called by NewBackend().
type BackendFactory func() Backend

type entry struct {
	factory    BackendFactory
	extensions []string
}

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]entry)
	extensions = make(map[string]string) // ".png" -> "png"
)

// Register registers a backend factory under name, claiming the given file
// extensions (with or without the leading dot). Typically called from init():
//
//	func init() {
//	    render.Register("svg", func() render.Backend { return New() }, ".svg")
//	}
//
// Register panics if factory is nil, if name is already registered or if an
// extension is already claimed, so wiring mistakes surface at startup.
func Register(name string, factory BackendFactory, exts ...string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("render: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("render: Register called twice for " + name)
	}

	norm := make([]string, len(exts))
	for i, ext := range exts {
		ext = normalizeExt(ext)
		if owner, dup := extensions[ext]; dup {
			panic("render: extension " + ext + " already registered by " + owner)
		}
		norm[i] = ext
	}
	for _, ext := range norm {
		extensions[ext] = name
	}
	backends[name] = entry{factory: factory, extensions: norm}
}

// Unregister removes a backend and its extensions.
// This is primarily useful for tests. Unknown names are a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	e, ok := backends[name]
	if !ok {
		return
	}
	for _, ext := range e.extensions {
		delete(extensions, ext)
	}
	delete(backends, name)
}

// NewBackend creates a new backend instance by name.
// The error wraps ErrUnknownBackend and hints at a forgotten import.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	e, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	return e.factory(), nil
}

// MustBackend is like NewBackend but panics on error.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// ForPath returns the name of the backend that claims the extension of
// path. Matching is case-insensitive.
func ForPath(path string) (string, error) {
	ext := normalizeExt(filepath.Ext(path))
	registryMu.RLock()
	name, ok := extensions[ext]
	registryMu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w for extension %q of %s", ErrUnknownBackend, ext, path)
	}
	return name, nil
}

// Backends returns the registered backend names in alphabetical order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extensions returns the extensions claimed by the named backend.
func Extensions(name string) []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	e := backends[name]
	out := make([]string, len(e.extensions))
	copy(out, e.extensions)
	return out
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	return ext
}

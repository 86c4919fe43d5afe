// SPDX-License-Identifier: MPL-2.0

package devicegroup

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrModuleNotFound is returned when no module is registered under a path.
	ErrModuleNotFound = errors.New("module not found")
	// ErrAttributeNotFound is returned when a module has no such attribute.
	ErrAttributeNotFound = errors.New("attribute not found")

	defaultCatalog = NewCatalog()
)

type (
	// Module maps attribute names to the command groups a module exports.
	Module map[string]Group

	// LoadFunc builds a module. It is called at most once per catalog entry.
	LoadFunc func() (Module, error)

	// Loader resolves module paths to modules.
	Loader interface {
		Load(path string) (Module, error)
	}

	// Catalog is a Loader backed by registered load functions. Each module is
	// loaded once, on first request, and the result (including an error) is
	// kept for the life of the catalog.
	Catalog struct {
		mu      sync.RWMutex
		entries map[string]func() (Module, error)
	}

	// ModuleNotFoundError reports a module path with no registration.
	ModuleNotFoundError struct {
		Path string
	}

	// AttributeNotFoundError reports a missing attribute in a loaded module.
	AttributeNotFoundError struct {
		Path      string
		Attribute string
	}
)

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]func() (Module, error))}
}

// DefaultCatalog returns the process-wide catalog that init-time
// registrations populate.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// Register adds a module to the process-wide catalog. It panics if path is
// already registered.
func Register(path string, load LoadFunc) {
	defaultCatalog.Register(path, load)
}

// Register adds a module load function under path. It panics if path is
// empty, load is nil, or path is already registered.
func (c *Catalog) Register(path string, load LoadFunc) {
	if path == "" {
		panic("devicegroup: Register called with empty module path")
	}
	if load == nil {
		panic(fmt.Sprintf("devicegroup: Register called with nil load func for %s", path))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[path]; exists {
		panic(fmt.Sprintf("devicegroup: module %s already registered", path))
	}
	c.entries[path] = sync.OnceValues(func() (Module, error) {
		return load()
	})
}

// Load returns the module registered under path, loading it on first use.
func (c *Catalog) Load(path string) (Module, error) {
	c.mu.RLock()
	load, ok := c.entries[path]
	c.mu.RUnlock()
	if !ok {
		return nil, &ModuleNotFoundError{Path: path}
	}

	mod, err := load()
	if err != nil {
		return nil, fmt.Errorf("load module %s: %w", path, err)
	}
	return mod, nil
}

// Paths returns the registered module paths, sorted.
func (c *Catalog) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	paths := make([]string, 0, len(c.entries))
	for p := range c.entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Attr returns the group exported under name.
func (m Module) Attr(path, name string) (Group, error) {
	g, ok := m[name]
	if !ok || g == nil {
		return nil, &AttributeNotFoundError{Path: path, Attribute: name}
	}
	return g, nil
}

// Error implements the error interface.
func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("module %s is not linked into this build", e.Path)
}

// Unwrap returns ErrModuleNotFound for errors.Is() compatibility.
func (e *ModuleNotFoundError) Unwrap() error { return ErrModuleNotFound }

// Error implements the error interface.
func (e *AttributeNotFoundError) Error() string {
	return fmt.Sprintf("module %s has no attribute %s", e.Path, e.Attribute)
}

// Unwrap returns ErrAttributeNotFound for errors.Is() compatibility.
func (e *AttributeNotFoundError) Unwrap() error { return ErrAttributeNotFound }

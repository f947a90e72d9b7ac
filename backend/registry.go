// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a surface of the given size.
type Factory func(width, height int) Surface

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for Default (first registered wins).
	backendPriority = []string{BackendPNG, BackendRecord}
)

// Register registers a surface factory with the given name.
// It is typically called from init() in the backend package,
// following the database/sql driver pattern:
//
//	func init() {
//	    backend.Register("png", func(w, h int) backend.Surface {
//	        return New(w, h)
//	    })
//	}
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("backend: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("backend: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is primarily useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// New creates a surface by backend name.
// The error mentions a forgotten import, the usual cause.
func New(name string, width, height int) (Surface, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: unknown backend %q (forgotten import?)", ErrBackendNotAvailable, name)
	}
	return factory(width, height), nil
}

// Default creates a surface from the highest priority registered backend.
// Priority order: png > record > any other, by name.
func Default(width, height int) (Surface, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			return factory(width, height), nil
		}
	}
	if names := sortedNames(); len(names) > 0 {
		return backends[names[0]](width, height), nil
	}
	return nil, ErrBackendNotAvailable
}

// Names returns the registered backend names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return sortedNames()
}

// IsRegistered reports whether a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// sortedNames must be called with registryMu held.
func sortedNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

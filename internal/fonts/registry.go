package fonts

import (
	"sort"
	"sync"
)

// DefaultKey is the registry key of the default font
const DefaultKey = ""

// Registry maps theme font keys to font handles. It owns the range arena
// that its fonts' glyph ranges point into, so those buffers live exactly as
// long as the registry.
//
// Lookups are safe to run concurrently with each other. Loading a theme into
// a registry must not overlap with another load into the same registry.
type Registry struct {
	fonts map[string]*Font
	arena *RangeArena
	mu    sync.RWMutex
}

// NewRegistry creates an empty registry with its own arena
func NewRegistry() *Registry {
	return &Registry{
		fonts: make(map[string]*Font),
		arena: NewRangeArena(),
	}
}

// Arena returns the range arena owned by the registry
func (r *Registry) Arena() *RangeArena {
	return r.arena
}

// Set registers f under key, replacing any previous entry
func (r *Registry) Set(key string, f *Font) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fonts[key] = f
}

// Get returns the font registered under key
func (r *Registry) Get(key string) (*Font, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fonts[key]
	return f, ok
}

// Has reports whether key is registered
func (r *Registry) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Default returns the font registered under DefaultKey, or nil
func (r *Registry) Default() *Font {
	f, _ := r.Get(DefaultKey)
	return f
}

// Lookup returns the font for key, falling back to the default font
func (r *Registry) Lookup(key string) *Font {
	if f, ok := r.Get(key); ok {
		return f
	}
	return r.Default()
}

// Keys returns the registered keys in sorted order
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.fonts))
	for k := range r.fonts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered keys
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.fonts)
}

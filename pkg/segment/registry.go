package segment

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotInitialized is returned when Cut is called for a key that was
// never passed to Init. Segmentation never auto-initializes.
var ErrNotInitialized = errors.New("segmenter not initialized")

// Registry caches one Engine per key (one per dialect group). It is
// owned by the caller, guarded by an internal mutex, and explicitly
// clearable; there are no package-level singletons.
type Registry struct {
	factory func() Engine

	mu      sync.Mutex
	engines map[string]Engine
}

// NewRegistry returns a Registry producing engines with factory. A nil
// factory selects the default maximum-matching engine.
func NewRegistry(factory func() Engine) *Registry {
	if factory == nil {
		factory = NewEngine
	}
	return &Registry{
		factory: factory,
		engines: make(map[string]Engine),
	}
}

// Init builds and caches the engine for key, seeding every word with
// WordWeight so longer lexicon entries win ambiguous splits.
// Re-initializing a key replaces its engine.
func (r *Registry) Init(key string, words []string) {
	eng := r.factory()
	for _, w := range words {
		eng.AddWord(w, WordWeight(w))
	}

	r.mu.Lock()
	r.engines[key] = eng
	r.mu.Unlock()
}

// Initialized reports whether key has a cached engine.
func (r *Registry) Initialized(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.engines[key]
	return ok
}

// Keys returns the initialized keys, sorted.
func (r *Registry) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, 0, len(r.engines))
	for k := range r.engines {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clear invalidates every cached engine.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines = make(map[string]Engine)
}

// Cut segments text with the engine cached for key.
func (r *Registry) Cut(key, text string) ([]string, error) {
	r.mu.Lock()
	eng, ok := r.engines[key]
	r.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (call Init first)", ErrNotInitialized, key)
	}
	return eng.Cut(text)
}

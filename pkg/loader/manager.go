package loader

import (
	"fmt"
	"os"
	"sync"

	"github.com/Faultbox/texel/pkg/bitmap"
)

// Manager loads image files from disk through a registry and caches the
// decoded bitmaps. Safe for concurrent use.
type Manager struct {
	registry *Registry
	mu       sync.RWMutex
	cache    map[string]*bitmap.Bitmap

	hits   int
	misses int
}

// NewManager creates a manager on top of the given registry.
func NewManager(registry *Registry) *Manager {
	return &Manager{
		registry: registry,
		cache:    make(map[string]*bitmap.Bitmap),
	}
}

// Load decodes the image at path, returning a cached bitmap when the path
// was decoded before. Cached bitmaps are shared; callers must not mutate
// them.
func (m *Manager) Load(path string) (*bitmap.Bitmap, error) {
	m.mu.RLock()
	bmp, ok := m.cache[path]
	m.mu.RUnlock()
	if ok {
		m.mu.Lock()
		m.hits++
		m.mu.Unlock()
		return bmp, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	bmp, err = m.registry.Decode(path, f)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.misses++
	m.cache[path] = bmp
	m.mu.Unlock()
	return bmp, nil
}

// Stats returns cache hit and miss counts.
func (m *Manager) Stats() (hits, misses int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hits, m.misses
}

// Clear drops every cached bitmap.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache = make(map[string]*bitmap.Bitmap)
	m.hits = 0
	m.misses = 0
}

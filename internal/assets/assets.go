// Package assets handles model and texture loading and caching.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/tramway/internal/logger"
)

var (
	// ErrNotFound is returned when a path resolves under none of the roots.
	ErrNotFound = errors.New("asset not found")

	// ErrUnsupportedFormat is returned for model files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported asset format")
)

// Manager resolves asset paths against a list of root directories and
// caches parsed models.
type Manager struct {
	roots []string
	cache *Cache
	mu    sync.RWMutex
	log   *zap.Logger
}

// NewManager creates a new asset manager searching the given roots.
func NewManager(roots ...string) *Manager {
	m := &Manager{
		cache: NewCache(),
		log:   logger.Named("assets"),
	}
	for _, r := range roots {
		m.AddRoot(r)
	}
	return m
}

// AddRoot adds a directory to search.
// Roots are searched in reverse order (last added = highest priority).
func (m *Manager) AddRoot(dir string) {
	m.mu.Lock()
	m.roots = append(m.roots, dir)
	m.mu.Unlock()
}

// Resolve returns the filesystem path of an asset. Absolute paths are
// returned as-is when they exist.
func (m *Manager) Resolve(path string) (string, error) {
	if filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return path, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.roots) - 1; i >= 0; i-- {
		full := filepath.Join(m.roots[i], filepath.FromSlash(path))
		if st, err := os.Stat(full); err == nil && !st.IsDir() {
			return full, nil
		}
	}

	return "", fmt.Errorf("%s: %w", path, ErrNotFound)
}

// ReadFile reads a raw asset, e.g. a texture.
func (m *Manager) ReadFile(path string) ([]byte, error) {
	full, err := m.Resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// Load loads a model, choosing the parser by file extension.
// Results are cached per path; callers must not mutate the returned model.
func (m *Manager) Load(path string) (*Model, error) {
	// Check cache first
	if model, ok := m.cache.Get(path); ok {
		return model, nil
	}

	full, err := m.Resolve(path)
	if err != nil {
		return nil, err
	}

	var model *Model
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		model, err = LoadOBJ(full)
	case ".gltf", ".glb":
		model, err = LoadGLTF(full)
	default:
		return nil, fmt.Errorf("%s (%q): %w", path, ext, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	m.log.Debug("model loaded",
		zap.String("path", path),
		zap.Int("meshes", len(model.Meshes)),
		zap.Int("vertices", model.VertexCount()),
	)

	m.cache.Set(path, model)
	return model, nil
}

// Close drops all cached models.
func (m *Manager) Close() {
	hits, misses := m.cache.Stats()
	m.log.Debug("asset cache released", zap.Int("hits", hits), zap.Int("misses", misses))
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded models.
type Cache struct {
	data map[string]*Model
	mu   sync.Mutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*Model),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) (*Model, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	model, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return model, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, model *Model) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = model
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*Model)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

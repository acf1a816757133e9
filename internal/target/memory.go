package target

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"photosort/internal/photosort"
)

// MemoryObject is a file held by a MemoryTarget.
type MemoryObject struct {
	Content []byte
	Mode    fs.FileMode
	ModTime time.Time
}

// MemoryTarget is an in-memory implementation of photosort.Target, useful for
// tests and dry runs. It is safe for concurrent use.
type MemoryTarget struct {
	root        string
	objects     map[string]*MemoryObject
	dirs        map[string]bool
	removeFails map[string]error
	mu          sync.RWMutex
}

// NewMemoryTarget creates an empty in-memory target.
func NewMemoryTarget(root string) *MemoryTarget {
	return &MemoryTarget{
		root:        root,
		objects:     make(map[string]*MemoryObject),
		dirs:        make(map[string]bool),
		removeFails: make(map[string]error),
	}
}

// Seed stores an object directly, as if it pre-existed.
func (m *MemoryTarget) Seed(rel string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[rel] = &MemoryObject{Content: content, Mode: 0644, ModTime: time.Now()}
}

// FailRemove makes every Remove of rel return err.
func (m *MemoryTarget) FailRemove(rel string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeFails[rel] = err
}

// Get returns the object at rel, or nil.
func (m *MemoryTarget) Get(rel string) *MemoryObject {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.objects[rel]
}

// Paths returns every stored path in sorted order.
func (m *MemoryTarget) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, 0, len(m.objects))
	for p := range m.objects {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// HasDir reports whether EnsureDir was called for a file inside dir.
func (m *MemoryTarget) HasDir(dir string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirs[dir]
}

func (m *MemoryTarget) EnsureDir(rel string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[filepath.Dir(rel)] = true
	return nil
}

func (m *MemoryTarget) Exists(rel string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objects[rel]
	return ok, nil
}

func (m *MemoryTarget) Put(rel string, r io.Reader, info fs.FileInfo) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.objects[rel]; ok {
		return fmt.Errorf("%s: %w", rel, photosort.ErrTargetExists)
	}
	m.objects[rel] = &MemoryObject{Content: data, Mode: info.Mode().Perm(), ModTime: info.ModTime()}
	return nil
}

func (m *MemoryTarget) Remove(rel string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.removeFails[rel]; ok {
		return err
	}
	if _, ok := m.objects[rel]; !ok {
		return fmt.Errorf("object not found: %s", rel)
	}
	delete(m.objects, rel)
	return nil
}

func (m *MemoryTarget) Location(rel string) string {
	return "memory://" + filepath.ToSlash(filepath.Join(m.root, rel))
}

// Compile-time check that MemoryTarget implements photosort.Target
var _ photosort.Target = (*MemoryTarget)(nil)

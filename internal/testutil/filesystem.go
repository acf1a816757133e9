package testutil

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"photosort/internal/photosort"
)

// MockFile represents an entry in the mock filesystem.
type MockFile struct {
	Content     []byte
	Permissions fs.FileMode
	ModTime     time.Time
	BirthTime   time.Time // zero means the filesystem did not record one
	IsDirectory bool
	IsSymlink   bool
}

// MockFilesystemManager is an in-memory filesystem for testing.
type MockFilesystemManager struct {
	mu       sync.Mutex
	files    map[string]*MockFile
	openErrs map[string]error
	ignore   []string
}

// NewMockFilesystemManager creates a new mock filesystem.
func NewMockFilesystemManager() *MockFilesystemManager {
	return &MockFilesystemManager{
		files:    make(map[string]*MockFile),
		openErrs: make(map[string]error),
	}
}

// AddFile adds a regular file created at born. Missing parent directories are added too.
func (m *MockFilesystemManager) AddFile(path string, content []byte, born time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addParents(path)
	m.files[path] = &MockFile{
		Content:     content,
		Permissions: 0644,
		ModTime:     born,
		BirthTime:   born,
	}
}

// AddDirectory adds a directory and its missing parents.
func (m *MockFilesystemManager) AddDirectory(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addParents(path)
	m.files[path] = &MockFile{Permissions: 0755, IsDirectory: true}
}

// AddSymlink adds a symbolic link entry. It is neither a directory nor a regular file.
func (m *MockFilesystemManager) AddSymlink(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addParents(path)
	m.files[path] = &MockFile{Permissions: 0777, IsSymlink: true}
}

// SetIgnorePatterns sets the glob patterns matched by IsIgnored.
func (m *MockFilesystemManager) SetIgnorePatterns(patterns ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ignore = patterns
}

// FailOpen makes Open return err for path.
func (m *MockFilesystemManager) FailOpen(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.openErrs[path] = err
}

func (m *MockFilesystemManager) addParents(path string) {
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		if _, ok := m.files[dir]; !ok {
			m.files[dir] = &MockFile{Permissions: 0755, IsDirectory: true}
		}
		if dir == filepath.Dir(dir) {
			return
		}
	}
}

func (m *MockFilesystemManager) pathFor(absPath string, file *MockFile) *photosort.Path {
	return photosort.NewPath(absPath, file.IsDirectory, newMockFileInfo(absPath, file))
}

func (m *MockFilesystemManager) lookup(path string) (*MockFile, error) {
	file, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, fs.ErrNotExist)
	}
	return file, nil
}

func (m *MockFilesystemManager) Resolve(rawPath string) (*photosort.Path, error) {
	absPath, err := filepath.Abs(rawPath)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	file, err := m.lookup(absPath)
	if err != nil {
		return nil, err
	}
	return m.pathFor(absPath, file), nil
}

func (m *MockFilesystemManager) ReadDir(dir *photosort.Path) ([]*photosort.Path, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	file, err := m.lookup(dir.String())
	if err != nil {
		return nil, err
	}
	if !file.IsDirectory {
		return nil, fmt.Errorf("not a directory: %s", dir.String())
	}

	var names []string
	for p := range m.files {
		if p != dir.String() && filepath.Dir(p) == dir.String() {
			names = append(names, p)
		}
	}
	sort.Strings(names)

	entries := make([]*photosort.Path, 0, len(names))
	for _, p := range names {
		entries = append(entries, m.pathFor(p, m.files[p]))
	}
	return entries, nil
}

func (m *MockFilesystemManager) Open(path *photosort.Path) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.openErrs[path.String()]; err != nil {
		return nil, err
	}
	file, err := m.lookup(path.String())
	if err != nil {
		return nil, err
	}
	if file.IsDirectory {
		return nil, fmt.Errorf("cannot open directory: %s", path.String())
	}
	return io.NopCloser(bytes.NewReader(file.Content)), nil
}

func (m *MockFilesystemManager) Stat(path *photosort.Path) (fs.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	file, err := m.lookup(path.String())
	if err != nil {
		return nil, err
	}
	return newMockFileInfo(path.String(), file), nil
}

func (m *MockFilesystemManager) CreationTime(path *photosort.Path) (time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	file, err := m.lookup(path.String())
	if err != nil {
		return time.Time{}, err
	}
	if file.BirthTime.IsZero() {
		return time.Time{}, fmt.Errorf("%s: %w", path.String(), photosort.ErrMetadataUnavailable)
	}
	return file.BirthTime, nil
}

func (m *MockFilesystemManager) IsIgnored(path *photosort.Path) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, pattern := range m.ignore {
		if ok, _ := filepath.Match(pattern, path.Name()); ok {
			return true
		}
	}
	return false
}

// mockFileInfo implements fs.FileInfo
type mockFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	file    *MockFile
}

func newMockFileInfo(path string, file *MockFile) *mockFileInfo {
	mode := file.Permissions
	switch {
	case file.IsDirectory:
		mode |= fs.ModeDir
	case file.IsSymlink:
		mode |= fs.ModeSymlink
	}
	return &mockFileInfo{
		name:    filepath.Base(path),
		size:    int64(len(file.Content)),
		mode:    mode,
		modTime: file.ModTime,
		file:    file,
	}
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return m.modTime }
func (m *mockFileInfo) IsDir() bool        { return m.file.IsDirectory }
func (m *mockFileInfo) Sys() any           { return m.file }

// Compile-time check
var _ photosort.FilesystemManager = (*MockFilesystemManager)(nil)

package target

import (
	"io/fs"
	"time"
)

// fileInfo is a minimal fs.FileInfo for Put calls.
type fileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f fileInfo) Name() string       { return f.name }
func (f fileInfo) Size() int64        { return f.size }
func (f fileInfo) Mode() fs.FileMode  { return f.mode }
func (f fileInfo) ModTime() time.Time { return f.modTime }
func (f fileInfo) IsDir() bool        { return false }
func (f fileInfo) Sys() any           { return nil }

var testModTime = time.Date(2022, 5, 1, 9, 30, 0, 0, time.UTC)

func testInfo() fileInfo {
	return fileInfo{name: "IMG_01.jpg", size: 5, mode: 0640, modTime: testModTime}
}

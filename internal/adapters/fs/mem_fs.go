package fs

import (
	iofs "io/fs"
	"path/filepath"
	"sort"
)

// MemFileSystem keeps files in memory. It backs dry runs and tests, and like a
// real disk it refuses to write into a directory that was never created.
type MemFileSystem struct {
	files map[string][]byte
	dirs  map[string]bool
}

func NewMemFileSystem() *MemFileSystem {
	return &MemFileSystem{
		files: make(map[string][]byte),
		dirs:  map[string]bool{".": true, "/": true},
	}
}

func (fs *MemFileSystem) ReadFile(path string) ([]byte, error) {
	data, ok := fs.files[filepath.Clean(path)]
	if !ok {
		return nil, &iofs.PathError{Op: "open", Path: path, Err: iofs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (fs *MemFileSystem) FileExists(path string) bool {
	path = filepath.Clean(path)
	_, ok := fs.files[path]
	return ok || fs.dirs[path]
}

func (fs *MemFileSystem) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	path = filepath.Clean(path)
	if fs.dirs[path] {
		return &iofs.PathError{Op: "open", Path: path, Err: iofs.ErrInvalid}
	}
	if !fs.dirs[filepath.Dir(path)] {
		return &iofs.PathError{Op: "open", Path: path, Err: iofs.ErrNotExist}
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	fs.files[path] = stored
	return nil
}

func (fs *MemFileSystem) MkdirAll(path string, perm iofs.FileMode) error {
	path = filepath.Clean(path)
	for {
		if _, isFile := fs.files[path]; isFile {
			return &iofs.PathError{Op: "mkdir", Path: path, Err: iofs.ErrExist}
		}
		fs.dirs[path] = true
		parent := filepath.Dir(path)
		if parent == path {
			return nil
		}
		path = parent
	}
}

// Paths lists every stored file in lexical order.
func (fs *MemFileSystem) Paths() []string {
	paths := make([]string, 0, len(fs.files))
	for p := range fs.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

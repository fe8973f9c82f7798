package document

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store abstracts how documents reach disk, so the edit pipeline can run in
// tests without touching the filesystem.
type Store interface {
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces the file's content in one step.
	WriteFile(path string, data []byte) error
	// AppendFile adds data to the end of the file, creating it when missing,
	// and returns the number of bytes written.
	AppendFile(path string, data []byte) (int, error)
}

// OSStore is the real-filesystem Store.
type OSStore struct{}

func NewOSStore() *OSStore { return &OSStore{} }

func (*OSStore) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to a temporary file beside path and renames it into
// place, so an interrupted write never leaves a half-written document. An
// existing file keeps its mode.
func (*OSStore) WriteFile(path string, data []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

func (*OSStore) AppendFile(path string, data []byte) (int, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return 0, err
	}
	n, err := f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}

// MemStore is an in-memory Store for tests (no disk I/O).
type MemStore struct {
	mu    sync.Mutex
	files map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{files: make(map[string][]byte)}
}

func (m *MemStore) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	// Return a copy to avoid mutation.
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemStore) WriteFile(path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = append([]byte(nil), data...)
	return nil
}

func (m *MemStore) AppendFile(path string, data []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = append(m.files[path], data...)
	return len(data), nil
}

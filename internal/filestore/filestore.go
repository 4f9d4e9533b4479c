package filestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrNotFound is returned by Read when the file does not exist.
var ErrNotFound = errors.New("file not found")

// Store reads and writes whole files.
type Store interface {
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
}

// OS is a Store backed by the local filesystem.
type OS struct {
	Perm fs.FileMode
}

func NewOS() OS {
	return OS{Perm: 0o644}
}

func (s OS) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Write replaces the file at path with data. Existing permissions are kept.
func (s OS) Write(path string, data []byte) error {
	perm := s.Perm
	if perm == 0 {
		perm = 0o644
	}
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Memory is an in-memory Store. Writes keep a private copy of the data. The
// zero value is an empty store.
type Memory struct {
	files map[string][]byte
	// FailWrites makes every Write return this error when set.
	FailWrites error
}

func NewMemory() *Memory {
	return &Memory{files: make(map[string][]byte)}
}

func (m *Memory) Read(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return append([]byte(nil), data...), nil
}

func (m *Memory) Write(path string, data []byte) error {
	if m.FailWrites != nil {
		return fmt.Errorf("write %s: %w", path, m.FailWrites)
	}
	if m.files == nil {
		m.files = make(map[string][]byte)
	}
	m.files[path] = append([]byte(nil), data...)
	return nil
}

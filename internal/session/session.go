package session

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// FileState is the remembered view of a single file.
type FileState struct {
	CursorRow int `toml:"cursor-row"`
	CursorCol int `toml:"cursor-col"`
	RowOffset int `toml:"row-offset"`
	ColOffset int `toml:"col-offset"`
}

// Session is the persisted state, keyed by absolute file path.
type Session struct {
	Files     map[string]FileState `toml:"files"`
	LastSaved time.Time            `toml:"last-saved"`
}

// Manager loads and stores the session file. It is owned by the control
// loop and is not safe for concurrent use.
type Manager struct {
	session Session
	path    string
	dirty   bool
}

// NewManager opens the session file in the user's state directory.
func NewManager() (*Manager, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Open loads the session stored at path. A missing or unreadable file
// starts an empty session.
func Open(path string) (*Manager, error) {
	m := &Manager{
		session: Session{Files: make(map[string]FileState)},
		path:    path,
	}
	if err := m.load(); err != nil {
		return m, err
	}
	return m, nil
}

func sessionPath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, "qvi", "session.toml"), nil
}

func (m *Manager) load() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var session Session
	if _, err := toml.Decode(string(data), &session); err != nil {
		return err
	}
	if session.Files == nil {
		session.Files = make(map[string]FileState)
	}
	m.session = session
	return nil
}

// Path returns the session file location.
func (m *Manager) Path() string {
	return m.path
}

// Save persists the session if anything changed since the last save.
func (m *Manager) Save() error {
	if !m.dirty {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return err
	}

	m.session.LastSaved = time.Now().UTC().Truncate(time.Second)
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m.session); err != nil {
		return err
	}
	if err := os.WriteFile(m.path, buf.Bytes(), 0o644); err != nil {
		return err
	}

	m.dirty = false
	return nil
}

// GetFileState returns the saved state for a file.
func (m *Manager) GetFileState(absPath string) (FileState, bool) {
	state, ok := m.session.Files[absPath]
	return state, ok
}

// SetFileState updates the state for a file.
func (m *Manager) SetFileState(absPath string, state FileState) {
	if old, ok := m.session.Files[absPath]; ok && old == state {
		return
	}
	m.session.Files[absPath] = state
	m.dirty = true
}

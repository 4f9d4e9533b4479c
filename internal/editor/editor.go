package editor

import (
	"github.com/kobzarvs/qvi/internal/buffer"
	"github.com/kobzarvs/qvi/internal/config"
	"github.com/kobzarvs/qvi/internal/cursor"
	"github.com/kobzarvs/qvi/internal/filestore"
	"github.com/kobzarvs/qvi/internal/logger"
	"github.com/kobzarvs/qvi/internal/mode"
	"github.com/kobzarvs/qvi/internal/viewport"
)

type keymapSet struct {
	normal map[string]string
	insert map[string]string
}

// Editor is the editing state of one open file: buffer, cursor, viewport
// and mode. It performs no terminal I/O; saving goes through the Store.
type Editor struct {
	buf             *buffer.Buffer
	cursor          cursor.Cursor
	offsets         viewport.Offsets
	rows            int
	cols            int
	mode            mode.Mode
	filename        string
	dirty           bool
	quit            bool
	keymap          keymapSet
	store           filestore.Store
	statusMessage   string
	gitBranch       string
	gitBranchSymbol string
	tabWidth        int

	actionHook func(action string)
}

func New(cfg config.Config, store filestore.Store) *Editor {
	normal := make(map[string]string, len(cfg.Keymap.Normal))
	for k, v := range cfg.Keymap.Normal {
		normal[k] = v
	}
	insert := make(map[string]string, len(cfg.Keymap.Insert))
	for k, v := range cfg.Keymap.Insert {
		insert[k] = v
	}
	if store == nil {
		store = filestore.NewOS()
	}
	tabWidth := cfg.Editor.TabWidth
	if tabWidth < 1 {
		tabWidth = defaultTabWidth
	}
	return &Editor{
		buf:             buffer.New(),
		mode:            mode.Normal(),
		rows:            1,
		cols:            1,
		keymap:          keymapSet{normal: normal, insert: insert},
		store:           store,
		gitBranchSymbol: cfg.Editor.GitBranchSymbol,
		tabWidth:        tabWidth,
	}
}

// OpenFile reads path through the store and replaces the buffer with it.
func (e *Editor) OpenFile(path string) error {
	data, err := e.store.Read(path)
	if err != nil {
		return err
	}
	e.Load(path, data)
	return nil
}

// Load replaces the buffer with data and resets cursor, viewport and mode.
func (e *Editor) Load(path string, data []byte) {
	e.buf = buffer.Load(data)
	e.cursor = cursor.Cursor{}
	e.offsets = viewport.Offsets{}
	e.mode = mode.Normal()
	e.filename = path
	e.dirty = false
	e.quit = false
	e.statusMessage = ""
	logger.Info("file loaded", "path", path, "lines", e.buf.LineCount(), "bytes", len(data))
}

// Resize sets the size of the text area and scrolls to keep the cursor visible.
func (e *Editor) Resize(cols, rows int) {
	e.cols = max(cols, 1)
	e.rows = max(rows, 1)
	e.scroll()
}

// RestoreView moves the cursor to c, clamped to the buffer, starting from
// the given offsets.
func (e *Editor) RestoreView(c cursor.Cursor, off viewport.Offsets) {
	e.cursor = c.Clamp(e.buf, e.mode.Kind())
	e.offsets = off
	e.scroll()
}

// scroll keeps the cursor on screen. offsets.Col counts screen cells, so
// tabs before the cursor are expanded first.
func (e *Editor) scroll() {
	row, col := e.visualCursor()
	e.offsets = viewport.Recompute(e.offsets, cursor.Cursor{Row: row, Col: col}, e.buf, e.rows, e.cols)
}

func (e *Editor) setMode(m mode.Mode) {
	e.mode = m
	e.cursor = e.cursor.Clamp(e.buf, m.Kind())
}

func (e *Editor) setStatus(msg string) {
	e.statusMessage = msg
}

func (e *Editor) SetGitBranch(name string) {
	e.gitBranch = name
}

func (e *Editor) Cursor() cursor.Cursor { return e.cursor }

func (e *Editor) Offsets() viewport.Offsets { return e.offsets }

func (e *Editor) Mode() mode.Mode { return e.mode }

func (e *Editor) Filename() string { return e.filename }

func (e *Editor) Dirty() bool { return e.dirty }

// Quit reports whether a quit was requested.
func (e *Editor) Quit() bool { return e.quit }

func (e *Editor) StatusMessage() string { return e.statusMessage }

func (e *Editor) LineCount() int { return e.buf.LineCount() }

func (e *Editor) Content() string { return e.buf.String() }

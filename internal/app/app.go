package app

import (
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qvi/internal/config"
	"github.com/kobzarvs/qvi/internal/cursor"
	"github.com/kobzarvs/qvi/internal/editor"
	"github.com/kobzarvs/qvi/internal/filestore"
	"github.com/kobzarvs/qvi/internal/gitinfo"
	"github.com/kobzarvs/qvi/internal/logger"
	"github.com/kobzarvs/qvi/internal/session"
	"github.com/kobzarvs/qvi/internal/terminal"
	"github.com/kobzarvs/qvi/internal/viewport"
)

// App is the top-level runtime for qvi: it owns the screen and runs the
// event loop for one file.
type App struct {
	path        string
	store       filestore.Store
	newScreen   func() (tcell.Screen, error)
	openSession func() (*session.Manager, error)
}

func New(path string) *App {
	return &App{
		path:        path,
		store:       filestore.NewOS(),
		newScreen:   tcell.NewScreen,
		openSession: session.NewManager,
	}
}

// Run opens the file, then takes over the terminal until the user quits.
// Load errors are returned before the terminal is touched.
func (a *App) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ed := editor.New(cfg, a.store)
	if err := ed.OpenFile(a.path); err != nil {
		return err
	}
	ed.SetGitBranch(gitinfo.Branch(a.path))

	absPath, err := filepath.Abs(a.path)
	if err != nil {
		absPath = a.path
	}
	var sm *session.Manager
	if cfg.Editor.RestoreCursor && a.openSession != nil {
		sm, err = a.openSession()
		if err != nil {
			logger.Warn("session load failed", "error", err)
		}
	}

	s, err := a.newScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	term := terminal.New(s, cfg.Theme)
	resize := func() {
		ed.Resize(terminal.TextArea(term.Size()))
	}
	resize()

	if sm != nil {
		if st, ok := sm.GetFileState(absPath); ok {
			ed.RestoreView(
				cursor.Cursor{Row: st.CursorRow, Col: st.CursorCol},
				viewport.Offsets{Row: st.RowOffset, Col: st.ColOffset},
			)
		}
		defer saveSession(sm, absPath, ed)
	}

	logger.Info("editor started", "path", a.path, "lines", ed.LineCount())
	for {
		term.Paint(ed.Plan())
		ev := term.NextEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if ed.HandleKey(ev) {
				logger.Info("quit requested", "path", a.path, "dirty", ed.Dirty())
				return nil
			}
		case *tcell.EventResize:
			term.Sync()
			resize()
		}
	}
}

func saveSession(sm *session.Manager, absPath string, ed *editor.Editor) {
	c := ed.Cursor()
	off := ed.Offsets()
	sm.SetFileState(absPath, session.FileState{
		CursorRow: c.Row,
		CursorCol: c.Col,
		RowOffset: off.Row,
		ColOffset: off.Col,
	})
	if err := sm.Save(); err != nil {
		logger.Warn("session save failed", "path", sm.Path(), "error", err)
	}
}

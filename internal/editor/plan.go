package editor

import (
	"fmt"
	"path/filepath"

	"github.com/kobzarvs/qvi/internal/cursor"
	"github.com/kobzarvs/qvi/internal/gitinfo"
	"github.com/kobzarvs/qvi/internal/mode"
	"github.com/kobzarvs/qvi/internal/viewport"
)

// Plan is everything needed to paint one frame. Lines holds the visible
// slice of the buffer with tabs expanded to spaces, already cut to the
// viewport; CursorX/CursorY are text area coordinates.
type Plan struct {
	Lines       []string
	CursorX     int
	CursorY     int
	Mode        mode.Kind
	StatusLeft  string
	StatusRight string
	CommandLine string
}

func (e *Editor) Plan() Plan {
	lines := make([]string, 0, e.rows)
	for i := 0; i < e.rows; i++ {
		row := e.offsets.Row + i
		if row >= e.buf.LineCount() {
			break
		}
		lines = append(lines, e.visibleLine(row))
	}
	row, col := e.visualCursor()
	x, y := viewport.ScreenPosition(cursor.Cursor{Row: row, Col: col}, e.offsets)

	p := Plan{
		Lines:       lines,
		CursorX:     x,
		CursorY:     y,
		Mode:        e.mode.Kind(),
		StatusLeft:  e.statusLeft(),
		StatusRight: e.statusRight(),
	}
	if e.mode.Is(mode.KindCommand) {
		p.CommandLine = e.mode.Pending()
	}
	return p
}

func (e *Editor) visibleLine(row int) string {
	cells := expandTabs(e.lineRunes(row), e.tabWidth)
	from := min(e.offsets.Col, len(cells))
	to := min(from+e.cols, len(cells))
	return string(cells[from:to])
}

func (e *Editor) statusLeft() string {
	name := e.filename
	if name == "" {
		name = "[No Name]"
	} else {
		name = filepath.Base(name)
	}
	dirty := ""
	if e.dirty {
		dirty = "*"
	}
	if e.statusMessage != "" {
		return fmt.Sprintf(" %s | %s%s | %s ", e.mode.Kind(), name, dirty, e.statusMessage)
	}
	return fmt.Sprintf(" %s | %s%s ", e.mode.Kind(), name, dirty)
}

func (e *Editor) statusRight() string {
	right := fmt.Sprintf(" Ln %d, Col %d", e.cursor.Row+1, e.cursor.Col+1)
	if branch := gitinfo.Format(e.gitBranchSymbol, e.gitBranch); branch != "" {
		right += " | " + branch
	}
	return right
}

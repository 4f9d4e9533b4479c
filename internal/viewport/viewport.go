package viewport

import (
	"github.com/kobzarvs/qvi/internal/buffer"
	"github.com/kobzarvs/qvi/internal/cursor"
)

// Offsets is the first visible buffer row and column.
type Offsets struct {
	Row int
	Col int
}

// Recompute returns the offsets that keep c inside a rows x cols window,
// moving prev as little as possible. Dimensions below 1 are treated as 1.
func Recompute(prev Offsets, c cursor.Cursor, b *buffer.Buffer, rows, cols int) Offsets {
	rows = max(rows, 1)
	cols = max(cols, 1)
	next := Offsets{
		Row: follow(prev.Row, c.Row, rows),
		Col: follow(prev.Col, c.Col, cols),
	}
	if last := b.LineCount() - 1; next.Row > last {
		next.Row = last
	}
	if next.Row < 0 {
		next.Row = 0
	}
	if next.Col < 0 {
		next.Col = 0
	}
	return next
}

func follow(offset, pos, size int) int {
	if pos < offset {
		return pos
	}
	if pos >= offset+size {
		return pos - size + 1
	}
	return offset
}

// ScreenPosition maps c to screen coordinates relative to the top-left of
// the text area.
func ScreenPosition(c cursor.Cursor, off Offsets) (x, y int) {
	return c.Col - off.Col, c.Row - off.Row
}

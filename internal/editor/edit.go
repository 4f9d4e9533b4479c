package editor

import (
	"github.com/kobzarvs/qvi/internal/cursor"
	"github.com/kobzarvs/qvi/internal/logger"
)

func (e *Editor) move(dir cursor.Direction, amount int) {
	e.cursor = e.cursor.Move(e.buf, e.mode.Kind(), dir, amount)
}

// insertRune inserts ch at the cursor; '\n' splits the current line.
func (e *Editor) insertRune(ch rune) {
	if err := e.buf.InsertChar(e.cursor.Row, e.cursor.Col, ch); err != nil {
		logger.Error("insert failed", "row", e.cursor.Row, "col", e.cursor.Col, "error", err)
		return
	}
	e.cursor = e.cursor.InsertAdvance(ch)
	e.dirty = true
}

// deleteBefore removes count characters before the cursor, joining lines when
// the cursor sits at the start of one.
func (e *Editor) deleteBefore(count int) {
	for ; count > 0; count-- {
		row, col := e.cursor.Row, e.cursor.Col
		target := e.cursor.Retreat(e.buf, 1)
		var err error
		switch {
		case col > 0:
			err = e.buf.DeleteRange(row, col-1, col)
		case row > 0:
			err = e.buf.DeleteRange(row, -1, 0)
		default:
			return
		}
		if err != nil {
			logger.Error("delete failed", "row", row, "col", col, "error", err)
			return
		}
		e.cursor = target
		e.dirty = true
	}
}

// deleteAfter removes count characters at the cursor, pulling the next line up
// when the cursor is at the end of one. The cursor does not move.
func (e *Editor) deleteAfter(count int) {
	for ; count > 0; count-- {
		row, col := e.cursor.Row, e.cursor.Col
		n := e.buf.LineLen(row)
		var err error
		switch {
		case col < n:
			err = e.buf.DeleteRange(row, col, col+1)
		case row < e.buf.LineCount()-1:
			err = e.buf.DeleteRange(row, col, n+1)
		default:
			return
		}
		if err != nil {
			logger.Error("delete failed", "row", row, "col", col, "error", err)
			return
		}
		e.dirty = true
	}
}

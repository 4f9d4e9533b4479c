package cursor

import (
	"github.com/kobzarvs/qvi/internal/buffer"
	"github.com/kobzarvs/qvi/internal/mode"
)

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Cursor is a logical (row, col) position in a buffer.
type Cursor struct {
	Row int
	Col int
}

// MaxCol returns the last valid column of row for the given mode. Insert mode
// may sit one past the last character; the other modes sit on a character,
// or at 0 on an empty line.
func MaxCol(b *buffer.Buffer, k mode.Kind, row int) int {
	n := b.LineLen(row)
	if k == mode.KindInsert {
		return n
	}
	if n == 0 {
		return 0
	}
	return n - 1
}

// Clamp pulls c back inside the buffer under the invariant of k.
func (c Cursor) Clamp(b *buffer.Buffer, k mode.Kind) Cursor {
	c.Row = clampRange(c.Row, 0, b.LineCount()-1)
	c.Col = clampRange(c.Col, 0, MaxCol(b, k, c.Row))
	return c
}

// Move shifts c by amount in dir and clamps the result. Movement saturates at
// the buffer edges; it never wraps to another line.
func (c Cursor) Move(b *buffer.Buffer, k mode.Kind, dir Direction, amount int) Cursor {
	if amount < 0 {
		amount = 0
	}
	c = c.Clamp(b, k)
	switch dir {
	case Up:
		c.Row = saturatingSub(c.Row, amount)
	case Down:
		c.Row = saturatingAdd(c.Row, amount)
	case Left:
		c.Col = saturatingSub(c.Col, amount)
	case Right:
		c.Col = saturatingAdd(c.Col, amount)
	}
	return c.Clamp(b, k)
}

// InsertAdvance returns the position just after ch was inserted at c.
func (c Cursor) InsertAdvance(ch rune) Cursor {
	if ch == '\n' {
		return Cursor{Row: c.Row + 1, Col: 0}
	}
	return Cursor{Row: c.Row, Col: c.Col + 1}
}

// Retreat returns the position count characters before c, counting each line
// break as one character. It stops at the start of the buffer. Callers use it
// to find the start of a range before deleting it.
func (c Cursor) Retreat(b *buffer.Buffer, count int) Cursor {
	c = c.Clamp(b, mode.KindInsert)
	for ; count > 0; count-- {
		switch {
		case c.Col > 0:
			c.Col--
		case c.Row > 0:
			c.Row--
			c.Col = b.LineLen(c.Row)
		default:
			return c
		}
	}
	return c
}

func clampRange(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

const maxInt = int(^uint(0) >> 1)

func saturatingAdd(v, d int) int {
	if v > maxInt-d {
		return maxInt
	}
	return v + d
}

func saturatingSub(v, d int) int {
	if v < d {
		return 0
	}
	return v - d
}

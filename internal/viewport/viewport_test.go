package viewport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kobzarvs/qvi/internal/buffer"
	"github.com/kobzarvs/qvi/internal/cursor"
)

func tallBuffer(n int) *buffer.Buffer {
	line := strings.Repeat("x", 40)
	text := strings.Repeat(line+"\n", n-1) + line
	return buffer.Load([]byte(text))
}

func TestRecomputeUnchangedWhenVisible(t *testing.T) {
	b := tallBuffer(50)
	prev := Offsets{Row: 10, Col: 5}
	got := Recompute(prev, cursor.Cursor{Row: 12, Col: 7}, b, 10, 20)
	assert.Equal(t, prev, got)
}

func TestRecomputeScrollsMinimally(t *testing.T) {
	b := tallBuffer(50)

	got := Recompute(Offsets{Row: 10}, cursor.Cursor{Row: 20}, b, 10, 20)
	assert.Equal(t, 11, got.Row)

	got = Recompute(Offsets{Row: 10}, cursor.Cursor{Row: 3}, b, 10, 20)
	assert.Equal(t, 3, got.Row)

	got = Recompute(Offsets{Col: 0}, cursor.Cursor{Col: 30}, b, 10, 20)
	assert.Equal(t, 11, got.Col)

	got = Recompute(Offsets{Col: 25}, cursor.Cursor{Col: 2}, b, 10, 20)
	assert.Equal(t, 2, got.Col)
}

func TestRecomputeKeepsCursorInsideWindow(t *testing.T) {
	b := tallBuffer(30)
	for rows := 1; rows <= 7; rows++ {
		for cols := 1; cols <= 7; cols++ {
			off := Offsets{}
			for _, c := range []cursor.Cursor{
				{Row: 0, Col: 0}, {Row: 29, Col: 39}, {Row: 5, Col: 3},
				{Row: 17, Col: 20}, {Row: 0, Col: 39}, {Row: 12, Col: 0},
			} {
				off = Recompute(off, c, b, rows, cols)
				require.LessOrEqual(t, off.Row, c.Row)
				require.Less(t, c.Row, off.Row+rows)
				require.LessOrEqual(t, off.Col, c.Col)
				require.Less(t, c.Col, off.Col+cols)
				require.LessOrEqual(t, off.Row, b.LineCount()-1)

				x, y := ScreenPosition(c, off)
				require.GreaterOrEqual(t, x, 0)
				require.GreaterOrEqual(t, y, 0)
				require.Less(t, x, cols)
				require.Less(t, y, rows)
			}
		}
	}
}

func TestRecomputeClampsDegenerateDimensions(t *testing.T) {
	b := tallBuffer(5)
	got := Recompute(Offsets{}, cursor.Cursor{Row: 3, Col: 2}, b, 0, -4)
	assert.Equal(t, Offsets{Row: 3, Col: 2}, got)
}

func TestRecomputePullsStaleOffsetIntoBuffer(t *testing.T) {
	b := tallBuffer(3)
	got := Recompute(Offsets{Row: 40}, cursor.Cursor{Row: 2}, b, 10, 10)
	assert.Equal(t, 2, got.Row)
}

package editor

const defaultTabWidth = 4

// visualCol converts a rune index on line to a screen column, expanding
// each tab to the next multiple of tabWidth.
func visualCol(line []rune, logicalCol, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = 1
	}
	logicalCol = min(max(logicalCol, 0), len(line))
	col := 0
	for _, r := range line[:logicalCol] {
		if r == '\t' {
			col += tabWidth - col%tabWidth
		} else {
			col++
		}
	}
	return col
}

func expandTabs(line []rune, tabWidth int) []rune {
	if tabWidth < 1 {
		tabWidth = 1
	}
	out := make([]rune, 0, len(line))
	for _, r := range line {
		if r != '\t' {
			out = append(out, r)
			continue
		}
		n := tabWidth - len(out)%tabWidth
		for i := 0; i < n; i++ {
			out = append(out, ' ')
		}
	}
	return out
}

func (e *Editor) lineRunes(row int) []rune {
	s, err := e.buf.Line(row)
	if err != nil {
		return nil
	}
	return []rune(s)
}

// visualCursor is the cursor with its column measured in screen cells.
func (e *Editor) visualCursor() (row, col int) {
	return e.cursor.Row, visualCol(e.lineRunes(e.cursor.Row), e.cursor.Col, e.tabWidth)
}

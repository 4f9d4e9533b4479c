package buffer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfRange is returned when a row or column does not address the buffer.
var ErrOutOfRange = errors.New("out of range")

// Buffer holds the document as a list of lines. It always has at least one
// line and no line contains '\n'.
type Buffer struct {
	lines [][]rune
}

// New returns a buffer with a single empty line.
func New() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// Load splits data into lines. Any byte sequence is accepted; invalid UTF-8
// decodes to U+FFFD. "\r\n" terminators are normalised to "\n".
func Load(data []byte) *Buffer {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return &Buffer{lines: lines}
}

func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of line n.
func (b *Buffer) Line(n int) (string, error) {
	if n < 0 || n >= len(b.lines) {
		return "", fmt.Errorf("line %d of %d: %w", n, len(b.lines), ErrOutOfRange)
	}
	return string(b.lines[n]), nil
}

// LineLen returns the character count of line n, or 0 when n is not a line.
func (b *Buffer) LineLen(n int) int {
	if n < 0 || n >= len(b.lines) {
		return 0
	}
	return len(b.lines[n])
}

// InsertChar inserts ch before column col of row. A '\n' splits the line.
func (b *Buffer) InsertChar(row, col int, ch rune) error {
	if row < 0 || row >= len(b.lines) {
		return fmt.Errorf("insert at row %d: %w", row, ErrOutOfRange)
	}
	line := b.lines[row]
	if col < 0 || col > len(line) {
		return fmt.Errorf("insert at %d:%d: %w", row, col, ErrOutOfRange)
	}
	if ch == '\n' {
		left := append([]rune(nil), line[:col]...)
		right := append([]rune(nil), line[col:]...)
		lines := make([][]rune, 0, len(b.lines)+1)
		lines = append(lines, b.lines[:row]...)
		lines = append(lines, left, right)
		lines = append(lines, b.lines[row+1:]...)
		b.lines = lines
		return nil
	}
	line = append(line, 0)
	copy(line[col+1:], line[col:])
	line[col] = ch
	b.lines[row] = line
	return nil
}

// DeleteRange removes columns [colStart, colEnd) of row. colStart == -1 also
// removes the line break before row, joining it to the previous line;
// colEnd == LineLen(row)+1 removes the line break after row, joining the next
// line onto it. Requests outside those bounds fail with ErrOutOfRange.
func (b *Buffer) DeleteRange(row, colStart, colEnd int) error {
	if row < 0 || row >= len(b.lines) {
		return fmt.Errorf("delete at row %d: %w", row, ErrOutOfRange)
	}
	line := b.lines[row]
	n := len(line)
	if colStart < -1 || colEnd > n+1 || colStart > colEnd {
		return fmt.Errorf("delete %d:[%d,%d): %w", row, colStart, colEnd, ErrOutOfRange)
	}
	if colStart == colEnd {
		return nil
	}
	joinPrev := colStart == -1
	joinNext := colEnd == n+1
	switch {
	case joinPrev && row == 0:
		return fmt.Errorf("delete before first line: %w", ErrOutOfRange)
	case joinNext && row == len(b.lines)-1:
		return fmt.Errorf("delete after last line: %w", ErrOutOfRange)
	}

	head := min(max(colStart, 0), n)
	tail := min(max(colEnd, 0), n)
	merged := make([]rune, 0, n-(tail-head))
	merged = append(merged, line[:head]...)
	merged = append(merged, line[tail:]...)

	first, last := row, row
	if joinPrev {
		first = row - 1
		merged = append(append([]rune(nil), b.lines[first]...), merged...)
	}
	if joinNext {
		last = row + 1
		merged = append(merged, b.lines[last]...)
	}

	lines := make([][]rune, 0, len(b.lines)-(last-first))
	lines = append(lines, b.lines[:first]...)
	lines = append(lines, merged)
	lines = append(lines, b.lines[last+1:]...)
	b.lines = lines
	return nil
}

// Bytes joins the lines with '\n'.
func (b *Buffer) Bytes() []byte {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return []byte(sb.String())
}

// String returns the buffer contents as text.
func (b *Buffer) String() string {
	return string(b.Bytes())
}

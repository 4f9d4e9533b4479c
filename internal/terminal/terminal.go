package terminal

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kobzarvs/qvi/internal/config"
	"github.com/kobzarvs/qvi/internal/editor"
	"github.com/kobzarvs/qvi/internal/mode"
)

// reservedRows are the status and command lines below the text area.
const reservedRows = 2

// Terminal paints editor frames on a tcell screen.
type Terminal struct {
	screen       tcell.Screen
	styleMain    tcell.Style
	styleStatus  tcell.Style
	styleCommand tcell.Style
}

func New(s tcell.Screen, theme config.Theme) *Terminal {
	fg := parseColor(theme.Foreground, tcell.ColorDefault)
	bg := parseColor(theme.Background, tcell.ColorDefault)
	statusFg := parseColor(theme.StatuslineForeground, fg)
	statusBg := parseColor(theme.StatuslineBackground, bg)
	commandFg := parseColor(theme.CommandlineForeground, fg)
	commandBg := parseColor(theme.CommandlineBackground, bg)
	return &Terminal{
		screen:       s,
		styleMain:    tcell.StyleDefault.Foreground(fg).Background(bg),
		styleStatus:  tcell.StyleDefault.Foreground(statusFg).Background(statusBg),
		styleCommand: tcell.StyleDefault.Foreground(commandFg).Background(commandBg),
	}
}

// Size returns the screen dimensions.
func (t *Terminal) Size() (cols, rows int) {
	return t.screen.Size()
}

// TextArea returns the size of the editable region for a screen of w by h.
func TextArea(w, h int) (cols, rows int) {
	return max(w, 1), max(h-reservedRows, 1)
}

// NextEvent blocks until the next event; nil means the screen was finalized.
func (t *Terminal) NextEvent() tcell.Event {
	return t.screen.PollEvent()
}

func (t *Terminal) Sync() {
	t.screen.Sync()
}

// Paint draws exactly one frame of p.
func (t *Terminal) Paint(p editor.Plan) {
	s := t.screen
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	_, viewHeight := TextArea(w, h)
	statusY := h - 2
	cmdY := h - 1
	if h < reservedRows+1 {
		viewHeight = 0
		statusY = max(h-2, 0)
	}

	s.SetStyle(t.styleMain)
	s.Clear()

	for y := 0; y < viewHeight; y++ {
		x := 0
		if y < len(p.Lines) {
			for _, r := range p.Lines[y] {
				if x >= w {
					break
				}
				switch {
				case r == '\t':
					r = ' '
				case !unicode.IsPrint(r):
					r = '?'
				}
				s.SetContent(x, y, r, nil, t.styleMain)
				x++
			}
		}
		for ; x < w; x++ {
			s.SetContent(x, y, ' ', nil, t.styleMain)
		}
	}

	if statusY != cmdY {
		drawRow(s, statusY, composeStatusLine(p.StatusLeft, p.StatusRight, w), w, t.styleStatus)
	}
	cmd := runewidth.Truncate(p.CommandLine, w, "")
	drawRow(s, cmdY, cmd, w, t.styleCommand)

	if p.Mode == mode.KindCommand {
		s.SetCursorStyle(tcell.CursorStyleSteadyBar)
		s.ShowCursor(min(runewidth.StringWidth(cmd), w-1), cmdY)
	} else {
		if p.Mode == mode.KindInsert {
			s.SetCursorStyle(tcell.CursorStyleSteadyBar)
		} else {
			s.SetCursorStyle(tcell.CursorStyleSteadyBlock)
		}
		if p.CursorY < viewHeight {
			s.ShowCursor(p.CursorX, p.CursorY)
		} else {
			s.HideCursor()
		}
	}
	s.Show()
}

func drawRow(s tcell.Screen, y int, text string, w int, style tcell.Style) {
	x := 0
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += rw
	}
	for ; x < w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// composeStatusLine right-aligns right and fills the gap with spaces. When
// both don't fit, left is cut first.
func composeStatusLine(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	rw := runewidth.StringWidth(right)
	if rw >= width {
		return truncateLeft(right, width)
	}
	left = runewidth.Truncate(left, width-rw, "")
	return runewidth.FillRight(left, width-rw) + right
}

func truncateLeft(s string, width int) string {
	runes := []rune(s)
	w := 0
	i := len(runes)
	for i > 0 {
		rw := runewidth.RuneWidth(runes[i-1])
		if w+rw > width {
			break
		}
		w += rw
		i--
	}
	return string(runes[i:])
}

func parseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		r, err1 := strconv.ParseInt(name[1:3], 16, 32)
		g, err2 := strconv.ParseInt(name[3:5], 16, 32)
		b, err3 := strconv.ParseInt(name[5:7], 16, 32)
		if err1 == nil && err2 == nil && err3 == nil {
			return tcell.NewRGBColor(int32(r), int32(g), int32(b))
		}
		return fallback
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

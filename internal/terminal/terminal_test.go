package terminal

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qvi/internal/config"
	"github.com/kobzarvs/qvi/internal/editor"
	"github.com/kobzarvs/qvi/internal/filestore"
	"github.com/kobzarvs/qvi/internal/mode"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func rowText(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return b.String()
}

func TestPaintNormalFrame(t *testing.T) {
	s := newSimScreen(t, 20, 5)
	term := New(s, config.Default().Theme)
	term.Paint(editor.Plan{
		Lines:       []string{"hello", "wor\x01d"},
		CursorX:     1,
		CursorY:     1,
		Mode:        mode.KindNormal,
		StatusLeft:  " NORMAL | a.txt ",
		StatusRight: " Ln 2, Col 2",
	})

	if got := rowText(s, 0); got != "hello"+strings.Repeat(" ", 15) {
		t.Fatalf("row0 = %q", got)
	}
	if got := rowText(s, 1); !strings.HasPrefix(got, "wor?d") {
		t.Fatalf("row1 = %q", got)
	}
	if got := rowText(s, 3); got != " NORMAL  Ln 2, Col 2" {
		t.Fatalf("status = %q", got)
	}
	if got := rowText(s, 4); strings.TrimSpace(got) != "" {
		t.Fatalf("command line = %q, want blank", got)
	}
	x, y, visible := s.GetCursor()
	if !visible || x != 1 || y != 1 {
		t.Fatalf("cursor = (%d,%d,%v), want (1,1,true)", x, y, visible)
	}
}

func TestPaintTabLine(t *testing.T) {
	s := newSimScreen(t, 20, 5)
	term := New(s, config.Default().Theme)
	ed := editor.New(config.Default(), filestore.NewMemory())
	ed.Load("t.txt", []byte("\tx\nab\tc"))
	ed.Resize(TextArea(20, 5))
	ed.HandleKey(tcell.NewEventKey(tcell.KeyRune, '$', 0))
	term.Paint(ed.Plan())

	if got := rowText(s, 0); got != "    x"+strings.Repeat(" ", 15) {
		t.Fatalf("row0 = %q", got)
	}
	if got := rowText(s, 1); !strings.HasPrefix(got, "ab  c ") {
		t.Fatalf("row1 = %q", got)
	}
	x, y, _ := s.GetCursor()
	if x != 4 || y != 0 {
		t.Fatalf("cursor = (%d,%d), want (4,0)", x, y)
	}
}

func TestPaintRawTabIsBlank(t *testing.T) {
	s := newSimScreen(t, 20, 5)
	term := New(s, config.Default().Theme)
	term.Paint(editor.Plan{Lines: []string{"a\tb"}})
	if got := rowText(s, 0); !strings.HasPrefix(got, "a b ") {
		t.Fatalf("row0 = %q", got)
	}
}

func TestPaintCommandLine(t *testing.T) {
	s := newSimScreen(t, 20, 5)
	term := New(s, config.Default().Theme)
	term.Paint(editor.Plan{
		Lines:       []string{"abc"},
		Mode:        mode.KindCommand,
		CommandLine: ":w out",
	})
	if got := rowText(s, 4); !strings.HasPrefix(got, ":w out ") {
		t.Fatalf("command line = %q", got)
	}
	x, y, _ := s.GetCursor()
	if x != 6 || y != 4 {
		t.Fatalf("cursor = (%d,%d), want (6,4)", x, y)
	}
}

func TestComposeStatusLine(t *testing.T) {
	cases := []struct {
		left, right string
		width       int
		want        string
	}{
		{" N | a ", " Ln 1", 12, " N | a  Ln 1"},
		{" NORMAL | file.txt ", " Ln 1", 10, " NORM Ln 1"},
		{"left", "0123456789", 4, "6789"},
		{"a", "b", 0, ""},
	}
	for _, tc := range cases {
		if got := composeStatusLine(tc.left, tc.right, tc.width); got != tc.want {
			t.Fatalf("composeStatusLine(%q, %q, %d) = %q, want %q", tc.left, tc.right, tc.width, got, tc.want)
		}
	}
}

func TestTextArea(t *testing.T) {
	if c, r := TextArea(80, 24); c != 80 || r != 22 {
		t.Fatalf("TextArea = (%d,%d), want (80,22)", c, r)
	}
	if c, r := TextArea(0, 1); c != 1 || r != 1 {
		t.Fatalf("TextArea tiny = (%d,%d), want (1,1)", c, r)
	}
}

func TestParseColor(t *testing.T) {
	if got := parseColor("#FF0000", tcell.ColorDefault); got != tcell.NewRGBColor(255, 0, 0) {
		t.Fatalf("hex color = %v", got)
	}
	if got := parseColor("nope", tcell.ColorBlue); got != tcell.ColorBlue {
		t.Fatalf("fallback = %v", got)
	}
	if got := parseColor("default", tcell.ColorBlue); got != tcell.ColorDefault {
		t.Fatalf("default = %v", got)
	}
}

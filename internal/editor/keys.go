package editor

import (
	"strconv"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qvi/internal/cursor"
	"github.com/kobzarvs/qvi/internal/logger"
	"github.com/kobzarvs/qvi/internal/mode"
)

const (
	actionMoveLeft     = "move_left"
	actionMoveRight    = "move_right"
	actionMoveUp       = "move_up"
	actionMoveDown     = "move_down"
	actionLineStart    = "line_start"
	actionLineEnd      = "line_end"
	actionFileStart    = "file_start"
	actionFileEnd      = "file_end"
	actionPageUp       = "page_up"
	actionPageDown     = "page_down"
	actionEnterInsert  = "enter_insert"
	actionEnterCommand = "enter_command"
	actionEnterNormal  = "enter_normal"
	actionNewline      = "newline"
	actionBackspace    = "backspace"
	actionDeleteChar   = "delete_char"
	actionInsertTab    = "insert_tab"
)

const maxAmount = int(^uint(0) >> 1)

// HandleKey applies one key event and reports whether a quit was requested.
func (e *Editor) HandleKey(ev *tcell.EventKey) bool {
	if !e.mode.Is(mode.KindCommand) {
		e.statusMessage = ""
	}
	switch e.mode.Kind() {
	case mode.KindInsert:
		e.handleInsert(ev)
	case mode.KindCommand:
		e.handleCommand(ev)
	default:
		e.handleNormal(ev)
	}
	e.scroll()
	return e.quit
}

func (e *Editor) handleNormal(ev *tcell.EventKey) {
	if action, ok := e.keymap.normal[keyString(ev)]; ok {
		e.execAction(action)
	}
}

func (e *Editor) handleInsert(ev *tcell.EventKey) {
	if action, ok := e.keymap.insert[keyString(ev)]; ok {
		e.execAction(action)
		return
	}
	if isPrintable(ev) {
		e.insertRune(ev.Rune())
	}
}

func (e *Editor) handleCommand(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		e.setMode(mode.Normal())
	case tcell.KeyEnter:
		text := e.mode.Pending()
		e.setMode(mode.Normal())
		e.Execute(text)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.mode = e.mode.Backspace()
	case tcell.KeyRune:
		if isPrintable(ev) {
			e.mode = e.mode.Append(ev.Rune())
		}
	}
}

// isPrintable reports whether ev types a character rather than a shortcut.
func isPrintable(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune || ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
		return false
	}
	return unicode.IsPrint(ev.Rune())
}

func (e *Editor) execAction(action string) {
	if e.actionHook != nil {
		e.actionHook(action)
	}
	k := e.mode.Kind()
	switch action {
	case actionMoveLeft:
		e.move(cursor.Left, 1)
	case actionMoveRight:
		e.move(cursor.Right, 1)
	case actionMoveUp:
		e.move(cursor.Up, 1)
	case actionMoveDown:
		e.move(cursor.Down, 1)
	case actionLineStart:
		e.move(cursor.Left, maxAmount)
	case actionLineEnd:
		e.move(cursor.Right, maxAmount)
	case actionFileStart:
		e.move(cursor.Up, maxAmount)
	case actionFileEnd:
		e.move(cursor.Down, maxAmount)
	case actionPageUp:
		e.move(cursor.Up, e.rows)
	case actionPageDown:
		e.move(cursor.Down, e.rows)
	case actionEnterInsert:
		if k == mode.KindNormal {
			e.setMode(mode.Insert())
		}
	case actionEnterCommand:
		if k == mode.KindNormal {
			e.setMode(mode.Command())
		}
	case actionEnterNormal:
		e.setMode(mode.Normal())
	case actionNewline:
		if k == mode.KindInsert {
			e.insertRune('\n')
		}
	case actionBackspace:
		if k == mode.KindInsert {
			e.deleteBefore(1)
		}
	case actionDeleteChar:
		if k == mode.KindInsert {
			e.deleteAfter(1)
		}
	case actionInsertTab:
		if k == mode.KindInsert {
			e.insertRune('\t')
		}
	default:
		logger.Warn("unknown keymap action", "action", action, "mode", k.String())
	}
}

func keyString(ev *tcell.EventKey) string {
	mods := ev.Modifiers()
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		name := string(r)
		if r == ' ' {
			name = "space"
		}
		switch {
		case mods&tcell.ModAlt != 0:
			return "alt+" + name
		case mods&tcell.ModCtrl != 0:
			return "ctrl+" + name
		}
		return name
	}

	name := ""
	switch ev.Key() {
	case tcell.KeyUp:
		name = "up"
	case tcell.KeyDown:
		name = "down"
	case tcell.KeyLeft:
		name = "left"
	case tcell.KeyRight:
		name = "right"
	case tcell.KeyHome:
		name = "home"
	case tcell.KeyEnd:
		name = "end"
	case tcell.KeyPgUp:
		name = "pgup"
	case tcell.KeyPgDn:
		name = "pgdn"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyEnter:
		name = "enter"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		name = "backspace"
	case tcell.KeyDelete:
		name = "del"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBacktab:
		return "shift+tab"
	}
	if name != "" {
		if mods&tcell.ModCtrl != 0 {
			return "ctrl+" + name
		}
		if mods&tcell.ModAlt != 0 {
			return "alt+" + name
		}
		return name
	}
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+int(ev.Key()-tcell.KeyCtrlA)))
	}
	if ev.Key() >= tcell.KeyF1 && ev.Key() <= tcell.KeyF12 {
		return "f" + strconv.Itoa(int(ev.Key()-tcell.KeyF1)+1)
	}
	return ""
}

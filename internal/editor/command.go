package editor

import (
	"errors"
	"fmt"

	"github.com/kobzarvs/qvi/internal/command"
	"github.com/kobzarvs/qvi/internal/logger"
)

var errNoFileName = errors.New("no file name")

// Execute runs a completed command line such as ":w out.txt". The mode is
// left unchanged; HandleKey returns to Normal before calling it.
func (e *Editor) Execute(text string) command.Action {
	act := command.Interpret(text)
	switch act.Kind {
	case command.KindQuit:
		e.quit = true
	case command.KindWrite:
		_ = e.Save(act.Path)
	case command.KindWriteQuit:
		if err := e.Save(act.Path); err == nil {
			e.quit = true
		}
	case command.KindUnknown:
		err := act.Err()
		logger.Warn("unknown command", "text", act.Text)
		e.setStatus(err.Error())
	}
	return act
}

// Save writes the buffer to path, or to the current file when path is empty.
// A failure is reported on the status line and returned; the buffer is kept.
func (e *Editor) Save(path string) error {
	if path == "" {
		if e.filename == "" {
			e.setStatus(errNoFileName.Error())
			return errNoFileName
		}
		path = e.filename
	}
	data := e.buf.Bytes()
	if err := e.store.Write(path, data); err != nil {
		logger.Error("save failed", "path", path, "error", err)
		e.setStatus(err.Error())
		return err
	}
	e.filename = path
	e.dirty = false
	e.setStatus(fmt.Sprintf("%q %d lines written", path, e.buf.LineCount()))
	logger.Info("file saved", "path", path, "bytes", len(data))
	return nil
}

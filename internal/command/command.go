package command

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCommand is reported for a verb the interpreter does not know.
var ErrUnknownCommand = errors.New("unknown command")

type Kind int

const (
	KindNone Kind = iota
	KindQuit
	KindWrite
	KindWriteQuit
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindQuit:
		return "quit"
	case KindWrite:
		return "write"
	case KindWriteQuit:
		return "write-quit"
	case KindUnknown:
		return "unknown"
	default:
		return "none"
	}
}

// Action is the parsed form of a command line.
type Action struct {
	Kind Kind
	// Path is the optional target of a write.
	Path string
	// Text is the command as typed, without the leading ':'.
	Text string
}

// Err returns ErrUnknownCommand wrapped with the command text for an unknown
// action, nil otherwise.
func (a Action) Err() error {
	if a.Kind != KindUnknown {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownCommand, a.Text)
}

// Interpret parses a command line such as ":w notes.txt".
func Interpret(text string) Action {
	text = strings.TrimSpace(strings.TrimPrefix(text, ":"))
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Action{Kind: KindNone}
	}
	verb := fields[0]
	path := strings.Join(fields[1:], " ")

	switch verb {
	case "q", "q!", "quit":
		if path != "" {
			break
		}
		return Action{Kind: KindQuit, Text: text}
	case "w", "write":
		return Action{Kind: KindWrite, Path: path, Text: text}
	case "wq", "x":
		return Action{Kind: KindWriteQuit, Path: path, Text: text}
	}
	return Action{Kind: KindUnknown, Text: text}
}

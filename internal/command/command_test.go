package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpret(t *testing.T) {
	cases := []struct {
		in   string
		want Action
	}{
		{":q", Action{Kind: KindQuit, Text: "q"}},
		{":q!", Action{Kind: KindQuit, Text: "q!"}},
		{":quit", Action{Kind: KindQuit, Text: "quit"}},
		{":w", Action{Kind: KindWrite, Text: "w"}},
		{":w notes.txt", Action{Kind: KindWrite, Path: "notes.txt", Text: "w notes.txt"}},
		{":w  my   file", Action{Kind: KindWrite, Path: "my file", Text: "w  my   file"}},
		{":wq out.txt", Action{Kind: KindWriteQuit, Path: "out.txt", Text: "wq out.txt"}},
		{":x", Action{Kind: KindWriteQuit, Text: "x"}},
		{":zz", Action{Kind: KindUnknown, Text: "zz"}},
		{":q now", Action{Kind: KindUnknown, Text: "q now"}},
		{":", Action{Kind: KindNone}},
		{":   ", Action{Kind: KindNone}},
		{"w plain", Action{Kind: KindWrite, Path: "plain", Text: "w plain"}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Interpret(tc.in))
		})
	}
}

func TestUnknownActionError(t *testing.T) {
	a := Interpret(":zz")
	err := a.Err()
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.EqualError(t, err, "unknown command: zz")

	assert.NoError(t, Interpret(":q").Err())
}

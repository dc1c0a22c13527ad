package editor

import (
	"github.com/iw2rmb/markedit/buffer"
	"github.com/iw2rmb/markedit/markdown"
)

// ChangeEvent reports the buffer state after a text change.
type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// Action is the formatting action behind the change, or
	// markdown.ActionNone for plain edits.
	Action markdown.Action

	Text string
}

func buildChangeEvent(b *buffer.Buffer, action markdown.Action) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Action:  action,
		Text:    b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}

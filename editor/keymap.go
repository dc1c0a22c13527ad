package editor

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/markedit/markdown"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	ShiftWordLeft, ShiftWordRight             key.Binding
	Home, End                                 key.Binding
	DocStart, DocEnd                          key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding

	// Format binds keys to formatting actions. The first matching entry wins.
	Format []FormatBinding
}

// FormatBinding runs Action when Binding matches.
type FormatBinding struct {
	Binding key.Binding
	Action  markdown.Action
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:       key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight:      key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),
		ShiftWordLeft:  key.NewBinding(key.WithKeys("alt+shift+left", "ctrl+shift+left"), key.WithHelp("ctrl+shift+←", "select word left")),
		ShiftWordRight: key.NewBinding(key.WithKeys("alt+shift+right", "ctrl+shift+right"), key.WithHelp("ctrl+shift+→", "select word right")),

		Home:     key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:      key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		DocStart: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		Format: DefaultFormatBindings(),
	}
}

// DefaultFormatBindings binds every toolbar action to an alt chord.
func DefaultFormatBindings() []FormatBinding {
	bind := func(k, help string, a markdown.Action) FormatBinding {
		return FormatBinding{
			Binding: key.NewBinding(key.WithKeys(k), key.WithHelp(k, help)),
			Action:  a,
		}
	}
	return []FormatBinding{
		bind("alt+b", "bold", markdown.ActionBold),
		bind("alt+i", "italic", markdown.ActionItalic),
		bind("alt+s", "strikethrough", markdown.ActionStrikeThrough),
		bind("alt+k", "link", markdown.ActionLink),
		bind("alt+g", "image", markdown.ActionImage),
		bind("alt+c", "code", markdown.ActionCode),
		bind("alt+q", "quote", markdown.ActionQuote),
		bind("alt+-", "divider", markdown.ActionDivider),
		bind("alt+u", "bullet list", markdown.ActionBulletList),
		bind("alt+n", "numbered list", markdown.ActionNumberList),
		bind("alt+t", "task list", markdown.ActionTaskList),
		bind("alt+1", "header 1", markdown.ActionHeader1),
		bind("alt+2", "header 2", markdown.ActionHeader2),
		bind("alt+3", "header 3", markdown.ActionHeader3),
		bind("alt+4", "header 4", markdown.ActionHeader4),
		bind("alt+5", "header 5", markdown.ActionHeader5),
		bind("alt+6", "header 6", markdown.ActionHeader6),
	}
}

package markdown

import (
	"strings"
	"unicode/utf8"
)

// Editable is the buffer-plus-selection contract every operation runs on.
//
// Offsets are rune offsets in [0, Len()]. Replace removes [start, end) and
// inserts text at start. The selection is stored as a raw (anchor, extent)
// pair; anchor may be after extent. anchor == extent denotes a caret.
type Editable interface {
	Len() int
	RuneAt(i int) rune
	Slice(start, end int) string
	Replace(start, end int, text string)
	SelectionOffsets() (anchor, extent int)
	SetSelectionOffsets(anchor, extent int)
}

// Text is an in-memory Editable backed by a rune slice.
type Text struct {
	runes  []rune
	anchor int
	extent int
}

// NewText returns a Text holding s with the caret at offset 0.
func NewText(s string) *Text {
	return &Text{runes: []rune(s)}
}

func (t *Text) String() string { return string(t.runes) }

func (t *Text) Len() int { return len(t.runes) }

// RuneAt returns the rune at i, or 0 outside [0, Len()).
func (t *Text) RuneAt(i int) rune {
	if i < 0 || i >= len(t.runes) {
		return 0
	}
	return t.runes[i]
}

func (t *Text) Slice(start, end int) string {
	start = clamp(start, 0, len(t.runes))
	end = clamp(end, start, len(t.runes))
	return string(t.runes[start:end])
}

func (t *Text) Replace(start, end int, text string) {
	start = clamp(start, 0, len(t.runes))
	end = clamp(end, start, len(t.runes))

	ins := []rune(text)
	out := make([]rune, 0, len(t.runes)-(end-start)+len(ins))
	out = append(out, t.runes[:start]...)
	out = append(out, ins...)
	out = append(out, t.runes[end:]...)
	t.runes = out
}

func (t *Text) SelectionOffsets() (anchor, extent int) { return t.anchor, t.extent }

func (t *Text) SetSelectionOffsets(anchor, extent int) {
	t.anchor = anchor
	t.extent = extent
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

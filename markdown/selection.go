package markdown

import "unicode"

// Bounds returns the selection clamped into [0, Len()] and ordered so that
// min <= max.
func Bounds(e Editable) (min, max int) {
	anchor, extent := e.SelectionOffsets()
	n := e.Len()
	anchor = clamp(anchor, 0, n)
	extent = clamp(extent, 0, n)
	if anchor > extent {
		return extent, anchor
	}
	return anchor, extent
}

// HasSelection reports whether the selection covers at least one rune.
func HasSelection(e Editable) bool {
	min, max := Bounds(e)
	return min < max
}

// SelectedText returns the text in [min, max).
func SelectedText(e Editable) string {
	min, max := Bounds(e)
	return e.Slice(min, max)
}

// SetCaret collapses the selection to pos.
func SetCaret(e Editable, pos int) {
	e.SetSelectionOffsets(pos, pos)
}

// ReplaceSelection replaces [min, max) with s and collapses the selection to
// the end of the inserted text.
func ReplaceSelection(e Editable, s string) {
	min, max := Bounds(e)
	e.Replace(min, max, s)
	SetCaret(e, min+runeLen(s))
}

// SelectWordAroundCursor expands a caret to the run of non-whitespace runes
// around it. It does nothing when a selection already exists.
func SelectWordAroundCursor(e Editable) {
	if HasSelection(e) {
		return
	}
	start, end := Bounds(e)
	for start > 0 && !unicode.IsSpace(e.RuneAt(start-1)) {
		start--
	}
	n := e.Len()
	for end < n && !unicode.IsSpace(e.RuneAt(end)) {
		end++
	}
	e.SetSelectionOffsets(start, end)
}

// MoveSelectionStartToStartOfLine moves the selection start to the first
// rune of its line. The end is unchanged.
func MoveSelectionStartToStartOfLine(e Editable) {
	start, end := Bounds(e)
	for start > 0 && e.RuneAt(start-1) != '\n' {
		start--
	}
	e.SetSelectionOffsets(start, end)
}

// MoveSelectionEndToEndOfLine moves the selection end to the newline that
// terminates its line, or to Len() on the last line. The start is unchanged.
func MoveSelectionEndToEndOfLine(e Editable) {
	start, end := Bounds(e)
	n := e.Len()
	for end < n && e.RuneAt(end) != '\n' {
		end++
	}
	e.SetSelectionOffsets(start, end)
}

// SelectLine expands the selection to cover every line it touches.
func SelectLine(e Editable) {
	MoveSelectionStartToStartOfLine(e)
	MoveSelectionEndToEndOfLine(e)
}

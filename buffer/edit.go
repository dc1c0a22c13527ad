package buffer

import "strings"

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.Apply(TextEdit{Range: r, Text: s})
}

func (b *Buffer) InsertRune(r rune) {
	b.InsertText(string(r))
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col > 0:
		b.Apply(TextEdit{Range: Range{Start: Pos{Row: row, Col: col - 1}, End: b.cursor}})
	case row > 0:
		// Join with previous line (delete the newline).
		prev := Pos{Row: row - 1, Col: len(b.lines[row-1])}
		b.Apply(TextEdit{Range: Range{Start: prev, End: b.cursor}})
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col < len(b.lines[row]):
		b.Apply(TextEdit{Range: Range{Start: b.cursor, End: Pos{Row: row, Col: col + 1}}})
	case row < len(b.lines)-1:
		// Join with next line (delete the newline).
		b.Apply(TextEdit{Range: Range{Start: b.cursor, End: Pos{Row: row + 1, Col: 0}}})
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.Apply(TextEdit{Range: r})
}

// Apply applies a sequence of text edits in order. Each edit's range is
// interpreted against the buffer state at the time that edit is applied.
//
// Semantics:
// - Edit ranges are clamped into current document bounds.
// - Empty range + non-empty text inserts.
// - Cursor moves to the end of the last effective edit.
// - Selection is cleared if any edit applies.
func (b *Buffer) Apply(edits ...TextEdit) {
	var prev bufferSnapshot
	record := b.opt.HistoryLimit > 0 && !b.batching
	if record {
		prev = b.snapshot()
	}
	change := b.beginChange()

	lastCursor := b.cursor
	for _, e := range edits {
		nextCursor, applied, changed := b.replaceRange(e.Range, e.Text)
		if !changed {
			continue
		}
		lastCursor = nextCursor
		change.add(applied)
	}
	if len(change.appliedEdits) == 0 {
		return
	}

	b.cursor = b.clampPos(lastCursor)
	b.sel = selectionState{}
	b.commit(change)
	if record {
		b.recordUndo(prev)
	}
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	deleted := b.textInRange(r)
	if deleted == text {
		return b.cursor, AppliedEdit{}, false
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col

	prefix := append([]rune(nil), b.lines[startRow][:startCol]...)
	suffix := append([]rune(nil), b.lines[endRow][endCol:]...)

	ins := splitLines(text)
	repl := make([][]rune, 0, len(ins))
	for i, part := range ins {
		line := part
		if i == 0 {
			line = append(prefix, part...)
		}
		repl = append(repl, line)
	}
	last := len(repl) - 1
	nextCursor = Pos{Row: startRow + last, Col: len(repl[last])}
	repl[last] = append(repl[last], suffix...)

	out := make([][]rune, 0, len(b.lines)-(endRow-startRow+1)+len(repl))
	out = append(out, b.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, b.lines[endRow+1:]...)
	b.setLines(out)

	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deleted,
	}
	return nextCursor, applied, true
}

func (b *Buffer) textInRange(r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return string(b.lines[r.Start.Row][r.Start.Col:r.End.Col])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		line := b.lines[row]
		from, to := 0, len(line)
		if row == r.Start.Row {
			from = r.Start.Col
		}
		if row == r.End.Row {
			to = r.End.Col
		}
		sb.WriteString(string(line[from:to]))
	}
	return sb.String()
}

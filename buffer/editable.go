package buffer

// Len returns the document length in runes, counting each line break as one.
func (b *Buffer) Len() int {
	last := len(b.lines) - 1
	return b.lineStarts()[last] + len(b.lines[last])
}

// RuneAt returns the rune at offset i. Line ends read as '\n'. Offsets
// outside [0, Len()) return 0.
func (b *Buffer) RuneAt(i int) rune {
	if i < 0 || i >= b.Len() {
		return 0
	}
	p := b.runeOffsetToPos(i)
	line := b.lines[p.Row]
	if p.Col == len(line) {
		return '\n'
	}
	return line[p.Col]
}

// Slice returns the text between two rune offsets.
func (b *Buffer) Slice(start, end int) string {
	return b.textInRange(b.offsetRange(start, end))
}

// Replace replaces the text between two rune offsets and moves the cursor to
// the end of the inserted text.
func (b *Buffer) Replace(start, end int, text string) {
	b.Apply(TextEdit{Range: b.offsetRange(start, end), Text: text})
}

// SelectionOffsets returns the raw selection as rune offsets. Without a
// selection both values are the cursor offset.
func (b *Buffer) SelectionOffsets() (anchor, extent int) {
	if r, ok := b.SelectionRaw(); ok {
		return b.posToRuneOffset(r.Start), b.posToRuneOffset(r.End)
	}
	c := b.posToRuneOffset(b.cursor)
	return c, c
}

// SetSelectionOffsets selects [anchor, extent) by rune offsets, leaving the
// cursor at extent. Equal offsets place a caret.
func (b *Buffer) SetSelectionOffsets(anchor, extent int) {
	a, _ := b.PosFromRuneOffset(anchor, OffsetClamp)
	x, _ := b.PosFromRuneOffset(extent, OffsetClamp)
	b.SetSelection(Range{Start: a, End: x})
}

func (b *Buffer) offsetRange(start, end int) Range {
	s, _ := b.PosFromRuneOffset(start, OffsetClamp)
	e, _ := b.PosFromRuneOffset(end, OffsetClamp)
	return NormalizeRange(Range{Start: s, End: e})
}

package buffer

import "strings"

type bufferSnapshot struct {
	text   string
	cursor Pos
	sel    selectionState
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{
		text:   b.Text(),
		cursor: b.cursor,
		sel:    b.sel,
	}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.setLines(splitLines(s.text))
	b.cursor = b.clampPos(s.cursor)

	if !s.sel.active {
		b.sel = selectionState{}
		return
	}
	anchor := b.clampPos(s.sel.anchor)
	end := b.clampPos(s.sel.end)
	if anchor == end {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{active: true, anchor: anchor, end: end}
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}
	b.hist.undo = append(b.hist.undo, prev)
	if len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}
	b.hist.redo = nil
}

// Batch runs fn so that every text edit it makes forms a single undo step.
// Nested calls join the outer batch.
func (b *Buffer) Batch(fn func()) {
	if b.batching {
		fn()
		return
	}

	var prev bufferSnapshot
	if b.opt.HistoryLimit > 0 {
		prev = b.snapshot()
	}
	before := b.textVersion

	b.batching = true
	defer func() {
		b.batching = false
		if b.textVersion != before {
			b.recordUndo(prev)
		}
	}()
	fn()
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

func (b *Buffer) Undo() bool {
	if len(b.hist.undo) == 0 {
		return false
	}

	cur := b.snapshot()
	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, cur)

	b.jump(cur, prev)
	return true
}

func (b *Buffer) Redo() bool {
	if len(b.hist.redo) == 0 {
		return false
	}

	cur := b.snapshot()
	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]

	b.hist.undo = append(b.hist.undo, cur)
	if limit := b.opt.HistoryLimit; len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}

	b.jump(cur, next)
	return true
}

func (b *Buffer) jump(from, to bufferSnapshot) {
	change := b.beginChange()
	b.restore(to)
	if applied, ok := replacementEdit(from.text, to.text); ok {
		change.add(applied)
	}
	if len(change.appliedEdits) == 0 {
		b.version++
		return
	}
	b.commit(change)
}

// replacementEdit reduces a whole-document replacement to the changed
// middle section.
func replacementEdit(before, after string) (AppliedEdit, bool) {
	if before == after {
		return AppliedEdit{}, false
	}
	a, z := []rune(before), []rune(after)

	pre := 0
	for pre < len(a) && pre < len(z) && a[pre] == z[pre] {
		pre++
	}
	suf := 0
	for suf < len(a)-pre && suf < len(z)-pre && a[len(a)-1-suf] == z[len(z)-1-suf] {
		suf++
	}

	deleted := string(a[pre : len(a)-suf])
	inserted := string(z[pre : len(z)-suf])
	start := posInText(a[:pre])
	return AppliedEdit{
		RangeBefore: Range{Start: start, End: posInText(a[:len(a)-suf])},
		RangeAfter:  Range{Start: start, End: posInText(z[:len(z)-suf])},
		InsertText:  inserted,
		DeletedText: deleted,
	}, true
}

func posInText(rs []rune) Pos {
	s := string(rs)
	row := strings.Count(s, "\n")
	col := len(rs)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		col = len([]rune(s[i+1:]))
	}
	return Pos{Row: row, Col: col}
}

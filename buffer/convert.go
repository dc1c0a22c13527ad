package buffer

import "sort"

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// PosFromRuneOffset converts a flat rune offset into a document position.
// Each line break counts as one rune.
func (b *Buffer) PosFromRuneOffset(off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, b.Len(), mode)
	if !ok {
		return Pos{}, false
	}
	return b.runeOffsetToPos(off), true
}

// RuneOffsetFromPos converts a document position into a flat rune offset.
func (b *Buffer) RuneOffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	clamped := b.clampPos(pos)
	switch mode {
	case OffsetError:
		if clamped != pos {
			return 0, false
		}
	case OffsetClamp:
	default:
		return 0, false
	}
	return b.posToRuneOffset(clamped), true
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, max), true
	default:
		return 0, false
	}
}

// lineStarts returns the rune offset of every line start. It is rebuilt
// lazily after the lines change.
func (b *Buffer) lineStarts() []int {
	if b.starts == nil {
		starts := make([]int, len(b.lines))
		off := 0
		for row, line := range b.lines {
			starts[row] = off
			off += len(line) + 1
		}
		b.starts = starts
	}
	return b.starts
}

// runeOffsetToPos maps an offset to its row by binary search. An offset on a
// line break belongs to the end of the row before it.
func (b *Buffer) runeOffsetToPos(off int) Pos {
	starts := b.lineStarts()
	row := sort.Search(len(starts), func(i int) bool { return starts[i] > off }) - 1
	row = max(row, 0)
	col := off - starts[row]
	if n := len(b.lines[row]); col > n {
		col = n
	}
	return Pos{Row: row, Col: max(col, 0)}
}

func (b *Buffer) posToRuneOffset(pos Pos) int {
	return b.lineStarts()[pos.Row] + pos.Col
}

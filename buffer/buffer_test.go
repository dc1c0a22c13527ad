package buffer

import "testing"

func TestBuffer_New_SplitsLines(t *testing.T) {
	b := New("a\n\nπテ", Options{})
	if got, want := b.LineCount(), 3; got != want {
		t.Fatalf("lines=%d, want %d", got, want)
	}
	if got, want := b.Line(2), "πテ"; got != want {
		t.Fatalf("line 2=%q, want %q", got, want)
	}
	if got := b.Line(9); got != "" {
		t.Fatalf("line 9=%q, want empty", got)
	}
	if got, want := b.Text(), "a\n\nπテ"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 999, Col: 999})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}
	if b.TextVersion() != 0 {
		t.Fatalf("expected text version unchanged, got %d", b.TextVersion())
	}

	b.SetCursor(Pos{Row: 1, Col: 2})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
}

func TestBuffer_SetSelection_NormalizesClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})

	b.SetSelection(Range{
		Start: Pos{Row: 1, Col: 99},
		End:   Pos{Row: 0, Col: -1},
	})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection active")
	}
	want := Range{Start: Pos{Row: 0, Col: 0}, End: Pos{Row: 1, Col: 2}}
	if r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 0}) {
		t.Fatalf("cursor=%v, want selection end (0,0)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	b.SetSelection(Range{Start: Pos{Row: 1, Col: 2}, End: Pos{Row: 0, Col: 0}})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}

	b.SetSelection(Range{Start: Pos{Row: 1, Col: 1}, End: Pos{Row: 1, Col: 1}})
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected empty range to clear selection")
	}
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 1}) {
		t.Fatalf("cursor=%v, want (1,1)", got)
	}
}

func TestBuffer_TextVersion_TracksOnlyTextMutations(t *testing.T) {
	b := New("abc", Options{})

	b.SetCursor(Pos{Row: 0, Col: 1})
	b.SetSelection(Range{Start: Pos{Row: 0, Col: 0}, End: Pos{Row: 0, Col: 2}})
	b.ClearSelection()
	if got := b.TextVersion(); got != 0 {
		t.Fatalf("text version=%d, want 0", got)
	}

	b.InsertText("x")
	if got := b.TextVersion(); got != 1 {
		t.Fatalf("text version=%d, want 1", got)
	}
}

func TestBuffer_SelectionRaw_PreservesDirection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, Col: 4}, End: Pos{Row: 0, Col: 1}})

	raw, ok := b.SelectionRaw()
	if !ok {
		t.Fatalf("expected raw selection")
	}
	want := Range{Start: Pos{Row: 0, Col: 4}, End: Pos{Row: 0, Col: 1}}
	if raw != want {
		t.Fatalf("raw=%v, want %v", raw, want)
	}
}

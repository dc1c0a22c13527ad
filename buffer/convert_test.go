package buffer

import "testing"

func TestBuffer_PosFromRuneOffset(t *testing.T) {
	b := New("ab\nπd", Options{})

	cases := []struct {
		off  int
		mode OffsetClampMode
		want Pos
		ok   bool
	}{
		{0, OffsetError, Pos{Row: 0, Col: 0}, true},
		{2, OffsetError, Pos{Row: 0, Col: 2}, true},
		{3, OffsetError, Pos{Row: 1, Col: 0}, true},
		{5, OffsetError, Pos{Row: 1, Col: 2}, true},
		{6, OffsetError, Pos{}, false},
		{-1, OffsetError, Pos{}, false},
		{6, OffsetClamp, Pos{Row: 1, Col: 2}, true},
		{-4, OffsetClamp, Pos{Row: 0, Col: 0}, true},
		{1, OffsetClampMode(9), Pos{}, false},
	}
	for _, tc := range cases {
		got, ok := b.PosFromRuneOffset(tc.off, tc.mode)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("PosFromRuneOffset(%d, %d)=(%v,%v), want (%v,%v)", tc.off, tc.mode, got, ok, tc.want, tc.ok)
		}
	}
}

func TestBuffer_RuneOffsetFromPos(t *testing.T) {
	b := New("ab\nπd", Options{})

	cases := []struct {
		pos  Pos
		mode OffsetClampMode
		want int
		ok   bool
	}{
		{Pos{Row: 0, Col: 0}, OffsetError, 0, true},
		{Pos{Row: 1, Col: 1}, OffsetError, 4, true},
		{Pos{Row: 1, Col: 2}, OffsetError, 5, true},
		{Pos{Row: 0, Col: 9}, OffsetError, 0, false},
		{Pos{Row: 0, Col: 9}, OffsetClamp, 2, true},
		{Pos{Row: 7, Col: 0}, OffsetClamp, 3, true},
	}
	for _, tc := range cases {
		got, ok := b.RuneOffsetFromPos(tc.pos, tc.mode)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("RuneOffsetFromPos(%v, %d)=(%d,%v), want (%d,%v)", tc.pos, tc.mode, got, ok, tc.want, tc.ok)
		}
	}
}

func TestBuffer_OffsetConversions_RoundTrip(t *testing.T) {
	b := New("héllo\n\nテスト\nx", Options{})

	for off := 0; off <= b.Len(); off++ {
		pos, ok := b.PosFromRuneOffset(off, OffsetError)
		if !ok {
			t.Fatalf("PosFromRuneOffset(%d) rejected", off)
		}
		back, ok := b.RuneOffsetFromPos(pos, OffsetError)
		if !ok || back != off {
			t.Fatalf("round trip %d -> %v -> %d (ok=%v)", off, pos, back, ok)
		}
	}
}

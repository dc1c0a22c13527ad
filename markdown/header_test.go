package markdown

import (
	"errors"
	"strings"
	"testing"
)

func TestHeader_Levels(t *testing.T) {
	for level := MinHeaderLevel; level <= MaxHeaderLevel; level++ {
		txt := newMarked(t, "")
		if err := Header(txt, level); err != nil {
			t.Fatalf("level %d: unexpected error: %v", level, err)
		}
		want := strings.Repeat("#", level) + " |"
		if got := formatMarked(txt); got != want {
			t.Fatalf("level %d: got %q, want %q", level, got, want)
		}
	}
}

func TestHeader_RejectsLevelOutOfRange(t *testing.T) {
	for _, level := range []int{-1, 0, 7, 100} {
		txt := newMarked(t, "He|llo")
		err := Header(txt, level)
		if !errors.Is(err, ErrHeaderLevel) {
			t.Fatalf("level %d: err=%v, want ErrHeaderLevel", level, err)
		}
		assertMarked(t, "He|llo", txt)
	}
}

func TestHeader(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "whole line", in: "Hel|lo", want: "# Hello|"},
		{name: "pads middle line", in: "Text\nHel|lo\ntest", want: "Text\n\n# Hello\n|\ntest"},
		{name: "selection splits line", in: "Text\nH|el|lo\ntest", want: "Text\nH\n\n# el\n|\nlo\ntest"},
		{name: "existing blank lines", in: "Intro\n\nTi|tle\n\nrest", want: "Intro\n\n# Title\n|\nrest"},
		{name: "empty last line", in: "Text\n|", want: "Text\n\n# |"},
		{name: "empty line before text", in: "|\nText", want: "# \n|\nText"},
	}
	for _, tc := range cases {
		txt := newMarked(t, tc.in)
		if err := Header(txt, 1); err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got := formatMarked(txt); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

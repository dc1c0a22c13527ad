package markdown

import "testing"

func TestDivider(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty text", in: "", want: "-------\n|"},
		{name: "after text", in: "Hello|", want: "Hello\n\n-------\n|"},
		{name: "before text", in: "|Hello", want: "-------\n|\nHello"},
		{name: "between text", in: "He|llo", want: "He\n\n-------\n|\nllo"},
		{name: "replaces selection", in: "He|ll|o", want: "He\n\n-------\n|\no"},
		{name: "after blank line", in: "Hello\n\n|", want: "Hello\n\n-------\n|"},
		{name: "replaces everything", in: "|Hello|", want: "-------\n|"},
	}
	for _, tc := range cases {
		txt := newMarked(t, tc.in)
		Divider(txt)
		if got := formatMarked(txt); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

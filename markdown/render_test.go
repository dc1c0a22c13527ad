package markdown

import (
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	gmtext "github.com/yuin/goldmark/text"
)

var gfm = goldmark.New(goldmark.WithExtensions(extension.GFM))

func parseMarkdown(src string) ast.Node {
	return gfm.Parser().Parse(gmtext.NewReader([]byte(src)))
}

func findKind(root ast.Node, kind ast.NodeKind) ast.Node {
	var found ast.Node
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == kind {
			found = n
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return found
}

// The inserted markup must parse as the construct it claims to be, which is
// what the blank-line padding around blocks guarantees.
func TestInsertedMarkupParses(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		apply func(Editable)
		kind  ast.NodeKind
	}{
		{name: "bold", in: "say He|llo", apply: Bold, kind: ast.KindEmphasis},
		{name: "strike", in: "say He|llo", apply: StrikeThrough, kind: east.KindStrikethrough},
		{name: "link", in: "see do|cs", apply: Link, kind: ast.KindLink},
		{name: "image", in: "see lo|go", apply: Image, kind: ast.KindImage},
		{name: "inline code", in: "run |go| now", apply: Code, kind: ast.KindCodeSpan},
		{name: "fenced code", in: "Intro\n|a := 1\nb := 2|\nOutro", apply: Code, kind: ast.KindFencedCodeBlock},
		{name: "header", in: "Intro\nTi|tle\nBody", apply: func(e Editable) { _ = Header(e, 2) }, kind: ast.KindHeading},
		{name: "bullets", in: "Intro\n|one\ntwo|\nOutro", apply: func(e Editable) { _ = List(e, Bullets) }, kind: ast.KindList},
		{name: "tasks", in: "Intro\n|one\ntwo|", apply: func(e Editable) { _ = List(e, Tasks) }, kind: east.KindTaskCheckBox},
		{name: "quote", in: "Intro\nwi|se words\nOutro", apply: Quote, kind: ast.KindBlockquote},
		{name: "divider", in: "Intro|", apply: Divider, kind: ast.KindThematicBreak},
	}
	for _, tc := range cases {
		txt := newMarked(t, tc.in)
		tc.apply(txt)
		if findKind(parseMarkdown(txt.String()), tc.kind) == nil {
			t.Fatalf("%s: %q does not contain a %v node", tc.name, txt.String(), tc.kind)
		}
	}
}

func TestHeaderParsesWithLevel(t *testing.T) {
	for level := MinHeaderLevel; level <= MaxHeaderLevel; level++ {
		txt := newMarked(t, "Intro\nTi|tle\nBody")
		if err := Header(txt, level); err != nil {
			t.Fatalf("level %d: unexpected error: %v", level, err)
		}
		h, ok := findKind(parseMarkdown(txt.String()), ast.KindHeading).(*ast.Heading)
		if !ok {
			t.Fatalf("level %d: no heading in %q", level, txt.String())
		}
		if h.Level != level {
			t.Fatalf("heading level=%d, want %d", h.Level, level)
		}
	}
}

func TestNumberListParsesOrdered(t *testing.T) {
	txt := newMarked(t, "Intro\n|one\n\ntwo|\nOutro")
	if err := List(txt, Numbers); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l, ok := findKind(parseMarkdown(txt.String()), ast.KindList).(*ast.List)
	if !ok {
		t.Fatalf("no list in %q", txt.String())
	}
	if !l.IsOrdered() || l.Start != 1 {
		t.Fatalf("list ordered=%v start=%d, want ordered from 1", l.IsOrdered(), l.Start)
	}
	if got := l.ChildCount(); got != 2 {
		t.Fatalf("list items=%d, want 2", got)
	}
}

package editor

import (
	"bytes"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

type lineKind uint8

const (
	linePlain lineKind = iota
	lineHeading
	lineQuote
	lineList
	lineCode
	lineDivider
)

var openRowsKey = parser.NewContextKey()

// rowRecorder remembers the source row each block opens on. Container and
// marker-only blocks carry no line segments of their own, so the opening row
// is the only place their position is known.
type rowRecorder struct {
	parser.BlockParser
}

func (r rowRecorder) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	row, _ := reader.Position()
	node, state := r.BlockParser.Open(parent, reader, pc)
	if node != nil {
		if rows, ok := pc.Get(openRowsKey).(map[ast.Node]int); ok {
			rows[node] = row
		}
	}
	return node, state
}

func recordRows(ps []util.PrioritizedValue) []util.PrioritizedValue {
	out := make([]util.PrioritizedValue, 0, len(ps))
	for _, p := range ps {
		out = append(out, util.Prioritized(rowRecorder{p.Value.(parser.BlockParser)}, p.Priority))
	}
	return out
}

var blockParser = goldmark.New(
	goldmark.WithParser(parser.NewParser(
		parser.WithBlockParsers(recordRows(parser.DefaultBlockParsers())...),
		parser.WithInlineParsers(parser.DefaultInlineParsers()...),
		parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
	)),
	goldmark.WithExtensions(extension.GFM),
).Parser()

// classifyRows parses src as GFM and returns the block kind of each of its
// rowCount rows. Rows belong to the top-level block they fall in; blank rows
// trailing a block stay plain.
func classifyRows(src []byte, rowCount int) []lineKind {
	kinds := make([]lineKind, rowCount)
	if rowCount == 0 {
		return kinds
	}

	opened := map[ast.Node]int{}
	pc := parser.NewContext()
	pc.Set(openRowsKey, opened)
	doc := blockParser.Parse(text.NewReader(src), parser.WithContext(pc))

	starts := rowStarts(src)
	rowOf := func(off int) int {
		return sort.Search(len(starts), func(i int) bool { return starts[i] > off }) - 1
	}
	blank := func(row int) bool {
		end := len(src)
		if row+1 < len(starts) {
			end = starts[row+1]
		}
		return len(bytes.TrimSpace(src[starts[row]:end])) == 0
	}

	type span struct {
		node       ast.Node
		first, end int
	}
	var spans []span
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		first, last := segmentRows(n, rowOf)
		if row, ok := opened[n]; ok {
			if first < 0 || row < first {
				first = row
			}
			last = max(last, row)
		}
		if first < 0 {
			continue
		}
		spans = append(spans, span{node: n, first: first, end: last})
	}

	for i, s := range spans {
		limit := rowCount - 1
		if i+1 < len(spans) {
			limit = spans[i+1].first - 1
		}
		end := limit
		switch s.node.(type) {
		case *ast.Heading, *ast.ThematicBreak:
			// A setext underline is the opening row of the heading block.
			end = min(s.end, limit)
		default:
			for end > s.first && blank(end) {
				end--
			}
		}
		kind := blockKind(s.node)
		for row := s.first; row <= end && row < rowCount; row++ {
			kinds[row] = kind
		}
	}
	return kinds
}

// segmentRows returns the first and last rows covered by the line segments
// of n and its block descendants, or -1 when there are none.
func segmentRows(n ast.Node, rowOf func(int) int) (first, last int) {
	first, last = -1, -1
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if c.Type() != ast.TypeBlock {
			return ast.WalkSkipChildren, nil
		}
		lines := c.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			lo := rowOf(seg.Start)
			hi := rowOf(max(seg.Stop-1, seg.Start))
			if first < 0 || lo < first {
				first = lo
			}
			last = max(last, hi)
		}
		return ast.WalkContinue, nil
	})
	return first, last
}

func rowStarts(src []byte) []int {
	starts := []int{0}
	for i, c := range src {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func blockKind(n ast.Node) lineKind {
	switch n.(type) {
	case *ast.Heading:
		return lineHeading
	case *ast.Blockquote:
		return lineQuote
	case *ast.List:
		return lineList
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return lineCode
	case *ast.ThematicBreak:
		return lineDivider
	default:
		return linePlain
	}
}

func (st Style) forLine(k lineKind) lipgloss.Style {
	switch k {
	case lineHeading:
		return st.Heading.Inherit(st.Text)
	case lineQuote:
		return st.Quote.Inherit(st.Text)
	case lineList:
		return st.List.Inherit(st.Text)
	case lineCode:
		return st.Fence.Inherit(st.Text)
	case lineDivider:
		return st.Divider.Inherit(st.Text)
	default:
		return st.Text
	}
}

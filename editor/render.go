package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/markedit/buffer"
	"github.com/iw2rmb/markedit/internal/grapheme"
)

func (m *Model) renderContent() string {
	n := m.buf.LineCount()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(n)
	}

	st := m.cfg.Style
	kinds := m.lineKinds()
	out := make([]string, 0, n)
	for row := 0; row < n; row++ {
		line := m.buf.Line(row)

		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := st.LineNum
			if m.focused && row == cursor.Row {
				numStyle = st.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(st.Gutter.Render(" "))
		}

		lr := lineRender{
			style:    st,
			base:     st.forLine(kinds[row]),
			row:      row,
			cursor:   cursor,
			focused:  m.focused,
			sel:      sel,
			selOK:    selOK,
			tabWidth: m.cfg.TabWidth,
		}
		sb.WriteString(lr.render(line))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// lineKinds returns the block kind of every row, reparsing only when the
// text changed since the last render.
func (m *Model) lineKinds() []lineKind {
	ver := m.buf.TextVersion()
	if m.kinds == nil || m.kindsVersion != ver || len(m.kinds) != m.buf.LineCount() {
		m.kinds = classifyRows([]byte(m.buf.Text()), m.buf.LineCount())
		m.kindsVersion = ver
	}
	return m.kinds
}

type lineRender struct {
	style    Style
	base     lipgloss.Style
	row      int
	cursor   buffer.Pos
	focused  bool
	sel      buffer.Range
	selOK    bool
	tabWidth int
}

type spanKind uint8

const (
	spanText spanKind = iota
	spanSelection
	spanCursor
)

// render draws one logical line. Consecutive clusters sharing a span kind
// are styled together. A cursor at end of line is drawn as one blank cell.
func (lr lineRender) render(line string) string {
	rawLen := utf8.RuneCountInString(line)

	cursorCol := -1
	if lr.focused && lr.row == lr.cursor.Row {
		cursorCol = min(max(lr.cursor.Col, 0), rawLen)
	}
	selStart, selEnd, hasSel := selectionColsForRow(lr.sel, lr.selOK, lr.row, rawLen)

	var sb strings.Builder
	var run strings.Builder
	runKind := spanText
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(lr.styleFor(runKind).Render(run.String()))
		run.Reset()
	}

	for _, c := range grapheme.Clusters(line, lr.tabWidth) {
		kind := spanText
		switch {
		case cursorCol >= c.StartCol && cursorCol < c.EndCol:
			kind = spanCursor
		case hasSel && c.StartCol < selEnd && c.EndCol > selStart:
			kind = spanSelection
		}
		if kind != runKind || kind == spanCursor {
			flush()
			runKind = kind
		}

		text := c.Text
		if text == "\t" {
			text = strings.Repeat(" ", c.Width)
		}
		run.WriteString(text)
	}
	flush()

	switch {
	case cursorCol == rawLen:
		sb.WriteString(lr.style.Cursor.Render(" "))
	case hasSel && selEnd > rawLen:
		// The selection continues past the line break.
		sb.WriteString(lr.style.Selection.Render(" "))
	}
	return sb.String()
}

func (lr lineRender) styleFor(k spanKind) lipgloss.Style {
	switch k {
	case spanCursor:
		return lr.style.Cursor
	case spanSelection:
		return lr.style.Selection
	default:
		return lr.base
	}
}

// selectionColsForRow returns the selected rune columns of row. When the
// selection continues onto the next row, end is rawLen+1.
func selectionColsForRow(sel buffer.Range, ok bool, row, rawLen int) (start, end int, has bool) {
	if !ok || row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, rawLen+1
	if row == sel.Start.Row {
		start = sel.Start.Col
	}
	if row == sel.End.Row {
		end = sel.End.Col
	}
	return start, end, start < end
}

func gutterDigits(lineCount int) int {
	return len(fmt.Sprint(max(lineCount, 1)))
}

package grapheme

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is used when a non-positive tab width is supplied.
const DefaultTabWidth = 4

// Cluster is one grapheme cluster of a line, addressed by rune columns.
type Cluster struct {
	Text     string
	StartCol int // first rune column
	EndCol   int // rune column after the cluster
	Width    int // terminal cells
}

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, utf8.RuneCountInString(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Clusters splits a single line into clusters with rune spans and cell
// widths. Tabs advance to the next multiple of tabWidth.
func Clusters(line string, tabWidth int) []Cluster {
	if line == "" {
		return nil
	}

	g := uniseg.NewGraphemes(line)
	out := make([]Cluster, 0, utf8.RuneCountInString(line))
	col, cell := 0, 0
	for g.Next() {
		s := g.Str()
		n := utf8.RuneCountInString(s)
		w := Width(s, cell, tabWidth)
		out = append(out, Cluster{Text: s, StartCol: col, EndCol: col + n, Width: w})
		col += n
		cell += w
	}
	return out
}

// Width returns the cell width of cluster when drawn at visual column cell.
func Width(cluster string, cell, tabWidth int) int {
	if cluster == "\t" {
		return tabAdvance(cell, tabWidth)
	}

	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = max(uniseg.StringWidth(cluster), 0)
	}
	return w
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func tabAdvance(cell, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return tabWidth - cell%tabWidth
}

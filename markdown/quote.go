package markdown

import "strings"

const quoteTag = "> "

// Quote turns the selection, or the whole current line, into a block quote.
// Every line of a multi-line selection gets its own "> " prefix.
func Quote(e Editable) {
	if !HasSelection(e) {
		SelectLine(e)
	}
	quote(e, SelectedText(e))
}

// QuoteText inserts text as a block quote in place of the current selection.
// The selection is not expanded.
func QuoteText(e Editable, text string) {
	quote(e, text)
}

func quote(e Editable, text string) {
	text = strings.TrimSpace(text)
	block := quoteTag + strings.ReplaceAll(text, "\n", "\n"+quoteTag)
	replaceBlock(e, block, text != "")
}

package markdown

// requireEmptyLineAbove pads text so that, once inserted at pos, it is
// preceded by exactly one blank line. The start of the document never needs
// padding.
func requireEmptyLineAbove(e Editable, text string, pos int) string {
	if pos <= 0 || pos > e.Len() {
		return text
	}
	if e.RuneAt(pos-1) != '\n' {
		return "\n\n" + text
	}
	if pos > 1 && e.RuneAt(pos-2) != '\n' {
		return "\n" + text
	}
	return text
}

// requireEmptyLineBelow pads text so that, once inserted ending at pos, it is
// followed by exactly one blank line. The end of the document never needs
// padding.
func requireEmptyLineBelow(e Editable, text string, pos int) string {
	n := e.Len()
	if pos < 0 || pos >= n {
		return text
	}
	if e.RuneAt(pos) != '\n' {
		return text + "\n\n"
	}
	if pos+1 < n && e.RuneAt(pos+1) != '\n' {
		return text + "\n"
	}
	return text
}

// padBlock applies both spacing rules at the original selection bounds.
func padBlock(e Editable, text string, start, end int) string {
	text = requireEmptyLineAbove(e, text, start)
	return requireEmptyLineBelow(e, text, end)
}

package markdown

// finishBlock places the caret after a block replacement: it backs out of
// the trailing newlines of the inserted text, then optionally steps onto the
// following line.
func finishBlock(e Editable, landOnNewLine bool) {
	_, caret := Bounds(e)
	for caret > 0 && e.RuneAt(caret-1) == '\n' {
		caret--
	}
	if landOnNewLine && caret < e.Len() {
		caret++
	}
	SetCaret(e, caret)
}

// replaceBlock pads text at the current selection bounds, replaces the
// selection and finalizes the caret.
func replaceBlock(e Editable, text string, landOnNewLine bool) {
	start, end := Bounds(e)
	ReplaceSelection(e, padBlock(e, text, start, end))
	finishBlock(e, landOnNewLine)
}

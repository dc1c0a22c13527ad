package markdown

// DividerMarker is the horizontal rule inserted by Divider.
const DividerMarker = "-------"

// Divider replaces the selection with a horizontal rule on its own line and
// moves the caret to the line below it.
func Divider(e Editable) {
	start, end := Bounds(e)

	text := requireEmptyLineAbove(e, DividerMarker, start)
	if end >= e.Len() {
		text += "\n"
	} else {
		text = requireEmptyLineBelow(e, text, end)
	}

	ReplaceSelection(e, text)
	finishBlock(e, true)
}

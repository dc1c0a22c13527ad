package markdown

import "strings"

const urlPlaceholder = "url"

// Link turns the selection, or the word around the caret, into the title of
// a "[title](url)" link.
//
// With an empty title the caret is placed inside the brackets. Otherwise the
// "url" placeholder is selected so it can be typed over.
func Link(e Editable) { link(e, false) }

// Image is Link with the "![title](url)" image form.
func Image(e Editable) { link(e, true) }

func link(e Editable, image bool) {
	SelectWordAroundCursor(e)
	start, _ := Bounds(e)
	title := strings.TrimSpace(SelectedText(e))

	prefix := "["
	if image {
		prefix = "!["
	}
	ReplaceSelection(e, prefix+title+"]("+urlPlaceholder+")")

	if title == "" {
		SetCaret(e, start+runeLen(prefix))
		return
	}
	_, end := Bounds(e)
	e.SetSelectionOffsets(end-4, end-1)
}

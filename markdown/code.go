package markdown

import "strings"

const (
	codeTick  = "`"
	codeFence = "```"
)

// Code wraps the selection, or the word around the caret, in inline code.
// A selection spanning several lines becomes a fenced code block instead.
func Code(e Editable) {
	SelectWordAroundCursor(e)
	selected := SelectedText(e)

	if strings.Contains(selected, "\n") {
		replaceBlock(e, codeFence+"\n"+selected+"\n"+codeFence, true)
		return
	}

	start, _ := Bounds(e)
	ReplaceSelection(e, codeTick+strings.TrimSpace(selected)+codeTick)
	if selected == "" {
		SetCaret(e, start+runeLen(codeTick))
	}
}

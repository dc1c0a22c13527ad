package markdown

import "strings"

// Inline tokens used as both prefix and suffix.
const (
	TokenBold   = "**"
	TokenItalic = "_"
	TokenStrike = "~~"
)

// Surround wraps the selection, or the word around the caret, in token.
//
// The wrapped text is trimmed. When it is empty the caret is left between
// the two tokens; otherwise it lands right after the closing token.
func Surround(e Editable, token string) {
	SelectWordAroundCursor(e)
	start, _ := Bounds(e)
	text := strings.TrimSpace(SelectedText(e))

	ReplaceSelection(e, token+text+token)
	if text == "" {
		SetCaret(e, start+runeLen(token))
	}
}

func Bold(e Editable) { Surround(e, TokenBold) }

func Italic(e Editable) { Surround(e, TokenItalic) }

func StrikeThrough(e Editable) { Surround(e, TokenStrike) }

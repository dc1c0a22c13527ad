package markdown

import (
	"fmt"
	"strings"
)

const (
	MinHeaderLevel = 1
	MaxHeaderLevel = 6
)

// Header turns the selection, or the whole current line, into an ATX header
// of the given level.
func Header(e Editable, level int) error {
	if level < MinHeaderLevel || level > MaxHeaderLevel {
		return fmt.Errorf("%w: %d", ErrHeaderLevel, level)
	}

	if !HasSelection(e) {
		SelectLine(e)
	}
	text := strings.Repeat("#", level) + " " + SelectedText(e)
	replaceBlock(e, text, true)
	return nil
}

package markdown

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ListType selects the line prefix List applies.
type ListType uint8

const (
	Bullets ListType = iota
	Numbers
	Tasks
)

var listTypeNames = [...]string{
	Bullets: "bullets",
	Numbers: "numbers",
	Tasks:   "tasks",
}

func (t ListType) String() string {
	if int(t) < len(listTypeNames) {
		return listTypeNames[t]
	}
	return "ListType(" + strconv.Itoa(int(t)) + ")"
}

// Valid reports whether t is one of the declared list types.
func (t ListType) Valid() bool {
	return t <= Tasks
}

// ParseListType maps a name produced by String back to its ListType.
func ParseListType(name string) (ListType, bool) {
	for i, n := range listTypeNames {
		if strings.EqualFold(n, name) {
			return ListType(i), true
		}
	}
	return 0, false
}

// tag returns the line prefix for the n-th item (1-based).
func (t ListType) tag(n int) string {
	switch t {
	case Numbers:
		return strconv.Itoa(n) + ". "
	case Tasks:
		return "- [ ] "
	default:
		return "- "
	}
}

// List prefixes every line of the selection, or the current line, with the
// list tag for t.
//
// Lines that already start with the tag are kept as is. Blank lines after
// the first item are kept blank and do not consume a number.
func List(e Editable, t ListType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %d", ErrListType, uint8(t))
	}

	if !HasSelection(e) {
		SelectLine(e)
	}
	selected := SelectedText(e)

	var sb strings.Builder
	n := 1
	tag := t.tag(n)
	for _, line := range splitListLines(selected) {
		if isBlank(line) && sb.Len() > 0 {
			sb.WriteByte('\n')
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		if !strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), tag) {
			sb.WriteString(tag)
		}
		sb.WriteString(line)

		n++
		tag = t.tag(n)
	}
	if sb.Len() == 0 {
		sb.WriteString(tag)
	}

	replaceBlock(e, sb.String(), selected != "")
	return nil
}

// splitListLines splits s on newlines and drops trailing blank lines, so a
// selection ending in a line break does not produce an extra blank item.
func splitListLines(s string) []string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return lines
}

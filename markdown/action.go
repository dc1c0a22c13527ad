package markdown

import (
	"fmt"
	"strconv"
	"strings"
)

// Action names one toolbar-style formatting command.
type Action uint8

const (
	ActionNone Action = iota
	ActionBold
	ActionItalic
	ActionStrikeThrough
	ActionLink
	ActionImage
	ActionCode
	ActionQuote
	ActionDivider
	ActionBulletList
	ActionNumberList
	ActionTaskList
	ActionHeader1
	ActionHeader2
	ActionHeader3
	ActionHeader4
	ActionHeader5
	ActionHeader6
)

var actionNames = [...]string{
	ActionNone:          "none",
	ActionBold:          "bold",
	ActionItalic:        "italic",
	ActionStrikeThrough: "strikethrough",
	ActionLink:          "link",
	ActionImage:         "image",
	ActionCode:          "code",
	ActionQuote:         "quote",
	ActionDivider:       "divider",
	ActionBulletList:    "bullet-list",
	ActionNumberList:    "number-list",
	ActionTaskList:      "task-list",
	ActionHeader1:       "header-1",
	ActionHeader2:       "header-2",
	ActionHeader3:       "header-3",
	ActionHeader4:       "header-4",
	ActionHeader5:       "header-5",
	ActionHeader6:       "header-6",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Action(" + strconv.Itoa(int(a)) + ")"
}

// ParseAction maps a name produced by String back to its Action.
func ParseAction(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name && Action(i) != ActionNone {
			return Action(i), true
		}
	}
	return ActionNone, false
}

// HeaderAction returns the header action for level, or false if level is
// out of range.
func HeaderAction(level int) (Action, bool) {
	if level < MinHeaderLevel || level > MaxHeaderLevel {
		return ActionNone, false
	}
	return ActionHeader1 + Action(level-1), true
}

// Apply runs the action against e. ActionNone is a no-op.
func (a Action) Apply(e Editable) error {
	switch a {
	case ActionNone:
		return nil
	case ActionBold:
		Bold(e)
	case ActionItalic:
		Italic(e)
	case ActionStrikeThrough:
		StrikeThrough(e)
	case ActionLink:
		Link(e)
	case ActionImage:
		Image(e)
	case ActionCode:
		Code(e)
	case ActionQuote:
		Quote(e)
	case ActionDivider:
		Divider(e)
	case ActionBulletList:
		return List(e, Bullets)
	case ActionNumberList:
		return List(e, Numbers)
	case ActionTaskList:
		return List(e, Tasks)
	case ActionHeader1, ActionHeader2, ActionHeader3, ActionHeader4, ActionHeader5, ActionHeader6:
		return Header(e, int(a-ActionHeader1)+1)
	default:
		return fmt.Errorf("markdown: unknown action %d", uint8(a))
	}
	return nil
}

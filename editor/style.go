package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	// Line styles for recognizable Markdown blocks.
	Heading lipgloss.Style
	Quote   lipgloss.Style
	List    lipgloss.Style
	Fence   lipgloss.Style // fenced and indented code
	Divider lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),

		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
		Quote:   lipgloss.NewStyle().Foreground(lipgloss.Color("108")).Italic(true),
		List:    lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
		Fence:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Divider: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

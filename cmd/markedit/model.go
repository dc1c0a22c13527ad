package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/markedit/editor"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))

type savedMsg struct{ err error }

type model struct {
	path   string
	editor editor.Model

	dirty  bool
	status string
	width  int
}

func newModel(path, text string, cfg editor.Config) model {
	cfg.Text = text
	cfg.Style = editor.DefaultStyle()
	cfg.OnChange = func(ev editor.ChangeEvent) {
		log.Printf("change v=%d action=%s cursor=%v", ev.Version, ev.Action, ev.Cursor)
	}
	return model{path: path, editor: editor.New(cfg)}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return m, nil
	case savedMsg:
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
			log.Printf("save %s: %v", m.path, msg.err)
			return m, nil
		}
		m.dirty = false
		m.status = "saved " + m.path
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "ctrl+s":
			return m, m.save()
		}
	}

	before := m.editor.Buffer().TextVersion()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Buffer().TextVersion() != before {
		m.dirty = true
		m.status = ""
	}
	if err := m.editor.Err(); err != nil {
		m.status = err.Error()
	}
	return m, cmd
}

func (m model) save() tea.Cmd {
	if m.path == "" {
		return func() tea.Msg { return savedMsg{err: fmt.Errorf("no file name")} }
	}
	path, text := m.path, m.editor.Buffer().Text()
	return func() tea.Msg {
		return savedMsg{err: os.WriteFile(path, []byte(text), 0o644)}
	}
}

func (m model) View() string {
	return m.editor.View() + "\n" + m.statusLine()
}

func (m model) statusLine() string {
	name := m.path
	if name == "" {
		name = "[scratch]"
	}
	if m.dirty {
		name += " *"
	}
	cur := m.editor.Buffer().Cursor()
	line := fmt.Sprintf(" %s  %d:%d  alt+b bold  alt+1..6 header  alt+u/n/t list  ctrl+s save  ctrl+q quit", name, cur.Row+1, cur.Col+1)
	if m.status != "" {
		line += "  | " + m.status
	}
	return statusStyle.Width(max(m.width, 0)).Render(line)
}

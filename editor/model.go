package editor

import (
	"errors"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/markedit/buffer"
	"github.com/iw2rmb/markedit/markdown"
)

// ErrReadOnly is reported by Err after a formatting action on a read-only
// editor.
var ErrReadOnly = errors.New("editor: read-only")

// Model is a Bubble Tea component that renders and edits a Markdown buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool
	err     error

	viewport viewport.Model

	lastBufVersion uint64

	kinds        []lineKind
	kindsVersion uint64
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

// Err returns the error of the last formatting action, if any. It is reset
// by the next key press.
func (m Model) Err() error { return m.err }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Apply runs a formatting action against the buffer as a single undo step.
func (m Model) Apply(a markdown.Action) Model {
	if m.cfg.ReadOnly {
		m.err = ErrReadOnly
		return m
	}

	return m.batch(a, func() error { return a.Apply(m.buf) })
}

// QuoteText inserts text as a block quote in place of the selection, for
// hosts that collect the quote outside the editor.
func (m Model) QuoteText(text string) Model {
	if m.cfg.ReadOnly {
		m.err = ErrReadOnly
		return m
	}
	return m.batch(markdown.ActionQuote, func() error {
		markdown.QuoteText(m.buf, text)
		return nil
	})
}

func (m Model) batch(a markdown.Action, fn func() error) Model {
	before := m.buf.TextVersion()
	var err error
	m.buf.Batch(func() { err = fn() })
	m.err = err
	m.afterEdit(before, a)
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		m.err = nil
		if a, ok := m.formatAction(msg); ok {
			return m.Apply(a), nil
		}
		before := m.buf.TextVersion()
		m = m.updateKey(msg)
		m.afterEdit(before, markdown.ActionNone)
		return m, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		// Rebuild content in case the host mutated the buffer outside of the editor.
		m.syncFromBuffer()
		return m, cmd
	default:
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) afterEdit(textVersionBefore uint64, a markdown.Action) {
	if m.buf.TextVersion() != textVersionBefore && m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, a))
	}
	m.syncFromBuffer()
	m.followCursor()
}

func (m *Model) syncFromBuffer() (changed bool) {
	ver := m.buf.Version()
	if ver == m.lastBufVersion {
		return false
	}
	m.lastBufVersion = ver
	m.rebuildContent()
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	cur := m.buf.Cursor()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if cur.Row < y {
		m.viewport.SetYOffset(cur.Row)
		return
	}
	if cur.Row >= y+h {
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
}

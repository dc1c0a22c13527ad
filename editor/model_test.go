package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/markedit/buffer"
	"github.com/iw2rmb/markedit/markdown"
)

func TestNew_NormalizesConfig(t *testing.T) {
	m := New(Config{})
	if m.cfg.TabWidth != 4 {
		t.Fatalf("tab width: got %d, want 4", m.cfg.TabWidth)
	}
	if m.cfg.KeyMap == nil || len(m.cfg.KeyMap.Format) == 0 {
		t.Fatalf("expected default key map with format bindings")
	}
	if !m.Focused() {
		t.Fatalf("expected new model to be focused")
	}
}

func TestApply_SingleUndoStep(t *testing.T) {
	m := New(Config{Text: "one\ntwo"})
	m.buf.SetSelectionOffsets(0, 7)

	m = m.Apply(markdown.ActionNumberList)
	if err := m.Err(); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got, want := m.buf.Text(), "1. one\n2. two"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	if !m.buf.Undo() {
		t.Fatalf("expected undo")
	}
	if got, want := m.buf.Text(), "one\ntwo"; got != want {
		t.Fatalf("text after undo: got %q, want %q", got, want)
	}
	if m.buf.CanUndo() {
		t.Fatalf("expected action to be one history step")
	}
}

func TestApply_UnknownActionReportsError(t *testing.T) {
	m := New(Config{Text: "abc"})

	m = m.Apply(markdown.Action(200))
	if m.Err() == nil {
		t.Fatalf("expected error for unknown action")
	}
	if got := m.buf.Text(); got != "abc" {
		t.Fatalf("text: got %q, want %q", got, "abc")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.Err() != nil {
		t.Fatalf("expected key press to reset error, got %v", m.Err())
	}
}

func TestFollowCursor_ScrollsViewport(t *testing.T) {
	m := New(Config{Text: "1\n2\n3\n4\n5\n6"}).SetSize(10, 2)

	m.buf.SetCursor(buffer.Pos{Row: 5, Col: 0})
	m, _ = m.Update(nil)
	if got := m.viewport.YOffset; got != 4 {
		t.Fatalf("y offset: got %d, want 4", got)
	}

	m.buf.SetCursor(buffer.Pos{Row: 1, Col: 0})
	m, _ = m.Update(nil)
	if got := m.viewport.YOffset; got != 1 {
		t.Fatalf("y offset: got %d, want 1", got)
	}
}

package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/gerunddev/composer/internal/drafts"
)

func newBrowseStore(t *testing.T, texts ...string) *drafts.Store {
	t.Helper()
	store := drafts.NewStore(filepath.Join(t.TempDir(), "drafts.json"))
	for _, text := range texts {
		store.Create(text)
	}
	return store
}

func browse(m BrowseModel, msgs ...tea.Msg) BrowseModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(BrowseModel)
	}
	return m
}

func TestBrowseChoose(t *testing.T) {
	store := newBrowseStore(t, "# Only draft")
	m := browse(NewBrowseModel(store), tea.KeyMsg{Type: tea.KeyEnter})

	if m.Chosen() == nil || m.Chosen().Text != "# Only draft" {
		t.Fatalf("expected the draft to be chosen, got %+v", m.Chosen())
	}
}

func TestBrowseNew(t *testing.T) {
	m := browse(NewBrowseModel(newBrowseStore(t)), runes("n"))
	if !m.CreateNew() {
		t.Error("n should request a new draft")
	}
	if m.Chosen() != nil {
		t.Error("no draft should be chosen")
	}
}

func TestBrowseDelete(t *testing.T) {
	store := newBrowseStore(t, "doomed")

	m := browse(NewBrowseModel(store), runes("d"))
	if !strings.Contains(ansi.Strip(m.View()), "Delete this draft?") {
		t.Error("expected a delete confirmation")
	}

	m = browse(m, runes("y"))
	if len(store.Drafts) != 0 {
		t.Error("draft was not deleted")
	}
	if !strings.Contains(ansi.Strip(m.View()), "No drafts yet.") {
		t.Errorf("expected empty listing, got:\n%s", ansi.Strip(m.View()))
	}
}

func TestBrowsePreview(t *testing.T) {
	store := newBrowseStore(t, "- [ ] ship it")
	m := browse(NewBrowseModel(store),
		tea.WindowSizeMsg{Width: 80, Height: 24},
		runes("p"),
	)

	if !strings.Contains(ansi.Strip(m.View()), "☐ ship it") {
		t.Errorf("preview not rendered:\n%s", ansi.Strip(m.View()))
	}

	m = browse(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showPreview {
		t.Error("esc should close the preview")
	}
}

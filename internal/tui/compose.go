package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gerunddev/composer/internal/drafts"
	"github.com/gerunddev/composer/internal/format"
	"github.com/gerunddev/composer/internal/grapheme"
	"github.com/gerunddev/composer/internal/logger"
	"github.com/gerunddev/composer/internal/parser"
	"github.com/gerunddev/composer/internal/render"
	"github.com/gerunddev/composer/internal/styles"
)

// ComposeOptions configures the composer
type ComposeOptions struct {
	Formatter *format.Formatter
	Store     *drafts.Store // nil disables saving
	Draft     *drafts.Draft
	Autosave  time.Duration
	Log       *logger.Logger
}

// autosaveMsg fires every autosave interval
type autosaveMsg time.Time

// ComposeModel is the interactive post composer
type ComposeModel struct {
	keys    composeKeys
	help    help.Model
	editor  viewport.Model
	preview viewport.Model

	formatter *format.Formatter
	store     *drafts.Store
	draft     *drafts.Draft
	autosave  time.Duration
	log       *logger.Logger

	text  string
	caret int
	mark  int // -1 when no mark is set
	dirty bool

	status string
	err    error
	width  int
	height int
}

// NewComposeModel creates a composer for opts.Draft
func NewComposeModel(opts ComposeOptions) ComposeModel {
	if opts.Formatter == nil {
		opts.Formatter = format.New(format.DefaultPlaceholders())
	}
	if opts.Log == nil {
		opts.Log = logger.Discard()
	}

	m := ComposeModel{
		keys:      defaultComposeKeys(),
		help:      help.New(),
		editor:    viewport.New(60, 20),
		preview:   viewport.New(60, 20),
		formatter: opts.Formatter,
		store:     opts.Store,
		draft:     opts.Draft,
		autosave:  opts.Autosave,
		log:       opts.Log,
		mark:      -1,
	}
	if opts.Draft != nil {
		m.text = opts.Draft.Text
		m.caret = min(max(opts.Draft.Caret, 0), grapheme.Count(m.text))
	}
	m.refresh()
	return m
}

// Text returns the current composer text
func (m ComposeModel) Text() string {
	return m.text
}

// Caret returns the current caret offset
func (m ComposeModel) Caret() int {
	return m.caret
}

// Err returns the last save error, if any
func (m ComposeModel) Err() error {
	return m.err
}

func (m ComposeModel) tick() tea.Cmd {
	if m.autosave <= 0 || m.store == nil {
		return nil
	}
	return tea.Tick(m.autosave, func(t time.Time) tea.Msg {
		return autosaveMsg(t)
	})
}

func (m ComposeModel) Init() tea.Cmd {
	return m.tick()
}

func (m ComposeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		paneWidth := max(msg.Width/2-4, 10)
		paneHeight := max(msg.Height-8, 3)
		m.editor.Width = paneWidth
		m.editor.Height = paneHeight
		m.preview.Width = paneWidth
		m.preview.Height = paneHeight
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case autosaveMsg:
		if m.dirty {
			m.save()
		}
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m ComposeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.dirty {
			m.save()
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Save):
		m.save()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Mark):
		m.mark = m.caret
		m.status = "mark set"
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.ClearMark):
		m.mark = -1
		m.status = ""
		m.refresh()
		return m, nil
	}

	for _, t := range m.keys.Toolbar {
		if key.Matches(msg, t.binding) {
			m.applyFormat(t.command)
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.caret = max(m.caret-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.caret = min(m.caret+1, grapheme.Count(m.text))
	case key.Matches(msg, m.keys.Up):
		m.caret = moveVertical(m.text, m.caret, -1)
	case key.Matches(msg, m.keys.Down):
		m.caret = moveVertical(m.text, m.caret, 1)
	case key.Matches(msg, m.keys.Home):
		m.caret = lineStart(m.text, m.caret)
	case key.Matches(msg, m.keys.End):
		m.caret = lineEnd(m.text, m.caret)
	case key.Matches(msg, m.keys.Backspace):
		m.edit(format.Delete(m.text, m.selection()))
	case key.Matches(msg, m.keys.Newline):
		m.edit(format.Insert(m.text, m.selection(), "\n"))
	case msg.Type == tea.KeySpace:
		m.edit(format.Insert(m.text, m.selection(), " "))
	case msg.Type == tea.KeyRunes && !msg.Alt:
		m.edit(format.Insert(m.text, m.selection(), string(msg.Runes)))
	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

// selection is the range between mark and caret, or the bare caret
func (m ComposeModel) selection() format.Selection {
	if m.mark < 0 {
		return format.Caret(m.caret)
	}
	return format.Selection{Start: m.mark, End: m.caret}
}

func (m *ComposeModel) edit(r format.Result) {
	if r.Text != m.text {
		m.dirty = true
	}
	m.text = r.Text
	m.caret = r.Caret
	m.mark = -1
	m.status = ""
}

func (m *ComposeModel) applyFormat(cmd format.Command) {
	sel := m.selection()
	r, err := m.formatter.Apply(m.text, sel, cmd)
	if errors.Is(err, format.ErrUnknownFormat) {
		m.log.UnknownFormat(string(cmd))
		return
	}
	m.log.FormatApplied(string(cmd), sel.Start, sel.End, r.Caret)
	m.edit(r)
	m.status = string(cmd)
	m.refresh()
}

func (m *ComposeModel) save() {
	if m.store == nil {
		return
	}
	if m.draft == nil {
		m.draft = m.store.Create(m.text)
	}
	if _, err := m.store.Update(m.draft.ID, m.text, m.caret); err != nil {
		m.fail("update", err)
		return
	}
	if err := m.store.Save(); err != nil {
		m.fail("save", err)
		return
	}
	m.dirty = false
	m.err = nil
	m.status = "saved " + shortID(m.draft.ID)
	m.log.DraftSaved(m.draft.ID, grapheme.Count(m.text))
}

func (m *ComposeModel) fail(op string, err error) {
	m.err = err
	m.log.DraftError(op, err)
}

// refresh repaints both panes and keeps the caret line in view
func (m *ComposeModel) refresh() {
	start, end := -1, -1
	if m.mark >= 0 {
		start, end = min(m.mark, m.caret), max(m.mark, m.caret)
	}
	m.editor.SetContent(paintEditor(m.text, m.caret, start, end))

	line, _ := lineCol(m.text, m.caret)
	if line < m.editor.YOffset {
		m.editor.SetYOffset(line)
	} else if m.editor.Height > 0 && line >= m.editor.YOffset+m.editor.Height {
		m.editor.SetYOffset(line - m.editor.Height + 1)
	}

	m.preview.SetContent(render.Render(parser.Parse(m.text), m.preview.Width))
}

// paintEditor draws text with the caret and the [selStart, selEnd) range
// highlighted. selStart < 0 means no selection.
func paintEditor(text string, caret, selStart, selEnd int) string {
	var b strings.Builder
	var run strings.Builder
	runSelected := false

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runSelected {
			// per line, so lipgloss does not pad the block
			parts := strings.Split(run.String(), "\n")
			for i, p := range parts {
				parts[i] = styles.SelectedStyle.Render(p)
			}
			b.WriteString(strings.Join(parts, "\n"))
		} else {
			b.WriteString(run.String())
		}
		run.Reset()
	}

	clusters := grapheme.Split(text)
	for i, g := range clusters {
		selected := selStart >= 0 && i >= selStart && i < selEnd
		if selected != runSelected {
			flush()
			runSelected = selected
		}
		if i == caret {
			flush()
			if isBreak(g) {
				b.WriteString(styles.CaretStyle.Render(" "))
				b.WriteString(g)
			} else {
				b.WriteString(styles.CaretStyle.Render(g))
			}
			continue
		}
		run.WriteString(g)
	}
	flush()
	if caret >= len(clusters) {
		b.WriteString(styles.CaretStyle.Render(" "))
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (m ComposeModel) View() string {
	var b strings.Builder

	title := "Composer"
	if m.draft != nil {
		title = fmt.Sprintf("Composer · %s", shortID(m.draft.ID))
	}
	if m.dirty {
		title += " •"
	}
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n\n")

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.PaneStyle.Render(m.editor.View()),
		styles.PaneStyle.Render(m.preview.View()),
	)
	b.WriteString(panes)
	b.WriteString("\n")

	line, col := lineCol(m.text, m.caret)
	pos := fmt.Sprintf("Ln %d, Col %d", line+1, col+1)
	if m.mark >= 0 {
		pos += fmt.Sprintf(" · %d selected", max(m.mark, m.caret)-min(m.mark, m.caret))
	}
	b.WriteString(styles.DimStyle.Render(pos))
	if m.err != nil {
		b.WriteString("  " + styles.ErrorStyle.Render("✗ "+m.err.Error()))
	} else if m.status != "" {
		b.WriteString("  " + styles.SuccessStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gerunddev/composer/internal/drafts"
	"github.com/gerunddev/composer/internal/grapheme"
	"github.com/gerunddev/composer/internal/parser"
	"github.com/gerunddev/composer/internal/render"
	"github.com/gerunddev/composer/internal/styles"
)

// BrowseModel lists saved drafts and lets the user pick one to edit
type BrowseModel struct {
	table       table.Model
	viewport    viewport.Model
	store       *drafts.Store
	list        []*drafts.Draft
	showPreview bool
	confirmRm   bool
	chosen      *drafts.Draft
	createNew   bool
	err         error
	width       int
	height      int
}

// NewBrowseModel creates a draft browser over store
func NewBrowseModel(store *drafts.Store) BrowseModel {
	columns := []table.Column{
		{Title: "ID", Width: 10},
		{Title: "Title", Width: 40},
		{Title: "Chars", Width: 7},
		{Title: "Updated", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		BorderBottom(true).
		Bold(false)
	ts.Selected = styles.SelectedStyle
	t.SetStyles(ts)

	vp := viewport.New(80, 15)
	vp.Style = styles.PaneStyle

	m := BrowseModel{
		table:    t,
		viewport: vp,
		store:    store,
	}
	m.reload()
	return m
}

// Chosen returns the draft picked with enter, or nil
func (m BrowseModel) Chosen() *drafts.Draft {
	return m.chosen
}

// CreateNew reports whether the user asked for a new draft
func (m BrowseModel) CreateNew() bool {
	return m.createNew
}

func (m *BrowseModel) reload() {
	m.list = m.store.List()
	rows := make([]table.Row, 0, len(m.list))
	for _, d := range m.list {
		rows = append(rows, table.Row{
			shortID(d.ID),
			d.Title(),
			fmt.Sprintf("%d", grapheme.Count(d.Text)),
			d.UpdatedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
}

func (m BrowseModel) selected() *drafts.Draft {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.list) {
		return nil
	}
	return m.list[i]
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-10, 3))
		m.viewport.Width = max(msg.Width-4, 10)
		m.viewport.Height = max(msg.Height-8, 3)

	case tea.KeyMsg:
		if m.confirmRm {
			switch msg.String() {
			case "y":
				if d := m.selected(); d != nil {
					if err := m.store.Delete(d.ID); err != nil {
						m.err = err
					} else if err := m.store.Save(); err != nil {
						m.err = err
					}
					m.reload()
				}
			}
			m.confirmRm = false
			return m, nil
		}

		if m.showPreview {
			switch msg.String() {
			case "q", "esc", "p":
				m.showPreview = false
				return m, nil
			case "enter", "e":
				m.chosen = m.selected()
				return m, tea.Quit
			}
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter", "e":
			if d := m.selected(); d != nil {
				m.chosen = d
				return m, tea.Quit
			}
			return m, nil
		case "n":
			m.createNew = true
			return m, tea.Quit
		case "p":
			if d := m.selected(); d != nil {
				m.showPreview = true
				m.viewport.SetContent(render.Render(parser.Parse(d.Text), m.viewport.Width-4))
				m.viewport.GotoTop()
			}
			return m, nil
		case "d":
			if m.selected() != nil {
				m.confirmRm = true
			}
			return m, nil
		}
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Drafts"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styles.ErrorStyle.Render("✗ Error: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	switch {
	case m.showPreview:
		if d := m.selected(); d != nil {
			b.WriteString(styles.HighlightStyle.Render(d.Title()))
			b.WriteString("\n\n")
		}
		b.WriteString(m.viewport.View())
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("↑/↓ scroll • enter/e edit • esc/q back"))
	case len(m.list) == 0:
		b.WriteString(styles.DimStyle.Render("No drafts yet."))
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("n new • q quit"))
	default:
		b.WriteString(m.table.View())
		b.WriteString("\n\n")
		if m.confirmRm {
			b.WriteString(styles.WarningStyle.Render("Delete this draft? y/N"))
		} else {
			b.WriteString(styles.HelpStyle.Render("↑/k up • ↓/j down • enter/e edit • p preview • n new • d delete • q quit"))
		}
	}
	b.WriteString("\n")

	return b.String()
}

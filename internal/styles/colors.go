package styles

import "github.com/charmbracelet/lipgloss"

// Monokai Pro color palette
const (
	// Base colors
	Background = "#2D2A2E"
	Foreground = "#FCFCFA"

	// Accent colors
	Red     = "#FF6188" // Errors, headings
	Orange  = "#FC9867" // Warnings, hashtags
	Yellow  = "#FFD866" // Highlights, second-level headings
	Green   = "#A9DC76" // Success, done checkboxes
	Cyan    = "#78DCE8" // Info, mentions
	Blue    = "#AB9DF2" // Links, code
	Magenta = "#FF6188" // Titles, emphasis

	// UI colors
	Comment = "#727072" // Dim text, help, quotes
	Border  = "#5B595C" // Borders, separators
	Surface = "#403E41" // Code background, selection
)

// Common styles
var (
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	DimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta))
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow)).Bold(true)
	HelpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))

	PaneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Border)).
			Padding(0, 1)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Background)).
			Background(lipgloss.Color(Yellow))

	CaretStyle = lipgloss.NewStyle().Reverse(true)

	NormalTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Foreground))
)

// Markup styles used by the document renderer
var (
	Heading1Style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Red))
	Heading2Style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Yellow))
	QuoteStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(Comment))
	BulletStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Cyan))
	DoneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	TodoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))

	CodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Blue)).
			Background(lipgloss.Color(Surface))

	MentionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Cyan)).Bold(true)
	HashtagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange)).Bold(true)
)

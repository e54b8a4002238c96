// Package render paints classified documents for the terminal.
package render

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gerunddev/composer/internal/parser"
	"github.com/gerunddev/composer/internal/styles"
)

// tagPattern finds @mentions and #hashtags that start a word.
var tagPattern = regexp.MustCompile(`(^|\s)([#@][\p{L}\p{N}_]+)`)

// Render returns doc as styled terminal text. Lines are wrapped at width
// when width > 0.
func Render(doc parser.Document, width int) string {
	r := &termRenderer{width: width}
	parser.Walk(doc, r)
	return strings.TrimSuffix(r.out.String(), "\n")
}

// termRenderer is a parser.Visitor writing one output line per block.
type termRenderer struct {
	width int
	out   strings.Builder
	line  strings.Builder
	stack []lipgloss.Style
}

func (r *termRenderer) current() lipgloss.Style {
	return r.stack[len(r.stack)-1]
}

func (r *termRenderer) EnterBlock(b parser.BlockNode) {
	r.line.Reset()
	base := styles.NormalTextStyle

	switch b.Kind {
	case parser.BlockHeading1:
		base = styles.Heading1Style
	case parser.BlockHeading2:
		base = styles.Heading2Style
	case parser.BlockQuote:
		r.line.WriteString(styles.QuoteStyle.Render("│ "))
		base = styles.QuoteStyle
	case parser.BlockBullet:
		r.line.WriteString(styles.BulletStyle.Render("• "))
	case parser.BlockCheckboxChecked:
		r.line.WriteString(styles.DoneStyle.Render("☑ "))
		base = styles.DimStyle.Strikethrough(true)
	case parser.BlockCheckboxUnchecked:
		r.line.WriteString(styles.TodoStyle.Render("☐ "))
	}
	r.stack = append(r.stack[:0], base)
}

func (r *termRenderer) LeaveBlock(b parser.BlockNode) {
	line := r.line.String()
	if r.width > 0 && b.Kind != parser.BlockBlank {
		line = lipgloss.NewStyle().Width(r.width).Render(line)
	}
	r.out.WriteString(line)
	r.out.WriteByte('\n')
}

func (r *termRenderer) EnterInline(n parser.InlineNode) {
	s := r.current()
	switch n.Kind {
	case parser.InlineBold:
		s = s.Bold(true)
	case parser.InlineItalic:
		s = s.Italic(true)
	case parser.InlineStrikethrough:
		s = s.Strikethrough(true)
	case parser.InlineCode:
		s = styles.CodeStyle
	}
	r.stack = append(r.stack, s)

	switch n.Kind {
	case parser.InlinePlain:
		r.writeTagged(n.Text, s)
	case parser.InlineBold:
	default:
		if n.Text != "" {
			r.line.WriteString(s.Render(n.Text))
		}
	}
}

func (r *termRenderer) LeaveInline(parser.InlineNode) {
	r.stack = r.stack[:len(r.stack)-1]
}

// writeTagged renders plain text, highlighting mention and hashtag tokens.
func (r *termRenderer) writeTagged(text string, s lipgloss.Style) {
	pos := 0
	for _, m := range tagPattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[4], m[5]
		if pos < start {
			r.line.WriteString(s.Render(text[pos:start]))
		}
		tagStyle := styles.HashtagStyle
		if text[start] == '@' {
			tagStyle = styles.MentionStyle
		}
		r.line.WriteString(tagStyle.Inherit(s).Render(text[start:end]))
		pos = end
	}
	if pos < len(text) {
		r.line.WriteString(s.Render(text[pos:]))
	}
}

// Package format applies toolbar formatting commands to composer text.
//
// Offsets in Selection and Result are character offsets, where a character
// is one extended grapheme cluster.
package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gerunddev/composer/internal/grapheme"
)

// ErrUnknownFormat is returned, together with an unchanged result, when a
// command is not recognized. Callers treat it as a warning.
var ErrUnknownFormat = errors.New("unknown format command")

// Command is a toolbar formatting command.
type Command string

const (
	Bold          Command = "bold"
	Italic        Command = "italic"
	Underline     Command = "underline"
	Strikethrough Command = "strikethrough"
	Heading1      Command = "heading1"
	Heading2      Command = "heading2"
	Quote         Command = "quote"
	Code          Command = "code"
	Bullet        Command = "bullet"
	Numbered      Command = "numbered"
	Link          Command = "link"
	Mention       Command = "mention"
	Hashtag       Command = "hashtag"
)

// Commands lists every supported command in toolbar order.
var Commands = []Command{
	Bold, Italic, Underline, Strikethrough, Heading1, Heading2, Quote,
	Code, Bullet, Numbered, Link, Mention, Hashtag,
}

// Selection is a [Start, End) character range. Start == End is a caret.
type Selection struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Caret returns an empty selection at pos.
func Caret(pos int) Selection {
	return Selection{Start: pos, End: pos}
}

// IsEmpty reports whether the selection is a bare caret.
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Result is the outcome of a text mutation.
type Result struct {
	Text  string `json:"text"`
	Caret int    `json:"caret"`
}

// Placeholders are the words inserted by line-prefix commands when nothing
// is selected, and the URL stub used for links.
type Placeholders struct {
	Heading  string
	Quote    string
	ListItem string
	LinkURL  string
}

// DefaultPlaceholders returns the built-in placeholder words.
func DefaultPlaceholders() Placeholders {
	return Placeholders{
		Heading:  "Heading",
		Quote:    "Quote",
		ListItem: "List item",
		LinkURL:  "https://",
	}
}

// Formatter applies commands using a fixed set of placeholders.
type Formatter struct {
	placeholders Placeholders
}

// New creates a formatter. Empty placeholder fields fall back to defaults.
func New(p Placeholders) *Formatter {
	def := DefaultPlaceholders()
	if p.Heading == "" {
		p.Heading = def.Heading
	}
	if p.Quote == "" {
		p.Quote = def.Quote
	}
	if p.ListItem == "" {
		p.ListItem = def.ListItem
	}
	if p.LinkURL == "" {
		p.LinkURL = def.LinkURL
	}
	return &Formatter{placeholders: p}
}

var defaultFormatter = New(DefaultPlaceholders())

// Apply runs cmd with the default placeholders.
func Apply(text string, sel Selection, cmd Command) (Result, error) {
	return defaultFormatter.Apply(text, sel, cmd)
}

// Apply formats the selected text, or inserts markup at the caret when the
// selection is empty. Unknown commands leave text and caret untouched and
// return ErrUnknownFormat.
func (f *Formatter) Apply(text string, sel Selection, cmd Command) (Result, error) {
	sp := resolve(text, sel)

	if prefix, ok := f.linePrefix(cmd); ok {
		return sp.prefixLines(prefix, f.placeholderFor(cmd)), nil
	}

	open, closing, ok := f.markers(cmd, sp.selected())
	if !ok {
		return Result{Text: text, Caret: sp.sel.End}, fmt.Errorf("%w: %q", ErrUnknownFormat, cmd)
	}
	if closing == "" && !sp.sel.IsEmpty() {
		return sp.prefix(open), nil
	}
	return sp.wrap(open, closing), nil
}

// markers returns the opening and closing markup for wrap commands.
func (f *Formatter) markers(cmd Command, selected string) (string, string, bool) {
	switch cmd {
	case Bold:
		return "**", "**", true
	case Italic:
		return "_", "_", true
	case Underline:
		return "<u>", "</u>", true
	case Strikethrough:
		return "~~", "~~", true
	case Code:
		if strings.Contains(selected, "\n") {
			return "```\n", "\n```", true
		}
		return "`", "`", true
	case Link:
		return "[", "](" + f.placeholders.LinkURL + ")", true
	case Mention:
		return "@", "", true
	case Hashtag:
		return "#", "", true
	}
	return "", "", false
}

// linePrefix returns a function producing the prefix for the i-th selected
// line of a line-prefix command.
func (f *Formatter) linePrefix(cmd Command) (func(i int) string, bool) {
	fixed := func(p string) func(int) string {
		return func(int) string { return p }
	}
	switch cmd {
	case Heading1:
		return fixed("# "), true
	case Heading2:
		return fixed("## "), true
	case Quote:
		return fixed("> "), true
	case Bullet:
		return fixed("- "), true
	case Numbered:
		return func(i int) string { return strconv.Itoa(i+1) + ". " }, true
	}
	return nil, false
}

func (f *Formatter) placeholderFor(cmd Command) string {
	switch cmd {
	case Heading1, Heading2:
		return f.placeholders.Heading
	case Quote:
		return f.placeholders.Quote
	default:
		return f.placeholders.ListItem
	}
}

// Insert replaces the selection with s, leaving the caret after s.
func Insert(text string, sel Selection, s string) Result {
	sp := resolve(text, sel)
	return sp.splice(s, len(s))
}

// Delete removes the selection. With an empty selection it removes the
// character before the caret.
func Delete(text string, sel Selection) Result {
	sp := resolve(text, sel)
	if sp.sel.IsEmpty() {
		if sp.sel.Start == 0 {
			return Result{Text: text, Caret: 0}
		}
		sp.sel.Start--
		sp.start = grapheme.ByteOffset(text, sp.sel.Start)
	}
	return sp.splice("", 0)
}

package format

import (
	"strings"

	"github.com/gerunddev/composer/internal/grapheme"
)

// span is a selection resolved against its text, in both character and
// byte coordinates.
type span struct {
	text       string
	start, end int // bytes
	sel        Selection
}

// resolve normalizes a reversed selection and clamps it into the text.
func resolve(text string, sel Selection) span {
	bounds := grapheme.Boundaries(text)
	n := len(bounds) - 1

	s, e := sel.Start, sel.End
	if s > e {
		s, e = e, s
	}
	s = clamp(s, 0, n)
	e = clamp(e, 0, n)

	return span{
		text:  text,
		start: bounds[s],
		end:   bounds[e],
		sel:   Selection{Start: s, End: e},
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (sp span) selected() string {
	return grapheme.Slice(sp.text, sp.sel.Start, sp.sel.End)
}

// splice replaces the selected bytes with ins and puts the caret caretAt
// bytes into ins.
func (sp span) splice(ins string, caretAt int) Result {
	out := sp.text[:sp.start] + ins + sp.text[sp.end:]
	caret := grapheme.Index(out, sp.start+caretAt)
	return Result{Text: out, Caret: clamp(caret, 0, grapheme.Count(out))}
}

// wrap surrounds the selection with open and closing. An empty selection gets
// an empty pair with the caret between the markers.
func (sp span) wrap(open, closing string) Result {
	if sp.sel.IsEmpty() {
		return sp.splice(open+closing, len(open))
	}
	ins := open + sp.selected() + closing
	return sp.splice(ins, len(ins))
}

// prefix puts a leading marker in front of the selection and leaves the
// caret right after the marker.
func (sp span) prefix(marker string) Result {
	return sp.splice(marker+sp.selected(), len(marker))
}

// prefixLines puts prefix(i) in front of every selected line. A selection
// starting mid-line is moved onto a line of its own first. An empty
// selection inserts the first prefix followed by placeholder on a line of
// its own, with the caret at the end of the placeholder.
func (sp span) prefixLines(prefix func(i int) string, placeholder string) Result {
	var sb strings.Builder
	if sp.start > 0 && sp.text[sp.start-1] != '\n' {
		if sp.sel.IsEmpty() {
			// blanks before the caret would trail the line being split
			for sp.start > 0 && isBlank(sp.text[sp.start-1]) {
				sp.start--
			}
		}
		if sp.start > 0 && sp.text[sp.start-1] != '\n' {
			sb.WriteByte('\n')
		}
	}

	if sp.sel.IsEmpty() {
		sb.WriteString(prefix(0))
		sb.WriteString(placeholder)
		caretAt := sb.Len()
		if sp.end < len(sp.text) && sp.text[sp.end] != '\n' {
			sb.WriteByte('\n')
		}
		return sp.splice(sb.String(), caretAt)
	}

	for i, line := range strings.Split(sp.selected(), "\n") {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(prefix(i))
		sb.WriteString(line)
	}
	return sp.splice(sb.String(), sb.Len())
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

package parser

import "strings"

const (
	markerBoldTriple = "***"
	markerBold       = "**"
	markerItalic     = "_"
	markerStrike     = "~~"
	markerCode       = "`"
)

// inlineRule is one delimiter pair tried at the current scan position.
// Rules are tried in slice order; the first that matches wins.
type inlineRule struct {
	marker  string
	kind    InlineKind
	recurse bool
}

var inlineRules = []inlineRule{
	{marker: markerBoldTriple, kind: InlineBold, recurse: true},
	{marker: markerBold, kind: InlineBold, recurse: true},
	{marker: markerItalic, kind: InlineItalic},
	{marker: markerStrike, kind: InlineStrikethrough},
	{marker: markerCode, kind: InlineCode},
}

// ScanInline tokenizes one line into an ordered, gapless sequence of inline
// nodes. Bold content is scanned again so italic, strikethrough and code may
// nest inside it; the other kinds are leaves. Unmatched delimiters stay in
// the surrounding plain text.
func ScanInline(line string) []InlineNode {
	s := &scanner{src: line}
	return s.scan()
}

type scanner struct {
	src   string
	nodes []InlineNode
	// exhausted records delimiters with no further occurrence in src.
	// Once a closing search fails from position i it fails from any j > i,
	// which keeps the scan linear.
	exhausted map[string]bool
}

func (s *scanner) scan() []InlineNode {
	plainStart := 0
	i := 0
	for i < len(s.src) {
		node, next, ok := s.match(i)
		if !ok {
			i++
			continue
		}
		if plainStart < i {
			s.nodes = append(s.nodes, Plain(s.src[plainStart:i]))
		}
		s.nodes = append(s.nodes, node)
		i = next
		plainStart = next
	}
	if plainStart < len(s.src) {
		s.nodes = append(s.nodes, Plain(s.src[plainStart:]))
	}
	return s.nodes
}

// match tries every rule at byte offset i and returns the node and the offset
// just past its closing delimiter.
func (s *scanner) match(i int) (InlineNode, int, bool) {
	for _, r := range inlineRules {
		if !strings.HasPrefix(s.src[i:], r.marker) || s.exhausted[r.marker] {
			continue
		}
		open := i + len(r.marker)
		rel := strings.Index(s.src[open:], r.marker)
		if rel < 0 {
			if s.exhausted == nil {
				s.exhausted = make(map[string]bool)
			}
			s.exhausted[r.marker] = true
			continue
		}
		inner := s.src[open : open+rel]
		node := InlineNode{Kind: r.kind, Marker: r.marker}
		if r.recurse {
			node.Children = ScanInline(inner)
		} else {
			node.Text = inner
		}
		return node, open + rel + len(r.marker), true
	}
	return InlineNode{}, 0, false
}

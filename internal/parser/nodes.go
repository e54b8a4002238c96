package parser

import (
	"encoding/json"
	"strings"
)

// InlineKind identifies the variant of an InlineNode.
type InlineKind int

const (
	InlinePlain InlineKind = iota
	InlineBold
	InlineItalic
	InlineStrikethrough
	InlineCode
)

var inlineKindNames = [...]string{
	InlinePlain:         "plain",
	InlineBold:          "bold",
	InlineItalic:        "italic",
	InlineStrikethrough: "strikethrough",
	InlineCode:          "code",
}

func (k InlineKind) String() string {
	if k < 0 || int(k) >= len(inlineKindNames) {
		return "unknown"
	}
	return inlineKindNames[k]
}

// MarshalJSON encodes the kind by name
func (k InlineKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// InlineNode is a formatting unit spanning a run of characters within one line.
//
// Plain, Italic, Strikethrough and Code carry their visible text in Text.
// Bold carries Children instead; Text is empty.
type InlineNode struct {
	Kind     InlineKind   `json:"kind"`
	Text     string       `json:"text,omitempty"`
	Children []InlineNode `json:"children,omitempty"`
	// Marker is the delimiter the node was written with in the source.
	// Empty for Plain.
	Marker string `json:"-"`
}

// Plain returns a plain-text node.
func Plain(text string) InlineNode {
	return InlineNode{Kind: InlinePlain, Text: text}
}

// Bold returns a bold node delimited by "**".
func Bold(children ...InlineNode) InlineNode {
	return InlineNode{Kind: InlineBold, Children: children, Marker: markerBold}
}

// Italic returns an italic node.
func Italic(text string) InlineNode {
	return InlineNode{Kind: InlineItalic, Text: text, Marker: markerItalic}
}

// Strikethrough returns a strikethrough node.
func Strikethrough(text string) InlineNode {
	return InlineNode{Kind: InlineStrikethrough, Text: text, Marker: markerStrike}
}

// Code returns an inline code node.
func Code(text string) InlineNode {
	return InlineNode{Kind: InlineCode, Text: text, Marker: markerCode}
}

// BlockKind identifies the variant of a BlockNode.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading1
	BlockHeading2
	BlockQuote
	BlockBullet
	BlockCheckboxChecked
	BlockCheckboxUnchecked
	BlockBlank
)

var blockKindNames = [...]string{
	BlockParagraph:         "paragraph",
	BlockHeading1:          "heading1",
	BlockHeading2:          "heading2",
	BlockQuote:             "quote",
	BlockBullet:            "bullet",
	BlockCheckboxChecked:   "checkbox_checked",
	BlockCheckboxUnchecked: "checkbox_unchecked",
	BlockBlank:             "blank",
}

func (k BlockKind) String() string {
	if k < 0 || int(k) >= len(blockKindNames) {
		return "unknown"
	}
	return blockKindNames[k]
}

// MarshalJSON encodes the kind by name
func (k BlockKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// BlockNode is a formatting unit spanning one full source line.
// Blank nodes have no children.
type BlockNode struct {
	Kind     BlockKind    `json:"kind"`
	Children []InlineNode `json:"children,omitempty"`
}

// Document is the classified form of a text: one block per source line.
type Document struct {
	Blocks []BlockNode `json:"blocks"`
}

// VisibleText concatenates the visible text of nodes, dropping markup.
func VisibleText(nodes []InlineNode) string {
	var sb strings.Builder
	writeVisible(&sb, nodes)
	return sb.String()
}

func writeVisible(sb *strings.Builder, nodes []InlineNode) {
	for _, n := range nodes {
		if n.Kind == InlineBold {
			writeVisible(sb, n.Children)
			continue
		}
		sb.WriteString(n.Text)
	}
}

// Source reproduces the markup nodes were scanned from.
// For any line, Source(ScanInline(line)) == line.
func Source(nodes []InlineNode) string {
	var sb strings.Builder
	writeSource(&sb, nodes)
	return sb.String()
}

func writeSource(sb *strings.Builder, nodes []InlineNode) {
	for _, n := range nodes {
		sb.WriteString(n.Marker)
		if n.Kind == InlineBold {
			writeSource(sb, n.Children)
		} else {
			sb.WriteString(n.Text)
		}
		sb.WriteString(n.Marker)
	}
}

// Text returns the visible text of the document, one line per block.
func (d Document) Text() string {
	lines := make([]string, len(d.Blocks))
	for i, b := range d.Blocks {
		lines[i] = VisibleText(b.Children)
	}
	return strings.Join(lines, "\n")
}

package render

import (
	"fmt"
	"strings"

	"github.com/gerunddev/composer/internal/parser"
)

// Tree dumps every block of doc, including edge blanks, as an indented
// outline. Intended for debugging the classifier.
//
//	1 heading1
//	    plain "Title"
func Tree(doc parser.Document) string {
	var sb strings.Builder
	for i, b := range doc.Blocks {
		fmt.Fprintf(&sb, "%d %s\n", i+1, b.Kind)
		writeInlineTree(&sb, b.Children, 1)
	}
	return sb.String()
}

func writeInlineTree(sb *strings.Builder, nodes []parser.InlineNode, depth int) {
	indent := strings.Repeat("    ", depth)
	for _, n := range nodes {
		if n.Kind == parser.InlineBold {
			fmt.Fprintf(sb, "%s%s %s\n", indent, n.Kind, n.Marker)
			writeInlineTree(sb, n.Children, depth+1)
			continue
		}
		fmt.Fprintf(sb, "%s%s %q\n", indent, n.Kind, n.Text)
	}
}

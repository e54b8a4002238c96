package parser

// Visitor receives a document tree in source order. Renderers implement it
// to paint blocks without touching parsing.
type Visitor interface {
	EnterBlock(b BlockNode)
	LeaveBlock(b BlockNode)
	EnterInline(n InlineNode)
	LeaveInline(n InlineNode)
}

// Walk traverses doc depth first. Blank blocks on the first or last line
// carry no spacing and are not visited.
func Walk(doc Document, v Visitor) {
	last := len(doc.Blocks) - 1
	for i, b := range doc.Blocks {
		if b.Kind == BlockBlank && (i == 0 || i == last) {
			continue
		}
		v.EnterBlock(b)
		walkInline(b.Children, v)
		v.LeaveBlock(b)
	}
}

func walkInline(nodes []InlineNode, v Visitor) {
	for _, n := range nodes {
		v.EnterInline(n)
		walkInline(n.Children, v)
		v.LeaveInline(n)
	}
}

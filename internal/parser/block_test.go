package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func block(kind BlockKind, children ...InlineNode) BlockNode {
	return BlockNode{Kind: kind, Children: children}
}

func TestClassifyBlocks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []BlockNode
	}{
		{
			name:  "checkbox precedence",
			input: "- [x] Done\n- [ ] Todo\n- Plain",
			expected: []BlockNode{
				block(BlockCheckboxChecked, Plain("Done")),
				block(BlockCheckboxUnchecked, Plain("Todo")),
				block(BlockBullet, Plain("Plain")),
			},
		},
		{
			name:     "uppercase checked marker",
			input:    "- [X] Shipped",
			expected: []BlockNode{block(BlockCheckboxChecked, Plain("Shipped"))},
		},
		{
			name:     "heading 1",
			input:    "# Title",
			expected: []BlockNode{block(BlockHeading1, Plain("Title"))},
		},
		{
			name:     "heading 2",
			input:    "## Subtitle",
			expected: []BlockNode{block(BlockHeading2, Plain("Subtitle"))},
		},
		{
			name:     "hashtag at line start is not a heading",
			input:    "#trading is up",
			expected: []BlockNode{block(BlockParagraph, Plain("#trading is up"))},
		},
		{
			name:     "hashtag mid line",
			input:    "Check #trading now",
			expected: []BlockNode{block(BlockParagraph, Plain("Check #trading now"))},
		},
		{
			name:     "bare hash",
			input:    "#",
			expected: []BlockNode{block(BlockParagraph, Plain("#"))},
		},
		{
			name:  "quote with and without space",
			input: "> said\n>tight",
			expected: []BlockNode{
				block(BlockQuote, Plain("said")),
				block(BlockQuote, Plain("tight")),
			},
		},
		{
			name:     "dash without space is a paragraph",
			input:    "-5% today",
			expected: []BlockNode{block(BlockParagraph, Plain("-5% today"))},
		},
		{
			name:     "empty checkbox",
			input:    "- [ ]",
			expected: []BlockNode{{Kind: BlockCheckboxUnchecked}},
		},
		{
			name:     "indented bullet",
			input:    "   - nested",
			expected: []BlockNode{block(BlockBullet, Plain("nested"))},
		},
		{
			name:  "inline markup inside blocks",
			input: "# **Big** news\n- [ ] buy _more_",
			expected: []BlockNode{
				block(BlockHeading1, Bold(Plain("Big")), Plain(" news")),
				block(BlockCheckboxUnchecked, Plain("buy "), Italic("more")),
			},
		},
		{
			name:  "blank lines",
			input: "\na\n   \n",
			expected: []BlockNode{
				{Kind: BlockBlank},
				block(BlockParagraph, Plain("a")),
				{Kind: BlockBlank},
				{Kind: BlockBlank},
			},
		},
		{
			name:     "empty document",
			input:    "",
			expected: []BlockNode{{Kind: BlockBlank}},
		},
		{
			name:  "carriage returns are trimmed",
			input: "# A\r\nb\r",
			expected: []BlockNode{
				block(BlockHeading1, Plain("A")),
				block(BlockParagraph, Plain("b")),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := ClassifyBlocks(tt.input)
			if diff := cmp.Diff(tt.expected, actual); diff != "" {
				t.Errorf("ClassifyBlocks(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestClassifyBlocksPlainRoundTrip(t *testing.T) {
	text := "first line\nsecond line\n\nafter a gap\nlast"
	doc := Parse(text)

	if got, want := len(doc.Blocks), strings.Count(text, "\n")+1; got != want {
		t.Fatalf("got %d blocks, want %d", got, want)
	}
	for i, b := range doc.Blocks {
		line := strings.Split(text, "\n")[i]
		want := BlockParagraph
		if line == "" {
			want = BlockBlank
		}
		if b.Kind != want {
			t.Errorf("block %d kind = %v, want %v", i, b.Kind, want)
		}
	}
	if got := doc.Text(); got != text {
		t.Errorf("Text() = %q, want %q", got, text)
	}
}

func TestBlockKindString(t *testing.T) {
	if got := BlockCheckboxChecked.String(); got != "checkbox_checked" {
		t.Errorf("String() = %q", got)
	}
	if got := BlockKind(42).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
	if got := InlineStrikethrough.String(); got != "strikethrough" {
		t.Errorf("String() = %q", got)
	}
}

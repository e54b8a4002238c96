package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScanInline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []InlineNode
	}{
		{
			name:     "plain text",
			input:    "hello world",
			expected: []InlineNode{Plain("hello world")},
		},
		{
			name:     "empty line",
			input:    "",
			expected: nil,
		},
		{
			name:     "bold",
			input:    "**bold**",
			expected: []InlineNode{Bold(Plain("bold"))},
		},
		{
			name:  "triple asterisk bold",
			input: "a ***loud*** b",
			expected: []InlineNode{
				Plain("a "),
				{Kind: InlineBold, Children: []InlineNode{Plain("loud")}, Marker: "***"},
				Plain(" b"),
			},
		},
		{
			name:  "italic strikethrough and code",
			input: "_it_ ~~gone~~ `x := 1`",
			expected: []InlineNode{
				Italic("it"),
				Plain(" "),
				Strikethrough("gone"),
				Plain(" "),
				Code("x := 1"),
			},
		},
		{
			name:  "nested italic inside bold",
			input: "**bold _and italic_**",
			expected: []InlineNode{
				Bold(Plain("bold "), Italic("and italic")),
			},
		},
		{
			name:  "code nested inside bold",
			input: "**run `make`**",
			expected: []InlineNode{
				Bold(Plain("run "), Code("make")),
			},
		},
		{
			name:  "italic is a leaf",
			input: "_a **b** c_",
			expected: []InlineNode{
				Italic("a **b** c"),
			},
		},
		{
			name:  "code is a leaf",
			input: "`_x_`",
			expected: []InlineNode{
				Code("_x_"),
			},
		},
		{
			name:     "single asterisks are not bold",
			input:    "*not bold*",
			expected: []InlineNode{Plain("*not bold*")},
		},
		{
			name:     "unclosed bold stays plain",
			input:    "**open ended",
			expected: []InlineNode{Plain("**open ended")},
		},
		{
			name:  "lone markers around a match",
			input: "~ ~~x~~ `",
			expected: []InlineNode{
				Plain("~ "),
				Strikethrough("x"),
				Plain(" `"),
			},
		},
		{
			name:  "empty bold pair does not absorb trailing text",
			input: "a****b",
			expected: []InlineNode{
				Plain("a"),
				Bold(),
				Plain("b"),
			},
		},
		{
			name:  "empty italic pair",
			input: "a__b",
			expected: []InlineNode{
				Plain("a"),
				Italic(""),
				Plain("b"),
			},
		},
		{
			name:     "hashtag stays inline text",
			input:    "Check #trading now",
			expected: []InlineNode{Plain("Check #trading now")},
		},
		{
			name:  "multibyte text around markers",
			input: "héllo **wörld** 👍",
			expected: []InlineNode{
				Plain("héllo "),
				Bold(Plain("wörld")),
				Plain(" 👍"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := ScanInline(tt.input)
			if diff := cmp.Diff(tt.expected, actual); diff != "" {
				t.Errorf("ScanInline(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestScanInlinePreservesContent(t *testing.T) {
	inputs := []string{
		"plain",
		"**bold** and _italic_",
		"***x*** ** * _ ~ `",
		"`a` `b` ``",
		"~~~~~",
		"**unterminated _italic",
		"_snake_case_name_",
		"***",
		"mixed **bold `code` ~~s~~** tail_",
		"日本語 **太字** _斜体_",
	}

	for _, input := range inputs {
		nodes := ScanInline(input)
		if got := Source(nodes); got != input {
			t.Errorf("Source(ScanInline(%q)) = %q", input, got)
		}
		for i := 1; i < len(nodes); i++ {
			if nodes[i].Kind == InlinePlain && nodes[i-1].Kind == InlinePlain {
				t.Errorf("ScanInline(%q) emitted adjacent plain nodes at %d", input, i)
			}
		}
	}
}

func TestVisibleText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "**bold _and italic_**", expected: "bold and italic"},
		{input: "*not bold*", expected: "*not bold*"},
		{input: "a ~~b~~ `c` d", expected: "a b c d"},
		{input: "a****b", expected: "ab"},
	}

	for _, tt := range tests {
		if got := VisibleText(ScanInline(tt.input)); got != tt.expected {
			t.Errorf("VisibleText(ScanInline(%q)) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestScanInlineLongInput(t *testing.T) {
	line := strings.Repeat("* ~ ", 20000) + "_ ` ** ~~"
	nodes := ScanInline(line)
	if len(nodes) != 1 || nodes[0].Kind != InlinePlain {
		t.Fatalf("expected one plain node, got %d nodes", len(nodes))
	}
	if Source(nodes) != line {
		t.Fatal("content was not preserved")
	}
}

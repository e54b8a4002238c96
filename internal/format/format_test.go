package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/gerunddev/composer/internal/grapheme"
	"github.com/gerunddev/composer/internal/parser"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		sel      Selection
		cmd      Command
		expected Result
	}{
		{
			name:     "bold wraps selection",
			text:     "hello world",
			sel:      Selection{Start: 0, End: 5},
			cmd:      Bold,
			expected: Result{Text: "**hello** world", Caret: 9},
		},
		{
			name:     "bold at caret",
			text:     "ab",
			sel:      Caret(1),
			cmd:      Bold,
			expected: Result{Text: "a****b", Caret: 3},
		},
		{
			name:     "italic at caret",
			text:     "",
			sel:      Caret(0),
			cmd:      Italic,
			expected: Result{Text: "__", Caret: 1},
		},
		{
			name:     "underline selection",
			text:     "say it",
			sel:      Selection{Start: 4, End: 6},
			cmd:      Underline,
			expected: Result{Text: "say <u>it</u>", Caret: 13},
		},
		{
			name:     "strikethrough selection",
			text:     "old new",
			sel:      Selection{Start: 0, End: 3},
			cmd:      Strikethrough,
			expected: Result{Text: "~~old~~ new", Caret: 7},
		},
		{
			name:     "inline code",
			text:     "run make now",
			sel:      Selection{Start: 4, End: 8},
			cmd:      Code,
			expected: Result{Text: "run `make` now", Caret: 10},
		},
		{
			name:     "multi-line code is fenced",
			text:     "a\nb",
			sel:      Selection{Start: 0, End: 3},
			cmd:      Code,
			expected: Result{Text: "```\na\nb\n```", Caret: 11},
		},
		{
			name:     "code at caret",
			text:     "x",
			sel:      Caret(1),
			cmd:      Code,
			expected: Result{Text: "x``", Caret: 2},
		},
		{
			name:     "link selection",
			text:     "see docs",
			sel:      Selection{Start: 4, End: 8},
			cmd:      Link,
			expected: Result{Text: "see [docs](https://)", Caret: 20},
		},
		{
			name:     "link at caret",
			text:     "",
			sel:      Caret(0),
			cmd:      Link,
			expected: Result{Text: "[](https://)", Caret: 1},
		},
		{
			name:     "mention inserts at sign",
			text:     "hi ",
			sel:      Caret(3),
			cmd:      Mention,
			expected: Result{Text: "hi @", Caret: 4},
		},
		{
			name:     "hashtag inserts hash",
			text:     "buy  now",
			sel:      Caret(4),
			cmd:      Hashtag,
			expected: Result{Text: "buy # now", Caret: 5},
		},
		{
			name:     "hashtag prefixes selection",
			text:     "buy gold",
			sel:      Selection{Start: 4, End: 8},
			cmd:      Hashtag,
			expected: Result{Text: "buy #gold", Caret: 5},
		},
		{
			name:     "mention prefixes reversed selection",
			text:     "ask anna",
			sel:      Selection{Start: 8, End: 4},
			cmd:      Mention,
			expected: Result{Text: "ask @anna", Caret: 5},
		},
		{
			name:     "heading at empty line",
			text:     "",
			sel:      Caret(0),
			cmd:      Heading1,
			expected: Result{Text: "# Heading", Caret: 9},
		},
		{
			name:     "heading 2 mid line starts a new line",
			text:     "intro",
			sel:      Caret(5),
			cmd:      Heading2,
			expected: Result{Text: "intro\n## Heading", Caret: 16},
		},
		{
			name:     "heading mid line splits the line",
			text:     "buy gold now",
			sel:      Caret(4),
			cmd:      Heading1,
			expected: Result{Text: "buy\n# Heading\ngold now", Caret: 13},
		},
		{
			name:     "bullet mid word splits the line",
			text:     "buy gold",
			sel:      Caret(6),
			cmd:      Bullet,
			expected: Result{Text: "buy go\n- List item\nld", Caret: 18},
		},
		{
			name:     "quote at line start keeps following text below",
			text:     "a\nsaid",
			sel:      Caret(2),
			cmd:      Quote,
			expected: Result{Text: "a\n> Quote\nsaid", Caret: 9},
		},
		{
			name:     "quote after newline",
			text:     "a\n",
			sel:      Caret(2),
			cmd:      Quote,
			expected: Result{Text: "a\n> Quote", Caret: 9},
		},
		{
			name:     "bullet at caret",
			text:     "",
			sel:      Caret(0),
			cmd:      Bullet,
			expected: Result{Text: "- List item", Caret: 11},
		},
		{
			name:     "bullet prefixes each selected line",
			text:     "milk\neggs",
			sel:      Selection{Start: 0, End: 9},
			cmd:      Bullet,
			expected: Result{Text: "- milk\n- eggs", Caret: 13},
		},
		{
			name:     "numbered counts up",
			text:     "one\ntwo\nthree",
			sel:      Selection{Start: 0, End: 13},
			cmd:      Numbered,
			expected: Result{Text: "1. one\n2. two\n3. three", Caret: 22},
		},
		{
			name:     "heading selection keeps trailing text",
			text:     "Title and more",
			sel:      Selection{Start: 0, End: 5},
			cmd:      Heading1,
			expected: Result{Text: "# Title and more", Caret: 7},
		},
		{
			name:     "reversed selection is normalized",
			text:     "hello world",
			sel:      Selection{Start: 5, End: 0},
			cmd:      Bold,
			expected: Result{Text: "**hello** world", Caret: 9},
		},
		{
			name:     "out of range selection is clamped",
			text:     "abc",
			sel:      Selection{Start: -4, End: 40},
			cmd:      Italic,
			expected: Result{Text: "_abc_", Caret: 5},
		},
		{
			name:     "offsets count grapheme clusters",
			text:     "caf\u00e9 \U0001F44D\U0001F3FD ok",
			sel:      Selection{Start: 5, End: 6},
			cmd:      Bold,
			expected: Result{Text: "caf\u00e9 **\U0001F44D\U0001F3FD** ok", Caret: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := Apply(tt.text, tt.sel, tt.cmd)
			if err != nil {
				t.Fatalf("Apply returned error: %v", err)
			}
			if actual != tt.expected {
				t.Errorf("Apply(%q, %+v, %s) = %+v, want %+v", tt.text, tt.sel, tt.cmd, actual, tt.expected)
			}
		})
	}
}

func TestApplyUnknownCommand(t *testing.T) {
	result, err := Apply("hello", Selection{Start: 1, End: 3}, Command("sparkle"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if result.Text != "hello" || result.Caret != 3 {
		t.Errorf("unknown command changed state: %+v", result)
	}
}

func TestApplyCaretInRange(t *testing.T) {
	texts := []string{"", "x", "hello world", "a\nb\nc", "日本 語", "é́x"}

	for _, text := range texts {
		n := grapheme.Count(text)
		for _, cmd := range Commands {
			for s := 0; s <= n; s++ {
				for e := s; e <= n; e++ {
					result, err := Apply(text, Selection{Start: s, End: e}, cmd)
					if err != nil {
						t.Fatalf("Apply(%q, %d..%d, %s): %v", text, s, e, cmd, err)
					}
					if result.Caret < 0 || result.Caret > grapheme.Count(result.Text) {
						t.Errorf("Apply(%q, %d..%d, %s) caret %d outside [0, %d]",
							text, s, e, cmd, result.Caret, grapheme.Count(result.Text))
					}
					if !containsInOrder(result.Text, text) {
						t.Errorf("Apply(%q, %d..%d, %s) lost content: %q", text, s, e, cmd, result.Text)
					}
				}
			}
		}
	}
}

// containsInOrder reports whether every rune of want appears in got in order.
func containsInOrder(got, want string) bool {
	g := []rune(got)
	i := 0
	for _, r := range want {
		for i < len(g) && g[i] != r {
			i++
		}
		if i == len(g) {
			return false
		}
		i++
	}
	return true
}

func TestEmptyInsertionParsesCleanly(t *testing.T) {
	// Markup inserted at a caret must not swallow text that follows it.
	for _, cmd := range []Command{Bold, Italic, Strikethrough, Code} {
		result, err := Apply("ab", Caret(1), cmd)
		if err != nil {
			t.Fatal(err)
		}
		nodes := parser.ScanInline(result.Text)
		if got := parser.VisibleText(nodes); got != "ab" {
			t.Errorf("%s: visible text %q, want %q (nodes %+v)", cmd, got, "ab", nodes)
		}
		last := nodes[len(nodes)-1]
		if last.Kind != parser.InlinePlain || last.Text != "b" {
			t.Errorf("%s: trailing text was absorbed: %+v", cmd, nodes)
		}
	}
}

func TestLinePrefixMidLineParsesCleanly(t *testing.T) {
	tests := []struct {
		cmd  Command
		kind parser.BlockKind
	}{
		{cmd: Heading1, kind: parser.BlockHeading1},
		{cmd: Heading2, kind: parser.BlockHeading2},
		{cmd: Quote, kind: parser.BlockQuote},
		{cmd: Bullet, kind: parser.BlockBullet},
	}

	for _, tt := range tests {
		t.Run(string(tt.cmd), func(t *testing.T) {
			result, err := Apply("buy gold now", Caret(4), tt.cmd)
			if err != nil {
				t.Fatal(err)
			}
			blocks := parser.ClassifyBlocks(result.Text)
			if len(blocks) != 3 {
				t.Fatalf("got %d blocks for %q, want 3", len(blocks), result.Text)
			}
			want := []parser.BlockKind{parser.BlockParagraph, tt.kind, parser.BlockParagraph}
			for i, b := range blocks {
				if b.Kind != want[i] {
					t.Errorf("block %d kind = %s, want %s", i, b.Kind, want[i])
				}
			}
			if got := parser.VisibleText(blocks[0].Children); got != "buy" {
				t.Errorf("first line = %q, want %q", got, "buy")
			}
			if got := parser.VisibleText(blocks[2].Children); got != "gold now" {
				t.Errorf("last line = %q, want %q", got, "gold now")
			}
		})
	}
}

func TestFormatterPlaceholders(t *testing.T) {
	f := New(Placeholders{Heading: "Titel", LinkURL: "https://example.com"})

	result, err := f.Apply("", Caret(0), Heading1)
	if err != nil {
		t.Fatal(err)
	}
	if result.Text != "# Titel" {
		t.Errorf("heading text = %q", result.Text)
	}

	result, err = f.Apply("x", Selection{Start: 0, End: 1}, Link)
	if err != nil {
		t.Fatal(err)
	}
	if result.Text != "[x](https://example.com)" {
		t.Errorf("link text = %q", result.Text)
	}

	result, err = f.Apply("", Caret(0), Bullet)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(result.Text, "List item") {
		t.Errorf("default list placeholder not used: %q", result.Text)
	}
}

func TestInsertAndDelete(t *testing.T) {
	tests := []struct {
		name     string
		run      func() Result
		expected Result
	}{
		{
			name:     "insert at caret",
			run:      func() Result { return Insert("ac", Caret(1), "b") },
			expected: Result{Text: "abc", Caret: 2},
		},
		{
			name:     "insert replaces selection",
			run:      func() Result { return Insert("hello", Selection{Start: 1, End: 4}, "i") },
			expected: Result{Text: "hio", Caret: 2},
		},
		{
			name:     "delete previous cluster",
			run:      func() Result { return Delete("a\U0001F44D\U0001F3FDb", Caret(2)) },
			expected: Result{Text: "ab", Caret: 1},
		},
		{
			name:     "delete at start is a no-op",
			run:      func() Result { return Delete("abc", Caret(0)) },
			expected: Result{Text: "abc", Caret: 0},
		},
		{
			name:     "delete selection",
			run:      func() Result { return Delete("abcdef", Selection{Start: 1, End: 5}) },
			expected: Result{Text: "af", Caret: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.run(); got != tt.expected {
				t.Errorf("got %+v, want %+v", got, tt.expected)
			}
		})
	}
}

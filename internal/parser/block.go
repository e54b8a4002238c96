package parser

import "strings"

// ClassifyBlocks splits text on line breaks and classifies every line.
// The result always holds exactly one block per source line.
func ClassifyBlocks(text string) []BlockNode {
	lines := strings.Split(text, "\n")
	blocks := make([]BlockNode, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, ClassifyLine(line))
	}
	return blocks
}

// Parse classifies text into a Document.
func Parse(text string) Document {
	return Document{Blocks: ClassifyBlocks(text)}
}

// ClassifyLine classifies a single line. Rules are tested in priority order
// against the trimmed line:
//
//	"- [x] done"  checkbox, checked (x in either case)
//	"- [ ] todo"  checkbox, unchecked
//	"- item"      bullet
//	"# title"     heading 1
//	"## title"    heading 2
//	"> quote"     quote
//	anything else paragraph; empty lines are blank
//
// A heading marker must be followed by a space, so "#tag" at the start of a
// line is a paragraph containing a hashtag.
func ClassifyLine(line string) BlockNode {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return BlockNode{Kind: BlockBlank}
	}

	kind, content := classifyTrimmed(trimmed)
	return BlockNode{Kind: kind, Children: ScanInline(content)}
}

func classifyTrimmed(trimmed string) (BlockKind, string) {
	if rest, ok := cutCheckbox(trimmed, "x", "X"); ok {
		return BlockCheckboxChecked, rest
	}
	if rest, ok := cutCheckbox(trimmed, " "); ok {
		return BlockCheckboxUnchecked, rest
	}
	if rest, ok := strings.CutPrefix(trimmed, "- "); ok {
		return BlockBullet, strings.TrimSpace(rest)
	}
	if rest, ok := strings.CutPrefix(trimmed, "# "); ok {
		return BlockHeading1, strings.TrimSpace(rest)
	}
	if rest, ok := strings.CutPrefix(trimmed, "## "); ok {
		return BlockHeading2, strings.TrimSpace(rest)
	}
	if rest, ok := strings.CutPrefix(trimmed, ">"); ok {
		return BlockQuote, strings.TrimSpace(rest)
	}
	return BlockParagraph, trimmed
}

// cutCheckbox matches "- [m]" where m is one of marks. The marker must end
// the line or be followed by whitespace.
func cutCheckbox(trimmed string, marks ...string) (string, bool) {
	for _, m := range marks {
		rest, ok := strings.CutPrefix(trimmed, "- ["+m+"]")
		if !ok {
			continue
		}
		if rest == "" {
			return "", true
		}
		if rest[0] == ' ' || rest[0] == '\t' {
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}

package tui

import (
	"strings"

	"github.com/gerunddev/composer/internal/grapheme"
)

func isBreak(cluster string) bool {
	return strings.Contains(cluster, "\n")
}

// lineCol returns the line and column of a character offset
func lineCol(text string, caret int) (line, col int) {
	for i, g := range grapheme.Split(text) {
		if i == caret {
			break
		}
		if isBreak(g) {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}

// offsetAt returns the character offset of line and col. A column past the
// end of the line lands on the line end; a line past the last lands at the
// end of the text.
func offsetAt(text string, line, col int) int {
	clusters := grapheme.Split(text)
	cur, c := 0, 0
	for i, g := range clusters {
		if cur == line && c == col {
			return i
		}
		if isBreak(g) {
			if cur == line {
				return i
			}
			cur++
			c = 0
			continue
		}
		if cur == line {
			c++
		}
	}
	return len(clusters)
}

// moveVertical moves the caret delta lines, keeping its column when the
// target line is long enough.
func moveVertical(text string, caret, delta int) int {
	line, col := lineCol(text, caret)
	target := line + delta
	if target < 0 {
		return 0
	}
	lines := strings.Count(text, "\n")
	if target > lines {
		return grapheme.Count(text)
	}
	return offsetAt(text, target, col)
}

func lineStart(text string, caret int) int {
	line, _ := lineCol(text, caret)
	return offsetAt(text, line, 0)
}

func lineEnd(text string, caret int) int {
	line, _ := lineCol(text, caret)
	return offsetAt(text, line, int(^uint(0)>>1))
}

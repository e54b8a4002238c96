// Package diff shows what a formatting step changed.
package diff

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Unified returns a unified diff from before to after, or "" when they are
// equal.
func Unified(oldName, newName, before, after string) string {
	if before == after {
		return ""
	}
	// Terminate both sides so the last line diffs cleanly
	if !strings.HasSuffix(before, "\n") {
		before += "\n"
	}
	if !strings.HasSuffix(after, "\n") {
		after += "\n"
	}

	edits := myers.ComputeEdits(span.URIFromPath(oldName), before, after)
	return fmt.Sprint(gotextdiff.ToUnified(oldName, newName, before, edits))
}

// Render paints a unified diff for the terminal. If glamour cannot render
// it, the fenced markdown is returned as is.
func Render(unified string, width int) string {
	if unified == "" {
		return ""
	}
	if width <= 0 {
		width = 120
	}

	// Wrap in diff code fence for syntax highlighting (+ in green, - in red)
	fenced := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fenced
	}

	rendered, err := renderer.Render(fenced)
	if err != nil {
		return fenced
	}

	return rendered
}

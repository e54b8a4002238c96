package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gerunddev/composer/internal/diff"
	"github.com/gerunddev/composer/internal/format"
	"github.com/gerunddev/composer/internal/grapheme"
	"github.com/gerunddev/composer/internal/parser"
	"github.com/gerunddev/composer/internal/render"
	"github.com/gerunddev/composer/internal/session"
	"github.com/gerunddev/composer/internal/styles"
)

// Format applies one toolbar command to a file or stdin
func Format(args []string) {
	run(args, func(e *env) error { return runFormat(e, args) })
}

// Parse prints the classified document tree
func Parse(args []string) {
	run(args, func(e *env) error { return runParse(e, args) })
}

// Preview prints the styled rendering of a document
func Preview(args []string) {
	run(args, func(e *env) error { return runPreview(e, args) })
}

// Replay runs a YAML toolbar session
func Replay(args []string) {
	run(args, func(e *env) error { return runReplay(e, args) })
}

// selectionFlags reads --start and --end. A missing start falls back to
// caret, a missing end to start.
func selectionFlags(args []string, caret int) (format.Selection, error) {
	start, ok, err := intFlag(args, "--start")
	if err != nil {
		return format.Selection{}, err
	}
	if !ok {
		start = caret
	}
	end, ok, err := intFlag(args, "--end")
	if err != nil {
		return format.Selection{}, err
	}
	if !ok {
		end = start
	}
	return format.Selection{Start: start, End: end}, nil
}

// applyLogged applies cmd, logging the outcome. Unknown commands produce a
// warning on stderr and leave the text unchanged.
func applyLogged(e *env, text string, sel format.Selection, cmd format.Command) format.Result {
	result, err := e.cfg.Formatter().Apply(text, sel, cmd)
	if errors.Is(err, format.ErrUnknownFormat) {
		e.log.UnknownFormat(string(cmd))
		fmt.Fprintln(e.stderr, styles.WarningStyle.Render(fmt.Sprintf("⚠ Unknown format command %q, text left unchanged", cmd)))
		return result
	}
	e.log.FormatApplied(string(cmd), sel.Start, sel.End, result.Caret)
	return result
}

// printResult writes a format result as JSON, a rendered diff, or plain text
func printResult(e *env, args []string, before string, result format.Result) error {
	switch {
	case hasFlag(args, "--json"):
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprintln(e.stdout, string(data))
	case hasFlag(args, "--diff"):
		unified := diff.Unified("before", "after", before, result.Text)
		if unified == "" {
			fmt.Fprintln(e.stdout, styles.DimStyle.Render("No changes"))
			return nil
		}
		fmt.Fprint(e.stdout, diff.Render(unified, e.cfg.WrapWidth))
	default:
		writeText(e.stdout, result.Text)
		fmt.Fprintln(e.stderr, styles.DimStyle.Render(fmt.Sprintf("caret %d", result.Caret)))
	}
	return nil
}

func runFormat(e *env, args []string) error {
	pos := positional(args)
	if len(pos) == 0 {
		return fmt.Errorf("usage: composer format <command> [--start N] [--end N] [--file F] [--diff] [--json]")
	}
	cmd := format.Command(pos[0])

	path, _ := flagValue(args, "--file")
	text, err := readInput(path, e.stdin)
	if err != nil {
		return err
	}

	sel, err := selectionFlags(args, grapheme.Count(text))
	if err != nil {
		return err
	}

	result := applyLogged(e, text, sel, cmd)
	return printResult(e, args, text, result)
}

func runParse(e *env, args []string) error {
	path, _ := flagValue(args, "--file")
	text, err := readInput(path, e.stdin)
	if err != nil {
		return err
	}

	doc := parser.Parse(text)
	e.log.DocumentParsed(sourceName(path), len(doc.Blocks))

	if hasFlag(args, "--json") {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		fmt.Fprintln(e.stdout, string(data))
		return nil
	}

	fmt.Fprint(e.stdout, render.Tree(doc))
	return nil
}

func runPreview(e *env, args []string) error {
	path, _ := flagValue(args, "--file")
	text, err := readInput(path, e.stdin)
	if err != nil {
		return err
	}

	width, ok, err := intFlag(args, "--width")
	if err != nil {
		return err
	}
	if !ok {
		width = e.cfg.WrapWidth
	}

	doc := parser.Parse(text)
	e.log.DocumentParsed(sourceName(path), len(doc.Blocks))
	fmt.Fprintln(e.stdout, render.Render(doc, width))
	return nil
}

func runReplay(e *env, args []string) error {
	pos := positional(args)
	if len(pos) == 0 {
		return fmt.Errorf("usage: composer replay <session.yaml> [--diff]")
	}

	s, err := session.Load(pos[0])
	if err != nil {
		return err
	}

	out := session.Run(e.cfg.Formatter(), s, e.log)
	for _, step := range out.Steps {
		name := string(step.Step.Command)
		if step.Step.Insert != "" {
			name = fmt.Sprintf("insert %q", step.Step.Insert)
		}
		line := fmt.Sprintf("%d %s [%d,%d] → caret %d",
			step.Index, name, step.Selection.Start, step.Selection.End, step.Result.Caret)
		if step.Skipped {
			fmt.Fprintln(e.stderr, styles.WarningStyle.Render("⚠ "+line+" (unknown, skipped)"))
			continue
		}
		fmt.Fprintln(e.stderr, styles.SuccessStyle.Render("✓ ")+styles.DimStyle.Render(line))
	}

	return printResult(e, args, s.Text, out.Final)
}

func sourceName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}

package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gerunddev/composer/internal/config"
	"github.com/gerunddev/composer/internal/drafts"
	"github.com/gerunddev/composer/internal/format"
	"github.com/gerunddev/composer/internal/grapheme"
	"github.com/gerunddev/composer/internal/parser"
	"github.com/gerunddev/composer/internal/render"
	"github.com/gerunddev/composer/internal/styles"
	"github.com/gerunddev/composer/internal/tui"
)

// Draft manages saved drafts: new, list, show, rm, format
func Draft(args []string) {
	run(args, func(e *env) error {
		store, err := drafts.Load(config.DraftsFilePath())
		if err != nil {
			e.log.DraftError("load", err)
			return fmt.Errorf("loading drafts: %w", err)
		}
		return runDraft(e, store, args)
	})
}

// Edit opens the interactive composer on a draft
func Edit(args []string) {
	run(args, func(e *env) error {
		store, err := drafts.Load(config.DraftsFilePath())
		if err != nil {
			e.log.DraftError("load", err)
			return fmt.Errorf("loading drafts: %w", err)
		}
		return runEdit(e, store, args)
	})
}

const draftUsage = "usage: composer draft new|list|show|rm|format"

func runDraft(e *env, store *drafts.Store, args []string) error {
	pos := positional(args)
	if len(pos) == 0 {
		return fmt.Errorf(draftUsage)
	}

	switch pos[0] {
	case "new":
		return draftNew(e, store, args)
	case "list", "ls":
		return draftList(e, store)
	case "show":
		return withDraft(store, pos, func(d *drafts.Draft) error {
			return draftShow(e, d, args)
		})
	case "rm", "delete":
		return withDraft(store, pos, func(d *drafts.Draft) error {
			return draftRemove(e, store, d)
		})
	case "format":
		if len(pos) < 3 {
			return fmt.Errorf("usage: composer draft format <id> <command> [--start N] [--end N] [--diff] [--json]")
		}
		return withDraft(store, pos, func(d *drafts.Draft) error {
			return draftFormat(e, store, d, format.Command(pos[2]), args)
		})
	default:
		return fmt.Errorf("unknown draft command %q\n%s", pos[0], draftUsage)
	}
}

// withDraft resolves the ID in pos[1] and calls fn with the draft
func withDraft(store *drafts.Store, pos []string, fn func(d *drafts.Draft) error) error {
	if len(pos) < 2 {
		return fmt.Errorf("usage: composer draft %s <id>", pos[0])
	}
	d, err := store.Find(pos[1])
	if err != nil {
		return err
	}
	return fn(d)
}

func saveStore(e *env, store *drafts.Store) error {
	if err := store.Save(); err != nil {
		e.log.DraftError("save", err)
		return err
	}
	return nil
}

func draftNew(e *env, store *drafts.Store, args []string) error {
	text := ""
	if path, ok := flagValue(args, "--file"); ok {
		var err error
		if text, err = readInput(path, e.stdin); err != nil {
			return err
		}
	}

	d := store.Create(text)
	d.Caret = grapheme.Count(text)
	if err := saveStore(e, store); err != nil {
		return err
	}
	e.log.DraftSaved(d.ID, d.Caret)

	fmt.Fprintln(e.stdout, styles.SuccessStyle.Render("✓ Created draft "+d.ID))
	return nil
}

func draftList(e *env, store *drafts.Store) error {
	list := store.List()
	if len(list) == 0 {
		fmt.Fprintln(e.stdout, styles.DimStyle.Render("No drafts"))
		return nil
	}

	for _, d := range list {
		fmt.Fprintf(e.stdout, "%s  %s  %s\n",
			styles.HighlightStyle.Render(d.ID[:min(8, len(d.ID))]),
			styles.DimStyle.Render(d.UpdatedAt.Local().Format("2006-01-02 15:04")),
			d.Title())
	}
	return nil
}

func draftShow(e *env, d *drafts.Draft, args []string) error {
	if hasFlag(args, "--render") {
		fmt.Fprintln(e.stdout, render.Render(parser.Parse(d.Text), e.cfg.WrapWidth))
		return nil
	}
	writeText(e.stdout, d.Text)
	return nil
}

func draftRemove(e *env, store *drafts.Store, d *drafts.Draft) error {
	if err := store.Delete(d.ID); err != nil {
		return err
	}
	if err := saveStore(e, store); err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, styles.SuccessStyle.Render("✓ Deleted draft "+d.ID))
	return nil
}

func draftFormat(e *env, store *drafts.Store, d *drafts.Draft, cmd format.Command, args []string) error {
	sel, err := selectionFlags(args, d.Caret)
	if err != nil {
		return err
	}

	before := d.Text
	result := applyLogged(e, before, sel, cmd)

	changed, err := store.Update(d.ID, result.Text, result.Caret)
	if err != nil {
		return err
	}
	if err := saveStore(e, store); err != nil {
		return err
	}
	if changed {
		e.log.DraftSaved(d.ID, grapheme.Count(result.Text))
	}

	return printResult(e, args, before, result)
}

func runEdit(e *env, store *drafts.Store, args []string) error {
	var d *drafts.Draft
	pos := positional(args)

	switch {
	case len(pos) > 0:
		found, err := store.Find(pos[0])
		if err != nil {
			return err
		}
		d = found
	case len(store.Drafts) > 0:
		picked, err := tea.NewProgram(tui.NewBrowseModel(store), tea.WithAltScreen()).Run()
		if err != nil {
			return err
		}
		browser := picked.(tui.BrowseModel)
		if browser.Chosen() == nil && !browser.CreateNew() {
			return nil
		}
		d = browser.Chosen()
	}

	m := tui.NewComposeModel(tui.ComposeOptions{
		Formatter: e.cfg.Formatter(),
		Store:     store,
		Draft:     d,
		Autosave:  e.cfg.AutosaveInterval,
		Log:       e.log,
	})

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if composed := final.(tui.ComposeModel); composed.Err() != nil {
		return fmt.Errorf("saving draft: %w", composed.Err())
	}
	return nil
}

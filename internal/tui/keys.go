package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/gerunddev/composer/internal/format"
)

// toolbarKey binds a toolbar command to a key
type toolbarKey struct {
	binding key.Binding
	command format.Command
}

// composeKeys is the composer key map
type composeKeys struct {
	Toolbar   []toolbarKey
	Mark      key.Binding
	ClearMark key.Binding
	Save      key.Binding
	Quit      key.Binding
	Help      key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Home      key.Binding
	End       key.Binding
	Backspace key.Binding
	Newline   key.Binding
}

// toolbarShortcuts holds the key and help label of each toolbar command
var toolbarShortcuts = map[format.Command]struct{ keys, desc string }{
	format.Bold:          {"alt+b", "bold"},
	format.Italic:        {"alt+i", "italic"},
	format.Underline:     {"alt+u", "underline"},
	format.Strikethrough: {"alt+s", "strike"},
	format.Heading1:      {"alt+1", "heading"},
	format.Heading2:      {"alt+2", "subheading"},
	format.Quote:         {"alt+q", "quote"},
	format.Code:          {"alt+c", "code"},
	format.Bullet:        {"alt+l", "bullet"},
	format.Numbered:      {"alt+n", "numbered"},
	format.Link:          {"alt+k", "link"},
	format.Mention:       {"alt+a", "mention"},
	format.Hashtag:       {"alt+h", "hashtag"},
}

// toolbarKeys binds format.Commands in toolbar order. Commands without a
// shortcut are left off the toolbar.
func toolbarKeys() []toolbarKey {
	keys := make([]toolbarKey, 0, len(format.Commands))
	for _, cmd := range format.Commands {
		sc, ok := toolbarShortcuts[cmd]
		if !ok {
			continue
		}
		keys = append(keys, toolbarKey{
			binding: key.NewBinding(key.WithKeys(sc.keys), key.WithHelp(sc.keys, sc.desc)),
			command: cmd,
		})
	}
	return keys
}

func defaultComposeKeys() composeKeys {
	return composeKeys{
		Toolbar:   toolbarKeys(),
		Mark:      key.NewBinding(key.WithKeys("ctrl+@"), key.WithHelp("ctrl+space", "mark")),
		ClearMark: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear mark")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Help:      key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "toolbar")),
		Left:      key.NewBinding(key.WithKeys("left", "ctrl+b")),
		Right:     key.NewBinding(key.WithKeys("right", "ctrl+f")),
		Up:        key.NewBinding(key.WithKeys("up", "ctrl+p")),
		Down:      key.NewBinding(key.WithKeys("down", "ctrl+n")),
		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Newline:   key.NewBinding(key.WithKeys("enter")),
	}
}

// ShortHelp implements help.KeyMap
func (k composeKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Mark, k.Save, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k composeKeys) FullHelp() [][]key.Binding {
	var cols [][]key.Binding
	var col []key.Binding
	for _, t := range k.Toolbar {
		col = append(col, t.binding)
		if len(col) == 5 {
			cols = append(cols, col)
			col = nil
		}
	}
	if len(col) > 0 {
		cols = append(cols, col)
	}
	return append(cols, []key.Binding{k.Mark, k.ClearMark, k.Save, k.Quit})
}

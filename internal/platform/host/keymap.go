package host

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/fbcore/internal/core"
)

// Binding ties one button to the keys that press it.
type Binding struct {
	Button core.Buttons
	key.Binding
}

// KeyMap translates host key names into buttons. It satisfies the
// bubbles help.KeyMap interface.
type KeyMap struct {
	Buttons []Binding
	Quit    key.Binding
	Shot    key.Binding
}

var defaultKeys = map[core.Buttons][]string{
	core.ButtonA:      {"z", "j"},
	core.ButtonB:      {"x", "k"},
	core.ButtonSelect: {"backspace", "tab"},
	core.ButtonStart:  {"enter", " "},
	core.ButtonRight:  {"right", "d"},
	core.ButtonLeft:   {"left", "a"},
	core.ButtonUp:     {"up", "w"},
	core.ButtonDown:   {"down", "s"},
	core.ButtonR:      {"e"},
	core.ButtonL:      {"q"},
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	km, _ := NewKeyMap(nil)
	return km
}

// NewKeyMap builds a key map from button name to key names. Buttons not
// mentioned keep their default keys; unknown button names are an error.
func NewKeyMap(overrides map[string][]string) (KeyMap, error) {
	keys := make(map[core.Buttons][]string, len(defaultKeys))
	for b, k := range defaultKeys {
		keys[b] = k
	}

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b, ok := core.ParseButton(name)
		if !ok {
			return KeyMap{}, fmt.Errorf("keymap: unknown button %q", name)
		}
		if len(overrides[name]) == 0 {
			return KeyMap{}, fmt.Errorf("keymap: button %q has no keys", name)
		}
		keys[b] = overrides[name]
	}

	km := KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Shot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
	for _, b := range core.AllButtons() {
		ks := keys[b]
		km.Buttons = append(km.Buttons, Binding{
			Button: b,
			Binding: key.NewBinding(
				key.WithKeys(ks...),
				key.WithHelp(helpKeys(ks), b.String()),
			),
		})
	}
	return km, nil
}

// Lookup returns the buttons bound to the key name k, or 0.
func (m KeyMap) Lookup(k string) core.Buttons {
	var out core.Buttons
	for _, b := range m.Buttons {
		for _, name := range b.Keys() {
			if name == k {
				out |= b.Button
			}
		}
	}
	return out
}

// KeysFor returns the key names bound to b.
func (m KeyMap) KeysFor(b core.Buttons) []string {
	for _, kb := range m.Buttons {
		if kb.Button == b {
			return kb.Keys()
		}
	}
	return nil
}

func (m KeyMap) binding(b core.Buttons) key.Binding {
	for _, kb := range m.Buttons {
		if kb.Button == b {
			return kb.Binding
		}
	}
	return key.Binding{}
}

// ShortHelp returns the bindings shown in the one-line help.
func (m KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		m.binding(core.ButtonA),
		m.binding(core.ButtonB),
		m.binding(core.ButtonStart),
		m.Quit,
	}
}

// FullHelp returns every binding, grouped in columns.
func (m KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.binding(core.ButtonUp), m.binding(core.ButtonDown), m.binding(core.ButtonLeft), m.binding(core.ButtonRight)},
		{m.binding(core.ButtonA), m.binding(core.ButtonB), m.binding(core.ButtonL), m.binding(core.ButtonR)},
		{m.binding(core.ButtonStart), m.binding(core.ButtonSelect), m.Shot, m.Quit},
	}
}

func helpKeys(ks []string) string {
	return strings.ReplaceAll(strings.Join(ks, "/"), " ", "space")
}

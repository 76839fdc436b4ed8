package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	logout  key.Binding

	newItem  key.Binding
	edit     key.Binding
	toggle   key.Binding
	pin      key.Binding
	delete   key.Binding
	filter   key.Binding
	sort     key.Binding
	display  key.Binding
	search   key.Binding
	report   key.Binding
	refresh  key.Binding
	settings key.Binding

	save      key.Binding
	nextColor key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	logout:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout")),

	newItem:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	edit:     key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
	toggle:   key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "done")),
	pin:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pin")),
	delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	filter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
	sort:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort")),
	display:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grid/list")),
	search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	report:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy report")),
	refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),

	save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	nextColor: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "color")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}

// helpLine joins the help texts of bindings with the page separator.
func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return joinHelp(parts...)
}

package types

import "github.com/charmbracelet/bubbles/key"

// GridKeyMap lists the bindings of the album grid
type GridKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Open     key.Binding
	List     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ViewerKeyMap lists the bindings of the image viewer
type ViewerKeyMap struct {
	Prev    key.Binding
	Next    key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Reset   key.Binding
	Close   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// GridKeys are the default grid bindings
var GridKeys = GridKeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
	Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("gg/home", "first")),
	End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "last")),
	Open:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
	List:     key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "list in pager")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ViewerKeys are the default viewer bindings
var ViewerKeys = ViewerKeyMap{
	Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
	Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
	ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
	ZoomOut: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
	Reset:   key.NewBinding(key.WithKeys("r", "0"), key.WithHelp("r/0", "reset zoom")),
	Close:   key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "close")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// ShortHelp implements help.KeyMap
func (k GridKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.List, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k GridKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.Home, k.End},
		{k.Open, k.List, k.Help, k.Quit},
	}
}

// ShortHelp implements help.KeyMap
func (k ViewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.ZoomIn, k.ZoomOut, k.Close}
}

// FullHelp implements help.KeyMap
func (k ViewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.ZoomIn, k.ZoomOut, k.Reset},
		{k.Close, k.Help, k.Quit},
	}
}

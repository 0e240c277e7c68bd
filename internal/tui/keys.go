package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add      key.Binding
	Focus    key.Binding
	Up       key.Binding
	Down     key.Binding
	Increase key.Binding
	Decrease key.Binding
	Cart     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:      key.NewBinding(key.WithKeys("enter", "a"), key.WithHelp("enter/a", "add to cart")),
		Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "products/cart")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Increase: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more")),
		Decrease: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "less")),
		Cart:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "show/hide cart")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp and FullHelp satisfy help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Focus, k.Increase, k.Decrease, k.Cart, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Cart},
		{k.Focus, k.Up, k.Down},
		{k.Increase, k.Decrease},
		{k.Quit},
	}
}

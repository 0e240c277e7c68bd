package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/basket/internal/model"
	"github.com/Makepad-fr/basket/internal/ui"
)

// productItem adapts model.Product to bubbles/list.Item
type productItem struct {
	p model.Product
}

func (i productItem) Title() string       { return i.p.Name }
func (i productItem) Description() string { return i.p.Description }
func (i productItem) FilterValue() string { return i.p.Name + " " + i.p.ID }

// Custom delegate to control how products render (single line)
type productDelegate struct{}

func (d productDelegate) Height() int                               { return 1 }
func (d productDelegate) Spacing() int                              { return 0 }
func (d productDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d productDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(productItem)
	if !ok {
		return
	}
	t := ui.Current()
	line := fmt.Sprintf("%-24s %8s", it.p.Name, it.p.Price.StringFixed(2))
	if it.p.Description != "" {
		line += "  " + t.Muted.Render(it.p.Description)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprint(w, prefix+line)
}

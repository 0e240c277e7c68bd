package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Makepad-fr/basket/internal/cart"
)

// Panel draws a framed box using the current theme.
func Panel(lines ...string) string {
	t := Current()
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// CartTable renders a cart summary: one row per line with its controls,
// then totals and the checkout link. selected highlights a row, -1 for none.
func CartTable(s cart.Summary, link string, selected int) string {
	t := Current()
	header := t.Title.Render(t.SymCart + " Shopping Cart")
	if s.Empty {
		return Panel(header, t.Muted.Render(cart.EmptyText))
	}

	rows := make([][]string, 0, len(s.Rows))
	for _, r := range s.Rows {
		rows = append(rows, []string{
			r.Product,
			strconv.Itoa(r.Quantity),
			r.TotalPrice.StringFixed(2),
			t.Dec + " " + t.Inc,
		})
	}
	tbl := table.New().
		Border(t.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(t.BorderColor)).
		Headers("Product", "Qty", "Total", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			st := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return st.Inherit(t.Title)
			case row == selected:
				st = st.Inherit(t.Selected)
			}
			if col == 1 || col == 2 {
				st = st.Align(lipgloss.Right)
			}
			return st
		})

	lines := []string{
		header,
		tbl.Render(),
		fmt.Sprintf("%s %d  %s %s",
			t.Muted.Render("Items"), s.Count,
			t.Accent.Render("Total"), s.Total.StringFixed(2)),
	}
	if link != "" {
		lines = append(lines, t.Accent.Render("Checkout: ")+link)
	}
	return Panel(lines...)
}

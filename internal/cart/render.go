package cart

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Makepad-fr/basket/internal/model"
)

// EmptyText is shown in place of rows when the cart has nothing in it.
const EmptyText = "Shopping Cart is empty"

// Row is one rendered cart line. The presenter draws decrease/increase
// controls next to it, bound to ID.
type Row struct {
	ID         string
	Product    string
	Quantity   int
	TotalPrice decimal.Decimal
}

// Summary is the presentation-ready state of a cart.
type Summary struct {
	Empty         bool
	Rows          []Row
	Count         int
	Total         decimal.Decimal
	CheckoutQuery string
}

// Render builds a Summary from lines in cart order. It has no side effects.
func Render(items []model.LineItem) Summary {
	if len(items) == 0 {
		return Summary{Empty: true, Total: decimal.Zero}
	}
	s := Summary{
		Rows:          make([]Row, 0, len(items)),
		Total:         sumTotals(items),
		CheckoutQuery: CheckoutQuery(items),
	}
	for _, it := range items {
		s.Rows = append(s.Rows, Row{
			ID:         it.ID,
			Product:    it.Product,
			Quantity:   it.Quantity,
			TotalPrice: it.TotalPrice,
		})
		s.Count += it.Quantity
	}
	return s
}

// CheckoutLink joins base with the checkout query. An empty cart has no link.
func (s Summary) CheckoutLink(base string) string {
	if s.Empty || s.CheckoutQuery == "" {
		return ""
	}
	base = strings.TrimRight(base, "?")
	return base + s.CheckoutQuery
}

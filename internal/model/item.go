package model

import "github.com/shopspring/decimal"

// Product is a catalog entry that can be put in the cart.
type Product struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Price       decimal.Decimal `json:"price" yaml:"-"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
}

// LineItem is one product entry in the cart.
// TotalPrice is always UnitPrice * Quantity.
type LineItem struct {
	ID         string          `json:"id"`
	Product    string          `json:"product"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Recalc sets TotalPrice from UnitPrice and Quantity.
func (li *LineItem) Recalc() {
	li.TotalPrice = li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

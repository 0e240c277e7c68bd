package cart

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Makepad-fr/basket/internal/model"
)

// Store holds the cart lines, newest first.
// It has a single owner and does no locking.
type Store struct {
	items []model.LineItem
}

func NewStore() *Store {
	return &Store{items: []model.LineItem{}}
}

func (s *Store) index(id string) int {
	id = strings.TrimSpace(id)
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// AddItem puts one unit of a product in the cart. A new product goes to the
// front; a known one keeps its position and stored unit price.
func (s *Store) AddItem(id string, unitPrice decimal.Decimal, product string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("add: %w: empty id", ErrInvalidItem)
	}
	if unitPrice.IsNegative() {
		return fmt.Errorf("add %s: %w: %s", id, ErrInvalidPrice, unitPrice)
	}

	i := s.index(id)
	if i < 0 {
		li := model.LineItem{ID: id, Product: product, UnitPrice: unitPrice, Quantity: 1}
		li.Recalc()
		s.items = append([]model.LineItem{li}, s.items...)
		return nil
	}

	if !s.items[i].UnitPrice.Equal(unitPrice) {
		return fmt.Errorf("add %s: %w: have %s, got %s", id, ErrPriceMismatch, s.items[i].UnitPrice, unitPrice)
	}
	s.items[i].Quantity++
	s.items[i].Recalc()
	return nil
}

func (s *Store) IncreaseItem(id string) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("increase %s: %w", id, ErrItemNotFound)
	}
	s.items[i].Quantity++
	s.items[i].Recalc()
	return nil
}

// DecreaseItem takes one unit off a line and drops the line when it hits zero.
func (s *Store) DecreaseItem(id string) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("decrease %s: %w", id, ErrItemNotFound)
	}
	s.items[i].Quantity--
	if s.items[i].Quantity <= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
		return nil
	}
	s.items[i].Recalc()
	return nil
}

// Items returns a copy of the lines in cart order.
func (s *Store) Items() []model.LineItem {
	out := make([]model.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Item(id string) (model.LineItem, bool) {
	i := s.index(id)
	if i < 0 {
		return model.LineItem{}, false
	}
	return s.items[i], true
}

// setQuantity sets the quantity of line i in one step.
func (s *Store) setQuantity(i, qty int) {
	s.items[i].Quantity = qty
	s.items[i].Recalc()
}

func (s *Store) Len() int { return len(s.items) }

// Count is the number of units across all lines.
func (s *Store) Count() int {
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

func (s *Store) Total() decimal.Decimal {
	return sumTotals(s.items)
}

func sumTotals(items []model.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalPrice)
	}
	return total
}

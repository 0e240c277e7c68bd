package cart

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Event is a cart operation requested by the UI layer.
type Event interface {
	apply(s *Store) error
	name() string
}

type AddEvent struct {
	ID        string
	UnitPrice decimal.Decimal
	Product   string
}

type IncreaseEvent struct{ ID string }

type DecreaseEvent struct{ ID string }

func (e AddEvent) apply(s *Store) error      { return s.AddItem(e.ID, e.UnitPrice, e.Product) }
func (e IncreaseEvent) apply(s *Store) error { return s.IncreaseItem(e.ID) }
func (e DecreaseEvent) apply(s *Store) error { return s.DecreaseItem(e.ID) }

func (AddEvent) name() string      { return "add" }
func (IncreaseEvent) name() string { return "increase" }
func (DecreaseEvent) name() string { return "decrease" }

// Presenter shows a rendered cart, e.g. a toast or a printed panel.
type Presenter interface {
	Present(s Summary, err error)
}

// PresenterFunc adapts a plain function to Presenter.
type PresenterFunc func(s Summary, err error)

func (f PresenterFunc) Present(s Summary, err error) { f(s, err) }

// Controller runs the operation-then-render cycle for one cart.
type Controller struct {
	store     *Store
	presenter Presenter
	logger    *zap.Logger
}

func NewController(store *Store, p Presenter, logger *zap.Logger) *Controller {
	if store == nil {
		store = NewStore()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{store: store, presenter: p, logger: logger}
}

// Dispatch applies ev, renders the cart and hands the result to the
// presenter. A failed event leaves the cart unchanged; the error is still
// presented alongside the current cart.
func (c *Controller) Dispatch(ev Event) (Summary, error) {
	var err error
	if ev == nil {
		err = fmt.Errorf("dispatch: %w: nil event", ErrInvalidItem)
		c.logger.Warn("cart event rejected", zap.Error(err))
	} else if err = ev.apply(c.store); err != nil {
		c.logger.Warn("cart event rejected", zap.String("event", ev.name()), zap.Error(err))
	} else {
		c.logger.Debug("cart event applied",
			zap.String("event", ev.name()),
			zap.Int("lines", c.store.Len()),
			zap.String("total", c.store.Total().String()),
		)
	}
	s := Render(c.store.Items())
	c.present(s, err)
	return s, err
}

// Show renders and presents the cart without changing it.
func (c *Controller) Show() Summary {
	s := Render(c.store.Items())
	c.present(s, nil)
	return s
}

func (c *Controller) Store() *Store { return c.store }

func (c *Controller) present(s Summary, err error) {
	if c.presenter != nil {
		c.presenter.Present(s, err)
	}
}

package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/basket/internal/cart"
	"github.com/Makepad-fr/basket/internal/store/catalog"
	"github.com/Makepad-fr/basket/internal/tui"
	"github.com/Makepad-fr/basket/internal/ui"
)

func newShopCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shop",
		Short: "Open the interactive shop (default)",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShop()
		},
	}
}

func (a *app) runShop() error {
	s, err := tui.Run(a.catalog.Products(), tui.Options{
		CheckoutURL: a.cfg.CheckoutURL,
		ToastDelay:  a.cfg.ToastDelay,
		Logger:      a.logger,
	})
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if s.Empty {
		ui.Muted(a.out, cart.EmptyText)
		return nil
	}
	ui.OK(a.out, fmt.Sprintf("%d item(s), total %s", s.Count, s.Total.StringFixed(2)))
	fmt.Fprintln(a.out, s.CheckoutLink(a.cfg.CheckoutURL))
	return nil
}

func newRenderCmd(a *app) *cobra.Command {
	var steps bool
	cmd := &cobra.Command{
		Use:   "render <op:id>...",
		Short: "Replay cart operations and print the cart",
		Long: `Replays cart operations in order against an empty cart and prints the result.

Operations:
  add:<id>[@price]   add one unit of a catalog product (price overrides the catalog)
  inc:<id>           one more unit of a line already in the cart
  dec:<id>           one less unit; the line is removed at zero`,
		Example: `  basket render add:latte add:latte dec:latte add:mug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := a.parseOps(args)
			if err != nil {
				return err
			}
			return a.runRender(events, steps)
		},
	}
	cmd.Flags().BoolVar(&steps, "steps", false, "print the cart after every operation")
	return cmd
}

func (a *app) parseOps(args []string) ([]cart.Event, error) {
	events := make([]cart.Event, 0, len(args))
	for _, arg := range args {
		op, id, ok := strings.Cut(arg, ":")
		if !ok || id == "" {
			return nil, usageErr("bad operation %q, want op:id", arg)
		}
		switch op {
		case "add":
			id, price, hasPrice := strings.Cut(id, "@")
			p, found := a.catalog.Lookup(id)
			if !found {
				return nil, fmt.Errorf("%w: %s", cart.ErrUnknownProduct, id)
			}
			if hasPrice {
				d, err := catalog.ParsePrice(price)
				if err != nil {
					return nil, usageErr("%s: %v", arg, err)
				}
				p.Price = d
			}
			events = append(events, cart.AddEvent{ID: p.ID, UnitPrice: p.Price, Product: p.Name})
		case "inc":
			events = append(events, cart.IncreaseEvent{ID: id})
		case "dec":
			events = append(events, cart.DecreaseEvent{ID: id})
		default:
			return nil, usageErr("unknown operation %q in %q", op, arg)
		}
	}
	return events, nil
}

// runRender stops at the first rejected operation.
func (a *app) runRender(events []cart.Event, steps bool) error {
	var p cart.Presenter
	if steps {
		p = a.printPresenter()
	}
	ctrl := cart.NewController(cart.NewStore(), p, a.logger)
	for i, ev := range events {
		if _, err := ctrl.Dispatch(ev); err != nil {
			if !steps {
				a.printPresenter().Present(cart.Render(ctrl.Store().Items()), nil)
			}
			return fmt.Errorf("operation %d: %w", i+1, err)
		}
	}
	if !steps {
		a.printPresenter().Present(cart.Render(ctrl.Store().Items()), nil)
	}
	return nil
}

func newCheckoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <link>",
		Short: "Price the cart encoded in a checkout link",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageErr("checkout takes exactly one link")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheckout(args[0])
		},
	}
}

func (a *app) runCheckout(link string) error {
	lines, err := cart.ParseCheckout(link)
	if err != nil {
		return err
	}
	store, err := cart.Replay(lines, a.catalog)
	if err != nil {
		return err
	}
	ref := uuid.New()
	s := cart.Render(store.Items())
	a.logger.Info("checkout priced",
		zap.String("order", ref.String()),
		zap.Int("lines", len(s.Rows)),
		zap.String("total", s.Total.String()),
	)
	t := ui.Current()
	fmt.Fprintln(a.out, t.Title.Render("Order "+ref.String()))
	fmt.Fprintln(a.out, ui.CartTable(s, "", -1))
	return nil
}

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the products",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := ui.Current()
			lines := []string{t.Title.Render("Products")}
			for _, p := range a.catalog.Products() {
				line := fmt.Sprintf("%-12s %-24s %8s", p.ID, p.Name, p.Price.StringFixed(2))
				if p.Description != "" {
					line += "  " + t.Muted.Render(p.Description)
				}
				lines = append(lines, line)
			}
			if a.catalog.Len() == 0 {
				lines = append(lines, t.Muted.Render("no products"))
			}
			fmt.Fprintln(a.out, ui.Panel(lines...))
			return nil
		},
	}
}

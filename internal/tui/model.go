package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Makepad-fr/basket/internal/cart"
	"github.com/Makepad-fr/basket/internal/model"
	"github.com/Makepad-fr/basket/internal/ui"
)

type focusArea int

const (
	focusProducts focusArea = iota
	focusCart
)

// Options configure the interactive shop.
type Options struct {
	CheckoutURL string
	ToastDelay  time.Duration
	Logger      *zap.Logger
}

// Model is the bubbletea model for the shop: a product list and the cart
// toast. All cart changes go through the controller.
type Model struct {
	products list.Model
	ctrl     *cart.Controller
	toast    *toast
	keys     keyMap
	help     help.Model

	focus       focusArea
	cartIndex   int
	checkoutURL string
	toastDelay  time.Duration
}

func New(products []model.Product, opt Options) Model {
	li := make([]list.Item, 0, len(products))
	for _, p := range products {
		li = append(li, productItem{p: p})
	}

	l := list.New(li, productDelegate{}, 0, 0)
	l.Title = "Products"
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("product", "products")

	t := &toast{}
	return Model{
		products:    l,
		ctrl:        cart.NewController(cart.NewStore(), t, opt.Logger),
		toast:       t,
		keys:        defaultKeys(),
		help:        help.New(),
		checkoutURL: opt.CheckoutURL,
		toastDelay:  opt.ToastDelay,
	}
}

// Run starts the program and returns the cart as it was when the user quit.
func Run(products []model.Product, opt Options) (cart.Summary, error) {
	p := tea.NewProgram(New(products, opt), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return cart.Summary{}, err
	}
	fm, ok := final.(Model)
	if !ok {
		return cart.Summary{}, fmt.Errorf("unexpected final model %T", final)
	}
	return fm.Summary(), nil
}

// Summary renders the current cart without presenting it.
func (m Model) Summary() cart.Summary {
	return cart.Render(m.ctrl.Store().Items())
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.products.SetSize(msg.Width/2, msg.Height-2)
		m.help.Width = msg.Width
		return m, nil

	case hideToastMsg:
		if msg.seq == m.toast.seq && m.focus != focusCart {
			m.toast.hide()
		}
		return m, nil

	case tea.KeyMsg:
		if m.products.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cart):
			if m.toast.visible {
				m.toast.hide()
				m.focus = focusProducts
				return m, nil
			}
			m.ctrl.Show()
			return m, m.toast.scheduleHide(m.toastDelay)
		case key.Matches(msg, m.keys.Focus):
			return m.toggleFocus()
		}
		if m.focus == focusCart {
			return m.updateCart(msg)
		}
		if key.Matches(msg, m.keys.Add) {
			return m.addSelected()
		}
	}

	var cmd tea.Cmd
	m.products, cmd = m.products.Update(msg)
	return m, cmd
}

func (m Model) addSelected() (tea.Model, tea.Cmd) {
	it, ok := m.products.SelectedItem().(productItem)
	if !ok {
		return m, nil
	}
	// Price comes from the catalog entry, never from rendered text.
	_, _ = m.ctrl.Dispatch(cart.AddEvent{ID: it.p.ID, UnitPrice: it.p.Price, Product: it.p.Name})
	m.refreshTitle()
	return m, m.toast.scheduleHide(m.toastDelay)
}

func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusCart {
		m.focus = focusProducts
		return m, m.toast.scheduleHide(m.toastDelay)
	}
	m.ctrl.Show()
	if m.ctrl.Store().Len() == 0 {
		return m, m.toast.scheduleHide(m.toastDelay)
	}
	m.focus = focusCart
	m.clampCartIndex()
	return m, nil
}

func (m Model) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.Summary().Rows
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cartIndex > 0 {
			m.cartIndex--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cartIndex < len(rows)-1 {
			m.cartIndex++
		}
	case key.Matches(msg, m.keys.Increase):
		if m.cartIndex < len(rows) {
			_, _ = m.ctrl.Dispatch(cart.IncreaseEvent{ID: rows[m.cartIndex].ID})
		}
	case key.Matches(msg, m.keys.Decrease):
		if m.cartIndex < len(rows) {
			_, _ = m.ctrl.Dispatch(cart.DecreaseEvent{ID: rows[m.cartIndex].ID})
		}
		if m.ctrl.Store().Len() == 0 {
			m.focus = focusProducts
			m.refreshTitle()
			return m, m.toast.scheduleHide(m.toastDelay)
		}
	}
	m.clampCartIndex()
	m.refreshTitle()
	return m, nil
}

func (m *Model) clampCartIndex() {
	n := m.ctrl.Store().Len()
	if m.cartIndex >= n {
		m.cartIndex = n - 1
	}
	if m.cartIndex < 0 {
		m.cartIndex = 0
	}
}

func (m *Model) refreshTitle() {
	t := ui.Current()
	n := m.ctrl.Store().Count()
	if n == 0 {
		m.products.Title = "Products"
		return
	}
	m.products.Title = fmt.Sprintf("Products  %s %d", t.SymCart, n)
}

func (m Model) View() string {
	left := m.products.View()
	if !m.toast.visible {
		return lipgloss.JoinVertical(lipgloss.Left, left, m.help.View(m.keys))
	}

	selected := -1
	if m.focus == focusCart {
		selected = m.cartIndex
	}
	s := m.toast.summary
	right := ui.CartTable(s, s.CheckoutLink(m.checkoutURL), selected)
	if m.toast.err != nil {
		t := ui.Current()
		right = lipgloss.JoinVertical(lipgloss.Left, right, t.Error.Render(t.SymFail+" "+m.toast.err.Error()))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keys))
}

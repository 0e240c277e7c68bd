package cart

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Makepad-fr/basket/internal/model"
)

const (
	checkoutParam = "cart"
	lineSep       = "|"
	qtySep        = ":"
)

// CheckoutLine is one "quantity:id" pair of a checkout link.
type CheckoutLine struct {
	ID       string
	Quantity int
}

// CheckoutQuery encodes lines as ?cart=|quantity:id|quantity:id...
func CheckoutQuery(items []model.LineItem) string {
	var b strings.Builder
	b.WriteString("?" + checkoutParam + "=")
	for _, it := range items {
		b.WriteString(lineSep)
		b.WriteString(strconv.Itoa(it.Quantity))
		b.WriteString(qtySep)
		b.WriteString(url.QueryEscape(it.ID))
	}
	return b.String()
}

// ParseCheckout reads the lines back from a full URL, a bare ?cart= query,
// or the raw |quantity:id value. Segments are split before ids are
// unescaped, so escaped separators inside an id survive.
func ParseCheckout(s string) ([]CheckoutLine, error) {
	value, err := checkoutValue(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(value, lineSep) {
		return nil, fmt.Errorf("%w: no items", ErrMalformedCheckout)
	}
	parts := strings.Split(value[len(lineSep):], lineSep)
	lines := make([]CheckoutLine, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		qty, rawID, found := strings.Cut(p, qtySep)
		if !found || rawID == "" {
			return nil, fmt.Errorf("%w: bad segment %q", ErrMalformedCheckout, p)
		}
		n, err := strconv.Atoi(qty)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: bad quantity in %q", ErrMalformedCheckout, p)
		}
		id, err := url.QueryUnescape(rawID)
		if err != nil || id == "" {
			return nil, fmt.Errorf("%w: bad id in %q", ErrMalformedCheckout, p)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrMalformedCheckout, id)
		}
		seen[id] = struct{}{}
		lines = append(lines, CheckoutLine{ID: id, Quantity: n})
	}
	return lines, nil
}

// checkoutValue returns the still-escaped cart value. A value that was
// escaped as a whole (leading %7C) is unescaped once.
func checkoutValue(s string) (string, error) {
	if strings.HasPrefix(s, lineSep) {
		return s, nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCheckout, err)
	}
	for _, kv := range strings.Split(u.RawQuery, "&") {
		k, v, _ := strings.Cut(kv, "=")
		if k != checkoutParam {
			continue
		}
		if !strings.HasPrefix(strings.ToUpper(v), "%7C") {
			return v, nil
		}
		dec, err := url.QueryUnescape(v)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedCheckout, err)
		}
		return dec, nil
	}
	return "", fmt.Errorf("%w: no %q parameter", ErrMalformedCheckout, checkoutParam)
}

// Catalog resolves product ids to products.
type Catalog interface {
	Lookup(id string) (model.Product, bool)
}

// Replay rebuilds a store from checkout lines, pricing each id from the
// catalog. The resulting cart order matches the order of lines.
func Replay(lines []CheckoutLine, c Catalog) (*Store, error) {
	s := NewStore()
	for i := len(lines) - 1; i >= 0; i-- {
		ln := lines[i]
		p, ok := c.Lookup(ln.ID)
		if !ok {
			return nil, fmt.Errorf("replay: %w: %s", ErrUnknownProduct, ln.ID)
		}
		prev, _ := s.Item(p.ID)
		if err := s.AddItem(p.ID, p.Price, p.Name); err != nil {
			return nil, err
		}
		s.setQuantity(s.index(p.ID), prev.Quantity+ln.Quantity)
	}
	return s, nil
}

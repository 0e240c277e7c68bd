package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/basket/internal/model"
)

// Catalog files are YAML; JSON files load too since JSON is valid YAML.
// The catalog is read-only, the cart itself is never written to disk.

var ErrInvalidCatalog = errors.New("invalid catalog")

type fileEntry struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Price       string `yaml:"price"`
	Description string `yaml:"description"`
}

type file struct {
	Products []fileEntry `yaml:"products"`
}

// Catalog is an ordered, id-indexed product list.
type Catalog struct {
	products []model.Product
	byID     map[string]int
}

func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	products := make([]model.Product, 0, len(f.Products))
	for i, e := range f.Products {
		price, err := ParsePrice(e.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: product %d (%s): %v", ErrInvalidCatalog, i+1, e.ID, err)
		}
		products = append(products, model.Product{
			ID:          strings.TrimSpace(e.ID),
			Name:        strings.TrimSpace(e.Name),
			Price:       price,
			Description: strings.TrimSpace(e.Description),
		})
	}
	return New(products)
}

// New validates products and indexes them by id.
func New(products []model.Product) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]int, len(products))}
	for i, p := range products {
		if err := validID(p.ID); err != nil {
			return nil, fmt.Errorf("%w: product %d: %v", ErrInvalidCatalog, i+1, err)
		}
		if p.Name == "" {
			p.Name = p.ID
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("%w: product %d (%s): negative price", ErrInvalidCatalog, i+1, p.ID)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// ParsePrice turns catalog or flag input into a non-negative amount.
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errors.New("empty price")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse price %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative price %s", d)
	}
	return d, nil
}

// ids travel inside checkout links, so the link separators are reserved.
func validID(id string) error {
	if id == "" {
		return errors.New("empty id")
	}
	if strings.ContainsAny(id, "|: \t\r\n") {
		return fmt.Errorf("id %q contains a reserved character", id)
	}
	return nil
}

func (c *Catalog) Products() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Lookup(id string) (model.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) Len() int { return len(c.products) }

// Default is the demo catalog used when no file is configured.
func Default() *Catalog {
	c, err := New([]model.Product{
		{ID: "espresso", Name: "Espresso", Price: decimal.RequireFromString("2.50"), Description: "Single shot"},
		{ID: "latte", Name: "Caffe Latte", Price: decimal.RequireFromString("3.90"), Description: "Espresso with steamed milk"},
		{ID: "croissant", Name: "Croissant", Price: decimal.RequireFromString("2.20")},
		{ID: "beans-1kg", Name: "House Blend 1kg", Price: decimal.RequireFromString("24.00"), Description: "Whole beans"},
		{ID: "mug", Name: "Logo Mug", Price: decimal.RequireFromString("9.99")},
	})
	if err != nil {
		panic(err)
	}
	return c
}

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_YAML(t *testing.T) {
	p := writeFile(t, "products.yaml", `
products:
  - id: latte
    name: Caffe Latte
    price: "3.90"
    description: Espresso with steamed milk
  - id: mug
    name: Logo Mug
    price: 9.99
  - id: sticker
    price: 0
`)
	c, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	products := c.Products()
	assert.Equal(t, []string{"latte", "mug", "sticker"}, []string{products[0].ID, products[1].ID, products[2].ID})

	latte, ok := c.Lookup("latte")
	require.True(t, ok)
	assert.Equal(t, "Caffe Latte", latte.Name)
	assert.Equal(t, "3.90", latte.Price.StringFixed(2))
	assert.Equal(t, "Espresso with steamed milk", latte.Description)

	mug, _ := c.Lookup("mug")
	assert.Equal(t, "9.99", mug.Price.StringFixed(2))

	sticker, _ := c.Lookup("sticker")
	assert.Equal(t, "sticker", sticker.Name, "name defaults to id")
	assert.True(t, sticker.Price.IsZero())

	_, ok = c.Lookup("nope")
	assert.False(t, ok)
}

func TestLoad_JSON(t *testing.T) {
	p := writeFile(t, "products.json", `{"products":[{"id":"p1","name":"Widget","price":10},{"id":"p2","name":"Gadget","price":"2.25"}]}`)
	c, err := Load(p)
	require.NoError(t, err)
	p2, ok := c.Lookup("p2")
	require.True(t, ok)
	assert.Equal(t, "2.25", p2.Price.StringFixed(2))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"negative price": "products: [{id: a, price: -1}]",
		"empty price":    "products: [{id: a, price: ''}]",
		"missing price":  "products: [{id: a}]",
		"bad price":      "products: [{id: a, price: ten}]",
		"empty id":       "products: [{id: '', price: 1}]",
		"pipe in id":     "products: [{id: 'a|b', price: 1}]",
		"colon in id":    "products: [{id: 'a:b', price: 1}]",
		"space in id":    "products: [{id: 'a b', price: 1}]",
		"duplicate id":   "products: [{id: a, price: 1}, {id: a, price: 2}]",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(body))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("products: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCatalog)
}

func TestParsePrice(t *testing.T) {
	d, err := ParsePrice(" 12.50 ")
	require.NoError(t, err)
	assert.Equal(t, "12.50", d.StringFixed(2))

	for _, bad := range []string{"", "  ", "abc", "-0.01", "1,50"} {
		_, err := ParsePrice(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Positive(t, c.Len())
	for _, p := range c.Products() {
		got, ok := c.Lookup(p.ID)
		require.True(t, ok)
		assert.Equal(t, p.Name, got.Name)
		assert.False(t, p.Price.IsNegative())
	}
}

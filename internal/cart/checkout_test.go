package cart

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/basket/internal/model"
)

type mapCatalog map[string]model.Product

func (m mapCatalog) Lookup(id string) (model.Product, bool) {
	p, ok := m[id]
	return p, ok
}

func TestCheckoutQuery_Format(t *testing.T) {
	st := NewStore()
	require.NoError(t, st.AddItem("a", price("1"), "A"))
	require.NoError(t, st.AddItem("b", price("1"), "B"))
	require.NoError(t, st.IncreaseItem("a"))
	assert.Equal(t, "?cart=|1:b|2:a", CheckoutQuery(st.Items()))
	assert.Equal(t, "?cart=", CheckoutQuery(nil))
}

func TestParseCheckout_Forms(t *testing.T) {
	want := []CheckoutLine{{ID: "p2", Quantity: 1}, {ID: "p1", Quantity: 2}}
	for _, in := range []string{
		"?cart=|1:p2|2:p1",
		"http://127.0.0.1:8080/?cart=|1:p2|2:p1",
		"/?page=2&cart=%7C1%3Ap2%7C2%3Ap1",
		"|1:p2|2:p1",
		"  |1:p2|2:p1\n",
	} {
		got, err := ParseCheckout(in)
		require.NoError(t, err, in)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ParseCheckout(%q) mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestParseCheckout_Malformed(t *testing.T) {
	for _, in := range []string{
		"",
		"?cart=",
		"?other=|1:p1",
		"?cart=1:p1",
		"?cart=|p1",
		"?cart=|x:p1",
		"?cart=|0:p1",
		"?cart=|-2:p1",
		"?cart=|1:",
		"?cart=|1:p1|",
		"?cart=|1:p1|2:p1",
	} {
		_, err := ParseCheckout(in)
		assert.ErrorIs(t, err, ErrMalformedCheckout, "input %q", in)
	}
}

func TestCheckout_RoundTrip(t *testing.T) {
	st := NewStore()
	require.NoError(t, st.AddItem("beans-1kg", price("24"), "Beans"))
	require.NoError(t, st.AddItem("mug", price("9.99"), "Mug"))
	require.NoError(t, st.IncreaseItem("beans-1kg"))

	lines, err := ParseCheckout(CheckoutQuery(st.Items()))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	for i, it := range st.Items() {
		assert.Equal(t, it.ID, lines[i].ID)
		assert.Equal(t, it.Quantity, lines[i].Quantity)
	}
}

func TestReplay_RebuildsOrderAndPrices(t *testing.T) {
	cat := mapCatalog{
		"p1": {ID: "p1", Name: "Widget", Price: price("10")},
		"p2": {ID: "p2", Name: "Gadget", Price: price("2.25")},
	}
	st, err := Replay([]CheckoutLine{{ID: "p2", Quantity: 1}, {ID: "p1", Quantity: 3}}, cat)
	require.NoError(t, err)

	assert.Equal(t, []string{"p2", "p1"}, ids(st))
	assertLine(t, st, "p1", 3, "30.00")
	assertLine(t, st, "p2", 1, "2.25")
	assert.Equal(t, "?cart=|1:p2|3:p1", CheckoutQuery(st.Items()))
}

func TestReplay_UnknownProduct(t *testing.T) {
	_, err := Replay([]CheckoutLine{{ID: "ghost", Quantity: 1}}, mapCatalog{})
	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestCheckout_RoundTripReservedCharacters(t *testing.T) {
	st := NewStore()
	for _, id := range []string{"a|b", "x:y", "with space", "50%+off"} {
		require.NoError(t, st.AddItem(id, price("1"), id))
	}
	require.NoError(t, st.IncreaseItem("a|b"))

	q := CheckoutQuery(st.Items())
	assert.Equal(t, "?cart=|1:50%25%2Boff|1:with+space|1:x%3Ay|2:a%7Cb", q)

	want := []CheckoutLine{
		{ID: "50%+off", Quantity: 1},
		{ID: "with space", Quantity: 1},
		{ID: "x:y", Quantity: 1},
		{ID: "a|b", Quantity: 2},
	}
	for _, in := range []string{
		q,
		"http://shop.local/checkout" + q,
		"|1:50%25%2Boff|1:with+space|1:x%3Ay|2:a%7Cb",
		"/?cart=" + url.QueryEscape(q[len("?cart="):]),
	} {
		got, err := ParseCheckout(in)
		require.NoError(t, err, in)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ParseCheckout(%q) mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestReplay_LargeQuantity(t *testing.T) {
	cat := mapCatalog{"p1": {ID: "p1", Name: "Widget", Price: price("2.5")}}
	lines, err := ParseCheckout("?cart=|9000000000000000000:p1")
	require.NoError(t, err)

	st, err := Replay(lines, cat)
	require.NoError(t, err)
	assertLine(t, st, "p1", 9000000000000000000, "22500000000000000000.00")
	assert.Equal(t, "?cart=|9000000000000000000:p1", CheckoutQuery(st.Items()))
}

func TestReplay_RepeatedLinesAccumulate(t *testing.T) {
	cat := mapCatalog{"p1": {ID: "p1", Name: "Widget", Price: price("3")}}
	st, err := Replay([]CheckoutLine{{ID: "p1", Quantity: 2}, {ID: "p1", Quantity: 4}}, cat)
	require.NoError(t, err)
	assertLine(t, st, "p1", 6, "18.00")
}

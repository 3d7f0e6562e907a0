package cart

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"DigiStore/internal/store"
)

func testProduct(id int, price, salePrice string) store.Product {
	p := store.Product{
		ID:        id,
		Name:      "Netflix Premium 1 tháng",
		Slug:      "netflix-premium-1-thang",
		Price:     decimal.RequireFromString(price),
		CreatedAt: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	if salePrice != "" {
		sp := decimal.RequireFromString(salePrice)
		p.SalePrice = &sp
	}
	return p
}

func newTestCart() *Cart {
	return New(NewMemStorage(), zap.NewNop())
}

func TestUnitPrice_DurationMultipliers(t *testing.T) {
	p := testProduct(1, "129000", "99000")

	cases := []struct {
		duration string
		want     string
	}{
		{"1", "99000"},
		{"3", "277200"}, // 99000 x 2.8
		{"6", "524700"},
		{"12", "990000"},
		{"99", "99000"}, // unknown duration falls back to x1
	}
	for _, tc := range cases {
		got := UnitPrice(p, tc.duration)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"duration %s: got %s want %s", tc.duration, got, tc.want)
	}
}

func TestUnitPrice_NoSalePrice(t *testing.T) {
	p := testProduct(2, "79000", "")
	assert.True(t, UnitPrice(p, "1").Equal(decimal.RequireFromString("79000")))
}

func TestCart_AddItem_MergesSameDuration(t *testing.T) {
	c := newTestCart()
	p := testProduct(1, "129000", "99000")

	c.AddItem(p, 1, "3")
	c.AddItem(p, 2, "3")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("277200")),
		"merge must not recompute the price snapshot")
}

func TestCart_AddItem_DifferentDurationsAreIndependentLines(t *testing.T) {
	c := newTestCart()
	p := testProduct(1, "129000", "")

	c.AddItem(p, 1, "1")
	c.AddItem(p, 1, "12")

	require.Len(t, c.Items(), 2)
	assert.Equal(t, 2, c.TotalItems())

	// price(P) + price(P)*10
	want := decimal.RequireFromString("129000").Add(decimal.RequireFromString("1290000"))
	assert.True(t, c.TotalPrice().Equal(want), "got %s want %s", c.TotalPrice(), want)
}

func TestCart_AddItem_OpensCart(t *testing.T) {
	c := newTestCart()
	assert.False(t, c.IsOpen())

	c.AddItem(testProduct(1, "59000", ""), 1, "1")
	assert.True(t, c.IsOpen())
}

func TestCart_PriceSnapshotSurvivesCatalogChange(t *testing.T) {
	c := newTestCart()
	p := testProduct(1, "129000", "99000")
	c.AddItem(p, 1, "1")

	// Catalog price changes after the add; the line keeps its snapshot.
	p.Price = decimal.RequireFromString("999000")
	p.SalePrice = nil

	items := c.Items()
	require.Len(t, items, 1)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("99000")))
}

func TestCart_UpdateQuantity(t *testing.T) {
	c := newTestCart()
	p := testProduct(1, "59000", "")

	c.AddItem(p, 1, "1")
	c.UpdateQuantity(1, 5)
	assert.Equal(t, 5, c.TotalItems())

	c.UpdateQuantity(1, 0)
	assert.Empty(t, c.Items())
	assert.Zero(t, c.TotalItems())
}

func TestCart_RemoveItem_DropsAllDurationVariants(t *testing.T) {
	c := newTestCart()
	p := testProduct(1, "59000", "")
	other := testProduct(2, "89000", "")

	c.AddItem(p, 1, "1")
	c.AddItem(p, 1, "3")
	c.AddItem(other, 1, "1")

	c.RemoveItem(1)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Product.ID)
}

func TestCart_Clear(t *testing.T) {
	st := NewMemStorage()
	c := New(st, zap.NewNop())

	c.AddItem(testProduct(1, "59000", ""), 2, "6")
	c.Clear()

	assert.Empty(t, c.Items())
	assert.True(t, c.TotalPrice().IsZero())

	_, ok, err := st.Get()
	require.NoError(t, err)
	assert.False(t, ok, "clear must empty the backing storage")
}

func TestCart_RoundTripThroughStorage(t *testing.T) {
	st := NewMemStorage()

	c := New(st, zap.NewNop())
	c.AddItem(testProduct(1, "129000", "99000"), 2, "3")
	c.AddItem(testProduct(2, "79000", ""), 1, "12")

	reloaded := New(st, zap.NewNop())
	items := reloaded.Items()
	require.Len(t, items, 2)

	assert.Equal(t, 1, items[0].Product.ID)
	assert.Equal(t, "3", items[0].Duration)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("277200")))

	assert.Equal(t, 2, items[1].Product.ID)
	assert.Equal(t, "12", items[1].Duration)
	assert.True(t, items[1].Price.Equal(decimal.RequireFromString("790000")))

	assert.Equal(t, c.TotalItems(), reloaded.TotalItems())
	assert.True(t, c.TotalPrice().Equal(reloaded.TotalPrice()))
}

func TestCart_CorruptStorageFallsBackToEmpty(t *testing.T) {
	st := NewMemStorage()
	require.NoError(t, st.Set([]byte("{not json")))

	c := New(st, zap.NewNop())
	assert.Empty(t, c.Items())
	assert.Zero(t, c.TotalItems())
}

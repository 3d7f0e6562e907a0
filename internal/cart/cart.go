package cart

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"DigiStore/internal/store"
)

// Item is one cart line. Product is a snapshot taken at add time and
// Price is the duration-scaled unit price frozen with it; neither is
// refreshed when the catalog changes, so totals stay derivable from
// local state alone.
type Item struct {
	Product  store.Product   `json:"product"`
	Quantity int             `json:"quantity"`
	Duration string          `json:"duration"`
	Price    decimal.Decimal `json:"price"`
}

// Duration codes are subscription lengths in months, each with a fixed
// price multiplier. Unknown codes fall back to x1.
var durationMultipliers = map[string]decimal.Decimal{
	"1":  decimal.NewFromInt(1),
	"3":  decimal.RequireFromString("2.8"),
	"6":  decimal.RequireFromString("5.3"),
	"12": decimal.NewFromInt(10),
}

// UnitPrice computes the duration-scaled unit price for a product:
// the sale price when set, the base price otherwise, times the
// duration multiplier.
func UnitPrice(p store.Product, duration string) decimal.Decimal {
	base := p.EffectivePrice()
	if mult, ok := durationMultipliers[duration]; ok {
		return base.Mul(mult)
	}
	return base
}

// Cart keeps the lines a shopper intends to purchase. Lines are keyed
// by (product id, duration); the same product under two durations is
// two independent lines. Every mutation is written through to the
// injected Storage.
type Cart struct {
	storage Storage
	log     *zap.Logger
	items   []Item
	open    bool
}

// New builds a cart from whatever Storage holds. A corrupt payload is
// logged and treated as an empty cart.
func New(storage Storage, log *zap.Logger) *Cart {
	c := &Cart{storage: storage, log: log}

	raw, ok, err := storage.Get()
	if err != nil || !ok {
		if err != nil && log != nil {
			log.Warn("cart storage read failed", zap.Error(err))
		}
		return c
	}

	if err := json.Unmarshal(raw, &c.items); err != nil {
		if log != nil {
			log.Warn("discarding corrupt cart state", zap.Error(err))
		}
		c.items = nil
	}
	return c
}

func (c *Cart) AddItem(p store.Product, quantity int, duration string) {
	if quantity <= 0 {
		quantity = 1
	}
	if duration == "" {
		duration = "1"
	}

	merged := false
	for i := range c.items {
		if c.items[i].Product.ID == p.ID && c.items[i].Duration == duration {
			// Merging never recomputes the price snapshot.
			c.items[i].Quantity += quantity
			merged = true
			break
		}
	}

	if !merged {
		c.items = append(c.items, Item{
			Product:  p,
			Quantity: quantity,
			Duration: duration,
			Price:    UnitPrice(p, duration),
		})
	}

	c.persist()
	c.open = true
}

// RemoveItem drops every line for the product, across all durations.
// AddItem merges on (product id, duration) but removal is deliberately
// product-wide: the shipped storefront's remove control clears the
// product from the cart entirely.
func (c *Cart) RemoveItem(productID int) {
	kept := c.items[:0]
	for _, it := range c.items {
		if it.Product.ID != productID {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.persist()
}

func (c *Cart) UpdateQuantity(productID int, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity
		}
	}
	c.persist()
}

func (c *Cart) Clear() {
	c.items = nil
	if err := c.storage.Clear(); err != nil && c.log != nil {
		c.log.Warn("cart storage clear failed", zap.Error(err))
	}
}

func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// Open/IsOpen stand in for the cart drawer: AddItem opens it.
func (c *Cart) Open()        { c.open = true }
func (c *Cart) Close()       { c.open = false }
func (c *Cart) IsOpen() bool { return c.open }

// persist is fire and forget: a storage write failure is logged, never
// surfaced to the caller.
func (c *Cart) persist() {
	raw, err := json.Marshal(c.items)
	if err != nil {
		if c.log != nil {
			c.log.Warn("cart marshal failed", zap.Error(err))
		}
		return
	}
	if err := c.storage.Set(raw); err != nil && c.log != nil {
		c.log.Warn("cart storage write failed", zap.Error(err))
	}
}

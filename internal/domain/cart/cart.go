package cart

import (
	"balancestore/internal/domain/catalog"
)

// MaxQtyPerItem caps every line item regardless of declared stock.
const MaxQtyPerItem = 10

// DefaultStock is assumed when the caller has no stock information.
const DefaultStock = 10

// Item is one cart line. Qty is clamped by the Cart operations, never set
// directly. JSON tags match the persisted snapshot shape.
type Item struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`
	Qty   int     `json:"qty"`
}

// Cart is an insertion-ordered collection of Items, at most one per id.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Restore rebuilds a cart from a persisted snapshot, keeping order.
func Restore(items []Item) *Cart {
	c := &Cart{items: make([]Item, len(items))}
	copy(c.items, items)
	return c
}

// Add inserts the product or bumps its quantity by one, clamped to
// min(stock, MaxQtyPerItem). A first add of a zero-stock product yields a
// quantity-zero line; that mirrors the storefront's historical behavior.
func (c *Cart) Add(p catalog.Product) {
	maxQty := clampStock(p.Stock)

	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Qty = min(c.items[i].Qty+1, maxQty)
			return
		}
	}

	c.items = append(c.items, Item{
		ID:    p.ID,
		Title: p.Title,
		Price: p.Price(),
		Image: p.Image,
		Qty:   min(1, maxQty),
	})
}

// Remove deletes the line with the given id; no-op when absent.
func (c *Cart) Remove(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Increase bumps the quantity by one, clamped to min(availableStock,
// MaxQtyPerItem). Pass DefaultStock when stock is unknown.
func (c *Cart) Increase(id string, availableStock int) {
	maxQty := clampStock(availableStock)
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Qty = min(c.items[i].Qty+1, maxQty)
			return
		}
	}
}

// Decrease lowers the quantity by one, flooring at 1. Removing a line is
// only possible through Remove.
func (c *Cart) Decrease(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Qty = max(c.items[i].Qty-1, 1)
			return
		}
	}
}

// Clear empties the cart. Used once, after a successful checkout.
func (c *Cart) Clear() {
	c.items = nil
}

// Count is the sum of all quantities.
func (c *Cart) Count() int {
	total := 0
	for _, it := range c.items {
		total += it.Qty
	}
	return total
}

// Total is the sum of price*qty over all lines, unrounded.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.items {
		total += it.Price * float64(it.Qty)
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Items returns a copy of the ordered lines.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Find(id string) (Item, bool) {
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

func clampStock(stock int) int {
	return min(stock, MaxQtyPerItem)
}

// internal/domain/cart/entity.go
package cart

import (
	"io"
	"strings"
)

// EngravingSelection is an optional paid customization attached to a line
// item. LogoUpload is the in-memory upload handle for a logo that has not
// been stored yet; it never survives serialization, only LogoRef (the
// stored URL form) does.
type EngravingSelection struct {
	OptionID string  `json:"optionId"`
	Label    string  `json:"label"`
	Price    float64 `json:"price"`
	Text     string  `json:"text,omitempty"`
	LogoRef  string  `json:"logoRef,omitempty"`

	LogoUpload io.Reader `json:"-"`
}

// LineItem is one cart entry, keyed by product identity.
type LineItem struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Slug          string              `json:"slug,omitempty"`
	UnitPrice     float64             `json:"price"`
	ImageRef      string              `json:"image,omitempty"`
	AgeRestricted bool                `json:"ageRestricted,omitempty"`
	Engraving     *EngravingSelection `json:"engraving,omitempty"`
	Quantity      int                 `json:"quantity"`
}

// LineTotal is (unit price + engraving price) × quantity.
func (li LineItem) LineTotal() float64 {
	price := li.UnitPrice
	if li.Engraving != nil {
		price += li.Engraving.Price
	}
	return price * float64(li.Quantity)
}

// Cart is the shopper's intended purchase. It is a plain state container:
// every total is re-derived from the item list on each read, nothing is
// cached. Insertion order is preserved for display stability.
//
// The cart itself is not safe for concurrent use; the owning session layer
// serializes access.
type Cart struct {
	items []LineItem
}

// NewCart builds a cart from previously persisted items. Entries without a
// product id or with a non-positive quantity are dropped (a corrupt blob
// degrades, it never fails).
func NewCart(items []LineItem) *Cart {
	c := &Cart{items: make([]LineItem, 0, len(items))}
	for _, it := range items {
		if strings.TrimSpace(it.ID) == "" || it.Quantity < 1 {
			continue
		}
		c.items = append(c.items, it)
	}
	return c
}

// Add inserts item with quantity 1, or replaces the existing line with the
// same product id (new engraving and price win, quantity resets to 1).
// Adding never fails; the incoming Quantity field is ignored.
func (c *Cart) Add(item LineItem) {
	item.Quantity = 1
	if idx := c.indexOf(item.ID); idx >= 0 {
		c.items[idx] = item
		return
	}
	c.items = append(c.items, item)
}

// Remove deletes the line with the given product id; no-op when absent.
func (c *Cart) Remove(id string) {
	idx := c.indexOf(id)
	if idx < 0 {
		return
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
}

// SetQuantity sets the quantity for id; qty <= 0 removes the line.
// There is no stock ceiling known on this side, so no upper bound applies.
func (c *Cart) SetQuantity(id string, qty int) {
	if qty <= 0 {
		c.Remove(id)
		return
	}
	if idx := c.indexOf(id); idx >= 0 {
		c.items[idx].Quantity = qty
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = c.items[:0]
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int { return len(c.items) }

// TotalItems is the sum of quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is Σ (unit price + engraving price) × quantity.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, it := range c.items {
		total += it.LineTotal()
	}
	return total
}

// HasAgeRestrictedItems reports whether any line requires age confirmation.
func (c *Cart) HasAgeRestrictedItems() bool {
	for _, it := range c.items {
		if it.AgeRestricted {
			return true
		}
	}
	return false
}

// Serializable returns the item list in its storable form: engraving
// selections are cloned with the in-memory upload handle stripped, so only
// the URL form of a logo survives a reload.
func (c *Cart) Serializable() []LineItem {
	out := make([]LineItem, len(c.items))
	for i, it := range c.items {
		if it.Engraving != nil {
			eng := *it.Engraving
			eng.LogoUpload = nil
			it.Engraving = &eng
		}
		out[i] = it
	}
	return out
}

func (c *Cart) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

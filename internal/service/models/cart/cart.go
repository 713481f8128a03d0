package cart

import (
	"strconv"
	"strings"
)

// Cart is the session-scoped mapping of product id to requested quantity.
// A line with a non-positive quantity never exists: mutations that would
// produce one remove the line instead. The whole cart is serialized as a
// single blob per session by the cart store.
type Cart struct {
	Lines map[int64]int `json:"lines"`
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{Lines: map[int64]int{}}
}

// Add adds qty units to the product's line, summing with any existing line.
// A resulting quantity of zero or less removes the line.
func (c *Cart) Add(productID int64, qty int) {
	if c.Lines == nil {
		c.Lines = map[int64]int{}
	}

	next := c.Lines[productID] + qty
	if next <= 0 {
		delete(c.Lines, productID)

		return
	}
	c.Lines[productID] = next
}

// SetQuantity overwrites the product's line with the parsed quantity.
// An unparseable value counts as zero; zero or less removes the line.
func (c *Cart) SetQuantity(productID int64, raw string) {
	if c.Lines == nil {
		c.Lines = map[int64]int{}
	}

	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		qty = 0
	}

	if qty <= 0 {
		delete(c.Lines, productID)

		return
	}
	c.Lines[productID] = qty
}

// Remove deletes the product's line. No-op when absent.
func (c *Cart) Remove(productID int64) {
	delete(c.Lines, productID)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = map[int64]int{}
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Snapshot returns a copy of the mapping for totals computation.
func (c *Cart) Snapshot() map[int64]int {
	snap := make(map[int64]int, len(c.Lines))
	for id, qty := range c.Lines {
		snap[id] = qty
	}

	return snap
}

// ProductIDs returns the ids of all lines.
func (c *Cart) ProductIDs() []int64 {
	ids := make([]int64, 0, len(c.Lines))
	for id := range c.Lines {
		ids = append(ids, id)
	}

	return ids
}

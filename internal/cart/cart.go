// Package cart implements the visitor's cart: an ordered sequence of catalog
// entry references. The same entry may appear on several lines; lines are
// addressed strictly by position, never by entry ID, so removing a line with a
// duplicated entry always targets the exact line the visitor clicked.
package cart

import "auroracraft.gg/aurora-web/internal/catalog"

// Cart is the ordered list of entry IDs the visitor intends to buy.
// The zero value is an empty cart ready for use.
type Cart struct {
	ids []string
}

// Line pairs a cart position with its resolved catalog entry.
type Line struct {
	Index int
	Entry catalog.Entry
}

// FromIDs rebuilds a cart from a stored ID sequence (e.g. the session cookie).
func FromIDs(ids []string) *Cart {
	c := &Cart{}
	if len(ids) > 0 {
		c.ids = append(c.ids, ids...)
	}
	return c
}

// IDs returns the raw ID sequence for persistence.
func (c *Cart) IDs() []string {
	return append([]string(nil), c.ids...)
}

// Add appends a line referencing the entry. It never deduplicates.
func (c *Cart) Add(id string) {
	c.ids = append(c.ids, id)
}

// RemoveAt deletes exactly the line at index and shifts later lines down.
// Out-of-range indexes are a silent no-op.
func (c *Cart) RemoveAt(index int) {
	if index < 0 || index >= len(c.ids) {
		return
	}
	c.ids = append(c.ids[:index], c.ids[index+1:]...)
}

// Clear empties the cart. Safe to call repeatedly.
func (c *Cart) Clear() {
	c.ids = nil
}

// Len reports the number of lines, including ones that no longer resolve.
func (c *Cart) Len() int { return len(c.ids) }

// Lines resolves every line against the catalog. IDs that no longer resolve
// (e.g. a stale cookie after a catalog change) are dropped from the result but
// keep their original position numbering intact for removal.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.ids))
	for i, id := range c.ids {
		if e, ok := catalog.Lookup(id); ok {
			out = append(out, Line{Index: i, Entry: e})
		}
	}
	return out
}

// Total sums the resolved line prices in EGP. An empty cart totals 0.
func (c *Cart) Total() int64 {
	var total int64
	for _, ln := range c.Lines() {
		total += ln.Entry.Price
	}
	return total
}

// Free reports whether the cart qualifies for the free-claim checkout path.
func (c *Cart) Free() bool { return c.Total() == 0 }

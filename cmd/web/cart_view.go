package main

import (
	"auroracraft.gg/aurora-web/internal/cart"
	mw "auroracraft.gg/aurora-web/internal/middleware"
)

// CartView aggregates the data for the cart page and its fragments.
type CartView struct {
	Items []cart.Line
	Empty bool
	Count int
	Total int64
	Free  bool
	// CSRFToken repeats here so fragments can render standalone forms.
	CSRFToken string
}

func buildCartView(sd *mw.SessionData) CartView {
	c := cart.FromIDs(sd.Cart)
	lines := c.Lines()
	return CartView{
		Items:     lines,
		Empty:     len(lines) == 0,
		Count:     c.Len(),
		Total:     c.Total(),
		Free:      c.Free(),
		CSRFToken: sd.CSRFToken,
	}
}

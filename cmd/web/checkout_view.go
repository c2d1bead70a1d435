package main

import (
	"auroracraft.gg/aurora-web/internal/cart"
	"auroracraft.gg/aurora-web/internal/checkout"
	mw "auroracraft.gg/aurora-web/internal/middleware"
	"auroracraft.gg/aurora-web/internal/rates"
)

// MethodView is one selectable payment method with its transfer instructions.
type MethodView struct {
	ID             string
	Label          string
	Selected       bool
	TargetLabel    string
	TargetValue    string
	TransferAmount string
	ConvertsToSAR  bool
}

// CheckoutView drives the checkout page: cart summary, payment methods, the
// live quote, and any error plus preserved form fields after a failed submit.
type CheckoutView struct {
	Items []cart.Line
	Total int64
	Free  bool
	Quote rates.Quote

	Methods  []MethodView
	Selected checkout.Method

	IGN        string
	Discord    string
	Error      string
	ErrorField string

	CSRFToken string
}

func buildCheckoutView(sd *mw.SessionData, selected checkout.Method, q rates.Quote) CheckoutView {
	c := cart.FromIDs(sd.Cart)
	total := c.Total()

	methods := make([]MethodView, 0, len(checkout.Methods()))
	for _, m := range checkout.Methods() {
		methods = append(methods, MethodView{
			ID:             string(m),
			Label:          m.Label(),
			Selected:       m == selected,
			TargetLabel:    m.TargetLabel(),
			TargetValue:    m.TargetValue(),
			TransferAmount: checkout.TransferAmount(m, total, q),
			ConvertsToSAR:  m.ConvertsToSAR(),
		})
	}

	return CheckoutView{
		Items:     c.Lines(),
		Total:     total,
		Free:      c.Free(),
		Quote:     q,
		Methods:   methods,
		Selected:  selected,
		CSRFToken: sd.CSRFToken,
	}
}

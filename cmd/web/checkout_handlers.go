package main

import (
	"io"
	"log"
	"net/http"
	"path/filepath"

	"auroracraft.gg/aurora-web/internal/cart"
	"auroracraft.gg/aurora-web/internal/checkout"
	handlersPkg "auroracraft.gg/aurora-web/internal/handlers"
	mw "auroracraft.gg/aurora-web/internal/middleware"
	"auroracraft.gg/aurora-web/internal/webhook"
)

const maxProofBytes = 8 << 20

// CheckoutHandler renders the checkout form. An empty cart has nothing to
// check out and goes back to the cart page.
func CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	sd := mw.GetSession(r)
	if len(sd.Cart) == 0 {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	method := checkout.ParseMethod(r.URL.Query().Get("method"))
	quote := ratesClient.Fetch(r.Context())
	view := buildCheckoutView(sd, method, quote)

	renderCheckout(w, r, sd, view)
}

// CheckoutSubmitHandler validates the multipart form and sends the order to
// the review webhook. Validation and delivery failures re-render the form
// with the error and every entered field preserved; the cart is only cleared
// after the webhook accepts the order.
func CheckoutSubmitHandler(w http.ResponseWriter, r *http.Request) {
	sd := mw.GetSession(r)
	if len(sd.Cart) == 0 {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}
	if err := r.ParseMultipartForm(maxProofBytes); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	quote := ratesClient.Fetch(r.Context())
	d := checkout.Draft{
		IGN:     r.FormValue("ign"),
		Discord: r.FormValue("discord"),
		Method:  checkout.ParseMethod(r.FormValue("method")),
		Proof:   readProof(r),
		Quote:   quote,
	}

	c := cart.FromIDs(sd.Cart)
	lines := c.Lines()
	total := c.Total()

	view := buildCheckoutView(sd, d.Method, quote)
	view.IGN = d.IGN
	view.Discord = d.Discord

	if verr := d.Validate(total); verr != nil {
		view.Error = verr.Message
		view.ErrorField = verr.Field
		renderCheckout(w, r, sd, view)
		return
	}

	s := &checkout.Submitter{Webhook: webhookClient}
	res, err := s.Submit(r.Context(), d, lines, total)
	if err != nil {
		log.Printf("checkout: submit failed: %v", err)
		view.Error = checkout.ErrSubmitFailed
		renderCheckout(w, r, sd, view)
		return
	}

	sd.Cart = nil
	sd.OrderRef = res.Ref
	sd.RegenerateID()
	http.Redirect(w, r, "/checkout/complete", http.StatusSeeOther)
}

// CheckoutCompleteHandler shows the confirmation for the session's last
// order. Without one there is nothing to confirm.
func CheckoutCompleteHandler(w http.ResponseWriter, r *http.Request) {
	sd := mw.GetSession(r)
	if sd.OrderRef == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	vm := handlersPkg.NewPageData(r.URL.Path, "Order Received")
	vm.CSRFToken = sd.CSRFToken
	vm.Content = map[string]any{"Ref": sd.OrderRef}
	renderPage(w, r, "complete", vm)
}

func renderCheckout(w http.ResponseWriter, r *http.Request, sd *mw.SessionData, view CheckoutView) {
	vm := handlersPkg.NewPageData("/checkout", "Checkout")
	vm.CartCount = len(sd.Cart)
	vm.CSRFToken = sd.CSRFToken
	vm.Content = view
	renderPage(w, r, "checkout", vm)
}

// readProof pulls the optional proof screenshot out of the multipart form.
func readProof(r *http.Request) *webhook.Attachment {
	f, fh, err := r.FormFile("proof")
	if err != nil {
		return nil
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxProofBytes))
	if err != nil || len(data) == 0 {
		return nil
	}
	name := filepath.Base(fh.Filename)
	if name == "" || name == "." {
		name = "proof.png"
	}
	return &webhook.Attachment{Filename: name, Data: data}
}

package main

import (
	"net/http"
	"strconv"

	"auroracraft.gg/aurora-web/internal/cart"
	"auroracraft.gg/aurora-web/internal/catalog"
	handlersPkg "auroracraft.gg/aurora-web/internal/handlers"
	mw "auroracraft.gg/aurora-web/internal/middleware"
)

// CartHandler renders the cart page.
func CartHandler(w http.ResponseWriter, r *http.Request) {
	sd := mw.GetSession(r)
	view := buildCartView(sd)

	vm := handlersPkg.NewPageData(r.URL.Path, "Your Cart")
	vm.CartCount = view.Count
	vm.CSRFToken = sd.CSRFToken
	vm.Content = view
	renderPage(w, r, "cart", vm)
}

// CartAddHandler appends one catalog entry to the session cart. Adding the
// same entry twice produces two lines.
func CartAddHandler(w http.ResponseWriter, r *http.Request) {
	sd := mw.GetSession(r)
	id := r.FormValue("id")
	if _, ok := catalog.Lookup(id); !ok {
		http.Error(w, "unknown item", http.StatusNotFound)
		return
	}
	c := cart.FromIDs(sd.Cart)
	c.Add(id)
	sd.Cart = c.IDs()
	sd.MarkDirty()

	respondCartChange(w, r, sd, "/")
}

// CartRemoveHandler removes the cart line at the submitted index. An index
// that no longer exists is a no-op, not an error.
func CartRemoveHandler(w http.ResponseWriter, r *http.Request) {
	sd := mw.GetSession(r)
	idx, err := strconv.Atoi(r.FormValue("index"))
	if err != nil {
		http.Error(w, "invalid index", http.StatusBadRequest)
		return
	}
	c := cart.FromIDs(sd.Cart)
	c.RemoveAt(idx)
	sd.Cart = c.IDs()
	sd.MarkDirty()

	respondCartChange(w, r, sd, "/cart")
}

// CartClearHandler empties the cart.
func CartClearHandler(w http.ResponseWriter, r *http.Request) {
	sd := mw.GetSession(r)
	sd.Cart = nil
	sd.MarkDirty()

	respondCartChange(w, r, sd, "/cart")
}

// respondCartChange renders the cart table fragment for htmx callers and
// redirects everyone else.
func respondCartChange(w http.ResponseWriter, r *http.Request, sd *mw.SessionData, fallback string) {
	view := buildCartView(sd)
	if mw.IsHTMX(r.Context()) {
		w.Header().Set("HX-Trigger", `{"cart:updated":{"count":`+strconv.Itoa(view.Count)+`}}`)
		renderTemplate(w, r, "frag_cart_table", view)
		return
	}
	dest := r.Referer()
	if dest == "" {
		dest = fallback
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

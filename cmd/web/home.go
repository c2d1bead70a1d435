package main

import (
	"errors"
	"html/template"
	"net/http"

	"auroracraft.gg/aurora-web/internal/catalog"
	handlersPkg "auroracraft.gg/aurora-web/internal/handlers"
	mw "auroracraft.gg/aurora-web/internal/middleware"
	"auroracraft.gg/aurora-web/internal/mcstatus"
	"auroracraft.gg/aurora-web/internal/pages"
	"auroracraft.gg/aurora-web/internal/seo"
)

// HomeView is the landing page payload: server status plus the four store
// sections.
type HomeView struct {
	Status   mcstatus.Summary
	Address  string
	Sections []StoreSection
}

// StoreSection groups catalog entries under a storefront heading.
type StoreSection struct {
	Key     string
	Title   string
	Tagline string
	Entries []catalog.Entry
}

func storeSections() []StoreSection {
	return []StoreSection{
		{Key: "ranks", Title: "Server Ranks", Tagline: "Permanent ranks with perks that grow with you.", Entries: catalog.Ranks()},
		{Key: "keys", Title: "Crate Keys", Tagline: "Half price while the nebula sale lasts.", Entries: catalog.Keys()},
		{Key: "kits", Title: "Kits", Tagline: "Gear up the moment you spawn.", Entries: catalog.Kits()},
		{Key: "items", Title: "Items", Tagline: "Single pieces for the discerning astronaut.", Entries: catalog.Items()},
	}
}

func resolveServerAddress() string {
	if serverAddress != "" {
		return serverAddress
	}
	return handlersPkg.DefaultServer
}

// HomeHandler renders the landing page.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	addr := resolveServerAddress()
	view := HomeView{
		Status:   statusClient.FetchSummary(r.Context(), addr),
		Address:  addr,
		Sections: storeSections(),
	}

	vm := handlersPkg.NewPageData(r.URL.Path, handlersPkg.SiteName)
	vm.SEO.Title = handlersPkg.SiteName + " – Minecraft Community Server"
	vm.SEO.OG.Type = "website"
	vm.CartCount = len(mw.GetSession(r).Cart)
	vm.CSRFToken = mw.GetSession(r).CSRFToken
	vm.Content = view

	ld := []template.JS{
		seo.JSON(seo.Organization(handlersPkg.SiteName, "https://auroracraft.gg", "")),
		seo.JSON(seo.WebSite(handlersPkg.SiteName, "https://auroracraft.gg")),
	}
	for _, e := range catalog.Ranks() {
		ld = append(ld, seo.JSON(seo.Product(e.Name, e.Description, e.ID, e.Price)))
	}
	vm.SEO.JSONLD = ld

	renderPage(w, r, "home", vm)
}

// StatusFrag renders the server status card; the home page polls it.
func StatusFrag(w http.ResponseWriter, r *http.Request) {
	addr := resolveServerAddress()
	data := map[string]any{
		"Status":  statusClient.FetchSummary(r.Context(), addr),
		"Address": addr,
	}
	renderTemplate(w, r, "frag_status", data)
}

// ContentPageHandler serves the markdown-backed static pages. The slug is the
// request path itself ("/rules" -> rules).
func ContentPageHandler(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Path[1:]
	page, err := pageStore.Get(slug)
	if err != nil {
		if errors.Is(err, pages.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "content unavailable", http.StatusInternalServerError)
		return
	}

	vm := handlersPkg.NewPageData(r.URL.Path, page.Title)
	vm.CartCount = len(mw.GetSession(r).Cart)
	vm.CSRFToken = mw.GetSession(r).CSRFToken
	vm.SEO.Description = page.Subtitle
	vm.Content = page

	w.Header().Set("Cache-Control", "public, max-age=600")
	if !page.UpdatedAt.IsZero() {
		w.Header().Set("Last-Modified", page.UpdatedAt.UTC().Format(http.TimeFormat))
	}
	renderPage(w, r, "content", vm)
}

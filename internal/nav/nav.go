package nav

import (
	"strings"
)

// Item represents a top-level navigation item.
type Item struct {
	Path  string // e.g. "/rules"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/", Label: "Home"},
	{Path: "/rules", Label: "Rules"},
	{Path: "/cart", Label: "Cart"},
}

// Footer lists the legal links rendered in the page footer.
var Footer = []Item{
	{Path: "/rules", Label: "Server Rules"},
	{Path: "/terms", Label: "Terms of Service"},
	{Path: "/privacy", Label: "Privacy Policy"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/cart" or "/cart/..."
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}

package seo

import (
	"encoding/json"
	"html/template"
)

// JSON marshals v to compact JSON safe for a ld+json script block. It returns
// an empty value on error.
func JSON(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return template.JS(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	return m
}

// Product returns a product schema payload for a store entry. priceEGP of
// zero emits no offer block.
func Product(name, description, sku string, priceEGP int64) map[string]any {
	m := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Product",
		"name":        name,
		"description": description,
	}
	if sku != "" {
		m["sku"] = sku
	}
	if priceEGP > 0 {
		m["offers"] = map[string]any{
			"@type":         "Offer",
			"price":         priceEGP,
			"priceCurrency": "EGP",
			"availability":  "https://schema.org/InStock",
		}
	}
	return m
}

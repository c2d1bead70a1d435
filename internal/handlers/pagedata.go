package handlers

import (
	"os"
	"time"

	"auroracraft.gg/aurora-web/internal/nav"
	"auroracraft.gg/aurora-web/internal/seo"
)

// Site identity surfaced to every template.
const (
	SiteName      = "Aurora Craft"
	SiteTagline   = "Explore the Cosmos. Build your Galaxy."
	DefaultServer = "auroracraft.playghosting.com"
	DiscordURL    = "https://discord.gg/aF6GYxj68x"
)

// PageData is the shared layout view model; every page embeds it.
type PageData struct {
	Title     string
	SEO       seo.Meta
	Analytics Analytics

	Path          string
	Nav           []nav.RenderedItem
	FooterNav     []nav.Item
	CartCount     int
	CSRFToken     string
	ServerAddress string
	DiscordURL    string
	Year          int

	// Per-page payload
	Content any
}

// NewPageData builds the layout fields for the given request path.
func NewPageData(path, title string) PageData {
	return PageData{
		Title:         title,
		Path:          path,
		Nav:           nav.Build(path),
		FooterNav:     nav.Footer,
		ServerAddress: DefaultServer,
		DiscordURL:    DiscordURL,
		Year:          time.Now().Year(),
		Analytics:     LoadAnalyticsFromEnv(),
		SEO: seo.Meta{
			Title:       title + " | " + SiteName,
			Description: SiteTagline,
		},
	}
}

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
	GTMContainerID   string // e.g. GTM-XXXXXXX
	Debug            bool
}

// LoadAnalyticsFromEnv builds Analytics from environment variables.
func LoadAnalyticsFromEnv() Analytics {
	return Analytics{
		GA4MeasurementID: os.Getenv("AURORA_WEB_GA_MEASUREMENT_ID"),
		GTMContainerID:   os.Getenv("AURORA_WEB_GTM_CONTAINER_ID"),
		Debug:            os.Getenv("AURORA_WEB_ANALYTICS_DEBUG") != "",
	}
}

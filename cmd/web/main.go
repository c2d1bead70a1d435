package main

import (
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"auroracraft.gg/aurora-web/internal/format"
	mw "auroracraft.gg/aurora-web/internal/middleware"
	"auroracraft.gg/aurora-web/internal/mcstatus"
	"auroracraft.gg/aurora-web/internal/pages"
	"auroracraft.gg/aurora-web/internal/rates"
	"auroracraft.gg/aurora-web/internal/webhook"
)

const (
	defaultStatusAPIBase = "https://api.mcsrvstat.us"
	defaultRatesAPIBase  = "https://open.er-api.com"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	contentDir   = "content"
	// devMode is set in main() based on env: AURORA_WEB_DEV (preferred) or DEV (fallback)
	devMode   bool
	tmplCache *template.Template

	// shared clients, swapped by tests
	statusClient  *mcstatus.Client
	ratesClient   *rates.Client
	webhookClient *webhook.Client
	pageStore     *pages.Store
	serverAddress string
)

func main() {
	// Flags/environment
	var (
		addr        string
		tmplPath    string
		pubPath     string
		contentPath string
	)
	// Port resolution: prefer AURORA_WEB_PORT, then the platform's PORT, else 8080
	port := os.Getenv("AURORA_WEB_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}
	flag.StringVar(&addr, "addr", ":"+port, "HTTP listen address")
	flag.StringVar(&tmplPath, "templates", templatesDir, "templates directory")
	flag.StringVar(&pubPath, "public", publicDir, "public assets directory")
	flag.StringVar(&contentPath, "content", contentDir, "static page markdown directory")
	flag.Parse()

	templatesDir = tmplPath
	publicDir = pubPath
	contentDir = contentPath

	// Dev mode: prefer AURORA_WEB_DEV, fallback to DEV
	devMode = os.Getenv("AURORA_WEB_DEV") != "" || os.Getenv("DEV") != ""

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			log.Fatalf("parse templates: %v", err)
		}
		tmplCache = tc
	}

	statusClient = mcstatus.NewClient(envOr("AURORA_WEB_STATUS_API_BASE_URL", defaultStatusAPIBase))
	ratesClient = rates.NewClient(envOr("AURORA_WEB_RATES_API_BASE_URL", defaultRatesAPIBase))
	webhookClient = webhook.NewClient(os.Getenv("AURORA_WEB_WEBHOOK_URL"))
	pageStore = pages.NewStore(contentDir)
	serverAddress = envOr("AURORA_WEB_SERVER_ADDRESS", "")
	if !webhookClient.Configured() {
		log.Printf("webhook: AURORA_WEB_WEBHOOK_URL not set; submissions run in bypass mode")
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("web listening on %s (devMode=%v)", addr, devMode)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %v", err)
	}
}

// newRouter wires middleware and routes; tests build the same stack.
func newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Session)
	r.Use(mw.CSRF)
	r.Use(orderFlag)
	r.Use(mw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Static assets under /assets/
	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(publicDir, "assets"), "/assets"))
	r.Handle("/assets/*", assets)

	r.Get("/", HomeHandler)
	r.Get("/status/frag", StatusFrag)
	r.Get("/rules", ContentPageHandler)
	r.Get("/privacy", ContentPageHandler)
	r.Get("/terms", ContentPageHandler)

	r.Get("/cart", CartHandler)
	r.Post("/cart/add", CartAddHandler)
	r.Post("/cart/remove", CartRemoveHandler)
	r.Post("/cart/clear", CartClearHandler)

	r.Get("/checkout", CheckoutHandler)
	r.Post("/checkout", CheckoutSubmitHandler)
	r.Get("/checkout/complete", CheckoutCompleteHandler)

	return r
}

// orderFlag drops the session's completed-order reference once the visitor
// navigates anywhere other than the confirmation page. Asset, fragment, and
// health requests issued while that page is open don't count as navigation.
func orderFlag(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		skip := r.Method != http.MethodGet ||
			r.URL.Path == "/checkout/complete" ||
			r.URL.Path == "/healthz" ||
			r.URL.Path == "/status/frag" ||
			strings.HasPrefix(r.URL.Path, "/assets/")
		if !skip {
			if sd := mw.GetSession(r); sd != nil && sd.OrderRef != "" {
				sd.OrderRef = ""
				sd.MarkDirty()
			}
		}
		next.ServeHTTP(w, r)
	})
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now":      time.Now,
		"fmtEGP":   format.FmtEGP,
		"fmtTotal": format.FmtTotal,
		"fmtSAR":   format.FmtSAR,
		"fmtRate":  format.FmtRate,
		"fmtDate":  format.FmtDate,
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

func lookupTemplates(w http.ResponseWriter) *template.Template {
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return nil
		}
		return tc
	}
	if tmplCache == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return nil
	}
	return tmplCache
}

// renderPage executes the named full-page template ("page_<name>").
// In dev mode, templates are reparsed on each request.
func renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	t := lookupTemplates(w)
	if t == nil {
		return
	}
	if err := t.ExecuteTemplate(w, "page_"+name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
		return
	}
}

// renderTemplate executes a fragment template by exact name.
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	t := lookupTemplates(w)
	if t == nil {
		return
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
		return
	}
}

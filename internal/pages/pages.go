// Package pages serves the site's static pages (rules, privacy, terms) from
// local markdown files with YAML front matter. Bodies are rendered to HTML
// once and cached; the rendered HTML is sanitized before it reaches templates.
package pages

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no page exists for a slug.
var ErrNotFound = errors.New("pages: not found")

const defaultDir = "content"

// Page is a rendered static page ready for the layout template.
type Page struct {
	Slug      string
	Title     string
	Subtitle  string
	UpdatedAt time.Time
	Body      template.HTML
}

type frontMatter struct {
	Title     string `yaml:"title"`
	Subtitle  string `yaml:"subtitle"`
	UpdatedAt string `yaml:"updated_at"`
}

// Store reads and renders pages from a content directory.
type Store struct {
	dir      string
	markdown goldmark.Markdown
	policy   *bluemonday.Policy

	mu    sync.RWMutex
	cache map[string]cacheEntry
	ttl   time.Duration
}

type cacheEntry struct {
	page    Page
	expires time.Time
}

// NewStore builds a Store rooted at dir; an empty dir uses "content".
func NewStore(dir string) *Store {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = defaultDir
	}
	return &Store{
		dir:      dir,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy:   bluemonday.UGCPolicy(),
		cache:    map[string]cacheEntry{},
		ttl:      5 * time.Minute,
	}
}

// SetCacheTTL overrides the render cache lifetime and drops cached entries
// (primarily for tests).
func (s *Store) SetCacheTTL(d time.Duration) {
	if d <= 0 {
		d = time.Minute
	}
	s.mu.Lock()
	s.ttl = d
	s.cache = map[string]cacheEntry{}
	s.mu.Unlock()
}

// Get returns the rendered page for slug, reading and rendering the markdown
// source when the cache has expired.
func (s *Store) Get(slug string) (Page, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Page{}, ErrNotFound
	}

	s.mu.RLock()
	entry, ok := s.cache[slug]
	ttl := s.ttl
	s.mu.RUnlock()
	if ok && time.Now().Before(entry.expires) {
		return entry.page, nil
	}

	page, err := s.load(slug)
	if err != nil {
		return Page{}, err
	}
	s.mu.Lock()
	s.cache[slug] = cacheEntry{page: page, expires: time.Now().Add(ttl)}
	s.mu.Unlock()
	return page, nil
}

func (s *Store) load(slug string) (Page, error) {
	file := filepath.Join(s.dir, slug+".md")
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Page{}, ErrNotFound
		}
		return Page{}, err
	}

	fm, body := splitFrontMatter(string(data))
	var front frontMatter
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("pages: parse front matter %s: %w", file, err)
		}
	}

	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(body), &buf); err != nil {
		return Page{}, fmt.Errorf("pages: render %s: %w", file, err)
	}
	safe := s.policy.SanitizeBytes(buf.Bytes())

	page := Page{
		Slug:     slug,
		Title:    strings.TrimSpace(front.Title),
		Subtitle: strings.TrimSpace(front.Subtitle),
		Body:     template.HTML(safe),
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	page.UpdatedAt = parseDate(front.UpdatedAt)
	if page.UpdatedAt.IsZero() {
		if info, err := os.Stat(file); err == nil {
			page.UpdatedAt = info.ModTime()
		}
	}
	return page, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] -= 'a' - 'A'
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.Trim(strings.ToLower(strings.TrimSpace(slug)), "/")
	if slug == "" || strings.Contains(slug, "..") {
		return ""
	}
	if strings.ContainsAny(slug, "/\\") {
		return ""
	}
	return slug
}

// Package content loads the page data that drives the informational pages.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/mindcare-edu/mindcare/internal/validation"
)

//go:embed defaults
var defaults embed.FS

const (
	siteFile     = "site.yaml"
	pagesPattern = "pages/**/*.{yaml,yml}"
)

var (
	// ErrDuplicatePath is returned when two pages claim the same route, or a
	// page claims a route the server handles itself.
	ErrDuplicatePath = errors.New("duplicate page path")
	// ErrInvalidPath is returned for a page path that is not a clean route.
	ErrInvalidPath = errors.New("invalid page path")
)

// reservedPaths are served by the interactive handlers. A page may not claim
// one of them or anything below it.
var reservedPaths = []string{
	"/chatbot",
	"/mood-tracker",
	"/api",
	"/ws",
	"/healthz",
	"/metrics",
	"/style.css",
	"/app.js",
	"/search-index.json",
}

// Catalog is the loaded site content.
type Catalog struct {
	Site  Site
	Pages []Page

	byPath map[string]int
}

// Page looks a page up by route path.
func (c *Catalog) Page(path string) (Page, bool) {
	i, ok := c.byPath[path]
	if !ok {
		return Page{}, false
	}
	return c.Pages[i], true
}

// Load reads the embedded content and applies files from overrideDir on top.
// Override pages replace embedded pages with the same slug. An empty overrideDir
// loads the embedded content only.
func Load(overrideDir string) (*Catalog, error) {
	base, err := fs.Sub(defaults, "defaults")
	if err != nil {
		return nil, fmt.Errorf("opening embedded content: %w", err)
	}
	layers := []fs.FS{base}
	if overrideDir != "" {
		if _, err := os.Stat(overrideDir); err != nil {
			return nil, fmt.Errorf("content dir: %w", err)
		}
		layers = append(layers, os.DirFS(overrideDir))
	}
	return LoadFS(layers...)
}

// LoadFS builds a catalog from layered file systems. Later layers win.
func LoadFS(layers ...fs.FS) (*Catalog, error) {
	var (
		site    Site
		hasSite bool
		bySlug  = map[string]Page{}
	)

	for _, fsys := range layers {
		if raw, err := fs.ReadFile(fsys, siteFile); err == nil {
			site = Site{}
			if err := decode(raw, &site); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", siteFile, err)
			}
			hasSite = true
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", siteFile, err)
		}

		matches, err := doublestar.Glob(fsys, pagesPattern)
		if err != nil {
			return nil, fmt.Errorf("globbing pages: %w", err)
		}
		slices.Sort(matches)
		for _, name := range matches {
			raw, err := fs.ReadFile(fsys, name)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", name, err)
			}
			var p Page
			if err := decode(raw, &p); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", name, err)
			}
			if p.Slug == "" {
				p.Slug = strings.TrimSuffix(path.Base(name), path.Ext(name))
			}
			bySlug[p.Slug] = p
		}
	}

	if !hasSite {
		return nil, fmt.Errorf("%s not found", siteFile)
	}
	return newCatalog(site, bySlug)
}

func newCatalog(site Site, bySlug map[string]Page) (*Catalog, error) {
	v := validation.New()
	if err := v.RegisterString("section_kind", func(s string) bool {
		return slices.Contains(Kinds, SectionKind(s))
	}); err != nil {
		return nil, err
	}

	if err := v.Struct(site); err != nil {
		return nil, fmt.Errorf("site: %w", err)
	}

	pages := make([]Page, 0, len(bySlug))
	for _, p := range bySlug {
		if err := v.Struct(p); err != nil {
			return nil, fmt.Errorf("page %s: %w", p.Slug, err)
		}
		if err := checkPath(p.Path); err != nil {
			return nil, fmt.Errorf("page %s: %w", p.Slug, err)
		}
		pages = append(pages, p)
	}
	slices.SortFunc(pages, func(a, b Page) int {
		if a.Order != b.Order {
			return a.Order - b.Order
		}
		return strings.Compare(a.Slug, b.Slug)
	})

	c := &Catalog{Site: site, Pages: pages, byPath: make(map[string]int, len(pages))}
	for i, p := range pages {
		if prev, ok := c.byPath[p.Path]; ok {
			return nil, fmt.Errorf("%w: %s used by %s and %s", ErrDuplicatePath, p.Path, pages[prev].Slug, p.Slug)
		}
		c.byPath[p.Path] = i
	}
	return c, nil
}

// checkPath rejects routes that are not in canonical form or that collide with
// the interactive handlers.
func checkPath(p string) error {
	if path.Clean(p) != p || strings.Contains(p, "..") || strings.ContainsAny(p, "{}*\\") {
		return fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	for _, r := range reservedPaths {
		if p == r || strings.HasPrefix(p, r+"/") {
			return fmt.Errorf("%w: %s is reserved", ErrDuplicatePath, p)
		}
	}
	return nil
}

func decode(raw []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	return dec.Decode(out)
}

package site

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mindcare-edu/mindcare/internal/content"
	"github.com/mindcare-edu/mindcare/internal/progress"
)

// ErrOutsideOutput is returned when a page would be written outside the
// export directory.
var ErrOutsideOutput = errors.New("page path escapes output dir")

// Exporter writes the content pages as a static site.
type Exporter struct {
	catalog  *content.Catalog
	renderer *Renderer
	reporter progress.Reporter
}

// NewExporter creates an exporter. A nil reporter disables progress output.
func NewExporter(catalog *content.Catalog, reporter progress.Reporter) (*Exporter, error) {
	renderer, err := NewRenderer(catalog.Site)
	if err != nil {
		return nil, err
	}
	if reporter == nil {
		reporter = progress.Nop{}
	}
	return &Exporter{catalog: catalog, renderer: renderer, reporter: reporter}, nil
}

// Export writes every page to outputDir as <path>/index.html along with the
// 404 page, the shared assets and search-index.json.
func (e *Exporter) Export(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	e.reporter.Start(len(e.catalog.Pages))
	defer e.reporter.Finish()

	for i, p := range e.catalog.Pages {
		var buf bytes.Buffer
		if err := e.renderer.Page(&buf, p, nil, nil); err != nil {
			return fmt.Errorf("page %s: %w", p.Slug, err)
		}
		file, err := pagePath(outputDir, p.Path)
		if err != nil {
			return fmt.Errorf("page %s: %w", p.Slug, err)
		}
		if err := writeFile(file, buf.Bytes()); err != nil {
			return err
		}
		e.reporter.Update(i+1, p.Path)
	}

	var notFound bytes.Buffer
	if err := e.renderer.NotFound(&notFound); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(outputDir, "404.html"), notFound.Bytes()); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(outputDir, "style.css"), []byte(cssContent)); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(outputDir, "app.js"), []byte(jsContent)); err != nil {
		return err
	}
	if err := WriteSearchIndex(BuildSearchIndex(e.catalog), filepath.Join(outputDir, "search-index.json")); err != nil {
		return fmt.Errorf("writing search index: %w", err)
	}
	return nil
}

// pageFile maps a route path to its file: "/" is index.html, "/about" is about/index.html.
func pageFile(route string) string {
	route = strings.Trim(route, "/")
	if route == "" {
		return "index.html"
	}
	return filepath.Join(filepath.FromSlash(route), "index.html")
}

// pagePath joins a route's file onto outputDir and refuses results outside it.
func pagePath(outputDir, route string) (string, error) {
	file := filepath.Join(outputDir, pageFile(route))
	rel, err := filepath.Rel(outputDir, file)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %s", ErrOutsideOutput, route)
	}
	return file, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

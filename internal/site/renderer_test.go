package site

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindcare-edu/mindcare/internal/content"
)

func loadCatalog(t *testing.T) *content.Catalog {
	t.Helper()
	c, err := content.Load("")
	require.NoError(t, err)
	return c
}

func renderPage(t *testing.T, r *Renderer, c *content.Catalog, path string) string {
	t.Helper()
	p, ok := c.Page(path)
	require.True(t, ok, "page %s", path)
	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, p, nil, nil))
	return buf.String()
}

func TestRendererEveryPage(t *testing.T) {
	c := loadCatalog(t)
	r, err := NewRenderer(c.Site)
	require.NoError(t, err)

	for _, p := range c.Pages {
		t.Run(p.Slug, func(t *testing.T) {
			html := renderPage(t, r, c, p.Path)
			assert.Contains(t, html, "<!DOCTYPE html>")
			assert.Contains(t, html, "<title>"+p.Title+" | MindCare</title>")
			assert.NotContains(t, html, "ZgotmplZ")
		})
	}
}

func TestRendererActiveNavLink(t *testing.T) {
	c := loadCatalog(t)
	r, err := NewRenderer(c.Site)
	require.NoError(t, err)

	html := renderPage(t, r, c, "/about")
	assert.Contains(t, html, `<a href="/about" class="active" aria-current="page">About</a>`)
	assert.Contains(t, html, `<a href="/">Home</a>`)
}

func TestRendererContactPage(t *testing.T) {
	c := loadCatalog(t)
	r, err := NewRenderer(c.Site)
	require.NoError(t, err)

	html := renderPage(t, r, c, "/contact")
	assert.Contains(t, html, `href="tel:1-800-646-3227"`)
	assert.Contains(t, html, `<option value="general" selected>General Inquiry</option>`)
	assert.Contains(t, html, `<option value="press">Press &amp; Media</option>`)
	assert.Contains(t, html, `action="/contact#contact-form"`)
}

func TestRendererContactState(t *testing.T) {
	c := loadCatalog(t)
	r, err := NewRenderer(c.Site)
	require.NoError(t, err)
	p, _ := c.Page("/contact")

	st := &State{Contact: ContactForm{Name: "Ada <script>", ContactType: "technical"}}
	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, p, st, &Notice{Title: "Missing Information", Variant: "destructive"}))

	html := buf.String()
	assert.Contains(t, html, `value="Ada &lt;script&gt;"`)
	assert.Contains(t, html, `<option value="technical" selected>Technical Support</option>`)
	assert.Contains(t, html, `class="notice notice-destructive"`)
	assert.Contains(t, html, "Missing Information")
}

func TestRendererHighlightsCode(t *testing.T) {
	c := loadCatalog(t)
	r, err := NewRenderer(c.Site)
	require.NoError(t, err)

	html := renderPage(t, r, c, "/tech-stack")
	assert.Contains(t, html, "<pre")
	assert.NotContains(t, html, "```")
}

func TestRendererNotFound(t *testing.T) {
	r, err := NewRenderer(content.Site{Name: "MindCare"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.NotFound(&buf))
	assert.Contains(t, buf.String(), "Oops! Page not found")
	assert.Contains(t, buf.String(), "Return to Home")
}

func TestRendererUnknownSectionKind(t *testing.T) {
	r, err := NewRenderer(content.Site{Name: "MindCare"})
	require.NoError(t, err)

	p := content.Page{Path: "/x", Title: "X", Sections: []content.Section{{Kind: "carousel"}}}
	var buf bytes.Buffer
	assert.Error(t, r.Page(&buf, p, nil, nil))
}

func TestSafeHref(t *testing.T) {
	tests := []struct {
		in   string
		want template.URL
	}{
		{"/about", "/about"},
		{"#contact-form", "#contact-form"},
		{"https://988lifeline.org", "https://988lifeline.org"},
		{"mailto:support@mindcare.edu", "mailto:support@mindcare.edu"},
		{"tel:1-800-646-3227", "tel:1-800-646-3227"},
		{"javascript:alert(1)", "#"},
		{"//evil.example", "#"},
		{"about", "#"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, safeHref(tt.in), tt.in)
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, isActive("/", "/"))
	assert.False(t, isActive("/about", "/"))
	assert.True(t, isActive("/about", "/about"))
	assert.True(t, isActive("/about/team", "/about"))
	assert.False(t, isActive("/aboutus", "/about"))
}

package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindcare-edu/mindcare/internal/content"
)

type recordingReporter struct {
	total    int
	messages []string
	finished bool
}

func (r *recordingReporter) Start(total int)              { r.total = total }
func (r *recordingReporter) Update(_ int, message string) { r.messages = append(r.messages, message) }
func (r *recordingReporter) Finish()                      { r.finished = true }

func TestExport(t *testing.T) {
	c := loadCatalog(t)
	rep := &recordingReporter{}
	e, err := NewExporter(c, rep)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "site")
	require.NoError(t, e.Export(out))

	for _, name := range []string{
		"index.html",
		"about/index.html",
		"how-it-works/index.html",
		"contact/index.html",
		"404.html",
		"style.css",
		"app.js",
		"search-index.json",
	} {
		assert.FileExists(t, filepath.Join(out, name))
	}

	about, err := os.ReadFile(filepath.Join(out, "about", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(about), "About MindCare")

	assert.Equal(t, len(c.Pages), rep.total)
	assert.Len(t, rep.messages, len(c.Pages))
	assert.Equal(t, "/", rep.messages[0])
	assert.True(t, rep.finished)
}

func TestExportNilReporter(t *testing.T) {
	e, err := NewExporter(loadCatalog(t), nil)
	require.NoError(t, err)
	assert.NoError(t, e.Export(t.TempDir()))
}

func TestPageFile(t *testing.T) {
	assert.Equal(t, "index.html", pageFile("/"))
	assert.Equal(t, filepath.Join("about", "index.html"), pageFile("/about"))
	assert.Equal(t, filepath.Join("a", "b", "index.html"), pageFile("/a/b/"))
}

func TestExportRejectsEscapingPath(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "a", "b", "out")
	c := &content.Catalog{
		Site:  loadCatalog(t).Site,
		Pages: []content.Page{{Slug: "evil", Path: "/../../escaped", Title: "E", Headline: "E"}},
	}
	e, err := NewExporter(c, nil)
	require.NoError(t, err)

	err = e.Export(out)
	require.ErrorIs(t, err, ErrOutsideOutput)
	assert.NoFileExists(t, filepath.Join(root, "a", "escaped", "index.html"))
}

func TestPagePath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")

	got, err := pagePath(out, "/about")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "about", "index.html"), got)

	got, err = pagePath(out, "/")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "index.html"), got)

	for _, route := range []string{"/..", "/../x", "/a/../../x"} {
		_, err := pagePath(out, route)
		assert.ErrorIs(t, err, ErrOutsideOutput, route)
	}
}

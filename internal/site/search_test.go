package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSearchIndex(t *testing.T) {
	c := loadCatalog(t)
	entries := BuildSearchIndex(c)
	require.Len(t, entries, len(c.Pages))

	home := entries[0]
	assert.Equal(t, "/", home.Path)
	assert.Equal(t, "Home", home.Title)
	assert.Contains(t, home.Summary, "AI-powered mental health support")
	assert.Contains(t, home.Content, "Students Served")

	for _, e := range entries {
		assert.LessOrEqual(t, len(e.Content), maxSearchContent, e.Path)
		assert.NotContains(t, e.Content, "**", e.Path)
	}
}

func TestWriteSearchIndex(t *testing.T) {
	out := filepath.Join(t.TempDir(), "search-index.json")
	in := []SearchEntry{{Path: "/about", Title: "About", Summary: "s", Content: "c"}}
	require.NoError(t, WriteSearchIndex(in, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var got []SearchEntry
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, in, got)
}

func TestSearchRanking(t *testing.T) {
	entries := []SearchEntry{
		{Path: "/a", Title: "Impact", Content: "wellness wellness"},
		{Path: "/b", Title: "Wellness", Content: "nothing here"},
		{Path: "/c", Title: "Other", Summary: "student wellness"},
		{Path: "/d", Title: "Unrelated", Content: "unrelated"},
	}

	got := Search(entries, "Wellness", 0)
	require.Len(t, got, 3)
	assert.Equal(t, "/b", got[0].Path)
	assert.Equal(t, "/c", got[1].Path)
	assert.Equal(t, "/a", got[2].Path)

	assert.Len(t, Search(entries, "wellness", 2), 2)
	assert.Nil(t, Search(entries, "   ", 5))
	assert.Empty(t, Search(entries, "zebra", 5))
}

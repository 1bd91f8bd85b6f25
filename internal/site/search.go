package site

import (
	"encoding/json"
	"os"
	"slices"
	"strings"

	"github.com/mindcare-edu/mindcare/internal/content"
)

const maxSearchContent = 2000

// SearchEntry represents a single searchable page.
type SearchEntry struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// BuildSearchIndex flattens every catalog page into a search entry.
func BuildSearchIndex(c *content.Catalog) []SearchEntry {
	entries := make([]SearchEntry, 0, len(c.Pages))
	for _, p := range c.Pages {
		entries = append(entries, SearchEntry{
			Path:    p.Path,
			Title:   p.Title,
			Summary: plainText(p.Intro),
			Content: pageText(p),
		})
	}
	return entries
}

func pageText(p content.Page) string {
	parts := []string{p.Headline, p.Highlight, p.Intro}
	for _, s := range p.Sections {
		parts = append(parts, s.Heading, s.Intro, s.Body)
		parts = appendItemText(parts, s.Items)
	}
	text := plainText(strings.Join(parts, " "))
	if len(text) > maxSearchContent {
		text = text[:maxSearchContent]
		// Don't leave a broken rune at the cut.
		text = strings.ToValidUTF8(text, "")
	}
	return text
}

func appendItemText(parts []string, items []content.Item) []string {
	for _, it := range items {
		parts = append(parts, it.Title, it.Subtitle, it.Description, it.Label, it.Quote)
		parts = append(parts, it.Points...)
		parts = appendItemText(parts, it.Children)
	}
	return parts
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

// Search ranks entries against the words of query. Title hits outweigh summary
// hits, which outweigh body hits. Entries without any hit are dropped.
func Search(entries []SearchEntry, query string, limit int) []SearchEntry {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	type scored struct {
		entry SearchEntry
		score int
	}
	var hits []scored
	for _, e := range entries {
		title, summary, body := strings.ToLower(e.Title), strings.ToLower(e.Summary), strings.ToLower(e.Content)
		score := 0
		for _, t := range terms {
			if strings.Contains(title, t) {
				score += 5
			}
			if strings.Contains(summary, t) {
				score += 3
			}
			score += min(strings.Count(body, t), 5)
		}
		if score > 0 {
			hits = append(hits, scored{e, score})
		}
	}
	slices.SortStableFunc(hits, func(a, b scored) int { return b.score - a.score })

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]SearchEntry, len(hits))
	for i, h := range hits {
		out[i] = h.entry
	}
	return out
}

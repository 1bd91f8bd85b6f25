package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/mindcare-edu/mindcare/internal/chatbot"
	"github.com/mindcare-edu/mindcare/internal/content"
	"github.com/mindcare-edu/mindcare/internal/mood"
)

// Notice is a status banner rendered above the page body.
type Notice struct {
	Title       string
	Description string
	Variant     string
}

func noticeFrom(n mood.Notice) *Notice {
	return &Notice{Title: n.Title, Description: n.Description, Variant: string(n.Variant)}
}

// State carries per-request form state into section partials.
type State struct {
	Contact ContactForm
}

func defaultState() *State {
	return &State{Contact: NewContactForm()}
}

// Renderer turns pages into complete HTML documents.
type Renderer struct {
	site content.Site
	md   goldmark.Markdown
	tmpl *template.Template
}

type layoutData struct {
	Site    content.Site
	Title   string
	Current string
	Notice  *Notice
	Body    template.HTML
	Script  bool
}

type pageData struct {
	Page  content.Page
	State *State
}

type sectionData struct {
	Section content.Section
	State   *State
}

// ChatView is the data for the chatbot page.
type ChatView struct {
	Disclaimer     string
	DelayMS        int64
	Messages       []chatbot.Message
	QuickResponses []string
	Notice         *Notice
}

// MoodView is the data for the mood tracker page.
type MoodView struct {
	Levels   []mood.LevelInfo
	Emotions []mood.Emotion
	Form     *mood.Form
	Summary  mood.Summary
	Recent   []mood.Entry
	Notice   *Notice
}

// NewRenderer parses the templates for site.
func NewRenderer(site content.Site) (*Renderer, error) {
	r := &Renderer{site: site, md: newMarkdown()}
	funcs := template.FuncMap{
		"href":         safeHref,
		"isActive":     isActive,
		"lower":        strings.ToLower,
		"contactTypes": func() []ContactType { return ContactTypes },
		"markdown": func(src string) (template.HTML, error) {
			return renderMarkdown(r.md, src)
		},
		"section": r.section,
	}
	tmpl := template.New("site").Funcs(funcs)
	for _, src := range []string{layoutTemplate, pageTemplate, chatTemplate, moodTemplate, notFoundTemplate} {
		var err error
		if tmpl, err = tmpl.Parse(src); err != nil {
			return nil, fmt.Errorf("parsing templates: %w", err)
		}
	}
	r.tmpl = tmpl
	return r, nil
}

// Page renders a content page.
func (r *Renderer) Page(w io.Writer, p content.Page, st *State, notice *Notice) error {
	if st == nil {
		st = defaultState()
	}
	return r.render(w, "page", pageData{Page: p, State: st}, layoutData{
		Title:   p.Title,
		Current: p.Path,
		Notice:  notice,
	})
}

// Chat renders the chatbot page.
func (r *Renderer) Chat(w io.Writer, v ChatView) error {
	return r.render(w, "chat", v, layoutData{
		Title:   "AI Support Chat",
		Current: "/chatbot",
		Notice:  v.Notice,
		Script:  true,
	})
}

// Mood renders the mood tracker page.
func (r *Renderer) Mood(w io.Writer, v MoodView) error {
	return r.render(w, "mood", v, layoutData{
		Title:   "Mood Tracker",
		Current: "/mood-tracker",
		Notice:  v.Notice,
	})
}

// NotFound renders the 404 page.
func (r *Renderer) NotFound(w io.Writer) error {
	return r.render(w, "not-found", nil, layoutData{Title: "Page not found"})
}

func (r *Renderer) render(w io.Writer, name string, data any, layout layoutData) error {
	var body bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&body, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	layout.Site = r.site
	layout.Body = template.HTML(body.String())
	if err := r.tmpl.ExecuteTemplate(w, "layout", layout); err != nil {
		return fmt.Errorf("rendering layout: %w", err)
	}
	return nil
}

func (r *Renderer) section(s content.Section, st *State) (template.HTML, error) {
	if st == nil {
		st = defaultState()
	}
	var buf bytes.Buffer
	name := "section-" + string(s.Kind)
	if err := r.tmpl.ExecuteTemplate(&buf, name, sectionData{Section: s, State: st}); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

var safeHrefPrefixes = []string{"/", "#", "http://", "https://", "mailto:", "tel:"}

// safeHref passes content links through html/template unfiltered when they use a known scheme.
func safeHref(href string) template.URL {
	if strings.HasPrefix(href, "//") {
		return "#"
	}
	for _, p := range safeHrefPrefixes {
		if strings.HasPrefix(href, p) {
			return template.URL(href)
		}
	}
	return "#"
}

// isActive reports whether the nav link href matches the current route.
func isActive(current, href string) bool {
	if href == "/" {
		return current == "/"
	}
	return current == href || strings.HasPrefix(current, href+"/")
}

package content

// SectionKind selects the partial used to render a section.
type SectionKind string

const (
	KindStats          SectionKind = "stats"
	KindCards          SectionKind = "cards"
	KindSteps          SectionKind = "steps"
	KindTestimonials   SectionKind = "testimonials"
	KindListGroups     SectionKind = "list-groups"
	KindCaseStudies    SectionKind = "case-studies"
	KindGoals          SectionKind = "goals"
	KindRoadmap        SectionKind = "roadmap"
	KindTech           SectionKind = "tech"
	KindContactMethods SectionKind = "contact-methods"
	KindHours          SectionKind = "hours"
	KindMarkdown       SectionKind = "markdown"
	KindCTA            SectionKind = "cta"
	KindContactForm    SectionKind = "contact-form"
)

// Kinds lists every section kind the renderer understands.
var Kinds = []SectionKind{
	KindStats, KindCards, KindSteps, KindTestimonials, KindListGroups, KindCaseStudies,
	KindGoals, KindRoadmap, KindTech, KindContactMethods, KindHours, KindMarkdown,
	KindCTA, KindContactForm,
}

// Link is a navigation entry or call to action.
type Link struct {
	Label   string `yaml:"label" json:"label" validate:"required"`
	Href    string `yaml:"href" json:"href" validate:"required"`
	Primary bool   `yaml:"primary,omitempty" json:"primary,omitempty"`
}

// Site holds the content shared by every page.
type Site struct {
	Name    string `yaml:"name" json:"name" validate:"required"`
	Tagline string `yaml:"tagline" json:"tagline"`
	Nav     []Link `yaml:"nav" json:"nav" validate:"required,min=1,dive"`
	CTAs    []Link `yaml:"ctas" json:"ctas" validate:"dive"`
	Footer  Footer `yaml:"footer" json:"footer"`
}

// Footer is the bottom strip of every page.
type Footer struct {
	About     string `yaml:"about" json:"about"`
	Copyright string `yaml:"copyright" json:"copyright"`
	Links     []Link `yaml:"links" json:"links" validate:"dive"`
}

// Page is one routed content page.
type Page struct {
	Slug      string    `yaml:"slug" json:"slug" validate:"required"`
	Path      string    `yaml:"path" json:"path" validate:"required,startswith=/"`
	Title     string    `yaml:"title" json:"title" validate:"required"`
	Order     int       `yaml:"order" json:"order"`
	Badge     string    `yaml:"badge,omitempty" json:"badge,omitempty"`
	Headline  string    `yaml:"headline" json:"headline" validate:"required"`
	Highlight string    `yaml:"highlight,omitempty" json:"highlight,omitempty"`
	Intro     string    `yaml:"intro" json:"intro"`
	Actions   []Link    `yaml:"actions,omitempty" json:"actions,omitempty" validate:"dive"`
	Sections  []Section `yaml:"sections" json:"sections" validate:"dive"`
}

// Section is a block of a page rendered by kind.
type Section struct {
	Kind    SectionKind `yaml:"kind" json:"kind" validate:"required,section_kind"`
	Heading string      `yaml:"heading,omitempty" json:"heading,omitempty"`
	Intro   string      `yaml:"intro,omitempty" json:"intro,omitempty"`
	Body    string      `yaml:"body,omitempty" json:"body,omitempty"`
	Items   []Item      `yaml:"items,omitempty" json:"items,omitempty" validate:"dive"`
	Actions []Link      `yaml:"actions,omitempty" json:"actions,omitempty" validate:"dive"`
}

// Item is one card, stat, step or row inside a section. Which fields are
// used depends on the section kind.
type Item struct {
	Icon        string   `yaml:"icon,omitempty" json:"icon,omitempty"`
	Title       string   `yaml:"title,omitempty" json:"title,omitempty"`
	Subtitle    string   `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Value       string   `yaml:"value,omitempty" json:"value,omitempty"`
	Label       string   `yaml:"label,omitempty" json:"label,omitempty"`
	Badge       string   `yaml:"badge,omitempty" json:"badge,omitempty"`
	Quote       string   `yaml:"quote,omitempty" json:"quote,omitempty"`
	Author      string   `yaml:"author,omitempty" json:"author,omitempty"`
	Rating      int      `yaml:"rating,omitempty" json:"rating,omitempty" validate:"min=0,max=5"`
	Progress    int      `yaml:"progress,omitempty" json:"progress,omitempty" validate:"min=0,max=100"`
	Link        *Link    `yaml:"link,omitempty" json:"link,omitempty"`
	Points      []string `yaml:"points,omitempty" json:"points,omitempty"`
	Children    []Item   `yaml:"children,omitempty" json:"children,omitempty" validate:"dive"`
}

// Stars returns a slice of length Rating for ranging in templates.
func (i Item) Stars() []struct{} {
	return make([]struct{}, i.Rating)
}

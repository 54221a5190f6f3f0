package domain

import "strings"

// Category classifies a rule by travel mode or topic.
type Category string

const (
	CategoryFlight        Category = "flight"
	CategoryTrain         Category = "train"
	CategoryBus           Category = "bus"
	CategoryGeneralTravel Category = "general-travel"
	CategoryDocuments     Category = "documents"
)

// Valid reports whether the category is one of the enumerated values.
func (c Category) Valid() bool {
	switch c {
	case CategoryFlight, CategoryTrain, CategoryBus, CategoryGeneralTravel, CategoryDocuments:
		return true
	}
	return false
}

// VerdictStatus is the authored outcome of a rule. It drives colour-coded
// presentation and the verdict filter; it is never derived from content.
type VerdictStatus string

const (
	VerdictAllowed    VerdictStatus = "allowed"
	VerdictNotAllowed VerdictStatus = "not_allowed"
	VerdictLimited    VerdictStatus = "limited"
)

// Valid reports whether the status is one of the enumerated values.
func (s VerdictStatus) Valid() bool {
	switch s {
	case VerdictAllowed, VerdictNotAllowed, VerdictLimited:
		return true
	}
	return false
}

// Verdict is the one-line answer a traveler is looking for.
type Verdict struct {
	Status  VerdictStatus `toml:"status" json:"status"`
	Summary string        `toml:"summary" json:"summary"`
}

// Source is a citation backing a rule. Not indexed for search.
type Source struct {
	Label string `toml:"label" json:"label"`
	URL   string `toml:"url" json:"url"`
}

// Checklist is a titled list of actionable items.
type Checklist struct {
	Title string   `toml:"title" json:"title"`
	Items []string `toml:"items" json:"items"`
}

// Table is tabular rich content, e.g. watt-hour thresholds.
type Table struct {
	Caption string     `toml:"caption" json:"caption"`
	Headers []string   `toml:"headers" json:"headers"`
	Rows    [][]string `toml:"rows" json:"rows"`
}

// FAQ is a question/answer pair within rich content.
type FAQ struct {
	Question string `toml:"question" json:"question"`
	Answer   string `toml:"answer" json:"answer"`
}

// InternalLink points at a related rule by slug.
type InternalLink struct {
	Label string `toml:"label" json:"label"`
	Slug  string `toml:"slug" json:"slug"`
}

// RichContent is the article-style body of a rule. When present it replaces
// the legacy plain fields for detail presentation; the legacy fields remain
// stored and indexable.
type RichContent struct {
	QuickAnswer   string         `toml:"quick_answer" json:"quickAnswer"`
	Overview      []string       `toml:"overview" json:"overview"`
	Checklists    []Checklist    `toml:"checklists" json:"checklists"`
	Table         *Table         `toml:"table,omitempty" json:"table,omitempty"`
	Dos           []string       `toml:"dos" json:"dos"`
	Donts         []string       `toml:"donts" json:"donts"`
	Examples      []string       `toml:"examples,omitempty" json:"examples,omitempty"`
	FAQs          []FAQ          `toml:"faqs" json:"faqs"`
	Tips          []string       `toml:"tips" json:"tips"`
	InternalLinks []InternalLink `toml:"internal_links" json:"internalLinks"`
	VerifiedOn    string         `toml:"verified_on" json:"verifiedOn"`
}

// Rule is the unit of searchable and browsable content. Rules are authored,
// loaded once, and never mutated at runtime.
type Rule struct {
	// Slug is the unique, immutable identifier, also used as the URL path.
	Slug string `toml:"slug" json:"slug"`

	Title      string   `toml:"title" json:"title"`
	ShortTitle string   `toml:"short_title" json:"shortTitle"`
	Category   Category `toml:"category" json:"category"`

	// Tags keep insertion order; order matters for display truncation only.
	Tags []string `toml:"tags" json:"tags"`

	Verdict Verdict `toml:"verdict" json:"verdict"`

	// Legacy plain-text guidance, kept for fallback rendering.
	HowToComply   []string `toml:"how_to_comply" json:"howToComply"`
	WhyRuleExists string   `toml:"why_rule_exists" json:"whyRuleExists"`
	ExtraNotes    []string `toml:"extra_notes" json:"extraNotes"`

	Sources     []Source `toml:"sources" json:"sources"`
	LastUpdated string   `toml:"last_updated" json:"lastUpdated"`

	RichContent *RichContent `toml:"rich_content,omitempty" json:"richContent,omitempty"`
}

// SearchText concatenates every searchable field of the rule into one
// string, in a fixed order: title, short title, verdict summary, category,
// tags, compliance steps, extra notes, then (when rich content is present)
// quick answer, overview, tips, and checklist titles with their items.
// Absent optional fields contribute nothing.
func (r Rule) SearchText() string {
	parts := []string{
		r.Title,
		r.ShortTitle,
		r.Verdict.Summary,
		string(r.Category),
		strings.Join(r.Tags, " "),
		strings.Join(r.HowToComply, " "),
		strings.Join(r.ExtraNotes, " "),
	}

	if rc := r.RichContent; rc != nil {
		parts = append(parts,
			rc.QuickAnswer,
			strings.Join(rc.Overview, " "),
			strings.Join(rc.Tips, " "),
		)
		for _, cl := range rc.Checklists {
			parts = append(parts, cl.Title, strings.Join(cl.Items, " "))
		}
	}

	return strings.Join(parts, " ")
}

// Validate checks the invariants every catalog rule must satisfy.
func (r Rule) Validate() error {
	if strings.TrimSpace(r.Slug) == "" {
		return ErrInvalidInput
	}
	if !r.Category.Valid() {
		return ErrInvalidInput
	}
	if !r.Verdict.Status.Valid() {
		return ErrInvalidInput
	}
	return nil
}

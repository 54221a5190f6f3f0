package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driven"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driving"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// documentsSectionSlugs fixes the display order of the Documents & IDs
// section. Rules listed here appear in this order regardless of catalog
// position.
var documentsSectionSlugs = []string{
	"passport-photocopy-valid",
	"domestic-id-requirements",
	"aadhaar-digital-id",
	"printed-ticket-needed",
	"digital-boarding-pass",
	"name-mismatch-flight-ticket",
	"kids-id-requirement",
	"passport-expiry-validity",
}

// Tag keyword sets that assign rules to topical browse sections.
var (
	packingKeywords = keywordSet(
		"baggage", "packing", "bag", "fragile", "electronics", "power bank",
		"razor", "shampoo", "camera", "laptop", "liquid",
	)
	customsKeywords = keywordSet(
		"customs", "duty", "allowance", "cash", "gold", "alcohol", "tea",
		"coffee", "tobacco", "cigarettes", "duty free",
	)
	familyKeywords = keywordSet(
		"baby", "infant", "kids", "family", "pet", "pets", "wheelchair",
		"special assistance", "stroller", "formula",
	)
)

func keywordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// CatalogService provides browse access to the rule catalog.
type CatalogService struct {
	catalog driven.RuleCatalog
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalog driven.RuleCatalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// List implements driving.CatalogService.
func (s *CatalogService) List(ctx context.Context) ([]domain.Rule, error) {
	if s.catalog == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return s.catalog.Rules(ctx)
}

// Get implements driving.CatalogService.
func (s *CatalogService) Get(ctx context.Context, slug string) (*domain.Rule, error) {
	if s.catalog == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return s.catalog.Rule(ctx, slug)
}

// Sections implements driving.CatalogService. A rule may appear in more
// than one section: membership is by category or tag keywords, not
// exclusive assignment.
func (s *CatalogService) Sections(ctx context.Context) ([]driving.Section, error) {
	rules, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	sections := []driving.Section{
		{ID: "documents", Title: "Documents & IDs", Rules: documentsSection(rules)},
		{ID: "flights", Title: "Flights", Rules: byCategory(rules, domain.CategoryFlight)},
		{ID: "packing", Title: "Packing Tips", Rules: byKeywords(rules, packingKeywords)},
		{ID: "customs", Title: "Customs & Duty", Rules: byKeywords(rules, customsKeywords)},
		{ID: "family", Title: "Travelling with Family", Rules: byKeywords(rules, familyKeywords)},
	}
	return sections, nil
}

// documentsSection picks the curated document rules in their fixed order.
func documentsSection(rules []domain.Rule) []domain.Rule {
	bySlug := make(map[string]domain.Rule, len(rules))
	for _, r := range rules {
		bySlug[r.Slug] = r
	}

	section := make([]domain.Rule, 0, len(documentsSectionSlugs))
	for _, slug := range documentsSectionSlugs {
		if r, ok := bySlug[slug]; ok {
			section = append(section, r)
		}
	}
	return section
}

func byCategory(rules []domain.Rule, cat domain.Category) []domain.Rule {
	matched := make([]domain.Rule, 0)
	for _, r := range rules {
		if r.Category == cat {
			matched = append(matched, r)
		}
	}
	return matched
}

func byKeywords(rules []domain.Rule, keywords map[string]struct{}) []domain.Rule {
	matched := make([]domain.Rule, 0)
	for _, r := range rules {
		for _, tag := range r.Tags {
			if _, ok := keywords[strings.ToLower(tag)]; ok {
				matched = append(matched, r)
				break
			}
		}
	}
	return matched
}

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for TripCheck resources.
	uriScheme = "tripcheck://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing rules.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "rules",
		Name:        "rules",
		Description: "List of all travel rules in the catalog",
		MIMEType:    "application/json",
	}, s.handleRulesResource)

	// Static resource for the curated browse sections.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sections",
		Name:        "sections",
		Description: "Curated browse sections grouping the rules",
		MIMEType:    "application/json",
	}, s.handleSectionsResource)

	// Template for full rule content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "rules/{slug}",
		Name:        "rule",
		Description: "Full content of a specific travel rule",
		MIMEType:    "application/json",
	}, s.handleRuleResource)
}

// handleRulesResource returns the full catalog as a compact rule list.
func (s *Server) handleRulesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	rules, err := s.ports.Catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing rules: %w", err)
	}

	// Build simplified rule list.
	type ruleInfo struct {
		Slug     string `json:"slug"`
		Title    string `json:"title"`
		Category string `json:"category"`
		Verdict  string `json:"verdict"`
		Summary  string `json:"summary"`
	}

	infos := make([]ruleInfo, len(rules))
	for i := range rules {
		infos[i] = ruleInfo{
			Slug:     rules[i].Slug,
			Title:    rules[i].Title,
			Category: string(rules[i].Category),
			Verdict:  string(rules[i].Verdict.Status),
			Summary:  rules[i].Verdict.Summary,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling rules: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSectionsResource returns the curated sections with their member slugs.
func (s *Server) handleSectionsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	sections, err := s.ports.Catalog.Sections(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}

	type sectionInfo struct {
		ID    string   `json:"id"`
		Title string   `json:"title"`
		Slugs []string `json:"slugs"`
	}

	infos := make([]sectionInfo, len(sections))
	for i, sec := range sections {
		slugs := make([]string, len(sec.Rules))
		for j := range sec.Rules {
			slugs[j] = sec.Rules[j].Slug
		}
		infos[i] = sectionInfo{ID: sec.ID, Title: sec.Title, Slugs: slugs}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling sections: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleRuleResource returns the full content of a specific rule.
func (s *Server) handleRuleResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract slug from URI: tripcheck://rules/{slug}
	slug := extractRuleSlug(req.Params.URI)
	if slug == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	rule, err := s.ports.Catalog.Get(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting rule: %w", err)
	}

	data, err := json.MarshalIndent(rule, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling rule: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRuleSlug extracts the slug from a URI like tripcheck://rules/{slug}.
func extractRuleSlug(uri string) string {
	const prefix = uriScheme + "rules/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}

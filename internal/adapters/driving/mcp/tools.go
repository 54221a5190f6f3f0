package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
)

// SearchRulesInput is the input schema for the search_rules tool.
type SearchRulesInput struct {
	Query    string `json:"query" jsonschema:"free-text question about Indian travel rules, e.g. 'can i take a power bank'"`
	Verdict  string `json:"verdict,omitempty" jsonschema:"filter by verdict: allowed, not_allowed, or limited"`
	Category string `json:"category,omitempty" jsonschema:"filter by category: flight, train, bus, general-travel, or documents"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchRulesOutput is the output schema for the search_rules tool.
type SearchRulesOutput struct {
	Results []RuleOutput `json:"results"`
	Count   int          `json:"count"`
}

// RuleOutput represents a single matched rule.
type RuleOutput struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Verdict  string   `json:"verdict"`
	Summary  string   `json:"summary"`
	Tags     []string `json:"tags,omitempty"`
}

// NearbyAirportsInput is the input schema for the nearby_airports tool.
type NearbyAirportsInput struct {
	Latitude  float64 `json:"latitude" jsonschema:"latitude in decimal degrees"`
	Longitude float64 `json:"longitude" jsonschema:"longitude in decimal degrees"`
	RadiusKm  float64 `json:"radius_km,omitempty" jsonschema:"search radius in kilometres (default 300)"`
	Limit     int     `json:"limit,omitempty" jsonschema:"maximum number of airports to return (default 3)"`
}

// NearbyAirportsOutput is the output schema for the nearby_airports tool.
type NearbyAirportsOutput struct {
	Airports []AirportOutput `json:"airports"`
	Count    int             `json:"count"`
}

// AirportOutput represents a single nearby airport.
type AirportOutput struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	City       string  `json:"city"`
	DistanceKm float64 `json:"distance_km"`
	DriveTime  string  `json:"drive_time"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_rules",
		Description: "Search Indian air travel rules by free-text query with optional verdict and category filters",
	}, s.handleSearchRules)

	if s.ports.Nearby != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "nearby_airports",
			Description: "Find the closest Indian airports to a coordinate, with distance and drive-time estimates",
		}, s.handleNearbyAirports)
	}
}

// handleSearchRules handles the search_rules tool invocation.
func (s *Server) handleSearchRules(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchRulesInput,
) (*mcp.CallToolResult, SearchRulesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	opts := domain.SearchOptions{
		Verdict:  domain.VerdictStatus(input.Verdict),
		Category: domain.Category(input.Category),
		Limit:    limit,
	}
	rules, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchRulesOutput{}, err
	}

	output := SearchRulesOutput{
		Results: make([]RuleOutput, len(rules)),
		Count:   len(rules),
	}
	for i := range rules {
		output.Results[i] = RuleOutput{
			Slug:     rules[i].Slug,
			Title:    rules[i].Title,
			Category: string(rules[i].Category),
			Verdict:  string(rules[i].Verdict.Status),
			Summary:  rules[i].Verdict.Summary,
			Tags:     rules[i].Tags,
		}
	}

	return nil, output, nil
}

// handleNearbyAirports handles the nearby_airports tool invocation.
func (s *Server) handleNearbyAirports(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input NearbyAirportsInput,
) (*mcp.CallToolResult, NearbyAirportsOutput, error) {
	airports, err := s.ports.Nearby.Nearby(
		ctx, input.Latitude, input.Longitude, input.RadiusKm, input.Limit,
	)
	if err != nil {
		return nil, NearbyAirportsOutput{}, err
	}

	output := NearbyAirportsOutput{
		Airports: make([]AirportOutput, len(airports)),
		Count:    len(airports),
	}
	for i, ap := range airports {
		output.Airports[i] = AirportOutput{
			Code:       ap.Code,
			Name:       ap.Name,
			City:       ap.City,
			DistanceKm: ap.DistanceKm,
			DriveTime:  ap.DriveTime,
		}
	}

	return nil, output, nil
}

// Package embedded ships the seed catalog inside the binary. The TOML
// files are compiled in so the CLI answers questions with no setup; a
// configured catalog file replaces them entirely.
package embedded

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driven/catalog/memory"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
)

//go:embed rules.toml
var rulesTOML []byte

//go:embed airports.toml
var airportsTOML []byte

// Rules decodes the embedded rule seed.
func Rules() ([]domain.Rule, error) {
	var doc struct {
		Rules []domain.Rule `toml:"rules"`
	}
	if err := toml.Unmarshal(rulesTOML, &doc); err != nil {
		return nil, fmt.Errorf("decode embedded rules: %w", err)
	}
	return doc.Rules, nil
}

// Airports decodes the embedded airport seed.
func Airports() ([]domain.Airport, error) {
	var doc struct {
		Airports []domain.Airport `toml:"airports"`
	}
	if err := toml.Unmarshal(airportsTOML, &doc); err != nil {
		return nil, fmt.Errorf("decode embedded airports: %w", err)
	}
	return doc.Airports, nil
}

// NewRuleCatalog builds a validated in-memory catalog from the seed.
func NewRuleCatalog() (*memory.RuleCatalog, error) {
	rules, err := Rules()
	if err != nil {
		return nil, err
	}
	return memory.NewRuleCatalog(rules)
}

// NewAirportCatalog builds a validated in-memory airport catalog from the
// seed.
func NewAirportCatalog() (*memory.AirportCatalog, error) {
	airports, err := Airports()
	if err != nil {
		return nil, err
	}
	return memory.NewAirportCatalog(airports)
}

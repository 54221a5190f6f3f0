// Package services implements the application core: rule search, nearby
// airport lookup, catalog browsing, and the mini calculators. Services
// depend only on domain types and driven ports, never on adapters.
package services

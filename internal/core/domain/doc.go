// Package domain contains the core business entities for tripcheck:
// travel rules, their verdicts and rich article content, airports, and the
// option types that drive search. The domain layer has no dependencies on
// adapters or external libraries.
package domain

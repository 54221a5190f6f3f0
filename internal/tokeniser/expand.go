package tokeniser

import "strings"

// suffixRule rewrites a single trailing suffix. Rules are evaluated top-down
// and only the first match applies; they never stack. This is intentionally
// naive plural/singular reconciliation, not a stemmer.
type suffixRule struct {
	suffix      string
	replacement string
}

var suffixRules = []suffixRule{
	{suffix: "ies", replacement: "y"}, // batteries -> battery
	{suffix: "es", replacement: ""},   // matches -> match
	{suffix: "s", replacement: ""},    // bags -> bag
}

// Expand returns the token together with its alternate singular/plural
// forms. The token itself is always first. A token ending in none of the
// plural suffixes gains a trailing "s" instead.
func Expand(token string) []string {
	forms := []string{token}
	for _, rule := range suffixRules {
		if !strings.HasSuffix(token, rule.suffix) {
			continue
		}
		alt := strings.TrimSuffix(token, rule.suffix) + rule.replacement
		if alt != "" && alt != token {
			forms = append(forms, alt)
		}
		return forms
	}
	return append(forms, token+"s")
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
)

var (
	searchVerdict  string
	searchCategory string
	searchLimit    int
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search travel rules",
	Long: `Searches the rule catalog with a free-text query.
Every word of the query must match; plural and singular forms
are matched interchangeably. Filler words like "can" and "the"
are ignored unless the whole query is made of them.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchVerdict, "verdict", "", "filter by verdict (allowed, not_allowed, limited)")
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "filter by category (flight, train, bus, general-travel, documents)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	opts := domain.SearchOptions{
		Verdict:  domain.VerdictStatus(searchVerdict),
		Category: domain.Category(searchCategory),
		Limit:    searchLimit,
	}

	rules, err := searchService.Search(cmd.Context(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputRulesJSON(cmd, rules)
	}

	return outputRulesTable(cmd, rules)
}

func outputRulesJSON(cmd *cobra.Command, rules []domain.Rule) error {
	data, err := json.MarshalIndent(rules, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal rules: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRulesTable(cmd *cobra.Command, rules []domain.Rule) error {
	if len(rules) == 0 {
		cmd.Println("No rules found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range rules {
		cmd.Printf("  [%d] %s (%s)\n", i+1, rules[i].Title, verdictLabel(rules[i].Verdict.Status))
		if rules[i].Verdict.Summary != "" {
			cmd.Printf("      %s\n", rules[i].Verdict.Summary)
		}
		cmd.Printf("      tripcheck rules show %s\n", rules[i].Slug)
		cmd.Println()
	}

	return nil
}

func verdictLabel(status domain.VerdictStatus) string {
	switch status {
	case domain.VerdictAllowed:
		return "ALLOWED"
	case domain.VerdictNotAllowed:
		return "NOT ALLOWED"
	case domain.VerdictLimited:
		return "LIMITED"
	default:
		return string(status)
	}
}

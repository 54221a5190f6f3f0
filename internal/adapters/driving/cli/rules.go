package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
)

var (
	rulesListJSON bool
	rulesShowJSON bool
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Browse the rule catalog",
	Long:  `Commands for listing and inspecting the travel rule catalog.`,
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all rules",
	RunE:  runRulesList,
}

var rulesShowCmd = &cobra.Command{
	Use:   "show [slug]",
	Short: "Show the full content of a rule",
	Args:  cobra.ExactArgs(1),
	RunE:  runRulesShow,
}

var rulesSectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the curated browse sections",
	RunE:  runRulesSections,
}

func init() {
	rulesListCmd.Flags().BoolVar(&rulesListJSON, "json", false, "output as JSON")
	rulesShowCmd.Flags().BoolVar(&rulesShowJSON, "json", false, "output as JSON")
	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesShowCmd)
	rulesCmd.AddCommand(rulesSectionsCmd)
	rootCmd.AddCommand(rulesCmd)
}

func runRulesList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	rules, err := catalogService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing rules: %w", err)
	}

	if rulesListJSON {
		return outputRulesJSON(cmd, rules)
	}

	for i := range rules {
		cmd.Printf("  %-32s %-15s %s\n", rules[i].Slug, rules[i].Category, verdictLabel(rules[i].Verdict.Status))
	}
	cmd.Println()
	cmd.Printf("%d rules.\n", len(rules))

	return nil
}

func runRulesShow(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	rule, err := catalogService.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no rule with slug %q", args[0])
		}
		return fmt.Errorf("getting rule: %w", err)
	}

	if rulesShowJSON {
		data, err := json.MarshalIndent(rule, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal rule: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printRule(cmd, rule)
	return nil
}

func runRulesSections(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	sections, err := catalogService.Sections(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing sections: %w", err)
	}

	for _, sec := range sections {
		cmd.Printf("%s (%d)\n", sec.Title, len(sec.Rules))
		for i := range sec.Rules {
			cmd.Printf("  %s\n", sec.Rules[i].Slug)
		}
		cmd.Println()
	}

	return nil
}

func printRule(cmd *cobra.Command, rule *domain.Rule) {
	cmd.Println(rule.Title)
	cmd.Printf("%s / %s\n", rule.Category, verdictLabel(rule.Verdict.Status))
	cmd.Println()
	cmd.Println(rule.Verdict.Summary)
	cmd.Println()

	if rc := rule.RichContent; rc != nil {
		if rc.QuickAnswer != "" {
			cmd.Println(rc.QuickAnswer)
			cmd.Println()
		}
		for _, para := range rc.Overview {
			cmd.Println(para)
			cmd.Println()
		}
		for _, cl := range rc.Checklists {
			cmd.Println(cl.Title)
			for _, item := range cl.Items {
				cmd.Printf("  [ ] %s\n", item)
			}
			cmd.Println()
		}
		for _, tip := range rc.Tips {
			cmd.Printf("  Tip: %s\n", tip)
		}
	} else {
		for _, line := range rule.HowToComply {
			cmd.Printf("  - %s\n", line)
		}
		if len(rule.ExtraNotes) > 0 {
			cmd.Println()
			for _, note := range rule.ExtraNotes {
				cmd.Println(note)
			}
		}
	}

	if len(rule.Sources) > 0 {
		cmd.Println()
		labels := make([]string, len(rule.Sources))
		for i, src := range rule.Sources {
			labels[i] = src.Label
		}
		cmd.Printf("Sources: %s\n", strings.Join(labels, ", "))
	}
	if rule.LastUpdated != "" {
		cmd.Printf("Last updated: %s\n", rule.LastUpdated)
	}
}

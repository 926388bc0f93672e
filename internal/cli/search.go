package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framegraph/pkg/frame"
	"github.com/matzehuels/framegraph/pkg/search"
)

// searchCommand creates the search command.
func (c *CLI) searchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search slots by name or by value",
		Long: `Search slots by name (syntactic) or by value (semantic).

Queries hold one or more terms separated by ';'. Blank terms are ignored.
The pseudo slot name "` + frame.ReferenceLabel + `" matches every reference slot.`,
	}

	cmd.AddCommand(c.searchSyntacticCommand())
	cmd.AddCommand(c.searchSemanticCommand())

	return cmd
}

func (c *CLI) searchSyntacticCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "syntactic QUERY",
		Aliases: []string{"name"},
		Short:   "Find slots whose name is one of the query terms",
		Example: `  framegraph search syntactic "Color;Frame reference"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			terms, err := queryTerms(args[0])
			if err != nil {
				return err
			}
			g, err := c.readModel()
			if err != nil {
				return err
			}
			matches := search.Syntactic(g, terms)
			loggerFromContext(cmd.Context()).Debug("syntactic search", "terms", terms, "matches", len(matches))

			if asJSON {
				return c.writeJSON(nonNil(matches))
			}
			c.printReport(search.SyntacticReport(terms, matches), len(matches))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print match records as JSON")
	return cmd
}

func (c *CLI) searchSemanticCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "semantic QUERY",
		Aliases: []string{"value"},
		Short:   "Find slots whose value is one of the query terms",
		Long: `Find slots whose value is one of the query terms.

A reference slot's value is the name of the frame it points at, so searching
for a frame name also finds every reference to it.`,
		Example: `  framegraph search semantic "Red;Car"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			terms, err := queryTerms(args[0])
			if err != nil {
				return err
			}
			g, err := c.readModel()
			if err != nil {
				return err
			}
			groups := search.Semantic(g, terms)
			loggerFromContext(cmd.Context()).Debug("semantic search", "terms", terms, "frames", len(groups))

			if asJSON {
				return c.writeJSON(nonNil(groups))
			}
			c.printReport(search.SemanticReport(terms, groups), len(groups))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print grouped match records as JSON")
	return cmd
}

// queryTerms splits a query and rejects one whose terms are all blank.
func queryTerms(query string) ([]string, error) {
	terms := search.ParseTerms(query)
	for _, t := range terms {
		if strings.TrimSpace(t) != "" {
			return terms, nil
		}
	}
	return nil, fmt.Errorf("empty query: give at least one term, separated by ';'")
}

// printReport prints a search report with a styled header line.
func (c *CLI) printReport(report string, found int) {
	header, body, _ := strings.Cut(report, "\n")
	c.printLine(StyleTitle.Render(header))
	if found == 0 {
		c.printDetail("no matches")
		return
	}
	fmt.Fprint(c.out, body)
}

func (c *CLI) writeJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// nonNil makes empty results encode as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/matcher"
	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/plan"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank target roles against recorded skill answers",
	Long: `Rank every role in the catalog against an answers file and print the
matches with gaps, readiness band, and estimated uplift.

The answers file maps skill names to level anchor scores:

  skills:
    Problem solving: 95
    Leading people: 70

Examples:
  # Rank all roles
  match --input answers.yaml

  # Top 3 as JSON with an action plan for the best match
  match --input answers.yaml --top 3 --format json --plan`,
	RunE: runMatch,
}

func init() {
	f := matchCmd.Flags()
	f.String("input", "", "answers file (YAML or JSON)")
	f.Int("top", 0, "limit to the top N matches (0 = all)")
	f.String("format", "table", "output format: table or json")
	f.String("output", "", "output file path (default: stdout)")
	f.Bool("plan", false, "print the action plan for the top match")
	_ = matchCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	answers, err := readAnswers(input, catalog)
	if err != nil {
		return err
	}

	results := matcher.Match(answers.Skills, catalog)
	zap.L().Info("match complete",
		zap.Int("answered_skills", len(answers.Skills)),
		zap.Int("roles_ranked", len(results)),
	)

	top, _ := cmd.Flags().GetInt("top")
	if top > 0 && len(results) > top {
		results = results[:top]
	}

	out := os.Stdout
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return eris.Wrapf(err, "match: create output %s", path)
		}
		defer f.Close()
		out = f
	}

	withPlan, _ := cmd.Flags().GetBool("plan")
	format, _ := cmd.Flags().GetString("format")

	switch format {
	case "json":
		payload := struct {
			Matches []matcher.Result `json:"matches"`
			Plan    *plan.Plan       `json:"plan,omitempty"`
		}{Matches: results}
		if withPlan && len(results) > 0 {
			p := plan.Synthesize(results[0], matcher.TopStrengths(answers.Skills, catalog, 2))
			payload.Plan = &p
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(payload), "match: encode json")
	case "table":
		if len(results) == 0 {
			fmt.Fprintln(out, "No answers recorded yet — nothing to rank.")
			return nil
		}
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ROLE\tMATCH\tBAND\tGAPS\tUPLIFT\tCOMP")
		for _, r := range results {
			fmt.Fprintf(w, "%s\t%d%%\t%s\t%s\t%s\t%s\n",
				r.Title,
				r.MatchPercent,
				r.Band,
				strings.Join(r.Gaps, ", "),
				matcher.FormatUSD(r.UpliftUSD),
				matcher.FormatCompRange(r.CompLow, r.CompHigh),
			)
		}
		if err := w.Flush(); err != nil {
			return eris.Wrap(err, "match: flush table")
		}
		if withPlan {
			p := plan.Synthesize(results[0], matcher.TopStrengths(answers.Skills, catalog, 2))
			fmt.Fprintf(out, "\nDIRECTION (6-12 months): %s\n", p.Direction)
			fmt.Fprintf(out, "THIS PHASE (3 months):   %s\n", p.Phase)
			fmt.Fprintf(out, "NEXT SPRINT (4 weeks):   %s\n", p.Sprint)
		}
		return nil
	default:
		return eris.Errorf("match: unknown format %q", format)
	}
}

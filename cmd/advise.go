package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/advice"
	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/matcher"
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Ask the career coach a free-text question",
	Long: `Ask the coach a question. Providers are tried in configured priority
order; if none are reachable or configured, a deterministic local response
is returned and tagged with provenance "fallback".

Context can be given directly (--role, --strengths, --gaps) or derived from
an answers file (--input), in which case the top match supplies it.

Examples:
  advise --question "Should I move into product?" --input answers.yaml
  advise --question "Where do I start?" --role "Data Analyst" --gaps "Working with data"`,
	RunE: runAdvise,
}

func init() {
	f := adviseCmd.Flags()
	f.String("question", "", "the question to ask")
	f.String("input", "", "answers file to derive context from")
	f.String("role", "", "target role for context")
	f.StringSlice("strengths", nil, "strength skills for context")
	f.StringSlice("gaps", nil, "gap skills for context")
	_ = adviseCmd.MarkFlagRequired("question")

	rootCmd.AddCommand(adviseCmd)
}

func runAdvise(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cfg.Validate(); err != nil {
		return err
	}

	actx := advice.Context{}
	actx.TargetRole, _ = cmd.Flags().GetString("role")
	actx.Strengths, _ = cmd.Flags().GetStringSlice("strengths")
	actx.Gaps, _ = cmd.Flags().GetStringSlice("gaps")

	if input, _ := cmd.Flags().GetString("input"); input != "" {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		answers, err := readAnswers(input, catalog)
		if err != nil {
			return err
		}
		results := matcher.Match(answers.Skills, catalog)
		if len(results) == 0 {
			return eris.New("advise: answers file has no recorded skills to derive context from")
		}
		top := results[0]
		if actx.TargetRole == "" {
			actx.TargetRole = top.Title
		}
		if len(actx.Gaps) == 0 {
			actx.Gaps = top.Gaps
		}
		if len(actx.Strengths) == 0 {
			actx.Strengths = matcher.TopStrengths(answers.Skills, catalog, 2)
		}
	}

	question, _ := cmd.Flags().GetString("question")
	result := newChain(cfg).Ask(ctx, question, actx)

	zap.L().Info("advice returned",
		zap.String("provenance", result.Provenance),
		zap.String("diagnostic", result.Diagnostic),
	)

	fmt.Println(result.Text)
	fmt.Printf("\n[source: %s]\n", result.Provenance)
	return nil
}

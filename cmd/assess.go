package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/advice"
	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/matcher"
	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/plan"
	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/session"
	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/taxonomy"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run the interactive assessment wizard",
	Long: `Walk through the assessment in the terminal: pick an entry mode,
answer skill prompts (or select roles to explore), then see ranked matches,
an action plan, and an optional coach Q&A.`,
	RunE: runAssess,
}

func init() {
	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, _ []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	sess := session.New(catalog)
	zap.L().Info("assessment session started", zap.String("session_id", sess.ID()))

	for sess.State() != session.StateResults {
		switch sess.State() {
		case session.StateLanding:
			err = promptEntryMode(sess)
		case session.StateSkillCapture:
			err = promptSkill(sess, catalog)
		case session.StateRoleCapture:
			err = promptRoles(sess, catalog)
		}
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				return nil
			}
			return err
		}
	}

	return showResults(cmd.Context(), sess, catalog)
}

func promptEntryMode(sess *session.Session) error {
	sel := promptui.Select{
		Label: "How would you like to start?",
		Items: []string{
			"Start from my skills — map what you're good at",
			"Start from a career — see your gaps for a specific role",
		},
	}
	idx, _, err := sel.Run()
	if err != nil {
		return err
	}
	if idx == 0 {
		sess.Start(session.ModeSkills)
	} else {
		sess.Start(session.ModeRoles)
	}
	return nil
}

func promptSkill(sess *session.Session, catalog *taxonomy.Catalog) error {
	group := sess.CurrentGroup()
	skill := sess.CurrentSkill()
	answered, total := sess.Progress()

	items := make([]string, 0, len(catalog.Levels)+1)
	for _, l := range catalog.Levels {
		items = append(items, fmt.Sprintf("%s — %s", l.Label, l.Description))
	}
	items = append(items, "← Back")

	sel := promptui.Select{
		Label: fmt.Sprintf("[%s %d/%d] %s", group.Name, answered, total, skill.Prompt),
		Items: items,
	}
	idx, _, err := sel.Run()
	if err != nil {
		return err
	}

	if idx == len(catalog.Levels) {
		sess.Retreat()
		return nil
	}

	sess.RecordAnswer(skill.Name, catalog.Levels[idx].Score)
	sess.Advance()
	return nil
}

func promptRoles(sess *session.Session, catalog *taxonomy.Catalog) error {
	selected := make(map[string]bool)
	for _, id := range sess.Ledger().Roles() {
		selected[id] = true
	}

	items := make([]string, 0, len(catalog.Roles)+2)
	for _, r := range catalog.Roles {
		mark := "[ ]"
		if selected[r.ID] {
			mark = "[x]"
		}
		items = append(items, fmt.Sprintf("%s %s — %s (%s)",
			mark, r.Title, r.Subtitle, matcher.FormatCompRange(r.CompLow, r.CompHigh)))
	}
	items = append(items, "Done")
	items = append(items, "← Back")

	sel := promptui.Select{
		Label: fmt.Sprintf("Pick up to %d careers to explore", session.MaxRoleSelections),
		Items: items,
	}
	idx, _, err := sel.Run()
	if err != nil {
		return err
	}

	switch idx {
	case len(catalog.Roles): // Done
		if !sess.Advance() {
			fmt.Println("Select at least one career first.")
		}
	case len(catalog.Roles) + 1: // Back
		sess.Retreat()
	default:
		role := catalog.Roles[idx]
		if selected[role.ID] {
			sess.DeselectRole(role.ID)
		} else if !sess.SelectRole(role.ID) {
			fmt.Printf("You can explore at most %d careers at once.\n", session.MaxRoleSelections)
		}
	}
	return nil
}

func showResults(ctx context.Context, sess *session.Session, catalog *taxonomy.Catalog) error {
	responses := sess.Ledger().Scores()
	results := matcher.Match(responses, catalog)

	actx := advice.Context{}

	fmt.Println("\nYour Career Directions")
	fmt.Println(strings.Repeat("=", 40))

	if len(results) == 0 {
		// Role-first with no skill answers: show the selected roles and
		// invite a skills pass.
		for _, id := range sess.Ledger().Roles() {
			r := catalog.Role(id)
			fmt.Printf("%s — %s (%s)\n", r.Title, r.Subtitle, matcher.FormatCompRange(r.CompLow, r.CompHigh))
			if actx.TargetRole == "" {
				actx.TargetRole = r.Title
			}
		}
		fmt.Println("\nAnswer the skill questions to see ranked matches and gaps.")
	} else {
		top := results[0]
		fmt.Printf("Best match: %s (%d%%) — %s\n", top.Title, top.MatchPercent, top.Band)
		if len(top.Gaps) > 0 {
			fmt.Printf("Focus areas: %s\n", strings.Join(top.Gaps, ", "))
			fmt.Printf("Estimated uplift from closing them: %s/yr\n", matcher.FormatUSD(top.UpliftUSD))
		}

		strengths := matcher.TopStrengths(responses, catalog, 2)
		p := plan.Synthesize(top, strengths)
		fmt.Println("\nYour Path Forward")
		fmt.Printf("  DIRECTION (6-12 months): %s\n", p.Direction)
		fmt.Printf("  THIS PHASE (3 months):   %s\n", p.Phase)
		fmt.Printf("  NEXT SPRINT (4 weeks):   %s\n", p.Sprint)

		actx = advice.Context{
			Strengths:  strengths,
			Gaps:       top.Gaps,
			TargetRole: top.Title,
		}
	}

	return coachLoop(ctx, actx)
}

// coachLoop runs the optional Q&A against the advisory chain. Transcript
// lives only for the life of the command.
func coachLoop(ctx context.Context, actx advice.Context) error {
	chain := newChain(cfg)

	fmt.Println("\nAsk the coach about your path (empty question to finish).")
	for {
		prompt := promptui.Prompt{Label: "You"}
		question, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			return err
		}
		if strings.TrimSpace(question) == "" {
			return nil
		}

		result := chain.Ask(ctx, question, actx)
		fmt.Printf("\nCoach [%s]: %s\n\n", result.Provenance, result.Text)
	}
}

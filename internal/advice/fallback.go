package advice

import (
	"fmt"
	"strings"
)

// FallbackText synthesizes advisory prose locally from the context summary.
// It is deterministic, never empty, and never touches the network. This is
// the guaranteed floor under total provider failure.
func FallbackText(actx Context) string {
	var b strings.Builder

	b.WriteString("That's a great question. Based on your profile, I'd suggest starting small.")

	if actx.TargetRole != "" {
		fmt.Fprintf(&b, " You're aiming at %s, so make your next steps point in that direction.", actx.TargetRole)
	}

	switch len(actx.Strengths) {
	case 0:
	case 1:
		fmt.Fprintf(&b, " Lean on your strength in %s — it's your best lever.", actx.Strengths[0])
	default:
		fmt.Fprintf(&b, " Lean on your strengths in %s and %s — they're your best levers.",
			actx.Strengths[0], actx.Strengths[1])
	}

	if len(actx.Gaps) > 0 {
		fmt.Fprintf(&b, " Pick one skill to improve this week — %s is a good place to start — and look for a small project where you can apply it.",
			actx.Gaps[0])
	} else {
		b.WriteString(" Pick one skill to improve this week and look for a small project where you can apply it.")
	}

	return b.String()
}

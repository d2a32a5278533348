package scoring

import (
	"fmt"
	"strings"
)

// ShareLine builds the one-line share text for a completed attempt.
func ShareLine(r *Results) string {
	return fmt.Sprintf("%s I got %q (%d%%)! Think you can beat me?",
		r.Tier.Emoji, r.Tier.Name, r.Percentage)
}

// ShareCard builds the multi-line copyable summary: tier, score, and
// the per-category breakdown, closed by the tier tagline.
func ShareCard(r *Results, stageID string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s My result: %s\n", r.Tier.Emoji, r.Tier.Name)
	fmt.Fprintf(&b, "Score: %d%% (%d/%d) on %s\n\n", r.Percentage, r.TotalCorrect, r.TotalQuestions, stageID)
	for _, c := range r.Categories {
		fmt.Fprintf(&b, "  %s %s: %d/%d\n", c.Icon, c.Name, c.Correct, c.Total)
	}
	fmt.Fprintf(&b, "\n%q\n", r.Tier.Tagline)
	return b.String()
}

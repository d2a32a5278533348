// Package scoring turns a finished answer sequence into a results
// summary: totals, per-category breakdown, percentage, and the matched
// personality tier. Calculate is pure; it never mutates the stage.
package scoring

import (
	"fmt"
	"math"

	"github.com/abhisek/quizkit/internal/stage"
)

// Unanswered marks an answer slot with no recorded selection. It never
// matches a correct option index.
const Unanswered = -1

// CategoryScore is the per-category tally, in stage declaration order.
type CategoryScore struct {
	ID      string
	Name    string
	Icon    string
	Correct int
	Total   int
}

// Results summarizes one completed quiz attempt.
type Results struct {
	TotalCorrect   int
	TotalQuestions int

	// Percentage is TotalCorrect/TotalQuestions rounded half away from
	// zero to the nearest integer (math.Round).
	Percentage int

	// Tier is the first personality tier, in stored order, whose MinPct
	// is at or below Percentage.
	Tier stage.PersonalityTier

	// Categories holds one entry per stage category, in declaration order.
	Categories []CategoryScore
}

// Category returns the tally for the given category ID, or nil.
func (r *Results) Category(id string) *CategoryScore {
	for i := range r.Categories {
		if r.Categories[i].ID == id {
			return &r.Categories[i]
		}
	}
	return nil
}

// Calculate scores answers against the stage's questions. answers[i]
// pairs with st.Questions[i], so callers scoring a shuffled attempt
// must pass the questions in attempt order. Configuration errors (zero
// questions, answer count mismatch, no qualifying tier) wrap
// stage.ErrInvalidStage.
func Calculate(st *stage.Stage, answers []int) (*Results, error) {
	if len(st.Questions) == 0 {
		return nil, fmt.Errorf("%w: stage %q has no questions", stage.ErrInvalidStage, st.ID)
	}
	if len(answers) != len(st.Questions) {
		return nil, fmt.Errorf("%w: %d answers for %d questions", stage.ErrInvalidStage, len(answers), len(st.Questions))
	}

	byID := make(map[string]*CategoryScore, len(st.Categories))
	categories := make([]CategoryScore, len(st.Categories))
	for i, c := range st.Categories {
		categories[i] = CategoryScore{ID: c.ID, Name: c.Name, Icon: c.Icon}
		byID[c.ID] = &categories[i]
	}

	totalCorrect := 0
	for i, q := range st.Questions {
		cat, ok := byID[q.Category]
		if !ok {
			return nil, fmt.Errorf("%w: stage %q: question %d references unknown category %q",
				stage.ErrInvalidStage, st.ID, i, q.Category)
		}
		cat.Total++
		if answers[i] == q.Correct {
			cat.Correct++
			totalCorrect++
		}
	}

	pct := int(math.Round(float64(totalCorrect) / float64(len(st.Questions)) * 100))

	tier, ok := matchTier(st.PersonalityTypes, pct)
	if !ok {
		return nil, fmt.Errorf("%w: stage %q has no personality tier for %d%%",
			stage.ErrInvalidStage, st.ID, pct)
	}

	return &Results{
		TotalCorrect:   totalCorrect,
		TotalQuestions: len(st.Questions),
		Percentage:     pct,
		Tier:           tier,
		Categories:     categories,
	}, nil
}

// matchTier scans tiers in stored order and returns the first whose
// threshold is at or below pct. Data declares tiers in descending
// MinPct order so the highest qualifying tier wins.
func matchTier(tiers []stage.PersonalityTier, pct int) (stage.PersonalityTier, bool) {
	for _, t := range tiers {
		if t.MinPct <= pct {
			return t, true
		}
	}
	return stage.PersonalityTier{}, false
}

package stage

// Stage is a self-contained quiz dataset: the questions for one quiz,
// the categories they belong to, and the personality tiers used to
// classify the final score.
type Stage struct {
	// ID is the stage identifier, set by the loader (not part of the file).
	ID string `json:"-"`

	Questions        []Question        `json:"questions"`
	Categories       []Category        `json:"categories"`
	PersonalityTypes []PersonalityTier `json:"personalityTypes"`
}

// Question is a single multiple-choice question.
type Question struct {
	Text        string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Category    string   `json:"category"`
	Explanation string   `json:"explanation"`
}

// Category is a thematic grouping of questions, used for the
// per-topic score breakdown.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// PersonalityTier is a classification bucket keyed by a minimum
// percentage-correct threshold. Tiers are stored in descending MinPct
// order; the first tier whose MinPct is at or below the achieved
// percentage wins.
type PersonalityTier struct {
	MinPct      int    `json:"minPct"`
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Emoji       string `json:"emoji"`
}

// CategoryByID returns the category with the given identifier, or nil.
func (s *Stage) CategoryByID(id string) *Category {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return &s.Categories[i]
		}
	}
	return nil
}

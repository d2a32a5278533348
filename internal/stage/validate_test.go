package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validStage() *Stage {
	return &Stage{
		ID: "test",
		Categories: []Category{
			{ID: "sleep", Name: "Sleep", Icon: "😴"},
			{ID: "feeding", Name: "Feeding", Icon: "🍼"},
		},
		Questions: []Question{
			{Text: "q1", Options: []string{"a", "b"}, Correct: 0, Category: "sleep"},
			{Text: "q2", Options: []string{"a", "b", "c"}, Correct: 2, Category: "feeding"},
		},
		PersonalityTypes: []PersonalityTier{
			{MinPct: 70, Name: "Solid"},
			{MinPct: 0, Name: "Rookie"},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Stage)
		wantErr bool
	}{
		{"valid", func(st *Stage) {}, false},
		{"no questions", func(st *Stage) { st.Questions = nil }, true},
		{"no categories", func(st *Stage) { st.Categories = nil }, true},
		{"duplicate category", func(st *Stage) {
			st.Categories = append(st.Categories, Category{ID: "sleep", Name: "Dup"})
		}, true},
		{"one option", func(st *Stage) { st.Questions[0].Options = []string{"only"} }, true},
		{"correct negative", func(st *Stage) { st.Questions[0].Correct = -1 }, true},
		{"correct out of range", func(st *Stage) { st.Questions[0].Correct = 2 }, true},
		{"unknown category", func(st *Stage) { st.Questions[1].Category = "ghost" }, true},
		{"no catch-all tier", func(st *Stage) {
			st.PersonalityTypes = []PersonalityTier{{MinPct: 50, Name: "Half"}}
		}, true},
		{"no tiers at all", func(st *Stage) { st.PersonalityTypes = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := validStage()
			tt.mutate(st)
			err := Validate(st)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStage)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCategoryByID(t *testing.T) {
	st := validStage()
	c := st.CategoryByID("feeding")
	if assert.NotNil(t, c) {
		assert.Equal(t, "Feeding", c.Name)
	}
	assert.Nil(t, st.CategoryByID("ghost"))
}

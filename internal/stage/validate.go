package stage

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// stageSchema describes the stage file format. Structural rules the
// schema cannot express (index ranges, category references, catch-all
// tier) live in Validate.
const stageSchema = `{
  "type": "object",
  "required": ["questions", "categories", "personalityTypes"],
  "properties": {
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["question", "options", "correct", "category", "explanation"],
        "properties": {
          "question": {"type": "string", "minLength": 1},
          "options": {"type": "array", "items": {"type": "string"}, "minItems": 2},
          "correct": {"type": "integer", "minimum": 0},
          "category": {"type": "string", "minLength": 1},
          "explanation": {"type": "string"}
        }
      }
    },
    "categories": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "icon"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string", "minLength": 1},
          "icon": {"type": "string"}
        }
      }
    },
    "personalityTypes": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["minPct", "name"],
        "properties": {
          "minPct": {"type": "integer", "minimum": 0, "maximum": 100},
          "name": {"type": "string", "minLength": 1},
          "tagline": {"type": "string"},
          "description": {"type": "string"},
          "color": {"type": "string"},
          "emoji": {"type": "string"}
        }
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compileStageSchema compiles the stage schema once per process.
func compileStageSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(stageSchema), &def); err != nil {
			schemaErr = fmt.Errorf("parse stage schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://stage.json", def); err != nil {
			schemaErr = fmt.Errorf("add stage schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://stage.json")
	})
	return compiledSchema, schemaErr
}

// validateSchema checks a raw stage document against the JSON schema.
func validateSchema(raw []byte) error {
	schema, err := compileStageSchema()
	if err != nil {
		return err
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", ErrUnavailable, err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStage, err)
	}
	return nil
}

// Validate checks the structural invariants of a decoded stage:
// at least one question, unique category identifiers, every question
// referencing a declared category with an in-range correct index, and
// a catch-all personality tier with MinPct 0 so every score matches.
func Validate(st *Stage) error {
	if len(st.Questions) == 0 {
		return fmt.Errorf("%w: stage %q has no questions", ErrInvalidStage, st.ID)
	}
	if len(st.Categories) == 0 {
		return fmt.Errorf("%w: stage %q has no categories", ErrInvalidStage, st.ID)
	}

	seen := make(map[string]bool, len(st.Categories))
	for _, c := range st.Categories {
		if seen[c.ID] {
			return fmt.Errorf("%w: stage %q: duplicate category %q", ErrInvalidStage, st.ID, c.ID)
		}
		seen[c.ID] = true
	}

	for i, q := range st.Questions {
		if len(q.Options) < 2 {
			return fmt.Errorf("%w: stage %q: question %d has %d options", ErrInvalidStage, st.ID, i, len(q.Options))
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return fmt.Errorf("%w: stage %q: question %d correct index %d out of range", ErrInvalidStage, st.ID, i, q.Correct)
		}
		if !seen[q.Category] {
			return fmt.Errorf("%w: stage %q: question %d references unknown category %q", ErrInvalidStage, st.ID, i, q.Category)
		}
	}

	hasFloor := false
	for _, tier := range st.PersonalityTypes {
		if tier.MinPct <= 0 {
			hasFloor = true
			break
		}
	}
	if !hasFloor {
		return fmt.Errorf("%w: stage %q has no catch-all personality tier (minPct 0)", ErrInvalidStage, st.ID)
	}

	return nil
}

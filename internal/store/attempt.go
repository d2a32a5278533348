package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/quizkit/internal/scoring"
)

// Attempt is one completed quiz attempt as recorded in history.
type Attempt struct {
	ID             string
	StageID        string
	TotalCorrect   int
	TotalQuestions int
	Percentage     int
	TierName       string
	TierEmoji      string
	Categories     []scoring.CategoryScore
	CompletedAt    time.Time
}

// AttemptRepo provides access to the attempt history.
type AttemptRepo interface {
	// Save appends a completed attempt.
	Save(ctx context.Context, a *Attempt) error

	// Recent returns up to limit attempts, newest first.
	Recent(ctx context.Context, limit int) ([]Attempt, error)
}

type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Save(ctx context.Context, a *Attempt) error {
	cats, err := json.Marshal(a.Categories)
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO attempts (id, stage_id, total_correct, total_questions, percentage, tier_name, tier_emoji, categories, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.StageID, a.TotalCorrect, a.TotalQuestions, a.Percentage,
		a.TierName, a.TierEmoji, string(cats), a.CompletedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, stage_id, total_correct, total_questions, percentage, tier_name, tier_emoji, categories, completed_at
		FROM attempts ORDER BY completed_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var cats, completed string
		if err := rows.Scan(&a.ID, &a.StageID, &a.TotalCorrect, &a.TotalQuestions, &a.Percentage,
			&a.TierName, &a.TierEmoji, &cats, &completed); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		if err := json.Unmarshal([]byte(cats), &a.Categories); err != nil {
			return nil, fmt.Errorf("unmarshal categories: %w", err)
		}
		if a.CompletedAt, err = time.Parse(time.RFC3339, completed); err != nil {
			return nil, fmt.Errorf("parse completed_at: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"app/internal/model"
)

// ProgressRepository persists per-lesson visit facts.
type ProgressRepository interface {
	// UpsertVisit records a visit as a single atomic statement: the first
	// visit creates the row, every later visit only bumps last_visited_at.
	UpsertVisit(ctx context.Context, userID, lessonID string) (*model.LessonProgress, error)
	// VisitedLessonIDs returns the IDs of all lessons within the course
	// the user has a progress row for.
	VisitedLessonIDs(ctx context.Context, userID, courseID string) ([]string, error)
}

type progressRepo struct {
	db *sql.DB
}

// NewProgressRepo creates a new ProgressRepository
func NewProgressRepo(db *sql.DB) ProgressRepository {
	return &progressRepo{db: db}
}

func (r *progressRepo) UpsertVisit(ctx context.Context, userID, lessonID string) (*model.LessonProgress, error) {
	var p model.LessonProgress
	// first_visited_at is deliberately absent from the DO UPDATE set list.
	query := `
		INSERT INTO lesson_progress (user_id, lesson_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, lesson_id) DO UPDATE SET last_visited_at = now()
		RETURNING id, user_id, lesson_id, first_visited_at, last_visited_at
	`
	err := r.db.QueryRowContext(ctx, query, userID, lessonID).
		Scan(&p.ID, &p.UserID, &p.LessonID, &p.FirstVisitedAt, &p.LastVisitedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert lesson visit: %w", err)
	}
	return &p, nil
}

func (r *progressRepo) VisitedLessonIDs(ctx context.Context, userID, courseID string) ([]string, error) {
	query := `
		SELECT p.lesson_id
		FROM lesson_progress p
		JOIN lessons l ON l.id = p.lesson_id
		WHERE p.user_id = $1 AND l.course_id = $2
	`

	rows, err := r.db.QueryContext(ctx, query, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query visited lessons: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan visited lesson row: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return ids, nil
}

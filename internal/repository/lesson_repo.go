package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"app/internal/model"
)

// LessonRepository defines the interface for interacting with lesson data.
type LessonRepository interface {
	// GetLessonsByCourseID returns the course's lessons in display order:
	// sort_order ascending, ties broken by created_at ascending.
	GetLessonsByCourseID(ctx context.Context, courseID string) ([]model.Lesson, error)
	// GetLessonInCourse resolves a lesson by (courseID, lessonID) so a
	// lesson can never be addressed through the wrong course URL.
	GetLessonInCourse(ctx context.Context, courseID, lessonID string) (*model.Lesson, error)
	CreateLesson(ctx context.Context, l *model.Lesson) error
	UpdateLesson(ctx context.Context, l *model.Lesson) error
	DeleteLesson(ctx context.Context, courseID, lessonID string) (bool, error)
	// MaxOrder returns the highest sort_order within a course, 0 when the
	// course has no lessons.
	MaxOrder(ctx context.Context, courseID string) (int, error)
}

type lessonRepo struct {
	db *sql.DB
}

// NewLessonRepo creates a new LessonRepository
func NewLessonRepo(db *sql.DB) LessonRepository {
	return &lessonRepo{db: db}
}

func (r *lessonRepo) GetLessonsByCourseID(ctx context.Context, courseID string) ([]model.Lesson, error) {
	query := `
		SELECT id, course_id, title, content, sort_order, video_url, video_type, created_at, updated_at
		FROM lessons
		WHERE course_id = $1
		ORDER BY sort_order ASC, created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []model.Lesson
	for rows.Next() {
		var l model.Lesson
		if err := rows.Scan(
			&l.ID,
			&l.CourseID,
			&l.Title,
			&l.Content,
			&l.Order,
			&l.VideoURL,
			&l.VideoType,
			&l.CreatedAt,
			&l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lesson row: %w", err)
		}
		lessons = append(lessons, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	if len(lessons) == 0 {
		return []model.Lesson{}, nil
	}
	return lessons, nil
}

func (r *lessonRepo) GetLessonInCourse(ctx context.Context, courseID, lessonID string) (*model.Lesson, error) {
	query := `
		SELECT id, course_id, title, content, sort_order, video_url, video_type, created_at, updated_at
		FROM lessons
		WHERE id = $1 AND course_id = $2
	`
	var l model.Lesson
	err := r.db.QueryRowContext(ctx, query, lessonID, courseID).Scan(
		&l.ID,
		&l.CourseID,
		&l.Title,
		&l.Content,
		&l.Order,
		&l.VideoURL,
		&l.VideoType,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query lesson: %w", err)
	}
	return &l, nil
}

func (r *lessonRepo) CreateLesson(ctx context.Context, l *model.Lesson) error {
	query := `
		INSERT INTO lessons (course_id, title, content, sort_order, video_url, video_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	if err := r.db.QueryRowContext(ctx, query, l.CourseID, l.Title, l.Content, l.Order, l.VideoURL, l.VideoType).
		Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert lesson: %w", err)
	}
	return nil
}

func (r *lessonRepo) UpdateLesson(ctx context.Context, l *model.Lesson) error {
	query := `
		UPDATE lessons
		SET title = $1, content = $2, sort_order = $3, video_url = $4, video_type = $5, updated_at = now()
		WHERE id = $6 AND course_id = $7
		RETURNING created_at, updated_at
	`
	if err := r.db.QueryRowContext(ctx, query, l.Title, l.Content, l.Order, l.VideoURL, l.VideoType, l.ID, l.CourseID).
		Scan(&l.CreatedAt, &l.UpdatedAt); err != nil {
		return fmt.Errorf("failed to update lesson: %w", err)
	}
	return nil
}

func (r *lessonRepo) DeleteLesson(ctx context.Context, courseID, lessonID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lessons WHERE id = $1 AND course_id = $2`, lessonID, courseID)
	if err != nil {
		return false, fmt.Errorf("failed to delete lesson: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}

func (r *lessonRepo) MaxOrder(ctx context.Context, courseID string) (int, error) {
	var max int
	query := `SELECT COALESCE(MAX(sort_order), 0) FROM lessons WHERE course_id = $1`
	if err := r.db.QueryRowContext(ctx, query, courseID).Scan(&max); err != nil {
		return 0, fmt.Errorf("failed to query max lesson order: %w", err)
	}
	return max, nil
}

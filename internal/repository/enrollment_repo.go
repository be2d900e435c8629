package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"app/internal/model"
)

// EnrollmentRepository persists user↔course enrollment facts.
type EnrollmentRepository interface {
	// EnsureEnrollment inserts the (userID, courseID) enrollment if absent
	// and reports whether a new row was created. The unique constraint is
	// the source of truth: a concurrent insert of the same pair resolves
	// to the existing row, never an error.
	EnsureEnrollment(ctx context.Context, userID, courseID string) (*model.Enrollment, bool, error)
	GetEnrollment(ctx context.Context, userID, courseID string) (*model.Enrollment, error)
	IsEnrolled(ctx context.Context, userID, courseID string) (bool, error)
	// ListForUser returns the user's enrollments joined with course card
	// fields, newest enrollment first.
	ListForUser(ctx context.Context, userID string) ([]model.CourseEnrollment, error)
}

type enrollmentRepo struct {
	db *sql.DB
}

// NewEnrollmentRepo creates a new EnrollmentRepository
func NewEnrollmentRepo(db *sql.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) EnsureEnrollment(ctx context.Context, userID, courseID string) (*model.Enrollment, bool, error) {
	var e model.Enrollment
	// Insert-first rather than read-then-write: the read variant races.
	query := `
		INSERT INTO enrollments (user_id, course_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, course_id) DO NOTHING
		RETURNING id, user_id, course_id, enrolled_at
	`
	err := r.db.QueryRowContext(ctx, query, userID, courseID).
		Scan(&e.ID, &e.UserID, &e.CourseID, &e.EnrolledAt)
	if err == nil {
		return &e, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to insert enrollment: %w", err)
	}

	// DO NOTHING returned no row: the pair already exists, either from an
	// earlier call or a concurrent one that won the insert.
	existing, err := r.GetEnrollment(ctx, userID, courseID)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, fmt.Errorf("enrollment vanished after conflicting insert")
	}
	return existing, false, nil
}

func (r *enrollmentRepo) GetEnrollment(ctx context.Context, userID, courseID string) (*model.Enrollment, error) {
	var e model.Enrollment
	query := `
		SELECT id, user_id, course_id, enrolled_at
		FROM enrollments
		WHERE user_id = $1 AND course_id = $2
	`
	err := r.db.QueryRowContext(ctx, query, userID, courseID).
		Scan(&e.ID, &e.UserID, &e.CourseID, &e.EnrolledAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query enrollment: %w", err)
	}
	return &e, nil
}

func (r *enrollmentRepo) IsEnrolled(ctx context.Context, userID, courseID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM enrollments WHERE user_id = $1 AND course_id = $2)`
	if err := r.db.QueryRowContext(ctx, query, userID, courseID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to query enrollment existence: %w", err)
	}
	return exists, nil
}

func (r *enrollmentRepo) ListForUser(ctx context.Context, userID string) ([]model.CourseEnrollment, error) {
	query := `
		SELECT e.id, c.id, c.title, c.short_description, e.enrolled_at
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.user_id = $1
		ORDER BY e.enrolled_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []model.CourseEnrollment
	for rows.Next() {
		var ce model.CourseEnrollment
		if err := rows.Scan(&ce.EnrollmentID, &ce.CourseID, &ce.Title, &ce.ShortDescription, &ce.EnrolledAt); err != nil {
			return nil, fmt.Errorf("failed to scan enrollment row: %w", err)
		}
		enrollments = append(enrollments, ce)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	if len(enrollments) == 0 {
		return []model.CourseEnrollment{}, nil
	}
	return enrollments, nil
}

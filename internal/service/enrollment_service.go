package service

import (
	"context"

	"app/internal/model"
	"app/internal/repository"
)

// EnrollmentService records and queries user↔course membership.
type EnrollmentService interface {
	// Enroll registers the user in the course. Idempotent: calling it again
	// for the same pair returns the existing enrollment with created=false.
	// A lost race against a concurrent enroll resolves the same way.
	Enroll(ctx context.Context, userID, courseID string) (*model.Enrollment, bool, error)
	// IsEnrolled is false for an absent identity (empty userID).
	IsEnrolled(ctx context.Context, userID, courseID string) (bool, error)
	ListForUser(ctx context.Context, userID string) ([]model.CourseEnrollment, error)
}

type enrollmentService struct {
	repo       repository.EnrollmentRepository
	courseRepo repository.CourseRepository
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(repo repository.EnrollmentRepository, courseRepo repository.CourseRepository) EnrollmentService {
	return &enrollmentService{repo: repo, courseRepo: courseRepo}
}

func (s *enrollmentService) Enroll(ctx context.Context, userID, courseID string) (*model.Enrollment, bool, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, false, err
	}
	if course == nil {
		return nil, false, ErrCourseNotFound
	}
	return s.repo.EnsureEnrollment(ctx, userID, courseID)
}

func (s *enrollmentService) IsEnrolled(ctx context.Context, userID, courseID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return s.repo.IsEnrolled(ctx, userID, courseID)
}

func (s *enrollmentService) ListForUser(ctx context.Context, userID string) ([]model.CourseEnrollment, error) {
	return s.repo.ListForUser(ctx, userID)
}

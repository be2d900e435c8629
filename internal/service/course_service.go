package service

import (
	"context"

	"app/internal/model"
	"app/internal/repository"
)

// CourseService defines the interface for course catalog operations
type CourseService interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
	// GetCourse retrieves a course by its ID, nil when absent
	GetCourse(ctx context.Context, courseID string) (*model.Course, error)
	CreateCourse(ctx context.Context, c *model.Course) (*model.Course, error)
	UpdateCourse(ctx context.Context, c *model.Course) (*model.Course, error)
	// DeleteCourse deletes a course; its lessons, enrollments and progress
	// rows are removed by the storage-level cascade.
	DeleteCourse(ctx context.Context, courseID string) error
}

type courseService struct {
	repo repository.CourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) ListCourses(ctx context.Context) ([]model.Course, error) {
	return s.repo.ListCourses(ctx)
}

func (s *courseService) GetCourse(ctx context.Context, courseID string) (*model.Course, error) {
	return s.repo.GetCourseByID(ctx, courseID)
}

func (s *courseService) CreateCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	if err := s.repo.CreateCourse(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *courseService) UpdateCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	existing, err := s.repo.GetCourseByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrCourseNotFound
	}
	if err := s.repo.UpdateCourse(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *courseService) DeleteCourse(ctx context.Context, courseID string) error {
	existing, err := s.repo.GetCourseByID(ctx, courseID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCourseNotFound
	}
	return s.repo.DeleteCourse(ctx, courseID)
}

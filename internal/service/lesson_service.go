package service

import (
	"context"

	"app/internal/model"
	"app/internal/repository"
	"app/internal/video"
)

// orderGap is the spacing between auto-assigned lesson orders, leaving
// room to slot lessons in between later without renumbering.
const orderGap = 10

// LessonService defines the interface for lesson operations.
//
// Every write path recomputes the lesson's video type from its video URL;
// the type is never accepted from callers.
type LessonService interface {
	ListByCourse(ctx context.Context, courseID string) ([]model.Lesson, error)
	// GetLesson resolves a lesson by (courseID, lessonID), nil when absent
	GetLesson(ctx context.Context, courseID, lessonID string) (*model.Lesson, error)
	// CreateLesson creates a lesson in its course. When hasOrder is false
	// the lesson is placed after the course's current last lesson.
	CreateLesson(ctx context.Context, l *model.Lesson, hasOrder bool) (*model.Lesson, error)
	UpdateLesson(ctx context.Context, l *model.Lesson) (*model.Lesson, error)
	DeleteLesson(ctx context.Context, courseID, lessonID string) error
}

type lessonService struct {
	repo       repository.LessonRepository
	courseRepo repository.CourseRepository
}

// NewLessonService creates a new LessonService
func NewLessonService(repo repository.LessonRepository, courseRepo repository.CourseRepository) LessonService {
	return &lessonService{repo: repo, courseRepo: courseRepo}
}

func (s *lessonService) ListByCourse(ctx context.Context, courseID string) ([]model.Lesson, error) {
	return s.repo.GetLessonsByCourseID(ctx, courseID)
}

func (s *lessonService) GetLesson(ctx context.Context, courseID, lessonID string) (*model.Lesson, error) {
	return s.repo.GetLessonInCourse(ctx, courseID, lessonID)
}

func (s *lessonService) CreateLesson(ctx context.Context, l *model.Lesson, hasOrder bool) (*model.Lesson, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, l.CourseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	if !hasOrder {
		max, err := s.repo.MaxOrder(ctx, l.CourseID)
		if err != nil {
			return nil, err
		}
		l.Order = max + orderGap
	}

	l.VideoType = video.Classify(l.VideoURL)
	if err := s.repo.CreateLesson(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *lessonService) UpdateLesson(ctx context.Context, l *model.Lesson) (*model.Lesson, error) {
	existing, err := s.repo.GetLessonInCourse(ctx, l.CourseID, l.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrLessonNotFound
	}

	l.VideoType = video.Classify(l.VideoURL)
	if err := s.repo.UpdateLesson(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *lessonService) DeleteLesson(ctx context.Context, courseID, lessonID string) error {
	deleted, err := s.repo.DeleteLesson(ctx, courseID, lessonID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLessonNotFound
	}
	return nil
}

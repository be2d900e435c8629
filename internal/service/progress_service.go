package service

import (
	"context"

	"app/internal/model"
	"app/internal/repository"
)

// ProgressService records and queries per-lesson visits.
type ProgressService interface {
	// MarkVisited is idempotent: the first call creates the progress row,
	// later calls only bump last_visited_at. Safe to call on every view.
	MarkVisited(ctx context.Context, userID, lessonID string) (*model.LessonProgress, error)
	// VisitedLessonIDs returns the visited lessons of a course as a set,
	// so callers get O(1) membership checks.
	VisitedLessonIDs(ctx context.Context, userID, courseID string) (map[string]struct{}, error)
}

type progressService struct {
	repo repository.ProgressRepository
}

// NewProgressService creates a new ProgressService
func NewProgressService(repo repository.ProgressRepository) ProgressService {
	return &progressService{repo: repo}
}

func (s *progressService) MarkVisited(ctx context.Context, userID, lessonID string) (*model.LessonProgress, error) {
	return s.repo.UpsertVisit(ctx, userID, lessonID)
}

func (s *progressService) VisitedLessonIDs(ctx context.Context, userID, courseID string) (map[string]struct{}, error) {
	ids, err := s.repo.VisitedLessonIDs(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	visited := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		visited[id] = struct{}{}
	}
	return visited, nil
}

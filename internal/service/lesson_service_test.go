package service

import (
	"context"
	"errors"
	"testing"

	"app/internal/model"
	"app/internal/video"
)

func newLessonFixture() (LessonService, *fakeCourseRepo, *fakeLessonRepo) {
	courses := newFakeCourseRepo()
	lessons := newFakeLessonRepo()
	return NewLessonService(lessons, courses), courses, lessons
}

func TestCreateLessonClassifiesYouTubeVideo(t *testing.T) {
	svc, courses, _ := newLessonFixture()
	course := courses.add("C")

	l := &model.Lesson{
		CourseID: course.ID,
		Title:    "L",
		VideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	}
	created, err := svc.CreateLesson(context.Background(), l, true)
	if err != nil {
		t.Fatalf("CreateLesson returned error: %v", err)
	}
	if created.VideoType != video.TypeYouTube {
		t.Fatalf("expected youtube video type, got %q", created.VideoType)
	}
}

func TestCreateLessonNoVideo(t *testing.T) {
	svc, courses, _ := newLessonFixture()
	course := courses.add("C")

	created, err := svc.CreateLesson(context.Background(), &model.Lesson{CourseID: course.ID, Title: "L"}, true)
	if err != nil {
		t.Fatalf("CreateLesson returned error: %v", err)
	}
	if created.VideoType != video.TypeNone {
		t.Fatalf("expected none video type, got %q", created.VideoType)
	}
}

func TestCreateLessonUnparseableYouTubeURLStillSaves(t *testing.T) {
	// The entity layer stays loose: a YouTube-looking URL without an
	// extractable ID saves fine and simply yields no embed URL. Rejection
	// happens only at the request-validation boundary.
	svc, courses, _ := newLessonFixture()
	course := courses.add("C")

	l := &model.Lesson{
		CourseID: course.ID,
		Title:    "L",
		VideoURL: "https://www.youtube.com/playlist?list=PL123",
	}
	created, err := svc.CreateLesson(context.Background(), l, true)
	if err != nil {
		t.Fatalf("CreateLesson returned error: %v", err)
	}
	if created.VideoType != video.TypeYouTube {
		t.Fatalf("expected youtube video type, got %q", created.VideoType)
	}
	if embed := video.EmbedURL(created.VideoURL); embed != "" {
		t.Fatalf("expected no embed URL, got %q", embed)
	}
}

func TestCreateLessonAssignsOrderAfterLast(t *testing.T) {
	svc, courses, _ := newLessonFixture()
	course := courses.add("C")

	first, err := svc.CreateLesson(context.Background(), &model.Lesson{CourseID: course.ID, Title: "L1"}, false)
	if err != nil {
		t.Fatalf("CreateLesson returned error: %v", err)
	}
	if first.Order != 10 {
		t.Fatalf("expected first auto order 10, got %d", first.Order)
	}

	second, err := svc.CreateLesson(context.Background(), &model.Lesson{CourseID: course.ID, Title: "L2"}, false)
	if err != nil {
		t.Fatalf("CreateLesson returned error: %v", err)
	}
	if second.Order != 20 {
		t.Fatalf("expected second auto order 20, got %d", second.Order)
	}
}

func TestCreateLessonRespectsExplicitOrder(t *testing.T) {
	svc, courses, _ := newLessonFixture()
	course := courses.add("C")

	l := &model.Lesson{CourseID: course.ID, Title: "L", Order: 5}
	created, err := svc.CreateLesson(context.Background(), l, true)
	if err != nil {
		t.Fatalf("CreateLesson returned error: %v", err)
	}
	if created.Order != 5 {
		t.Fatalf("expected explicit order 5, got %d", created.Order)
	}
}

func TestCreateLessonUnknownCourse(t *testing.T) {
	svc, _, _ := newLessonFixture()

	_, err := svc.CreateLesson(context.Background(), &model.Lesson{CourseID: "missing", Title: "L"}, true)
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestUpdateLessonRecomputesVideoType(t *testing.T) {
	svc, courses, _ := newLessonFixture()
	course := courses.add("C")

	created, err := svc.CreateLesson(context.Background(), &model.Lesson{
		CourseID: course.ID,
		Title:    "L",
		VideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	}, true)
	if err != nil {
		t.Fatalf("CreateLesson returned error: %v", err)
	}

	created.VideoURL = "https://cdn.example.com/video.mp4"
	updated, err := svc.UpdateLesson(context.Background(), created)
	if err != nil {
		t.Fatalf("UpdateLesson returned error: %v", err)
	}
	if updated.VideoType != video.TypeDirect {
		t.Fatalf("expected direct video type after update, got %q", updated.VideoType)
	}
}

func TestUpdateLessonNotFound(t *testing.T) {
	svc, courses, _ := newLessonFixture()
	course := courses.add("C")

	_, err := svc.UpdateLesson(context.Background(), &model.Lesson{ID: "missing", CourseID: course.ID, Title: "L"})
	if !errors.Is(err, ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound, got %v", err)
	}
}

func TestDeleteLessonNotFound(t *testing.T) {
	svc, courses, _ := newLessonFixture()
	course := courses.add("C")

	err := svc.DeleteLesson(context.Background(), course.ID, "missing")
	if !errors.Is(err, ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound, got %v", err)
	}
}

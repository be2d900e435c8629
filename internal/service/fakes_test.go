package service

import (
	"context"
	"strconv"
	"time"

	"app/internal/model"
)

// In-memory repository fakes used across the service tests.

type fakeCourseRepo struct {
	courses map[string]*model.Course
	nextID  int
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[string]*model.Course)}
}

func (r *fakeCourseRepo) add(title string) *model.Course {
	r.nextID++
	c := &model.Course{
		ID:        "course-" + strconv.Itoa(r.nextID),
		Title:     title,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.courses[c.ID] = c
	return c
}

func (r *fakeCourseRepo) ListCourses(ctx context.Context) ([]model.Course, error) {
	out := []model.Course{}
	for _, c := range r.courses {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCourseRepo) GetCourseByID(ctx context.Context, courseID string) (*model.Course, error) {
	c, ok := r.courses[courseID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCourseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	r.nextID++
	c.ID = "course-" + strconv.Itoa(r.nextID)
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	r.courses[c.ID] = &cp
	return nil
}

func (r *fakeCourseRepo) UpdateCourse(ctx context.Context, c *model.Course) error {
	c.UpdatedAt = time.Now()
	cp := *c
	r.courses[c.ID] = &cp
	return nil
}

func (r *fakeCourseRepo) DeleteCourse(ctx context.Context, courseID string) error {
	delete(r.courses, courseID)
	return nil
}

type fakeLessonRepo struct {
	lessons map[string]*model.Lesson
	nextID  int
}

func newFakeLessonRepo() *fakeLessonRepo {
	return &fakeLessonRepo{lessons: make(map[string]*model.Lesson)}
}

func (r *fakeLessonRepo) GetLessonsByCourseID(ctx context.Context, courseID string) ([]model.Lesson, error) {
	out := []model.Lesson{}
	for _, l := range r.lessons {
		if l.CourseID == courseID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeLessonRepo) GetLessonInCourse(ctx context.Context, courseID, lessonID string) (*model.Lesson, error) {
	l, ok := r.lessons[lessonID]
	if !ok || l.CourseID != courseID {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLessonRepo) CreateLesson(ctx context.Context, l *model.Lesson) error {
	r.nextID++
	l.ID = "lesson-" + strconv.Itoa(r.nextID)
	l.CreatedAt = time.Now()
	l.UpdatedAt = l.CreatedAt
	cp := *l
	r.lessons[l.ID] = &cp
	return nil
}

func (r *fakeLessonRepo) UpdateLesson(ctx context.Context, l *model.Lesson) error {
	l.UpdatedAt = time.Now()
	cp := *l
	r.lessons[l.ID] = &cp
	return nil
}

func (r *fakeLessonRepo) DeleteLesson(ctx context.Context, courseID, lessonID string) (bool, error) {
	l, ok := r.lessons[lessonID]
	if !ok || l.CourseID != courseID {
		return false, nil
	}
	delete(r.lessons, lessonID)
	return true, nil
}

func (r *fakeLessonRepo) MaxOrder(ctx context.Context, courseID string) (int, error) {
	max := 0
	for _, l := range r.lessons {
		if l.CourseID == courseID && l.Order > max {
			max = l.Order
		}
	}
	return max, nil
}

type fakeEnrollmentRepo struct {
	enrollments map[string]*model.Enrollment
	courses     *fakeCourseRepo
	nextID      int
}

func newFakeEnrollmentRepo(courses *fakeCourseRepo) *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{enrollments: make(map[string]*model.Enrollment), courses: courses}
}

func enrollmentKey(userID, courseID string) string {
	return userID + "/" + courseID
}

func (r *fakeEnrollmentRepo) EnsureEnrollment(ctx context.Context, userID, courseID string) (*model.Enrollment, bool, error) {
	if e, ok := r.enrollments[enrollmentKey(userID, courseID)]; ok {
		cp := *e
		return &cp, false, nil
	}
	r.nextID++
	e := &model.Enrollment{
		ID:         "enrollment-" + strconv.Itoa(r.nextID),
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
	}
	r.enrollments[enrollmentKey(userID, courseID)] = e
	cp := *e
	return &cp, true, nil
}

func (r *fakeEnrollmentRepo) GetEnrollment(ctx context.Context, userID, courseID string) (*model.Enrollment, error) {
	e, ok := r.enrollments[enrollmentKey(userID, courseID)]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEnrollmentRepo) IsEnrolled(ctx context.Context, userID, courseID string) (bool, error) {
	_, ok := r.enrollments[enrollmentKey(userID, courseID)]
	return ok, nil
}

func (r *fakeEnrollmentRepo) ListForUser(ctx context.Context, userID string) ([]model.CourseEnrollment, error) {
	out := []model.CourseEnrollment{}
	for _, e := range r.enrollments {
		if e.UserID != userID {
			continue
		}
		ce := model.CourseEnrollment{
			EnrollmentID: e.ID,
			CourseID:     e.CourseID,
			EnrolledAt:   e.EnrolledAt,
		}
		if r.courses != nil {
			if c := r.courses.courses[e.CourseID]; c != nil {
				ce.Title = c.Title
				ce.ShortDescription = c.ShortDescription
			}
		}
		out = append(out, ce)
	}
	return out, nil
}

type fakeProgressRepo struct {
	records map[string]*model.LessonProgress
	lessons *fakeLessonRepo
	nextID  int
	// clock lets tests control visit timestamps
	clock func() time.Time
}

func newFakeProgressRepo(lessons *fakeLessonRepo) *fakeProgressRepo {
	return &fakeProgressRepo{
		records: make(map[string]*model.LessonProgress),
		lessons: lessons,
		clock:   time.Now,
	}
}

func (r *fakeProgressRepo) UpsertVisit(ctx context.Context, userID, lessonID string) (*model.LessonProgress, error) {
	key := userID + "/" + lessonID
	now := r.clock()
	if p, ok := r.records[key]; ok {
		p.LastVisitedAt = now
		cp := *p
		return &cp, nil
	}
	r.nextID++
	p := &model.LessonProgress{
		ID:             "progress-" + strconv.Itoa(r.nextID),
		UserID:         userID,
		LessonID:       lessonID,
		FirstVisitedAt: now,
		LastVisitedAt:  now,
	}
	r.records[key] = p
	cp := *p
	return &cp, nil
}

func (r *fakeProgressRepo) VisitedLessonIDs(ctx context.Context, userID, courseID string) ([]string, error) {
	var ids []string
	for _, p := range r.records {
		if p.UserID != userID {
			continue
		}
		if l, ok := r.lessons.lessons[p.LessonID]; ok && l.CourseID == courseID {
			ids = append(ids, p.LessonID)
		}
	}
	return ids, nil
}

package handler

import (
	"context"
	"fmt"
	"time"

	"app/internal/model"
	"app/internal/service"
	"app/internal/video"
)

// Fake services backing the handler tests. They keep everything in maps
// and mirror the service contracts: nil for absent entities, sentinel
// errors where the real services return them.

type fakeUserService struct {
	users  map[string]*model.User
	byMail map[string]*model.User
	nextID int
}

func newFakeUserService() *fakeUserService {
	return &fakeUserService{users: map[string]*model.User{}, byMail: map[string]*model.User{}}
}

func (s *fakeUserService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	if _, ok := s.byMail[email]; ok {
		return nil, service.ErrEmailTaken
	}
	s.nextID++
	u := &model.User{
		ID:           fmt.Sprintf("user-%d", s.nextID),
		Name:         name,
		Email:        email,
		PasswordHash: "hash:" + password,
		CreatedAt:    time.Now(),
	}
	s.users[u.ID] = u
	s.byMail[email] = u
	return u, nil
}

func (s *fakeUserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	u, ok := s.byMail[email]
	if !ok || u.PasswordHash != "hash:"+password {
		return nil, service.ErrInvalidCredentials
	}
	return u, nil
}

func (s *fakeUserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return s.users[userID], nil
}

func (s *fakeUserService) Token(u *model.User) (string, error) {
	return "token-for-" + u.ID, nil
}

type fakeCourseService struct {
	courses map[string]*model.Course
	nextID  int
}

func newFakeCourseService() *fakeCourseService {
	return &fakeCourseService{courses: map[string]*model.Course{}}
}

func (s *fakeCourseService) add(title string) *model.Course {
	s.nextID++
	c := &model.Course{
		ID:               fmt.Sprintf("course-%d", s.nextID),
		Title:            title,
		ShortDescription: title + " in short",
		Description:      title + " at length",
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	s.courses[c.ID] = c
	return c
}

func (s *fakeCourseService) ListCourses(ctx context.Context) ([]model.Course, error) {
	out := make([]model.Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, *c)
	}
	return out, nil
}

func (s *fakeCourseService) GetCourse(ctx context.Context, courseID string) (*model.Course, error) {
	return s.courses[courseID], nil
}

func (s *fakeCourseService) CreateCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	s.nextID++
	c.ID = fmt.Sprintf("course-%d", s.nextID)
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	s.courses[c.ID] = c
	return c, nil
}

func (s *fakeCourseService) UpdateCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	if _, ok := s.courses[c.ID]; !ok {
		return nil, service.ErrCourseNotFound
	}
	c.UpdatedAt = time.Now()
	s.courses[c.ID] = c
	return c, nil
}

func (s *fakeCourseService) DeleteCourse(ctx context.Context, courseID string) error {
	if _, ok := s.courses[courseID]; !ok {
		return service.ErrCourseNotFound
	}
	delete(s.courses, courseID)
	return nil
}

type fakeLessonService struct {
	lessons map[string]*model.Lesson
	nextID  int
}

func newFakeLessonService() *fakeLessonService {
	return &fakeLessonService{lessons: map[string]*model.Lesson{}}
}

func (s *fakeLessonService) add(courseID, title, videoURL string) *model.Lesson {
	s.nextID++
	l := &model.Lesson{
		ID:        fmt.Sprintf("lesson-%d", s.nextID),
		CourseID:  courseID,
		Title:     title,
		Order:     s.nextID * 10,
		VideoURL:  videoURL,
		VideoType: video.Classify(videoURL),
	}
	s.lessons[l.ID] = l
	return l
}

func (s *fakeLessonService) ListByCourse(ctx context.Context, courseID string) ([]model.Lesson, error) {
	out := []model.Lesson{}
	for _, l := range s.lessons {
		if l.CourseID == courseID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (s *fakeLessonService) GetLesson(ctx context.Context, courseID, lessonID string) (*model.Lesson, error) {
	l := s.lessons[lessonID]
	if l == nil || l.CourseID != courseID {
		return nil, nil
	}
	return l, nil
}

func (s *fakeLessonService) CreateLesson(ctx context.Context, l *model.Lesson, hasOrder bool) (*model.Lesson, error) {
	s.nextID++
	l.ID = fmt.Sprintf("lesson-%d", s.nextID)
	if !hasOrder {
		l.Order = s.nextID * 10
	}
	l.VideoType = video.Classify(l.VideoURL)
	s.lessons[l.ID] = l
	return l, nil
}

func (s *fakeLessonService) UpdateLesson(ctx context.Context, l *model.Lesson) (*model.Lesson, error) {
	stored := s.lessons[l.ID]
	if stored == nil || stored.CourseID != l.CourseID {
		return nil, service.ErrLessonNotFound
	}
	l.VideoType = video.Classify(l.VideoURL)
	s.lessons[l.ID] = l
	return l, nil
}

func (s *fakeLessonService) DeleteLesson(ctx context.Context, courseID, lessonID string) error {
	stored := s.lessons[lessonID]
	if stored == nil || stored.CourseID != courseID {
		return service.ErrLessonNotFound
	}
	delete(s.lessons, lessonID)
	return nil
}

type fakeEnrollmentService struct {
	courses  *fakeCourseService
	enrolled map[string]*model.Enrollment
	nextID   int
}

func newFakeEnrollmentService(courses *fakeCourseService) *fakeEnrollmentService {
	return &fakeEnrollmentService{courses: courses, enrolled: map[string]*model.Enrollment{}}
}

func (s *fakeEnrollmentService) Enroll(ctx context.Context, userID, courseID string) (*model.Enrollment, bool, error) {
	if _, ok := s.courses.courses[courseID]; !ok {
		return nil, false, service.ErrCourseNotFound
	}
	key := userID + "/" + courseID
	if e, ok := s.enrolled[key]; ok {
		return e, false, nil
	}
	s.nextID++
	e := &model.Enrollment{
		ID:         fmt.Sprintf("enrollment-%d", s.nextID),
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
	}
	s.enrolled[key] = e
	return e, true, nil
}

func (s *fakeEnrollmentService) IsEnrolled(ctx context.Context, userID, courseID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	_, ok := s.enrolled[userID+"/"+courseID]
	return ok, nil
}

func (s *fakeEnrollmentService) ListForUser(ctx context.Context, userID string) ([]model.CourseEnrollment, error) {
	out := []model.CourseEnrollment{}
	for _, e := range s.enrolled {
		if e.UserID != userID {
			continue
		}
		c := s.courses.courses[e.CourseID]
		out = append(out, model.CourseEnrollment{
			EnrollmentID:     e.ID,
			CourseID:         e.CourseID,
			Title:            c.Title,
			ShortDescription: c.ShortDescription,
			EnrolledAt:       e.EnrolledAt,
		})
	}
	return out, nil
}

type fakeProgressService struct {
	lessons *fakeLessonService
	visits  map[string]int
}

func newFakeProgressService(lessons *fakeLessonService) *fakeProgressService {
	return &fakeProgressService{lessons: lessons, visits: map[string]int{}}
}

func (s *fakeProgressService) MarkVisited(ctx context.Context, userID, lessonID string) (*model.LessonProgress, error) {
	s.visits[userID+"/"+lessonID]++
	return &model.LessonProgress{UserID: userID, LessonID: lessonID}, nil
}

func (s *fakeProgressService) VisitedLessonIDs(ctx context.Context, userID, courseID string) (map[string]struct{}, error) {
	out := map[string]struct{}{}
	for key := range s.visits {
		for _, l := range s.lessons.lessons {
			if key == userID+"/"+l.ID && l.CourseID == courseID {
				out[l.ID] = struct{}{}
			}
		}
	}
	return out, nil
}

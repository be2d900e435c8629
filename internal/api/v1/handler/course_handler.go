package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"app/internal/api/v1/dto"
	"app/internal/middleware"
	"app/internal/model"
	"app/internal/service"
	"app/internal/video"

	"github.com/rs/zerolog"
)

// CourseHandler serves the student-facing catalog: course listing,
// course detail, the gated lesson viewer, enrolling, and "my courses".
type CourseHandler struct {
	courseService     service.CourseService
	lessonService     service.LessonService
	enrollmentService service.EnrollmentService
	progressService   service.ProgressService
	basePath          string
	logger            zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler. basePath is the mount
// prefix stripped before these routes ("/v1" in the default wiring);
// redirects must re-apply it to produce resolvable locations.
func NewCourseHandler(
	courseService service.CourseService,
	lessonService service.LessonService,
	enrollmentService service.EnrollmentService,
	progressService service.ProgressService,
	basePath string,
	logger zerolog.Logger,
) *CourseHandler {
	return &CourseHandler{
		courseService:     courseService,
		lessonService:     lessonService,
		enrollmentService: enrollmentService,
		progressService:   progressService,
		basePath:          basePath,
		logger:            logger,
	}
}

func (h *CourseHandler) courseURL(courseID string) string {
	return h.basePath + "/courses/" + courseID
}

// RegisterRoutes mounts the catalog routes. The /courses subtree takes
// optional auth: listing and detail are public, while enroll and the
// lesson viewer enforce identity themselves.
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux, optionalAuthMw, authMw func(http.Handler) http.Handler) {
	mux.Handle("/courses", optionalAuthMw(http.HandlerFunc(h.listCourses)))
	mux.Handle("/courses/", optionalAuthMw(http.HandlerFunc(h.handleCoursePath)))
	mux.Handle("/my-courses", authMw(http.HandlerFunc(h.myCourses)))
}

func (h *CourseHandler) handleCoursePath(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/courses/"), "/")
	segments := strings.Split(rest, "/")
	switch {
	case len(segments) == 1 && segments[0] != "":
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		h.getCourse(w, r, segments[0])
	case len(segments) == 2 && segments[1] == "enroll":
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		h.enroll(w, r, segments[0])
	case len(segments) == 3 && segments[1] == "lessons":
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		h.viewLesson(w, r, segments[0], segments[2])
	default:
		http.NotFound(w, r)
	}
}

// listCourses godoc
// @Summary List courses
// @Description Public course catalog, newest first. Card fields only.
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseCardDTO
// @Failure 500 {string} string "Failed to list courses"
// @Router /courses [get]
func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || r.URL.Path != "/courses" {
		http.NotFound(w, r)
		return
	}
	courses, err := h.courseService.ListCourses(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list courses")
		http.Error(w, "Failed to list courses", http.StatusInternalServerError)
		return
	}
	cards := make([]dto.CourseCardDTO, 0, len(courses))
	for _, c := range courses {
		cards = append(cards, dto.CourseCardDTO{
			ID:               c.ID,
			Title:            c.Title,
			ShortDescription: c.ShortDescription,
			CreatedAt:        c.CreatedAt,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}

// getCourse godoc
// @Summary Course detail
// @Description Course with its lessons in display order. When the caller
// @Description is authenticated, is_enrolled reflects their enrollment.
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.CourseDetailDTO
// @Failure 404 {string} string "Course not found"
// @Failure 500 {string} string "Failed to retrieve course"
// @Router /courses/{courseId} [get]
func (h *CourseHandler) getCourse(w http.ResponseWriter, r *http.Request, courseID string) {
	course, err := h.courseService.GetCourse(r.Context(), courseID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to retrieve course")
		http.Error(w, "Failed to retrieve course", http.StatusInternalServerError)
		return
	}
	if course == nil {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}

	lessons, err := h.lessonService.ListByCourse(r.Context(), courseID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list lessons")
		http.Error(w, "Failed to retrieve course", http.StatusInternalServerError)
		return
	}

	userID, _ := r.Context().Value(middleware.UserContextKey).(string)
	isEnrolled, err := h.enrollmentService.IsEnrolled(r.Context(), userID, courseID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to check enrollment")
		http.Error(w, "Failed to retrieve course", http.StatusInternalServerError)
		return
	}

	resp := dto.CourseDetailDTO{
		Course:     courseToDTO(course),
		Lessons:    lessonSummaries(lessons, nil),
		IsEnrolled: isEnrolled,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// enroll godoc
// @Summary Enroll in a course
// @Description Idempotent: repeated calls keep the single enrollment.
// @Description Redirects back to the course detail either way.
// @Tags enrollments
// @Param courseId path string true "Course ID"
// @Success 303 {string} string "Redirect to course detail"
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Course not found"
// @Failure 500 {string} string "Failed to enroll"
// @Router /courses/{courseId}/enroll [post]
func (h *CourseHandler) enroll(w http.ResponseWriter, r *http.Request, courseID string) {
	userID, ok := r.Context().Value(middleware.UserContextKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized: User ID not found in context", http.StatusUnauthorized)
		return
	}
	_, created, err := h.enrollmentService.Enroll(r.Context(), userID, courseID)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			http.Error(w, "Course not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Msg("failed to enroll")
		http.Error(w, "Failed to enroll", http.StatusInternalServerError)
		return
	}
	if created {
		h.logger.Info().Str("user_id", userID).Str("course_id", courseID).Msg("user enrolled")
	}
	// PRG: refreshing the resulting page never re-submits the enroll.
	http.Redirect(w, r, h.courseURL(courseID), http.StatusSeeOther)
}

// viewLesson godoc
// @Summary View a lesson
// @Description Lesson viewer for enrolled users. Every view records the
// @Description visit. Unenrolled users are redirected to the course page
// @Description without any lesson content or progress side effect.
// @Tags lessons
// @Produce json
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} dto.LessonViewDTO
// @Failure 302 {string} string "Redirect to course detail when not enrolled"
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Lesson not found"
// @Failure 500 {string} string "Failed to retrieve lesson"
// @Router /courses/{courseId}/lessons/{lessonId} [get]
func (h *CourseHandler) viewLesson(w http.ResponseWriter, r *http.Request, courseID, lessonID string) {
	userID, ok := r.Context().Value(middleware.UserContextKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized: User ID not found in context", http.StatusUnauthorized)
		return
	}

	lesson, err := h.lessonService.GetLesson(r.Context(), courseID, lessonID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to retrieve lesson")
		http.Error(w, "Failed to retrieve lesson", http.StatusInternalServerError)
		return
	}
	if lesson == nil {
		http.Error(w, "Lesson not found", http.StatusNotFound)
		return
	}

	// The enrollment check must precede any progress write: a user who
	// unenrolled and re-requests the lesson URL is turned away here.
	isEnrolled, err := h.enrollmentService.IsEnrolled(r.Context(), userID, courseID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to check enrollment")
		http.Error(w, "Failed to retrieve lesson", http.StatusInternalServerError)
		return
	}
	if !isEnrolled {
		http.Redirect(w, r, h.courseURL(courseID), http.StatusFound)
		return
	}

	// Progress recording must never block content delivery.
	if _, err := h.progressService.MarkVisited(r.Context(), userID, lessonID); err != nil {
		h.logger.Warn().Err(err).
			Str("user_id", userID).
			Str("lesson_id", lessonID).
			Msg("failed to record lesson visit")
	}

	course, err := h.courseService.GetCourse(r.Context(), courseID)
	if err != nil || course == nil {
		h.logger.Error().Err(err).Msg("failed to retrieve course for lesson view")
		http.Error(w, "Failed to retrieve lesson", http.StatusInternalServerError)
		return
	}
	siblings, err := h.lessonService.ListByCourse(r.Context(), courseID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list lessons for lesson view")
		http.Error(w, "Failed to retrieve lesson", http.StatusInternalServerError)
		return
	}
	visited, err := h.progressService.VisitedLessonIDs(r.Context(), userID, courseID)
	if err != nil {
		h.logger.Warn().Err(err).Msg("failed to load visited lessons")
		visited = map[string]struct{}{}
	}

	resp := dto.LessonViewDTO{
		Lesson: lessonToDTO(lesson),
		Course: dto.CourseCardDTO{
			ID:               course.ID,
			Title:            course.Title,
			ShortDescription: course.ShortDescription,
			CreatedAt:        course.CreatedAt,
		},
		Lessons: lessonSummaries(siblings, visited),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// myCourses godoc
// @Summary My courses
// @Description Courses the authenticated user is enrolled in, newest first.
// @Tags enrollments
// @Produce json
// @Success 200 {array} dto.CourseEnrollmentDTO
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Failed to list enrollments"
// @Router /my-courses [get]
func (h *CourseHandler) myCourses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	userID, ok := r.Context().Value(middleware.UserContextKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized: User ID not found in context", http.StatusUnauthorized)
		return
	}
	enrollments, err := h.enrollmentService.ListForUser(r.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list enrollments")
		http.Error(w, "Failed to list enrollments", http.StatusInternalServerError)
		return
	}
	out := make([]dto.CourseEnrollmentDTO, 0, len(enrollments))
	for _, e := range enrollments {
		out = append(out, dto.CourseEnrollmentDTO{
			EnrollmentID:     e.EnrollmentID,
			CourseID:         e.CourseID,
			Title:            e.Title,
			ShortDescription: e.ShortDescription,
			EnrolledAt:       e.EnrolledAt,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func courseToDTO(c *model.Course) dto.CourseResponseDTO {
	return dto.CourseResponseDTO{
		ID:               c.ID,
		Title:            c.Title,
		ShortDescription: c.ShortDescription,
		Description:      c.Description,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func lessonToDTO(l *model.Lesson) dto.LessonResponseDTO {
	return dto.LessonResponseDTO{
		ID:            l.ID,
		CourseID:      l.CourseID,
		Title:         l.Title,
		Content:       l.Content,
		Order:         l.Order,
		VideoURL:      l.VideoURL,
		VideoType:     string(l.VideoType),
		VideoEmbedURL: video.EmbedURL(l.VideoURL),
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

func lessonSummaries(lessons []model.Lesson, visited map[string]struct{}) []dto.LessonSummaryDTO {
	out := make([]dto.LessonSummaryDTO, 0, len(lessons))
	for _, l := range lessons {
		_, wasVisited := visited[l.ID]
		out = append(out, dto.LessonSummaryDTO{
			ID:        l.ID,
			Title:     l.Title,
			Order:     l.Order,
			VideoType: string(l.VideoType),
			Visited:   wasVisited,
		})
	}
	return out
}

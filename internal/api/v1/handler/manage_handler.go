package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"app/internal/api/v1/dto"
	"app/internal/model"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ManageHandler handles the staff-only management surface for courses
// and lessons. The whole /manage subtree sits behind the staff gate.
type ManageHandler struct {
	courseService service.CourseService
	lessonService service.LessonService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewManageHandler creates a new ManageHandler
func NewManageHandler(
	courseService service.CourseService,
	lessonService service.LessonService,
	validate *validator.Validate,
	logger zerolog.Logger,
) *ManageHandler {
	return &ManageHandler{
		courseService: courseService,
		lessonService: lessonService,
		validate:      validate,
		logger:        logger,
	}
}

// RegisterRoutes mounts the management routes behind the staff middleware chain.
func (h *ManageHandler) RegisterRoutes(mux *http.ServeMux, staffMw func(http.Handler) http.Handler) {
	mux.Handle("/manage/courses", staffMw(http.HandlerFunc(h.handleCourses)))
	mux.Handle("/manage/courses/", staffMw(http.HandlerFunc(h.handleCoursePath)))
}

func (h *ManageHandler) handleCourses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listCourses(w, r)
	case http.MethodPost:
		h.createCourse(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *ManageHandler) handleCoursePath(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/manage/courses/"), "/")
	segments := strings.Split(rest, "/")
	switch {
	case len(segments) == 1 && segments[0] != "":
		switch r.Method {
		case http.MethodPut:
			h.updateCourse(w, r, segments[0])
		case http.MethodDelete:
			h.deleteCourse(w, r, segments[0])
		default:
			http.NotFound(w, r)
		}
	case len(segments) == 2 && segments[1] == "lessons":
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		h.createLesson(w, r, segments[0])
	case len(segments) == 3 && segments[1] == "lessons":
		switch r.Method {
		case http.MethodGet:
			h.getLesson(w, r, segments[0], segments[2])
		case http.MethodPut:
			h.updateLesson(w, r, segments[0], segments[2])
		case http.MethodDelete:
			h.deleteLesson(w, r, segments[0], segments[2])
		default:
			http.NotFound(w, r)
		}
	default:
		http.NotFound(w, r)
	}
}

// listCourses godoc
// @Summary List courses (staff)
// @Description Same catalog as the public listing, for the management UI.
// @Tags manage
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CourseCardDTO
// @Failure 401 {string} string "Unauthorized"
// @Failure 403 {string} string "Forbidden"
// @Router /manage/courses [get]
func (h *ManageHandler) listCourses(w http.ResponseWriter, r *http.Request) {
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

// createCourse godoc
// @Summary Create a course
// @Tags manage
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course body dto.CourseCreateDTO true "Course"
// @Success 201 {object} dto.CourseResponseDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 401 {string} string "Unauthorized"
// @Failure 403 {string} string "Forbidden"
// @Router /manage/courses [post]
func (h *ManageHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	var req dto.CourseCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	course, err := h.courseService.CreateCourse(r.Context(), &model.Course{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create course")
		http.Error(w, "Failed to create course", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(courseToDTO(course))
}

// updateCourse godoc
// @Summary Update a course
// @Description Partial update: absent fields keep their stored values.
// @Tags manage
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param course body dto.CourseUpdateDTO true "Fields to update"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 404 {string} string "Course not found"
// @Router /manage/courses/{courseId} [put]
func (h *ManageHandler) updateCourse(w http.ResponseWriter, r *http.Request, courseID string) {
	var req dto.CourseUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	course, err := h.courseService.GetCourse(r.Context(), courseID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to retrieve course")
		http.Error(w, "Failed to update course", http.StatusInternalServerError)
		return
	}
	if course == nil {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}
	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.ShortDescription != nil {
		course.ShortDescription = *req.ShortDescription
	}
	if req.Description != nil {
		course.Description = *req.Description
	}

	updated, err := h.courseService.UpdateCourse(r.Context(), course)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			http.Error(w, "Course not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Msg("failed to update course")
		http.Error(w, "Failed to update course", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(courseToDTO(updated))
}

// deleteCourse godoc
// @Summary Delete a course
// @Description Deletes the course and, via cascade, its lessons,
// @Description enrollments and progress records.
// @Tags manage
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 204 {string} string "No Content"
// @Failure 404 {string} string "Course not found"
// @Router /manage/courses/{courseId} [delete]
func (h *ManageHandler) deleteCourse(w http.ResponseWriter, r *http.Request, courseID string) {
	if err := h.courseService.DeleteCourse(r.Context(), courseID); err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			http.Error(w, "Course not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Msg("failed to delete course")
		http.Error(w, "Failed to delete course", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// createLesson godoc
// @Summary Create a lesson
// @Description Adds a lesson to a course. When order is omitted the
// @Description lesson is placed after the course's current last lesson.
// @Tags manage
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param lesson body dto.LessonCreateDTO true "Lesson"
// @Success 201 {object} dto.LessonResponseDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 404 {string} string "Course not found"
// @Router /manage/courses/{courseId}/lessons [post]
func (h *ManageHandler) createLesson(w http.ResponseWriter, r *http.Request, courseID string) {
	var req dto.LessonCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	lesson := &model.Lesson{
		CourseID: courseID,
		Title:    req.Title,
		Content:  req.Content,
		VideoURL: req.VideoURL,
	}
	if req.Order != nil {
		lesson.Order = *req.Order
	}
	created, err := h.lessonService.CreateLesson(r.Context(), lesson, req.Order != nil)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			http.Error(w, "Course not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Msg("failed to create lesson")
		http.Error(w, "Failed to create lesson", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(lessonToDTO(created))
}

// getLesson godoc
// @Summary Get a lesson (staff)
// @Description Lesson detail for the management UI, no enrollment gate.
// @Tags manage
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} dto.LessonResponseDTO
// @Failure 404 {string} string "Lesson not found"
// @Router /manage/courses/{courseId}/lessons/{lessonId} [get]
func (h *ManageHandler) getLesson(w http.ResponseWriter, r *http.Request, courseID, lessonID string) {
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
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lessonToDTO(lesson))
}

// updateLesson godoc
// @Summary Update a lesson
// @Description Partial update. Changing video_url recomputes the stored
// @Description video type.
// @Tags manage
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Param lesson body dto.LessonUpdateDTO true "Fields to update"
// @Success 200 {object} dto.LessonResponseDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 404 {string} string "Lesson not found"
// @Router /manage/courses/{courseId}/lessons/{lessonId} [put]
func (h *ManageHandler) updateLesson(w http.ResponseWriter, r *http.Request, courseID, lessonID string) {
	var req dto.LessonUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	lesson, err := h.lessonService.GetLesson(r.Context(), courseID, lessonID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to retrieve lesson")
		http.Error(w, "Failed to update lesson", http.StatusInternalServerError)
		return
	}
	if lesson == nil {
		http.Error(w, "Lesson not found", http.StatusNotFound)
		return
	}
	if req.Title != nil {
		lesson.Title = *req.Title
	}
	if req.Content != nil {
		lesson.Content = *req.Content
	}
	if req.Order != nil {
		lesson.Order = *req.Order
	}
	if req.VideoURL != nil {
		lesson.VideoURL = *req.VideoURL
	}

	updated, err := h.lessonService.UpdateLesson(r.Context(), lesson)
	if err != nil {
		if errors.Is(err, service.ErrLessonNotFound) {
			http.Error(w, "Lesson not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Msg("failed to update lesson")
		http.Error(w, "Failed to update lesson", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lessonToDTO(updated))
}

// deleteLesson godoc
// @Summary Delete a lesson
// @Description Progress records for the lesson are removed by cascade.
// @Tags manage
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param lessonId path string true "Lesson ID"
// @Success 204 {string} string "No Content"
// @Failure 404 {string} string "Lesson not found"
// @Router /manage/courses/{courseId}/lessons/{lessonId} [delete]
func (h *ManageHandler) deleteLesson(w http.ResponseWriter, r *http.Request, courseID, lessonID string) {
	if err := h.lessonService.DeleteLesson(r.Context(), courseID, lessonID); err != nil {
		if errors.Is(err, service.ErrLessonNotFound) {
			http.Error(w, "Lesson not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Msg("failed to delete lesson")
		http.Error(w, "Failed to delete lesson", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

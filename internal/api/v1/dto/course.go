package dto

import "time"

// CourseCreateDTO is used for incoming course creation requests
type CourseCreateDTO struct {
	Title            string `json:"title" validate:"required,max=255"`
	ShortDescription string `json:"short_description" validate:"required,max=500"`
	Description      string `json:"description" validate:"required"`
}

// CourseUpdateDTO is used for incoming course update requests
type CourseUpdateDTO struct {
	Title            *string `json:"title,omitempty" validate:"omitempty,max=255"`
	ShortDescription *string `json:"short_description,omitempty" validate:"omitempty,max=500"`
	Description      *string `json:"description,omitempty"`
}

// CourseCardDTO carries the fields shown on catalog list cards
type CourseCardDTO struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"short_description"`
	CreatedAt        time.Time `json:"created_at"`
}

// CourseResponseDTO is returned for a single course
type CourseResponseDTO struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"short_description"`
	Description      string    `json:"description"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CourseDetailDTO is the course detail page payload: the course, its
// lessons in display order, and the caller's enrollment status.
type CourseDetailDTO struct {
	Course     CourseResponseDTO  `json:"course"`
	Lessons    []LessonSummaryDTO `json:"lessons"`
	IsEnrolled bool               `json:"is_enrolled"`
}

package dto

import "time"

// EnrollmentResponseDTO is returned for a single enrollment
type EnrollmentResponseDTO struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	CourseID   string    `json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// CourseEnrollmentDTO is one entry of the "my courses" listing
type CourseEnrollmentDTO struct {
	EnrollmentID     string    `json:"enrollment_id"`
	CourseID         string    `json:"course_id"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"short_description"`
	EnrolledAt       time.Time `json:"enrolled_at"`
}

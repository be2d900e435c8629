package model

import "time"

// Enrollment records that a user is registered in a course. The
// (user_id, course_id) pair is unique at the storage layer, which is what
// makes the enroll operation idempotent under concurrent requests.
type Enrollment struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"user_id"`
	CourseID   string    `db:"course_id" json:"course_id"`
	EnrolledAt time.Time `db:"enrolled_at" json:"enrolled_at"`
}

// CourseEnrollment is an enrollment joined with the card fields of its
// course, used for the "my courses" listing.
type CourseEnrollment struct {
	EnrollmentID     string    `db:"enrollment_id" json:"enrollment_id"`
	CourseID         string    `db:"course_id" json:"course_id"`
	Title            string    `db:"title" json:"title"`
	ShortDescription string    `db:"short_description" json:"short_description"`
	EnrolledAt       time.Time `db:"enrolled_at" json:"enrolled_at"`
}

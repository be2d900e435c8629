package model

import (
	"time"

	"app/internal/video"
)

// Lesson belongs to exactly one course. VideoType is derived from VideoURL
// in the service write path and is never accepted as input.
type Lesson struct {
	ID        string     `db:"id" json:"id"`
	CourseID  string     `db:"course_id" json:"course_id"`
	Title     string     `db:"title" json:"title"`
	Content   string     `db:"content" json:"content"`
	Order     int        `db:"sort_order" json:"order"`
	VideoURL  string     `db:"video_url" json:"video_url"`
	VideoType video.Type `db:"video_type" json:"video_type"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

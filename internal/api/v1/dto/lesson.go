package dto

import "time"

// LessonCreateDTO is used for incoming lesson creation requests.
// VideoURL with a YouTube host must contain an extractable video ID;
// the youtube_url rule rejects it here so the entity is never saved
// from a form the staff user believes carries a working video.
type LessonCreateDTO struct {
	Title    string `json:"title" validate:"required,max=255"`
	Content  string `json:"content"`
	Order    *int   `json:"order,omitempty" validate:"omitempty,min=0"`
	VideoURL string `json:"video_url" validate:"omitempty,url,youtube_url"`
}

// LessonUpdateDTO is used for incoming lesson update requests
type LessonUpdateDTO struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Content  *string `json:"content,omitempty"`
	Order    *int    `json:"order,omitempty" validate:"omitempty,min=0"`
	VideoURL *string `json:"video_url,omitempty" validate:"omitempty,url,youtube_url"`
}

// LessonSummaryDTO carries the fields shown in lesson listings.
// Visited is only meaningful on responses rendered for an enrolled user.
type LessonSummaryDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Order     int    `json:"order"`
	VideoType string `json:"video_type"`
	Visited   bool   `json:"visited"`
}

// LessonResponseDTO is returned for a single lesson
type LessonResponseDTO struct {
	ID            string    `json:"id"`
	CourseID      string    `json:"course_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Order         int       `json:"order"`
	VideoURL      string    `json:"video_url"`
	VideoType     string    `json:"video_type"`
	VideoEmbedURL string    `json:"video_embed_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LessonViewDTO is the lesson viewer payload for an enrolled user: the
// lesson itself, its course, and the sibling lessons with visit markers.
type LessonViewDTO struct {
	Lesson  LessonResponseDTO  `json:"lesson"`
	Course  CourseCardDTO      `json:"course"`
	Lessons []LessonSummaryDTO `json:"lessons"`
}

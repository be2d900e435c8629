package model

import "time"

// LessonProgress records that a user has visited a lesson. One row per
// (user_id, lesson_id), constraint-enforced. FirstVisitedAt is set once;
// LastVisitedAt is bumped on every revisit.
type LessonProgress struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"user_id"`
	LessonID       string    `db:"lesson_id" json:"lesson_id"`
	FirstVisitedAt time.Time `db:"first_visited_at" json:"first_visited_at"`
	LastVisitedAt  time.Time `db:"last_visited_at" json:"last_visited_at"`
}

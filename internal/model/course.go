package model

import "time"

// Course represents a course in the catalog. ShortDescription is shown on
// list cards, Description on the detail page, so list queries never need
// to fetch the full text.
type Course struct {
	ID               string    `db:"id" json:"id"`
	Title            string    `db:"title" json:"title"`
	ShortDescription string    `db:"short_description" json:"short_description"`
	Description      string    `db:"description" json:"description"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

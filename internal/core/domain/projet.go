package domain

import "time"

// Projet is the core shared-project entity. AuthorID is immutable after
// creation; CategoryID is a best-effort denormalized link to a Category record
// and may be empty when no matching category exists.
type Projet struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	CategoryID  string    `json:"category_id,omitempty"`
	Description string    `json:"description"`
	AuthorID    string    `json:"-"`
	Author      *Author   `json:"author,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Category is a curated category record used to enrich the free-text category
// value on projets.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

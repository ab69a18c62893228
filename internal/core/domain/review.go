package domain

import "time"

// Review is a comment left on a projet. Every review references an existing
// projet; when that projet is deleted all of its reviews are removed with it.
type Review struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"-"`
	Author    *Author   `json:"author,omitempty"`
	ProjetID  string    `json:"projet"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

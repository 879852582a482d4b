package domain

import "time"

// PostID identifies a blog post.
type PostID string

// Post is a blog post as returned by the lookup use case.
type Post struct {
	ID          PostID    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body,omitempty"`
	Author      string    `json:"author,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

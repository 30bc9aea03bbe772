package entities

import "time"

// Blog represents a stored blog post. AuthorID and UserID both hold the creator.
type Blog struct {
	ID          string
	Title       string
	Description string
	Image       string
	CategoryID  string
	AuthorID    string
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PopulatedBlog is a blog joined with its category and author
type PopulatedBlog struct {
	Blog
	CategoryName        string
	CategoryDescription *string
	AuthorName          string
}

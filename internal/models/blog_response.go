package models

import "time"

// BlogCategory is the populated category of a blog
type BlogCategory struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// BlogAuthor is the populated author of a blog
type BlogAuthor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BlogResponse is a blog with its references resolved
type BlogResponse struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Category    BlogCategory `json:"category"`
	Author      BlogAuthor   `json:"author"`
	User        string       `json:"user"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// CreateBlogResponse represents the response after creating a blog
type CreateBlogResponse struct {
	Message string        `json:"message"`
	Blog    *BlogResponse `json:"blog"`
}

// UpdateBlogResponse represents the response after updating a blog
type UpdateBlogResponse struct {
	Blog *BlogResponse `json:"blog"`
}

// BlogListResponse is one page of the blog feed
type BlogListResponse struct {
	Blogs       []*BlogResponse `json:"blogs"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
	TotalBlogs  int             `json:"totalBlogs"`
}

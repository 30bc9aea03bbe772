package models

// BlogForm is the multipart body of blog create and update. The image part is read separately.
type BlogForm struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Category    string `form:"category" binding:"required"` // Category ID
	Author      string `form:"author"`                      // ignored, the author comes from the session
}

// BlogListQuery carries the feed search and page window
type BlogListQuery struct {
	Search string
	Page   int
	Limit  int
}

package entities

import "time"

// QuestionCategory is a per-user folder of study notes
type QuestionCategory struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Question is a question/answer pair; Answer holds rich-text HTML as submitted
type Question struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	CategoryID string    `json:"categoryId"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

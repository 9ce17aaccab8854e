package model

import "time"

// Message is a guestboard entry. Messages are append-only and listed
// newest-first.
type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// InsertMessage carries the fields of a message submission after boundary
// validation. The store assigns the ID and creation timestamp.
type InsertMessage struct {
	Name    string
	Email   string
	Content string
}

// MessageRequest is the POST /api/messages body.
type MessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Content string `json:"content"`
}

// MessageListResponse is the GET /api/messages response body. Total reports
// the full stored count regardless of the requested page.
type MessageListResponse struct {
	Messages []Message `json:"messages"`
	Total    int       `json:"total"`
}

// SubmitMessageResponse is the POST /api/messages response body.
type SubmitMessageResponse struct {
	Message string  `json:"message"`
	Data    Message `json:"data"`
}

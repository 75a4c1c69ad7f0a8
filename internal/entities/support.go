package entities

import "time"

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusClosed     TicketStatus = "closed"
)

type Ticket struct {
	ID        int64         `json:"id"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    TicketStatus  `json:"status"`
	Priority  string        `json:"priority"`
	UserID    int64         `json:"user_id"`
	UserName  string        `json:"user_name"`
	UserRole  string        `json:"user_role"`
	Replies   []TicketReply `json:"replies,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type TicketReply struct {
	ID         int64     `json:"id"`
	Message    string    `json:"message"`
	AuthorName string    `json:"author_name"`
	AuthorRole string    `json:"author_role"`
	CreatedAt  time.Time `json:"created_at"`
}

type ErrorLog struct {
	ID         int64     `json:"id"`
	Level      string    `json:"level"`
	Message    string    `json:"message"`
	Method     string    `json:"method,omitempty"`
	Path       string    `json:"path,omitempty"`
	StatusCode int       `json:"status_code,omitempty"`
	Stack      string    `json:"stack,omitempty"`
	UserID     *int64    `json:"user_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

package entities

import (
	"time"

	"github.com/google/uuid"
)

// Activity is one audited dashboard mutation.
type Activity struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	Role       string    `json:"role"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

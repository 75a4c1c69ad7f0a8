package messaging

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoutingActivityRecorded = "activity.recorded"
	RoutingBroadcastPrefix  = "broadcast."

	QueueActivityLog = "dashboard.activity.log"
	QueueBroadcasts  = "dashboard.broadcasts"
)

// ActivityRecordedEvent is emitted after every successful dashboard mutation.
type ActivityRecordedEvent struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	Role       string    `json:"role"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BroadcastRequestedEvent carries an admin broadcast to the broadcast worker.
type BroadcastRequestedEvent struct {
	ID          uuid.UUID `json:"id"`
	Channel     string    `json:"channel"`
	Audience    string    `json:"audience"`
	SubjectEn   string    `json:"subject_en"`
	SubjectAr   string    `json:"subject_ar"`
	BodyEn      string    `json:"body_en"`
	BodyAr      string    `json:"body_ar"`
	RequestedBy string    `json:"requested_by"`
	RequestedAt time.Time `json:"requested_at"`
}

func (e BroadcastRequestedEvent) RoutingKey() string {
	return RoutingBroadcastPrefix + e.Channel
}

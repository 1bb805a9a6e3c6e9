package messaging

import (
	"time"

	"github.com/google/uuid"
)

// CollectTrigger asks the collector daemon to run one job outside its
// normal schedule
type CollectTrigger struct {
	ID          string    `json:"id"`
	Job         string    `json:"job"`
	RequestedBy string    `json:"requested_by,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}

// NewCollectTrigger creates a trigger for the named job
func NewCollectTrigger(job string, requestedBy string, requestedAt time.Time) *CollectTrigger {
	return &CollectTrigger{
		ID:          uuid.New().String(),
		Job:         job,
		RequestedBy: requestedBy,
		RequestedAt: requestedAt,
	}
}

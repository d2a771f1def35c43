package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileUpdateAudit records a received profile update. It is written to the
// audit trail only; the profile itself is never changed.
type ProfileUpdateAudit struct {
	ID         uuid.UUID     `json:"id"`
	RequestID  string        `json:"request_id"`
	Payload    ProfileUpdate `json:"payload"`
	ReceivedAt time.Time     `json:"received_at"`
}

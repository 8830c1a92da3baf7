package schema

import (
	"time"

	"github.com/google/uuid"
)

// Notification - a persisted message for a user, stored in postgres
type Notification struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	AccountNumber string    `json:"account_number" gorm:"index"`
	Message       string    `json:"message"`
	ReportID      string    `json:"report_id,omitempty"`
	EventID       string    `json:"event_id,omitempty"`
	Read          bool      `json:"read" sql:"default:false"`
	CreatedAt     time.Time `json:"created_at"`
}

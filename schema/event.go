package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Event - a community event whose attendees get a reminder notification
// when the event is within the reminder window
type Event struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Organizer string         `json:"organizer"`
	Title     string         `json:"title"`
	Attendees pq.StringArray `json:"attendees" gorm:"type:text[]"`
	EventDate time.Time      `json:"event_date"`
	CreatedAt time.Time      `json:"created_at"`
}

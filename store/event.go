package store

import (
	"time"

	"github.com/civictrack/civictrack-api/schema"
)

// UpcomingEvents returns events starting between now and now+within,
// for the reminder sweep.
func (s *CivicStore) UpcomingEvents(within time.Duration) ([]schema.Event, error) {
	now := time.Now().UTC()
	events := make([]schema.Event, 0)

	if err := s.ormDB.
		Where("event_date >= ? AND event_date <= ?", now, now.Add(within)).
		Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

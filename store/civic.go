package store

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/civictrack/civictrack-api/schema"
)

// CivicCore - the relational side of the datastore: notifications and events
type CivicCore interface {
	Ping() error

	// Notification
	CreateNotification(accountNumber, message, reportID, eventID string) error
	ListNotifications(accountNumber string) ([]schema.Notification, error)
	MarkNotificationsRead(accountNumber string) error

	// Event
	UpcomingEvents(within time.Duration) ([]schema.Event, error)
}

// CivicStore is an implementation of CivicCore
type CivicStore struct {
	ormDB *gorm.DB
}

func NewCivicStore(ormDB *gorm.DB) *CivicStore {
	return &CivicStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *CivicStore) Ping() error {
	return s.ormDB.DB().Ping()
}

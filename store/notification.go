package store

import (
	"github.com/google/uuid"

	"github.com/civictrack/civictrack-api/schema"
)

// CreateNotification stores a notification row for a user. Callers treat
// this as fire-and-forget; nothing is pushed from here.
func (s *CivicStore) CreateNotification(accountNumber, message, reportID, eventID string) error {
	n := schema.Notification{
		ID:            uuid.New(),
		AccountNumber: accountNumber,
		Message:       message,
		ReportID:      reportID,
		EventID:       eventID,
	}

	return s.ormDB.Create(&n).Error
}

// ListNotifications returns a user's notifications, newest first
func (s *CivicStore) ListNotifications(accountNumber string) ([]schema.Notification, error) {
	notifications := make([]schema.Notification, 0)

	if err := s.ormDB.
		Where("account_number = ?", accountNumber).
		Order("created_at desc").
		Find(&notifications).Error; err != nil {
		return nil, err
	}

	return notifications, nil
}

// MarkNotificationsRead flags all of a user's unread notifications as read
func (s *CivicStore) MarkNotificationsRead(accountNumber string) error {
	return s.ormDB.Model(schema.Notification{}).
		Where("account_number = ? AND read = ?", accountNumber, false).
		Update("read", true).Error
}

package background

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"

	"github.com/civictrack/civictrack-api/store"
	"github.com/civictrack/civictrack-api/utils"
)

const (
	reminderWindow = 24 * time.Hour
)

// ReminderSweep walks events starting within the reminder window and
// creates one reminder notification per attendee. A sweep that is still
// running when the next one is due makes the newer one skip: overlapping
// sweeps would double up reminders.
type ReminderSweep struct {
	store   store.CivicCore
	running int32
}

func NewReminderSweep(s store.CivicCore) *ReminderSweep {
	return &ReminderSweep{
		store: s,
	}
}

// Run executes one sweep. It returns nil when skipped by the
// already-running guard.
func (s *ReminderSweep) Run() error {
	if !atomic.CompareAndSwapInt32(&s.running, 0, 1) {
		log.WithField("prefix", logPrefix).Warn("reminder sweep still running, skipping tick")
		return nil
	}
	defer atomic.StoreInt32(&s.running, 0)

	events, err := s.store.UpcomingEvents(reminderWindow)
	if err != nil {
		return err
	}

	sent := 0
	for _, event := range events {
		message := reminderMessage(event.Title)
		for _, attendee := range event.Attendees {
			if err := s.store.CreateNotification(attendee, message, "", event.ID.String()); err != nil {
				log.WithFields(log.Fields{
					"prefix":         logPrefix,
					"event":          event.ID,
					"account_number": attendee,
					"error":          err,
				}).Error("create reminder notification")
				continue
			}
			sent++
		}
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"events": len(events),
		"sent":   sent,
	}).Info("reminder sweep complete")

	return nil
}

func reminderMessage(title string) string {
	message, err := utils.NewLocalizer("en").Localize(&i18n.LocalizeConfig{
		MessageID:    "notification_event_reminder",
		TemplateData: map[string]interface{}{"Title": title},
	})
	if err != nil {
		return fmt.Sprintf("Reminder: Your event %q is starting soon!", title)
	}
	return message
}

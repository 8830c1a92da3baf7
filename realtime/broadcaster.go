package realtime

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/civictrack/civictrack-api/schema"
)

const (
	logPrefix = "realtime"

	// AlertRadiusMeters bounds the distress alert fanout.
	AlertRadiusMeters = 1000
)

// Alert is the payload delivered to nearby online users on a distress call.
type Alert struct {
	FromUserID      string  `json:"fromUserId"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Summary         string  `json:"summary"`
	OriginalMessage string  `json:"originalMessage"`
}

// Moderator screens distress messages before fanout.
type Moderator interface {
	Moderate(ctx context.Context, text string) (bool, error)
}

// Summarizer condenses a distress message for the alert payload.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// ProfileStore is the slice of the datastore the broadcaster needs.
type ProfileStore interface {
	UpdateProfileLocation(accountNumber string, latitude, longitude float64) error
	NearbyAccountNumbers(meters int, loc schema.Location, excludeAccount string) ([]string, error)
}

// Broadcaster fans distress alerts out to online users near the sender.
// Each call is one shot: moderate, summarize, geo query, deliver. At most
// one alert reaches each online in-radius recipient; nobody is retried and
// nothing falls back to persisted notifications.
type Broadcaster struct {
	registry   *Registry
	profiles   ProfileStore
	moderator  Moderator
	summarizer Summarizer
}

func NewBroadcaster(registry *Registry, profiles ProfileStore, moderator Moderator, summarizer Summarizer) *Broadcaster {
	return &Broadcaster{
		registry:   registry,
		profiles:   profiles,
		moderator:  moderator,
		summarizer: summarizer,
	}
}

// UpdateLocation records a user's last known point. This path is
// independent of distress moderation: location tracking keeps working for
// users whose messages get suppressed.
func (b *Broadcaster) UpdateLocation(accountNumber string, latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return nil
	}
	return b.profiles.UpdateProfileLocation(accountNumber, latitude, longitude)
}

// BroadcastDistress delivers a distress alert to every online user within
// the alert radius of loc, excluding the sender. Flagged messages are
// silently dropped; the sender learns nothing.
func (b *Broadcaster) BroadcastDistress(ctx context.Context, senderID string, loc schema.Location, message string) error {
	flagged, err := b.moderator.Moderate(ctx, message)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Warn("distress moderation degraded, accepting message")
		flagged = false
	}
	if flagged {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"sender": senderID,
		}).Info("distress call flagged, suppressed")
		return nil
	}

	summary, err := b.summarizer.Summarize(ctx, message)
	if err != nil || summary == "" {
		// summarization never blocks delivery
		summary = message
	}

	nearby, err := b.profiles.NearbyAccountNumbers(AlertRadiusMeters, loc, senderID)
	if err != nil {
		return err
	}

	alert := Alert{
		FromUserID:      senderID,
		Latitude:        loc.Latitude,
		Longitude:       loc.Longitude,
		Summary:         summary,
		OriginalMessage: message,
	}

	delivered := 0
	for _, accountNumber := range nearby {
		ch, ok := b.registry.Lookup(accountNumber)
		if !ok {
			continue
		}
		ch.Deliver(alert)
		delivered++
	}

	log.WithFields(log.Fields{
		"prefix":    logPrefix,
		"sender":    senderID,
		"nearby":    len(nearby),
		"delivered": delivered,
	}).Info("distress alert fanout")

	return nil
}

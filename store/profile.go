package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/civictrack/civictrack-api/schema"
)

// ProfileStore - operations over per-user location state
type ProfileStore interface {
	UpdateProfileLocation(accountNumber string, latitude, longitude float64) error
	NearbyAccountNumbers(meters int, loc schema.Location, excludeAccount string) ([]string, error)
}

// UpdateProfileLocation upserts the last known location of a user
func (m *mongoDB) UpdateProfileLocation(accountNumber string, latitude, longitude float64) error {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	point := schema.NewPoint(longitude, latitude)
	query := bson.M{"account_number": accountNumber}
	update := bson.M{"$set": bson.M{
		"location": point,
		"ts":       time.Now().UTC().Unix(),
	}}

	opts := options.Update().SetUpsert(true)
	if _, err := c.UpdateOne(ctx, query, update, opts); err != nil {
		log.WithFields(log.Fields{
			"prefix":         mongoLogPrefix,
			"account_number": accountNumber,
			"error":          err,
		}).Error("update profile location")
		return err
	}

	return nil
}

// NearbyAccountNumbers finds users whose last known location is within the
// given distance of loc, excluding excludeAccount. Results are ordered by
// distance, nearest first.
func (m *mongoDB) NearbyAccountNumbers(meters int, loc schema.Location, excludeAccount string) ([]string, error) {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.D{
		{Key: "account_number", Value: bson.D{{Key: "$ne", Value: excludeAccount}}},
		{Key: "location", Value: bson.D{{
			Key: "$nearSphere",
			Value: bson.D{
				{Key: "$geometry", Value: bson.D{
					{Key: "type", Value: "Point"},
					{Key: "coordinates", Value: bson.A{loc.Longitude, loc.Latitude}},
				}},
				{Key: "$maxDistance", Value: meters},
			},
		}}},
	}

	cur, err := c.Find(ctx, query)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearby profiles with error: %s", err)
		return nil, fmt.Errorf("nearby profile query with error: %s", err)
	}
	defer cur.Close(ctx)

	accountNumbers := make([]string, 0)
	for cur.Next(ctx) {
		var record schema.Profile
		if err := cur.Decode(&record); err != nil {
			return nil, fmt.Errorf("decode profile record with error: %s", err)
		}
		accountNumbers = append(accountNumbers, record.AccountNumber)
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("nearby profile query gets %d account numbers", len(accountNumbers))

	return accountNumbers, nil
}

package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/civictrack/civictrack-api/schema"
)

var (
	ErrReportNotFound = fmt.Errorf("report not found")
)

// ReportFilter - optional filters for listing reports
type ReportFilter struct {
	AccountNumber string
	Category      string
	Status        string
	Severity      string
	Keyword       string
	TextSearch    string
}

// ReportStore - operations over the report collection
type ReportStore interface {
	CreateReport(r *schema.Report) error
	GetReport(id string) (*schema.Report, error)
	ListReports(filter ReportFilter) ([]schema.Report, error)
	NearbyActiveReports(meters int, loc schema.Location) ([]schema.NearbyReport, error)
	UpdateReportStatus(id string, status schema.ReportStatus) (*schema.Report, error)
	ToggleUpvote(id, accountNumber string) (*schema.Report, error)
	ReportAnalytics() (*schema.ReportAnalytics, error)
}

// CreateReport saves a new report document
func (m *mongoDB) CreateReport(r *schema.Report) error {
	c := m.client.Database(m.database).Collection(schema.ReportCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	if r.UpvotedBy == nil {
		r.UpvotedBy = []string{}
	}

	if _, err := c.InsertOne(ctx, r); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("insert report")
		return err
	}

	return nil
}

// GetReport finds a report by its hex object id
func (m *mongoDB) GetReport(id string) (*schema.Report, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrReportNotFound
	}

	c := m.client.Database(m.database).Collection(schema.ReportCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var r schema.Report
	if err := c.FindOne(ctx, bson.M{"_id": oid}).Decode(&r); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	return &r, nil
}

// ListReports returns reports matching the filter, newest first
func (m *mongoDB) ListReports(filter ReportFilter) ([]schema.Report, error) {
	query := bson.M{}
	if filter.AccountNumber != "" {
		query["account_number"] = filter.AccountNumber
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Severity != "" {
		query["severity"] = filter.Severity
	}
	if filter.Keyword != "" {
		query["$or"] = bson.A{
			bson.M{"title": primitive.Regex{Pattern: filter.Keyword, Options: "i"}},
			bson.M{"description": primitive.Regex{Pattern: filter.Keyword, Options: "i"}},
		}
	}
	if filter.TextSearch != "" {
		query["$text"] = bson.M{"$search": filter.TextSearch}
	}

	c := m.client.Database(m.database).Collection(schema.ReportCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := c.Find(ctx, query, opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("list reports")
		return nil, err
	}
	defer cur.Close(ctx)

	reports := make([]schema.Report, 0)
	for cur.Next(ctx) {
		var r schema.Report
		if err := cur.Decode(&r); err != nil {
			return nil, fmt.Errorf("decode report record with error: %s", err)
		}
		reports = append(reports, r)
	}

	return reports, nil
}

// NearbyActiveReports returns dedup candidates: reports within the given
// distance whose status is still open, projected down to id and description
// to bound the payload handed to the duplicate resolver. Results come back
// ordered by distance.
func (m *mongoDB) NearbyActiveReports(meters int, loc schema.Location) ([]schema.NearbyReport, error) {
	c := m.client.Database(m.database).Collection(schema.ReportCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: bson.D{
				{Key: "type", Value: "Point"},
				{Key: "coordinates", Value: bson.A{loc.Longitude, loc.Latitude}},
			}},
			{Key: "distanceField", Value: "distance"},
			{Key: "maxDistance", Value: meters},
			{Key: "query", Value: bson.D{
				{Key: "status", Value: bson.D{{Key: "$in", Value: bson.A{schema.StatusPending, schema.StatusInProgress}}}},
			}},
			{Key: "spherical", Value: true},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 1},
			{Key: "description", Value: 1},
		}}},
	}

	cur, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("query nearby reports")
		return nil, err
	}
	defer cur.Close(ctx)

	candidates := make([]schema.NearbyReport, 0)
	for cur.Next(ctx) {
		var r schema.NearbyReport
		if err := cur.Decode(&r); err != nil {
			return nil, fmt.Errorf("decode nearby report with error: %s", err)
		}
		candidates = append(candidates, r)
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("nearby report query gets %d candidates", len(candidates))

	return candidates, nil
}

// UpdateReportStatus sets the status of a report and returns the updated document
func (m *mongoDB) UpdateReportStatus(id string, status schema.ReportStatus) (*schema.Report, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrReportNotFound
	}

	c := m.client.Database(m.database).Collection(schema.ReportCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var r schema.Report
	if err := c.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&r); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	return &r, nil
}

// ToggleUpvote adds the account to the upvoter set, or removes it if it
// already voted. Both arms are single conditional updates so concurrent
// toggles cannot double count.
func (m *mongoDB) ToggleUpvote(id, accountNumber string) (*schema.Report, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrReportNotFound
	}

	c := m.client.Database(m.database).Collection(schema.ReportCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	// try to remove an existing vote first
	res, err := c.UpdateOne(ctx,
		bson.M{"_id": oid, "upvoted_by": accountNumber},
		bson.M{
			"$pull": bson.M{"upvoted_by": accountNumber},
			"$inc":  bson.M{"upvotes": -1},
		})
	if err != nil {
		return nil, err
	}

	if res.MatchedCount == 0 {
		res, err = c.UpdateOne(ctx,
			bson.M{"_id": oid, "upvoted_by": bson.M{"$ne": accountNumber}},
			bson.M{
				"$addToSet": bson.M{"upvoted_by": accountNumber},
				"$inc":      bson.M{"upvotes": 1},
			})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, ErrReportNotFound
		}
	}

	return m.GetReport(id)
}

// ReportAnalytics aggregates totals with per-status and per-category counts
func (m *mongoDB) ReportAnalytics() (*schema.ReportAnalytics, error) {
	c := m.client.Database(m.database).Collection(schema.ReportCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	total, err := c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	countBy := func(field string) (map[string]int64, error) {
		cur, err := c.Aggregate(ctx, mongo.Pipeline{
			bson.D{{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$" + field},
				{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			}}},
		})
		if err != nil {
			return nil, err
		}
		defer cur.Close(ctx)

		counts := map[string]int64{}
		for cur.Next(ctx) {
			var row struct {
				ID    string `bson:"_id"`
				Count int64  `bson:"count"`
			}
			if err := cur.Decode(&row); err != nil {
				return nil, err
			}
			counts[row.ID] = row.Count
		}
		return counts, nil
	}

	statusCounts, err := countBy("status")
	if err != nil {
		return nil, err
	}
	categoryCounts, err := countBy("category")
	if err != nil {
		return nil, err
	}

	return &schema.ReportAnalytics{
		TotalReports:   total,
		StatusCounts:   statusCounts,
		CategoryCounts: categoryCounts,
	}, nil
}

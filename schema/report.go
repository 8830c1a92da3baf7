package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReportCollection = "reports"
)

// ReportCategory - closed set of issue categories
type ReportCategory string

const (
	CategoryWaste    ReportCategory = "Waste"
	CategoryRoads    ReportCategory = "Roads"
	CategoryLighting ReportCategory = "Lighting"
	CategoryWater    ReportCategory = "Water"
	CategoryOther    ReportCategory = "Other"
)

// ReportSeverity - closed set of issue severities
type ReportSeverity string

const (
	SeverityLow    ReportSeverity = "Low"
	SeverityMedium ReportSeverity = "Medium"
	SeverityHigh   ReportSeverity = "High"
)

// ReportStatus - closed set of report lifecycle states
type ReportStatus string

const (
	StatusPending    ReportStatus = "Pending"
	StatusInProgress ReportStatus = "In Progress"
	StatusResolved   ReportStatus = "Resolved"
)

// ValidReportStatus reports whether s is a member of the status enum.
func ValidReportStatus(s ReportStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// ValidReportSeverity reports whether s is a member of the severity enum.
func ValidReportSeverity(s ReportSeverity) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// ValidReportCategory reports whether c is a member of the category enum.
func ValidReportCategory(c ReportCategory) bool {
	switch c {
	case CategoryWaste, CategoryRoads, CategoryLighting, CategoryWater, CategoryOther:
		return true
	}
	return false
}

// GeoJSON - mongo location format
type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewPoint - a GeoJSON point from a lon/lat pair
func NewPoint(longitude, latitude float64) GeoJSON {
	return GeoJSON{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

// Location - a plain lat/lng pair
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Report - a citizen-submitted civic issue
type Report struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	AccountNumber string             `bson:"account_number" json:"account_number"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	Category      ReportCategory     `bson:"category" json:"category"`
	Severity      ReportSeverity     `bson:"severity" json:"severity"`
	Status        ReportStatus       `bson:"status" json:"status"`
	Location      GeoJSON            `bson:"location" json:"location"`
	ImageURL      string             `bson:"image_url" json:"image_url"`
	Area          string             `bson:"area,omitempty" json:"area,omitempty"`
	Upvotes       int                `bson:"upvotes" json:"upvotes"`
	UpvotedBy     []string           `bson:"upvoted_by" json:"-"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// NearbyReport - projection of a report used as a dedup candidate
type NearbyReport struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Description string             `bson:"description" json:"description"`
}

// ReportAnalytics - aggregate counters over all reports
type ReportAnalytics struct {
	TotalReports   int64            `json:"total_reports"`
	StatusCounts   map[string]int64 `json:"status_counts"`
	CategoryCounts map[string]int64 `json:"category_counts"`
}

package intake

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/civictrack/civictrack-api/external/openai"
	"github.com/civictrack/civictrack-api/schema"
)

const (
	logPrefix = "intake"

	// DedupRadiusMeters bounds the proximity lookup for duplicate candidates.
	DedupRadiusMeters = 250
)

var (
	ErrInvalidInput    = errors.New("description, image and a valid location are required")
	ErrPolicyViolation = errors.New("content violates community guidelines")
	ErrUploadFailed    = errors.New("image upload failed")
)

// DuplicateError reports that the submission matched an existing report.
// No new report was created; ReportID points at the original.
type DuplicateError struct {
	ReportID string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate of report %s", e.ReportID)
}

// fallbackAnalysis is substituted whenever the classification oracle is
// unavailable, so submissions stay accepted and get routed to a human.
var fallbackAnalysis = openai.ReportAnalysis{
	Title:    "Manual Review Required",
	Category: schema.CategoryOther,
	Severity: schema.SeverityMedium,
}

// Moderator screens text for policy violations.
type Moderator interface {
	Moderate(ctx context.Context, text string) (bool, error)
}

// Analyzer classifies a description into title, category and severity.
type Analyzer interface {
	AnalyzeReport(ctx context.Context, description string) (*openai.ReportAnalysis, error)
}

// Resolver judges whether a description duplicates one of the candidates.
type Resolver interface {
	FindDuplicate(ctx context.Context, description string, candidates []schema.NearbyReport) (string, error)
}

// Labeler derives a category from the report image.
type Labeler interface {
	Label(ctx context.Context, image []byte) (schema.ReportCategory, error)
}

// Uploader stores the report image and returns its public url.
type Uploader interface {
	Upload(ctx context.Context, image []byte) (string, error)
}

// ReportStore is the slice of the datastore the pipeline needs.
type ReportStore interface {
	CreateReport(r *schema.Report) error
	NearbyActiveReports(meters int, loc schema.Location) ([]schema.NearbyReport, error)
}

// AreaResolver reverse geocodes a point into a display area.
type AreaResolver interface {
	Area(loc schema.Location) (string, error)
}

// Draft is a raw citizen submission before any processing.
type Draft struct {
	AccountNumber string
	Description   string
	Image         []byte
	Latitude      float64
	Longitude     float64
}

// Pipeline sequences a submission through moderation, proximity dedup,
// classification, upload and commit. Oracle failures degrade to documented
// defaults; only validation, moderation flags, duplicates, upload failures
// and store failures stop a submission.
type Pipeline struct {
	moderator Moderator
	analyzer  Analyzer
	resolver  Resolver
	labeler   Labeler
	uploader  Uploader
	reports   ReportStore
	geo       AreaResolver
}

// NewPipeline wires the intake pipeline. geo may be nil, in which case
// reports carry no area name.
func NewPipeline(
	moderator Moderator,
	analyzer Analyzer,
	resolver Resolver,
	labeler Labeler,
	uploader Uploader,
	reports ReportStore,
	geo AreaResolver) *Pipeline {
	return &Pipeline{
		moderator: moderator,
		analyzer:  analyzer,
		resolver:  resolver,
		labeler:   labeler,
		uploader:  uploader,
		reports:   reports,
		geo:       geo,
	}
}

// Submit runs the full intake flow and returns the committed report.
func (p *Pipeline) Submit(ctx context.Context, d Draft) (*schema.Report, error) {
	if err := validateDraft(d); err != nil {
		return nil, err
	}

	flagged, err := p.moderator.Moderate(ctx, d.Description)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Warn("moderation degraded, accepting content")
		flagged = false
	}
	if flagged {
		return nil, ErrPolicyViolation
	}

	loc := schema.Location{Latitude: d.Latitude, Longitude: d.Longitude}

	candidates, err := p.reports.NearbyActiveReports(DedupRadiusMeters, loc)
	if err != nil {
		return nil, err
	}

	if len(candidates) > 0 {
		if id := p.resolveDuplicate(ctx, d.Description, candidates); id != "" {
			return nil, &DuplicateError{ReportID: id}
		}
	}

	analysis, label := p.classify(ctx, d)

	category := analysis.Category
	if label != "" {
		category = label
	}

	imageURL, err := p.uploader.Upload(ctx, d.Image)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUploadFailed, err)
	}

	report := &schema.Report{
		AccountNumber: d.AccountNumber,
		Title:         analysis.Title,
		Description:   d.Description,
		Category:      category,
		Severity:      analysis.Severity,
		Status:        schema.StatusPending,
		Location:      schema.NewPoint(d.Longitude, d.Latitude),
		ImageURL:      imageURL,
	}

	if p.geo != nil {
		area, err := p.geo.Area(loc)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"error":  err,
			}).Warn("area lookup degraded")
		} else {
			report.Area = area
		}
	}

	if err := p.reports.CreateReport(report); err != nil {
		return nil, err
	}

	return report, nil
}

// resolveDuplicate returns the id of an existing report the draft
// duplicates, or an empty string. Oracle errors and ids outside the
// candidate set both read as "no duplicate": a missed duplicate is an
// accepted tradeoff for keeping submissions live.
func (p *Pipeline) resolveDuplicate(ctx context.Context, description string, candidates []schema.NearbyReport) string {
	id, err := p.resolver.FindDuplicate(ctx, description, candidates)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Warn("duplicate resolution degraded")
		return ""
	}
	if id == "" {
		return ""
	}

	for _, c := range candidates {
		if c.ID.Hex() == id {
			return id
		}
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"id":     id,
	}).Warn("resolver returned an unknown candidate id, ignoring")

	return ""
}

// classify dispatches the text analysis and the image labeling
// concurrently and joins on both. Either side may fail on its own: the
// text side falls back to the manual-review default, the image side to no
// label.
func (p *Pipeline) classify(ctx context.Context, d Draft) (openai.ReportAnalysis, schema.ReportCategory) {
	var wg sync.WaitGroup

	var analysis *openai.ReportAnalysis
	var analysisErr error
	var label schema.ReportCategory
	var labelErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		analysis, analysisErr = p.analyzer.AnalyzeReport(ctx, d.Description)
	}()
	go func() {
		defer wg.Done()
		label, labelErr = p.labeler.Label(ctx, d.Image)
	}()
	wg.Wait()

	if analysisErr != nil || analysis == nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  analysisErr,
		}).Warn("text classification degraded")
		a := fallbackAnalysis
		analysis = &a
	}
	if labelErr != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  labelErr,
		}).Warn("image labeling degraded")
		label = ""
	}

	// the oracle speaks free text; anything outside the enums reads as
	// the degrade default
	if !schema.ValidReportCategory(analysis.Category) {
		analysis.Category = fallbackAnalysis.Category
	}
	if !schema.ValidReportSeverity(analysis.Severity) {
		analysis.Severity = fallbackAnalysis.Severity
	}

	return *analysis, label
}

func validateDraft(d Draft) error {
	if d.Description == "" || len(d.Image) == 0 {
		return ErrInvalidInput
	}
	if math.IsNaN(d.Latitude) || math.IsNaN(d.Longitude) {
		return ErrInvalidInput
	}
	if d.Latitude < -90 || d.Latitude > 90 || d.Longitude < -180 || d.Longitude > 180 {
		return ErrInvalidInput
	}
	return nil
}

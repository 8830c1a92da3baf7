package intake

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/civictrack/civictrack-api/external/openai"
	"github.com/civictrack/civictrack-api/intake/mocks"
	"github.com/civictrack/civictrack-api/schema"
)

type pipelineMocks struct {
	moderator *mocks.MockModerator
	analyzer  *mocks.MockAnalyzer
	resolver  *mocks.MockResolver
	labeler   *mocks.MockLabeler
	uploader  *mocks.MockUploader
	reports   *mocks.MockReportStore
}

func newTestPipeline(ctrl *gomock.Controller) (*Pipeline, pipelineMocks) {
	m := pipelineMocks{
		moderator: mocks.NewMockModerator(ctrl),
		analyzer:  mocks.NewMockAnalyzer(ctrl),
		resolver:  mocks.NewMockResolver(ctrl),
		labeler:   mocks.NewMockLabeler(ctrl),
		uploader:  mocks.NewMockUploader(ctrl),
		reports:   mocks.NewMockReportStore(ctrl),
	}
	p := NewPipeline(m.moderator, m.analyzer, m.resolver, m.labeler, m.uploader, m.reports, nil)
	return p, m
}

func validDraft() Draft {
	return Draft{
		AccountNumber: "acc-1",
		Description:   "large pothole on the main road",
		Image:         []byte{0xff, 0xd8},
		Latitude:      27.7,
		Longitude:     85.3,
	}
}

func TestSubmitRejectsInvalidDrafts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations set: an invalid draft must reach nothing downstream
	p, _ := newTestPipeline(ctrl)

	drafts := map[string]Draft{
		"empty description": func() Draft { d := validDraft(); d.Description = ""; return d }(),
		"missing image":     func() Draft { d := validDraft(); d.Image = nil; return d }(),
		"nan latitude":      func() Draft { d := validDraft(); d.Latitude = math.NaN(); return d }(),
		"latitude too big":  func() Draft { d := validDraft(); d.Latitude = 91; return d }(),
		"longitude too big": func() Draft { d := validDraft(); d.Longitude = 181; return d }(),
		"longitude too low": func() Draft { d := validDraft(); d.Longitude = -181; return d }(),
	}

	for name, d := range drafts {
		report, err := p.Submit(context.Background(), d)
		assert.Nil(t, report, name)
		assert.True(t, errors.Is(err, ErrInvalidInput), name)
	}
}

func TestSubmitStopsOnFlaggedContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestPipeline(ctrl)
	d := validDraft()

	m.moderator.EXPECT().Moderate(gomock.Any(), d.Description).Return(true, nil)

	report, err := p.Submit(context.Background(), d)
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, ErrPolicyViolation))
}

func TestSubmitModerationFailureAccepts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestPipeline(ctrl)
	d := validDraft()

	m.moderator.EXPECT().Moderate(gomock.Any(), d.Description).Return(false, errors.New("oracle down"))
	m.reports.EXPECT().NearbyActiveReports(DedupRadiusMeters, gomock.Any()).Return(nil, nil)
	m.analyzer.EXPECT().AnalyzeReport(gomock.Any(), d.Description).
		Return(&openai.ReportAnalysis{Title: "Pothole", Category: schema.CategoryRoads, Severity: schema.SeverityHigh}, nil)
	m.labeler.EXPECT().Label(gomock.Any(), d.Image).Return(schema.ReportCategory(""), nil)
	m.uploader.EXPECT().Upload(gomock.Any(), d.Image).Return("https://img/x.jpg", nil)
	m.reports.EXPECT().CreateReport(gomock.Any()).Return(nil)

	report, err := p.Submit(context.Background(), d)
	assert.NoError(t, err)
	assert.NotNil(t, report)
}

func TestSubmitDuplicateShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestPipeline(ctrl)
	d := validDraft()

	existing := primitive.NewObjectID()
	candidates := []schema.NearbyReport{{ID: existing, Description: "pothole near the school"}}

	m.moderator.EXPECT().Moderate(gomock.Any(), d.Description).Return(false, nil)
	m.reports.EXPECT().NearbyActiveReports(DedupRadiusMeters, schema.Location{Latitude: d.Latitude, Longitude: d.Longitude}).
		Return(candidates, nil)
	m.resolver.EXPECT().FindDuplicate(gomock.Any(), d.Description, candidates).Return(existing.Hex(), nil)

	report, err := p.Submit(context.Background(), d)
	assert.Nil(t, report)

	var dup *DuplicateError
	assert.True(t, errors.As(err, &dup))
	assert.Equal(t, existing.Hex(), dup.ReportID)
}

func TestSubmitResolverDegradesToNewReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestPipeline(ctrl)
	d := validDraft()

	candidates := []schema.NearbyReport{{ID: primitive.NewObjectID(), Description: "broken lamp"}}

	m.moderator.EXPECT().Moderate(gomock.Any(), d.Description).Return(false, nil)
	m.reports.EXPECT().NearbyActiveReports(DedupRadiusMeters, gomock.Any()).Return(candidates, nil)
	m.resolver.EXPECT().FindDuplicate(gomock.Any(), d.Description, candidates).Return("", errors.New("oracle down"))
	m.analyzer.EXPECT().AnalyzeReport(gomock.Any(), d.Description).
		Return(&openai.ReportAnalysis{Title: "Pothole", Category: schema.CategoryRoads, Severity: schema.SeverityHigh}, nil)
	m.labeler.EXPECT().Label(gomock.Any(), d.Image).Return(schema.ReportCategory(""), nil)
	m.uploader.EXPECT().Upload(gomock.Any(), d.Image).Return("https://img/x.jpg", nil)
	m.reports.EXPECT().CreateReport(gomock.Any()).Return(nil)

	report, err := p.Submit(context.Background(), d)
	assert.NoError(t, err)
	assert.NotNil(t, report)
}

func TestSubmitIgnoresUnknownResolverID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestPipeline(ctrl)
	d := validDraft()

	candidates := []schema.NearbyReport{{ID: primitive.NewObjectID(), Description: "broken lamp"}}

	m.moderator.EXPECT().Moderate(gomock.Any(), d.Description).Return(false, nil)
	m.reports.EXPECT().NearbyActiveReports(DedupRadiusMeters, gomock.Any()).Return(candidates, nil)
	m.resolver.EXPECT().FindDuplicate(gomock.Any(), d.Description, candidates).
		Return(primitive.NewObjectID().Hex(), nil)
	m.analyzer.EXPECT().AnalyzeReport(gomock.Any(), d.Description).
		Return(&openai.ReportAnalysis{Title: "Pothole", Category: schema.CategoryRoads, Severity: schema.SeverityHigh}, nil)
	m.labeler.EXPECT().Label(gomock.Any(), d.Image).Return(schema.ReportCategory(""), nil)
	m.uploader.EXPECT().Upload(gomock.Any(), d.Image).Return("https://img/x.jpg", nil)
	m.reports.EXPECT().CreateReport(gomock.Any()).Return(nil)

	report, err := p.Submit(context.Background(), d)
	assert.NoError(t, err)
	assert.NotNil(t, report)
}

func TestSubmitSkipsResolverWithoutCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestPipeline(ctrl)
	d := validDraft()

	m.moderator.EXPECT().Moderate(gomock.Any(), d.Description).Return(false, nil)
	m.reports.EXPECT().NearbyActiveReports(DedupRadiusMeters, gomock.Any()).Return([]schema.NearbyReport{}, nil)
	m.analyzer.EXPECT().AnalyzeReport(gomock.Any(), d.Description).
		Return(&openai.ReportAnalysis{Title: "Pothole", Category: schema.CategoryRoads, Severity: schema.SeverityHigh}, nil)
	m.labeler.EXPECT().Label(gomock.Any(), d.Image).Return(schema.ReportCategory(""), nil)
	m.uploader.EXPECT().Upload(gomock.Any(), d.Image).Return("https://img/x.jpg", nil)
	m.reports.EXPECT().CreateReport(gomock.Any()).Return(nil)

	_, err := p.Submit(context.Background(), d)
	assert.NoError(t, err)
}

func TestSubmitCategoryMerge(t *testing.T) {
	cases := []struct {
		name     string
		text     schema.ReportCategory
		label    schema.ReportCategory
		labelErr error
		want     schema.ReportCategory
	}{
		{name: "label wins over text", text: schema.CategoryOther, label: schema.CategoryWaste, want: schema.CategoryWaste},
		{name: "no label keeps text", text: schema.CategoryRoads, label: "", want: schema.CategoryRoads},
		{name: "label failure keeps text", text: schema.CategoryWater, label: "", labelErr: errors.New("vision down"), want: schema.CategoryWater},
		{name: "agreement", text: schema.CategoryLighting, label: schema.CategoryLighting, want: schema.CategoryLighting},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			p, m := newTestPipeline(ctrl)
			d := validDraft()

			m.moderator.EXPECT().Moderate(gomock.Any(), d.Description).Return(false, nil)
			m.reports.EXPECT().NearbyActiveReports(DedupRadiusMeters, gomock.Any()).Return(nil, nil)
			m.analyzer.EXPECT().AnalyzeReport(gomock.Any(), d.Description).
				Return(&openai.ReportAnalysis{Title: "Issue", Category: c.text, Severity: schema.SeverityLow}, nil)
			m.labeler.EXPECT().Label(gomock.Any(), d.Image).Return(c.label, c.labelErr)
			m.uploader.EXPECT().Upload(gomock.Any(), d.Image).Return("https://img/x.jpg", nil)

			var saved *schema.Report
			m.reports.EXPECT().CreateReport(gomock.Any()).DoAndReturn(func(r *schema.Report) error {
				saved = r
				return nil
			})

			report, err := p.Submit(context.Background(), d)
			assert.NoError(t, err)
			assert.Equal(t, c.want, report.Category)
			assert.Equal(t, saved, report)
		})
	}
}

func TestSubmitClassifierFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestPipeline(ctrl)
	d := validDraft()

	m.moderator.EXPECT().Moderate(gomock.Any(), d.Description).Return(false, nil)
	m.reports.EXPECT().NearbyActiveReports(DedupRadiusMeters, gomock.Any()).Return(nil, nil)
	m.analyzer.EXPECT().AnalyzeReport(gomock.Any(), d.Description).Return(nil, errors.New("oracle down"))
	m.labeler.EXPECT().Label(gomock.Any(), d.Image).Return(schema.ReportCategory(""), nil)
	m.uploader.EXPECT().Upload(gomock.Any(), d.Image).Return("https://img/x.jpg", nil)
	m.reports.EXPECT().CreateReport(gomock.Any()).Return(nil)

	report, err := p.Submit(context.Background(), d)
	assert.NoError(t, err)
	assert.Equal(t, "Manual Review Required", report.Title)
	assert.Equal(t, schema.CategoryOther, report.Category)
	assert.Equal(t, schema.SeverityMedium, report.Severity)
	assert.Equal(t, schema.StatusPending, report.Status)
}

func TestSubmitSanitizesOracleEnums(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestPipeline(ctrl)
	d := validDraft()

	m.moderator.EXPECT().Moderate(gomock.Any(), d.Description).Return(false, nil)
	m.reports.EXPECT().NearbyActiveReports(DedupRadiusMeters, gomock.Any()).Return(nil, nil)
	m.analyzer.EXPECT().AnalyzeReport(gomock.Any(), d.Description).
		Return(&openai.ReportAnalysis{Title: "Issue", Category: "Potholes & Things", Severity: "Catastrophic"}, nil)
	m.labeler.EXPECT().Label(gomock.Any(), d.Image).Return(schema.ReportCategory(""), nil)
	m.uploader.EXPECT().Upload(gomock.Any(), d.Image).Return("https://img/x.jpg", nil)
	m.reports.EXPECT().CreateReport(gomock.Any()).Return(nil)

	report, err := p.Submit(context.Background(), d)
	assert.NoError(t, err)
	assert.Equal(t, schema.CategoryOther, report.Category)
	assert.Equal(t, schema.SeverityMedium, report.Severity)
}

func TestSubmitUploadFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestPipeline(ctrl)
	d := validDraft()

	m.moderator.EXPECT().Moderate(gomock.Any(), d.Description).Return(false, nil)
	m.reports.EXPECT().NearbyActiveReports(DedupRadiusMeters, gomock.Any()).Return(nil, nil)
	m.analyzer.EXPECT().AnalyzeReport(gomock.Any(), d.Description).
		Return(&openai.ReportAnalysis{Title: "Issue", Category: schema.CategoryRoads, Severity: schema.SeverityLow}, nil)
	m.labeler.EXPECT().Label(gomock.Any(), d.Image).Return(schema.ReportCategory(""), nil)
	m.uploader.EXPECT().Upload(gomock.Any(), d.Image).Return("", errors.New("storage unreachable"))

	report, err := p.Submit(context.Background(), d)
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, ErrUploadFailed))
}

func TestSubmitProximityLookupFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestPipeline(ctrl)
	d := validDraft()

	m.moderator.EXPECT().Moderate(gomock.Any(), d.Description).Return(false, nil)
	m.reports.EXPECT().NearbyActiveReports(DedupRadiusMeters, gomock.Any()).Return(nil, errors.New("mongo down"))

	report, err := p.Submit(context.Background(), d)
	assert.Nil(t, report)
	assert.Error(t, err)
}

func TestSubmitAreaEnrichment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, m := newTestPipeline(ctrl)
	geo := mocks.NewMockAreaResolver(ctrl)
	p := NewPipeline(m.moderator, m.analyzer, m.resolver, m.labeler, m.uploader, m.reports, geo)
	d := validDraft()

	m.moderator.EXPECT().Moderate(gomock.Any(), d.Description).Return(false, nil)
	m.reports.EXPECT().NearbyActiveReports(DedupRadiusMeters, gomock.Any()).Return(nil, nil)
	m.analyzer.EXPECT().AnalyzeReport(gomock.Any(), d.Description).
		Return(&openai.ReportAnalysis{Title: "Issue", Category: schema.CategoryRoads, Severity: schema.SeverityLow}, nil)
	m.labeler.EXPECT().Label(gomock.Any(), d.Image).Return(schema.ReportCategory(""), nil)
	m.uploader.EXPECT().Upload(gomock.Any(), d.Image).Return("https://img/x.jpg", nil)
	geo.EXPECT().Area(schema.Location{Latitude: d.Latitude, Longitude: d.Longitude}).Return("Kathmandu", nil)
	m.reports.EXPECT().CreateReport(gomock.Any()).Return(nil)

	report, err := p.Submit(context.Background(), d)
	assert.NoError(t, err)
	assert.Equal(t, "Kathmandu", report.Area)
}

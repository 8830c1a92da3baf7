package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/civictrack/civictrack-api/external/openai"
	"github.com/civictrack/civictrack-api/schema"
	"github.com/civictrack/civictrack-api/store"
	"github.com/civictrack/civictrack-api/store/mocks"
)

const testRequester = "acc-test"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// testRouter wires the report and notification handlers behind a stub
// auth middleware so handler logic is testable without a JWT.
func testRouter(s *Server) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("requester", testRequester)
	})

	r.POST("/api/reports", s.createReport)
	r.GET("/api/reports", s.listReports)
	r.GET("/api/reports/search", s.searchReports)
	r.GET("/api/reports/analytics", s.reportAnalytics)
	r.GET("/api/reports/me", s.myReports)
	r.GET("/api/reports/:reportID", s.getReport)
	r.POST("/api/reports/:reportID/upvote", s.upvoteReport)
	r.PATCH("/secret/reports/:reportID/status", s.updateReportStatus)
	r.GET("/api/notifications", s.listNotifications)
	r.POST("/api/notifications/read", s.markNotificationsRead)

	return r
}

type fakeOracle struct {
	openai.OpenAI

	searchQuery *openai.SearchQuery
	searchErr   error
}

func (o *fakeOracle) ParseSearchQuery(ctx context.Context, query string) (*openai.SearchQuery, error) {
	return o.searchQuery, o.searchErr
}

func TestGetReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mongo := mocks.NewMockMongoStore(ctrl)
	s := &Server{mongoStore: mongo}

	id := primitive.NewObjectID()
	mongo.EXPECT().GetReport(id.Hex()).Return(&schema.Report{ID: id, Title: "Pothole"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/reports/"+id.Hex(), nil)
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pothole")
}

func TestGetReportNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mongo := mocks.NewMockMongoStore(ctrl)
	s := &Server{mongoStore: mongo}

	mongo.EXPECT().GetReport("missing").Return(nil, store.ErrReportNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/reports/missing", nil)
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListReportsPassesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mongo := mocks.NewMockMongoStore(ctrl)
	s := &Server{mongoStore: mongo}

	mongo.EXPECT().ListReports(store.ReportFilter{
		Category: "Roads",
		Status:   "Pending",
	}).Return([]schema.Report{{Title: "Pothole"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/reports?category=Roads&status=Pending", nil)
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestMyReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mongo := mocks.NewMockMongoStore(ctrl)
	s := &Server{mongoStore: mongo}

	mongo.EXPECT().ListReports(store.ReportFilter{AccountNumber: testRequester}).
		Return([]schema.Report{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/reports/me", nil)
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestSearchReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mongo := mocks.NewMockMongoStore(ctrl)
	s := &Server{
		mongoStore: mongo,
		oracle: &fakeOracle{searchQuery: &openai.SearchQuery{
			Category: "Roads",
			Status:   "Pending",
			Keyword:  "pothole",
		}},
	}

	mongo.EXPECT().ListReports(store.ReportFilter{
		Category:   "Roads",
		Status:     "Pending",
		TextSearch: "pothole",
	}).Return([]schema.Report{{Title: "Pothole"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/reports/search?q=pending+potholes", nil)
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearchReportsDropsStopWordKeyword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mongo := mocks.NewMockMongoStore(ctrl)
	s := &Server{
		mongoStore: mongo,
		oracle:     &fakeOracle{searchQuery: &openai.SearchQuery{Status: "Pending", Keyword: "issues"}},
	}

	mongo.EXPECT().ListReports(store.ReportFilter{Status: "Pending"}).
		Return([]schema.Report{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/reports/search?q=pending+issues", nil)
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearchReportsOracleDegradesToKeyword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mongo := mocks.NewMockMongoStore(ctrl)
	s := &Server{
		mongoStore: mongo,
		oracle:     &fakeOracle{searchErr: assert.AnError},
	}

	mongo.EXPECT().ListReports(store.ReportFilter{TextSearch: "broken lamp"}).
		Return([]schema.Report{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/reports/search?q=broken+lamp", nil)
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearchReportsMissingQuery(t *testing.T) {
	s := &Server{}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/reports/search", nil)
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportAnalytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mongo := mocks.NewMockMongoStore(ctrl)
	s := &Server{mongoStore: mongo}

	mongo.EXPECT().ReportAnalytics().Return(&schema.ReportAnalytics{
		TotalReports: 3,
		StatusCounts: map[string]int64{"Pending": 2, "Resolved": 1},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/reports/analytics", nil)
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_reports":3`)
}

func TestUpvoteReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mongo := mocks.NewMockMongoStore(ctrl)
	s := &Server{mongoStore: mongo}

	id := primitive.NewObjectID()
	mongo.EXPECT().ToggleUpvote(id.Hex(), testRequester).
		Return(&schema.Report{ID: id, Upvotes: 1, UpvotedBy: []string{testRequester}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/reports/"+id.Hex()+"/upvote", nil)
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"upvotes":1`)
}

func TestCreateReportBadCoordinates(t *testing.T) {
	s := &Server{}

	form := strings.NewReader("description=pothole&latitude=abc&longitude=85.3")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/reports", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateReportStatusRejectsUnknownStatus(t *testing.T) {
	s := &Server{}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/secret/reports/abc/status", strings.NewReader(`{"status":"Done"}`))
	req.Header.Set("Content-Type", "application/json")
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateReportStatusNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mongo := mocks.NewMockMongoStore(ctrl)
	s := &Server{mongoStore: mongo}

	mongo.EXPECT().UpdateReportStatus("abc", schema.StatusResolved).
		Return(nil, store.ErrReportNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/secret/reports/abc/status", strings.NewReader(`{"status":"Resolved"}`))
	req.Header.Set("Content-Type", "application/json")
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

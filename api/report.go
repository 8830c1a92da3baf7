package api

import (
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/civictrack/civictrack-api/background"
	"github.com/civictrack/civictrack-api/external/openai"
	"github.com/civictrack/civictrack-api/intake"
	"github.com/civictrack/civictrack-api/schema"
	"github.com/civictrack/civictrack-api/store"
	"github.com/civictrack/civictrack-api/utils"
)

// searchStopWords are generic terms the NLP search parser tends to hand
// back as keywords; matching on them would match almost everything.
var searchStopWords = map[string]bool{
	"problem":  true,
	"problems": true,
	"issue":    true,
	"issues":   true,
	"report":   true,
	"reports":  true,
}

// createReport is the API for submitting a new civic issue report. The
// multipart form carries the description, the location pair and the image.
func (s *Server) createReport(c *gin.Context) {
	requester := c.GetString("requester")

	description := c.PostForm("description")

	latitude, latErr := strconv.ParseFloat(c.PostForm("latitude"), 64)
	longitude, lonErr := strconv.ParseFloat(c.PostForm("longitude"), 64)
	if latErr != nil || lonErr != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidInput)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidInput, err)
		return
	}

	f, err := file.Open()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	defer f.Close()

	image, err := ioutil.ReadAll(f)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	report, err := s.intake.Submit(c.Request.Context(), intake.Draft{
		AccountNumber: requester,
		Description:   description,
		Image:         image,
		Latitude:      latitude,
		Longitude:     longitude,
	})
	if err != nil {
		var dup *intake.DuplicateError
		switch {
		case errors.As(err, &dup):
			c.JSON(http.StatusConflict, gin.H{
				"code":                errorDuplicateReport.Code,
				"message":             errorDuplicateReport.Message,
				"duplicate_report_id": dup.ReportID,
			})
			c.Abort()
		case errors.Is(err, intake.ErrInvalidInput):
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidInput, err)
		case errors.Is(err, intake.ErrPolicyViolation):
			abortWithEncoding(c, http.StatusBadRequest, errorPolicyViolation, err)
		case errors.Is(err, intake.ErrUploadFailed):
			abortWithEncoding(c, http.StatusInternalServerError, errorUploadFailed, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusCreated, report)
}

// listReports is the API for browsing reports with optional filters
func (s *Server) listReports(c *gin.Context) {
	reports, err := s.mongoStore.ListReports(store.ReportFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Severity: c.Query("severity"),
		Keyword:  c.Query("keyword"),
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(reports),
		"reports": reports,
	})
}

// searchReports is the API for natural language report search. The query
// is parsed into filters by the AI oracle; on oracle failure the whole
// query degrades to a keyword.
func (s *Server) searchReports(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	parsed, err := s.oracle.ParseSearchQuery(c.Request.Context(), q)
	if err != nil {
		log.WithError(err).Warn("search parsing degraded")
		parsed = &openai.SearchQuery{Keyword: q}
	}

	filter := store.ReportFilter{
		Category: parsed.Category,
		Status:   parsed.Status,
		Severity: parsed.Severity,
	}
	if parsed.Keyword != "" && !searchStopWords[strings.ToLower(parsed.Keyword)] {
		filter.TextSearch = parsed.Keyword
	}

	reports, err := s.mongoStore.ListReports(filter)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(reports),
		"reports": reports,
	})
}

// reportAnalytics is the API for aggregate report counters
func (s *Server) reportAnalytics(c *gin.Context) {
	analytics, err := s.mongoStore.ReportAnalytics()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, analytics)
}

// myReports is the API for listing the requester's own reports
func (s *Server) myReports(c *gin.Context) {
	requester := c.GetString("requester")

	reports, err := s.mongoStore.ListReports(store.ReportFilter{
		AccountNumber: requester,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(reports),
		"reports": reports,
	})
}

// getReport is the API for fetching one report by id
func (s *Server) getReport(c *gin.Context) {
	report, err := s.mongoStore.GetReport(c.Param("reportID"))
	if err != nil {
		if err == store.ErrReportNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorReportNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

// upvoteReport is the API for toggling the requester's upvote on a report
func (s *Server) upvoteReport(c *gin.Context) {
	requester := c.GetString("requester")

	report, err := s.mongoStore.ToggleUpvote(c.Param("reportID"), requester)
	if err != nil {
		if err == store.ErrReportNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorReportNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

// updateReportStatus is the API for authorities to move a report through
// its lifecycle. The author gets a notification, created asynchronously.
func (s *Server) updateReportStatus(c *gin.Context) {
	var params struct {
		Status schema.ReportStatus `json:"status"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !schema.ValidReportStatus(params.Status) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidStatus)
		return
	}

	report, err := s.mongoStore.UpdateReportStatus(c.Param("reportID"), params.Status)
	if err != nil {
		if err == store.ErrReportNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorReportNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.enqueueNotification(
		report.AccountNumber,
		statusUpdateMessage(report.Title, string(report.Status)),
		report.ID.Hex(),
		"")

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// enqueueNotification hands notification creation to the background
// worker. Failures are logged and swallowed: notification delivery never
// fails the request that triggered it.
func (s *Server) enqueueNotification(accountNumber, message, reportID, eventID string) {
	sig := &tasks.Signature{
		Name: background.TaskCreateNotification,
		Args: []tasks.Arg{
			{Type: "string", Value: accountNumber},
			{Type: "string", Value: message},
			{Type: "string", Value: reportID},
			{Type: "string", Value: eventID},
		},
	}

	if _, err := s.backgroundEnqueuer.SendTask(sig); err != nil {
		log.WithError(err).Error("enqueue notification")
	}
}

func statusUpdateMessage(title, status string) string {
	message, err := utils.NewLocalizer("en").Localize(&i18n.LocalizeConfig{
		MessageID: "notification_report_status",
		TemplateData: map[string]interface{}{
			"Title":  title,
			"Status": status,
		},
	})
	if err != nil {
		return fmt.Sprintf("The status of your report %q has been updated to %q.", title, status)
	}
	return message
}

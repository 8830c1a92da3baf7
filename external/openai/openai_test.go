package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/civictrack/civictrack-api/schema"
)

func chatReply(content string) string {
	payload, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return string(payload)
}

func TestModerate(t *testing.T) {
	mock := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/moderations", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"results":[{"flagged":true}]}`))
	}))
	defer mock.Close()

	o := New("test-key", mock.URL, mock.Client())

	flagged, err := o.Moderate(context.Background(), "abusive text")
	assert.NoError(t, err)
	assert.True(t, flagged)
}

func TestModerateServerError(t *testing.T) {
	mock := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer mock.Close()

	o := New("test-key", mock.URL, mock.Client())

	_, err := o.Moderate(context.Background(), "anything")
	assert.Error(t, err)
}

func TestAnalyzeReport(t *testing.T) {
	mock := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)

		var req chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, chatModel, req.Model)

		w.Write([]byte(chatReply(`{"title":"Pothole on Main Road","category":"Roads","severity":"High"}`)))
	}))
	defer mock.Close()

	o := New("test-key", mock.URL, mock.Client())

	analysis, err := o.AnalyzeReport(context.Background(), "large pothole on the main road")
	assert.NoError(t, err)
	assert.Equal(t, "Pothole on Main Road", analysis.Title)
	assert.Equal(t, schema.CategoryRoads, analysis.Category)
	assert.Equal(t, schema.SeverityHigh, analysis.Severity)
}

func TestAnalyzeReportMalformedContent(t *testing.T) {
	mock := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply(`not json at all`)))
	}))
	defer mock.Close()

	o := New("test-key", mock.URL, mock.Client())

	_, err := o.AnalyzeReport(context.Background(), "anything")
	assert.Error(t, err)
}

func TestFindDuplicate(t *testing.T) {
	existing := primitive.NewObjectID()

	mock := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, structuredModel, req.Model)
		assert.NotNil(t, req.ResponseFormat)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)

		w.Write([]byte(chatReply(fmt.Sprintf(`{"duplicateReportId":"%s"}`, existing.Hex()))))
	}))
	defer mock.Close()

	o := New("test-key", mock.URL, mock.Client())

	id, err := o.FindDuplicate(context.Background(), "pothole again", []schema.NearbyReport{
		{ID: existing, Description: "pothole near the school"},
	})
	assert.NoError(t, err)
	assert.Equal(t, existing.Hex(), id)
}

func TestFindDuplicateNone(t *testing.T) {
	mock := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply(`{"duplicateReportId":null}`)))
	}))
	defer mock.Close()

	o := New("test-key", mock.URL, mock.Client())

	id, err := o.FindDuplicate(context.Background(), "a new issue", nil)
	assert.NoError(t, err)
	assert.Equal(t, "", id)
}

func TestSummarize(t *testing.T) {
	mock := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply("Fell near the main square fountain, needs help.")))
	}))
	defer mock.Close()

	o := New("test-key", mock.URL, mock.Client())

	summary, err := o.Summarize(context.Background(), "please help, I fell near the main square fountain and cannot stand")
	assert.NoError(t, err)
	assert.Equal(t, "Fell near the main square fountain, needs help.", summary)
}

func TestParseSearchQuery(t *testing.T) {
	mock := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply(`{"category":"Roads","status":"Pending","keyword":"pothole"}`)))
	}))
	defer mock.Close()

	o := New("test-key", mock.URL, mock.Client())

	parsed, err := o.ParseSearchQuery(context.Background(), "pending potholes")
	assert.NoError(t, err)
	assert.Equal(t, "Roads", parsed.Category)
	assert.Equal(t, "Pending", parsed.Status)
	assert.Equal(t, "", parsed.Severity)
	assert.Equal(t, "pothole", parsed.Keyword)
}

func TestEmptyCompletion(t *testing.T) {
	mock := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer mock.Close()

	o := New("test-key", mock.URL, mock.Client())

	_, err := o.Summarize(context.Background(), "anything")
	assert.Error(t, err)
}

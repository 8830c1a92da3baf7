package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/civictrack/civictrack-api/schema"
)

const (
	defaultURL = "https://api.openai.com"

	chatModel       = "gpt-3.5-turbo"
	structuredModel = "gpt-3.5-turbo-0125"
)

var (
	errEmptyResponse = fmt.Errorf("empty completion response")
)

// ReportAnalysis - structured result of analyzing a report description
type ReportAnalysis struct {
	Title    string                `json:"title"`
	Category schema.ReportCategory `json:"category"`
	Severity schema.ReportSeverity `json:"severity"`
}

// SearchQuery - structured filter parsed from a natural language query
type SearchQuery struct {
	Category string `json:"category,omitempty"`
	Status   string `json:"status,omitempty"`
	Severity string `json:"severity,omitempty"`
	Keyword  string `json:"keyword,omitempty"`
}

// OpenAI - the AI oracle calls used by the intake pipeline, the
// broadcaster and report search. Every call is network bound and fallible;
// callers substitute their documented defaults on error.
type OpenAI interface {
	Moderate(ctx context.Context, text string) (bool, error)
	AnalyzeReport(ctx context.Context, description string) (*ReportAnalysis, error)
	FindDuplicate(ctx context.Context, description string, candidates []schema.NearbyReport) (string, error)
	Summarize(ctx context.Context, text string) (string, error)
	ParseSearchQuery(ctx context.Context, query string) (*SearchQuery, error)
}

type openAI struct {
	apiKey     string
	url        string
	httpClient *http.Client
}

// New - new OpenAI client. An empty url falls back to the public API.
func New(apiKey, url string, httpClient *http.Client) OpenAI {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &openAI{
		apiKey:     apiKey,
		url:        u,
		httpClient: httpClient,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (o *openAI) complete(ctx context.Context, req chatRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, o.url+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(r)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion request failed with status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", errEmptyResponse
	}

	return parsed.Choices[0].Message.Content, nil
}

// Moderate checks a text against the moderation endpoint and reports
// whether it was flagged.
func (o *openAI) Moderate(ctx context.Context, text string) (bool, error) {
	body, err := json.Marshal(map[string]string{"input": text})
	if err != nil {
		return false, err
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, o.url+"/v1/moderations", bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(r)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("moderation request failed with status %d", resp.StatusCode)
	}

	var parsed struct {
		Results []struct {
			Flagged bool `json:"flagged"`
		} `json:"results"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return false, err
	}
	if len(parsed.Results) == 0 {
		return false, errEmptyResponse
	}

	return parsed.Results[0].Flagged, nil
}

// AnalyzeReport classifies a report description into title, category and severity.
func (o *openAI) AnalyzeReport(ctx context.Context, description string) (*ReportAnalysis, error) {
	prompt := fmt.Sprintf(`Analyze the following civic issue description and return a JSON object with three keys: "title", "category", and "severity".

- "title": A concise, descriptive title for the issue (max 10 words).
- "category": Classify the issue into one of the following categories: ['Waste', 'Roads', 'Lighting', 'Water', 'Other'].
- "severity": Classify the severity of the issue as one of the following: ['Low', 'Medium', 'High'].

Description: "%s"

JSON Response:`, description)

	content, err := o.complete(ctx, chatRequest{
		Model:       chatModel,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.5,
	})
	if err != nil {
		return nil, err
	}

	var analysis ReportAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, err
	}

	return &analysis, nil
}

// FindDuplicate asks the oracle whether the new description matches one of
// the nearby candidate reports. It returns the matching candidate id, or an
// empty string when the issue is new.
func (o *openAI) FindDuplicate(ctx context.Context, description string, candidates []schema.NearbyReport) (string, error) {
	existing, err := json.Marshal(candidates)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`You are a duplicate detection system for a civic issue reporting app.
A user has submitted a new report description. Compare it to the list of existing, nearby report descriptions.
If the new report is describing the same fundamental issue as one of the existing reports, return a JSON object with a single key, "duplicateReportId", containing the ID of the original report.
If it is a new, unique issue, return { "duplicateReportId": null }.

New Report Description: "%s"

Existing Reports (Array of objects with id and description):
%s

JSON Response:`, description, existing)

	content, err := o.complete(ctx, chatRequest{
		Model:          structuredModel,
		Messages:       []chatMessage{{Role: "user", Content: prompt}},
		Temperature:    0.1,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", err
	}

	var result struct {
		DuplicateReportID string `json:"duplicateReportId"`
	}
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return "", err
	}

	return result.DuplicateReportID, nil
}

// Summarize condenses a distress message for alert delivery.
func (o *openAI) Summarize(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(`Summarize the following distress message in one short sentence, keeping the key facts a nearby helper needs:

"%s"`, text)

	return o.complete(ctx, chatRequest{
		Model:       chatModel,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.3,
	})
}

// ParseSearchQuery converts a natural language search into report filters.
func (o *openAI) ParseSearchQuery(ctx context.Context, query string) (*SearchQuery, error) {
	prompt := fmt.Sprintf(`You are an API search assistant. Analyze the user's search query for a civic issue app and convert it into a JSON object.
The possible keys for the JSON are "category", "status", "severity", and "keyword".
- The allowed values for "category" are: ['Waste', 'Roads', 'Lighting', 'Water', 'Other'].
- The allowed values for "status" are: ['Pending', 'In Progress', 'Resolved'].
- The allowed values for "severity" are: ['Low', 'Medium', 'High'].
- "keyword" should contain any remaining important nouns or descriptive terms.
If a filter is not mentioned in the query, omit its key from the JSON.

User Query: "%s"

JSON Response:`, query)

	content, err := o.complete(ctx, chatRequest{
		Model:          structuredModel,
		Messages:       []chatMessage{{Role: "user", Content: prompt}},
		Temperature:    0.2,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	var result SearchQuery
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/civictrack/civictrack-api/schema"
)

const (
	logPrefix  = "vision"
	defaultURL = "https://vision.googleapis.com"

	maxLabels = 10
)

// Labeler - image label detection mapped onto the report category enum
type Labeler interface {
	// Label returns the category suggested by the image, or an empty
	// string when no label maps onto a known category.
	Label(ctx context.Context, image []byte) (schema.ReportCategory, error)
}

type labeler struct {
	apiKey     string
	url        string
	httpClient *http.Client
}

// New - new Labeler client. An empty url falls back to the public API.
func New(apiKey, url string, httpClient *http.Client) Labeler {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &labeler{
		apiKey:     apiKey,
		url:        u,
		httpClient: httpClient,
	}
}

type annotateImage struct {
	Content string `json:"content"`
}

type annotateFeature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults"`
}

type annotateEntry struct {
	Image    annotateImage     `json:"image"`
	Features []annotateFeature `json:"features"`
}

type annotateRequest struct {
	Requests []annotateEntry `json:"requests"`
}

type annotateResponse struct {
	Responses []struct {
		LabelAnnotations []struct {
			Description string `json:"description"`
		} `json:"labelAnnotations"`
	} `json:"responses"`
}

func (l *labeler) Label(ctx context.Context, image []byte) (schema.ReportCategory, error) {
	req := annotateRequest{
		Requests: []annotateEntry{{
			Image:    annotateImage{Content: base64.StdEncoding.EncodeToString(image)},
			Features: []annotateFeature{{Type: "LABEL_DETECTION", MaxResults: maxLabels}},
		}},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, l.url+"/v1/images:annotate?key="+l.apiKey, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	r.Header.Set("Content-Type", "application/json")

	resp, err := l.httpClient.Do(r)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("annotate request failed with status %d", resp.StatusCode)
	}

	var parsed annotateResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Responses) == 0 {
		return "", nil
	}

	labels := make([]string, 0, len(parsed.Responses[0].LabelAnnotations))
	for _, a := range parsed.Responses[0].LabelAnnotations {
		labels = append(labels, strings.ToLower(a.Description))
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"labels": labels,
	}).Debug("image labels")

	return CategoryFromLabels(labels), nil
}

var labelVocabulary = []struct {
	category schema.ReportCategory
	labels   []string
}{
	{schema.CategoryRoads, []string{"pothole", "road"}},
	{schema.CategoryWaste, []string{"trash", "garbage", "waste"}},
	{schema.CategoryLighting, []string{"street light", "lamp"}},
	{schema.CategoryWater, []string{"water", "leak"}},
}

// CategoryFromLabels maps raw vision labels onto the category enum.
// Categories are checked in a fixed priority order, so an image labelled
// both "road" and "water" reads as Roads. Labels outside the closed
// vocabulary yield an empty category, deferring to the text classifier.
func CategoryFromLabels(labels []string) schema.ReportCategory {
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		seen[l] = true
	}

	for _, v := range labelVocabulary {
		for _, l := range v.labels {
			if seen[l] {
				return v.category
			}
		}
	}

	return ""
}

package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"mime/multipart"
	"net/http"
)

const (
	defaultURL = "https://api.cloudinary.com"

	uploadFolder = "CivicTrack"
)

var (
	errEmptyUploadURL = fmt.Errorf("upload response carries no url")
)

// Uploader - durable image storage. Upload failures are fatal to report
// creation, so no degrade default exists here.
type Uploader interface {
	Upload(ctx context.Context, image []byte) (string, error)
}

type uploader struct {
	cloudName    string
	uploadPreset string
	url          string
	httpClient   *http.Client
}

// New - new Uploader over cloudinary's unsigned upload API. An empty url
// falls back to the public API.
func New(cloudName, uploadPreset, url string, httpClient *http.Client) Uploader {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &uploader{
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		url:          u,
		httpClient:   httpClient,
	}
}

// Upload stores the image bytes and returns the public https url.
func (u *uploader) Upload(ctx context.Context, image []byte) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", "report")
	if err != nil {
		return "", err
	}
	if _, err := part.Write(image); err != nil {
		return "", err
	}
	if err := w.WriteField("upload_preset", u.uploadPreset); err != nil {
		return "", err
	}
	if err := w.WriteField("folder", uploadFolder); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/upload", u.url, u.cloudName)
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", err
	}
	r.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := u.httpClient.Do(r)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload request failed with status %d", resp.StatusCode)
	}

	var parsed struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", err
	}
	if parsed.SecureURL == "" {
		return "", errEmptyUploadURL
	}

	return parsed.SecureURL, nil
}

package imagestore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

const defaultUploadEndpoint = "https://api.cloudinary.com/v1_1"

// CloudinaryStore uploads images to Cloudinary using an unsigned upload
// preset. Calls go through a circuit breaker so a degraded Cloudinary does
// not pile up blocked check-in requests.
type CloudinaryStore struct {
	client       *http.Client
	endpoint     string
	cloudName    string
	uploadPreset string
	folder       string
	cb           *gobreaker.CircuitBreaker
}

type CloudinaryConfig struct {
	CloudName    string
	UploadPreset string
	Folder       string

	// Endpoint overrides the Cloudinary API base URL, used in tests.
	Endpoint string
}

func NewCloudinaryStore(cfg CloudinaryConfig) *CloudinaryStore {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultUploadEndpoint
	}

	settings := gobreaker.Settings{
		Name:        "cloudinary",
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Trip if failure rate is bigger than 50% after at least 10 requests
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.5
		},
	}

	return &CloudinaryStore{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		endpoint:     endpoint,
		cloudName:    cfg.CloudName,
		uploadPreset: cfg.UploadPreset,
		folder:       cfg.Folder,
		cb:           gobreaker.NewCircuitBreaker(settings),
	}
}

type cloudinaryUploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// Upload sends the image to Cloudinary's upload endpoint. Bare base64
// payloads are wrapped into a JPEG data URI first, matching what terminals
// send.
func (s *CloudinaryStore) Upload(ctx context.Context, base64Image string) (UploadResult, error) {
	file := base64Image
	if !strings.HasPrefix(file, "data:") {
		file = "data:image/jpeg;base64," + file
	}

	result, err := s.cb.Execute(func() (interface{}, error) {
		return s.doUpload(ctx, file)
	})
	if err != nil {
		return UploadResult{}, err
	}

	return result.(UploadResult), nil
}

func (s *CloudinaryStore) doUpload(ctx context.Context, file string) (UploadResult, error) {
	form := url.Values{}
	form.Set("file", file)
	form.Set("upload_preset", s.uploadPreset)
	if s.folder != "" {
		form.Set("folder", s.folder)
	}

	uploadURL := fmt.Sprintf("%s/%s/image/upload", s.endpoint, s.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, strings.NewReader(form.Encode()))
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to call image store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return UploadResult{}, fmt.Errorf("image store returned non-successful status code: %d", resp.StatusCode)
	}

	var payload cloudinaryUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return UploadResult{}, fmt.Errorf("failed to decode upload response: %w", err)
	}

	return UploadResult{
		URL:      payload.SecureURL,
		PublicID: payload.PublicID,
	}, nil
}

package imagestore

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStore writes decoded images to disk, for development setups without
// a Cloudinary account. The returned PublicID is the relative file path.
type LocalStore struct {
	basePath string
	baseURL  string // e.g., "http://localhost:8080/uploads"
}

func NewLocalStore(basePath, baseURL string) (*LocalStore, error) {
	// Create base directory if not exists
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStore{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

func (s *LocalStore) Upload(ctx context.Context, base64Image string) (UploadResult, error) {
	payload := base64Image
	if idx := strings.Index(payload, ";base64,"); strings.HasPrefix(payload, "data:") && idx >= 0 {
		payload = payload[idx+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to decode image payload: %w", err)
	}

	name := filepath.Join(time.Now().UTC().Format("2006-01-02"), uuid.New().String()+".jpg")
	fullPath := filepath.Join(s.basePath, name)

	// Sanitize against directory traversal even though name is generated
	if !strings.HasPrefix(fullPath, s.basePath) {
		return UploadResult{}, fmt.Errorf("invalid file path: %s", name)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return UploadResult{}, fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return UploadResult{}, fmt.Errorf("failed to write file: %w", err)
	}

	return UploadResult{
		URL:      fmt.Sprintf("%s/%s", s.baseURL, filepath.ToSlash(name)),
		PublicID: filepath.ToSlash(name),
	}, nil
}

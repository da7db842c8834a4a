package imagestore

import (
	"context"
)

// UploadResult is what the rest of the system keeps about a stored photo:
// a serving URL and an opaque reference id inside the store.
type UploadResult struct {
	URL      string
	PublicID string
}

// Store uploads base64-encoded photo evidence. Input may be a bare base64
// payload or a full data URI; implementations must accept both. Failures are
// infrastructure errors and propagate unchanged.
type Store interface {
	Upload(ctx context.Context, base64Image string) (UploadResult, error)
}

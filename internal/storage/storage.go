package storage

import "context"

// UploadResult identifies a stored image: a stable identifier inside the
// store plus the URL clients retrieve it from.
type UploadResult struct {
	ExternalID string
	URL        string
}

// Uploader stores raw images with an external collaborator. Implementations
// must not retry; callers own retry policy.
type Uploader interface {
	Upload(ctx context.Context, name string, data []byte, contentType string) (*UploadResult, error)
}

package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Config configures the S3-compatible image store.
type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	// PublicBaseURL overrides the endpoint-derived URL, e.g. a CDN front.
	PublicBaseURL string
}

// S3Store uploads images to an S3-compatible object store.
type S3Store struct {
	cl            *minio.Client
	endpoint      string
	bucket        string
	useSSL        bool
	publicBaseURL string
}

var _ Uploader = (*S3Store)(nil)

// NewS3Store creates a client for the configured bucket.
func NewS3Store(cfg S3Config) (*S3Store, error) {
	cl, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}
	return &S3Store{
		cl:            cl,
		endpoint:      cfg.Endpoint,
		bucket:        cfg.Bucket,
		useSSL:        cfg.UseSSL,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload stores the image under a fresh key and returns the key plus its
// retrieval URL. Keys are random, so re-uploading the same bytes yields a new
// object.
func (s *S3Store) Upload(ctx context.Context, name string, data []byte, contentType string) (*UploadResult, error) {
	key := "courses/" + uuid.New().String() + strings.ToLower(path.Ext(name))
	_, err := s.cl.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("put object: %w", err)
	}
	return &UploadResult{ExternalID: key, URL: s.publicURL(key)}, nil
}

func (s *S3Store) publicURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, key)
}

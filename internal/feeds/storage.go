package feeds

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/lensport/catalog-sync-v2/internal/config"
)

// Storage defines the interface for object store reads to enable mocking
//
//go:generate mockgen -source=storage.go -destination=../mocks/feeds_storage.go -package=mocks -mock_names=Storage=MockFeedStorage
type Storage interface {
	// GetObject downloads an object
	GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}

// MinioStorage implements Storage over a minio client
type MinioStorage struct {
	client *minio.Client
}

// NewStorage creates a new minio-backed storage client.
// The endpoint is expected without scheme; http:// and https:// prefixes are
// stripped.
func NewStorage(cfg config.ObjectStoreConfig) (Storage, error) {
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   30 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinioStorage{client: client}, nil
}

// GetObject downloads an object
func (s *MinioStorage) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	return s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
}

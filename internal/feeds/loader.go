package feeds

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/lensport/catalog-sync-v2/internal/adapter"
)

// minioScheme prefixes object store feed paths as minio://bucket/key
const minioScheme = "minio://"

// Loader resolves a feed path into raw vendor records
//
//go:generate mockgen -source=loader.go -destination=../mocks/feeds_loader.go -package=mocks -mock_names=Loader=MockFeedLoader
type Loader interface {
	// Load reads the feed at source and returns its records plus the
	// resolved source path
	Load(ctx context.Context, source string) ([]map[string]any, string, error)
}

// FeedLoader reads JSON feed files from the local filesystem or the object
// store
type FeedLoader struct {
	fs      adapter.FileSystem
	storage Storage
	json    adapter.JSON
}

var _ Loader = (*FeedLoader)(nil)

// NewLoader creates a new feed loader. storage may be nil when no object
// store is configured; minio:// sources then fail with an error.
func NewLoader(fs adapter.FileSystem, storage Storage, json adapter.JSON) *FeedLoader {
	return &FeedLoader{fs: fs, storage: storage, json: json}
}

// Load reads the feed at source and returns its records plus the resolved
// source path
func (l *FeedLoader) Load(ctx context.Context, source string) ([]map[string]any, string, error) {
	if source == "" {
		return nil, "", fmt.Errorf("empty feed source")
	}

	var data []byte
	var err error
	if strings.HasPrefix(source, minioScheme) {
		data, err = l.loadObject(ctx, source)
	} else {
		data, err = l.fs.ReadFile(source)
		if err != nil {
			err = fmt.Errorf("failed to read feed file %s: %w", source, err)
		}
	}
	if err != nil {
		return nil, "", err
	}

	// Sniff before parsing so HTML error pages and binaries fail with a
	// clear message instead of a JSON syntax error
	if mtype := mimetype.Detect(data); !mtype.Is("application/json") {
		return nil, "", fmt.Errorf("feed %s is %s, expected JSON", source, mtype.String())
	}

	var items []map[string]any
	if err := l.json.Unmarshal(data, &items); err != nil {
		return nil, "", fmt.Errorf("failed to parse feed %s: %w", source, err)
	}

	return items, source, nil
}

func (l *FeedLoader) loadObject(ctx context.Context, source string) ([]byte, error) {
	if l.storage == nil {
		return nil, fmt.Errorf("no object store configured for %s", source)
	}

	rest := strings.TrimPrefix(source, minioScheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("invalid object path %s, expected minio://bucket/key", source)
	}

	object, err := l.storage.GetObject(ctx, bucket, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed object %s: %w", source, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed object %s: %w", source, err)
	}
	return data, nil
}

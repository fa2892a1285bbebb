package feeds_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensport/catalog-sync-v2/internal/adapter"
	"github.com/lensport/catalog-sync-v2/internal/feeds"
	"github.com/lensport/catalog-sync-v2/internal/mocks"
)

const feedJSON = `[
	{"style": "LEMTOSH", "title": "The Lemtosh"},
	{"style": "MILTZEN", "title": "The Miltzen"}
]`

func TestFeedLoader_Load_LocalFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFileSystem(ctrl)
	loader := feeds.NewLoader(mockFS, nil, adapter.NewJSON())

	mockFS.EXPECT().
		ReadFile("/feeds/moscot.json").
		Return([]byte(feedJSON), nil)

	items, path, err := loader.Load(context.Background(), "/feeds/moscot.json")

	require.NoError(t, err)
	assert.Equal(t, "/feeds/moscot.json", path)
	require.Len(t, items, 2)
	assert.Equal(t, "LEMTOSH", items[0]["style"])
	assert.Equal(t, "MILTZEN", items[1]["style"])
}

func TestFeedLoader_Load_LocalFileMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFileSystem(ctrl)
	loader := feeds.NewLoader(mockFS, nil, adapter.NewJSON())

	mockFS.EXPECT().
		ReadFile("/feeds/missing.json").
		Return(nil, assert.AnError)

	items, _, err := loader.Load(context.Background(), "/feeds/missing.json")

	assert.Nil(t, items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read feed file /feeds/missing.json")
}

func TestFeedLoader_Load_ObjectStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFileSystem(ctrl)
	mockStorage := mocks.NewMockFeedStorage(ctrl)
	loader := feeds.NewLoader(mockFS, mockStorage, adapter.NewJSON())

	ctx := context.Background()

	mockStorage.EXPECT().
		GetObject(ctx, "feeds", "moscot/latest.json").
		Return(io.NopCloser(bytes.NewReader([]byte(feedJSON))), nil)

	items, path, err := loader.Load(ctx, "minio://feeds/moscot/latest.json")

	require.NoError(t, err)
	assert.Equal(t, "minio://feeds/moscot/latest.json", path)
	assert.Len(t, items, 2)
}

func TestFeedLoader_Load_ObjectStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFileSystem(ctrl)
	mockStorage := mocks.NewMockFeedStorage(ctrl)
	loader := feeds.NewLoader(mockFS, mockStorage, adapter.NewJSON())

	mockStorage.EXPECT().
		GetObject(gomock.Any(), "feeds", "moscot/latest.json").
		Return(nil, assert.AnError)

	items, _, err := loader.Load(context.Background(), "minio://feeds/moscot/latest.json")

	assert.Nil(t, items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch feed object")
}

func TestFeedLoader_Load_ObjectStoreNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFileSystem(ctrl)
	loader := feeds.NewLoader(mockFS, nil, adapter.NewJSON())

	items, _, err := loader.Load(context.Background(), "minio://feeds/moscot/latest.json")

	assert.Nil(t, items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no object store configured")
}

func TestFeedLoader_Load_InvalidObjectPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFileSystem(ctrl)
	mockStorage := mocks.NewMockFeedStorage(ctrl)
	loader := feeds.NewLoader(mockFS, mockStorage, adapter.NewJSON())

	tests := []string{
		"minio://",
		"minio://feeds",
		"minio:///key-without-bucket",
	}

	for _, source := range tests {
		items, _, err := loader.Load(context.Background(), source)

		assert.Nil(t, items)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected minio://bucket/key")
	}
}

func TestFeedLoader_Load_RejectsNonJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFileSystem(ctrl)
	loader := feeds.NewLoader(mockFS, nil, adapter.NewJSON())

	mockFS.EXPECT().
		ReadFile("/feeds/error.html").
		Return([]byte("<html><body>502 Bad Gateway</body></html>"), nil)

	items, _, err := loader.Load(context.Background(), "/feeds/error.html")

	assert.Nil(t, items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected JSON")
}

func TestFeedLoader_Load_RejectsNonArrayJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFileSystem(ctrl)
	loader := feeds.NewLoader(mockFS, nil, adapter.NewJSON())

	mockFS.EXPECT().
		ReadFile("/feeds/object.json").
		Return([]byte(`{"style": "LEMTOSH"}`), nil)

	items, _, err := loader.Load(context.Background(), "/feeds/object.json")

	assert.Nil(t, items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse feed")
}

func TestFeedLoader_Load_EmptySource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFileSystem(ctrl)
	loader := feeds.NewLoader(mockFS, nil, adapter.NewJSON())

	items, _, err := loader.Load(context.Background(), "")

	assert.Nil(t, items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty feed source")
}

package jetstream_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensport/catalog-sync-v2/internal/adapter"
	"github.com/lensport/catalog-sync-v2/internal/domain"
	"github.com/lensport/catalog-sync-v2/internal/logger"
	"github.com/lensport/catalog-sync-v2/internal/messaging"
	"github.com/lensport/catalog-sync-v2/internal/mocks"
	"github.com/lensport/catalog-sync-v2/internal/providers/jetstream"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

var testConfig = jetstream.Config{
	URL:            "nats://jetstream.test:4222",
	StreamName:     "CATALOG_EVENTS",
	MaxReconnects:  10,
	ReconnectWait:  2 * time.Second,
	ConnectionName: "catalog-sync-test",
}

// testPublisherMocks contains all the mocks needed for testing the publisher
type testPublisherMocks struct {
	ctrl   *gomock.Controller
	natsJS *mocks.MockNatsJetStream
	conn   *mocks.MockNatsConn
	js     *mocks.MockJetStream
}

func setupTestPublisher(t *testing.T) *testPublisherMocks {
	ctrl := gomock.NewController(t)

	return &testPublisherMocks{
		ctrl:   ctrl,
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		conn:   mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
	}
}

// tearDownTestPublisher cleans up the test mocks
func tearDownTestPublisher(mocks *testPublisherMocks) {
	mocks.ctrl.Finish()
}

// connect returns a wired publisher with the connection expectation satisfied
func (tm *testPublisherMocks) connect(t *testing.T) messaging.Publisher {
	tm.natsJS.
		EXPECT().
		Connect(testConfig.URL, gomock.Any()).
		Return(tm.conn, tm.js, nil)

	pub, err := jetstream.NewPublisher(testConfig, tm.natsJS, adapter.NewJSON())
	require.NoError(t, err)

	return pub
}

func TestNewPublisher(t *testing.T) {
	tm := setupTestPublisher(t)
	defer tearDownTestPublisher(tm)

	tm.natsJS.
		EXPECT().
		Connect(testConfig.URL, gomock.Any()).
		Return(tm.conn, tm.js, nil)

	pub, err := jetstream.NewPublisher(testConfig, tm.natsJS, adapter.NewJSON())

	assert.NoError(t, err)
	assert.NotNil(t, pub)
}

func TestNewPublisher_ConnectError(t *testing.T) {
	tm := setupTestPublisher(t)
	defer tearDownTestPublisher(tm)

	tm.natsJS.
		EXPECT().
		Connect(testConfig.URL, gomock.Any()).
		Return(nil, nil, assert.AnError)

	pub, err := jetstream.NewPublisher(testConfig, tm.natsJS, adapter.NewJSON())

	assert.Nil(t, pub)
	assert.ErrorContains(t, err, "failed to connect to NATS")
}

func TestPublishItemChange(t *testing.T) {
	tm := setupTestPublisher(t)
	defer tearDownTestPublisher(tm)

	pub := tm.connect(t)

	event := &domain.ItemChangeEvent{
		Vendor:    "moscot",
		CatalogID: "moscot:lemtosh-tortoise-46",
		Change:    domain.ChangeCreated,
		Hash:      "9b2cf8a14d5e6071822394a5b6c7d8e9f0a1b2c3d4e5f60718293a4b5c6d7e8f",
		RunID:     "01JXF2QZJT5W8RT1K9B2C3D4E5",
		Timestamp: time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC),
	}

	tm.js.
		EXPECT().
		Publish(gomock.Any(), "catalog.moscot.created", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			var published domain.ItemChangeEvent
			require.NoError(t, json.Unmarshal(data, &published))
			assert.Equal(t, *event, published)
			return &natsjs.PubAck{Stream: testConfig.StreamName}, nil
		})

	err := pub.PublishItemChange(context.Background(), event)

	assert.NoError(t, err)
}

func TestPublishItemChange_RemovedSubject(t *testing.T) {
	tm := setupTestPublisher(t)
	defer tearDownTestPublisher(tm)

	pub := tm.connect(t)

	event := &domain.ItemChangeEvent{
		Vendor:    "shuron",
		CatalogID: "shuron:ronsir-zyl-48",
		Change:    domain.ChangeRemoved,
		RunID:     "01JXF2QZJT5W8RT1K9B2C3D4E5",
		Timestamp: time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC),
	}

	tm.js.
		EXPECT().
		Publish(gomock.Any(), "catalog.shuron.removed", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			// Removed items carry no hash on the wire
			assert.NotContains(t, string(data), `"hash"`)
			return &natsjs.PubAck{Stream: testConfig.StreamName}, nil
		})

	err := pub.PublishItemChange(context.Background(), event)

	assert.NoError(t, err)
}

func TestPublishItemChange_MarshalError(t *testing.T) {
	tm := setupTestPublisher(t)
	defer tearDownTestPublisher(tm)

	jsonAdapter := mocks.NewMockJSON(tm.ctrl)
	jsonAdapter.EXPECT().Marshal(gomock.Any()).Return(nil, assert.AnError)

	tm.natsJS.
		EXPECT().
		Connect(testConfig.URL, gomock.Any()).
		Return(tm.conn, tm.js, nil)

	pub, err := jetstream.NewPublisher(testConfig, tm.natsJS, jsonAdapter)
	require.NoError(t, err)

	err = pub.PublishItemChange(context.Background(), &domain.ItemChangeEvent{
		Vendor: "moscot",
		Change: domain.ChangeCreated,
	})

	assert.ErrorContains(t, err, "failed to marshal event")
}

func TestPublishItemChange_PublishError(t *testing.T) {
	tm := setupTestPublisher(t)
	defer tearDownTestPublisher(tm)

	pub := tm.connect(t)

	tm.js.
		EXPECT().
		Publish(gomock.Any(), "catalog.moscot.created", gomock.Any()).
		Return(nil, assert.AnError)

	err := pub.PublishItemChange(context.Background(), &domain.ItemChangeEvent{
		Vendor: "moscot",
		Change: domain.ChangeCreated,
	})

	assert.ErrorContains(t, err, "failed to publish event")
}

func TestClose(t *testing.T) {
	tm := setupTestPublisher(t)
	defer tearDownTestPublisher(tm)

	pub := tm.connect(t)

	tm.conn.EXPECT().Close()

	pub.Close()
}

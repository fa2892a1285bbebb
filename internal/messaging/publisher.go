package messaging

import (
	"context"

	"github.com/lensport/catalog-sync-v2/internal/domain"
)

// Publisher defines the interface for publishing catalog changes to the
// message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishItemChange publishes a single item change to the changefeed
	PublishItemChange(ctx context.Context, event *domain.ItemChangeEvent) error
	// Close closes the connection
	Close()
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
	portsrepo "github.com/SscSPs/earnings_calendar_app/internal/core/ports/repositories"
)

// DefaultKey is the key the event list is stored under.
const DefaultKey = "earnings:events"

// EventDocumentRepository keeps the event document as a single JSON string value.
type EventDocumentRepository struct {
	client *redis.Client
	key    string
}

// NewClient creates a Redis client without dialing; connectivity is checked by Ping.
func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// NewEventDocumentRepository creates a repository storing the document under key.
func NewEventDocumentRepository(client *redis.Client, key string) *EventDocumentRepository {
	if key == "" {
		key = DefaultKey
	}
	return &EventDocumentRepository{client: client, key: key}
}

var (
	_ portsrepo.EventDocumentRepositoryFacade = (*EventDocumentRepository)(nil)
	_ portsrepo.HealthChecker                 = (*EventDocumentRepository)(nil)
)

// ReadDocument returns the stored value, or an empty slice when the key does not exist.
func (r *EventDocumentRepository) ReadDocument(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []byte{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event document from redis: key=%s: %w", r.key, err)
	}
	return data, nil
}

// WriteDocument overwrites the key with events as a bare JSON array, without expiry.
func (r *EventDocumentRepository) WriteDocument(ctx context.Context, events []domain.EarningsEvent) error {
	if events == nil {
		events = []domain.EarningsEvent{}
	}
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to marshal events: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save event document to redis: key=%s: %w", r.key, err)
	}
	return nil
}

// Ping checks Redis connectivity.
func (r *EventDocumentRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (r *EventDocumentRepository) Close() error {
	return r.client.Close()
}

package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
	portsrepo "github.com/SscSPs/earnings_calendar_app/internal/core/ports/repositories"
)

// DefaultDocumentID is the row that holds the event list.
const DefaultDocumentID = "events"

type PgxEventDocumentRepository struct {
	BaseRepository
	documentID string
}

// newPgxEventDocumentRepository creates a repository over the event_documents table.
func newPgxEventDocumentRepository(pool *pgxpool.Pool, documentID string) *PgxEventDocumentRepository {
	return &PgxEventDocumentRepository{
		BaseRepository: BaseRepository{Pool: pool},
		documentID:     documentID,
	}
}

// Ensure implementation matches interface
var (
	_ portsrepo.EventDocumentRepositoryFacade = (*PgxEventDocumentRepository)(nil)
	_ portsrepo.HealthChecker                 = (*PgxEventDocumentRepository)(nil)
)

// ReadDocument returns the stored JSON body, or an empty slice when the row does not exist yet.
func (r *PgxEventDocumentRepository) ReadDocument(ctx context.Context) ([]byte, error) {
	query := `
		SELECT body
		FROM event_documents
		WHERE document_id = $1;
	`
	var body []byte
	err := r.Pool.QueryRow(ctx, query, r.documentID).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []byte{}, nil
		}
		return nil, fmt.Errorf("failed to read event document %s: %w", r.documentID, err)
	}
	return body, nil
}

// WriteDocument upserts the whole list as a bare JSON array.
func (r *PgxEventDocumentRepository) WriteDocument(ctx context.Context, events []domain.EarningsEvent) error {
	if events == nil {
		events = []domain.EarningsEvent{}
	}
	body, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to encode events: %w", err)
	}

	query := `
		INSERT INTO event_documents (document_id, body, last_updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (document_id) DO UPDATE SET
			body = EXCLUDED.body,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	if _, err := r.Pool.Exec(ctx, query, r.documentID, string(body)); err != nil {
		return fmt.Errorf("failed to write event document %s: %w", r.documentID, err)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SafalBhandari12/event/internal/domain"
)

type IntentRepository struct {
	pool *pgxpool.Pool
}

func NewIntentRepository(pool *pgxpool.Pool) *IntentRepository {
	return &IntentRepository{pool: pool}
}

func (r *IntentRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

const intentColumns = `id, event_slug, tier_id, buyer_name, email, quantity, COALESCE(idempotency_key, ''), created_at`

func (r *IntentRepository) GetIntentByIdempotencyKey(ctx context.Context, eventSlug, key string) (*domain.PurchaseIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM purchase_intents WHERE event_slug = $1 AND idempotency_key = $2`

	in, err := scanIntent(conn(ctx, r.pool).QueryRow(ctx, query, eventSlug, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get intent: %w", err)
	}
	return &in, nil
}

// CreateIntent inserts in. A key already used for the event yields
// domain.ErrDuplicateIntent without aborting the surrounding transaction, so
// the caller can still read the stored intent.
func (r *IntentRepository) CreateIntent(ctx context.Context, in domain.PurchaseIntent) error {
	const stmt = `
INSERT INTO purchase_intents (id, event_slug, tier_id, buyer_name, email, quantity, idempotency_key, created_at)
VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)
ON CONFLICT (event_slug, idempotency_key) WHERE idempotency_key IS NOT NULL DO NOTHING`

	tag, err := conn(ctx, r.pool).Exec(ctx, stmt,
		in.ID, in.EventSlug, in.TierID, in.Name, in.Email, in.Quantity, in.IdempotencyKey, in.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateIntent
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create intent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDuplicateIntent
	}
	return nil
}

func scanIntent(row pgx.Row) (domain.PurchaseIntent, error) {
	var in domain.PurchaseIntent
	err := row.Scan(&in.ID, &in.EventSlug, &in.TierID, &in.Name, &in.Email, &in.Quantity, &in.IdempotencyKey, &in.CreatedAt)
	return in, err
}

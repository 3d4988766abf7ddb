package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SafalBhandari12/event/internal/domain"
)

type SubscriptionRepository struct {
	pool *pgxpool.Pool
}

func NewSubscriptionRepository(pool *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{pool: pool}
}

func (r *SubscriptionRepository) GetSubscription(ctx context.Context, eventSlug, email string) (*domain.Subscription, error) {
	const query = `
SELECT id, event_slug, email, created_at
FROM newsletter_subscriptions
WHERE event_slug = $1 AND email = $2`

	var s domain.Subscription
	err := conn(ctx, r.pool).QueryRow(ctx, query, eventSlug, email).
		Scan(&s.ID, &s.EventSlug, &s.Email, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &s, nil
}

func (r *SubscriptionRepository) CreateSubscription(ctx context.Context, s domain.Subscription) error {
	const stmt = `
INSERT INTO newsletter_subscriptions (id, event_slug, email, created_at)
VALUES ($1, $2, $3, $4)`

	_, err := conn(ctx, r.pool).Exec(ctx, stmt, s.ID, s.EventSlug, s.Email, s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadySubscribed
		}
		return fmt.Errorf("create subscription: %w", err)
	}
	return nil
}

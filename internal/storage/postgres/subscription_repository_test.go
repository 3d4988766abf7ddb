package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/SafalBhandari12/event/internal/domain"
	"github.com/SafalBhandari12/event/internal/testutil"
)

func TestSubscriptionRepository(t *testing.T) {
	pool := testutil.Postgres(t)
	repo := NewSubscriptionRepository(pool)
	testutil.Migrate(t, context.Background(), pool)

	ctx := context.Background()
	testutil.ResetTables(t, ctx, pool)

	sub := domain.Subscription{
		ID:        "5b0f6a9e-2222-4c1d-8e7f-000000000001",
		EventSlug: "flow-party",
		Email:     "fan@example.com",
		CreatedAt: time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC),
	}
	if err := repo.CreateSubscription(ctx, sub); err != nil {
		t.Fatalf("create subscription: %v", err)
	}

	got, err := repo.GetSubscription(ctx, "flow-party", "fan@example.com")
	if err != nil {
		t.Fatalf("get subscription: %v", err)
	}
	if got == nil || got.ID != sub.ID {
		t.Fatalf("unexpected subscription: %+v", got)
	}

	dup := sub
	dup.ID = "5b0f6a9e-2222-4c1d-8e7f-000000000002"
	if err := repo.CreateSubscription(ctx, dup); err != domain.ErrAlreadySubscribed {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}

	none, err := repo.GetSubscription(ctx, "afro-vibes", "fan@example.com")
	if err != nil {
		t.Fatalf("get subscription: %v", err)
	}
	if none != nil {
		t.Fatalf("expected no subscription, got %+v", none)
	}
}

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/SafalBhandari12/event/internal/domain"
	"github.com/SafalBhandari12/event/internal/testutil"
)

func TestIntentRepository(t *testing.T) {
	pool := testutil.Postgres(t)
	repo := NewIntentRepository(pool)
	testutil.Migrate(t, context.Background(), pool)

	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)

	t.Run("CreateIntent persists and lookup by key returns it", func(t *testing.T) {
		ctx := context.Background()
		testutil.ResetTables(t, ctx, pool)

		in := domain.PurchaseIntent{
			ID:             "7d9a3c2e-1111-4a5b-9c3d-000000000001",
			EventSlug:      "flow-party",
			TierID:         "vip",
			Name:           "Ada",
			Email:          "ada@example.com",
			Quantity:       2,
			IdempotencyKey: "idem-1",
			CreatedAt:      now,
		}
		if err := repo.CreateIntent(ctx, in); err != nil {
			t.Fatalf("create intent: %v", err)
		}

		got, err := repo.GetIntentByIdempotencyKey(ctx, "flow-party", "idem-1")
		if err != nil {
			t.Fatalf("get intent: %v", err)
		}
		if got == nil || got.ID != in.ID || got.Quantity != 2 || got.Name != "Ada" {
			t.Fatalf("unexpected intent: %+v", got)
		}

		missing, err := repo.GetIntentByIdempotencyKey(ctx, "afro-vibes", "idem-1")
		if err != nil {
			t.Fatalf("get intent: %v", err)
		}
		if missing != nil {
			t.Fatalf("expected nil for other event, got %+v", missing)
		}
	})

	t.Run("duplicate key returns ErrDuplicateIntent", func(t *testing.T) {
		ctx := context.Background()
		testutil.ResetTables(t, ctx, pool)

		base := domain.PurchaseIntent{
			ID: "7d9a3c2e-1111-4a5b-9c3d-000000000002", EventSlug: "flow-party", TierID: "general",
			Name: "Ada", Email: "ada@example.com", Quantity: 1, IdempotencyKey: "idem-2", CreatedAt: now,
		}
		if err := repo.CreateIntent(ctx, base); err != nil {
			t.Fatalf("create intent: %v", err)
		}
		dup := base
		dup.ID = "7d9a3c2e-1111-4a5b-9c3d-000000000003"
		if err := repo.CreateIntent(ctx, dup); err != domain.ErrDuplicateIntent {
			t.Fatalf("expected ErrDuplicateIntent, got %v", err)
		}
	})

	t.Run("intents without key never collide", func(t *testing.T) {
		ctx := context.Background()
		testutil.ResetTables(t, ctx, pool)

		for _, id := range []string{
			"7d9a3c2e-1111-4a5b-9c3d-000000000004",
			"7d9a3c2e-1111-4a5b-9c3d-000000000005",
		} {
			err := repo.CreateIntent(ctx, domain.PurchaseIntent{
				ID: id, EventSlug: "flow-party", TierID: "general",
				Name: "Ada", Email: "ada@example.com", Quantity: 1, CreatedAt: now,
			})
			if err != nil {
				t.Fatalf("create intent: %v", err)
			}
		}
		if n := testutil.CountRows(t, ctx, pool, "purchase_intents"); n != 2 {
			t.Fatalf("expected 2 intents, got %d", n)
		}
	})

	t.Run("rollback discards intent", func(t *testing.T) {
		ctx := context.Background()
		testutil.ResetTables(t, ctx, pool)

		errBoom := domain.ErrTierUnavailable
		err := repo.WithTx(ctx, func(txCtx context.Context) error {
			if err := repo.CreateIntent(txCtx, domain.PurchaseIntent{
				ID: "7d9a3c2e-1111-4a5b-9c3d-000000000006", EventSlug: "flow-party", TierID: "vip",
				Name: "Ada", Email: "ada@example.com", Quantity: 1, IdempotencyKey: "idem-6", CreatedAt: now,
			}); err != nil {
				t.Fatalf("create intent: %v", err)
			}
			return errBoom
		})
		if err != errBoom {
			t.Fatalf("expected rollback error, got %v", err)
		}
		if n := testutil.CountRows(t, ctx, pool, "purchase_intents"); n != 0 {
			t.Fatalf("expected rollback, found %d intents", n)
		}
	})

	t.Run("duplicate key inside a transaction leaves it usable", func(t *testing.T) {
		ctx := context.Background()
		testutil.ResetTables(t, ctx, pool)

		first := domain.PurchaseIntent{
			ID: "7d9a3c2e-1111-4a5b-9c3d-000000000007", EventSlug: "flow-party", TierID: "vip",
			Name: "Ada", Email: "ada@example.com", Quantity: 2, IdempotencyKey: "idem-7", CreatedAt: now,
		}
		second := first
		second.ID = "7d9a3c2e-1111-4a5b-9c3d-000000000008"

		var got *domain.PurchaseIntent
		err := repo.WithTx(ctx, func(txCtx context.Context) error {
			if err := repo.CreateIntent(txCtx, first); err != nil {
				t.Fatalf("create first intent: %v", err)
			}
			if err := repo.CreateIntent(txCtx, second); err != domain.ErrDuplicateIntent {
				t.Fatalf("expected ErrDuplicateIntent, got %v", err)
			}
			var err error
			got, err = repo.GetIntentByIdempotencyKey(txCtx, "flow-party", "idem-7")
			return err
		})
		if err != nil {
			t.Fatalf("expected transaction to commit, got %v", err)
		}
		if got == nil || got.ID != first.ID {
			t.Fatalf("expected intent %s, got %+v", first.ID, got)
		}
		if n := testutil.CountRows(t, ctx, pool, "purchase_intents"); n != 1 {
			t.Fatalf("expected 1 intent, got %d", n)
		}
	})
}

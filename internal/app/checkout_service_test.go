package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SafalBhandari12/event/internal/clock"
	"github.com/SafalBhandari12/event/internal/domain"
	"github.com/SafalBhandari12/event/internal/ui"
)

var vipTier = domain.TicketTier{ID: "vip", Name: "VIP Experience", Available: true}

func TestCheckoutService_PlaceOrder(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)

	t.Run("records new intent", func(t *testing.T) {
		repo := newFakeIntentRepo()
		svc := NewCheckoutService(repo, clock.NewFixed(now), nil)

		res, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
			EventSlug:      "flow-party",
			Tier:           vipTier,
			Name:           " Ada ",
			Email:          "Ada@Example.com",
			Quantity:       2,
			IdempotencyKey: "idem-1",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !res.Created {
			t.Fatalf("expected Created=true")
		}
		if res.Intent.ID == "" {
			t.Fatalf("expected intent ID to be set")
		}
		if res.Intent.Email != "ada@example.com" || res.Intent.Name != "Ada" {
			t.Fatalf("expected normalized buyer, got %+v", res.Intent)
		}
		if !res.Intent.CreatedAt.Equal(now) {
			t.Fatalf("expected created_at %v, got %v", now, res.Intent.CreatedAt)
		}
		if !res.Confirmation.Recorded {
			t.Fatalf("expected Recorded=true")
		}
		want := "Thank you! Your VIP Experience ticket(s) have been reserved. Check your email for confirmation."
		if res.Confirmation.Message != want {
			t.Fatalf("expected message %q, got %q", want, res.Confirmation.Message)
		}
		if len(repo.intents) != 1 {
			t.Fatalf("expected 1 stored intent, got %d", len(repo.intents))
		}
	})

	t.Run("same key replays existing intent", func(t *testing.T) {
		repo := newFakeIntentRepo()
		svc := NewCheckoutService(repo, clock.NewFixed(now), nil)
		in := PlaceOrderInput{
			EventSlug: "flow-party", Tier: vipTier, Name: "Ada",
			Email: "ada@example.com", Quantity: 2, IdempotencyKey: "idem-2",
		}

		first, err := svc.PlaceOrder(context.Background(), in)
		if err != nil {
			t.Fatalf("first: %v", err)
		}
		second, err := svc.PlaceOrder(context.Background(), in)
		if err != nil {
			t.Fatalf("second: %v", err)
		}
		if second.Created {
			t.Fatalf("expected Created=false on replay")
		}
		if second.Intent.ID != first.Intent.ID {
			t.Fatalf("expected intent %s, got %s", first.Intent.ID, second.Intent.ID)
		}
		if len(repo.intents) != 1 {
			t.Fatalf("expected 1 stored intent, got %d", len(repo.intents))
		}
	})

	t.Run("same key with different order is rejected", func(t *testing.T) {
		repo := newFakeIntentRepo()
		svc := NewCheckoutService(repo, clock.NewFixed(now), nil)
		in := PlaceOrderInput{
			EventSlug: "flow-party", Tier: vipTier, Name: "Ada",
			Email: "ada@example.com", Quantity: 2, IdempotencyKey: "idem-3",
		}
		if _, err := svc.PlaceOrder(context.Background(), in); err != nil {
			t.Fatalf("first: %v", err)
		}
		in.Quantity = 3
		_, err := svc.PlaceOrder(context.Background(), in)
		if err != domain.ErrIdempotencyReused {
			t.Fatalf("expected ErrIdempotencyReused, got %v", err)
		}
	})

	t.Run("unavailable tier", func(t *testing.T) {
		svc := NewCheckoutService(nil, clock.NewFixed(now), nil)
		_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
			Tier: domain.TicketTier{ID: "ultra", Name: "Ultra"},
			Name: "Ada", Email: "ada@example.com", Quantity: 1,
		})
		if err != domain.ErrTierUnavailable {
			t.Fatalf("expected ErrTierUnavailable, got %v", err)
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		repo := newFakeIntentRepo()
		svc := NewCheckoutService(repo, clock.NewFixed(now), nil)
		_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
			Tier: vipTier, Name: "", Email: "ada@example.com", Quantity: 1,
		})
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(repo.intents) != 0 {
			t.Fatalf("expected nothing stored")
		}
	})

	t.Run("no repository confirms without recording", func(t *testing.T) {
		svc := NewCheckoutService(nil, clock.NewFixed(now), nil)
		res, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
			EventSlug: "flow-party", Tier: vipTier, Name: "Ada",
			Email: "ada@example.com", Quantity: 5,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if res.Confirmation.Recorded {
			t.Fatalf("expected Recorded=false")
		}
		if !res.Created {
			t.Fatalf("expected Created=true")
		}
	})

	t.Run("idempotent on create conflict", func(t *testing.T) {
		repo := &raceIntentRepo{existing: domain.PurchaseIntent{
			ID: "intent-9", EventSlug: "flow-party", TierID: "vip",
			Email: "ada@example.com", Quantity: 1, IdempotencyKey: "idem-9",
		}}
		svc := NewCheckoutService(repo, clock.NewFixed(now), nil)
		res, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
			EventSlug: "flow-party", Tier: vipTier, Name: "Ada",
			Email: "ada@example.com", Quantity: 1, IdempotencyKey: "idem-9",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if res.Created || res.Intent.ID != "intent-9" {
			t.Fatalf("expected replay of intent-9, got %+v", res)
		}
	})

	t.Run("repository error propagates", func(t *testing.T) {
		repo := newFakeIntentRepo()
		repo.createErr = errors.New("disk full")
		svc := NewCheckoutService(repo, clock.NewFixed(now), nil)
		_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
			EventSlug: "flow-party", Tier: vipTier, Name: "Ada",
			Email: "ada@example.com", Quantity: 1,
		})
		if err == nil || err.Error() != "disk full" {
			t.Fatalf("expected disk full, got %v", err)
		}
	})
}

func TestCheckoutService_DrivesCheckoutForm(t *testing.T) {
	t.Parallel()

	svc := NewCheckoutService(nil, clock.NewFixed(time.Now()), nil)
	form := ui.NewCheckout([]domain.TicketTier{vipTier})
	if err := form.OpenCheckout("vip"); err != nil {
		t.Fatalf("open: %v", err)
	}
	form.SetName("Ada")
	form.SetEmail("ada@example.com")
	form.SetQuantity(3)

	conf, err := form.Submit(context.Background(), svc.Submitter("flow-party", ""))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if conf.Quantity != 3 || conf.TierName != "VIP Experience" {
		t.Fatalf("unexpected confirmation %+v", conf)
	}
	if form.IsOpen() {
		t.Fatalf("expected modal closed")
	}
	if form.Notice() != conf.Message {
		t.Fatalf("expected notice %q, got %q", conf.Message, form.Notice())
	}
}

type fakeIntentRepo struct {
	intents   map[string]domain.PurchaseIntent
	createErr error
}

func newFakeIntentRepo() *fakeIntentRepo {
	return &fakeIntentRepo{intents: make(map[string]domain.PurchaseIntent)}
}

func (f *fakeIntentRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeIntentRepo) GetIntentByIdempotencyKey(_ context.Context, eventSlug, key string) (*domain.PurchaseIntent, error) {
	for _, in := range f.intents {
		if in.EventSlug == eventSlug && in.IdempotencyKey == key {
			copy := in
			return &copy, nil
		}
	}
	return nil, nil
}

func (f *fakeIntentRepo) CreateIntent(_ context.Context, intent domain.PurchaseIntent) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.intents[intent.ID] = intent
	return nil
}

type raceIntentRepo struct {
	existing domain.PurchaseIntent
	looked   bool
}

func (r *raceIntentRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (r *raceIntentRepo) GetIntentByIdempotencyKey(_ context.Context, _, _ string) (*domain.PurchaseIntent, error) {
	if r.looked {
		return &r.existing, nil
	}
	r.looked = true
	return nil, nil
}

func (r *raceIntentRepo) CreateIntent(_ context.Context, _ domain.PurchaseIntent) error {
	return domain.ErrDuplicateIntent
}

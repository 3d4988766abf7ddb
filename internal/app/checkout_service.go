package app

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/SafalBhandari12/event/internal/clock"
	"github.com/SafalBhandari12/event/internal/domain"
	"github.com/SafalBhandari12/event/internal/ui"
)

const tracerName = "github.com/SafalBhandari12/event/internal/app"

type IntentRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetIntentByIdempotencyKey(ctx context.Context, eventSlug, key string) (*domain.PurchaseIntent, error)
	CreateIntent(ctx context.Context, intent domain.PurchaseIntent) error
}

// CheckoutService accepts ticket orders from the landing page. With no
// repository it only validates and confirms; nothing is stored.
type CheckoutService struct {
	repo   IntentRepository
	clock  clock.Clock
	logger *zap.Logger
	tracer trace.Tracer
}

func NewCheckoutService(repo IntentRepository, clk clock.Clock, logger *zap.Logger) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{
		repo:   repo,
		clock:  clk,
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

type PlaceOrderInput struct {
	EventSlug      string
	Tier           domain.TicketTier
	Name           string
	Email          string
	Quantity       int
	IdempotencyKey string
}

type PlaceOrderResult struct {
	Intent       domain.PurchaseIntent
	Confirmation domain.Confirmation
	Created      bool
}

func (s *CheckoutService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderResult, error) {
	ctx, span := s.tracer.Start(ctx, "checkout.place_order", trace.WithAttributes(
		attribute.String("event.slug", in.EventSlug),
		attribute.String("ticket.tier", in.Tier.ID),
		attribute.Int("ticket.quantity", in.Quantity),
	))
	defer span.End()

	res, err := s.placeOrder(ctx, in)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return PlaceOrderResult{}, err
	}
	span.SetAttributes(
		attribute.String("intent.id", res.Intent.ID),
		attribute.Bool("intent.created", res.Created),
	)
	return res, nil
}

func (s *CheckoutService) placeOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderResult, error) {
	if !in.Tier.Available {
		return PlaceOrderResult{}, domain.ErrTierUnavailable
	}
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if err := domain.ValidatePurchase(in.Tier, name, email, in.Quantity); err != nil {
		return PlaceOrderResult{}, err
	}

	intent := domain.PurchaseIntent{
		ID:             newUUID(),
		EventSlug:      in.EventSlug,
		TierID:         in.Tier.ID,
		Name:           name,
		Email:          email,
		Quantity:       in.Quantity,
		IdempotencyKey: in.IdempotencyKey,
		CreatedAt:      s.clock.Now(),
	}

	if s.repo == nil {
		return s.result(intent, in.Tier, true, false), nil
	}

	var result PlaceOrderResult
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		if intent.IdempotencyKey != "" {
			existing, err := s.repo.GetIntentByIdempotencyKey(txCtx, intent.EventSlug, intent.IdempotencyKey)
			if err != nil {
				return err
			}
			if existing != nil {
				return s.replay(existing, intent, in.Tier, &result)
			}
		}

		if err := s.repo.CreateIntent(txCtx, intent); err != nil {
			// A concurrent submit with the same key won the insert.
			if err == domain.ErrDuplicateIntent && intent.IdempotencyKey != "" {
				existing, err := s.repo.GetIntentByIdempotencyKey(txCtx, intent.EventSlug, intent.IdempotencyKey)
				if err != nil {
					return err
				}
				if existing != nil {
					return s.replay(existing, intent, in.Tier, &result)
				}
			}
			return err
		}

		result = s.result(intent, in.Tier, true, true)
		return nil
	})
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if result.Created {
		s.logger.Info("purchase intent recorded",
			zap.String("intent_id", result.Intent.ID),
			zap.String("event", result.Intent.EventSlug),
			zap.String("tier", result.Intent.TierID),
			zap.Int("quantity", result.Intent.Quantity),
		)
	}
	return result, nil
}

func (s *CheckoutService) replay(existing *domain.PurchaseIntent, want domain.PurchaseIntent, tier domain.TicketTier, out *PlaceOrderResult) error {
	if existing.TierID != want.TierID || existing.Email != want.Email || existing.Quantity != want.Quantity {
		return domain.ErrIdempotencyReused
	}
	*out = s.result(*existing, tier, false, true)
	return nil
}

func (s *CheckoutService) result(intent domain.PurchaseIntent, tier domain.TicketTier, created, recorded bool) PlaceOrderResult {
	return PlaceOrderResult{
		Intent:  intent,
		Created: created,
		Confirmation: domain.Confirmation{
			IntentID: intent.ID,
			TierName: tier.Name,
			Quantity: intent.Quantity,
			Message:  ui.ReservationMessage(tier.Name),
			Recorded: recorded,
		},
	}
}

// Submitter binds the service to one event for the checkout form.
func (s *CheckoutService) Submitter(eventSlug, idempotencyKey string) ui.OrderSubmitter {
	return eventSubmitter{svc: s, slug: eventSlug, key: idempotencyKey}
}

type eventSubmitter struct {
	svc  *CheckoutService
	slug string
	key  string
}

func (e eventSubmitter) SubmitOrder(ctx context.Context, tier domain.TicketTier, buyer ui.Buyer) (domain.Confirmation, error) {
	res, err := e.svc.PlaceOrder(ctx, PlaceOrderInput{
		EventSlug:      e.slug,
		Tier:           tier,
		Name:           buyer.Name,
		Email:          buyer.Email,
		Quantity:       buyer.Quantity,
		IdempotencyKey: e.key,
	})
	if err != nil {
		return domain.Confirmation{}, err
	}
	return res.Confirmation, nil
}

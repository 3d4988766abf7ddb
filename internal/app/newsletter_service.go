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

type SubscriptionRepository interface {
	GetSubscription(ctx context.Context, eventSlug, email string) (*domain.Subscription, error)
	CreateSubscription(ctx context.Context, sub domain.Subscription) error
}

type NewsletterService struct {
	repo   SubscriptionRepository
	clock  clock.Clock
	logger *zap.Logger
	tracer trace.Tracer
}

func NewNewsletterService(repo SubscriptionRepository, clk clock.Clock, logger *zap.Logger) *NewsletterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NewsletterService{
		repo:   repo,
		clock:  clk,
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

type SubscribeInput struct {
	EventSlug string
	Email     string
}

type SubscribeResult struct {
	Subscription domain.Subscription
	Created      bool
}

// Subscribe signs an address up for an event's newsletter. Signing up twice
// returns the first subscription.
func (s *NewsletterService) Subscribe(ctx context.Context, in SubscribeInput) (SubscribeResult, error) {
	ctx, span := s.tracer.Start(ctx, "newsletter.subscribe", trace.WithAttributes(
		attribute.String("event.slug", in.EventSlug),
	))
	defer span.End()

	res, err := s.subscribe(ctx, in)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return SubscribeResult{}, err
	}
	span.SetAttributes(attribute.Bool("subscription.created", res.Created))
	return res, nil
}

func (s *NewsletterService) subscribe(ctx context.Context, in SubscribeInput) (SubscribeResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if err := domain.ValidateSubscription(email); err != nil {
		return SubscribeResult{}, err
	}

	sub := domain.Subscription{
		ID:        newUUID(),
		EventSlug: in.EventSlug,
		Email:     email,
		CreatedAt: s.clock.Now(),
	}
	if s.repo == nil {
		return SubscribeResult{Subscription: sub, Created: true}, nil
	}

	existing, err := s.repo.GetSubscription(ctx, in.EventSlug, email)
	if err != nil {
		return SubscribeResult{}, err
	}
	if existing != nil {
		return SubscribeResult{Subscription: *existing}, nil
	}

	if err := s.repo.CreateSubscription(ctx, sub); err != nil {
		if err != domain.ErrAlreadySubscribed {
			return SubscribeResult{}, err
		}
		existing, err := s.repo.GetSubscription(ctx, in.EventSlug, email)
		if err != nil {
			return SubscribeResult{}, err
		}
		if existing == nil {
			return SubscribeResult{}, domain.ErrAlreadySubscribed
		}
		return SubscribeResult{Subscription: *existing}, nil
	}

	s.logger.Info("newsletter subscription recorded",
		zap.String("subscription_id", sub.ID),
		zap.String("event", sub.EventSlug),
	)
	return SubscribeResult{Subscription: sub, Created: true}, nil
}

// Subscriber binds the service to one event for the footer form.
func (s *NewsletterService) Subscriber(eventSlug string) ui.Subscriber {
	return eventSubscriber{svc: s, slug: eventSlug}
}

type eventSubscriber struct {
	svc  *NewsletterService
	slug string
}

func (e eventSubscriber) Subscribe(ctx context.Context, email string) (domain.Subscription, error) {
	res, err := e.svc.Subscribe(ctx, SubscribeInput{EventSlug: e.slug, Email: email})
	if err != nil {
		return domain.Subscription{}, err
	}
	return res.Subscription, nil
}

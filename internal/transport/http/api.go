package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/SafalBhandari12/event/internal/app"
	"github.com/SafalBhandari12/event/internal/domain"
	"github.com/SafalBhandari12/event/internal/ui"
)

// API serves the JSON interface to the same event content and actions as
// the pages.
type API struct {
	Events       EventFinder
	Orders       OrderPlacer
	Newsletter   NewsletterSubscriber
	Logger       *zap.Logger
	GalleryScope ui.NavigationScope
}

func (a API) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func (a API) event(w http.ResponseWriter, r *http.Request) (domain.Event, bool) {
	ev, err := a.Events.GetEvent(r.Context(), r.PathValue("slug"))
	if err != nil {
		a.writeServiceError(w, r, err)
		return domain.Event{}, false
	}
	return ev, true
}

func (a API) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		writeFieldErrors(w, verr.Fields)
		return
	}
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		writeError(w, http.StatusNotFound, codeEventNotFound, err.Error())
	case errors.Is(err, domain.ErrTierNotFound):
		writeError(w, http.StatusNotFound, codeTierNotFound, err.Error())
	case errors.Is(err, domain.ErrTierUnavailable):
		writeError(w, http.StatusConflict, codeTierUnavailable, err.Error())
	case errors.Is(err, domain.ErrUnknownCategory):
		writeError(w, http.StatusBadRequest, codeUnknownCategory, err.Error())
	case errors.Is(err, domain.ErrUnknownDay):
		writeError(w, http.StatusBadRequest, codeUnknownDay, err.Error())
	case errors.Is(err, domain.ErrIdempotencyReused):
		writeError(w, http.StatusConflict, codeIdempotencyConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidID):
		writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
	default:
		a.logger().Error("api request failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

func (a API) ListEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := a.Events.ListEvents(r.Context())
		if err != nil {
			a.writeServiceError(w, r, err)
			return
		}
		resp := make([]eventSummary, 0, len(events))
		for _, ev := range events {
			resp = append(resp, newEventSummary(ev))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (a API) GetEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ev, ok := a.event(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, newEventResponse(ev))
	}
}

// Gallery reports the gallery state for ?category=&photo=&step=next|prev.
// Unlike the page, an unknown category is an error rather than "All".
func (a API) Gallery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ev, ok := a.event(w, r)
		if !ok {
			return
		}
		q := r.URL.Query()
		g := ui.NewGallery(ev.Gallery, ev.GalleryCategories, ui.WithNavigationScope(a.GalleryScope))
		if c := q.Get("category"); c != "" {
			if err := g.SetCategory(c); err != nil {
				a.writeServiceError(w, r, err)
				return
			}
		}
		if raw := q.Get("photo"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "photo must be an integer")
				return
			}
			g.OpenMaster(n)
		}
		switch q.Get("step") {
		case "":
		case "next":
			g.Next()
		case "prev":
			g.Prev()
		default:
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "step must be next or prev")
			return
		}
		writeJSON(w, http.StatusOK, newGalleryResponse(g))
	}
}

func (a API) Schedule() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ev, ok := a.event(w, r)
		if !ok {
			return
		}
		s := ui.NewSchedule(ev.Schedule, ev.ScheduleDays)
		if raw := r.URL.Query().Get("day"); raw != "" {
			day, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "day must be an integer")
				return
			}
			if err := s.SelectDay(day); err != nil {
				a.writeServiceError(w, r, err)
				return
			}
		}
		writeJSON(w, http.StatusOK, newScheduleResponse(s))
	}
}

// PlaceOrder records a purchase intent. A repeated Idempotency-Key replays
// the first result with 200 instead of 201.
func (a API) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ev, ok := a.event(w, r)
		if !ok {
			return
		}

		var req placeOrderRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		tier, found := ev.Tier(req.Tier)
		if !found {
			a.writeServiceError(w, r, domain.ErrTierNotFound)
			return
		}

		res, err := a.Orders.PlaceOrder(r.Context(), app.PlaceOrderInput{
			EventSlug:      ev.Slug,
			Tier:           tier,
			Name:           req.Name,
			Email:          req.Email,
			Quantity:       req.Quantity,
			IdempotencyKey: r.Header.Get(idempotencyHeader),
		})
		if err != nil {
			a.writeServiceError(w, r, err)
			return
		}

		status := http.StatusOK
		if res.Created {
			status = http.StatusCreated
		}
		writeJSON(w, status, orderResponse{
			ID:        res.Intent.ID,
			Event:     res.Intent.EventSlug,
			Tier:      res.Intent.TierID,
			Quantity:  res.Intent.Quantity,
			Message:   res.Confirmation.Message,
			Recorded:  res.Confirmation.Recorded,
			CreatedAt: res.Intent.CreatedAt,
		})
	}
}

func (a API) Subscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ev, ok := a.event(w, r)
		if !ok {
			return
		}

		var req subscribeRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		res, err := a.Newsletter.Subscribe(r.Context(), app.SubscribeInput{EventSlug: ev.Slug, Email: req.Email})
		if err != nil {
			a.writeServiceError(w, r, err)
			return
		}

		status := http.StatusOK
		if res.Created {
			status = http.StatusCreated
		}
		writeJSON(w, status, subscriptionResponse{
			ID:        res.Subscription.ID,
			Event:     res.Subscription.EventSlug,
			Email:     res.Subscription.Email,
			Message:   ui.SubscribedMessage(res.Subscription.Email, ev.Name),
			CreatedAt: res.Subscription.CreatedAt,
		})
	}
}

package http

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/SafalBhandari12/event/internal/app"
	"github.com/SafalBhandari12/event/internal/domain"
	"github.com/SafalBhandari12/event/internal/ui"
	"github.com/SafalBhandari12/event/internal/view"
)

const idempotencyHeader = "Idempotency-Key"

// EventFinder is the minimal interface needed to look up event content.
type EventFinder interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, slug string) (domain.Event, error)
	DefaultEvent(ctx context.Context) (domain.Event, error)
}

// OrderPlacer accepts ticket orders from both the form and the JSON API.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, in app.PlaceOrderInput) (app.PlaceOrderResult, error)
	Submitter(eventSlug, idempotencyKey string) ui.OrderSubmitter
}

// NewsletterSubscriber accepts newsletter sign-ups.
type NewsletterSubscriber interface {
	Subscribe(ctx context.Context, in app.SubscribeInput) (app.SubscribeResult, error)
	Subscriber(eventSlug string) ui.Subscriber
}

// Pages serves the server-rendered landing pages and their htmx fragments.
type Pages struct {
	Events     EventFinder
	Orders     OrderPlacer
	Newsletter NewsletterSubscriber
	Logger     *zap.Logger
	// GalleryScope selects how lightbox previous/next traverse images.
	GalleryScope ui.NavigationScope
}

func (p Pages) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

func (p Pages) session(ev domain.Event, r *http.Request) *view.Session {
	return view.Restore(ev, view.ParseQuery(r.URL.Query()), ui.WithNavigationScope(p.GalleryScope))
}

// event resolves the {slug} path value, writing an error page when it
// cannot.
func (p Pages) event(w http.ResponseWriter, r *http.Request) (domain.Event, bool) {
	ev, err := p.Events.GetEvent(r.Context(), r.PathValue("slug"))
	if err != nil {
		p.pageError(w, r, err)
		return domain.Event{}, false
	}
	return ev, true
}

func (p Pages) pageError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := http.StatusInternalServerError, "Something went wrong."
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		status, msg = http.StatusNotFound, "Event not found."
	case errors.Is(err, domain.ErrTierNotFound):
		status, msg = http.StatusNotFound, "Ticket tier not found."
	case errors.Is(err, domain.ErrIdempotencyReused):
		status, msg = http.StatusConflict, "This order was already submitted with different details."
	default:
		p.logger().Error("page request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	renderHTML(w, r, p.logger(), status, view.ErrorPage(status, msg))
}

// Home renders the default event at the site root.
func (p Pages) Home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ev, err := p.Events.DefaultEvent(r.Context())
		if err != nil {
			p.pageError(w, r, err)
			return
		}
		renderHTML(w, r, p.logger(), http.StatusOK, view.Page(view.NewPage(p.session(ev, r))))
	}
}

func (p Pages) Event() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ev, ok := p.event(w, r)
		if !ok {
			return
		}
		renderHTML(w, r, p.logger(), http.StatusOK, view.Page(view.NewPage(p.session(ev, r))))
	}
}

// Gallery renders the gallery section for the requested category and
// lightbox state.
func (p Pages) Gallery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ev, ok := p.event(w, r)
		if !ok {
			return
		}
		renderHTML(w, r, p.logger(), http.StatusOK, view.GalleryFragment(view.NewGalleryModel(p.session(ev, r))))
	}
}

func (p Pages) Schedule() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ev, ok := p.event(w, r)
		if !ok {
			return
		}
		renderHTML(w, r, p.logger(), http.StatusOK, view.ScheduleFragment(view.NewScheduleModel(p.session(ev, r))))
	}
}

// CheckoutForm opens the checkout modal for a tier. htmx requests get only
// the modal; anything else gets the page with the modal open.
func (p Pages) CheckoutForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ev, ok := p.event(w, r)
		if !ok {
			return
		}
		s := p.session(ev, r)
		if err := s.Checkout.OpenCheckout(r.PathValue("tier")); err != nil {
			p.checkoutUnavailable(w, r, s, err)
			return
		}
		if IsHTMXRequest(r) {
			renderHTML(w, r, p.logger(), http.StatusOK, view.CheckoutFragment(view.NewCheckoutModel(s)))
			return
		}
		renderHTML(w, r, p.logger(), http.StatusOK, view.Page(view.NewPage(s)))
	}
}

// CheckoutSubmit validates the checkout form and records the order.
func (p Pages) CheckoutSubmit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ev, ok := p.event(w, r)
		if !ok {
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		s := p.session(ev, r)
		if err := s.Checkout.OpenCheckout(r.PathValue("tier")); err != nil {
			p.checkoutUnavailable(w, r, s, err)
			return
		}

		s.Checkout.SetName(r.PostForm.Get("name"))
		s.Checkout.SetEmail(r.PostForm.Get("email"))
		// A missing or malformed quantity fails validation as zero.
		qty, _ := strconv.Atoi(r.PostForm.Get("quantity"))
		s.Checkout.SetQuantity(qty)

		_, err := s.Checkout.Submit(r.Context(), p.Orders.Submitter(ev.Slug, r.Header.Get(idempotencyHeader)))
		if err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				if IsHTMXRequest(r) {
					renderHTML(w, r, p.logger(), http.StatusUnprocessableEntity, view.CheckoutFragment(view.NewCheckoutModel(s)))
					return
				}
				renderHTML(w, r, p.logger(), http.StatusUnprocessableEntity, view.Page(view.NewPage(s)))
				return
			}
			if errors.Is(err, domain.ErrTierUnavailable) {
				p.checkoutUnavailable(w, r, s, err)
				return
			}
			p.pageError(w, r, err)
			return
		}

		if IsHTMXRequest(r) {
			renderHTML(w, r, p.logger(), http.StatusOK, view.NoticeFragment(s.Checkout.Notice()))
			return
		}
		http.Redirect(w, r, noticeURL(ev.Slug, s.Checkout.Notice(), "tickets"), http.StatusSeeOther)
	}
}

// checkoutUnavailable keeps the modal closed and tells the buyer why.
func (p Pages) checkoutUnavailable(w http.ResponseWriter, r *http.Request, s *view.Session, err error) {
	if !errors.Is(err, domain.ErrTierUnavailable) {
		p.pageError(w, r, err)
		return
	}
	const msg = "This ticket tier is not available."
	if IsHTMXRequest(r) {
		renderHTML(w, r, p.logger(), http.StatusConflict, view.NoticeFragment(msg))
		return
	}
	s.Query.Notice = msg
	renderHTML(w, r, p.logger(), http.StatusConflict, view.Page(view.NewPage(s)))
}

// NewsletterSubmit signs the footer form's address up for the event.
func (p Pages) NewsletterSubmit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ev, ok := p.event(w, r)
		if !ok {
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		s := p.session(ev, r)
		s.Newsletter.SetEmail(r.PostForm.Get("email"))

		err := s.Newsletter.Submit(r.Context(), p.Newsletter.Subscriber(ev.Slug))
		if err != nil {
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				p.pageError(w, r, err)
				return
			}
			if IsHTMXRequest(r) {
				renderHTML(w, r, p.logger(), http.StatusUnprocessableEntity, view.NewsletterFragment(view.NewNewsletterModel(s)))
				return
			}
			renderHTML(w, r, p.logger(), http.StatusUnprocessableEntity, view.Page(view.NewPage(s)))
			return
		}

		if IsHTMXRequest(r) {
			renderHTML(w, r, p.logger(), http.StatusOK, view.NewsletterFragment(view.NewNewsletterModel(s)))
			return
		}
		http.Redirect(w, r, noticeURL(ev.Slug, s.Newsletter.Notice(), "footer"), http.StatusSeeOther)
	}
}

func noticeURL(slug, notice, anchor string) string {
	return view.EventPath(slug) + "?" + url.Values{"notice": {notice}}.Encode() + "#" + anchor
}

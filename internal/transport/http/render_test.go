package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func TestRenderHTML_WritesStatusAndBody(t *testing.T) {
	t.Parallel()

	logger, _ := observedLogger()
	c := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>hi</p>")
		return err
	})

	rec := httptest.NewRecorder()
	renderHTML(rec, httptest.NewRequest(http.MethodGet, "/", nil), logger, http.StatusUnprocessableEntity, c)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("expected html content type, got %q", ct)
	}
	if rec.Body.String() != "<p>hi</p>" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestRenderHTML_FailureDropsPartialOutput(t *testing.T) {
	t.Parallel()

	logger, logs := observedLogger()
	c := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, "<p>half")
		return errors.New("boom")
	})

	rec := httptest.NewRecorder()
	renderHTML(rec, httptest.NewRequest(http.MethodGet, "/events/x", nil), logger, http.StatusOK, c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "half") {
		t.Fatalf("expected partial output to be discarded, got %q", rec.Body.String())
	}
	if logs.FilterMessage("render failed").Len() != 1 {
		t.Fatalf("expected render failure to be logged")
	}
}

func TestIsHTMXRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTMXRequest(req) {
		t.Fatalf("expected plain request")
	}
	req.Header.Set("HX-Request", "true")
	if !IsHTMXRequest(req) {
		t.Fatalf("expected htmx request")
	}
}

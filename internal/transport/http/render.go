package http

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"go.uber.org/zap"
)

// IsHTMXRequest reports whether the request was issued by htmx.
func IsHTMXRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("HX-Request"), "true")
}

// renderHTML serves c with status. templ buffers the output, so a failed
// render still becomes a clean 500.
func renderHTML(w http.ResponseWriter, r *http.Request, logger *zap.Logger, status int, c templ.Component) {
	templ.Handler(c,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			logger.Error("render failed", zap.String("path", r.URL.Path), zap.Error(err))
			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "internal error", http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

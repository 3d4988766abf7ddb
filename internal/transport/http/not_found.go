package http

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/SafalBhandari12/event/internal/view"
)

// NotFoundHandler answers unknown routes: JSON under /api, an HTML page
// everywhere else.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}
		renderHTML(w, r, zap.NewNop(), http.StatusNotFound, view.ErrorPage(http.StatusNotFound, "Page not found."))
	})
}

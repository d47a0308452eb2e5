package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/taskstore/internal/api/shared"
	"github.com/phrazzld/taskstore/internal/platform/logger"
	"github.com/phrazzld/taskstore/internal/redact"
)

// Recoverer turns a panic in a downstream handler into a 500 response
// carrying the request's trace ID. The panic value and stack are logged in
// redacted form.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromContext(r.Context()).Error("panic recovered",
				"trace_id", shared.GetTraceID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"panic", redact.String(fmt.Sprint(rec)),
				"stack", redact.String(string(debug.Stack())))

			shared.RespondWithError(w, r, http.StatusInternalServerError, "An unexpected error occurred")
		}()

		next.ServeHTTP(w, r)
	})
}

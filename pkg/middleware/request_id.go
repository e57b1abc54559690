package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/robotics-advisor/planner/pkg/requestid"
)

// RequestID takes the request ID from the x-request-id header, or from chi's
// built-in middleware when present, and finally generates one. The ID is
// injected into the request context for consistent access across all layers.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("x-request-id")

		if requestID == "" {
			requestID = middleware.GetReqID(r.Context())
		}

		if requestID == "" {
			requestID = requestid.Generate()
		}

		ctx := requestid.ToContext(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package http

import (
	"net/http"

	"github.com/MKhiriev/channel-console/internal/utils"
	"github.com/google/uuid"
)

// withRequestID reuses the caller's X-Request-ID or generates one, echoes it
// in the response and attaches a request-scoped logger to the context.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(utils.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		l := h.logger.WithRequestID(requestID)
		ctx := utils.WithRequestID(r.Context(), requestID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(utils.RequestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}

package http

import (
	"net/http"

	"github.com/quickdo/market-api/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a request scoped logger carrying trace_id. An incoming
// X-Trace-ID is reused, otherwise a new UUIDv7 is generated.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		w.Header().Set(traceIDHeader, traceID)
		ctx := h.logger.WithTraceID(traceID).WithContext(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

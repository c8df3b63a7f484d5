package telemetry

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/apexview/f1telemetry-service-go/log"
)

// wrap attaches a request id and access logging to a handler. The id is
// echoed in the X-Request-Id header and put on the context logger so
// downstream log lines correlate.
func (s *Server) wrap(h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)
		ctx := log.AddToContext(r.Context(), s.l)
		start := time.Now()
		h(w, r.WithContext(ctx))
		s.l.Debug("request handled",
			log.String("requestId", reqID),
			log.String("method", r.Method),
			log.String("path", r.URL.Path),
			log.Duration("elapsed", time.Since(start)))
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("failed to encode response", log.ErrorField(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

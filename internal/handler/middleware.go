package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Logging tags every request with a generated id and logs method, path,
// status and duration.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r)

		log.Printf("%s %s %d %s request_id=%s", r.Method, r.URL.Path, sw.status, time.Since(start), requestID)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

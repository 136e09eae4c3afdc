package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// statusRecorder remembers the status code written by a handler, and whether headers were sent.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.wroteHeader {
		return
	}
	r.status = status
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(data []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.ResponseWriter.Write(data)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", recorder.status),
			zap.Duration("duration", time.Since(start)))
	})
}

func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("handler panicked",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Bool("headers_sent", recorder.wroteHeader),
					zap.Any("panic", rec))
				// too late to change the status once headers are out
				if !recorder.wroteHeader {
					recorder.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()
		next.ServeHTTP(recorder, r)
	})
}

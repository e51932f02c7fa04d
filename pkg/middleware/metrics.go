package middleware

import (
	"net/http"
	"time"
)

// RequestObserver recebe o resultado de cada requisição
type RequestObserver interface {
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
}

func MetricsMiddleware(observer RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			observer.ObserveHTTPRequest(r.Method, r.URL.Path, lrw.statusCode, time.Since(start))
		})
	}
}

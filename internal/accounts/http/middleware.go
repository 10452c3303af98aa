package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/metrics"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
)

// RequireAuthenticated rejects requests without a valid bearer token and
// stores the verified claims in the request context.
func RequireAuthenticated(g *service.Guard) httpx.Middleware {
	return guardMiddleware(g.RequireAuthenticated)
}

// RequireAdmin is RequireAuthenticated restricted to the admin role.
func RequireAdmin(g *service.Guard) httpx.Middleware {
	return guardMiddleware(g.RequireAdmin)
}

func guardMiddleware(check func(bearer string) (jwtx.Claims, error)) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bearer, _ := httpx.BearerToken(r)

			claims, err := check(bearer)
			if err != nil {
				writeError(w, err, nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(httpx.ContextWithClaims(r.Context(), claims)))
		})
	}
}

// observe reports route latency to rec. It must wrap the mux directly so the
// matched pattern is visible after the mux returns.
func observe(rec metrics.Recorder) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			rec.ObserveRequest(route, sw.status, time.Since(start))
		})
	}
}

type statusWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
}

func (sw *statusWriter) WriteHeader(code int) {
	if !sw.wroteHeader {
		sw.status = code
		sw.wroteHeader = true
	}
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	sw.wroteHeader = true
	return sw.ResponseWriter.Write(b)
}

func (sw *statusWriter) Unwrap() http.ResponseWriter { return sw.ResponseWriter }

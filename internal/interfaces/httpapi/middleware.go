package httpapi

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/fixture-predictor/internal/platform/logging"
	"github.com/riskibarqy/fixture-predictor/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Middleware wraps a handler. chain applies them so the first listed is outermost.
type Middleware func(http.Handler) http.Handler

func chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

const adminTokenHeader = "X-Admin-Token"

// RequireWriteToken rejects requests whose X-Admin-Token does not match.
// An empty token disables the check.
func RequireWriteToken(token string) Middleware {
	want := []byte(strings.TrimSpace(token))
	return func(next http.Handler) http.Handler {
		if len(want) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(strings.TrimSpace(r.Header.Get(adminTokenHeader)))
			if subtle.ConstantTimeCompare(got, want) != 1 {
				writeError(r.Context(), w, fmt.Errorf("%w: invalid admin token", usecase.ErrUnauthorized))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogging writes one access record per request after it completes.
// Trace and span ids are attached by the logger from the request context.
func RequestLogging(logger *logging.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)

			level := logger.InfoContext
			if sw.code() >= http.StatusInternalServerError {
				level = logger.WarnContext
			}
			level(r.Context(), "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.code(),
				"bytes", sw.written,
				"remote_addr", r.RemoteAddr,
				"duration_ms", time.Since(started).Milliseconds(),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status  int
	written int
}

func (w *statusWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

func (w *statusWriter) code() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// RequestTracing opens a server span per request except for probes.
func RequestTracing() Middleware {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, "fixture-predictor-http",
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
			otelhttp.WithFilter(func(r *http.Request) bool {
				return shouldTraceRequest(r.URL.Path)
			}),
		)
	}
}

func shouldTraceRequest(path string) bool {
	switch strings.ToLower(strings.TrimSpace(path)) {
	case "/healthz", "/health", "/livez", "/readyz":
		return false
	}
	return true
}

// CORS answers preflight requests and decorates responses for allowed
// origins. A "*" entry allows any origin.
func CORS(allowedOrigins []string) Middleware {
	allowAny := false
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		switch o = strings.TrimSpace(o); o {
		case "":
		case "*":
			allowAny = true
		default:
			allowed[o] = true
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin != "" && (allowAny || allowed[origin]) {
				h := w.Header()
				if allowAny {
					h.Set("Access-Control-Allow-Origin", "*")
				} else {
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
				h.Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Content-Type,Accept,"+adminTokenHeader)
				h.Set("Access-Control-Max-Age", "600")
			}

			if origin != "" && r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RecoverPanic converts a handler panic into a 500 envelope.
func RecoverPanic(logger *logging.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.ErrorContext(r.Context(), "panic recovered", "panic", rec, "path", r.URL.Path)
					writeInternalError(r.Context(), w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

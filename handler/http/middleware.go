package http

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tapglue/hitcounter/platform/metrics"
)

const headerRequestID = "X-Request-Id"

var fallbackSeq uint64

// IDFunc hands out request identifiers.
type IDFunc func() (string, error)

// CtxPrepare adds a baseline of information to the Context currently:
// * api version
// * route name
func CtxPrepare(version string) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
			route := "unknown"

			if current := mux.CurrentRoute(r); current != nil {
				route = current.GetName()
			}

			ctx = routeInContext(ctx, route)
			ctx = versionInContext(ctx, version)

			next(ctx, w, r)
		}
	}
}

// DebugHeaders adds extra information encoded in a custom header namespace for
// potential tracing and debugging post-mortem.
func DebugHeaders(rev, host string) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Hitcounter-Host", host)
			w.Header().Set("X-Hitcounter-Revision", rev)

			next(ctx, w, r)
		}
	}
}

// Gzip ensures proper encoding of the response if the client accepts it.
func Gzip() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				w.Header().Set("Content-Encoding", "gzip")
				w.Header().Add("Vary", "Accept-Encoding")

				gz := gzip.NewWriter(w)
				defer gz.Close()

				w = gzipResponseWriter{w, gz}
			}

			next(ctx, w, r)
		}
	}
}

// Instrument observes key aspects of a request/response and exposes Prometheus
// metrics.
func Instrument(
	component string,
) Middleware {
	var (
		namespace         = "handler"
		subsystemRequest  = "request"
		subsystemResponse = "response"
		fieldKeys         = []string{
			metrics.FieldComponent,
			metrics.FieldVersion,
			metrics.FieldRoute,
			metrics.FieldStatus,
		}
		requestCount = metrics.Counter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemRequest,
			Name:      "count",
			Help:      "Number of requests received",
		}, fieldKeys...)
		requestLatency = metrics.Histogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystemRequest,
			Name:      "latency_seconds",
			Help:      "Total duration of requests in seconds",
		}, fieldKeys...)
		responseBytes = metrics.Counter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemResponse,
			Name:      "bytes",
			Help:      "Bytes returned as response bodies",
		}, fieldKeys...)
	)

	return func(next Handler) Handler {
		return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
			var (
				begin     = time.Now()
				resr      = newResponseRecorder(w)
				routeName = routeFromContext(ctx)
				version   = versionFromContext(ctx)
			)

			next(ctx, resr, r)

			status := strconv.Itoa(resr.statusCode)

			requestCount.With(
				metrics.FieldComponent, component,
				metrics.FieldRoute, routeName,
				metrics.FieldStatus, status,
				metrics.FieldVersion, version,
			).Add(1)
			responseBytes.With(
				metrics.FieldComponent, component,
				metrics.FieldRoute, routeName,
				metrics.FieldStatus, status,
				metrics.FieldVersion, version,
			).Add(float64(resr.contentLength))
			requestLatency.With(prometheus.Labels{
				metrics.FieldComponent: component,
				metrics.FieldRoute:     routeName,
				metrics.FieldStatus:    status,
				metrics.FieldVersion:   version,
			}).Observe(time.Since(begin).Seconds())
		}
	}
}

// Log logs information per single request-response.
func Log(logger log.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
			var (
				begin   = time.Now()
				reqr    = newRequestRecorder(r)
				resr    = newResponseRecorder(w)
				route   = routeFromContext(ctx)
				version = versionFromContext(ctx)
			)

			next(ctx, resr, r)

			_ = logger.Log(
				"duration_ns", time.Since(begin).Nanoseconds(),
				"request", reqr,
				"request_id", requestIDFromContext(ctx),
				"response", resr,
				"route", route,
				"version", version,
			)
		}
	}
}

// RequestID tags every request with an identifier, reusing the one sent by
// the client if present. A failing generator never fails the request, the
// identifier is then derived from the clock.
func RequestID(fn IDFunc, logger log.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)

			if id == "" {
				var err error

				id, err = fn()
				if err != nil {
					id = fallbackID()

					_ = logger.Log(
						"err", err,
						"method", "RequestID",
						"request_id", id,
					)
				}
			}

			w.Header().Set(headerRequestID, id)

			next(requestIDInContext(ctx, id), w, r)
		}
	}
}

// SecureHeaders adds a list of commonly recgonised best-pratice security
// headers.
// Source: https://www.owasp.org/index.php/List_of_useful_HTTP_headers
func SecureHeaders() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")

			next(ctx, w, r)
		}
	}
}

func fallbackID() string {
	return fmt.Sprintf(
		"%s-%s",
		strconv.FormatInt(time.Now().UnixNano(), 36),
		strconv.FormatUint(atomic.AddUint64(&fallbackSeq, 1), 36),
	)
}

type gzipResponseWriter struct {
	http.ResponseWriter
	io.Writer
}

func (w gzipResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

type requestRecorder struct {
	Header     map[string][]string `json:"header"`
	Host       string              `json:"host"`
	Method     string              `json:"method"`
	Proto      string              `json:"proto"`
	RemoteAddr string              `json:"remoteAddr"`
	RequestURI string              `json:"requestURI"`
	URL        string              `json:"url"`
}

func newRequestRecorder(r *http.Request) *requestRecorder {
	return &requestRecorder{
		Header:     r.Header,
		Host:       r.Host,
		Method:     strings.ToLower(r.Method),
		Proto:      r.Proto,
		RemoteAddr: r.RemoteAddr,
		RequestURI: r.RequestURI,
		URL:        r.URL.String(),
	}
}

type responseRecorder struct {
	http.ResponseWriter `json:"-"`

	contentLength int
	statusCode    int
}

func newResponseRecorder(w http.ResponseWriter) *responseRecorder {
	return &responseRecorder{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rc *responseRecorder) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ContentLength int                 `json:"contentLength"`
		Headers       map[string][]string `json:"header"`
		StatusCode    int                 `json:"statusCode"`
	}{
		ContentLength: rc.contentLength,
		Headers:       rc.ResponseWriter.Header(),
		StatusCode:    rc.statusCode,
	})
}

func (rc *responseRecorder) Write(b []byte) (int, error) {
	n, err := rc.ResponseWriter.Write(b)

	rc.contentLength += n

	return n, err
}

func (rc *responseRecorder) WriteHeader(code int) {
	rc.statusCode = code
	rc.ResponseWriter.WriteHeader(code)
}

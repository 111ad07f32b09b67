package http

import (
	"context"
	"encoding/json"
	"net/http"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

// Handler is the service specific http.HandlerFunc expecting a context.Context.
type Handler func(context.Context, http.ResponseWriter, *http.Request)

// Middleware can be used to chain Handlers with different responsibilities.
type Middleware func(Handler) Handler

// HealthFunc reports if a backing service is reachable.
type HealthFunc func() error

// Chain takes a varidatic number of Middlewares and returns a combined
// Middleware.
func Chain(ms ...Middleware) Middleware {
	return func(handler Handler) Handler {
		for i := len(ms) - 1; i >= 0; i-- {
			handler = ms[i](handler)
		}

		return handler
	}
}

// Wrap takes a Middleware and Handler and returns an http.HandlerFunc.
func Wrap(
	middleware Middleware,
	handler Handler,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		middleware(handler)(r.Context(), w, r)
	}
}

// Health checks for liveliness of backing services and responds with status.
func Health(checks map[string]HealthFunc) Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		res := struct {
			Healthy  bool            `json:"healthy"`
			Services map[string]bool `json:"services"`
		}{
			Healthy:  true,
			Services: map[string]bool{},
		}

		for name, check := range checks {
			res.Services[name] = true

			if err := check(); err != nil {
				res.Healthy = false
				res.Services[name] = false
			}
		}

		if !res.Healthy {
			respondJSON(w, http.StatusInternalServerError, &res)
			return
		}

		respondJSON(w, http.StatusOK, &res)
	}
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func respondError(w http.ResponseWriter, code int, err error) {
	statusCode := http.StatusInternalServerError

	if unwrapError(err) == ErrNotFound {
		statusCode = http.StatusNotFound
	}

	respondJSON(w, statusCode, struct {
		Errors []apiError `json:"errors"`
	}{
		Errors: []apiError{
			{Code: code, Message: err.Error()},
		},
	})
}

func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondText(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(statusCode)
	w.Write([]byte(body))
}

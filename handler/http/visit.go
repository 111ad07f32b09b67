package http

import (
	"context"
	"net/http"

	"github.com/tapglue/hitcounter/core"
)

// Visit records a page view and greets the visitor with the updated count.
func Visit(fn core.VisitFunc, c core.Counter) Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		v, err := fn(c)
		if err != nil {
			respondError(w, errorCode(err), err)
			return
		}

		respondText(w, http.StatusOK, v.Greeting())
	}
}

// Status responds with a fixed banner, it never touches the counter.
func Status(text string) Handler {
	body := text + "\n"

	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		respondText(w, http.StatusOK, body)
	}
}

// NotFound is used for every path without a route.
func NotFound() Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		respondError(w, codeRouteNotFound, wrapError(ErrNotFound, r.URL.Path))
	}
}

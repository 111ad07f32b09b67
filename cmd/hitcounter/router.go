package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tapglue/hitcounter/core"
	handler "github.com/tapglue/hitcounter/handler/http"
)

// Route names.
const (
	routeHealth = "health"
	routeStatus = "status"
	routeVisit  = "visit"
)

type routerConfig struct {
	checks     map[string]handler.HealthFunc
	counter    core.Counter
	middleware handler.Middleware
	statusText string
	visit      core.VisitFunc
}

func newRouter(c routerConfig) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)

	router.Methods("GET").Path("/health").Name(routeHealth).HandlerFunc(
		handler.Wrap(
			c.middleware,
			handler.Health(c.checks),
		),
	)

	router.Methods("GET").Path("/status").Name(routeStatus).HandlerFunc(
		handler.Wrap(
			c.middleware,
			handler.Status(c.statusText),
		),
	)

	// Any method on the root path counts as a visit.
	router.Path("/").Name(routeVisit).HandlerFunc(
		handler.Wrap(
			c.middleware,
			handler.Visit(c.visit, c.counter),
		),
	)

	router.NotFoundHandler = http.HandlerFunc(
		handler.Wrap(
			c.middleware,
			handler.NotFound(),
		),
	)

	return router
}

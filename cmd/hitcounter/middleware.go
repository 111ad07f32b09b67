package main

import (
	"github.com/go-kit/kit/log"

	handler "github.com/tapglue/hitcounter/handler/http"
	"github.com/tapglue/hitcounter/platform/flake"
)

// defaultMiddleware is the chain every route is served through.
func defaultMiddleware(
	logger log.Logger,
	hostname string,
	ids handler.IDFunc,
) handler.Middleware {
	return handler.Chain(
		handler.CtxPrepare(versionCurrent),
		handler.RequestID(ids, logger),
		handler.Log(logger),
		handler.Instrument(component),
		handler.SecureHeaders(),
		handler.DebugHeaders(revision, hostname),
		handler.Gzip(),
	)
}

func requestIDs() (string, error) {
	return flake.NextIDString(namespaceRequest)
}

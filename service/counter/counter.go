package counter

import (
	"github.com/tapglue/hitcounter/platform/service"
)

// Service for counter interactions.
type Service interface {
	service.Lifecycle

	// Incr atomically adds one to the counter stored under key and returns
	// the new value. Counters which don't exist yet start at zero.
	Incr(namespace, key string) (uint64, error)
}

// ServiceMiddleware is a chainable behaviour modifier for Service.
type ServiceMiddleware func(Service) Service

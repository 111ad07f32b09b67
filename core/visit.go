package core

import (
	"fmt"

	serr "github.com/tapglue/hitcounter/error"
	"github.com/tapglue/hitcounter/platform/host"
	"github.com/tapglue/hitcounter/service/counter"
)

const fmtGreeting = "Hello! This page has been viewed %d times.\nHostname: %s\n"

// Visit is the outcome of a single page view.
type Visit struct {
	Count uint64
	Host  string
}

// Greeting renders the text returned to the visitor.
func (v *Visit) Greeting() string {
	return fmt.Sprintf(fmtGreeting, v.Count, v.Host)
}

// VisitFunc records a page view against the given counter.
type VisitFunc func(c Counter) (*Visit, error)

// VisitRecord increments the counter exactly once and reports the new value
// together with the name of the serving host. Store failures are reported as
// ErrDependencyUnavailable and never retried.
func VisitRecord(counters counter.Service, hosts host.Resolver) VisitFunc {
	return func(c Counter) (*Visit, error) {
		// Resolved first, a visit that can't be answered is not counted.
		name, err := hosts.Hostname()
		if err != nil {
			return nil, wrapError(ErrHostUnresolved, "%s", err)
		}

		count, err := counters.Incr(c.Namespace, c.Key)
		if err != nil {
			return nil, serr.Wrap(serr.ErrDependencyUnavailable, "incr %s: %s", c, err)
		}

		return &Visit{
			Count: count,
			Host:  name,
		}, nil
	}
}

package host

import "os"

// Resolver names the machine or container instance serving a request.
type Resolver interface {
	Hostname() (string, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func() (string, error)

// Hostname calls fn.
func (fn ResolverFunc) Hostname() (string, error) {
	return fn()
}

// OSResolver asks the kernel for the host name on every call.
func OSResolver() Resolver {
	return ResolverFunc(os.Hostname)
}

// StaticResolver always returns name.
func StaticResolver(name string) Resolver {
	return ResolverFunc(func() (string, error) {
		return name, nil
	})
}

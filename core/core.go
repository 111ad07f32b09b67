package core

import "strings"

// Counter identifies the stored value incremented on every visit.
type Counter struct {
	Namespace string
	Key       string
}

func (c Counter) String() string {
	if c.Namespace == "" {
		return c.Key
	}

	return strings.Join([]string{c.Namespace, c.Key}, ".")
}

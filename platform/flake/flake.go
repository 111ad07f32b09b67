package flake

import (
	"errors"
	"hash/fnv"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/sony/sonyflake"
)

// ErrUnavailable is returned if no generator could be constructed for the
// current machine.
var ErrUnavailable = errors.New("flake generator unavailable")

var (
	flakes = map[string]*sonyflake.Sonyflake{}
	mu     sync.Mutex

	startTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
)

// MachineID derives the 16 bit machine identifier from the host name, so
// generators don't depend on the host owning a private IPv4 address.
func MachineID(hostname string) uint16 {
	h := fnv.New32a()
	h.Write([]byte(hostname))

	sum := h.Sum32()

	return uint16(sum>>16) ^ uint16(sum)
}

// NextID returns the next safe to use ID for the given namespace.
func NextID(namespace string) (uint64, error) {
	mu.Lock()
	f, ok := flakes[namespace]
	if !ok {
		f = sonyflake.NewSonyflake(settings())
		if f == nil {
			mu.Unlock()
			return 0, ErrUnavailable
		}

		flakes[namespace] = f
	}
	mu.Unlock()

	return f.NextID()
}

// NextIDString is NextID formatted in base 36.
func NextIDString(namespace string) (string, error) {
	id, err := NextID(namespace)
	if err != nil {
		return "", err
	}

	return strconv.FormatUint(id, 36), nil
}

func settings() sonyflake.Settings {
	s := sonyflake.Settings{
		StartTime: startTime,
	}

	// Without a host name sonyflake falls back to the private IP address.
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		id := MachineID(hostname)

		s.MachineID = func() (uint16, error) {
			return id, nil
		}
	}

	return s
}

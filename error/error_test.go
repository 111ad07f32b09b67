package error

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	err := Wrap(ErrDependencyUnavailable, "incr %s", "visits")

	if have, want := err.Error(), "dependency unavailable: incr visits"; have != want {
		t.Errorf("have %v, want %v", have, want)
	}

	if !IsDependencyUnavailable(err) {
		t.Errorf("expected %v to be dependency unavailable", err)
	}

	if IsConfiguration(err) {
		t.Errorf("expected %v not to be a configuration error", err)
	}

	if have, want := errors.Is(err, ErrDependencyUnavailable), true; have != want {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestIsPlain(t *testing.T) {
	if !IsConfiguration(ErrConfiguration) {
		t.Error("expected sentinel to match itself")
	}

	if IsConfiguration(errors.New("port")) {
		t.Error("expected foreign error not to match")
	}
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tapglue/hitcounter/core"
	"github.com/tapglue/hitcounter/platform/host"
	"github.com/tapglue/hitcounter/service/counter"
)

type brokenCounters struct {
	counter.Service
}

func (c brokenCounters) Incr(ns, key string) (uint64, error) {
	return 0, errors.New("connection refused")
}

func TestVisit(t *testing.T) {
	var (
		fn = core.VisitRecord(counter.MemService(), host.StaticResolver("web-1"))
		h  = Wrap(Chain(), Visit(fn, core.Counter{Key: "visits"}))
	)

	for _, want := range []string{
		"Hello! This page has been viewed 1 times.\nHostname: web-1\n",
		"Hello! This page has been viewed 2 times.\nHostname: web-1\n",
	} {
		var (
			w = httptest.NewRecorder()
			r = httptest.NewRequest("GET", "/", nil)
		)

		h(w, r)

		if have, want := w.Code, http.StatusOK; have != want {
			t.Errorf("have %v, want %v", have, want)
		}
		if have, want := w.Header().Get("Content-Type"), contentTypeText; have != want {
			t.Errorf("have %v, want %v", have, want)
		}
		if have := w.Body.String(); have != want {
			t.Errorf("have %q, want %q", have, want)
		}
	}
}

func TestVisitDependencyUnavailable(t *testing.T) {
	var (
		fn = core.VisitRecord(brokenCounters{}, host.StaticResolver("web-1"))
		h  = Wrap(Chain(), Visit(fn, core.Counter{Key: "visits"}))
		w  = httptest.NewRecorder()
		r  = httptest.NewRequest("GET", "/", nil)
	)

	h(w, r)

	if have, want := w.Code, http.StatusInternalServerError; have != want {
		t.Errorf("have %v, want %v", have, want)
	}

	var res struct {
		Errors []apiError `json:"errors"`
	}

	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}

	if have, want := len(res.Errors), 1; have != want {
		t.Fatalf("have %v, want %v", have, want)
	}
	if have, want := res.Errors[0].Code, codeDependencyUnavailable; have != want {
		t.Errorf("have %v, want %v", have, want)
	}
	if have, want := res.Errors[0].Message, "dependency unavailable"; !strings.HasPrefix(have, want) {
		t.Errorf("have %v, want prefix %v", have, want)
	}
}

func TestVisitUnknownError(t *testing.T) {
	var (
		fn = func(c core.Counter) (*core.Visit, error) {
			return nil, errors.New("unexpected")
		}
		w = httptest.NewRecorder()
	)

	Wrap(Chain(), Visit(fn, core.Counter{Key: "visits"}))(
		w,
		httptest.NewRequest("GET", "/", nil),
	)

	if have, want := w.Code, http.StatusInternalServerError; have != want {
		t.Errorf("have %v, want %v", have, want)
	}

	var res struct {
		Errors []apiError `json:"errors"`
	}

	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}

	if have, want := res.Errors[0].Code, codeUnknown; have != want {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestStatus(t *testing.T) {
	var (
		w = httptest.NewRecorder()
		r = httptest.NewRequest("GET", "/status", nil)
	)

	Wrap(Chain(), Status("Visit counter running!"))(w, r)

	if have, want := w.Code, http.StatusOK; have != want {
		t.Errorf("have %v, want %v", have, want)
	}
	if have, want := w.Body.String(), "Visit counter running!\n"; have != want {
		t.Errorf("have %q, want %q", have, want)
	}
}

func TestNotFound(t *testing.T) {
	var (
		w = httptest.NewRecorder()
		r = httptest.NewRequest("GET", "/missing", nil)
	)

	Wrap(Chain(), NotFound())(w, r)

	if have, want := w.Code, http.StatusNotFound; have != want {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestHealth(t *testing.T) {
	cases := map[string]struct {
		check HealthFunc
		code  int
	}{
		"healthy": {
			check: func() error { return nil },
			code:  http.StatusOK,
		},
		"unhealthy": {
			check: func() error { return errors.New("connection refused") },
			code:  http.StatusInternalServerError,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var (
				w = httptest.NewRecorder()
				r = httptest.NewRequest("GET", "/health", nil)
			)

			Wrap(Chain(), Health(map[string]HealthFunc{"redis": c.check}))(w, r)

			if have, want := w.Code, c.code; have != want {
				t.Errorf("have %v, want %v", have, want)
			}

			var res struct {
				Healthy  bool            `json:"healthy"`
				Services map[string]bool `json:"services"`
			}

			if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
				t.Fatal(err)
			}

			if have, want := res.Services["redis"], c.code == http.StatusOK; have != want {
				t.Errorf("have %v, want %v", have, want)
			}
			if have, want := res.Healthy, c.code == http.StatusOK; have != want {
				t.Errorf("have %v, want %v", have, want)
			}
		})
	}
}

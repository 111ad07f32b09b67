package counter

import (
	"sync"
	"testing"
)

type prepareFunc func(t *testing.T, namespace string) Service

func testServiceIncr(t *testing.T, p prepareFunc) {
	var (
		namespace = "service_incr"
		service   = p(t, namespace)
		key       = "visits"
	)

	for want := uint64(1); want <= 3; want++ {
		have, err := service.Incr(namespace, key)
		if err != nil {
			t.Fatal(err)
		}

		if have != want {
			t.Errorf("have %v, want %v", have, want)
		}
	}

	// Keys are independent of each other.
	have, err := service.Incr(namespace, "other")
	if err != nil {
		t.Fatal(err)
	}

	if want := uint64(1); have != want {
		t.Errorf("have %v, want %v", have, want)
	}
}

func testServiceIncrConcurrent(t *testing.T, p prepareFunc) {
	var (
		namespace = "service_incr_concurrent"
		service   = p(t, namespace)
		key       = "visits"
		workers   = 16
		perWorker = 25

		wg   sync.WaitGroup
		errc = make(chan error, workers*perWorker)
		seen = make(chan uint64, workers*perWorker)
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < perWorker; j++ {
				count, err := service.Incr(namespace, key)
				if err != nil {
					errc <- err
					return
				}

				seen <- count
			}
		}()
	}

	wg.Wait()
	close(errc)
	close(seen)

	for err := range errc {
		t.Fatal(err)
	}

	var (
		n      = workers * perWorker
		unique = map[uint64]bool{}
	)

	for c := range seen {
		if unique[c] {
			t.Errorf("count %d handed out twice", c)
		}

		unique[c] = true
	}

	if have, want := len(unique), n; have != want {
		t.Errorf("have %v, want %v", have, want)
	}

	final, err := service.Incr(namespace, key)
	if err != nil {
		t.Fatal(err)
	}

	if have, want := final, uint64(n+1); have != want {
		t.Errorf("have %v, want %v", have, want)
	}
}

func testServiceTeardown(t *testing.T, p prepareFunc) {
	var (
		namespace = "service_teardown"
		service   = p(t, namespace)
		key       = "visits"
	)

	if err := service.Setup(namespace); err != nil {
		t.Fatal(err)
	}

	if _, err := service.Incr(namespace, key); err != nil {
		t.Fatal(err)
	}

	if err := service.Teardown(namespace); err != nil {
		t.Fatal(err)
	}

	have, err := service.Incr(namespace, key)
	if err != nil {
		t.Fatal(err)
	}

	if want := uint64(1); have != want {
		t.Errorf("have %v, want %v", have, want)
	}
}

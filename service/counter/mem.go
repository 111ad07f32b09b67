package counter

import "sync"

type memService struct {
	mu       sync.Mutex
	counters map[string]map[string]uint64
}

// MemService returns a memory based Service implementation.
func MemService() Service {
	return &memService{
		counters: map[string]map[string]uint64{},
	}
}

func (s *memService) Incr(ns, key string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.counters[ns]
	if !ok {
		bucket = map[string]uint64{}
		s.counters[ns] = bucket
	}

	bucket[key]++

	return bucket[key], nil
}

func (s *memService) Setup(ns string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.counters[ns]; !ok {
		s.counters[ns] = map[string]uint64{}
	}

	return nil
}

func (s *memService) Teardown(ns string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.counters, ns)

	return nil
}

package counter

import (
	"fmt"
	"strings"

	"github.com/garyburd/redigo/redis"

	predis "github.com/tapglue/hitcounter/platform/redis"
)

// KeySeparator is used to build complete keys out of parts.
const KeySeparator = "."

type redisService struct {
	pool *redis.Pool
}

// RedisService returns a Redis backed Service implementation relying on INCR
// for atomicity.
func RedisService(pool *redis.Pool) Service {
	return &redisService{
		pool: pool,
	}
}

func (s *redisService) Incr(ns, key string) (uint64, error) {
	con := s.pool.Get()
	defer con.Close()

	count, err := redis.Uint64(con.Do(predis.CommandIncr, prefixKey(ns, key)))
	if err != nil {
		return 0, fmt.Errorf("counter incr failed: %s", err)
	}

	return count, nil
}

// Setup is a no-op as Redis creates keys on first write.
func (s *redisService) Setup(ns string) error {
	return nil
}

// Teardown is a no-op, counters are never removed by the service.
func (s *redisService) Teardown(ns string) error {
	return nil
}

func prefixKey(ns, key string) string {
	if ns == "" {
		return key
	}

	return strings.Join([]string{ns, key}, KeySeparator)
}

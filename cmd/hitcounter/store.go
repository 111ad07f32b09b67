package main

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	handler "github.com/tapglue/hitcounter/handler/http"
	"github.com/tapglue/hitcounter/platform/config"
	"github.com/tapglue/hitcounter/platform/redis"
	"github.com/tapglue/hitcounter/service/counter"
)

const driverPostgres = "postgres"

// setupStore constructs the counter store selected by the configuration and
// the health checks for its backing service. Connections are established
// lazily so an unreachable store surfaces per request rather than at startup.
func setupStore(conf config.Config) (counter.Service, map[string]handler.HealthFunc, error) {
	switch conf.Store {
	case config.StorePostgres:
		db, err := sqlx.Open(driverPostgres, conf.PostgresURL)
		if err != nil {
			return nil, nil, err
		}

		return counter.PostgresService(db), map[string]handler.HealthFunc{
			config.StorePostgres: db.Ping,
		}, nil
	case config.StoreRedis:
		pool := redis.Pool(conf.RedisAddr(), conf.RedisPassword)

		return counter.RedisService(pool), map[string]handler.HealthFunc{
			config.StoreRedis: func() error {
				return redis.Ping(pool)
			},
		}, nil
	default:
		return counter.MemService(), map[string]handler.HealthFunc{}, nil
	}
}

package redis

import (
	"time"

	"github.com/garyburd/redigo/redis"
)

// Commands.
const (
	CommandAuth = "AUTH"
	CommandDel  = "DEL"
	CommandGet  = "GET"
	CommandIncr = "INCR"
	CommandPing = "PING"
	CommandSet  = "SET"
)

// Defaults.
const (
	defaultConnectTimeout = 2 * time.Second
	defaultIdleTimeout    = 240 * time.Second
	defaultMaxIdle        = 10
	defaultNetwork        = "tcp"
	defaultReadTimeout    = time.Second
	defaultWriteTimeout   = time.Second
)

type dialFunc func() (redis.Conn, error)

// Pool returns a connection pool for the Redis server listening on addr.
// Connections idle for more than a minute are pinged before reuse.
func Pool(addr, password string) *redis.Pool {
	return &redis.Pool{
		Dial:         dial(addr, password),
		IdleTimeout:  defaultIdleTimeout,
		MaxIdle:      defaultMaxIdle,
		TestOnBorrow: borrow,
	}
}

// Ping checks that a connection can be acquired and the server answers.
func Ping(pool *redis.Pool) error {
	con := pool.Get()
	defer con.Close()

	if err := con.Err(); err != nil {
		return err
	}

	_, err := con.Do(CommandPing)
	return err
}

func borrow(c redis.Conn, t time.Time) error {
	if time.Since(t) < time.Minute {
		return nil
	}

	_, err := c.Do(CommandPing)
	return err
}

func dial(addr, password string) dialFunc {
	return func() (redis.Conn, error) {
		c, err := redis.Dial(
			defaultNetwork,
			addr,
			redis.DialConnectTimeout(defaultConnectTimeout),
			redis.DialReadTimeout(defaultReadTimeout),
			redis.DialWriteTimeout(defaultWriteTimeout),
		)
		if err != nil {
			return nil, err
		}

		if password != "" {
			if _, err := c.Do(CommandAuth, password); err != nil {
				c.Close()

				return nil, err
			}
		}

		return c, err
	}
}

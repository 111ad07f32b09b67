package config

import (
	"net"
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/kelseyhightower/envconfig"

	serr "github.com/tapglue/hitcounter/error"
)

// Supported counter stores.
const (
	StoreMem      = "mem"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Namespaces end up as schema names, so they are restricted to lower-case
// unquoted SQL identifiers.
const namespacePattern = `^[a-z_][a-z0-9_]{0,62}$`

// Config is the environment driven configuration of the service.
type Config struct {
	Env string `envconfig:"APP_ENV" default:"development"`

	Port           int    `envconfig:"PORT" default:"5000"`
	MaxConnections int    `envconfig:"MAX_CONNECTIONS" default:"100" description:"0 disables the cap"`
	TelemetryAddr  string `envconfig:"TELEMETRY_ADDR" default:":9000" description:"empty disables the telemetry listener"`
	StatusText     string `envconfig:"STATUS_TEXT" default:"Visit counter running!"`

	Store         string `envconfig:"STORE" default:"redis" description:"One of redis, postgres or mem"`
	RedisHost     string `envconfig:"REDIS_HOST" default:"redis"`
	RedisPort     int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	PostgresURL   string `envconfig:"POSTGRES_URL"`

	CounterKey       string `envconfig:"COUNTER_KEY" default:"visits"`
	CounterNamespace string `envconfig:"COUNTER_NAMESPACE"`
}

// Load reads the configuration from the environment and validates it. Every
// failure is reported as ErrConfiguration.
func Load() (Config, error) {
	var c Config

	if err := envconfig.Process("", &c); err != nil {
		return c, serr.Wrap(serr.ErrConfiguration, "%s", err)
	}

	return c, c.Validate()
}

// Validate checks for values the service can't run with.
func (c Config) Validate() error {
	if !validPort(c.Port) {
		return serr.Wrap(serr.ErrConfiguration, "invalid PORT %d", c.Port)
	}

	if c.MaxConnections < 0 {
		return serr.Wrap(serr.ErrConfiguration, "invalid MAX_CONNECTIONS %d", c.MaxConnections)
	}

	if c.CounterKey == "" {
		return serr.Wrap(serr.ErrConfiguration, "COUNTER_KEY must be set")
	}

	if c.CounterNamespace != "" && !govalidator.Matches(c.CounterNamespace, namespacePattern) {
		return serr.Wrap(serr.ErrConfiguration, "invalid COUNTER_NAMESPACE '%s'", c.CounterNamespace)
	}

	switch c.Store {
	case StoreMem:
	case StorePostgres:
		if !govalidator.IsRequestURL(c.PostgresURL) {
			return serr.Wrap(serr.ErrConfiguration, "invalid POSTGRES_URL '%s'", c.PostgresURL)
		}
	case StoreRedis:
		if !govalidator.IsHost(c.RedisHost) {
			return serr.Wrap(serr.ErrConfiguration, "invalid REDIS_HOST '%s'", c.RedisHost)
		}

		if !validPort(c.RedisPort) {
			return serr.Wrap(serr.ErrConfiguration, "invalid REDIS_PORT %d", c.RedisPort)
		}
	default:
		return serr.Wrap(serr.ErrConfiguration, "store type '%s' not supported", c.Store)
	}

	return nil
}

// ListenAddr is the bind address of the main listener.
func (c Config) ListenAddr() string {
	return net.JoinHostPort("", strconv.Itoa(c.Port))
}

// RedisAddr is the address of the Redis server.
func (c Config) RedisAddr() string {
	return net.JoinHostPort(c.RedisHost, strconv.Itoa(c.RedisPort))
}

func validPort(p int) bool {
	return govalidator.IsPort(strconv.Itoa(p))
}

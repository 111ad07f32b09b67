package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/netutil"

	"github.com/tapglue/hitcounter/core"
	"github.com/tapglue/hitcounter/platform/config"
	"github.com/tapglue/hitcounter/platform/host"
	"github.com/tapglue/hitcounter/platform/metrics"
	"github.com/tapglue/hitcounter/service/counter"
)

// Logging and telemetry identifiers.
const (
	component        = "hitcounter"
	namespaceRequest = "request"
	namespaceService = "service"
)

// Versions.
const (
	versionCurrent = "0.1"
)

// Timeouts
const (
	defaultReadTimeout     = 2 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultWriteTimeout    = 3 * time.Second
)

// Buildtime vars.
var (
	revision = "0000000-dev"
)

func main() {
	begin := time.Now()

	// Setup logging.
	logger := log.With(
		log.NewJSONLogger(log.NewSyncWriter(os.Stdout)),
		"caller", log.DefaultCaller,
		"component", component,
		"revision", revision,
	)

	hosts := host.OSResolver()

	hostname, err := hosts.Hostname()
	if err != nil {
		logger.Log("err", err, "lifecycle", "abort")
		os.Exit(1)
	}

	logger = log.With(logger, "host", hostname)

	conf, err := config.Load()
	if err != nil {
		logger.Log("err", err, "lifecycle", "abort", "sub", "config")
		os.Exit(1)
	}

	logger = log.With(logger, "env", conf.Env)

	// Setup instrumentation.
	if conf.TelemetryAddr != "" {
		go func(addr string) {
			logger.Log(
				"duration", time.Since(begin).Nanoseconds(),
				"lifecycle", "start",
				"listen", addr,
				"sub", "telemetry",
			)

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())

			err := http.ListenAndServe(addr, mux)
			if err != nil {
				logger.Log("err", err, "lifecycle", "abort", "sub", "telemetry")
				os.Exit(1)
			}
		}(conf.TelemetryAddr)
	}

	serviceMetrics := metrics.StoreMetrics(namespaceService)

	// Setup services.
	counters, checks, err := setupStore(conf)
	if err != nil {
		logger.Log("err", err, "lifecycle", "abort", "sub", "store")
		os.Exit(1)
	}

	counters = counter.InstrumentServiceMiddleware(
		component,
		conf.Store,
		serviceMetrics.ErrCount,
		serviceMetrics.OpCount,
		serviceMetrics.OpLatency,
	)(counters)
	counters = counter.LogServiceMiddleware(logger, conf.Store)(counters)

	// The store might come up after us, Incr sets up lazily where needed.
	if err := counters.Setup(conf.CounterNamespace); err != nil {
		logger.Log("err", err, "lifecycle", "setup", "sub", "store")
	}

	// Setup Router.
	router := newRouter(routerConfig{
		checks: checks,
		counter: core.Counter{
			Key:       conf.CounterKey,
			Namespace: conf.CounterNamespace,
		},
		middleware: defaultMiddleware(logger, hostname, requestIDs),
		statusText: conf.StatusText,
		visit:      core.VisitRecord(counters, hosts),
	})

	ln, err := net.Listen("tcp", conf.ListenAddr())
	if err != nil {
		logger.Log("err", err, "lifecycle", "abort", "sub", "api")
		os.Exit(1)
	}

	if conf.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, conf.MaxConnections)
	}

	// Setup server.
	server := &http.Server{
		Handler:      router,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
	}

	stopped := make(chan struct{})

	go func() {
		defer close(stopped)

		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

		sig := <-sigc

		logger.Log("lifecycle", "stop", "signal", sig.String(), "sub", "api")

		ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Log("err", err, "lifecycle", "stop", "sub", "api")
		}
	}()

	logger.Log(
		"duration", time.Since(begin).Nanoseconds(),
		"lifecycle", "start",
		"listen", conf.ListenAddr(),
		"max_connections", conf.MaxConnections,
		"store", conf.Store,
		"sub", "api",
	)

	err = server.Serve(ln)
	if err != nil && err != http.ErrServerClosed {
		logger.Log("err", err, "lifecycle", "abort", "sub", "api")
		os.Exit(1)
	}

	<-stopped
}

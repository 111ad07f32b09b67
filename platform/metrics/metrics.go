package metrics

import (
	"fmt"

	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

// Field names for metric labels.
const (
	FieldComponent = "component"
	FieldMethod    = "method"
	FieldNamespace = "namespace"
	FieldRoute     = "route"
	FieldService   = "service"
	FieldStatus    = "status"
	FieldStore     = "store"
	FieldVersion   = "version"
)

// BucketsStore are used for Histograms observing round-trips to the counter
// store.
var BucketsStore = []float64{
	.0001,
	.00025,
	.0005,
	.001,
	.0025,
	.005,
	.01,
	.025,
	.05,
	.1,
	.25,
	.5,
	1,
}

// StoreFields label every store operation.
var StoreFields = []string{
	FieldComponent,
	FieldMethod,
	FieldNamespace,
	FieldService,
	FieldStore,
}

// Store bundles what is observed per counter store operation.
type Store struct {
	ErrCount  *kitprometheus.Counter
	OpCount   *kitprometheus.Counter
	OpLatency *prometheus.HistogramVec
}

// StoreMetrics returns the metrics for store operations under namespace,
// labelled with StoreFields.
func StoreMetrics(namespace string) Store {
	return Store{
		ErrCount: Counter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "err",
			Name:      "count",
			Help:      fmt.Sprintf("Number of failed %s operations", namespace),
		}, StoreFields...),
		OpCount: Counter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "op",
			Name:      "count",
			Help:      fmt.Sprintf("Number of %s operations performed", namespace),
		}, StoreFields...),
		OpLatency: Histogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "op",
			Name:      "latency_seconds",
			Help:      fmt.Sprintf("Distribution of %s op duration in seconds", namespace),
			Buckets:   BucketsStore,
		}, StoreFields...),
	}
}

// Counter registers a counter vector with the default registry, or reuses
// the one registered earlier under the same name.
func Counter(opts prometheus.CounterOpts, fieldKeys ...string) *kitprometheus.Counter {
	cv := register(prometheus.NewCounterVec(opts, fieldKeys)).(*prometheus.CounterVec)

	return kitprometheus.NewCounter(cv)
}

// Histogram registers a histogram vector with the default registry, or reuses
// the one registered earlier under the same name.
func Histogram(opts prometheus.HistogramOpts, fieldKeys ...string) *prometheus.HistogramVec {
	return register(prometheus.NewHistogramVec(opts, fieldKeys)).(*prometheus.HistogramVec)
}

func register(c prometheus.Collector) prometheus.Collector {
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector
		}

		panic(err)
	}

	return c
}

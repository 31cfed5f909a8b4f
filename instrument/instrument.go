// Package instrument wraps an *aht.Table with Prometheus metrics and
// structured logging, the way friggdb's pool package wraps its work queue
// with promauto gauges.
package instrument

import (
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/arrayhash/aht"
	"github.com/arrayhash/aht/hash"
	ahtlog "github.com/arrayhash/aht/pkg/util/log"
)

var (
	metricGets = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aht",
		Name:      "gets_total",
		Help:      "Total number of Get calls, by table.",
	}, []string{"table"})

	metricTryGets = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aht",
		Name:      "tryget_total",
		Help:      "Total number of TryGet calls, by table.",
	}, []string{"table"})

	metricTryGetHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aht",
		Name:      "tryget_hits_total",
		Help:      "Total number of TryGet calls that found the key, by table.",
	}, []string{"table"})

	metricExpansions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aht",
		Name:      "expansions_total",
		Help:      "Total number of times a table's bucket array has grown, by table.",
	}, []string{"table"})

	metricSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "aht",
		Name:      "size",
		Help:      "Current number of records stored, by table.",
	}, []string{"table"})
)

// Table decorates an *aht.Table with metrics and logging. Name labels every
// metric and log line it emits, so callers running several tables in one
// process (for example one per hat-trie leaf under active split) can tell
// them apart in a dashboard.
type Table struct {
	name  string
	table *aht.Table
}

// New wraps a freshly created table under name.
func New(name string, h hash.Func) *Table {
	return Wrap(name, aht.New(h))
}

// Wrap instruments an existing table under name.
func Wrap(name string, t *aht.Table) *Table {
	return &Table{name: name, table: t}
}

// Table returns the wrapped table, for operations instrument does not
// itself decorate (Clear, Clone, Iterator, Buckets).
func (t *Table) Table() *aht.Table {
	return t.table
}

// Get records a Get call and delegates to the wrapped table, logging at info
// level whenever the call grows the bucket array and at warn level when the
// call fails.
func (t *Table) Get(key []byte) (aht.ValueRef, error) {
	metricGets.WithLabelValues(t.name).Inc()

	before := t.table.Buckets()
	ref, err := t.table.Get(key)
	after := t.table.Buckets()

	if after > before {
		metricExpansions.WithLabelValues(t.name).Inc()
		level.Info(ahtlog.Logger).Log(
			"msg", "table expanded",
			"table", t.name,
			"buckets", after,
			"size", t.table.Size(),
		)
	}
	metricSize.WithLabelValues(t.name).Set(float64(t.table.Size()))

	if err != nil {
		level.Warn(ahtlog.Logger).Log("msg", "get failed", "table", t.name, "err", err)
	}
	return ref, err
}

// TryGet records a TryGet call, and a hit if the key was found, and
// delegates to the wrapped table.
func (t *Table) TryGet(key []byte) (aht.ValueRef, bool, error) {
	metricTryGets.WithLabelValues(t.name).Inc()

	ref, found, err := t.table.TryGet(key)
	if found {
		metricTryGetHits.WithLabelValues(t.name).Inc()
	}
	if err != nil {
		level.Warn(ahtlog.Logger).Log("msg", "tryget failed", "table", t.name, "err", err)
	}
	return ref, found, err
}

// Size returns the number of records currently stored.
func (t *Table) Size() int {
	return t.table.Size()
}

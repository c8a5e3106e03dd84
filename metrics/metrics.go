// Package metrics provides Prometheus-backed instrumentation for gulib's
// containers: a Collector that satisfies hashtable.Collector and reports
// Put/Get/Resize activity per table.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operations counts hash table operations by table name and kind (put,
// get, resize). Exported so callers can register it against their own
// registry or inspect it directly in tests.
var Operations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "gulib_hashtable_operations_total",
		Help: "Hash table operations by table name and kind (put, get, resize).",
	},
	[]string{"table", "op"},
)

// Buckets records a table's bucket count as last reported through
// Collector.SetBuckets; hash table resizes do not update it.
var Buckets = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "gulib_hashtable_buckets",
		Help: "Bucket count of a hash table, as last reported via SetBuckets.",
	},
	[]string{"table"},
)

// Collector reports hashtable.Table activity for a single named table to
// Prometheus. The zero value is not usable; construct with NewCollector.
type Collector struct {
	table string
}

// NewCollector returns a Collector that labels every metric it emits
// with the given table name, letting multiple tables share one registry.
func NewCollector(tableName string) *Collector {
	return &Collector{table: tableName}
}

// IncPut implements hashtable.Collector.
func (c *Collector) IncPut() { Operations.WithLabelValues(c.table, "put").Inc() }

// IncGet implements hashtable.Collector.
func (c *Collector) IncGet() { Operations.WithLabelValues(c.table, "get").Inc() }

// IncResize implements hashtable.Collector.
func (c *Collector) IncResize() { Operations.WithLabelValues(c.table, "resize").Inc() }

// SetBuckets records the table's current bucket count, useful for
// tracking occupancy alongside the resize counter.
func (c *Collector) SetBuckets(n int) { Buckets.WithLabelValues(c.table).Set(float64(n)) }

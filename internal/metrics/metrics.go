// ============================================================================
// Taskgraph Metrics - Prometheus Monitoring
// ============================================================================
//
// Package: internal/metrics
// File: metrics.go
// Purpose: Collect and expose execution-engine metrics for Prometheus
//
// Metric Categories:
//
//   1. Counters - Cumulative, monotonically increasing:
//      - taskgraph_tasks_completed_total: Total tasks run to completion
//      - taskgraph_executions_total: Total Engine.Execute calls finished
//
//   2. Performance Metrics (Histogram) - Distribution stats:
//      - taskgraph_task_latency_seconds: Per-task run duration
//      - taskgraph_execution_latency_seconds: Whole-graph run duration
//
//   3. Status Metrics (Gauge) - Instantaneous values:
//      - taskgraph_graphs_in_flight: Number of Execute calls currently running
//
// HTTP Endpoint:
//   Exposed via /metrics, scraped by Prometheus. Default port 9090.
//
// ============================================================================

package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector collects Prometheus metrics for the execution engine. It
// implements executor.Observer so an Engine can report directly into it
// without the executor package importing Prometheus itself.
type Collector struct {
	tasksCompleted   prometheus.Counter
	executionsTotal  prometheus.Counter
	taskLatency      prometheus.Histogram
	executionLatency prometheus.Histogram
	graphsInFlight   prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics against the
// default Prometheus registry.
func NewCollector() *Collector {
	c := &Collector{
		tasksCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskgraph_tasks_completed_total",
			Help: "Total number of tasks run to completion",
		}),
		executionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskgraph_executions_total",
			Help: "Total number of Engine.Execute calls that finished",
		}),
		taskLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "taskgraph_task_latency_seconds",
			Help:    "Per-task run duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		executionLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "taskgraph_execution_latency_seconds",
			Help:    "Whole-graph run duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		graphsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "taskgraph_graphs_in_flight",
			Help: "Number of Execute calls currently running",
		}),
	}

	prometheus.MustRegister(c.tasksCompleted)
	prometheus.MustRegister(c.executionsTotal)
	prometheus.MustRegister(c.taskLatency)
	prometheus.MustRegister(c.executionLatency)
	prometheus.MustRegister(c.graphsInFlight)

	return c
}

// GraphStarted implements executor.Observer.
func (c *Collector) GraphStarted() {
	c.graphsInFlight.Inc()
}

// GraphFinished implements executor.Observer.
func (c *Collector) GraphFinished(d time.Duration) {
	c.graphsInFlight.Dec()
	c.executionsTotal.Inc()
	c.executionLatency.Observe(d.Seconds())
}

// TaskCompleted implements executor.Observer.
func (c *Collector) TaskCompleted(d time.Duration) {
	c.tasksCompleted.Inc()
	c.taskLatency.Observe(d.Seconds())
}

// StartServer starts the Prometheus metrics HTTP server on port. It blocks
// for the lifetime of the listener; callers run it in its own goroutine.
func StartServer(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf(":%d", port)
	return http.ListenAndServe(addr, mux)
}

package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the service's Prometheus metrics behind a private
// registry so tests can build isolated instances.
type Recorder struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	datasetRecords  prometheus.Gauge
	datasetReloads  prometheus.Counter
}

// NewRecorder creates a recorder with Go runtime and process collectors
// pre-registered.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Recorder{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashboard_request_duration_seconds",
			Help:    "Duration of dashboard HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_request_total",
			Help: "Total dashboard HTTP requests by path and status.",
		}, []string{"path", "method", "status"}),
		datasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dashboard_dataset_records",
			Help: "Number of records in the current dataset snapshot.",
		}),
		datasetReloads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dashboard_dataset_reloads_total",
			Help: "Total successful dataset reloads since start.",
		}),
	}

	registry.MustRegister(r.requestDuration, r.requestTotal, r.datasetRecords, r.datasetReloads)
	return r
}

// SetDatasetSize records the snapshot size after a (re)load
func (r *Recorder) SetDatasetSize(n int) {
	r.datasetRecords.Set(float64(n))
}

// IncReload counts a successful dataset reload
func (r *Recorder) IncReload() {
	r.datasetReloads.Inc()
}

// Middleware instruments every request with duration and count metrics.
// The route template is used as the path label to keep cardinality low.
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		labels := []string{path, c.Request.Method, status}
		r.requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		r.requestTotal.WithLabelValues(labels...).Inc()
	}
}

// Handler exposes the registry for the /metrics endpoint
func (r *Recorder) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var pipelineOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "document_pipeline_outcomes_total",
	Help: "Documents processed, labelled by the state the pipeline finished in",
}, []string{"state"})

var extractionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "document_extraction_duration_seconds",
	Help:    "Time spent extracting text, labelled by document format.",
	Buckets: []float64{.005, .01, .05, .1, .5, 1, 2, 5, 10},
}, []string{"format"})

var summaryCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "summary_cache_lookups_total",
	Help: "Summary cache lookups labelled by result",
}, []string{"result"})

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "summarize_request_duration_seconds",
	Help:    "Total time spent handling one summarize request.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30, 60, 120},
}, []string{"status"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30, 60},
}, []string{"service"})

// HttpStatusRecorder remembers the status code written through it.
type HttpStatusRecorder struct {
	http.ResponseWriter
	Status      int
	wroteHeader bool
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.Status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *HttpStatusRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.wroteHeader = true
	}
	return r.ResponseWriter.Write(b)
}

func (r *HttpStatusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func (r *HttpStatusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func CapturePipelineOutcome(state string) {
	pipelineOutcomes.WithLabelValues(state).Inc()
}

func CaptureExtractionMetrics(format string, timeElapsed time.Duration) {
	extractionDuration.WithLabelValues(format).Observe(timeElapsed.Seconds())
}

func CaptureCacheLookup(hit bool) {
	if hit {
		summaryCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	summaryCacheLookups.WithLabelValues("miss").Inc()
}

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CaptureRequestMetrics(status string, timeElapsed time.Duration) {
	requestDuration.WithLabelValues(status).Observe(timeElapsed.Seconds())
}

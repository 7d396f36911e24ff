package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHttpStatusRecorder(t *testing.T) {
	w := httptest.NewRecorder()
	rec := &HttpStatusRecorder{ResponseWriter: w, Status: http.StatusOK}

	rec.WriteHeader(http.StatusBadRequest)
	rec.WriteHeader(http.StatusInternalServerError)
	_, _ = rec.Write([]byte("{}"))

	assert.Equal(t, http.StatusBadRequest, rec.Status)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHttpStatusRecorder_ImplicitOK(t *testing.T) {
	rec := &HttpStatusRecorder{ResponseWriter: httptest.NewRecorder(), Status: http.StatusOK}
	_, _ = rec.Write([]byte("hello"))
	assert.Equal(t, http.StatusOK, rec.Status)
}

func TestCapturePipelineOutcome(t *testing.T) {
	before := testutil.ToFloat64(pipelineOutcomes.WithLabelValues("DONE"))
	CapturePipelineOutcome("DONE")
	assert.Equal(t, before+1, testutil.ToFloat64(pipelineOutcomes.WithLabelValues("DONE")))
}

func TestCaptureCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(summaryCacheLookups.WithLabelValues("hit"))
	misses := testutil.ToFloat64(summaryCacheLookups.WithLabelValues("miss"))

	CaptureCacheLookup(true)
	CaptureCacheLookup(false)
	CaptureCacheLookup(false)

	assert.Equal(t, hits+1, testutil.ToFloat64(summaryCacheLookups.WithLabelValues("hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(summaryCacheLookups.WithLabelValues("miss")))
}

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerExposesCollectors(t *testing.T) {
	VariantsReconciled.Add(3)
	FinderRequests.WithLabelValues("keyword").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "durable_cms_product_variants_written_total")
	assert.Contains(t, body, `durable_cms_finder_requests_total{mode="keyword"}`)
}

func TestCounterValues(t *testing.T) {
	before := testutil.ToFloat64(Uploads.WithLabelValues("gallery", "ok"))
	Uploads.WithLabelValues("gallery", "ok").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(Uploads.WithLabelValues("gallery", "ok")))
}

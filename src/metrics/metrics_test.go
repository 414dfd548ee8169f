package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHandler_ExposesCounters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/metrics", Handler())

	before := testutil.ToFloat64(SosSignalsCreated)
	SosSignalsCreated.Inc()
	ContactRequests.WithLabelValues("created").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(SosSignalsCreated))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sos_signals_created_total")
	assert.Contains(t, w.Body.String(), `contact_requests_total{result="created"}`)
}

package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewMetricsIndependentRegistries(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.RecordHTTPRequest(http.MethodGet, 200, time.Millisecond, 10)

	assert.Equal(t, float64(1), testutil.ToFloat64(a.RequestsTotal.WithLabelValues("GET", "2xx")))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.RequestsTotal.WithLabelValues("GET", "2xx")))
}

func TestRecordHTTPRequestSnapshot(t *testing.T) {
	m := NewMetrics()

	m.RecordHTTPRequest(http.MethodGet, 200, 2*time.Millisecond, 100)
	m.RecordHTTPRequest(http.MethodGet, 404, 4*time.Millisecond, 0)
	m.RecordHTTPRequest(http.MethodHead, 500, 6*time.Millisecond, 0)

	s := m.Snapshot()
	assert.Equal(t, int64(3), s.TotalRequests)
	assert.Equal(t, int64(1), s.NotFound)
	assert.Equal(t, int64(1), s.ServerErrors)
	assert.Equal(t, int64(100), s.BytesServed)
	assert.Equal(t, 4*time.Millisecond, s.AverageDuration())

	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "4xx")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("HEAD", "5xx")))
}

func TestSnapshotAverageEmpty(t *testing.T) {
	assert.Zero(t, Snapshot{}.AverageDuration())
}

func TestSetWindowState(t *testing.T) {
	m := NewMetrics()
	all := []string{"initializing", "running", "closing"}

	m.SetWindowState("initializing", all)
	m.SetWindowState("running", all)

	assert.Equal(t, float64(0), testutil.ToFloat64(m.WindowState.WithLabelValues("initializing")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.WindowState.WithLabelValues("running")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.WindowState.WithLabelValues("closing")))

	m.SetWindowUptime(1500 * time.Millisecond)
	assert.Equal(t, 1.5, testutil.ToFloat64(m.WindowUptime))
}

func TestMiddleware(t *testing.T) {
	m := NewMetrics()
	router := gin.New()
	router.Use(Middleware(m))
	router.GET("/ok", func(c *gin.Context) {
		c.Data(http.StatusOK, "", []byte("hello"))
	})
	router.NoRoute(func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	for _, path := range []string{"/ok", "/missing"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
	}

	s := m.Snapshot()
	require.Equal(t, int64(2), s.TotalRequests)
	assert.Equal(t, int64(1), s.NotFound)
	assert.Equal(t, int64(5), s.BytesServed)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountersAndPathFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())

	// Body-producing route, size is observed.
	r.GET("/complaints", func(c *gin.Context) {
		c.String(http.StatusOK, `{"complaints":[]}`)
	})
	// Status-only route, size stays -1 and the size histogram is skipped.
	r.POST("/auth/logout", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	// Baselines so earlier tests touching the shared collectors do not skew us.
	baseList := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/complaints", "200"))
	base404 := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/no-such-route", "404"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/complaints", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /complaints -> %d", w.Code)
	}

	// Unmatched route: the path label falls back to the raw URL path.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/no-such-route", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /no-such-route -> %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("POST /auth/logout -> %d", w.Code)
	}

	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/complaints", "200")); got != baseList+1 {
		t.Fatalf("counter /complaints 200 = %v; want %v", got, baseList+1)
	}
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/no-such-route", "404")); got != base404+1 {
		t.Fatalf("counter 404 fallback = %v; want %v", got, base404+1)
	}

	// All three requests completed, the in-flight gauge must be back to zero.
	if inFlight := testutil.ToFloat64(httpInflight); inFlight != 0 {
		t.Fatalf("httpInflight = %v; want 0", inFlight)
	}
}

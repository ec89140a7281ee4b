package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestFail_EnvelopeAndRequestID(t *testing.T) {
	r := gin.New()
	r.GET("/boom", func(c *gin.Context) {
		c.Writer.Header().Set("X-Request-ID", "rid-123")
		fail(c, http.StatusNotFound, ErrCodeNotFound, "complaint not found")
	})

	w := serve(r, http.MethodGet, "/boom", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ErrorResponse
	decode(t, w, &resp)
	if resp.Code != ErrCodeNotFound || resp.Message != "complaint not found" || resp.RequestID != "rid-123" {
		t.Fatalf("envelope = %+v", resp)
	}
}

func TestFail_AbortsHandlerChain(t *testing.T) {
	r := gin.New()
	reached := false
	r.GET("/chain",
		func(c *gin.Context) { fail(c, http.StatusForbidden, ErrCodeForbidden, "no") },
		func(c *gin.Context) { reached = true },
	)

	w := serve(r, http.MethodGet, "/chain", nil, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d", w.Code)
	}
	if reached {
		t.Fatalf("fail should abort the chain")
	}
}

func Test_noContent(t *testing.T) {
	r := gin.New()
	r.DELETE("/x", func(c *gin.Context) { noContent(c) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/x", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
		t.Fatalf("noContent = %d body %q", w.Code, w.Body.String())
	}
}

package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/parkview/go-grievance-backend/internal/domain"
	"github.com/parkview/go-grievance-backend/internal/repo"
	"github.com/parkview/go-grievance-backend/internal/services"
	"github.com/parkview/go-grievance-backend/internal/session"
	"github.com/parkview/go-grievance-backend/internal/uploads"
)

const testRegion = "Park View Colony"

// ---------- shared fixture ----------

type fixture struct {
	h        *Handlers
	sessions *session.Manager
}

// newFixture builds Handlers against a real store and upload directory.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := repo.Open(t.TempDir(), testRegion)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	up, err := uploads.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("open upload store: %v", err)
	}
	mgr := session.NewManager("handlers-test-secret", time.Hour)

	h := New(
		services.NewAuthService(store, testRegion),
		services.NewComplaintService(store),
		services.NewBoardService(store),
		services.NewAnnouncementService(store),
		mgr,
		up,
		testRegion,
	)
	return &fixture{h: h, sessions: mgr}
}

// sessionFor issues a live session for a synthetic account and returns a
// middleware that injects it the way Authenticate would.
func (f *fixture) sessionFor(t *testing.T, username string, admin bool) (*session.Session, gin.HandlerFunc) {
	t.Helper()
	user := domain.User{ID: "u-" + username, Username: username, IsAdmin: admin, Region: testRegion}
	_, sess, err := f.sessions.Issue(user)
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}
	inject := func(c *gin.Context) {
		c.Set("session", sess)
		c.Set("username", username)
		c.Set("isAdmin", admin)
		c.Next()
	}
	return sess, inject
}

// ---------- request helpers ----------

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewReader(b)
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func errCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	decode(t, w, &resp)
	return resp.Code
}

func serve(r *gin.Engine, method, path string, body io.Reader, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

package handlers

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(f *fixture) *gin.Engine {
	r := gin.New()
	r.POST("/auth/login", f.h.Login)
	r.POST("/auth/logout", f.h.Logout)
	return r
}

func TestLogin_Success(t *testing.T) {
	f := newFixture(t)
	r := newAuthRouter(f)

	w := serve(r, http.MethodPost, "/auth/login", jsonBody(t, LoginRequest{
		Username: "resident", Password: "password", AreaCode: "1234",
	}), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d body %s", w.Code, w.Body.String())
	}

	var resp LoginResponse
	decode(t, w, &resp)
	if resp.Token == "" {
		t.Fatalf("expected a token")
	}
	if resp.User.Username != "resident" || resp.User.IsAdmin {
		t.Fatalf("unexpected user: %+v", resp.User)
	}

	// The token resolves to a live session
	if _, err := f.sessions.Lookup(resp.Token); err != nil {
		t.Fatalf("issued token does not resolve: %v", err)
	}
}

func TestLogin_Failures(t *testing.T) {
	f := newFixture(t)
	r := newAuthRouter(f)

	cases := []struct {
		name     string
		req      LoginRequest
		wantCode int
		wantErr  string
	}{
		{"unknown user", LoginRequest{Username: "ghost", Password: "x", AreaCode: "1"}, http.StatusUnauthorized, ErrCodeInvalidCredentials},
		{"wrong password", LoginRequest{Username: "resident", Password: "nope", AreaCode: "1234"}, http.StatusUnauthorized, ErrCodeInvalidCredentials},
		{"wrong area code", LoginRequest{Username: "resident", Password: "password", AreaCode: "0000"}, http.StatusUnauthorized, ErrCodeAreaCodeMismatch},
		{"out of region", LoginRequest{Username: "outsider", Password: "test", AreaCode: "9999"}, http.StatusForbidden, ErrCodeRegionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(r, http.MethodPost, "/auth/login", jsonBody(t, tc.req), nil)
			if w.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tc.wantCode, w.Body.String())
			}
			if got := errCode(t, w); got != tc.wantErr {
				t.Fatalf("code = %q, want %q", got, tc.wantErr)
			}
		})
	}

	// Malformed JSON → 400 before the service is touched
	w := serve(r, http.MethodPost, "/auth/login", bytes.NewBufferString("{bad"), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad json = %d", w.Code)
	}
}

func TestLogout_RevokesSession(t *testing.T) {
	f := newFixture(t)
	r := newAuthRouter(f)

	w := serve(r, http.MethodPost, "/auth/login", jsonBody(t, LoginRequest{
		Username: "resident", Password: "password", AreaCode: "1234",
	}), nil)
	var resp LoginResponse
	decode(t, w, &resp)

	w = serve(r, http.MethodPost, "/auth/logout", nil, map[string]string{
		"Authorization": "Bearer " + resp.Token,
	})
	if w.Code != http.StatusNoContent {
		t.Fatalf("logout = %d", w.Code)
	}
	if _, err := f.sessions.Lookup(resp.Token); err == nil {
		t.Fatalf("session should be revoked after logout")
	}

	// Logout without a token is still a 204 no-op
	if w := serve(r, http.MethodPost, "/auth/logout", nil, nil); w.Code != http.StatusNoContent {
		t.Fatalf("tokenless logout = %d", w.Code)
	}
}

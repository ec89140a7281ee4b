package handlers

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/parkview/go-grievance-backend/internal/session"
)

func TestAssistantMessage_ReplyAndTranscript(t *testing.T) {
	f := newFixture(t)
	sess, asResident := f.sessionFor(t, "resident", false)

	r := gin.New()
	r.POST("/assistant/messages", asResident, f.h.AssistantMessage)
	r.GET("/assistant/messages", asResident, f.h.AssistantHistory)

	// Malformed body → 400
	w := serve(r, http.MethodPost, "/assistant/messages", bytes.NewBufferString("{bad"), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad json = %d", w.Code)
	}

	w = serve(r, http.MethodPost, "/assistant/messages", jsonBody(t, AssistantRequest{
		Message: "how do I check my complaint status?",
	}), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("assistant = %d body %s", w.Code, w.Body.String())
	}
	var resp AssistantResponse
	decode(t, w, &resp)
	if !strings.Contains(resp.Reply, "status tracking") {
		t.Fatalf("status query reply = %q", resp.Reply)
	}
	if len(resp.History) != 2 || resp.History[0].Role != "user" || resp.History[1].Role != "assistant" {
		t.Fatalf("history = %+v", resp.History)
	}

	// The transcript lives on the session object
	if got := sess.Chat(); len(got) != 2 {
		t.Fatalf("session chat len = %d", len(got))
	}

	// Unmatched input falls back
	w = serve(r, http.MethodPost, "/assistant/messages", jsonBody(t, AssistantRequest{
		Message: "zzzzzz",
	}), nil)
	decode(t, w, &resp)
	if !strings.Contains(resp.Reply, "unable to process") {
		t.Fatalf("fallback reply = %q", resp.Reply)
	}

	// GET returns the accumulated transcript in order
	w = serve(r, http.MethodGet, "/assistant/messages", nil, nil)
	var history []session.ChatTurn
	decode(t, w, &history)
	if len(history) != 4 {
		t.Fatalf("transcript len = %d", len(history))
	}
}

// Digital assistant endpoints.
//
//   - POST /assistant/messages  (send a message, receive the canned reply)
//   - GET  /assistant/messages  (this session's transcript)
//
// The transcript lives in the session, so it resets on logout or restart.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parkview/go-grievance-backend/internal/assistant"
	"github.com/parkview/go-grievance-backend/internal/i18n"
	"github.com/parkview/go-grievance-backend/internal/session"
)

// AssistantRequest is the JSON payload for one user message.
type AssistantRequest struct {
	Message string `json:"message" binding:"required" example:"How do I check the status of my complaint?"`
}

// AssistantResponse carries the assistant's reply and the transcript so far.
type AssistantResponse struct {
	Reply   string             `json:"reply"`
	History []session.ChatTurn `json:"history"`
}

// AssistantMessage godoc
// @ID          assistantMessage
// @Summary     Message the digital assistant
// @Description Routes the message through keyword intents and returns a canned reply in the negotiated language.
// @Tags        Assistant
// @Accept      json
// @Produce     json
//
// @Param       Authorization    header  string  true   "Bearer token"
// @Param       Accept-Language  header  string  false  "Preferred language"  example(kn)
// @Param       body             body    handlers.AssistantRequest  true  "Message payload"
//
// @Success     200  {object}  handlers.AssistantResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /assistant/messages [post]
func (h *Handlers) AssistantMessage(c *gin.Context) {
	var req AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message is required")
		return
	}

	reply := i18n.T(lang(c), assistant.ReplyKey(req.Message))

	sess := currentSession(c)
	sess.AppendChat("user", req.Message)
	sess.AppendChat("assistant", reply)

	ok(c, http.StatusOK, AssistantResponse{Reply: reply, History: sess.Chat()})
}

// AssistantHistory godoc
// @ID          assistantHistory
// @Summary     Assistant transcript
// @Description Returns the current session's assistant transcript in order.
// @Tags        Assistant
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer token"
//
// @Success     200  {array}   session.ChatTurn
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /assistant/messages [get]
func (h *Handlers) AssistantHistory(c *gin.Context) {
	ok(c, http.StatusOK, currentSession(c).Chat())
}

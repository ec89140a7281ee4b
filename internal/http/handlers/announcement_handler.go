// Announcement endpoints.
//
//   - GET  /announcements  (all circulars, newest first)
//   - POST /announcements  (admin: publish)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parkview/go-grievance-backend/internal/services"
)

// ListAnnouncements godoc
// @ID          listAnnouncements
// @Summary     List announcements
// @Description Returns every official circular, newest first.
// @Tags        Announcements
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer token"
//
// @Success     200  {array}   domain.Announcement
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /announcements [get]
func (h *Handlers) ListAnnouncements(c *gin.Context) {
	all, err := h.annSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, all)
}

// PublishAnnouncementRequest is the JSON payload for a new circular.
type PublishAnnouncementRequest struct {
	Content    string `json:"content" example:"Water supply maintenance on Tuesday 10:00-14:00"`
	Attachment string `json:"attachment,omitempty"`
}

// PublishAnnouncement godoc
// @ID          publishAnnouncement
// @Summary     Publish an announcement (admin)
// @Description Publishes an official circular. Announcements are immutable once published.
// @Tags        Announcements
// @Accept      json
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer token (admin)"
// @Param       body           body    handlers.PublishAnnouncementRequest  true  "Announcement payload"
//
// @Success     201  {object}  domain.Announcement
// @Failure     400  {object}  handlers.ErrorResponse  "Empty submission"
// @Failure     403  {object}  handlers.ErrorResponse  "Forbidden"
// @Router      /announcements [post]
func (h *Handlers) PublishAnnouncement(c *gin.Context) {
	var req PublishAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeValidationFailed, "content or an attachment is required")
		return
	}

	sess := currentSession(c)
	a, err := h.annSvc.Publish(c.Request.Context(), sess.User.Username, req.Content, req.Attachment)
	if err != nil {
		if errors.Is(err, services.ErrEmptyAnnouncement) {
			fail(c, http.StatusBadRequest, ErrCodeValidationFailed, "content or an attachment is required")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusCreated, a)
}

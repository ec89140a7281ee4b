// Resolution feedback endpoints.
//
//   - POST /complaints/{id}/feedback  (citizen rates a resolved complaint)
//   - GET  /feedback                  (admin review list)
//   - GET  /feedback/summary          (admin aggregate)
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/parkview/go-grievance-backend/internal/domain"
	"github.com/parkview/go-grievance-backend/internal/i18n"
	"github.com/parkview/go-grievance-backend/internal/services"
)

// FeedbackRequest is the JSON payload for rating a resolved complaint.
type FeedbackRequest struct {
	Rating     int    `json:"rating" binding:"required" example:"4"`
	Suggestion string `json:"suggestion,omitempty" example:"Faster updates would help"`
}

// FeedbackResponse wraps the stored record with a localized confirmation.
type FeedbackResponse struct {
	Message  string          `json:"message"`
	Feedback domain.Feedback `json:"feedback"`
}

// AttachFeedback godoc
// @ID          attachFeedback
// @Summary     Rate a resolved complaint
// @Description Records a 1-5 satisfaction rating with an optional suggestion. One rating per complaint; only while the complaint is resolved.
// @Tags        Feedback
// @Accept      json
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer token"
// @Param       id             path    int     true  "Complaint ID"
// @Param       body           body    handlers.FeedbackRequest  true  "Feedback payload"
//
// @Success     201  {object}  handlers.FeedbackResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Already rated or not resolved"
// @Router      /complaints/{id}/feedback [post]
func (h *Handlers) AttachFeedback(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "complaint id must be an integer")
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "rating is required")
		return
	}

	sess := currentSession(c)
	fb, err := h.compSvc.AttachFeedback(c.Request.Context(), id, sess.User.Username, req.Rating, req.Suggestion)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRating):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "rating must be between 1 and 5")
		case errors.Is(err, services.ErrComplaintNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "complaint not found")
		case errors.Is(err, services.ErrComplaintNotResolved):
			fail(c, http.StatusConflict, ErrCodeNotResolved, "feedback is only accepted on resolved complaints")
		case errors.Is(err, services.ErrDuplicateFeedback):
			fail(c, http.StatusConflict, ErrCodeDuplicateFeedback, i18n.T(lang(c), "feedback_duplicate"))
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	ok(c, http.StatusCreated, FeedbackResponse{
		Message:  i18n.T(lang(c), "feedback_success"),
		Feedback: *fb,
	})
}

// ListFeedback godoc
// @ID          listFeedback
// @Summary     List feedback (admin)
// @Description Returns every feedback record, newest first.
// @Tags        Feedback
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer token (admin)"
//
// @Success     200  {array}   domain.Feedback
// @Failure     403  {object}  handlers.ErrorResponse  "Forbidden"
// @Router      /feedback [get]
func (h *Handlers) ListFeedback(c *gin.Context) {
	all, err := h.compSvc.ListFeedback(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, all)
}

// FeedbackSummary godoc
// @ID          feedbackSummary
// @Summary     Feedback summary (admin)
// @Description Returns the feedback count and mean rating.
// @Tags        Feedback
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer token (admin)"
//
// @Success     200  {object}  services.FeedbackSummary
// @Failure     403  {object}  handlers.ErrorResponse  "Forbidden"
// @Router      /feedback/summary [get]
func (h *Handlers) FeedbackSummary(c *gin.Context) {
	sum, err := h.compSvc.SummarizeFeedback(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, sum)
}

// Grievance endpoints.
//
//   - GET    /categories       (the fixed category set, localized)
//   - POST   /complaints       (file a grievance)
//   - GET    /complaints       (own complaints; full prioritized queue for admins)
//   - GET    /complaints/{id}  (one complaint, owner or admin)
//   - PATCH  /complaints/{id}  (admin: status, department, notes)
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

// CategoryItem pairs a category's storage key with its localized label.
type CategoryItem struct {
	Key   string `json:"key" example:"Water Supply"`
	Label string `json:"label" example:"Water Supply"`
}

// ListCategories godoc
// @ID          listCategories
// @Summary     List grievance categories
// @Description Returns the fixed category set with labels in the negotiated language.
// @Tags        Complaints
// @Produce     json
//
// @Param       Accept-Language  header  string  false  "Preferred language"  example(kn)
//
// @Success     200  {array}  handlers.CategoryItem
// @Router      /categories [get]
func (h *Handlers) ListCategories(c *gin.Context) {
	l := lang(c)
	items := make([]CategoryItem, 0, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		items = append(items, CategoryItem{Key: string(cat), Label: i18n.T(l, string(cat))})
	}
	ok(c, http.StatusOK, items)
}

// SubmitComplaintRequest is the JSON payload for filing a grievance.
// Attachment, when set, must be a stored name previously returned by the
// upload endpoint.
type SubmitComplaintRequest struct {
	Name        string `json:"name" binding:"required" example:"A. Resident"`
	House       string `json:"house" binding:"required" example:"12-B, 3rd Cross"`
	Category    string `json:"category" binding:"required" example:"Water Supply"`
	Description string `json:"description" binding:"required" example:"No water since yesterday morning"`
	Attachment  string `json:"attachment,omitempty"`
}

// SubmitComplaintResponse wraps the stored complaint with a localized
// confirmation.
type SubmitComplaintResponse struct {
	Message   string           `json:"message"`
	Complaint domain.Complaint `json:"complaint"`
}

// SubmitComplaint godoc
// @ID          submitComplaint
// @Summary     File a grievance
// @Description Files a new complaint. Priority and the SLA deadline are assigned automatically from category and description.
// @Tags        Complaints
// @Accept      json
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer token"
// @Param       body           body    handlers.SubmitComplaintRequest  true  "Grievance payload"
//
// @Success     201  {object}  handlers.SubmitComplaintResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /complaints [post]
func (h *Handlers) SubmitComplaint(c *gin.Context) {
	var req SubmitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeValidationFailed, i18n.T(lang(c), "complaint_validation"))
		return
	}

	sess := currentSession(c)
	complaint, err := h.compSvc.Submit(c.Request.Context(), services.SubmitInput{
		Username:    sess.User.Username,
		Name:        req.Name,
		House:       req.House,
		Category:    req.Category,
		Description: req.Description,
		Attachment:  req.Attachment,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			fail(c, http.StatusBadRequest, ErrCodeValidationFailed, i18n.T(lang(c), "complaint_validation"))
		case errors.Is(err, services.ErrInvalidCategory):
			fail(c, http.StatusBadRequest, ErrCodeValidationFailed, "unknown category")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	ok(c, http.StatusCreated, SubmitComplaintResponse{
		Message:   i18n.T(lang(c), "complaint_submitted"),
		Complaint: *complaint,
	})
}

// ListComplaints godoc
// @ID          listComplaints
// @Summary     List complaints
// @Description Citizens receive their own complaints newest first; administrators receive the full queue ordered by priority then age.
// @Tags        Complaints
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer token"
//
// @Success     200  {array}   domain.Complaint
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /complaints [get]
func (h *Handlers) ListComplaints(c *gin.Context) {
	sess := currentSession(c)

	var (
		complaints []domain.Complaint
		err        error
	)
	if sess.User.IsAdmin {
		complaints, err = h.compSvc.ListPrioritized(c.Request.Context())
	} else {
		complaints, err = h.compSvc.ListByOwner(c.Request.Context(), sess.User.Username)
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, complaints)
}

// GetComplaint godoc
// @ID          getComplaint
// @Summary     Get one complaint
// @Description Returns a single complaint. Citizens can only read their own.
// @Tags        Complaints
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer token"
// @Param       id             path    int     true  "Complaint ID"
//
// @Success     200  {object}  domain.Complaint
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Router      /complaints/{id} [get]
func (h *Handlers) GetComplaint(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "complaint id must be an integer")
		return
	}

	complaint, err := h.compSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrComplaintNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "complaint not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	sess := currentSession(c)
	if !sess.User.IsAdmin && complaint.Username != sess.User.Username {
		// Same body as a true miss so ids cannot be probed.
		fail(c, http.StatusNotFound, ErrCodeNotFound, "complaint not found")
		return
	}
	ok(c, http.StatusOK, complaint)
}

// UpdateComplaintRequest is the JSON payload for an officer update. Absent
// fields are left untouched.
type UpdateComplaintRequest struct {
	Status     *string `json:"status,omitempty" example:"status_in_progress"`
	Department *string `json:"department,omitempty" example:"Water Board"`
	AdminNotes *string `json:"admin_notes,omitempty" example:"Crew dispatched"`
}

// UpdateComplaint godoc
// @ID          updateComplaint
// @Summary     Update a complaint (admin)
// @Description Applies status, department, or note changes. Reopening a resolved complaint is permitted.
// @Tags        Complaints
// @Accept      json
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer token (admin)"
// @Param       id             path    int     true  "Complaint ID"
// @Param       body           body    handlers.UpdateComplaintRequest  true  "Fields to change"
//
// @Success     200  {object}  domain.Complaint
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     403  {object}  handlers.ErrorResponse  "Forbidden"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Router      /complaints/{id} [patch]
func (h *Handlers) UpdateComplaint(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "complaint id must be an integer")
		return
	}

	var req UpdateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	in := services.UpdateInput{Department: req.Department, AdminNotes: req.AdminNotes}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		in.Status = &status
	}

	complaint, err := h.compSvc.Update(c.Request.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unknown status value")
		case errors.Is(err, services.ErrComplaintNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "complaint not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, complaint)
}

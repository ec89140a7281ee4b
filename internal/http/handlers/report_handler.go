// Admin reporting endpoints.
//
//   - GET /reports/stats        (aggregate dashboard numbers)
//   - GET /reports/map          (complaint hotspot coordinates)
//   - GET /reports/export.xlsx  (full collection as a workbook)
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/parkview/go-grievance-backend/internal/export"
)

// Stats godoc
// @ID          complaintStats
// @Summary     Complaint statistics (admin)
// @Description Returns totals by status, category, and priority, plus the count of unresolved complaints past their SLA deadline.
// @Tags        Reports
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer token (admin)"
//
// @Success     200  {object}  services.StatsReport
// @Failure     403  {object}  handlers.ErrorResponse  "Forbidden"
// @Router      /reports/stats [get]
func (h *Handlers) Stats(c *gin.Context) {
	report, err := h.compSvc.Stats(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, report)
}

// MapPoints godoc
// @ID          complaintMap
// @Summary     Complaint hotspot map (admin)
// @Description Returns every complaint's pseudo-coordinate with category, status, and priority.
// @Tags        Reports
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer token (admin)"
//
// @Success     200  {array}   services.MapPoint
// @Failure     403  {object}  handlers.ErrorResponse  "Forbidden"
// @Router      /reports/map [get]
func (h *Handlers) MapPoints(c *gin.Context) {
	points, err := h.compSvc.MapPoints(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, points)
}

// ExportComplaints godoc
// @ID          exportComplaints
// @Summary     Export complaints as xlsx (admin)
// @Description Streams the full complaint collection as an Excel workbook with English status and priority labels.
// @Tags        Reports
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//
// @Param       Authorization  header  string  true  "Bearer token (admin)"
//
// @Success     200  {file}    file
// @Failure     403  {object}  handlers.ErrorResponse  "Forbidden"
// @Router      /reports/export.xlsx [get]
func (h *Handlers) ExportComplaints(c *gin.Context) {
	complaints, err := h.compSvc.ListAll(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	data, err := export.ComplaintsWorkbook(complaints)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	filename := fmt.Sprintf("complaints_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

package handlers

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/parkview/go-grievance-backend/internal/services"
)

func TestReports_StatsMapExport(t *testing.T) {
	f := newFixture(t)
	_, asResident := f.sessionFor(t, "resident", false)
	_, asAdmin := f.sessionFor(t, "admin", true)

	r := gin.New()
	r.POST("/complaints", asResident, f.h.SubmitComplaint)
	r.GET("/reports/stats", asAdmin, f.h.Stats)
	r.GET("/reports/map", asAdmin, f.h.MapPoints)
	r.GET("/reports/export.xlsx", asAdmin, f.h.ExportComplaints)

	for _, in := range []SubmitComplaintRequest{
		{Name: "A", House: "1", Category: "Sanitation", Description: "bins overflowing"},
		{Name: "A", House: "1", Category: "Security", Description: "fire near the gate"},
	} {
		if w := serve(r, http.MethodPost, "/complaints", jsonBody(t, in), nil); w.Code != http.StatusCreated {
			t.Fatalf("seed = %d body %s", w.Code, w.Body.String())
		}
	}

	// Stats
	var stats services.StatsReport
	w := serve(r, http.MethodGet, "/reports/stats", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats = %d", w.Code)
	}
	decode(t, w, &stats)
	if stats.Total != 2 {
		t.Fatalf("stats total = %d", stats.Total)
	}

	// Map points carry coordinates
	var points []services.MapPoint
	w = serve(r, http.MethodGet, "/reports/map", nil, nil)
	decode(t, w, &points)
	if len(points) != 2 {
		t.Fatalf("map points = %d", len(points))
	}
	for _, p := range points {
		if p.Latitude == 0 || p.Longitude == 0 {
			t.Fatalf("zero coordinate in %+v", p)
		}
	}

	// Export is a readable workbook with the filename header set
	w = serve(r, http.MethodGet, "/reports/export.xlsx", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("export content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "complaints_") || !strings.Contains(cd, ".xlsx") {
		t.Fatalf("content disposition = %q", cd)
	}
	wb, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer wb.Close()
	rows, err := wb.GetRows("Complaints_Data")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 { // header + two complaints
		t.Fatalf("workbook rows = %d", len(rows))
	}
}

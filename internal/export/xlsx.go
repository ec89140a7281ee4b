// Package export renders the complaint collection as an xlsx workbook for
// the administration's offline reporting. Status and priority cells carry
// their canonical English labels, not the storage keys, and not the
// requesting user's display language.
package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/parkview/go-grievance-backend/internal/domain"
	"github.com/parkview/go-grievance-backend/internal/i18n"
)

// SheetName is the single worksheet the report is written to.
const SheetName = "Complaints_Data"

// timeLayout matches the timestamps used across the collections.
const timeLayout = "2006-01-02T15:04:05.999999"

// header is the fixed column order. Existing downstream spreadsheets key on
// these positions; append only.
var header = []string{
	"id", "created_at", "username", "name", "house", "category", "priority",
	"description", "status", "department", "admin_notes", "attachment",
	"latitude", "longitude", "sla_due",
}

// ComplaintsWorkbook renders complaints into an xlsx file and returns its
// bytes.
func ComplaintsWorkbook(complaints []domain.Complaint) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	if err := writeRow(f, 1, header); err != nil {
		return nil, err
	}
	for i, c := range complaints {
		row := []string{
			strconv.Itoa(c.ID),
			c.CreatedAt.UTC().Format(timeLayout),
			c.Username,
			c.Name,
			c.House,
			string(c.Category),
			i18n.EnglishLabel(string(c.Priority)),
			c.Description,
			i18n.EnglishLabel(string(c.Status)),
			c.Department,
			c.AdminNotes,
			c.Attachment,
			strconv.FormatFloat(c.Latitude, 'f', -1, 64),
			strconv.FormatFloat(c.Longitude, 'f', -1, 64),
			c.SLADue.UTC().Format(timeLayout),
		}
		if err := writeRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, rowNum int, cells []string) error {
	for col, v := range cells {
		name, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(SheetName, name, v); err != nil {
			return fmt.Errorf("set cell %s: %w", name, err)
		}
	}
	return nil
}

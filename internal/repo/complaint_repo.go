// Complaint collection access. The column order is a compatibility surface:
// existing complaint files must keep loading, so encode/decode here mirrors
// the header in store.go field for field.
package repo

import (
	"strconv"

	"github.com/parkview/go-grievance-backend/internal/domain"
)

func encodeComplaint(c domain.Complaint) []string {
	return []string{
		strconv.Itoa(c.ID),
		c.Username,
		c.Name,
		c.House,
		string(c.Category),
		c.Description,
		c.Attachment,
		formatTime(c.CreatedAt),
		string(c.Status),
		c.Department,
		c.AdminNotes,
		strconv.FormatFloat(c.Latitude, 'f', -1, 64),
		strconv.FormatFloat(c.Longitude, 'f', -1, 64),
		formatTime(c.SLADue),
		string(c.Priority),
	}
}

func decodeComplaint(row []string) (domain.Complaint, bool) {
	if len(row) < 15 {
		return domain.Complaint{}, false
	}
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return domain.Complaint{}, false
	}

	status, ok := domain.ParseStatus(row[8])
	if !ok {
		status = domain.StatusOpen
	}
	category, _ := domain.ParseCategory(row[4])
	lat, _ := strconv.ParseFloat(row[11], 64)
	lon, _ := strconv.ParseFloat(row[12], 64)

	return domain.Complaint{
		ID:          id,
		Username:    row[1],
		Name:        row[2],
		House:       row[3],
		Category:    category,
		Description: row[5],
		Attachment:  row[6],
		CreatedAt:   parseTime(row[7]),
		Status:      status,
		Department:  row[9],
		AdminNotes:  row[10],
		Latitude:    lat,
		Longitude:   lon,
		SLADue:      parseTime(row[13]),
		Priority:    domain.ParsePriority(row[14]),
	}, true
}

// ListComplaints returns every complaint in file order. Rows that fail to
// decode (truncated or non-numeric id) are skipped rather than failing the
// scan.
func (s *Store) ListComplaints() ([]domain.Complaint, error) {
	rows, err := s.complaints.readAll()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Complaint, 0, len(rows))
	for _, row := range rows {
		if c, ok := decodeComplaint(row); ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// GetComplaint returns the complaint with the given identifier, or
// ErrNotFound.
func (s *Store) GetComplaint(id int) (*domain.Complaint, error) {
	all, err := s.ListComplaints()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, ErrNotFound
}

// AppendComplaint adds a new complaint record.
func (s *Store) AppendComplaint(c domain.Complaint) error {
	return s.complaints.appendRow(encodeComplaint(c))
}

// RewriteComplaints replaces the whole collection, used for in-place field
// updates (read all, mutate matching rows, write all back).
func (s *Store) RewriteComplaints(cs []domain.Complaint) error {
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, encodeComplaint(c))
	}
	return s.complaints.rewriteAll(rows)
}

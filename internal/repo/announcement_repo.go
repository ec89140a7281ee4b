// Announcement collection access. Announcements are append-only: published
// circulars are never edited or deleted, so there is no rewrite path here.
package repo

import "github.com/parkview/go-grievance-backend/internal/domain"

// ListAnnouncements returns every announcement in file order.
func (s *Store) ListAnnouncements() ([]domain.Announcement, error) {
	rows, err := s.announcements.readAll()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Announcement, 0, len(rows))
	for _, row := range rows {
		if len(row) < 5 {
			continue
		}
		out = append(out, domain.Announcement{
			ID:         row[0],
			Author:     row[1],
			Content:    row[2],
			CreatedAt:  parseTime(row[3]),
			Attachment: row[4],
		})
	}
	return out, nil
}

// AppendAnnouncement publishes a new announcement.
func (s *Store) AppendAnnouncement(a domain.Announcement) error {
	return s.announcements.appendRow([]string{
		a.ID, a.Author, a.Content, formatTime(a.CreatedAt), a.Attachment,
	})
}

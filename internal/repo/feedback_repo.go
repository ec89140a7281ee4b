// Feedback collection access. Feedback rows are immutable once written; the
// one-per-(complaint, username) rule is enforced by the lifecycle service,
// with FeedbackExists as the lookup it relies on.
package repo

import (
	"strconv"

	"github.com/parkview/go-grievance-backend/internal/domain"
)

// ListFeedback returns every feedback record in file order.
func (s *Store) ListFeedback() ([]domain.Feedback, error) {
	rows, err := s.feedback.readAll()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Feedback, 0, len(rows))
	for _, row := range rows {
		if len(row) < 5 {
			continue
		}
		id, err := strconv.Atoi(row[0])
		if err != nil {
			continue
		}
		rating, _ := strconv.Atoi(row[2])
		out = append(out, domain.Feedback{
			ComplaintID: id,
			Username:    row[1],
			Rating:      rating,
			Suggestion:  row[3],
			CreatedAt:   parseTime(row[4]),
		})
	}
	return out, nil
}

// FeedbackExists reports whether username has already submitted feedback for
// the given complaint.
func (s *Store) FeedbackExists(complaintID int, username string) (bool, error) {
	all, err := s.ListFeedback()
	if err != nil {
		return false, err
	}
	for _, f := range all {
		if f.ComplaintID == complaintID && f.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// AppendFeedback adds a new feedback record.
func (s *Store) AppendFeedback(f domain.Feedback) error {
	return s.feedback.appendRow([]string{
		strconv.Itoa(f.ComplaintID),
		f.Username,
		strconv.Itoa(f.Rating),
		f.Suggestion,
		formatTime(f.CreatedAt),
	})
}

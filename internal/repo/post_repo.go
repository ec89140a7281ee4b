// Community post collection access.
package repo

import (
	"strconv"

	"github.com/parkview/go-grievance-backend/internal/domain"
)

func encodePost(p domain.Post) []string {
	return []string{
		p.ID,
		p.Username,
		p.Region,
		p.Content,
		formatTime(p.CreatedAt),
		strconv.Itoa(p.Votes),
		p.Attachment,
	}
}

// ListPosts returns every post in file order. clean is false when any stored
// vote count failed to parse as an integer; such counts are coerced to zero
// and callers are expected to fall back to timestamp-only ordering.
func (s *Store) ListPosts() (posts []domain.Post, clean bool, err error) {
	rows, err := s.posts.readAll()
	if err != nil {
		return nil, false, err
	}
	clean = true
	posts = make([]domain.Post, 0, len(rows))
	for _, row := range rows {
		if len(row) < 7 {
			continue
		}
		votes, verr := strconv.Atoi(row[5])
		if verr != nil {
			votes = 0
			clean = false
		}
		posts = append(posts, domain.Post{
			ID:         row[0],
			Username:   row[1],
			Region:     row[2],
			Content:    row[3],
			CreatedAt:  parseTime(row[4]),
			Votes:      votes,
			Attachment: row[6],
		})
	}
	return posts, clean, nil
}

// AppendPost adds a new community post.
func (s *Store) AppendPost(p domain.Post) error {
	return s.posts.appendRow(encodePost(p))
}

// RewritePosts replaces the whole collection; used for vote-count updates.
func (s *Store) RewritePosts(ps []domain.Post) error {
	rows := make([][]string, 0, len(ps))
	for _, p := range ps {
		rows = append(rows, encodePost(p))
	}
	return s.posts.rewriteAll(rows)
}

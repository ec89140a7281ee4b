package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/parkview/go-grievance-backend/internal/domain"
	"github.com/parkview/go-grievance-backend/internal/repo"
)

// VoteLedger records which posts one login has already voted for. The
// session layer provides the real implementation; the interface keeps this
// service testable without it.
type VoteLedger interface {
	HasVoted(postID string) bool
	MarkVoted(postID string)
}

// BoardService owns the community board: posting, upvoting, and the ranked
// regional view.
type BoardService struct {
	store *repo.Store

	now func() time.Time // test seam
}

// NewBoardService wires a BoardService over store.
func NewBoardService(store *repo.Store) *BoardService {
	return &BoardService{store: store, now: time.Now}
}

// CreatePost publishes a community post in the author's region.
func (s *BoardService) CreatePost(ctx context.Context, username, region, content, attachment string) (*domain.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" && attachment == "" {
		return nil, ErrEmptyPost
	}

	p := domain.Post{
		ID:         uuid.NewString(),
		Username:   username,
		Region:     region,
		Content:    content,
		CreatedAt:  s.now().UTC(),
		Votes:      0,
		Attachment: attachment,
	}
	if err := s.store.AppendPost(p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Vote registers one upvote for postID on behalf of the ledger's owner.
// counted is false when this ledger already voted for the post; repeats are
// not an error, they just don't count. Dedup markers live only in the
// ledger, so a fresh login may vote the same post again.
func (s *BoardService) Vote(ctx context.Context, postID string, ledger VoteLedger) (counted bool, err error) {
	if ledger.HasVoted(postID) {
		return false, nil
	}

	posts, _, err := s.store.ListPosts()
	if err != nil {
		return false, err
	}
	idx := -1
	for i := range posts {
		if posts[i].ID == postID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, ErrPostNotFound
	}

	posts[idx].Votes++
	if err := s.store.RewritePosts(posts); err != nil {
		return false, err
	}
	ledger.MarkVoted(postID)
	return true, nil
}

// Ranked returns region's posts ordered by votes (highest first), newest
// first among equals. When any stored vote count is unparseable the whole
// listing falls back to newest-first ordering, so one corrupt row cannot
// scramble the board.
func (s *BoardService) Ranked(ctx context.Context, region string) ([]domain.Post, error) {
	posts, clean, err := s.store.ListPosts()
	if err != nil {
		return nil, err
	}
	if !clean {
		log.Ctx(ctx).Warn().Msg("corrupt vote counts in post collection, ranking by recency only")
	}

	out := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if p.Region == region {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if clean && out[i].Votes != out[j].Votes {
			return out[i].Votes > out[j].Votes
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

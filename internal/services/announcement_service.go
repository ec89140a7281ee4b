package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/parkview/go-grievance-backend/internal/domain"
	"github.com/parkview/go-grievance-backend/internal/repo"
)

// AnnouncementService publishes and lists official circulars.
type AnnouncementService struct {
	store *repo.Store

	now func() time.Time // test seam
}

// NewAnnouncementService wires an AnnouncementService over store.
func NewAnnouncementService(store *repo.Store) *AnnouncementService {
	return &AnnouncementService{store: store, now: time.Now}
}

// Publish records a new announcement. Announcements are immutable once
// written; there is no edit or delete.
func (s *AnnouncementService) Publish(ctx context.Context, author, content, attachment string) (*domain.Announcement, error) {
	content = strings.TrimSpace(content)
	if content == "" && attachment == "" {
		return nil, ErrEmptyAnnouncement
	}

	a := domain.Announcement{
		ID:         uuid.NewString(),
		Author:     author,
		Content:    content,
		CreatedAt:  s.now().UTC(),
		Attachment: attachment,
	}
	if err := s.store.AppendAnnouncement(a); err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns all announcements, newest first.
func (s *AnnouncementService) List(ctx context.Context) ([]domain.Announcement, error) {
	all, err := s.store.ListAnnouncements()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

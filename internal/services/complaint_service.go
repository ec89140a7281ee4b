package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/parkview/go-grievance-backend/internal/domain"
	"github.com/parkview/go-grievance-backend/internal/geo"
	"github.com/parkview/go-grievance-backend/internal/repo"
	"github.com/parkview/go-grievance-backend/internal/triage"
)

// ComplaintService owns the grievance lifecycle: intake with automatic
// triage, the citizen and admin views, officer updates, and resolution
// feedback.
type ComplaintService struct {
	store *repo.Store

	now func() time.Time // test seam
}

// NewComplaintService wires a ComplaintService over store.
func NewComplaintService(store *repo.Store) *ComplaintService {
	return &ComplaintService{store: store, now: time.Now}
}

// SubmitInput carries a new grievance. Attachment is the stored filename of
// an already uploaded file, or empty.
type SubmitInput struct {
	Username    string
	Name        string
	House       string
	Category    string
	Description string
	Attachment  string
}

// Submit validates and files a new complaint. Priority and SLA deadline are
// assigned here, once, from the category and description; the coordinates
// are a deterministic pseudo-geocode of the house field. Identifiers are
// sequential, one above the current maximum.
func (s *ComplaintService) Submit(ctx context.Context, in SubmitInput) (*domain.Complaint, error) {
	name := strings.TrimSpace(in.Name)
	house := strings.TrimSpace(in.House)
	description := strings.TrimSpace(in.Description)
	if name == "" || house == "" || description == "" {
		return nil, ErrMissingFields
	}
	category, ok := domain.ParseCategory(strings.TrimSpace(in.Category))
	if !ok {
		return nil, ErrInvalidCategory
	}

	all, err := s.store.ListComplaints()
	if err != nil {
		return nil, err
	}
	id := 1
	for _, c := range all {
		if c.ID >= id {
			id = c.ID + 1
		}
	}

	now := s.now().UTC()
	priority, slaDue := triage.Classify(category, description, now)
	lat, lon := geo.PseudoLocate(house)

	c := domain.Complaint{
		ID:          id,
		Username:    in.Username,
		Name:        name,
		House:       house,
		Category:    category,
		Description: description,
		Attachment:  in.Attachment,
		CreatedAt:   now,
		Status:      domain.StatusOpen,
		Latitude:    lat,
		Longitude:   lon,
		SLADue:      slaDue,
		Priority:    priority,
	}
	if err := s.store.AppendComplaint(c); err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().
		Int("complaint_id", c.ID).
		Str("category", string(c.Category)).
		Str("priority", string(c.Priority)).
		Msg("complaint filed")
	return &c, nil
}

// Get returns one complaint by id.
func (s *ComplaintService) Get(ctx context.Context, id int) (*domain.Complaint, error) {
	c, err := s.store.GetComplaint(id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrComplaintNotFound
	}
	return c, err
}

// ListByOwner returns username's complaints, newest first.
func (s *ComplaintService) ListByOwner(ctx context.Context, username string) ([]domain.Complaint, error) {
	all, err := s.store.ListComplaints()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Complaint, 0)
	for _, c := range all {
		if c.Username == username {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// ListPrioritized returns every complaint ordered for the officer queue:
// higher priority first, oldest first within a tier.
func (s *ComplaintService) ListPrioritized(ctx context.Context) ([]domain.Complaint, error) {
	all, err := s.store.ListComplaints()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		ri, rj := all[i].Priority.Rank(), all[j].Priority.Rank()
		if ri != rj {
			return ri > rj
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	return all, nil
}

// UpdateInput carries an officer's changes to one complaint. Nil pointers
// leave the field untouched.
type UpdateInput struct {
	Status     *domain.Status
	Department *string
	AdminNotes *string
}

// Update applies an officer's changes to a complaint. Moving a resolved
// complaint back to an earlier status is permitted (reopening), and logged.
func (s *ComplaintService) Update(ctx context.Context, id int, in UpdateInput) (*domain.Complaint, error) {
	if in.Status != nil && !in.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	all, err := s.store.ListComplaints()
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range all {
		if all[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrComplaintNotFound
	}

	c := &all[idx]
	if in.Status != nil && *in.Status != c.Status {
		if c.Status == domain.StatusResolved {
			log.Ctx(ctx).Info().
				Int("complaint_id", c.ID).
				Str("new_status", string(*in.Status)).
				Msg("resolved complaint reopened")
		}
		c.Status = *in.Status
	}
	if in.Department != nil {
		c.Department = strings.TrimSpace(*in.Department)
	}
	if in.AdminNotes != nil {
		c.AdminNotes = strings.TrimSpace(*in.AdminNotes)
	}

	if err := s.store.RewriteComplaints(all); err != nil {
		return nil, err
	}
	updated := all[idx]
	return &updated, nil
}

// AttachFeedback records a citizen's satisfaction rating for a resolved
// complaint. Only the complaint's owner may rate it, at most once, and only
// while it is resolved; a later reopening does not retract feedback already
// given.
func (s *ComplaintService) AttachFeedback(ctx context.Context, complaintID int, username string, rating int, suggestion string) (*domain.Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	c, err := s.store.GetComplaint(complaintID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrComplaintNotFound
	}
	if err != nil {
		return nil, err
	}
	if c.Username != username {
		return nil, ErrComplaintNotFound
	}
	if c.Status != domain.StatusResolved {
		return nil, ErrComplaintNotResolved
	}

	exists, err := s.store.FeedbackExists(complaintID, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateFeedback
	}

	f := domain.Feedback{
		ComplaintID: complaintID,
		Username:    username,
		Rating:      rating,
		Suggestion:  strings.TrimSpace(suggestion),
		CreatedAt:   s.now().UTC(),
	}
	if err := s.store.AppendFeedback(f); err != nil {
		return nil, err
	}
	return &f, nil
}

// ListFeedback returns every feedback record, newest first, for the admin
// review screen.
func (s *ComplaintService) ListFeedback(ctx context.Context) ([]domain.Feedback, error) {
	all, err := s.store.ListFeedback()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

// FeedbackSummary aggregates the feedback collection.
type FeedbackSummary struct {
	Count         int     `json:"count"`
	AverageRating float64 `json:"average_rating"`
}

// SummarizeFeedback returns the feedback count and mean rating. An empty
// collection yields a zero summary.
func (s *ComplaintService) SummarizeFeedback(ctx context.Context) (FeedbackSummary, error) {
	all, err := s.store.ListFeedback()
	if err != nil {
		return FeedbackSummary{}, err
	}
	out := FeedbackSummary{Count: len(all)}
	if len(all) == 0 {
		return out, nil
	}
	total := 0
	for _, f := range all {
		total += f.Rating
	}
	out.AverageRating = float64(total) / float64(len(all))
	return out, nil
}

// StatsReport is the aggregate view behind the admin dashboard.
type StatsReport struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"by_status"`
	ByCategory map[string]int `json:"by_category"`
	ByPriority map[string]int `json:"by_priority"`
	Overdue    int            `json:"overdue"`
}

// Stats aggregates the complaint collection. Overdue counts unresolved
// complaints whose SLA deadline has passed.
func (s *ComplaintService) Stats(ctx context.Context) (StatsReport, error) {
	all, err := s.store.ListComplaints()
	if err != nil {
		return StatsReport{}, err
	}
	report := StatsReport{
		Total:      len(all),
		ByStatus:   make(map[string]int),
		ByCategory: make(map[string]int),
		ByPriority: make(map[string]int),
	}
	now := s.now().UTC()
	for _, c := range all {
		report.ByStatus[string(c.Status)]++
		report.ByCategory[string(c.Category)]++
		report.ByPriority[string(c.Priority)]++
		if c.Status != domain.StatusResolved && !c.SLADue.IsZero() && c.SLADue.Before(now) {
			report.Overdue++
		}
	}
	return report, nil
}

// MapPoint is one complaint reduced to what the hotspot map needs.
type MapPoint struct {
	ID        int     `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Category  string  `json:"category"`
	Status    string  `json:"status"`
	Priority  string  `json:"priority"`
}

// MapPoints projects every complaint onto its pseudo-coordinate for the
// admin hotspot map.
func (s *ComplaintService) MapPoints(ctx context.Context) ([]MapPoint, error) {
	all, err := s.store.ListComplaints()
	if err != nil {
		return nil, err
	}
	out := make([]MapPoint, 0, len(all))
	for _, c := range all {
		out = append(out, MapPoint{
			ID:        c.ID,
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
			Category:  string(c.Category),
			Status:    string(c.Status),
			Priority:  string(c.Priority),
		})
	}
	return out, nil
}

// ListAll returns the raw complaint collection in file order, for export.
func (s *ComplaintService) ListAll(ctx context.Context) ([]domain.Complaint, error) {
	return s.store.ListComplaints()
}

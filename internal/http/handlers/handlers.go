// Handler wiring. Handlers are transport-thin: they validate input, call the
// service layer, and translate results (sentinel errors included) into HTTP
// responses. Business rules stay out of this package.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/parkview/go-grievance-backend/internal/domain"
	"github.com/parkview/go-grievance-backend/internal/http/middleware"
	"github.com/parkview/go-grievance-backend/internal/i18n"
	"github.com/parkview/go-grievance-backend/internal/services"
	"github.com/parkview/go-grievance-backend/internal/session"
	"github.com/parkview/go-grievance-backend/internal/uploads"
)

//
// Service contracts (context-aware)
//

// AuthService verifies login attempts.
type AuthService interface {
	Authenticate(ctx context.Context, username, password, areaCode string) (*domain.User, error)
}

// ComplaintService covers the grievance lifecycle consumed by HTTP handlers.
type ComplaintService interface {
	Submit(ctx context.Context, in services.SubmitInput) (*domain.Complaint, error)
	Get(ctx context.Context, id int) (*domain.Complaint, error)
	ListByOwner(ctx context.Context, username string) ([]domain.Complaint, error)
	ListPrioritized(ctx context.Context) ([]domain.Complaint, error)
	ListAll(ctx context.Context) ([]domain.Complaint, error)
	Update(ctx context.Context, id int, in services.UpdateInput) (*domain.Complaint, error)
	AttachFeedback(ctx context.Context, complaintID int, username string, rating int, suggestion string) (*domain.Feedback, error)
	ListFeedback(ctx context.Context) ([]domain.Feedback, error)
	SummarizeFeedback(ctx context.Context) (services.FeedbackSummary, error)
	Stats(ctx context.Context) (services.StatsReport, error)
	MapPoints(ctx context.Context) ([]services.MapPoint, error)
}

// BoardService covers the community board.
type BoardService interface {
	CreatePost(ctx context.Context, username, region, content, attachment string) (*domain.Post, error)
	Vote(ctx context.Context, postID string, ledger services.VoteLedger) (bool, error)
	Ranked(ctx context.Context, region string) ([]domain.Post, error)
}

// AnnouncementService covers official circulars.
type AnnouncementService interface {
	Publish(ctx context.Context, author, content, attachment string) (*domain.Announcement, error)
	List(ctx context.Context) ([]domain.Announcement, error)
}

// Handlers groups every HTTP endpoint of the portal behind its service
// dependencies.
type Handlers struct {
	authSvc  AuthService
	compSvc  ComplaintService
	boardSvc BoardService
	annSvc   AnnouncementService
	sessions *session.Manager
	uploads  *uploads.Store
	region   string
}

// New constructs a Handlers instance bound to the given services. region is
// the single service region complaints and posts are scoped to.
func New(
	authSvc AuthService,
	compSvc ComplaintService,
	boardSvc BoardService,
	annSvc AnnouncementService,
	sessions *session.Manager,
	uploadStore *uploads.Store,
	region string,
) *Handlers {
	return &Handlers{
		authSvc:  authSvc,
		compSvc:  compSvc,
		boardSvc: boardSvc,
		annSvc:   annSvc,
		sessions: sessions,
		uploads:  uploadStore,
		region:   region,
	}
}

// lang negotiates the response language from the Accept-Language header.
func lang(c *gin.Context) string {
	return i18n.MatchLanguage(c.GetHeader("Accept-Language"))
}

// currentSession returns the authenticated session attached by the auth
// middleware. Handlers behind RequireAuth can rely on a non-nil result.
func currentSession(c *gin.Context) *session.Session {
	return middleware.SessionFrom(c)
}

// Community board endpoints.
//
//   - GET  /board/posts            (ranked regional listing, paginated)
//   - POST /board/posts            (publish a post)
//   - POST /board/posts/{id}/vote  (upvote, deduplicated per session)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parkview/go-grievance-backend/internal/domain"
	"github.com/parkview/go-grievance-backend/internal/i18n"
	"github.com/parkview/go-grievance-backend/internal/services"
	"github.com/parkview/go-grievance-backend/internal/utils"
)

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// ListPostsResponse wraps a page of ranked posts.
type ListPostsResponse struct {
	Posts      []domain.Post `json:"posts"`
	Pagination Pagination    `json:"pagination"`
}

// clampPagination parses and bounds page and page_size query params.
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.ClampInt(utils.AtoiDefault(c.Query("page_size"), defaultPageSize), 1, maxPageSize)
	return
}

// ListPosts godoc
// @ID          listPosts
// @Summary     List community posts (ranked)
// @Description Returns the service region's posts ordered by votes, newest first among equals.
// @Tags        Board
// @Produce     json
//
// @Param       Authorization  header  string  true   "Bearer token"
// @Param       page           query   int     false  "Page number"     minimum(1) default(1)
// @Param       page_size      query   int     false  "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object}  handlers.ListPostsResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /board/posts [get]
func (h *Handlers) ListPosts(c *gin.Context) {
	posts, err := h.boardSvc.Ranked(c.Request.Context(), h.region)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	page, pageSize := clampPagination(c)
	total := len(posts)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	ok(c, http.StatusOK, ListPostsResponse{
		Posts: posts[start:end],
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// CreatePostRequest is the JSON payload for publishing a post. Attachment,
// when set, must be a stored name from an image upload.
type CreatePostRequest struct {
	Content    string `json:"content" example:"Volunteers needed for the lake cleanup on Sunday"`
	Attachment string `json:"attachment,omitempty"`
}

// CreatePostResponse wraps the stored post with a localized confirmation.
type CreatePostResponse struct {
	Message string      `json:"message"`
	Post    domain.Post `json:"post"`
}

// CreatePost godoc
// @ID          createPost
// @Summary     Publish a community post
// @Description Publishes a post in the service region on behalf of the authenticated citizen.
// @Tags        Board
// @Accept      json
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer token"
// @Param       body           body    handlers.CreatePostRequest  true  "Post payload"
//
// @Success     201  {object}  handlers.CreatePostResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Empty submission"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /board/posts [post]
func (h *Handlers) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeValidationFailed, i18n.T(lang(c), "post_error"))
		return
	}

	sess := currentSession(c)
	post, err := h.boardSvc.CreatePost(c.Request.Context(), sess.User.Username, h.region, req.Content, req.Attachment)
	if err != nil {
		if errors.Is(err, services.ErrEmptyPost) {
			fail(c, http.StatusBadRequest, ErrCodeValidationFailed, i18n.T(lang(c), "post_error"))
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	ok(c, http.StatusCreated, CreatePostResponse{
		Message: i18n.T(lang(c), "post_success"),
		Post:    *post,
	})
}

// VoteResponse reports whether the vote was counted. A repeat vote in the
// same session is not an error, it simply does not count.
type VoteResponse struct {
	Counted bool   `json:"counted"`
	Message string `json:"message"`
}

// VotePost godoc
// @ID          votePost
// @Summary     Upvote a community post
// @Description Registers one upvote. Repeats within the same session are acknowledged but not counted.
// @Tags        Board
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer token"
// @Param       id             path    string  true  "Post ID (UUID)"
//
// @Success     200  {object}  handlers.VoteResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse  "Post not found"
// @Router      /board/posts/{id}/vote [post]
func (h *Handlers) VotePost(c *gin.Context) {
	sess := currentSession(c)
	counted, err := h.boardSvc.Vote(c.Request.Context(), c.Param("id"), sess)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "post not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	key := "vote_counted"
	if !counted {
		key = "vote_repeat"
	}
	ok(c, http.StatusOK, VoteResponse{Counted: counted, Message: i18n.T(lang(c), key)})
}

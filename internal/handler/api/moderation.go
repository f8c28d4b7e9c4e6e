package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	reqdto "pricewatch/internal/handler/dto/request"
	resdto "pricewatch/internal/handler/dto/response"
	"pricewatch/internal/handler/httperr"
	"pricewatch/internal/handler/middleware"
	"pricewatch/internal/pkg/errs"
	"pricewatch/internal/usecase/commands"
	"pricewatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errors.New("no authenticated principal")

type ModerationHandler struct {
	cmds commands.ModerationCommands
	q    queries.SubmissionQueries
}

func NewModerationHandler(cmds commands.ModerationCommands, q queries.SubmissionQueries) *ModerationHandler {
	return &ModerationHandler{cmds: cmds, q: q}
}

// @Summary List pending submissions
// @Description Pending submissions, newest first, with keyset pagination
// @Tags moderation
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.SubmissionListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /moderation/submissions [get]
func (h *ModerationHandler) ListPending(c *gin.Context) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.ListPendingPage(c.Request.Context(), cursor, limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubmissionList(items, next))
}

// @Summary Approve submission
// @Description Approve a pending submission: merge its price into the product ledger and credit the submitter
// @Tags moderation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Param request body reqdto.ReviewSubmissionRequest false "Version the moderator saw"
// @Success 200 {object} resdto.ModerationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /moderation/submissions/{id}/approve [post]
func (h *ModerationHandler) Approve(c *gin.Context) {
	h.review(c, h.cmds.Approve)
}

// @Summary Reject submission
// @Description Reject a pending submission; no ledger or reward change
// @Tags moderation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Param request body reqdto.ReviewSubmissionRequest false "Version the moderator saw"
// @Success 200 {object} resdto.ModerationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /moderation/submissions/{id}/reject [post]
func (h *ModerationHandler) Reject(c *gin.Context) {
	h.review(c, h.cmds.Reject)
}

type reviewFunc func(ctx context.Context, req commands.ReviewRequest) (*commands.ReviewResult, error)

func (h *ModerationHandler) review(c *gin.Context, do reviewFunc) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	moderator, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var body reqdto.ReviewSubmissionRequest
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := do(c.Request.Context(), commands.ReviewRequest{
		SubmissionID:    id,
		ExpectedVersion: body.Version,
		Moderator:       moderator,
	})
	if errs.Is(err, errs.ErrInvalidState) {
		// a repeated decision is not a failure; show what is stored
		view, qerr := h.q.GetByID(c.Request.Context(), id)
		if qerr != nil {
			httperr.AbortWithDomainError(c, qerr)
			return
		}
		c.JSON(http.StatusOK, resdto.AlreadyReviewed(view))
		return
	}
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewResult(result))
}

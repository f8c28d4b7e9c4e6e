package api

import (
	"net/http"

	"pricewatch/internal/domain/submission"
	reqdto "pricewatch/internal/handler/dto/request"
	resdto "pricewatch/internal/handler/dto/response"
	"pricewatch/internal/handler/httperr"
	"pricewatch/internal/handler/middleware"
	"pricewatch/internal/usecase/commands"
	"pricewatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubmissionHandler struct {
	cmds commands.SubmissionCommands
	q    queries.SubmissionQueries
}

func NewSubmissionHandler(cmds commands.SubmissionCommands, q queries.SubmissionQueries) *SubmissionHandler {
	return &SubmissionHandler{cmds: cmds, q: q}
}

// @Summary Submit a price
// @Description Record a price observation for moderation
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSubmissionRequest true "Price observation"
// @Success 201 {object} resdto.CreateSubmissionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /submissions [post]
func (h *SubmissionHandler) Create(c *gin.Context) {
	submitter, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), cmd, submitter)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateSubmissionResponse{
		ID:      result.SubmissionID.String(),
		Status:  submission.StatusPending.String(),
		Version: result.Version,
	})
}

// @Summary Get submission
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Success 200 {object} resdto.SubmissionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /submissions/{id} [get]
func (h *SubmissionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubmissionView(view))
}

// @Summary Purge submission
// @Description Delete a submission outright (admin only)
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/submissions/{id} [delete]
func (h *SubmissionHandler) Purge(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	if err := h.cmds.Purge(c.Request.Context(), id, actor); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

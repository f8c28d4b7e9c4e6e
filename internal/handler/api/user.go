package api

import (
	"net/http"
	"strconv"

	"pricewatch/internal/domain/user"
	resdto "pricewatch/internal/handler/dto/response"
	"pricewatch/internal/handler/httperr"
	"pricewatch/internal/handler/middleware"
	"pricewatch/internal/pkg/errs"
	"pricewatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	q queries.UserQueries
}

func NewUserHandler(q queries.UserQueries) *UserHandler {
	return &UserHandler{q: q}
}

// @Summary User rewards
// @Description Points and contribution count; shoppers may only read their own
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.RewardResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/{id}/rewards [get]
func (h *UserHandler) GetRewards(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return
	}
	callerID, _ := middleware.GetUserID(c)
	if callerID != userID && !middleware.HasRoleAtLeast(c, user.RoleModerator) {
		httperr.AbortWithDomainError(c, errs.Mark(errs.New("rewards of another user"), errs.ErrForbidden))
		return
	}
	view, err := h.q.GetRewards(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRewardView(view))
}

// @Summary Leaderboard
// @Description Top contributors by points
// @Tags users
// @Produce json
// @Param limit query int false "Max entries (default 10)"
// @Success 200 {array} resdto.LeaderboardEntryResponse
// @Router /leaderboard [get]
func (h *UserHandler) Leaderboard(c *gin.Context) {
	limit := queries.DefaultLeaderboardSize
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = iv
		}
	}
	rows, err := h.q.TopContributors(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLeaderboard(rows))
}

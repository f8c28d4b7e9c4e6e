//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"pricewatch/internal/domain/user"
	"pricewatch/internal/handler/api"
	resdto "pricewatch/internal/handler/dto/response"
	"pricewatch/internal/pkg/errs"
	"pricewatch/internal/usecase/queries"
	"pricewatch/tests/common/builder"
	"pricewatch/tests/common/httptest"
	queriesmock "pricewatch/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReadHandlersTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	userQueries *queriesmock.MockUserQueries
	priceQuery  *queriesmock.MockPriceLedgerQueries
	caller      user.Principal
}

func (s *ReadHandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.userQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.priceQuery = queriesmock.NewMockPriceLedgerQueries(s.mockCtrl)
	s.caller = builder.NewUserBuilder().BuildPrincipal()

	uh := api.NewUserHandler(s.userQueries)
	ph := api.NewPriceLedgerHandler(s.priceQuery)
	s.router.GET("/products/:id/prices", ph.Get)
	s.router.GET("/leaderboard", uh.Leaderboard)
	s.router.GET("/users/:id/rewards", fakeAuth(&s.caller), uh.GetRewards)
}

func (s *ReadHandlersTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReadHandlersSuite(t *testing.T) {
	suite.Run(t, new(ReadHandlersTestSuite))
}

func (s *ReadHandlersTestSuite) TestGetRewards() {
	s.Run("success: own rewards", func() {
		view := builder.NewUserBuilder().With(func(u *builder.UserBuilder) {
			u.ID = s.caller.ID
			u.Points, u.ContributionCount = 20, 2
		}).BuildRewardView()
		s.userQueries.EXPECT().GetRewards(gomock.Any(), s.caller.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+s.caller.ID.String()+"/rewards", nil, "token")

		var body resdto.RewardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(20), body.Points)
		s.Equal(int64(2), body.ContributionCount)
	})

	s.Run("error: 403 for another shopper", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+uuid.NewString()+"/rewards", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("success: moderator reads anyone", func() {
		prev := s.caller
		s.caller.Role = user.RoleModerator
		defer func() { s.caller = prev }()

		other := builder.NewUserBuilder().BuildRewardView()
		s.userQueries.EXPECT().GetRewards(gomock.Any(), other.UserID).Return(other, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+other.UserID.String()+"/rewards", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 for unknown user", func() {
		s.userQueries.EXPECT().GetRewards(gomock.Any(), s.caller.ID).Return(nil, errs.Mark(errs.New("no user"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+s.caller.ID.String()+"/rewards", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *ReadHandlersTestSuite) TestLeaderboard() {
	rows := []*queries.RewardView{
		builder.NewUserBuilder().With(func(u *builder.UserBuilder) { u.DisplayName, u.Points = "alice", 30 }).BuildRewardView(),
		builder.NewUserBuilder().With(func(u *builder.UserBuilder) { u.DisplayName, u.Points = "bob", 10 }).BuildRewardView(),
	}
	s.userQueries.EXPECT().TopContributors(gomock.Any(), 5).Return(rows, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/leaderboard?limit=5", nil, "")

	var body []resdto.LeaderboardEntryResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 2)
	s.Equal("alice", body[0].DisplayName)
}

func (s *ReadHandlersTestSuite) TestProductPrices() {
	productID := uuid.New()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	s.Run("success: entries and cheapest", func() {
		entry := func(id string, price float64) *queries.PriceEntryView {
			return &queries.PriceEntryView{SupermarketID: id, Price: price, UpdatedAt: at, Verified: true}
		}
		s.priceQuery.EXPECT().GetByProduct(gomock.Any(), productID).Return(&queries.PriceLedgerView{
			ProductID:   productID,
			Entries:     []*queries.PriceEntryView{entry("carrefour", 62), entry("naivas", 65)},
			Cheapest:    entry("carrefour", 62),
			LastUpdated: at,
			Version:     2,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/"+productID.String()+"/prices", nil, "")

		var body resdto.PriceLedgerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Entries, 2)
		s.Require().NotNil(body.Cheapest)
		s.Equal("carrefour", body.Cheapest.SupermarketID)
		s.Equal(int64(2), body.Version)
	})

	s.Run("success: empty ledger", func() {
		s.priceQuery.EXPECT().GetByProduct(gomock.Any(), productID).Return(&queries.PriceLedgerView{
			ProductID: productID,
			Entries:   []*queries.PriceEntryView{},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/"+productID.String()+"/prices", nil, "")

		var body resdto.PriceLedgerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Entries)
		s.Nil(body.Cheapest)
		s.Nil(body.LastUpdated)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/xyz/prices", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid product id")
	})
}

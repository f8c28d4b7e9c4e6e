//go:build unit

package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"pricewatch/internal/domain/user"
	"pricewatch/internal/handler/api"
	resdto "pricewatch/internal/handler/dto/response"
	"pricewatch/internal/pkg/errs"
	"pricewatch/internal/usecase/commands"
	"pricewatch/tests/common/builder"
	"pricewatch/tests/common/httptest"
	"pricewatch/tests/common/testutil"
	commandsmock "pricewatch/tests/mock/commands"
	queriesmock "pricewatch/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SubmissionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSubmissionCommands
	mockQueries  *queriesmock.MockSubmissionQueries
	caller       user.Principal
}

func (s *SubmissionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSubmissionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSubmissionQueries(s.mockCtrl)
	h := api.NewSubmissionHandler(s.mockCommands, s.mockQueries)
	s.caller = builder.NewUserBuilder().BuildPrincipal()

	auth := fakeAuth(&s.caller)
	s.router.POST("/submissions", auth, h.Create)
	s.router.GET("/submissions/:id", auth, h.Get)
	s.router.DELETE("/admin/submissions/:id", auth, h.Purge)
}

func (s *SubmissionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSubmissionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SubmissionHandlerTestSuite))
}

type testCaseSubmission struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *SubmissionHandlerTestSuite) TestCreate() {
	url := "/submissions"
	reqBody := builder.NewSubmissionBuilder().BuildCreateRequestDTO()
	created := &commands.CreateSubmissionResult{SubmissionID: uuid.New(), Version: 1}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.caller).
			DoAndReturn(func(_ context.Context, cmd commands.CreateSubmissionRequest, _ user.Principal) (*commands.CreateSubmissionResult, error) {
				s.Equal(reqBody.ProductID, cmd.ProductID)
				s.Equal("naivas", cmd.SupermarketID)
				s.Equal(65.0, cmd.Price)
				s.Require().NotNil(cmd.Latitude)
				return created, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var body resdto.CreateSubmissionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.SubmissionID.String(), body.ID)
		s.Equal("pending", body.Status)
		s.Equal(int64(1), body.Version)
	})

	cases := []testCaseSubmission{
		{name: "missing field: product_id", mutate: testutil.Field("product_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: supermarket_id", mutate: testutil.Field("supermarket_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: price", mutate: testutil.Field("price", nil), expectCode: http.StatusBadRequest},
		{name: "zero price", mutate: testutil.Field("price", 0), expectCode: http.StatusBadRequest},
		{name: "negative price", mutate: testutil.Field("price", -3), expectCode: http.StatusBadRequest},
		{name: "latitude out of range", mutate: testutil.Field("latitude", 95), expectCode: http.StatusBadRequest},
		{name: "branch too long", mutate: testutil.Field("branch", strings.Repeat("b", 201)), expectCode: http.StatusBadRequest},
		{name: "no coordinates", mutate: func(m map[string]any) { delete(m, "latitude"); delete(m, "longitude") }, expectCode: http.StatusCreated},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			if tc.expectCode == http.StatusCreated {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(created, nil)
			}
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "token")
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("error: 400 when the domain rejects the slug", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("supermarket id must be a lowercase slug"), errs.ErrValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("supermarket_id", "Naivas!")), "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *SubmissionHandlerTestSuite) TestGet() {
	view := builder.NewSubmissionBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/submissions/"+view.ID.String(), nil, "token")

		var body resdto.SubmissionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal(view.SubmitterID.String(), body.SubmitterID)
		s.Equal("naivas", body.SupermarketID)
		s.Equal(int64(1), body.Version)
	})

	s.Run("error: 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.Mark(errs.New("missing"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/submissions/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestPurge
// ================================================================================

func (s *SubmissionHandlerTestSuite) TestPurge() {
	id := uuid.New()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Purge(gomock.Any(), id, s.caller).Return(nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/submissions/"+id.String(), nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().Purge(gomock.Any(), id, gomock.Any()).Return(errs.Mark(errs.New("missing"), errs.ErrNotFound))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/submissions/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

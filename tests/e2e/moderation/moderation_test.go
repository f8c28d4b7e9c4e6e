//go:build e2e

package moderation_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"pricewatch/internal/domain/submission"
	"pricewatch/internal/domain/user"
	"pricewatch/internal/handler/dto/request"
	"pricewatch/internal/handler/dto/response"
	"pricewatch/internal/usecase/shared"
	"pricewatch/tests/common/authtest"
	"pricewatch/tests/common/builder"
	"pricewatch/tests/common/dbtest"
	"pricewatch/tests/common/httptest"
	"pricewatch/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	submissionsURL = "/api/submissions"
	pendingURL     = "/api/moderation/submissions"
	approveURL     = "/api/moderation/submissions/%s/approve"
	rejectURL      = "/api/moderation/submissions/%s/reject"
	purgeURL       = "/api/admin/submissions/%s"
	pricesURL      = "/api/products/%s/prices"
	rewardsURL     = "/api/users/%s/rewards"
	leaderboardURL = "/api/leaderboard"
)

type ModerationSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *ModerationSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *ModerationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestModerationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ModerationSuite))
}

// submit creates a submission through the API and returns its id.
func (s *ModerationSuite) submit(t *testing.T, token string, b *builder.SubmissionBuilder) string {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, submissionsURL, b.BuildCreateRequestDTO(), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.CreateSubmissionResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	require.NotEmpty(t, created.ID)
	return created.ID
}

func (s *ModerationSuite) review(t *testing.T, url, id, token string, body any) (int, response.ModerationResponse) {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(url, id), body, token)
	var res response.ModerationResponse
	if w.Code == http.StatusOK {
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	}
	return w.Code, res
}

func (s *ModerationSuite) prices(t *testing.T, productID uuid.UUID) response.PriceLedgerResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(pricesURL, productID), nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res response.PriceLedgerResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res
}

// =============================================================================
// TestSubmit
// =============================================================================

func (s *ModerationSuite) TestSubmit() {
	s.Run("Normal case: shopper submission is stored pending at version 1", func() {
		t := s.T()
		shopper, token := s.jwt.NewPrincipalToken(t, "Wanjiku", user.RoleShopper)
		b := builder.NewSubmissionBuilder()

		id := s.submit(t, token, b)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, submissionsURL+"/"+id, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var got response.SubmissionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))

		want := &response.SubmissionResponse{
			SubmitterID:          shopper.ID.String(),
			SubmitterDisplayName: "Wanjiku",
			ProductID:            b.ProductID.String(),
			ProductName:          b.ProductName,
			SupermarketID:        "naivas",
			Branch:               "Westlands",
			Price:                65,
			Latitude:             b.Latitude,
			Longitude:            b.Longitude,
			Status:               "pending",
			Version:              1,
		}
		opts := cmpopts.IgnoreFields(response.SubmissionResponse{}, "ID", "CreatedAt")
		if diff := cmp.Diff(want, &got, opts); diff != "" {
			t.Errorf("submission mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: invalid supermarket id is rejected", func() {
		t := s.T()
		_, token := s.jwt.NewPrincipalToken(t, "Wanjiku", user.RoleShopper)
		body := builder.NewSubmissionBuilder().WithSupermarket("Not A Slug!", 65).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, submissionsURL, body, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
	})

	s.Run("Error case: missing token is unauthorized", func() {
		t := s.T()
		body := builder.NewSubmissionBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, submissionsURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})
}

// =============================================================================
// TestAuthentication
// =============================================================================

func (s *ModerationSuite) TestAuthentication() {
	s.Run("Normal case: access token cookie authenticates the caller", func() {
		t := s.T()
		shopper, token := s.jwt.NewPrincipalToken(t, "Wanjiku", user.RoleShopper)
		cookies := []*http.Cookie{{Name: "access_token", Value: token}}

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, fmt.Sprintf(rewardsURL, shopper.ID), nil, cookies, "")
		require.NotEqual(t, http.StatusUnauthorized, w.Code, w.Body.String())
		httptest.AssertHeaders(t, w, map[string]string{"Content-Type": "application/json; charset=utf-8"})
	})

	s.Run("Error case: expired token is unauthorized", func() {
		t := s.T()
		shopper, _ := s.jwt.NewPrincipalToken(t, "Wanjiku", user.RoleShopper)
		expired := s.jwt.CreateExpiredToken(t, shopper)

		body := builder.NewSubmissionBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, submissionsURL, body, expired)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// =============================================================================
// TestApprove
// =============================================================================

func (s *ModerationSuite) TestApprove() {
	s.Run("Normal case: approval updates ledger, rewards and outbox together", func() {
		t := s.T()
		shopper, shopperToken := s.jwt.NewPrincipalToken(t, "Wanjiku", user.RoleShopper)
		_, modToken := s.jwt.NewPrincipalToken(t, "Otieno", user.RoleModerator)
		b := builder.NewSubmissionBuilder()
		id := s.submit(t, shopperToken, b)

		code, res := s.review(t, approveURL, id, modToken, request.ReviewSubmissionRequest{})
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "approved", res.Status)
		require.Equal(t, int64(2), res.Version)
		require.False(t, res.AlreadyReviewed)

		ledger := s.prices(t, b.ProductID)
		require.Len(t, ledger.Entries, 1)
		require.NotNil(t, ledger.Cheapest)
		require.Equal(t, "naivas", ledger.Cheapest.SupermarketID)
		require.InDelta(t, 65.0, ledger.Cheapest.Price, 1e-9)
		require.Equal(t, "Westlands", ledger.Cheapest.Location)
		require.True(t, ledger.Cheapest.Verified)

		rewards := dbtest.GetUserRewards(t, s.DB, shopper.ID)
		require.Equal(t, dbtest.UserRewards{Points: 10, ContributionCount: 1}, rewards)
		require.Equal(t, 1, dbtest.CountOutboxEvents(t, s.DB, shared.OutboxKindPriceApproved))

		settled, err := s.Relay.RunOnce(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, settled)
	})

	s.Run("Normal case: second approval is reported as already reviewed and credits nothing", func() {
		t := s.T()
		shopper, shopperToken := s.jwt.NewPrincipalToken(t, "Wanjiku", user.RoleShopper)
		_, modToken := s.jwt.NewPrincipalToken(t, "Otieno", user.RoleModerator)
		id := s.submit(t, shopperToken, builder.NewSubmissionBuilder())

		code, _ := s.review(t, approveURL, id, modToken, nil)
		require.Equal(t, http.StatusOK, code)

		code, res := s.review(t, approveURL, id, modToken, nil)
		require.Equal(t, http.StatusOK, code)
		require.True(t, res.AlreadyReviewed)
		require.NotNil(t, res.Submission)
		require.Equal(t, "approved", res.Submission.Status)

		require.Equal(t, dbtest.UserRewards{Points: 10, ContributionCount: 1}, dbtest.GetUserRewards(t, s.DB, shopper.ID))
		require.Equal(t, 1, dbtest.CountOutboxEvents(t, s.DB, shared.OutboxKindPriceApproved))
	})

	s.Run("Normal case: approvals for other supermarkets merge and cheapest wins", func() {
		t := s.T()
		_, shopperToken := s.jwt.NewPrincipalToken(t, "Wanjiku", user.RoleShopper)
		_, modToken := s.jwt.NewPrincipalToken(t, "Otieno", user.RoleModerator)
		productID := uuid.New()

		for _, sm := range []struct {
			id    string
			price float64
		}{{"naivas", 70}, {"magunas", 55}, {"quickmart", 62}} {
			id := s.submit(t, shopperToken, builder.NewSubmissionBuilder().WithProduct(productID).WithSupermarket(sm.id, sm.price))
			code, _ := s.review(t, approveURL, id, modToken, nil)
			require.Equal(t, http.StatusOK, code)
		}

		ledger := s.prices(t, productID)
		require.Len(t, ledger.Entries, 3)
		require.Equal(t, "magunas", ledger.Cheapest.SupermarketID)
		require.Equal(t, int64(3), ledger.Version)
	})

	s.Run("Error case: stale version is a conflict and nothing changes", func() {
		t := s.T()
		shopper, shopperToken := s.jwt.NewPrincipalToken(t, "Wanjiku", user.RoleShopper)
		_, modToken := s.jwt.NewPrincipalToken(t, "Otieno", user.RoleModerator)
		b := builder.NewSubmissionBuilder()
		id := s.submit(t, shopperToken, b)

		stale := int64(7)
		code, _ := s.review(t, approveURL, id, modToken, request.ReviewSubmissionRequest{Version: &stale})
		require.Equal(t, http.StatusConflict, code)

		ledger := s.prices(t, b.ProductID)
		require.Empty(t, ledger.Entries)
		require.Nil(t, ledger.Cheapest)
		require.Equal(t, dbtest.UserRewards{}, dbtest.GetUserRewards(t, s.DB, shopper.ID))
	})

	s.Run("Error case: shopper cannot moderate", func() {
		t := s.T()
		_, shopperToken := s.jwt.NewPrincipalToken(t, "Wanjiku", user.RoleShopper)
		id := s.submit(t, shopperToken, builder.NewSubmissionBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, id), nil, shopperToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("Error case: unknown submission is not found", func() {
		t := s.T()
		_, modToken := s.jwt.NewPrincipalToken(t, "Otieno", user.RoleModerator)
		code, _ := s.review(t, approveURL, uuid.NewString(), modToken, nil)
		require.Equal(t, http.StatusNotFound, code)
	})

	s.Run("Concurrency: parallel approvals credit the submitter exactly once", func() {
		t := s.T()
		shopper, shopperToken := s.jwt.NewPrincipalToken(t, "Wanjiku", user.RoleShopper)
		_, modToken := s.jwt.NewPrincipalToken(t, "Otieno", user.RoleModerator)
		b := builder.NewSubmissionBuilder()
		id := s.submit(t, shopperToken, b)

		const workers = 8
		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			approved int
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, id), nil, modToken)
				if w.Code != http.StatusOK {
					return
				}
				var res response.ModerationResponse
				if err := json.Unmarshal(w.Body.Bytes(), &res); err == nil && !res.AlreadyReviewed {
					mu.Lock()
					approved++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		require.Equal(t, 1, approved)
		require.Equal(t, dbtest.UserRewards{Points: 10, ContributionCount: 1}, dbtest.GetUserRewards(t, s.DB, shopper.ID))
		require.Len(t, s.prices(t, b.ProductID).Entries, 1)
		require.Equal(t, 1, dbtest.CountOutboxEvents(t, s.DB, shared.OutboxKindPriceApproved))
	})
}

func (s *ModerationSuite) TestApproveSameSubmitterConcurrently() {
	s.Run("Concurrency: approvals across products by one submitter all credit", func() {
		t := s.T()
		shopper, shopperToken := s.jwt.NewPrincipalToken(t, "Wanjiku", user.RoleShopper)
		_, modToken := s.jwt.NewPrincipalToken(t, "Otieno", user.RoleModerator)

		const products = 8
		ids := make([]string, products)
		for i := range ids {
			ids[i] = s.submit(t, shopperToken, builder.NewSubmissionBuilder().WithProduct(uuid.New()))
		}

		var wg sync.WaitGroup
		codes := make([]int, products)
		start := make(chan struct{})
		for i, id := range ids {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, id), nil, modToken)
				codes[i] = w.Code
			}()
		}
		close(start)
		wg.Wait()

		for i, code := range codes {
			require.Equal(t, http.StatusOK, code, "approval %d", i)
		}
		require.Equal(t, dbtest.UserRewards{Points: 10 * products, ContributionCount: products}, dbtest.GetUserRewards(t, s.DB, shopper.ID))
		require.Equal(t, products, dbtest.CountOutboxEvents(t, s.DB, shared.OutboxKindPriceApproved))
	})
}

// =============================================================================
// TestReject
// =============================================================================

func (s *ModerationSuite) TestReject() {
	s.Run("Normal case: rejection leaves ledger and rewards untouched", func() {
		t := s.T()
		shopper, shopperToken := s.jwt.NewPrincipalToken(t, "Wanjiku", user.RoleShopper)
		_, modToken := s.jwt.NewPrincipalToken(t, "Otieno", user.RoleModerator)
		b := builder.NewSubmissionBuilder()
		id := s.submit(t, shopperToken, b)

		code, res := s.review(t, rejectURL, id, modToken, nil)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "rejected", res.Status)

		require.Empty(t, s.prices(t, b.ProductID).Entries)
		require.Equal(t, dbtest.UserRewards{}, dbtest.GetUserRewards(t, s.DB, shopper.ID))
		require.Equal(t, 0, dbtest.CountOutboxEvents(t, s.DB, shared.OutboxKindPriceApproved))

		code, res = s.review(t, approveURL, id, modToken, nil)
		require.Equal(t, http.StatusOK, code)
		require.True(t, res.AlreadyReviewed)
		require.Equal(t, "rejected", res.Status)
	})
}

// =============================================================================
// TestListPending
// =============================================================================

func (s *ModerationSuite) TestListPending() {
	s.Run("Normal case: pages newest first and skips reviewed submissions", func() {
		t := s.T()
		_, modToken := s.jwt.NewPrincipalToken(t, "Otieno", user.RoleModerator)
		base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

		var ids []uuid.UUID
		for i := range 5 {
			b := builder.NewSubmissionBuilder().With(func(b *builder.SubmissionBuilder) {
				b.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			})
			dbtest.CreateTestUser(t, s.DB, b.SubmitterID, b.SubmitterDisplayName)
			ids = append(ids, dbtest.InsertSubmission(t, s.DB, b))
		}
		reviewed := builder.NewSubmissionBuilder().Reviewed(submission.StatusApproved, base)
		dbtest.InsertSubmission(t, s.DB, reviewed)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, pendingURL+"?limit=3", nil, modToken)
		require.Equal(t, http.StatusOK, w.Code)
		var first response.SubmissionListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &first))
		require.Len(t, first.Items, 3)
		require.NotEmpty(t, first.NextCursor)
		require.Equal(t, ids[4].String(), first.Items[0].ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, pendingURL+"?limit=3&after="+first.NextCursor, nil, modToken)
		require.Equal(t, http.StatusOK, w.Code)
		var second response.SubmissionListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &second))
		require.Len(t, second.Items, 2)
		require.Empty(t, second.NextCursor)
		require.Equal(t, ids[0].String(), second.Items[1].ID)
	})

	s.Run("Error case: malformed cursor", func() {
		t := s.T()
		_, modToken := s.jwt.NewPrincipalToken(t, "Otieno", user.RoleModerator)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, pendingURL+"?after=%25%25", nil, modToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
	})
}

// =============================================================================
// TestPurge
// =============================================================================

func (s *ModerationSuite) TestPurge() {
	s.Run("Normal case: admin purge keeps ledger and rewards", func() {
		t := s.T()
		shopper, shopperToken := s.jwt.NewPrincipalToken(t, "Wanjiku", user.RoleShopper)
		_, adminToken := s.jwt.NewPrincipalToken(t, "Kamau", user.RoleAdmin)
		b := builder.NewSubmissionBuilder()
		id := s.submit(t, shopperToken, b)
		code, _ := s.review(t, approveURL, id, adminToken, nil)
		require.Equal(t, http.StatusOK, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(purgeURL, id), nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, submissionsURL+"/"+id, nil, adminToken)
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Len(t, s.prices(t, b.ProductID).Entries, 1)
		require.Equal(t, int64(10), dbtest.GetUserRewards(t, s.DB, shopper.ID).Points)
	})

	s.Run("Error case: moderator cannot purge", func() {
		t := s.T()
		_, modToken := s.jwt.NewPrincipalToken(t, "Otieno", user.RoleModerator)
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(purgeURL, uuid.New()), nil, modToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestRewards
// =============================================================================

func (s *ModerationSuite) TestRewards() {
	s.Run("Normal case: rewards and leaderboard reflect approvals", func() {
		t := s.T()
		alice, aliceToken := s.jwt.NewPrincipalToken(t, "Alice", user.RoleShopper)
		_, bobToken := s.jwt.NewPrincipalToken(t, "Bob", user.RoleShopper)
		_, modToken := s.jwt.NewPrincipalToken(t, "Otieno", user.RoleModerator)

		for range 2 {
			id := s.submit(t, aliceToken, builder.NewSubmissionBuilder())
			code, _ := s.review(t, approveURL, id, modToken, nil)
			require.Equal(t, http.StatusOK, code)
		}
		id := s.submit(t, bobToken, builder.NewSubmissionBuilder())
		code, _ := s.review(t, approveURL, id, modToken, nil)
		require.Equal(t, http.StatusOK, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(rewardsURL, alice.ID), nil, aliceToken)
		require.Equal(t, http.StatusOK, w.Code)
		var rewards response.RewardResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rewards))
		require.Equal(t, response.RewardResponse{
			UserID:            alice.ID.String(),
			DisplayName:       "Alice",
			Points:            20,
			ContributionCount: 2,
		}, rewards)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, leaderboardURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var board []response.LeaderboardEntryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &board))
		require.GreaterOrEqual(t, len(board), 2)
		require.Equal(t, 1, board[0].Rank)
		require.Equal(t, alice.ID.String(), board[0].UserID)
	})

	s.Run("Error case: shopper cannot read another user's rewards", func() {
		t := s.T()
		_, token := s.jwt.NewPrincipalToken(t, "Alice", user.RoleShopper)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(rewardsURL, uuid.New()), nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"pricewatch/internal/domain/priceledger"
	"pricewatch/internal/domain/reward"
	"pricewatch/internal/domain/submission"
	"pricewatch/internal/domain/user"
	"pricewatch/internal/infra"
	"pricewatch/internal/pkg/clock"
	"pricewatch/internal/pkg/errs"
	"pricewatch/internal/pkg/metrics"
	"pricewatch/internal/usecase/commands"
	"pricewatch/internal/usecase/shared"
	"pricewatch/tests/common/builder"
	sharedmock "pricewatch/tests/mock/shared"

	"github.com/google/uuid"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var reviewTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

type ModerationUseCaseSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	submissions *sharedmock.MockSubmissionRepository
	ledgers     *sharedmock.MockPriceLedgerRepository
	rewards     *sharedmock.MockRewardRepository
	outbox      *sharedmock.MockOutboxRepository
	metrics     *metrics.Registry
	uc          commands.ModerationCommands
	moderator   user.Principal
}

func TestModerationUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ModerationUseCaseSuite))
}

func (s *ModerationUseCaseSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.submissions = sharedmock.NewMockSubmissionRepository(s.ctrl)
	s.ledgers = sharedmock.NewMockPriceLedgerRepository(s.ctrl)
	s.rewards = sharedmock.NewMockRewardRepository(s.ctrl)
	s.outbox = sharedmock.NewMockOutboxRepository(s.ctrl)

	s.tx.EXPECT().Submissions().Return(s.submissions).AnyTimes()
	s.tx.EXPECT().PriceLedgers().Return(s.ledgers).AnyTimes()
	s.tx.EXPECT().Rewards().Return(s.rewards).AnyTimes()
	s.tx.EXPECT().Outbox().Return(s.outbox).AnyTimes()
	s.uow.EXPECT().WithinOnce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()

	s.metrics = metrics.NewRegistry()
	s.uc = commands.NewModerationUseCase(s.uow, clock.NewMockClock(reviewTime), s.metrics, commands.ModerationOptions{
		EventsTopic: "price-events",
	})
	s.moderator = builder.NewUserBuilder().WithRole(user.RoleModerator).BuildPrincipal()
}

func (s *ModerationUseCaseSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ModerationUseCaseSuite) review(id uuid.UUID, version *int64) commands.ReviewRequest {
	return commands.ReviewRequest{SubmissionID: id, ExpectedVersion: version, Moderator: s.moderator}
}

func (s *ModerationUseCaseSuite) TestApprove_Success() {
	sub := builder.NewSubmissionBuilder().WithSupermarket("magunas", 58).BuildDomain()
	existing := priceledger.Reconstruct(sub.ProductID(), priceledger.Prices{
		"naivas": {Price: 65, Location: "Westlands", UpdatedAt: reviewTime.Add(-time.Hour), Verified: true},
	}, reviewTime.Add(-time.Hour), 2)

	gomock.InOrder(
		s.submissions.EXPECT().FindByID(gomock.Any(), sub.ID()).Return(sub, nil),
		s.submissions.EXPECT().SaveReview(gomock.Any(), sub).DoAndReturn(func(_ context.Context, saved *submission.Submission) error {
			s.Equal(submission.StatusApproved, saved.Status())
			s.Equal(int64(1), saved.Version())
			return nil
		}),
		s.ledgers.EXPECT().FindByProduct(gomock.Any(), sub.ProductID()).Return(existing, nil),
		s.ledgers.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l *priceledger.Ledger) error {
			s.Equal(int64(2), l.Version())
			s.Len(l.Prices(), 2)
			s.Equal("magunas", l.Cheapest().SupermarketID)
			s.Equal(reviewTime, l.LastUpdated())
			return nil
		}),
		s.rewards.EXPECT().Credit(gomock.Any(), sub.SubmitterID(), reward.ApprovalCredit).Return(nil),
		s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg shared.OutboxMessage) error {
			s.Equal(shared.OutboxKindPriceApproved, msg.Kind)
			s.Equal("price-events", msg.Topic)
			s.Equal(sub.ProductID().String(), msg.Key)
			var evt shared.PriceApprovedEvent
			s.Require().NoError(json.Unmarshal(msg.Payload, &evt))
			s.Equal(sub.ID(), evt.SubmissionID)
			s.Equal(58.0, evt.Price)
			s.Equal(s.moderator.ID, evt.ModeratorID)
			return nil
		}),
	)

	v := int64(1)
	res, err := s.uc.Approve(context.Background(), s.review(sub.ID(), &v))
	s.Require().NoError(err)
	s.Equal(submission.StatusApproved, res.Status)
	s.Equal(reviewTime, res.ReviewedAt)
	s.Equal(int64(2), res.Version)
	s.Equal(1.0, promtest.ToFloat64(s.metrics.ModerationTotal.WithLabelValues("approve", "success")))
}

func (s *ModerationUseCaseSuite) TestApprove_AlreadyReviewed() {
	for _, status := range []submission.Status{submission.StatusApproved, submission.StatusRejected} {
		s.Run(status.String(), func() {
			sub := builder.NewSubmissionBuilder().Reviewed(status, reviewTime.Add(-time.Hour)).BuildDomain()
			s.submissions.EXPECT().FindByID(gomock.Any(), sub.ID()).Return(sub, nil)

			res, err := s.uc.Approve(context.Background(), s.review(sub.ID(), nil))
			s.Nil(res)
			s.True(errs.Is(err, errs.ErrInvalidState), "got %v", err)
			s.ErrorIs(err, commands.ErrAlreadyReviewed)
		})
	}
}

func (s *ModerationUseCaseSuite) TestApprove_NotFound() {
	id := uuid.New()
	s.submissions.EXPECT().FindByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("failed to get submission", nil, infra.KindNotFound))

	_, err := s.uc.Approve(context.Background(), s.review(id, nil))
	s.True(errs.Is(err, errs.ErrNotFound), "got %v", err)
}

func (s *ModerationUseCaseSuite) TestApprove_VersionMismatch() {
	sub := builder.NewSubmissionBuilder().BuildDomain()
	s.submissions.EXPECT().FindByID(gomock.Any(), sub.ID()).Return(sub, nil)

	stale := int64(7)
	_, err := s.uc.Approve(context.Background(), s.review(sub.ID(), &stale))
	s.True(errs.Is(err, errs.ErrConcurrentModification), "got %v", err)
	s.ErrorIs(err, commands.ErrVersionMismatch)
}

func (s *ModerationUseCaseSuite) TestApprove_LostRace() {
	sub := builder.NewSubmissionBuilder().BuildDomain()
	s.submissions.EXPECT().FindByID(gomock.Any(), sub.ID()).Return(sub, nil)
	s.submissions.EXPECT().SaveReview(gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("submission changed since it was read", nil, infra.KindConflict))

	_, err := s.uc.Approve(context.Background(), s.review(sub.ID(), nil))
	s.True(errs.Is(err, errs.ErrConcurrentModification), "got %v", err)
	s.Equal(1.0, promtest.ToFloat64(s.metrics.ModerationTotal.WithLabelValues("approve", "conflict")))
}

func (s *ModerationUseCaseSuite) TestApprove_LedgerFailureAborts() {
	sub := builder.NewSubmissionBuilder().BuildDomain()
	s.submissions.EXPECT().FindByID(gomock.Any(), sub.ID()).Return(sub, nil)
	s.submissions.EXPECT().SaveReview(gomock.Any(), gomock.Any()).Return(nil)
	s.ledgers.EXPECT().FindByProduct(gomock.Any(), sub.ProductID()).Return(priceledger.Empty(sub.ProductID()), nil)
	s.ledgers.EXPECT().Save(gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("failed to save price ledger", errors.New("connection reset")))

	_, err := s.uc.Approve(context.Background(), s.review(sub.ID(), nil))
	s.True(errs.Is(err, errs.ErrStoreUnavailable), "got %v", err)
}

func (s *ModerationUseCaseSuite) TestReject_NoSideEffects() {
	sub := builder.NewSubmissionBuilder().BuildDomain()
	s.submissions.EXPECT().FindByID(gomock.Any(), sub.ID()).Return(sub, nil)
	s.submissions.EXPECT().SaveReview(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, saved *submission.Submission) error {
		s.Equal(submission.StatusRejected, saved.Status())
		return nil
	})

	res, err := s.uc.Reject(context.Background(), s.review(sub.ID(), nil))
	s.Require().NoError(err)
	s.Equal(submission.StatusRejected, res.Status)
}

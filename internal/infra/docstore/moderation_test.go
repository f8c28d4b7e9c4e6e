//go:build unit

package docstore_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"pricewatch/internal/domain/reward"
	"pricewatch/internal/domain/submission"
	"pricewatch/internal/domain/user"
	"pricewatch/internal/infra"
	"pricewatch/internal/infra/docstore"
	"pricewatch/internal/pkg/clock"
	"pricewatch/internal/pkg/errs"
	"pricewatch/internal/pkg/metrics"
	"pricewatch/internal/usecase/commands"
	"pricewatch/internal/usecase/queries"
	"pricewatch/internal/usecase/shared"
	"pricewatch/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ModerationStoreSuite runs the moderation use cases against an in-memory
// pebble store.
type ModerationStoreSuite struct {
	suite.Suite
	store      *docstore.Store
	clk        *clock.MockClock
	moderation commands.ModerationCommands
	submit     commands.SubmissionCommands
	ledgers    queries.PriceLedgerQueries
	users      queries.UserQueries
	pending    queries.SubmissionQueries
	relayStore *docstore.OutboxRelayStore
	moderator  user.Principal
	shopper    user.Principal
}

func TestModerationStoreSuite(t *testing.T) {
	suite.Run(t, new(ModerationStoreSuite))
}

func (s *ModerationStoreSuite) SetupTest() {
	s.clk = clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	store, err := docstore.Open("", s.clk)
	s.Require().NoError(err)
	s.store = store

	uow := docstore.NewUoW(store)
	s.moderation = commands.NewModerationUseCase(uow, s.clk, metrics.NewRegistry(), commands.ModerationOptions{EventsTopic: "prices"})
	s.submit = commands.NewSubmissionUseCase(uow, s.clk)
	s.ledgers = queries.NewPriceLedgerQueries(docstore.NewPriceLedgerReadStore(store))
	s.users = queries.NewUserQueries(docstore.NewUserReadStore(store))
	s.pending = queries.NewSubmissionQueries(docstore.NewSubmissionReadStore(store))
	s.relayStore = docstore.NewOutboxRelayStore(store)

	s.moderator = builder.NewUserBuilder().WithRole(user.RoleModerator).BuildPrincipal()
	s.shopper = builder.NewUserBuilder().BuildPrincipal()
}

func (s *ModerationStoreSuite) TearDownTest() {
	s.NoError(s.store.Close())
}

func (s *ModerationStoreSuite) submitPrice(productID uuid.UUID, supermarket string, price float64) uuid.UUID {
	req := builder.NewSubmissionBuilder().WithProduct(productID).WithSupermarket(supermarket, price).BuildCreateCommand()
	res, err := s.submit.Create(context.Background(), req, s.shopper)
	s.Require().NoError(err)
	s.clk.Add(time.Minute)
	return res.SubmissionID
}

func (s *ModerationStoreSuite) approve(id uuid.UUID) (*commands.ReviewResult, error) {
	return s.moderation.Approve(context.Background(), commands.ReviewRequest{SubmissionID: id, Moderator: s.moderator})
}

func (s *ModerationStoreSuite) drainOutbox() []shared.OutboxRecord {
	var got []shared.OutboxRecord
	_, err := s.relayStore.Drain(context.Background(), s.clk.Now(), 100,
		func(_ context.Context, rec shared.OutboxRecord) shared.OutboxOutcome {
			got = append(got, rec)
			return shared.OutboxOutcome{Sent: true}
		})
	s.Require().NoError(err)
	return got
}

func (s *ModerationStoreSuite) TestApprove_CommitsEverything() {
	ctx := context.Background()
	productID := uuid.New()
	id := s.submitPrice(productID, "naivas", 65)

	res, err := s.approve(id)
	s.Require().NoError(err)
	s.Equal(submission.StatusApproved, res.Status)
	s.Equal(int64(2), res.Version)

	view, err := s.pending.GetByID(ctx, id)
	s.Require().NoError(err)
	s.Equal("approved", view.Status)
	s.Equal(int64(2), view.Version)
	s.NotNil(view.ReviewedAt)

	ledger, err := s.ledgers.GetByProduct(ctx, productID)
	s.Require().NoError(err)
	s.Require().Len(ledger.Entries, 1)
	s.Equal(65.0, ledger.Entries[0].Price)
	s.True(ledger.Entries[0].Verified)
	s.Equal(int64(1), ledger.Version)

	rewards, err := s.users.GetRewards(ctx, s.shopper.ID)
	s.Require().NoError(err)
	s.Equal(int64(10), rewards.Points)
	s.Equal(int64(1), rewards.ContributionCount)

	events := s.drainOutbox()
	s.Require().Len(events, 1)
	s.Equal(shared.OutboxKindPriceApproved, events[0].Kind)
	var evt shared.PriceApprovedEvent
	s.Require().NoError(json.Unmarshal(events[0].Payload, &evt))
	s.Equal(id, evt.SubmissionID)
	s.Empty(s.drainOutbox())
}

func (s *ModerationStoreSuite) TestApprove_TwiceCreditsOnce() {
	ctx := context.Background()
	id := s.submitPrice(uuid.New(), "naivas", 65)

	_, err := s.approve(id)
	s.Require().NoError(err)
	_, err = s.approve(id)
	s.True(errs.Is(err, errs.ErrInvalidState), "got %v", err)

	rewards, err := s.users.GetRewards(ctx, s.shopper.ID)
	s.Require().NoError(err)
	s.Equal(int64(10), rewards.Points)
	s.Len(s.drainOutbox(), 1)
}

func (s *ModerationStoreSuite) TestApprove_MergesAcrossSupermarkets() {
	ctx := context.Background()
	productID := uuid.New()
	for _, p := range []struct {
		sm    string
		price float64
	}{{"naivas", 65}, {"carrefour", 62}, {"magunas", 58}} {
		_, err := s.approve(s.submitPrice(productID, p.sm, p.price))
		s.Require().NoError(err)
	}

	// a later, higher price from the same chain replaces only that entry
	_, err := s.approve(s.submitPrice(productID, "naivas", 70))
	s.Require().NoError(err)

	ledger, err := s.ledgers.GetByProduct(ctx, productID)
	s.Require().NoError(err)
	s.Len(ledger.Entries, 3)
	s.Equal(int64(4), ledger.Version)
	s.Require().NotNil(ledger.Cheapest)
	s.Equal("magunas", ledger.Cheapest.SupermarketID)
	for _, e := range ledger.Entries {
		if e.SupermarketID == "naivas" {
			s.Equal(70.0, e.Price)
		}
	}

	rewards, err := s.users.GetRewards(ctx, s.shopper.ID)
	s.Require().NoError(err)
	s.Equal(int64(40), rewards.Points)
	s.Equal(int64(4), rewards.ContributionCount)
}

func (s *ModerationStoreSuite) TestReject_LeavesLedgerAndRewards() {
	ctx := context.Background()
	productID := uuid.New()
	id := s.submitPrice(productID, "naivas", 65)

	res, err := s.moderation.Reject(ctx, commands.ReviewRequest{SubmissionID: id, Moderator: s.moderator})
	s.Require().NoError(err)
	s.Equal(submission.StatusRejected, res.Status)

	ledger, err := s.ledgers.GetByProduct(ctx, productID)
	s.Require().NoError(err)
	s.Empty(ledger.Entries)
	s.Equal(int64(0), ledger.Version)

	rewards, err := s.users.GetRewards(ctx, s.shopper.ID)
	s.Require().NoError(err)
	s.Zero(rewards.Points)
	s.Empty(s.drainOutbox())

	_, err = s.approve(id)
	s.True(errs.Is(err, errs.ErrInvalidState))
}

func (s *ModerationStoreSuite) TestApprove_StaleVersion() {
	id := s.submitPrice(uuid.New(), "naivas", 65)
	stale := int64(3)

	_, err := s.moderation.Approve(context.Background(), commands.ReviewRequest{
		SubmissionID: id, ExpectedVersion: &stale, Moderator: s.moderator,
	})
	s.True(errs.Is(err, errs.ErrConcurrentModification), "got %v", err)

	view, err := s.pending.GetByID(context.Background(), id)
	s.Require().NoError(err)
	s.Equal("pending", view.Status)
}

func (s *ModerationStoreSuite) TestApprove_Unknown() {
	_, err := s.approve(uuid.New())
	s.True(errs.Is(err, errs.ErrNotFound), "got %v", err)
}

func (s *ModerationStoreSuite) TestApprove_ConcurrentSingleWinner() {
	ctx := context.Background()
	productID := uuid.New()
	id := s.submitPrice(productID, "naivas", 65)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		others    []error
	)
	start := make(chan struct{})
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := s.approve(id)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else {
				others = append(others, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	s.Equal(1, successes)
	for _, err := range others {
		s.True(errs.Is(err, errs.ErrInvalidState) || errs.Is(err, errs.ErrConcurrentModification), "got %v", err)
	}

	rewards, err := s.users.GetRewards(ctx, s.shopper.ID)
	s.Require().NoError(err)
	s.Equal(int64(10), rewards.Points)

	ledger, err := s.ledgers.GetByProduct(ctx, productID)
	s.Require().NoError(err)
	s.Equal(int64(1), ledger.Version)
	s.Len(s.drainOutbox(), 1)
}

func (s *ModerationStoreSuite) TestConcurrentApprovals_DifferentSubmissionsSameProduct() {
	ctx := context.Background()
	productID := uuid.New()
	ids := []uuid.UUID{
		s.submitPrice(productID, "naivas", 65),
		s.submitPrice(productID, "carrefour", 62),
	}

	var wg sync.WaitGroup
	errsOut := make([]error, len(ids))
	for i, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errsOut[i] = s.approve(id)
		}()
	}
	wg.Wait()

	// the ledger loser surfaces a conflict; it never silently drops a price
	approved := 0
	for i, err := range errsOut {
		if err == nil {
			approved++
			continue
		}
		s.True(errs.Is(err, errs.ErrConcurrentModification), "got %v", err)
		_, err = s.approve(ids[i])
		s.Require().NoError(err)
		approved++
	}
	s.Equal(2, approved)

	ledger, err := s.ledgers.GetByProduct(ctx, productID)
	s.Require().NoError(err)
	s.Len(ledger.Entries, 2)
	s.Equal("carrefour", ledger.Cheapest.SupermarketID)
}

func (s *ModerationStoreSuite) TestConcurrentApprovals_SameSubmitterDifferentProducts() {
	ctx := context.Background()
	const products = 8
	ids := make([]uuid.UUID, products)
	for i := range ids {
		ids[i] = s.submitPrice(uuid.New(), "naivas", 60+float64(i))
	}

	var wg sync.WaitGroup
	errsOut := make([]error, products)
	start := make(chan struct{})
	for i, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, errsOut[i] = s.approve(id)
		}()
	}
	close(start)
	wg.Wait()

	for _, err := range errsOut {
		s.NoError(err)
	}
	rewards, err := s.users.GetRewards(ctx, s.shopper.ID)
	s.Require().NoError(err)
	s.Equal(int64(10*products), rewards.Points)
	s.Equal(int64(products), rewards.ContributionCount)
	s.Len(s.drainOutbox(), products)
}

func (s *ModerationStoreSuite) TestApprove_LateFailurePersistsNothing() {
	storeDown := infra.WrapRepoErr("store unavailable", errs.New("disk detached"), infra.KindDBFailure)

	tests := []struct {
		name string
		tx   func(shared.Tx) shared.Tx
	}{
		{
			name: "reward credit fails",
			tx:   func(tx shared.Tx) shared.Tx { return failingTx{Tx: tx, creditErr: storeDown} },
		},
		{
			name: "outbox enqueue fails",
			tx:   func(tx shared.Tx) shared.Tx { return failingTx{Tx: tx, enqueueErr: storeDown} },
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.TearDownTest()
			s.SetupTest()
			ctx := context.Background()
			productID := uuid.New()

			_, err := s.approve(s.submitPrice(productID, "naivas", 65))
			s.Require().NoError(err)
			s.Require().Len(s.drainOutbox(), 1)

			id := s.submitPrice(productID, "carrefour", 62)
			broken := commands.NewModerationUseCase(
				wrappingUoW{UnitOfWork: docstore.NewUoW(s.store), wrap: tt.tx},
				s.clk, metrics.NewRegistry(), commands.ModerationOptions{EventsTopic: "prices"},
			)
			_, err = broken.Approve(ctx, commands.ReviewRequest{SubmissionID: id, Moderator: s.moderator})
			s.True(errs.Is(err, errs.ErrStoreUnavailable), "got %v", err)

			view, err := s.pending.GetByID(ctx, id)
			s.Require().NoError(err)
			s.Equal("pending", view.Status)
			s.Equal(int64(1), view.Version)
			s.Nil(view.ReviewedAt)

			ledger, err := s.ledgers.GetByProduct(ctx, productID)
			s.Require().NoError(err)
			s.Equal(int64(1), ledger.Version)
			s.Require().Len(ledger.Entries, 1)
			s.Equal("naivas", ledger.Entries[0].SupermarketID)

			rewards, err := s.users.GetRewards(ctx, s.shopper.ID)
			s.Require().NoError(err)
			s.Equal(int64(10), rewards.Points)
			s.Equal(int64(1), rewards.ContributionCount)
			s.Empty(s.drainOutbox())

			// the untouched submission can still be approved normally
			_, err = s.approve(id)
			s.Require().NoError(err)
		})
	}
}

func (s *ModerationStoreSuite) TestPurge_KeepsLedgerAndRewards() {
	ctx := context.Background()
	productID := uuid.New()
	id := s.submitPrice(productID, "naivas", 65)
	_, err := s.approve(id)
	s.Require().NoError(err)

	admin := builder.NewUserBuilder().WithRole(user.RoleAdmin).BuildPrincipal()
	s.Require().NoError(s.submit.Purge(ctx, id, admin))

	_, err = s.pending.GetByID(ctx, id)
	s.True(errs.Is(err, errs.ErrNotFound))

	ledger, err := s.ledgers.GetByProduct(ctx, productID)
	s.Require().NoError(err)
	s.Len(ledger.Entries, 1)

	rewards, err := s.users.GetRewards(ctx, s.shopper.ID)
	s.Require().NoError(err)
	s.Equal(int64(10), rewards.Points)

	err = s.submit.Purge(ctx, id, admin)
	s.True(errs.Is(err, errs.ErrNotFound))
}

func (s *ModerationStoreSuite) TestListPending_NewestFirst() {
	ctx := context.Background()
	var ids []uuid.UUID
	for range 5 {
		ids = append(ids, s.submitPrice(uuid.New(), "naivas", 65))
	}
	_, err := s.approve(ids[4])
	s.Require().NoError(err)

	page, next, err := s.pending.ListPendingPage(ctx, nil, 3)
	s.Require().NoError(err)
	s.Require().Len(page, 3)
	s.Require().NotNil(next)
	s.Equal(ids[3], page[0].ID)
	s.Equal(ids[1], page[2].ID)

	page, next, err = s.pending.ListPendingPage(ctx, next, 3)
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal(ids[0], page[0].ID)
	s.Nil(next)
}

func (s *ModerationStoreSuite) TestLeaderboard() {
	ctx := context.Background()
	_, err := s.approve(s.submitPrice(uuid.New(), "naivas", 65))
	s.Require().NoError(err)

	top, err := s.users.TopContributors(ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(top, 1)
	s.Equal(s.shopper.ID, top[0].UserID)
	s.Equal(s.shopper.DisplayName, top[0].DisplayName)
}

// wrappingUoW lets a test swap the repositories handed to the moderation
// transaction.
type wrappingUoW struct {
	shared.UnitOfWork
	wrap func(shared.Tx) shared.Tx
}

func (u wrappingUoW) WithinOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.UnitOfWork.WithinOnce(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, u.wrap(tx))
	})
}

type failingTx struct {
	shared.Tx
	creditErr  error
	enqueueErr error
}

func (t failingTx) Rewards() shared.RewardRepository {
	return failingRewards{RewardRepository: t.Tx.Rewards(), err: t.creditErr}
}

func (t failingTx) Outbox() shared.OutboxRepository {
	return failingOutbox{OutboxRepository: t.Tx.Outbox(), err: t.enqueueErr}
}

type failingRewards struct {
	shared.RewardRepository
	err error
}

func (r failingRewards) Credit(ctx context.Context, userID uuid.UUID, c reward.Credit) error {
	if r.err != nil {
		return r.err
	}
	return r.RewardRepository.Credit(ctx, userID, c)
}

type failingOutbox struct {
	shared.OutboxRepository
	err error
}

func (o failingOutbox) Enqueue(ctx context.Context, msg shared.OutboxMessage) error {
	if o.err != nil {
		return o.err
	}
	return o.OutboxRepository.Enqueue(ctx, msg)
}

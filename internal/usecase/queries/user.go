package queries

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

import (
	"context"

	"github.com/google/uuid"
)

const DefaultLeaderboardSize = 10

type UserReadStore interface {
	FindRewards(ctx context.Context, userID uuid.UUID) (*RewardView, error)
	FindTopContributors(ctx context.Context, limit int32) ([]*RewardView, error)
}

type UserQueries interface {
	GetRewards(ctx context.Context, userID uuid.UUID) (*RewardView, error)
	TopContributors(ctx context.Context, limit int) ([]*RewardView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetRewards(ctx context.Context, userID uuid.UUID) (*RewardView, error) {
	v, err := q.store.FindRewards(ctx, userID)
	if err != nil {
		return nil, classify(err)
	}
	return v, nil
}

func (q *userQueriesImpl) TopContributors(ctx context.Context, limit int) ([]*RewardView, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	limit = min(limit, MaxListLimit)
	// #nosec G115 -- capped above
	rows, err := q.store.FindTopContributors(ctx, int32(limit))
	if err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

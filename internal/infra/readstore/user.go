package readstore

import (
	"context"

	"pricewatch/internal/infra"
	"pricewatch/internal/infra/sqlc"
	"pricewatch/internal/pkg/pgconv"
	"pricewatch/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserViewQueries interface {
	GetUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	ListTopContributors(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.Users, error)
}

type UserReadStore struct {
	queries UserViewQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserViewQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindRewards(ctx context.Context, userID uuid.UUID) (*queries.RewardView, error) {
	row, err := r.queries.GetUser(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user rewards", err)
	}
	return toRewardView(row), nil
}

func (r *UserReadStore) FindTopContributors(ctx context.Context, limit int32) ([]*queries.RewardView, error) {
	rows, err := r.queries.ListTopContributors(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list top contributors", err)
	}
	views := make([]*queries.RewardView, len(rows))
	for i, row := range rows {
		views[i] = toRewardView(row)
	}
	return views, nil
}

func toRewardView(row sqlc.Users) *queries.RewardView {
	return &queries.RewardView{
		UserID:            row.ID,
		DisplayName:       row.DisplayName,
		Points:            row.Points,
		ContributionCount: row.ContributionCount,
	}
}

package repository

//go:generate mockgen -source=reward.go -destination=../../../tests/mock/repository/reward.go -package=repositorymock

import (
	"context"

	"pricewatch/internal/domain/reward"
	"pricewatch/internal/infra"
	"pricewatch/internal/infra/sqlc"

	"github.com/google/uuid"
)

type RewardWriteQueries interface {
	EnsureUser(ctx context.Context, db sqlc.DBTX, arg sqlc.EnsureUserParams) error
	CreditUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreditUserParams) error
}

type RewardRepository struct {
	queries RewardWriteQueries
	db      sqlc.DBTX
}

func NewRewardRepository(queries RewardWriteQueries, db sqlc.DBTX) *RewardRepository {
	return &RewardRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RewardRepository) EnsureUser(ctx context.Context, userID uuid.UUID, displayName string) error {
	err := r.queries.EnsureUser(ctx, r.db, sqlc.EnsureUserParams{ID: userID, DisplayName: displayName})
	if err != nil {
		return infra.WrapRepoErr("failed to ensure user", err)
	}
	return nil
}

func (r *RewardRepository) Credit(ctx context.Context, userID uuid.UUID, c reward.Credit) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.IsZero() {
		return nil
	}
	err := r.queries.CreditUser(ctx, r.db, sqlc.CreditUserParams{
		ID:            userID,
		Points:        c.Points,
		Contributions: c.Contributions,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to credit user", err)
	}
	return nil
}

//go:build unit || e2e

package builder

import (
	"pricewatch/internal/domain/user"
	"pricewatch/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID                uuid.UUID
	DisplayName       string
	Role              user.Role
	Points            int64
	ContributionCount int64
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:          uuid.New(),
		DisplayName: "Achieng",
		Role:        user.RoleShopper,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithRole(role user.Role) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) BuildPrincipal() user.Principal {
	return user.Principal{ID: u.ID, DisplayName: u.DisplayName, Role: u.Role}
}

func (u *UserBuilder) BuildRewardView() *queries.RewardView {
	return &queries.RewardView{
		UserID:            u.ID,
		DisplayName:       u.DisplayName,
		Points:            u.Points,
		ContributionCount: u.ContributionCount,
	}
}

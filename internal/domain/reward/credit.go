package reward

import "errors"

const (
	PointsPerApproval        = 10
	ContributionsPerApproval = 1
)

var ErrNegativeCredit = errors.New("reward credit cannot be negative")

// Credit is an additive delta applied with the store's atomic increment.
type Credit struct {
	Points        int64
	Contributions int64
}

var ApprovalCredit = Credit{
	Points:        PointsPerApproval,
	Contributions: ContributionsPerApproval,
}

// Validate rejects decrements; totals only ever grow.
func (c Credit) Validate() error {
	if c.Points < 0 || c.Contributions < 0 {
		return ErrNegativeCredit
	}
	return nil
}

func (c Credit) IsZero() bool {
	return c.Points == 0 && c.Contributions == 0
}

// Add is the commutative combination of two credits.
func (c Credit) Add(o Credit) Credit {
	return Credit{
		Points:        c.Points + o.Points,
		Contributions: c.Contributions + o.Contributions,
	}
}

// Balance is a user's running total.
type Balance struct {
	Points            int64
	ContributionCount int64
}

func (b Balance) Apply(c Credit) Balance {
	return Balance{
		Points:            b.Points + c.Points,
		ContributionCount: b.ContributionCount + c.Contributions,
	}
}

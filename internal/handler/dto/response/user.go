package response

import (
	"pricewatch/internal/usecase/queries"
)

type RewardResponse struct {
	UserID            string `json:"user_id"`
	DisplayName       string `json:"display_name"`
	Points            int64  `json:"points"`
	ContributionCount int64  `json:"contribution_count"`
}

func FromRewardView(v *queries.RewardView) *RewardResponse {
	res := &RewardResponse{}
	copyView(res, v)
	return res
}

type LeaderboardEntryResponse struct {
	Rank int `json:"rank"`
	RewardResponse
}

func FromLeaderboard(rows []*queries.RewardView) []*LeaderboardEntryResponse {
	res := make([]*LeaderboardEntryResponse, len(rows))
	for i, r := range rows {
		res[i] = &LeaderboardEntryResponse{Rank: i + 1, RewardResponse: *FromRewardView(r)}
	}
	return res
}

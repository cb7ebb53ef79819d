package report

// TimeOwedResult is one leaderboard entry. TotalMinutesOwed is signed:
// positive means a deficit against the configured hours, negative means
// surplus (overtime).
type TimeOwedResult struct {
	UserID           string `json:"user_id"`
	Username         string `json:"username"`
	TotalMinutesOwed int    `json:"total_minutes_owed"`
}

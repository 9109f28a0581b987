package timeline

import "context"

// TimelineService builds the unified leave timeline out of vacation requests
// and attendance logs.
type TimelineService interface {
	// DayOverview returns the merged, filtered items for one day, newest
	// first. Period 1 attendance entries stay ungrouped.
	DayOverview(ctx context.Context, query DayQuery) ([]ItemResponse, error)
	// MonthHistory returns one user's items for a calendar month, most
	// recent date first.
	MonthHistory(ctx context.Context, query HistoryQuery) ([]ItemResponse, error)
	// WeeklyUsage returns the ordinary-leave weight per user for the
	// Monday-Sunday week containing date. Every requested user appears in
	// the map, with 0 when no rows exist.
	WeeklyUsage(ctx context.Context, date string, userIDs []string) (map[string]float64, error)
}

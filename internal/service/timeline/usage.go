package timeline

import (
	"github.com/study-factory/attend-backend-go/internal/domain/user"
	"github.com/study-factory/attend-backend-go/internal/domain/vacation"
)

// Policy carries the weekly-cap and redundancy configuration the pipeline
// runs under.
type Policy struct {
	// RedundantStatuses are attendance statuses suppressed by the merge step
	// when an explicit vacation request exists for the same user and day.
	RedundantStatuses []string
	WeeklyCapStaff    float64
	WeeklyCapMember   float64
}

// WeeklyCap returns the weekly usage cap for a role.
func (p Policy) WeeklyCap(role user.Role) float64 {
	if role == user.RoleStaff || role == user.RoleAdmin {
		return p.WeeklyCapStaff
	}
	return p.WeeklyCapMember
}

// UsageByUser sums each user's ordinary leave weight across the given
// requests: 1.0 per full day, 0.5 per half day. Reason-tagged requests are
// special leave and contribute nothing. Every id in userIDs gets an entry,
// with 0 when the user has no rows.
func UsageByUser(requests []vacation.Request, userIDs []string) map[string]float64 {
	usage := make(map[string]float64, len(userIDs))
	for _, id := range userIDs {
		usage[id] = 0
	}

	for _, req := range requests {
		if !req.IsOrdinary() {
			continue
		}
		usage[req.UserID] += req.Weight()
	}

	return usage
}

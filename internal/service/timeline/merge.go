package timeline

import (
	"github.com/study-factory/attend-backend-go/internal/domain/timeline"
)

// Merge combines vacation-request items with grouped attendance items without
// double-reporting a user who has both.
//
// An attendance item is suppressed only when its user already has a vacation
// item for the same day AND its status is one of the redundant statuses:
// generic markers (월차, 출석, ...) made obsolete by the explicit request. A
// reason-tagged absence like 병원 survives next to a vacation request; users
// without a vacation request keep all their attendance items.
//
// Output order is vacation items first, then survivors; sorting is the
// pipeline's next step.
func Merge(vacationItems, attendanceItems []timeline.LeaveItem, redundantStatuses []string) []timeline.LeaveItem {
	redundant := make(map[string]struct{}, len(redundantStatuses))
	for _, status := range redundantStatuses {
		redundant[status] = struct{}{}
	}

	type userDay struct {
		userID string
		date   string
	}
	requested := make(map[userDay]struct{}, len(vacationItems))
	for _, item := range vacationItems {
		requested[userDay{item.UserID, item.Date}] = struct{}{}
	}

	merged := make([]timeline.LeaveItem, 0, len(vacationItems)+len(attendanceItems))
	merged = append(merged, vacationItems...)

	for _, item := range attendanceItems {
		if _, hasRequest := requested[userDay{item.UserID, item.Date}]; hasRequest && item.Reason != nil {
			if _, isRedundant := redundant[*item.Reason]; isRedundant {
				continue
			}
		}
		merged = append(merged, item)
	}

	return merged
}

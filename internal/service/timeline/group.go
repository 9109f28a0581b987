package timeline

import (
	"fmt"
	"sort"

	"github.com/study-factory/attend-backend-go/internal/domain/attendance"
	"github.com/study-factory/attend-backend-go/internal/domain/timeline"
)

type groupKey struct {
	userID string
	status string
	date   string
}

// GroupLogs collapses attendance-derived items that share (user, status) into
// one item per key, accumulating their periods in ascending order.
//
// With splitMorning set, period 1 entries are deliberately kept ungrouped:
// the today view always shows the morning period as its own item while
// periods 2-7 under the same status group together. This asymmetry is a
// business rule tied to the class schedule, not an accident.
func GroupLogs(items []timeline.LeaveItem, splitMorning bool) []timeline.LeaveItem {
	var result []timeline.LeaveItem
	groups := make(map[groupKey]*timeline.LeaveItem)
	var order []groupKey

	for _, item := range items {
		if item.Reason == nil || len(item.Periods) == 0 {
			continue
		}

		if splitMorning && item.Periods[0] == attendance.MorningPeriod {
			morning := item
			morning.ID = groupID(item.UserID, *item.Reason, item.Date) + ":am"
			result = append(result, morning)
			continue
		}

		key := groupKey{userID: item.UserID, status: *item.Reason, date: item.Date}
		acc, ok := groups[key]
		if !ok {
			grouped := item
			grouped.ID = groupID(item.UserID, *item.Reason, item.Date)
			grouped.Periods = append([]int(nil), item.Periods...)
			groups[key] = &grouped
			order = append(order, key)
			continue
		}

		acc.Periods = append(acc.Periods, item.Periods...)
		if item.CreatedAt.After(acc.CreatedAt) {
			acc.CreatedAt = item.CreatedAt
		}
	}

	for _, key := range order {
		acc := groups[key]
		sort.Ints(acc.Periods)
		acc.Periods = dedupePeriods(acc.Periods)
		result = append(result, *acc)
	}

	return result
}

// groupID builds the synthesized id for a grouped attendance item.
func groupID(userID, status, date string) string {
	return fmt.Sprintf("log:%s:%s:%s", userID, status, date)
}

func dedupePeriods(periods []int) []int {
	out := periods[:0]
	for i, p := range periods {
		if i == 0 || periods[i-1] != p {
			out = append(out, p)
		}
	}
	return out
}

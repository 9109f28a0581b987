package timeline

import (
	"sort"
	"strings"

	"github.com/study-factory/attend-backend-go/internal/domain/timeline"
	"github.com/study-factory/attend-backend-go/internal/domain/user"
	"github.com/study-factory/attend-backend-go/internal/pkg/dateutil"
)

// ApplyFilters runs the view filters over items: branch, name search and the
// leave-type toggle set. The name search is a case-sensitive substring match;
// an empty term passes everything.
func ApplyFilters(items []timeline.LeaveItem, query timeline.DayQuery) []timeline.LeaveItem {
	enabled := make(map[timeline.Class]struct{}, len(query.Classes))
	for _, c := range query.Classes {
		enabled[c] = struct{}{}
	}

	filtered := make([]timeline.LeaveItem, 0, len(items))
	for _, item := range items {
		if query.Branch != "" && query.Branch != user.BranchAll && item.Branch != query.Branch {
			continue
		}
		if query.Search != "" && !strings.Contains(item.UserName, query.Search) {
			continue
		}
		if len(enabled) > 0 {
			if _, ok := enabled[item.Classify()]; !ok {
				continue
			}
		}
		filtered = append(filtered, item)
	}

	return filtered
}

// FilterMonth keeps items whose date falls inside the calendar month.
func FilterMonth(items []timeline.LeaveItem, month string) []timeline.LeaveItem {
	filtered := make([]timeline.LeaveItem, 0, len(items))
	for _, item := range items {
		if dateutil.SameMonth(item.Date, month) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// FilterDate keeps items on exactly the given date.
func FilterDate(items []timeline.LeaveItem, date string) []timeline.LeaveItem {
	filtered := make([]timeline.LeaveItem, 0, len(items))
	for _, item := range items {
		if item.Date == date {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// SortByCreatedAtDesc orders items newest first, for the "who is out today"
// views. Items without a creation timestamp carry the zero time and sort
// last. Ties keep their relative order.
func SortByCreatedAtDesc(items []timeline.LeaveItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

// SortByDateDesc orders items by calendar date, most recent first, for the
// history views.
func SortByDateDesc(items []timeline.LeaveItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})
}

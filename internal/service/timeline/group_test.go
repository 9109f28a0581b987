package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/study-factory/attend-backend-go/internal/domain/attendance"
	"github.com/study-factory/attend-backend-go/internal/domain/timeline"
)

func logItems(userID, date, status string, periods ...int) []timeline.LeaveItem {
	items := make([]timeline.LeaveItem, 0, len(periods))
	for _, p := range periods {
		items = append(items, timeline.LeaveItem{
			UserID:    userID,
			Date:      date,
			Category:  timeline.CategoryAttendance,
			LeaveType: timeline.LeaveTypeSpecialLog,
			Periods:   []int{p},
			Reason:    strPtr(status),
		})
	}
	return items
}

func TestGroupLogs_CollapsesPerUserStatus(t *testing.T) {
	items := logItems("u1", "2024-03-01", "병원", 5, 1, 3)

	grouped := GroupLogs(items, false)
	require.Len(t, grouped, 1)
	assert.Equal(t, []int{1, 3, 5}, grouped[0].Periods)
	assert.Equal(t, "log:u1:병원:2024-03-01", grouped[0].ID)
}

func TestGroupLogs_MorningStaysSeparate(t *testing.T) {
	items := logItems("u1", "2024-03-01", "병원", 1, 3, 5)

	grouped := GroupLogs(items, true)
	require.Len(t, grouped, 2)

	var morning, rest timeline.LeaveItem
	for _, item := range grouped {
		if len(item.Periods) == 1 && item.Periods[0] == attendance.MorningPeriod {
			morning = item
		} else {
			rest = item
		}
	}
	assert.Equal(t, []int{1}, morning.Periods)
	assert.Equal(t, []int{3, 5}, rest.Periods)
}

func TestGroupLogs_DistinctStatusesStayApart(t *testing.T) {
	items := append(
		logItems("u1", "2024-03-01", "병원", 2, 3),
		logItems("u1", "2024-03-01", "알바", 6)...,
	)

	grouped := GroupLogs(items, false)
	assert.Len(t, grouped, 2)
}

func TestGroupLogs_DistinctUsersStayApart(t *testing.T) {
	items := append(
		logItems("u1", "2024-03-01", "출석", 2),
		logItems("u2", "2024-03-01", "출석", 3)...,
	)

	grouped := GroupLogs(items, false)
	assert.Len(t, grouped, 2)
}

func TestGroupLogs_DistinctDatesStayApart(t *testing.T) {
	items := append(
		logItems("u1", "2024-03-01", "병원", 2),
		logItems("u1", "2024-03-02", "병원", 3)...,
	)

	grouped := GroupLogs(items, false)
	assert.Len(t, grouped, 2)
}

func TestGroupLogs_DuplicatePeriodsDeduped(t *testing.T) {
	items := logItems("u1", "2024-03-01", "병원", 3, 3, 5)

	grouped := GroupLogs(items, false)
	require.Len(t, grouped, 1)
	assert.Equal(t, []int{3, 5}, grouped[0].Periods)
}

func TestGroupLogs_KeepsLatestCreatedAt(t *testing.T) {
	older := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	items := logItems("u1", "2024-03-01", "병원", 2, 4)
	items[0].CreatedAt = newer
	items[1].CreatedAt = older

	grouped := GroupLogs(items, false)
	require.Len(t, grouped, 1)
	assert.Equal(t, newer, grouped[0].CreatedAt)
}

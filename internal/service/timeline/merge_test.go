package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/study-factory/attend-backend-go/internal/domain/timeline"
)

var testRedundant = []string{"월차", "반차", "오전", "오후", "출석", "결석", "O", "X"}

func vacationItem(id, userID, date string) timeline.LeaveItem {
	return timeline.LeaveItem{
		ID:        "vacation:" + id,
		UserID:    userID,
		Date:      date,
		Category:  timeline.CategoryVacation,
		LeaveType: timeline.LeaveTypeFull,
	}
}

func attendanceItem(userID, date, status string) timeline.LeaveItem {
	return timeline.LeaveItem{
		ID:        "log:" + userID + ":" + status + ":" + date,
		UserID:    userID,
		Date:      date,
		Category:  timeline.CategoryAttendance,
		LeaveType: timeline.LeaveTypeSpecialLog,
		Reason:    strPtr(status),
	}
}

func TestMerge_RedundantStatusSuppressed(t *testing.T) {
	merged := Merge(
		[]timeline.LeaveItem{vacationItem("r1", "u1", "2024-03-01")},
		[]timeline.LeaveItem{attendanceItem("u1", "2024-03-01", "출석")},
		testRedundant,
	)

	require.Len(t, merged, 1)
	assert.Equal(t, timeline.CategoryVacation, merged[0].Category)
}

func TestMerge_NonRedundantReasonKept(t *testing.T) {
	merged := Merge(
		[]timeline.LeaveItem{vacationItem("r1", "u1", "2024-03-01")},
		[]timeline.LeaveItem{attendanceItem("u1", "2024-03-01", "병원")},
		testRedundant,
	)

	// A vacation request and an unrelated hospital absence both display.
	require.Len(t, merged, 2)
}

func TestMerge_NoVacationKeepsEverything(t *testing.T) {
	merged := Merge(
		nil,
		[]timeline.LeaveItem{
			attendanceItem("u2", "2024-03-01", "출석"),
			attendanceItem("u2", "2024-03-01", "병원"),
		},
		testRedundant,
	)

	assert.Len(t, merged, 2)
}

func TestMerge_EveryVacationItemAppearsOnce(t *testing.T) {
	vacations := []timeline.LeaveItem{
		vacationItem("r1", "u1", "2024-03-01"),
		vacationItem("r2", "u2", "2024-03-01"),
	}
	logs := []timeline.LeaveItem{
		attendanceItem("u1", "2024-03-01", "월차"),
		attendanceItem("u3", "2024-03-01", "결석"),
	}

	merged := Merge(vacations, logs, testRedundant)

	ids := make(map[string]int)
	for _, item := range merged {
		ids[item.ID]++
	}
	assert.Equal(t, 1, ids["vacation:r1"])
	assert.Equal(t, 1, ids["vacation:r2"])
	// u3 has no vacation request, so the redundant-looking status survives.
	assert.Equal(t, 1, ids["log:u3:결석:2024-03-01"])
	assert.Len(t, merged, 3)
}

func TestMerge_OtherDaySuppressesNothing(t *testing.T) {
	merged := Merge(
		[]timeline.LeaveItem{vacationItem("r1", "u1", "2024-03-01")},
		[]timeline.LeaveItem{attendanceItem("u1", "2024-03-02", "출석")},
		testRedundant,
	)

	assert.Len(t, merged, 2)
}

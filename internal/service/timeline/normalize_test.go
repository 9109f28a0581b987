package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/study-factory/attend-backend-go/internal/domain/attendance"
	"github.com/study-factory/attend-backend-go/internal/domain/timeline"
	"github.com/study-factory/attend-backend-go/internal/domain/user"
	"github.com/study-factory/attend-backend-go/internal/domain/vacation"
)

func strPtr(s string) *string { return &s }

func testProfiles() map[string]user.User {
	return map[string]user.User{
		"u1": {ID: "u1", Name: "김민준", Branch: "A", Role: user.RoleMember},
		"u2": {ID: "u2", Name: "이서연", Branch: "B", Role: user.RoleStaff},
	}
}

func TestFromVacationRequest_DirectMapping(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	req := vacation.Request{
		ID:        "r1",
		UserID:    "u1",
		Type:      vacation.TypeHalf,
		Date:      "2024-03-01",
		Periods:   []int{1, 2},
		Reason:    nil,
		CreatedAt: created,
	}

	item, ok := FromVacationRequest(req, testProfiles())
	require.True(t, ok)
	assert.Equal(t, "vacation:r1", item.ID)
	assert.Equal(t, timeline.CategoryVacation, item.Category)
	assert.Equal(t, timeline.LeaveTypeHalf, item.LeaveType)
	assert.Equal(t, []int{1, 2}, item.Periods)
	assert.Equal(t, created, item.CreatedAt)
	assert.Equal(t, "김민준", item.UserName)
	assert.Equal(t, "A", item.Branch)
}

func TestFromVacationRequest_UnknownType(t *testing.T) {
	_, ok := FromVacationRequest(vacation.Request{ID: "r1", Type: "bogus"}, nil)
	assert.False(t, ok)
}

func TestFromAttendanceLog_EligibleRow(t *testing.T) {
	log := attendance.Log{
		UserID: "u2",
		Date:   "2024-03-01",
		Period: 3,
		Status: strPtr("병원"),
	}

	item, ok := FromAttendanceLog(log, testProfiles())
	require.True(t, ok)
	assert.Equal(t, timeline.CategoryAttendance, item.Category)
	assert.Equal(t, timeline.LeaveTypeSpecialLog, item.LeaveType)
	assert.Equal(t, []int{3}, item.Periods)
	assert.Equal(t, "병원", *item.Reason)
	assert.Equal(t, "이서연", item.UserName)
}

func TestFromAttendanceLog_NilStatusSkipped(t *testing.T) {
	_, ok := FromAttendanceLog(attendance.Log{UserID: "u1", Date: "2024-03-01", Period: 2}, nil)
	assert.False(t, ok)
}

func TestNormalizeAttendanceLogs_SkipsStatusless(t *testing.T) {
	logs := []attendance.Log{
		{UserID: "u1", Date: "2024-03-01", Period: 1, Status: strPtr("출석")},
		{UserID: "u1", Date: "2024-03-01", Period: 2},
		{UserID: "u2", Date: "2024-03-01", Period: 5, Status: strPtr("알바")},
	}

	items := NormalizeAttendanceLogs(logs, testProfiles())
	assert.Len(t, items, 2)
}

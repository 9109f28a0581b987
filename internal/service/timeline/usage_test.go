package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/study-factory/attend-backend-go/internal/domain/user"
	"github.com/study-factory/attend-backend-go/internal/domain/vacation"
)

func TestUsageByUser_FullPlusHalf(t *testing.T) {
	requests := []vacation.Request{
		{ID: "r1", UserID: "u1", Type: vacation.TypeFull, Date: "2024-01-22"},
		{ID: "r2", UserID: "u1", Type: vacation.TypeHalf, Date: "2024-01-24", Periods: []int{5, 6, 7}},
	}

	usage := UsageByUser(requests, []string{"u1"})
	assert.InDelta(t, 1.5, usage["u1"], 1e-9)
}

func TestUsageByUser_ReasonedRowsContributeNothing(t *testing.T) {
	requests := []vacation.Request{
		{ID: "r1", UserID: "u1", Type: vacation.TypeFull, Date: "2024-01-22", Reason: strPtr("병원")},
		{ID: "r2", UserID: "u1", Type: vacation.TypeSpecial, Date: "2024-01-23", Reason: strPtr("스터디")},
	}

	usage := UsageByUser(requests, []string{"u1"})
	assert.Zero(t, usage["u1"])
}

func TestUsageByUser_UserWithoutRowsIsPresent(t *testing.T) {
	usage := UsageByUser(nil, []string{"u1", "u2"})

	v, ok := usage["u2"]
	assert.True(t, ok)
	assert.Zero(t, v)
}

func TestUsageByUser_PerUserGrouping(t *testing.T) {
	requests := []vacation.Request{
		{ID: "r1", UserID: "u1", Type: vacation.TypeFull, Date: "2024-01-22"},
		{ID: "r2", UserID: "u2", Type: vacation.TypeHalf, Date: "2024-01-22", Periods: []int{1}},
	}

	usage := UsageByUser(requests, []string{"u1", "u2"})
	assert.InDelta(t, 1.0, usage["u1"], 1e-9)
	assert.InDelta(t, 0.5, usage["u2"], 1e-9)
}

func TestPolicy_WeeklyCap(t *testing.T) {
	policy := Policy{WeeklyCapStaff: 2.0, WeeklyCapMember: 1.5}

	assert.Equal(t, 2.0, policy.WeeklyCap(user.RoleStaff))
	assert.Equal(t, 2.0, policy.WeeklyCap(user.RoleAdmin))
	assert.Equal(t, 1.5, policy.WeeklyCap(user.RoleMember))
}

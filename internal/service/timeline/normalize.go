package timeline

import (
	"github.com/study-factory/attend-backend-go/internal/domain/attendance"
	"github.com/study-factory/attend-backend-go/internal/domain/timeline"
	"github.com/study-factory/attend-backend-go/internal/domain/user"
	"github.com/study-factory/attend-backend-go/internal/domain/vacation"
)

// FromVacationRequest maps a vacation_requests row onto a LeaveItem. Rows
// with an unknown type produce no item.
func FromVacationRequest(req vacation.Request, profiles map[string]user.User) (timeline.LeaveItem, bool) {
	var leaveType timeline.LeaveType
	switch req.Type {
	case vacation.TypeFull:
		leaveType = timeline.LeaveTypeFull
	case vacation.TypeHalf:
		leaveType = timeline.LeaveTypeHalf
	case vacation.TypeSpecial:
		leaveType = timeline.LeaveTypeSpecial
	default:
		return timeline.LeaveItem{}, false
	}

	item := timeline.LeaveItem{
		ID:        "vacation:" + req.ID,
		UserID:    req.UserID,
		Date:      req.Date,
		Category:  timeline.CategoryVacation,
		LeaveType: leaveType,
		Periods:   req.Periods,
		Reason:    req.Reason,
		CreatedAt: req.CreatedAt,
	}

	if profile, ok := profiles[req.UserID]; ok {
		item.UserName = profile.Name
		item.Branch = profile.Branch
	}

	return item, true
}

// FromAttendanceLog maps one attendance_logs row onto a LeaveItem. Only rows
// with a status are eligible; each row carries a single period, grouping is
// the next step's job.
func FromAttendanceLog(log attendance.Log, profiles map[string]user.User) (timeline.LeaveItem, bool) {
	if log.Status == nil {
		return timeline.LeaveItem{}, false
	}

	item := timeline.LeaveItem{
		UserID:    log.UserID,
		Date:      log.Date,
		Category:  timeline.CategoryAttendance,
		LeaveType: timeline.LeaveTypeSpecialLog,
		Periods:   []int{log.Period},
		Reason:    log.Status,
		CreatedAt: log.CreatedAt,
	}

	if profile, ok := profiles[log.UserID]; ok {
		item.UserName = profile.Name
		item.Branch = profile.Branch
	}

	return item, true
}

// NormalizeVacationRequests maps a batch of rows, skipping ineligible ones.
func NormalizeVacationRequests(requests []vacation.Request, profiles map[string]user.User) []timeline.LeaveItem {
	items := make([]timeline.LeaveItem, 0, len(requests))
	for _, req := range requests {
		if item, ok := FromVacationRequest(req, profiles); ok {
			items = append(items, item)
		}
	}
	return items
}

// NormalizeAttendanceLogs maps a batch of rows, skipping statusless ones.
func NormalizeAttendanceLogs(logs []attendance.Log, profiles map[string]user.User) []timeline.LeaveItem {
	items := make([]timeline.LeaveItem, 0, len(logs))
	for _, log := range logs {
		if item, ok := FromAttendanceLog(log, profiles); ok {
			items = append(items, item)
		}
	}
	return items
}

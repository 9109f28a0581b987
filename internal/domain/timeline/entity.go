package timeline

import "time"

// Category tags the source a LeaveItem was synthesized from.
type Category string

const (
	// CategoryVacation items come from explicit vacation requests.
	CategoryVacation Category = "vacation"
	// CategoryAttendance items are derived from attendance-log statuses.
	CategoryAttendance Category = "attendance"
)

// LeaveType classifies how much of the day an item covers.
type LeaveType string

const (
	LeaveTypeFull LeaveType = "full"
	LeaveTypeHalf LeaveType = "half"
	// LeaveTypeSpecial is the legacy reason-based absence stored as a
	// vacation request.
	LeaveTypeSpecial LeaveType = "special"
	// LeaveTypeSpecialLog is a reason-based absence recorded per period in
	// the attendance log, the current path.
	LeaveTypeSpecialLog LeaveType = "special_log"
)

// Class buckets an item for the type-toggle filter. Classification of half
// and special_log items hinges on period 1 alone: period 1 present means AM,
// anything else is PM even though periods 2-4 are conventionally still
// morning. The whole system carries this simplification; keep it.
type Class string

const (
	ClassFull   Class = "full"
	ClassHalfAM Class = "half_am"
	ClassHalfPM Class = "half_pm"
	ClassOther  Class = "other"
)

// LeaveItem is the unified timeline entry, synthesized fresh on every fetch
// from either a vacation request or a group of attendance-log rows. It holds
// display fields resolved from the owning user's profile; it does not own the
// profile.
type LeaveItem struct {
	ID       string
	UserID   string
	UserName string
	Branch   string

	Date      string // YYYY-MM-DD, always a single day
	Category  Category
	LeaveType LeaveType
	Periods   []int // unique ascending; empty for full-day items
	Reason    *string

	CreatedAt time.Time

	// WeeklyUsage is the owner's ordinary-leave weight inside the ISO week
	// containing Date, filled in by the aggregation step.
	WeeklyUsage float64
}

// Classify buckets the item for the type-toggle filter.
func (it LeaveItem) Classify() Class {
	switch it.LeaveType {
	case LeaveTypeFull:
		return ClassFull
	case LeaveTypeHalf, LeaveTypeSpecialLog:
		for _, p := range it.Periods {
			if p == 1 {
				return ClassHalfAM
			}
		}
		return ClassHalfPM
	default:
		return ClassOther
	}
}

// shortReasons are the reason tags displayed verbatim; anything else shows as
// 기타.
var shortReasons = map[string]struct{}{
	"알바":  {},
	"스터디": {},
	"병원":  {},
}

// Label renders the item's display label: 월차 for full days, 반차 for half
// days, the short-form reason for special leave, 기타 otherwise.
func (it LeaveItem) Label() string {
	switch it.LeaveType {
	case LeaveTypeFull:
		return "월차"
	case LeaveTypeHalf:
		return "반차"
	default:
		if it.Reason == nil {
			return "기타"
		}
		if _, ok := shortReasons[*it.Reason]; ok {
			return *it.Reason
		}
		return "기타"
	}
}

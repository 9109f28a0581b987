package vacation

import "time"

// Type classifies a vacation request.
type Type string

const (
	// TypeFull is a whole-day leave.
	TypeFull Type = "full"
	// TypeHalf covers a subset of the day's periods.
	TypeHalf Type = "half"
	// TypeSpecial is the legacy reason-based absence kept for old rows. New
	// reason-based absences are recorded per period in the attendance log.
	TypeSpecial Type = "special"
)

// Request is one row of the vacation_requests table: an explicit,
// user-submitted leave record for a single day.
type Request struct {
	ID      string
	UserID  string
	Type    Type
	Date    string // YYYY-MM-DD
	Periods []int  // nil for full-day requests
	Reason  *string

	CreatedAt time.Time
}

// IsOrdinary reports whether the request counts toward the weekly usage cap.
// Reason-tagged requests are special leave and never count.
func (r Request) IsOrdinary() bool {
	return r.Reason == nil
}

// Weight is the usage cost of an ordinary request: 1.0 for a full day,
// 0.5 for a half day.
func (r Request) Weight() float64 {
	switch r.Type {
	case TypeFull:
		return 1.0
	case TypeHalf:
		return 0.5
	default:
		return 0
	}
}

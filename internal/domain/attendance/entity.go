package attendance

import "time"

// MorningPeriod is the first class period of the day. The today view keeps it
// as its own display item instead of grouping it with the rest of a user's
// periods.
const MorningPeriod = 1

// Log is one row of the attendance_logs table: a per-period status for one
// user and day. A nil status means the period carries no record.
type Log struct {
	UserID string
	Date   string // YYYY-MM-DD
	Period int    // 1..7
	Status *string

	CreatedAt time.Time
}

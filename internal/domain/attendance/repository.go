package attendance

import "context"

// LogRepository - interface for the attendance_logs table, keyed by
// (user_id, date, period)
type LogRepository interface {
	// ApplyBatch applies one day's slot changes atomically. Entries with a
	// nil status delete the slot.
	ApplyBatch(ctx context.Context, date string, entries []UpsertEntry) error
	ListByDate(ctx context.Context, date string) ([]Log, error)
	ListByUserMonth(ctx context.Context, userID, month string) ([]Log, error)
}

package attendance

import "context"

// LogService - business logic for attendance logs
type LogService interface {
	// Upsert applies a batch of per-period status changes for one day.
	// Entries with a nil status clear the slot.
	Upsert(ctx context.Context, req UpsertRequest) error
	ListByDate(ctx context.Context, date string) ([]LogResponse, error)
	ListMyMonth(ctx context.Context, userID, month string) ([]LogResponse, error)
}

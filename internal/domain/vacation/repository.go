package vacation

import "context"

// RequestRepository - interface for the vacation_requests table
type RequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	Delete(ctx context.Context, id string) error
	ListByDate(ctx context.Context, date string) ([]Request, error)
	// ListByRange returns every request with from <= date <= to.
	ListByRange(ctx context.Context, from, to string) ([]Request, error)
	ListByUserMonth(ctx context.Context, userID, month string) ([]Request, error)
}

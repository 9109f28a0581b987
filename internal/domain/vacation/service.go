package vacation

import "context"

// RequestService - business logic for vacation requests
type RequestService interface {
	// Create validates and stores a request. Ordinary (reasonless) requests
	// are checked against the weekly usage cap and the one-request-per-day
	// rule.
	Create(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)
	// Delete removes a request. Members may only delete their own; staff may
	// delete any.
	Delete(ctx context.Context, id, actorID string, actorIsStaff bool) error
	ListByDate(ctx context.Context, date string) ([]RequestResponse, error)
	ListByRange(ctx context.Context, from, to string) ([]RequestResponse, error)
	ListMyMonth(ctx context.Context, query MonthQuery) ([]RequestResponse, error)
}

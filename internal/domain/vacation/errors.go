package vacation

import "errors"

var (
	ErrRequestNotFound   = errors.New("Vacation request not found")
	ErrDuplicateRequest  = errors.New("Vacation request already exists for this date")
	ErrWeeklyCapExceeded = errors.New("Weekly leave cap exceeded")
	ErrNotOwner          = errors.New("Vacation request belongs to another user")
)

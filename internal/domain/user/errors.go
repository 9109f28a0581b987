package user

import "errors"

var (
	ErrUserNotFound        = errors.New("User not found")
	ErrStaffAccessRequired = errors.New("Staff access required")
	ErrAdminAccessRequired = errors.New("Admin access required")
)

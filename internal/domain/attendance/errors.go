package attendance

import "errors"

var (
	ErrLogNotFound = errors.New("Attendance log not found")
)

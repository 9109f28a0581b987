package attendance

import (
	"github.com/study-factory/attend-backend-go/internal/pkg/validator"
)

// UpsertEntry sets or clears the status of one (user, period) slot. A nil
// status deletes the row.
type UpsertEntry struct {
	UserID string  `json:"user_id"`
	Period int     `json:"period"`
	Status *string `json:"status"`
}

type UpsertRequest struct {
	Date    string        `json:"date"`
	Entries []UpsertEntry `json:"entries"`
}

func (r *UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entries",
			Message: "entries are required",
		})
	}

	for _, entry := range r.Entries {
		if validator.IsEmpty(entry.UserID) {
			errs = append(errs, validator.ValidationError{
				Field:   "user_id",
				Message: "user_id is required for every entry",
			})
			break
		}
		if !validator.IsValidPeriod(entry.Period) {
			errs = append(errs, validator.ValidationError{
				Field:   "period",
				Message: "period must be between 1 and 7",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LogResponse is the API projection of a log row.
type LogResponse struct {
	UserID    string  `json:"user_id"`
	Date      string  `json:"date"`
	Period    int     `json:"period"`
	Status    *string `json:"status"`
	CreatedAt string  `json:"created_at"`
}

func (l Log) Response() LogResponse {
	return LogResponse{
		UserID:    l.UserID,
		Date:      l.Date,
		Period:    l.Period,
		Status:    l.Status,
		CreatedAt: l.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

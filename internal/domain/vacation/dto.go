package vacation

import (
	"github.com/study-factory/attend-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	UserID  string  `json:"-"`
	Type    Type    `json:"type"`
	Date    string  `json:"date"`
	Periods []int   `json:"periods,omitempty"`
	Reason  *string `json:"reason,omitempty"`
}

func (r *CreateRequestRequest) Validate() error {
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

	switch r.Type {
	case TypeFull, TypeSpecial:
		if len(r.Periods) > 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "periods",
				Message: "periods are not allowed for this type",
			})
		}
	case TypeHalf:
		if len(r.Periods) == 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "periods",
				Message: "half-day requests need at least one period",
			})
		} else if !validator.IsValidPeriods(r.Periods) {
			errs = append(errs, validator.ValidationError{
				Field:   "periods",
				Message: "periods must be unique ascending values between 1 and 7",
			})
		}
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of full, half, special",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MonthQuery struct {
	UserID string
	Month  string // YYYY-MM
}

func (q *MonthQuery) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(q.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if !validator.IsValidMonth(q.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be YYYY-MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RequestResponse is the API projection of a request.
type RequestResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Type      Type    `json:"type"`
	Date      string  `json:"date"`
	Periods   []int   `json:"periods,omitempty"`
	Reason    *string `json:"reason,omitempty"`
	CreatedAt string  `json:"created_at"`
}

func (r Request) Response() RequestResponse {
	return RequestResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Type:      r.Type,
		Date:      r.Date,
		Periods:   r.Periods,
		Reason:    r.Reason,
		CreatedAt: r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

package timeline

import (
	"github.com/study-factory/attend-backend-go/internal/pkg/validator"
)

// DayQuery selects and filters the single-day overview.
type DayQuery struct {
	Date   string
	Branch string // "ALL" or a branch name
	Search string // substring of the display name, case-sensitive
	// Classes is the active type-toggle set; empty enables everything.
	Classes []Class
}

func (q *DayQuery) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(q.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(q.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	for _, c := range q.Classes {
		switch c {
		case ClassFull, ClassHalfAM, ClassHalfPM, ClassOther:
		default:
			errs = append(errs, validator.ValidationError{
				Field:   "types",
				Message: "unknown leave type filter: " + string(c),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HistoryQuery selects one user's items for a calendar month.
type HistoryQuery struct {
	UserID string
	Month  string // YYYY-MM
}

func (q *HistoryQuery) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(q.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

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

// ItemResponse is the API projection of a LeaveItem.
type ItemResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	Branch      string    `json:"branch"`
	Date        string    `json:"date"`
	Category    Category  `json:"category"`
	LeaveType   LeaveType `json:"leave_type"`
	Periods     []int     `json:"periods,omitempty"`
	Reason      *string   `json:"reason,omitempty"`
	Label       string    `json:"label"`
	Class       Class     `json:"class"`
	CreatedAt   string    `json:"created_at"`
	WeeklyUsage float64   `json:"weekly_usage"`
}

func (it LeaveItem) Response() ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		UserID:      it.UserID,
		UserName:    it.UserName,
		Branch:      it.Branch,
		Date:        it.Date,
		Category:    it.Category,
		LeaveType:   it.LeaveType,
		Periods:     it.Periods,
		Reason:      it.Reason,
		Label:       it.Label(),
		Class:       it.Classify(),
		CreatedAt:   it.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		WeeklyUsage: it.WeeklyUsage,
	}
}

package response

import (
	"errors"
	"net/http"

	"github.com/study-factory/attend-backend-go/internal/domain/attendance"
	"github.com/study-factory/attend-backend-go/internal/domain/auth"
	"github.com/study-factory/attend-backend-go/internal/domain/user"
	"github.com/study-factory/attend-backend-go/internal/domain/vacation"
	"github.com/study-factory/attend-backend-go/internal/pkg/database"
	"github.com/study-factory/attend-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A missing column means the binary is ahead of the schema (or the
	// other way around) mid-deploy. Surface it as a retryable 503.
	if database.IsSchemaOutdated(err) {
		SchemaOutdated(w)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrLoginTimeout):
		writeJSON(w, http.StatusGatewayTimeout, Response{
			Success: false,
			Error: &ErrorDetail{
				Code:    "LOGIN_TIMEOUT",
				Message: "Login took too long, please try again",
			},
		})

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrStaffAccessRequired):
		Forbidden(w, "Staff access required")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Vacation domain errors
	case errors.Is(err, vacation.ErrRequestNotFound):
		NotFound(w, "Vacation request not found")
	case errors.Is(err, vacation.ErrDuplicateRequest):
		Conflict(w, "A request already exists for this date")
	case errors.Is(err, vacation.ErrWeeklyCapExceeded):
		BadRequest(w, "Weekly vacation limit reached", nil)
	case errors.Is(err, vacation.ErrNotOwner):
		Forbidden(w, "Only the owner or staff can delete this request")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrLogNotFound):
		NotFound(w, "Attendance log not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

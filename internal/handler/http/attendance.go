package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/study-factory/attend-backend-go/internal/domain/attendance"
	"github.com/study-factory/attend-backend-go/internal/handler/http/middleware"
	"github.com/study-factory/attend-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	ListMyMonth(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.LogService
}

func NewAttendanceHandler(attendanceService attendance.LogService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Upsert implements AttendanceHandler. Staff only; a nil status in an entry
// clears that slot.
func (h *AttendanceHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.Upsert(r.Context(), req); err != nil {
		slog.Error("Upsert attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", nil)
}

// ListByDate implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date is required", nil)
		return
	}

	logs, err := h.attendanceService.ListByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}

// ListMyMonth implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListMyMonth(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.SessionFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	logs, err := h.attendanceService.ListMyMonth(r.Context(), session.UserID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}

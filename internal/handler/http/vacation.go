package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/study-factory/attend-backend-go/internal/domain/vacation"
	"github.com/study-factory/attend-backend-go/internal/handler/http/middleware"
	"github.com/study-factory/attend-backend-go/internal/handler/http/response"
)

type VacationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMyMonth(w http.ResponseWriter, r *http.Request)
}

type VacationHandlerImpl struct {
	vacationService vacation.RequestService
}

func NewVacationHandler(vacationService vacation.RequestService) VacationHandler {
	return &VacationHandlerImpl{vacationService: vacationService}
}

// Create implements VacationHandler. Members file their own requests; staff
// may file on behalf of someone else via user_id.
func (h *VacationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.SessionFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req vacation.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create vacation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.UserID = session.UserID
	if target := r.URL.Query().Get("user_id"); target != "" && target != session.UserID {
		if !session.IsStaff() {
			response.Forbidden(w, "Staff access required")
			return
		}
		req.UserID = target
	}

	created, err := h.vacationService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create vacation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Vacation request created", created)
}

// Delete implements VacationHandler.
func (h *VacationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.SessionFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.vacationService.Delete(r.Context(), id, session.UserID, session.IsStaff()); err != nil {
		slog.Error("Delete vacation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation request deleted", nil)
}

// List implements VacationHandler. Accepts either a single date or a
// from/to range.
func (h *VacationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var requests []vacation.RequestResponse
	var err error
	switch {
	case q.Get("date") != "":
		requests, err = h.vacationService.ListByDate(r.Context(), q.Get("date"))
	case q.Get("from") != "" && q.Get("to") != "":
		requests, err = h.vacationService.ListByRange(r.Context(), q.Get("from"), q.Get("to"))
	default:
		response.BadRequest(w, "date or from/to is required", nil)
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListMyMonth implements VacationHandler.
func (h *VacationHandlerImpl) ListMyMonth(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.SessionFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.vacationService.ListMyMonth(r.Context(), vacation.MonthQuery{
		UserID: session.UserID,
		Month:  r.URL.Query().Get("month"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/study-factory/attend-backend-go/internal/domain/timeline"
	"github.com/study-factory/attend-backend-go/internal/handler/http/middleware"
	"github.com/study-factory/attend-backend-go/internal/handler/http/response"
	"github.com/study-factory/attend-backend-go/internal/pkg/changefeed"
	"github.com/study-factory/attend-backend-go/internal/pkg/dateutil"
	"github.com/study-factory/attend-backend-go/internal/pkg/jwt"
)

type TimelineHandler interface {
	DayOverview(w http.ResponseWriter, r *http.Request)
	MonthHistory(w http.ResponseWriter, r *http.Request)
	WeeklyUsage(w http.ResponseWriter, r *http.Request)
	StreamToken(w http.ResponseWriter, r *http.Request)
	Events(w http.ResponseWriter, r *http.Request)
}

type TimelineHandlerImpl struct {
	timelineService timeline.TimelineService
	jwtService      jwt.Service
	feed            *changefeed.Hub
}

func NewTimelineHandler(timelineService timeline.TimelineService, jwtService jwt.Service, feed *changefeed.Hub) TimelineHandler {
	return &TimelineHandlerImpl{
		timelineService: timelineService,
		jwtService:      jwtService,
		feed:            feed,
	}
}

// DayOverview implements TimelineHandler. Defaults to today and all branches.
func (h *TimelineHandlerImpl) DayOverview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := timeline.DayQuery{
		Date:   q.Get("date"),
		Branch: q.Get("branch"),
		Search: q.Get("search"),
	}
	if query.Date == "" {
		query.Date = dateutil.Today()
	}
	if query.Branch == "" {
		query.Branch = "ALL"
	}
	if types := q.Get("types"); types != "" {
		for _, t := range strings.Split(types, ",") {
			query.Classes = append(query.Classes, timeline.Class(strings.TrimSpace(t)))
		}
	}

	items, err := h.timelineService.DayOverview(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// MonthHistory implements TimelineHandler. Members see their own history;
// staff may pass user_id to inspect someone else's.
func (h *TimelineHandlerImpl) MonthHistory(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.SessionFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := timeline.HistoryQuery{
		UserID: session.UserID,
		Month:  r.URL.Query().Get("month"),
	}
	if target := r.URL.Query().Get("user_id"); target != "" && target != session.UserID {
		if !session.IsStaff() {
			response.Forbidden(w, "Staff access required")
			return
		}
		query.UserID = target
	}

	items, err := h.timelineService.MonthHistory(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// WeeklyUsage returns the ordinary-leave usage per requested user for the
// week containing date.
func (h *TimelineHandlerImpl) WeeklyUsage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	date := q.Get("date")
	if date == "" {
		date = dateutil.Today()
	}
	userIDs := q["user_id"]
	if len(userIDs) == 0 {
		response.BadRequest(w, "at least one user_id is required", nil)
		return
	}

	usage, err := h.timelineService.WeeklyUsage(r.Context(), date, userIDs)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, usage)
}

// StreamToken issues a short-lived token for the events stream, which cannot
// carry an Authorization header.
func (h *TimelineHandlerImpl) StreamToken(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.SessionFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	token, expiresIn, err := h.jwtService.GenerateStreamToken(session.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"token":      token,
		"expires_in": expiresIn,
	})
}

// Events implements TimelineHandler. It streams coarse change notifications
// over SSE; the client refetches the timeline when one arrives.
func (h *TimelineHandlerImpl) Events(w http.ResponseWriter, r *http.Request) {
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	userID, err := h.jwtService.ValidateStreamToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.feed.Subscribe(changefeed.TableVacationRequests, changefeed.TableAttendanceLogs)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"user_id\":%q}\n\n", userID)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: change\ndata: {\"table\":%q,\"op\":%q}\n\n", event.Table, event.Op)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

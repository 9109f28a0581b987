package vacation

import (
	"context"
	"fmt"

	"github.com/study-factory/attend-backend-go/internal/domain/user"
	"github.com/study-factory/attend-backend-go/internal/domain/vacation"
	"github.com/study-factory/attend-backend-go/internal/pkg/changefeed"
	"github.com/study-factory/attend-backend-go/internal/pkg/dateutil"
	timelineService "github.com/study-factory/attend-backend-go/internal/service/timeline"
)

type RequestServiceImpl struct {
	vacationRepo vacation.RequestRepository
	userRepo     user.UserRepository
	feed         *changefeed.Hub
	policy       timelineService.Policy
}

func NewRequestService(
	vacationRepo vacation.RequestRepository,
	userRepo user.UserRepository,
	feed *changefeed.Hub,
	policy timelineService.Policy,
) vacation.RequestService {
	return &RequestServiceImpl{
		vacationRepo: vacationRepo,
		userRepo:     userRepo,
		feed:         feed,
		policy:       policy,
	}
}

// Create implements vacation.RequestService.
func (s *RequestServiceImpl) Create(ctx context.Context, req vacation.CreateRequestRequest) (vacation.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.RequestResponse{}, err
	}

	owner, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return vacation.RequestResponse{}, err
	}

	sameDay, err := s.vacationRepo.ListByRange(ctx, req.Date, req.Date)
	if err != nil {
		return vacation.RequestResponse{}, fmt.Errorf("failed to check existing requests: %w", err)
	}
	if req.Reason == nil {
		for _, existing := range sameDay {
			if existing.UserID == req.UserID && existing.IsOrdinary() {
				return vacation.RequestResponse{}, vacation.ErrDuplicateRequest
			}
		}

		if err := s.checkWeeklyCap(ctx, owner, req); err != nil {
			return vacation.RequestResponse{}, err
		}
	}

	created, err := s.vacationRepo.Create(ctx, vacation.Request{
		UserID:  req.UserID,
		Type:    req.Type,
		Date:    req.Date,
		Periods: req.Periods,
		Reason:  req.Reason,
	})
	if err != nil {
		return vacation.RequestResponse{}, fmt.Errorf("failed to create vacation request: %w", err)
	}

	s.feed.Publish(changefeed.TableVacationRequests, "insert")

	return created.Response(), nil
}

// checkWeeklyCap rejects an ordinary request that would push the owner's
// usage for the request's Monday-Sunday week past the role cap.
func (s *RequestServiceImpl) checkWeeklyCap(ctx context.Context, owner user.User, req vacation.CreateRequestRequest) error {
	weekStart, weekEnd, err := dateutil.WeekRange(req.Date)
	if err != nil {
		return err
	}

	weekRequests, err := s.vacationRepo.ListByRange(ctx, weekStart, weekEnd)
	if err != nil {
		return fmt.Errorf("failed to fetch week requests: %w", err)
	}

	usage := timelineService.UsageByUser(weekRequests, []string{owner.ID})

	pending := vacation.Request{Type: req.Type, Reason: req.Reason}
	if usage[owner.ID]+pending.Weight() > s.policy.WeeklyCap(owner.Role) {
		return vacation.ErrWeeklyCapExceeded
	}

	return nil
}

// Delete implements vacation.RequestService.
func (s *RequestServiceImpl) Delete(ctx context.Context, id, actorID string, actorIsStaff bool) error {
	request, err := s.vacationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !actorIsStaff && request.UserID != actorID {
		return vacation.ErrNotOwner
	}

	if err := s.vacationRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.feed.Publish(changefeed.TableVacationRequests, "delete")

	return nil
}

// ListByDate implements vacation.RequestService.
func (s *RequestServiceImpl) ListByDate(ctx context.Context, date string) ([]vacation.RequestResponse, error) {
	requests, err := s.vacationRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// ListByRange implements vacation.RequestService.
func (s *RequestServiceImpl) ListByRange(ctx context.Context, from, to string) ([]vacation.RequestResponse, error) {
	requests, err := s.vacationRepo.ListByRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// ListMyMonth implements vacation.RequestService.
func (s *RequestServiceImpl) ListMyMonth(ctx context.Context, query vacation.MonthQuery) ([]vacation.RequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.vacationRepo.ListByUserMonth(ctx, query.UserID, query.Month)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

func toResponses(requests []vacation.Request) []vacation.RequestResponse {
	responses := make([]vacation.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, req.Response())
	}
	return responses
}

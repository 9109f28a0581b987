package timeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/study-factory/attend-backend-go/internal/domain/attendance"
	"github.com/study-factory/attend-backend-go/internal/domain/timeline"
	"github.com/study-factory/attend-backend-go/internal/domain/user"
	"github.com/study-factory/attend-backend-go/internal/domain/vacation"
	"github.com/study-factory/attend-backend-go/internal/pkg/dateutil"
)

type TimelineServiceImpl struct {
	vacationRepo   vacation.RequestRepository
	attendanceRepo attendance.LogRepository
	userRepo       user.UserRepository
	policy         Policy
}

func NewTimelineService(
	vacationRepo vacation.RequestRepository,
	attendanceRepo attendance.LogRepository,
	userRepo user.UserRepository,
	policy Policy,
) timeline.TimelineService {
	return &TimelineServiceImpl{
		vacationRepo:   vacationRepo,
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		policy:         policy,
	}
}

// DayOverview implements timeline.TimelineService. Items are synthesized
// fresh on every call; nothing is cached between fetches.
func (s *TimelineServiceImpl) DayOverview(ctx context.Context, query timeline.DayQuery) ([]timeline.ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	weekStart, weekEnd, err := dateutil.WeekRange(query.Date)
	if err != nil {
		return nil, err
	}

	var (
		requests     []vacation.Request
		logs         []attendance.Log
		users        []user.User
		weekRequests []vacation.Request
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		requests, err = s.vacationRepo.ListByDate(gctx, query.Date)
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = s.attendanceRepo.ListByDate(gctx, query.Date)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.userRepo.List(gctx, user.BranchAll)
		return err
	})
	g.Go(func() error {
		var err error
		weekRequests, err = s.vacationRepo.ListByRange(gctx, weekStart, weekEnd)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch day overview rows: %w", err)
	}

	profiles := profileMap(users)

	vacationItems := NormalizeVacationRequests(requests, profiles)
	// The today view keeps the morning period as its own item.
	attendanceItems := GroupLogs(NormalizeAttendanceLogs(logs, profiles), true)

	merged := Merge(vacationItems, attendanceItems, s.policy.RedundantStatuses)

	usage := UsageByUser(weekRequests, itemUserIDs(merged))
	for i := range merged {
		merged[i].WeeklyUsage = usage[merged[i].UserID]
	}

	filtered := ApplyFilters(merged, query)
	SortByCreatedAtDesc(filtered)

	return toResponses(filtered), nil
}

// MonthHistory implements timeline.TimelineService.
func (s *TimelineServiceImpl) MonthHistory(ctx context.Context, query timeline.HistoryQuery) ([]timeline.ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		requests []vacation.Request
		logs     []attendance.Log
		profile  user.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		requests, err = s.vacationRepo.ListByUserMonth(gctx, query.UserID, query.Month)
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = s.attendanceRepo.ListByUserMonth(gctx, query.UserID, query.Month)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = s.userRepo.GetByID(gctx, query.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch month history rows: %w", err)
	}

	profiles := map[string]user.User{profile.ID: profile}

	vacationItems := NormalizeVacationRequests(requests, profiles)
	attendanceItems := GroupLogs(NormalizeAttendanceLogs(logs, profiles), false)

	merged := Merge(vacationItems, attendanceItems, s.policy.RedundantStatuses)
	merged = FilterMonth(merged, query.Month)
	SortByDateDesc(merged)

	return toResponses(merged), nil
}

// WeeklyUsage implements timeline.TimelineService.
func (s *TimelineServiceImpl) WeeklyUsage(ctx context.Context, date string, userIDs []string) (map[string]float64, error) {
	weekStart, weekEnd, err := dateutil.WeekRange(date)
	if err != nil {
		return nil, err
	}

	requests, err := s.vacationRepo.ListByRange(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch week requests: %w", err)
	}

	return UsageByUser(requests, userIDs), nil
}

func profileMap(users []user.User) map[string]user.User {
	profiles := make(map[string]user.User, len(users))
	for _, u := range users {
		profiles[u.ID] = u
	}
	return profiles
}

func itemUserIDs(items []timeline.LeaveItem) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.UserID]; ok {
			continue
		}
		seen[item.UserID] = struct{}{}
		ids = append(ids, item.UserID)
	}
	return ids
}

func toResponses(items []timeline.LeaveItem) []timeline.ItemResponse {
	responses := make([]timeline.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, item.Response())
	}
	return responses
}

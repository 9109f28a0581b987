package timeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/study-factory/attend-backend-go/internal/domain/attendance"
	"github.com/study-factory/attend-backend-go/internal/domain/timeline"
	"github.com/study-factory/attend-backend-go/internal/domain/user"
	"github.com/study-factory/attend-backend-go/internal/domain/vacation"
	"github.com/study-factory/attend-backend-go/internal/pkg/dateutil"
)

type fakeVacationRepo struct {
	requests []vacation.Request
}

func (f *fakeVacationRepo) Create(ctx context.Context, request vacation.Request) (vacation.Request, error) {
	f.requests = append(f.requests, request)
	return request, nil
}

func (f *fakeVacationRepo) GetByID(ctx context.Context, id string) (vacation.Request, error) {
	for _, req := range f.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return vacation.Request{}, vacation.ErrRequestNotFound
}

func (f *fakeVacationRepo) Delete(ctx context.Context, id string) error {
	for i, req := range f.requests {
		if req.ID == id {
			f.requests = append(f.requests[:i], f.requests[i+1:]...)
			return nil
		}
	}
	return vacation.ErrRequestNotFound
}

func (f *fakeVacationRepo) ListByDate(ctx context.Context, date string) ([]vacation.Request, error) {
	var out []vacation.Request
	for _, req := range f.requests {
		if req.Date == date {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeVacationRepo) ListByRange(ctx context.Context, from, to string) ([]vacation.Request, error) {
	var out []vacation.Request
	for _, req := range f.requests {
		if req.Date >= from && req.Date <= to {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeVacationRepo) ListByUserMonth(ctx context.Context, userID, month string) ([]vacation.Request, error) {
	var out []vacation.Request
	for _, req := range f.requests {
		if req.UserID == userID && dateutil.SameMonth(req.Date, month) {
			out = append(out, req)
		}
	}
	return out, nil
}

type fakeAttendanceRepo struct {
	logs []attendance.Log
}

func (f *fakeAttendanceRepo) ApplyBatch(ctx context.Context, date string, entries []attendance.UpsertEntry) error {
	for _, entry := range entries {
		for i, log := range f.logs {
			if log.UserID == entry.UserID && log.Date == date && log.Period == entry.Period {
				f.logs = append(f.logs[:i], f.logs[i+1:]...)
				break
			}
		}
		if entry.Status != nil {
			f.logs = append(f.logs, attendance.Log{
				UserID: entry.UserID,
				Date:   date,
				Period: entry.Period,
				Status: entry.Status,
			})
		}
	}
	return nil
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date string) ([]attendance.Log, error) {
	var out []attendance.Log
	for _, log := range f.logs {
		if log.Date == date {
			out = append(out, log)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByUserMonth(ctx context.Context, userID, month string) ([]attendance.Log, error) {
	var out []attendance.Log
	for _, log := range f.logs {
		if log.UserID == userID && dateutil.SameMonth(log.Date, month) {
			out = append(out, log)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, branch string) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if branch == "" || branch == user.BranchAll || u.Branch == branch {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) ListBranches(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, u := range f.users {
		if _, ok := seen[u.Branch]; !ok {
			seen[u.Branch] = struct{}{}
			out = append(out, u.Branch)
		}
	}
	return out, nil
}

func testPolicy() Policy {
	return Policy{
		RedundantStatuses: []string{"월차", "반차", "오전", "오후", "출석", "결석", "O", "X"},
		WeeklyCapStaff:    2.0,
		WeeklyCapMember:   1.5,
	}
}

func newTestService(vac *fakeVacationRepo, att *fakeAttendanceRepo, usr *fakeUserRepo) timeline.TimelineService {
	return NewTimelineService(vac, att, usr, testPolicy())
}

// A full-day request plus a generic attendance status on the same day must
// collapse into exactly one item: the vacation request, labeled 월차.
func TestDayOverview_EndToEnd(t *testing.T) {
	vac := &fakeVacationRepo{requests: []vacation.Request{
		{ID: "r1", UserID: "u1", Type: vacation.TypeFull, Date: "2024-03-01",
			CreatedAt: time.Date(2024, 2, 28, 10, 0, 0, 0, time.UTC)},
	}}
	att := &fakeAttendanceRepo{logs: []attendance.Log{
		{UserID: "u1", Date: "2024-03-01", Period: 1, Status: strPtr("출석")},
	}}
	usr := &fakeUserRepo{users: map[string]user.User{
		"u1": {ID: "u1", Name: "김민준", Branch: "A", Role: user.RoleMember},
	}}

	svc := newTestService(vac, att, usr)
	items, err := svc.DayOverview(context.Background(), timeline.DayQuery{
		Date:   "2024-03-01",
		Branch: user.BranchAll,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, timeline.CategoryVacation, items[0].Category)
	assert.Equal(t, "월차", items[0].Label)
	assert.InDelta(t, 1.0, items[0].WeeklyUsage, 1e-9)
}

func TestDayOverview_HospitalSurvivesNextToVacation(t *testing.T) {
	vac := &fakeVacationRepo{requests: []vacation.Request{
		{ID: "r1", UserID: "u1", Type: vacation.TypeFull, Date: "2024-03-01"},
	}}
	att := &fakeAttendanceRepo{logs: []attendance.Log{
		{UserID: "u1", Date: "2024-03-01", Period: 3, Status: strPtr("병원")},
		{UserID: "u1", Date: "2024-03-01", Period: 4, Status: strPtr("병원")},
	}}
	usr := &fakeUserRepo{users: map[string]user.User{
		"u1": {ID: "u1", Name: "김민준", Branch: "A"},
	}}

	svc := newTestService(vac, att, usr)
	items, err := svc.DayOverview(context.Background(), timeline.DayQuery{Date: "2024-03-01"})
	require.NoError(t, err)
	require.Len(t, items, 2)

	var hospital timeline.ItemResponse
	for _, item := range items {
		if item.Category == timeline.CategoryAttendance {
			hospital = item
		}
	}
	assert.Equal(t, []int{3, 4}, hospital.Periods)
	assert.Equal(t, "병원", hospital.Label)
}

func TestDayOverview_MorningPeriodStaysItsOwnItem(t *testing.T) {
	att := &fakeAttendanceRepo{logs: []attendance.Log{
		{UserID: "u1", Date: "2024-03-01", Period: 1, Status: strPtr("병원")},
		{UserID: "u1", Date: "2024-03-01", Period: 3, Status: strPtr("병원")},
		{UserID: "u1", Date: "2024-03-01", Period: 5, Status: strPtr("병원")},
	}}
	usr := &fakeUserRepo{users: map[string]user.User{
		"u1": {ID: "u1", Name: "김민준", Branch: "A"},
	}}

	svc := newTestService(&fakeVacationRepo{}, att, usr)
	items, err := svc.DayOverview(context.Background(), timeline.DayQuery{Date: "2024-03-01"})
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestDayOverview_BranchFilter(t *testing.T) {
	vac := &fakeVacationRepo{requests: []vacation.Request{
		{ID: "r1", UserID: "u1", Type: vacation.TypeFull, Date: "2024-03-01"},
		{ID: "r2", UserID: "u2", Type: vacation.TypeFull, Date: "2024-03-01"},
	}}
	usr := &fakeUserRepo{users: map[string]user.User{
		"u1": {ID: "u1", Name: "김민준", Branch: "A"},
		"u2": {ID: "u2", Name: "이서연", Branch: "B"},
	}}

	svc := newTestService(vac, &fakeAttendanceRepo{}, usr)
	items, err := svc.DayOverview(context.Background(), timeline.DayQuery{Date: "2024-03-01", Branch: "A"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "u1", items[0].UserID)
}

func TestDayOverview_SortNewestFirst(t *testing.T) {
	older := time.Date(2024, 2, 27, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC)
	vac := &fakeVacationRepo{requests: []vacation.Request{
		{ID: "r1", UserID: "u1", Type: vacation.TypeFull, Date: "2024-03-01", CreatedAt: older},
		{ID: "r2", UserID: "u2", Type: vacation.TypeFull, Date: "2024-03-01", CreatedAt: newer},
	}}
	usr := &fakeUserRepo{users: map[string]user.User{
		"u1": {ID: "u1", Name: "김민준", Branch: "A"},
		"u2": {ID: "u2", Name: "이서연", Branch: "A"},
	}}

	svc := newTestService(vac, &fakeAttendanceRepo{}, usr)
	items, err := svc.DayOverview(context.Background(), timeline.DayQuery{Date: "2024-03-01"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "vacation:r2", items[0].ID)
}

func TestDayOverview_InvalidDate(t *testing.T) {
	svc := newTestService(&fakeVacationRepo{}, &fakeAttendanceRepo{}, &fakeUserRepo{})
	_, err := svc.DayOverview(context.Background(), timeline.DayQuery{Date: "03/01/2024"})
	assert.Error(t, err)
}

func TestMonthHistory_SortedByDateDesc(t *testing.T) {
	vac := &fakeVacationRepo{requests: []vacation.Request{
		{ID: "r1", UserID: "u1", Type: vacation.TypeFull, Date: "2024-03-05"},
		{ID: "r2", UserID: "u1", Type: vacation.TypeHalf, Date: "2024-03-12", Periods: []int{1}},
	}}
	att := &fakeAttendanceRepo{logs: []attendance.Log{
		{UserID: "u1", Date: "2024-03-20", Period: 6, Status: strPtr("알바")},
	}}
	usr := &fakeUserRepo{users: map[string]user.User{
		"u1": {ID: "u1", Name: "김민준", Branch: "A"},
	}}

	svc := newTestService(vac, att, usr)
	items, err := svc.MonthHistory(context.Background(), timeline.HistoryQuery{UserID: "u1", Month: "2024-03"})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "2024-03-20", items[0].Date)
	assert.Equal(t, "2024-03-12", items[1].Date)
	assert.Equal(t, "2024-03-05", items[2].Date)
}

func TestWeeklyUsage_MapIncludesEveryRequestedUser(t *testing.T) {
	vac := &fakeVacationRepo{requests: []vacation.Request{
		{ID: "r1", UserID: "u1", Type: vacation.TypeFull, Date: "2024-01-22"},
		{ID: "r2", UserID: "u1", Type: vacation.TypeHalf, Date: "2024-01-26", Periods: []int{5}},
		// Outside the week of 2024-01-22.
		{ID: "r3", UserID: "u1", Type: vacation.TypeFull, Date: "2024-01-29"},
	}}

	svc := newTestService(vac, &fakeAttendanceRepo{}, &fakeUserRepo{})
	usage, err := svc.WeeklyUsage(context.Background(), "2024-01-24", []string{"u1", "u2"})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, usage["u1"], 1e-9)
	assert.Zero(t, usage["u2"])
}

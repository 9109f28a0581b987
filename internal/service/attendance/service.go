package attendance

import (
	"context"
	"fmt"

	"github.com/study-factory/attend-backend-go/internal/domain/attendance"
	"github.com/study-factory/attend-backend-go/internal/pkg/changefeed"
	"github.com/study-factory/attend-backend-go/internal/pkg/validator"
)

type LogServiceImpl struct {
	attendanceRepo attendance.LogRepository
	feed           *changefeed.Hub
}

func NewLogService(attendanceRepo attendance.LogRepository, feed *changefeed.Hub) attendance.LogService {
	return &LogServiceImpl{
		attendanceRepo: attendanceRepo,
		feed:           feed,
	}
}

// Upsert implements attendance.LogService.
func (s *LogServiceImpl) Upsert(ctx context.Context, req attendance.UpsertRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.attendanceRepo.ApplyBatch(ctx, req.Date, req.Entries); err != nil {
		return fmt.Errorf("failed to apply attendance batch: %w", err)
	}

	s.feed.Publish(changefeed.TableAttendanceLogs, "upsert")

	return nil
}

// ListByDate implements attendance.LogService.
func (s *LogServiceImpl) ListByDate(ctx context.Context, date string) ([]attendance.LogResponse, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return nil, validator.ValidationErrors{{Field: "date", Message: "date must be YYYY-MM-DD"}}
	}

	logs, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return toResponses(logs), nil
}

// ListMyMonth implements attendance.LogService.
func (s *LogServiceImpl) ListMyMonth(ctx context.Context, userID, month string) ([]attendance.LogResponse, error) {
	if !validator.IsValidMonth(month) {
		return nil, validator.ValidationErrors{{Field: "month", Message: "month must be YYYY-MM"}}
	}

	logs, err := s.attendanceRepo.ListByUserMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}
	return toResponses(logs), nil
}

func toResponses(logs []attendance.Log) []attendance.LogResponse {
	responses := make([]attendance.LogResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, log.Response())
	}
	return responses
}

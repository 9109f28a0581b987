package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/study-factory/attend-backend-go/internal/domain/attendance"
	"github.com/study-factory/attend-backend-go/internal/pkg/database"
)

type attendanceLogRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceLogRepository(db *database.DB) attendance.LogRepository {
	return &attendanceLogRepositoryImpl{db: db}
}

// ApplyBatch implements attendance.LogRepository. The whole batch commits or
// rolls back as one unit, so a half-saved day is never observable.
func (r *attendanceLogRepositoryImpl) ApplyBatch(ctx context.Context, date string, entries []attendance.UpsertEntry) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, entry := range entries {
			if entry.Status == nil {
				if err := r.delete(txCtx, entry.UserID, date, entry.Period); err != nil {
					return fmt.Errorf("failed to clear attendance slot: %w", err)
				}
				continue
			}
			if err := r.upsert(txCtx, attendance.Log{
				UserID: entry.UserID,
				Date:   date,
				Period: entry.Period,
				Status: entry.Status,
			}); err != nil {
				return fmt.Errorf("failed to upsert attendance log: %w", err)
			}
		}
		return nil
	})
}

func (r *attendanceLogRepositoryImpl) upsert(ctx context.Context, log attendance.Log) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_logs (user_id, date, period, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, date, period)
		DO UPDATE SET status = EXCLUDED.status
	`

	_, err := q.Exec(ctx, query, log.UserID, log.Date, log.Period, log.Status)
	return err
}

func (r *attendanceLogRepositoryImpl) delete(ctx context.Context, userID, date string, period int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM attendance_logs
		WHERE user_id = $1 AND date = $2 AND period = $3
	`

	_, err := q.Exec(ctx, query, userID, date, period)
	return err
}

func (r *attendanceLogRepositoryImpl) ListByDate(ctx context.Context, date string) ([]attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, date, period, status, created_at
		FROM attendance_logs
		WHERE date = $1
		ORDER BY user_id, period
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLogs(rows)
}

func (r *attendanceLogRepositoryImpl) ListByUserMonth(ctx context.Context, userID, month string) ([]attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, date, period, status, created_at
		FROM attendance_logs
		WHERE user_id = $1 AND date LIKE $2 || '-%'
		ORDER BY date DESC, period
	`

	rows, err := q.Query(ctx, query, userID, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLogs(rows)
}

func collectLogs(rows pgx.Rows) ([]attendance.Log, error) {
	var logs []attendance.Log
	for rows.Next() {
		var log attendance.Log
		err := rows.Scan(&log.UserID, &log.Date, &log.Period, &log.Status, &log.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return logs, nil
}

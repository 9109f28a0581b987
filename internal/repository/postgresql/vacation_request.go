package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/study-factory/attend-backend-go/internal/domain/vacation"
	"github.com/study-factory/attend-backend-go/internal/pkg/database"
)

type vacationRequestRepositoryImpl struct {
	db *database.DB
}

func NewVacationRequestRepository(db *database.DB) vacation.RequestRepository {
	return &vacationRequestRepositoryImpl{db: db}
}

func (r *vacationRequestRepositoryImpl) Create(ctx context.Context, request vacation.Request) (vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	query := `
		INSERT INTO vacation_requests (id, user_id, type, date, periods, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		request.ID, request.UserID, request.Type, request.Date,
		periodsToDB(request.Periods), request.Reason,
	).Scan(&request.CreatedAt)
	if err != nil {
		return vacation.Request{}, err
	}

	return request, nil
}

func (r *vacationRequestRepositoryImpl) GetByID(ctx context.Context, id string) (vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, type, date, periods, reason, created_at
		FROM vacation_requests
		WHERE id = $1
	`

	req, err := scanRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.Request{}, vacation.ErrRequestNotFound
		}
		return vacation.Request{}, err
	}

	return req, nil
}

// Delete implements vacation.RequestRepository.
func (r *vacationRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM vacation_requests
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return vacation.ErrRequestNotFound
	}
	return nil
}

func (r *vacationRequestRepositoryImpl) ListByDate(ctx context.Context, date string) ([]vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, type, date, periods, reason, created_at
		FROM vacation_requests
		WHERE date = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRequests(rows)
}

// ListByRange implements vacation.RequestRepository.
func (r *vacationRequestRepositoryImpl) ListByRange(ctx context.Context, from, to string) ([]vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, type, date, periods, reason, created_at
		FROM vacation_requests
		WHERE date >= $1 AND date <= $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRequests(rows)
}

func (r *vacationRequestRepositoryImpl) ListByUserMonth(ctx context.Context, userID, month string) ([]vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	// date is stored as YYYY-MM-DD text, so month membership is a prefix
	// match on YYYY-MM.
	query := `
		SELECT id, user_id, type, date, periods, reason, created_at
		FROM vacation_requests
		WHERE user_id = $1 AND date LIKE $2 || '-%'
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, userID, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRequests(rows)
}

func scanRequest(row pgx.Row) (vacation.Request, error) {
	var req vacation.Request
	var periods []int32
	err := row.Scan(
		&req.ID, &req.UserID, &req.Type, &req.Date,
		&periods, &req.Reason, &req.CreatedAt,
	)
	if err != nil {
		return vacation.Request{}, err
	}
	req.Periods = periodsFromDB(periods)
	return req, nil
}

func collectRequests(rows pgx.Rows) ([]vacation.Request, error) {
	var requests []vacation.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vacation request: %w", err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

func periodsToDB(periods []int) []int32 {
	if periods == nil {
		return nil
	}
	out := make([]int32, len(periods))
	for i, p := range periods {
		out[i] = int32(p)
	}
	return out
}

func periodsFromDB(periods []int32) []int {
	if periods == nil {
		return nil
	}
	out := make([]int, len(periods))
	for i, p := range periods {
		out[i] = int(p)
	}
	return out
}

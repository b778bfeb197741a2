package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"
)

type CreateRoundTripRateParams struct {
	CabID                 int64
	RatePerKm             float64
	DailyKmLimit          int
	DriverAllowancePerDay float64
}

const createRoundTripRate = `
INSERT INTO round_trip_rates (cab_id, rate_per_km, daily_km_limit, driver_allowance_per_day)
VALUES ($1, $2, $3, $4)
RETURNING id, cab_id, rate_per_km, daily_km_limit, driver_allowance_per_day, created_at, updated_at`

func (q *Queries) CreateRoundTripRate(ctx context.Context, arg CreateRoundTripRateParams) (domain.RoundTripRate, error) {
	rate, err := scanRoundTripRate(q.db.QueryRow(ctx, createRoundTripRate,
		arg.CabID, arg.RatePerKm, arg.DailyKmLimit, arg.DriverAllowancePerDay))
	if isUniqueViolation(err) {
		return domain.RoundTripRate{}, domain.ErrDuplicateOffer
	}
	return rate, err
}

// Newest first so that when more than one rate row exists for a cab the
// most recently created one wins.
const listRoundTripRates = `
SELECT id, cab_id, rate_per_km, daily_km_limit, driver_allowance_per_day, created_at, updated_at
FROM round_trip_rates ORDER BY rate_per_km ASC, created_at DESC`

func (q *Queries) ListRoundTripRates(ctx context.Context) ([]domain.RoundTripRate, error) {
	rows, err := q.db.Query(ctx, listRoundTripRates)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RoundTripRate
	for rows.Next() {
		rate, err := scanRoundTripRate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rate)
	}
	return out, rows.Err()
}

type UpdateRoundTripRateParams struct {
	ID                    int64
	RatePerKm             float64
	DailyKmLimit          int
	DriverAllowancePerDay float64
}

const updateRoundTripRate = `
UPDATE round_trip_rates
SET rate_per_km = $2, daily_km_limit = $3, driver_allowance_per_day = $4, updated_at = now()
WHERE id = $1
RETURNING id, cab_id, rate_per_km, daily_km_limit, driver_allowance_per_day, created_at, updated_at`

func (q *Queries) UpdateRoundTripRate(ctx context.Context, arg UpdateRoundTripRateParams) (domain.RoundTripRate, error) {
	rate, err := scanRoundTripRate(q.db.QueryRow(ctx, updateRoundTripRate,
		arg.ID, arg.RatePerKm, arg.DailyKmLimit, arg.DriverAllowancePerDay))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.RoundTripRate{}, domain.ErrNotFound
	}
	return rate, err
}

const deleteRoundTripRate = `DELETE FROM round_trip_rates WHERE id = $1`

func (q *Queries) DeleteRoundTripRate(ctx context.Context, id int64) error {
	tag, err := q.db.Exec(ctx, deleteRoundTripRate, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanRoundTripRate(row pgx.Row) (domain.RoundTripRate, error) {
	var rate domain.RoundTripRate
	err := row.Scan(&rate.ID, &rate.CabID, &rate.RatePerKm, &rate.DailyKmLimit,
		&rate.DriverAllowancePerDay, &rate.CreatedAt, &rate.UpdatedAt)
	return rate, err
}

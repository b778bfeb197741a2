package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"
)

type CreateLocationParams struct {
	CityName  string
	State     string
	IsAirport bool
}

const createLocation = `
INSERT INTO locations (city_name, state, is_airport)
VALUES ($1, $2, $3)
RETURNING id, city_name, state, is_airport, created_at, updated_at`

func (q *Queries) CreateLocation(ctx context.Context, arg CreateLocationParams) (domain.Location, error) {
	loc, err := scanLocation(q.db.QueryRow(ctx, createLocation, arg.CityName, arg.State, arg.IsAirport))
	if isUniqueViolation(err) {
		return domain.Location{}, domain.ErrDuplicateName
	}
	return loc, err
}

const getLocation = `
SELECT id, city_name, state, is_airport, created_at, updated_at
FROM locations WHERE id = $1`

func (q *Queries) GetLocation(ctx context.Context, id int64) (domain.Location, error) {
	loc, err := scanLocation(q.db.QueryRow(ctx, getLocation, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Location{}, domain.ErrNotFound
	}
	return loc, err
}

const listLocations = `
SELECT id, city_name, state, is_airport, created_at, updated_at
FROM locations ORDER BY city_name`

func (q *Queries) ListLocations(ctx context.Context) ([]domain.Location, error) {
	rows, err := q.db.Query(ctx, listLocations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Location
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, loc)
	}
	return out, rows.Err()
}

type UpdateLocationParams struct {
	ID        int64
	CityName  string
	State     string
	IsAirport bool
}

const updateLocation = `
UPDATE locations
SET city_name = $2, state = $3, is_airport = $4, updated_at = now()
WHERE id = $1
RETURNING id, city_name, state, is_airport, created_at, updated_at`

func (q *Queries) UpdateLocation(ctx context.Context, arg UpdateLocationParams) (domain.Location, error) {
	loc, err := scanLocation(q.db.QueryRow(ctx, updateLocation, arg.ID, arg.CityName, arg.State, arg.IsAirport))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Location{}, domain.ErrNotFound
	}
	if isUniqueViolation(err) {
		return domain.Location{}, domain.ErrDuplicateName
	}
	return loc, err
}

const deleteLocation = `DELETE FROM locations WHERE id = $1`

func (q *Queries) DeleteLocation(ctx context.Context, id int64) error {
	tag, err := q.db.Exec(ctx, deleteLocation, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const countPackagesUsingLocation = `
SELECT count(*) FROM one_way_packages
WHERE source_id = $1 OR destination_id = $1`

func (q *Queries) CountPackagesUsingLocation(ctx context.Context, id int64) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx, countPackagesUsingLocation, id).Scan(&n)
	return n, err
}

func scanLocation(row pgx.Row) (domain.Location, error) {
	var loc domain.Location
	err := row.Scan(&loc.ID, &loc.CityName, &loc.State, &loc.IsAirport, &loc.CreatedAt, &loc.UpdatedAt)
	return loc, err
}

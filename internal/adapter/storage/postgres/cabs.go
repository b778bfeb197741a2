package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"
)

type CreateCabParams struct {
	Name               string
	Type               domain.CabType
	CapacityPassengers int
	CapacityLuggage    int
	Features           []string
	Description        string
}

const createCab = `
INSERT INTO cabs (name, type, capacity_passengers, capacity_luggage, features, description)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, name, type, capacity_passengers, capacity_luggage, features, description, created_at, updated_at`

func (q *Queries) CreateCab(ctx context.Context, arg CreateCabParams) (domain.Cab, error) {
	cab, err := scanCab(q.db.QueryRow(ctx, createCab,
		arg.Name, arg.Type, arg.CapacityPassengers, arg.CapacityLuggage, arg.Features, arg.Description))
	if isUniqueViolation(err) {
		return domain.Cab{}, domain.ErrDuplicateName
	}
	return cab, err
}

const getCab = `
SELECT id, name, type, capacity_passengers, capacity_luggage, features, description, created_at, updated_at
FROM cabs WHERE id = $1`

func (q *Queries) GetCab(ctx context.Context, id int64) (domain.Cab, error) {
	cab, err := scanCab(q.db.QueryRow(ctx, getCab, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Cab{}, domain.ErrNotFound
	}
	return cab, err
}

const listCabs = `
SELECT id, name, type, capacity_passengers, capacity_luggage, features, description, created_at, updated_at
FROM cabs ORDER BY name`

func (q *Queries) ListCabs(ctx context.Context) ([]domain.Cab, error) {
	rows, err := q.db.Query(ctx, listCabs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Cab
	for rows.Next() {
		cab, err := scanCab(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, cab)
	}
	return out, rows.Err()
}

type UpdateCabParams struct {
	ID                 int64
	Name               string
	Type               domain.CabType
	CapacityPassengers int
	CapacityLuggage    int
	Features           []string
	Description        string
}

const updateCab = `
UPDATE cabs
SET name = $2, type = $3, capacity_passengers = $4, capacity_luggage = $5,
    features = $6, description = $7, updated_at = now()
WHERE id = $1
RETURNING id, name, type, capacity_passengers, capacity_luggage, features, description, created_at, updated_at`

func (q *Queries) UpdateCab(ctx context.Context, arg UpdateCabParams) (domain.Cab, error) {
	cab, err := scanCab(q.db.QueryRow(ctx, updateCab,
		arg.ID, arg.Name, arg.Type, arg.CapacityPassengers, arg.CapacityLuggage, arg.Features, arg.Description))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Cab{}, domain.ErrNotFound
	}
	if isUniqueViolation(err) {
		return domain.Cab{}, domain.ErrDuplicateName
	}
	return cab, err
}

const deleteCab = `DELETE FROM cabs WHERE id = $1`

func (q *Queries) DeleteCab(ctx context.Context, id int64) error {
	tag, err := q.db.Exec(ctx, deleteCab, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCab(row pgx.Row) (domain.Cab, error) {
	var cab domain.Cab
	err := row.Scan(&cab.ID, &cab.Name, &cab.Type, &cab.CapacityPassengers,
		&cab.CapacityLuggage, &cab.Features, &cab.Description, &cab.CreatedAt, &cab.UpdatedAt)
	return cab, err
}

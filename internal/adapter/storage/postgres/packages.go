package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"
)

type CreateOneWayPackageParams struct {
	SourceID         int64
	DestinationID    int64
	CabID            int64
	PriceFixed       int64
	DistanceKm       *float64
	EstimatedHours   int
	EstimatedMinutes int
	PackageFeatures  []string
}

const createOneWayPackage = `
INSERT INTO one_way_packages
  (source_id, destination_id, cab_id, price_fixed, distance_km, estimated_hours, estimated_minutes, package_features)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, source_id, destination_id, cab_id, price_fixed, distance_km,
          estimated_hours, estimated_minutes, package_features, created_at, updated_at`

func (q *Queries) CreateOneWayPackage(ctx context.Context, arg CreateOneWayPackageParams) (domain.OneWayPackage, error) {
	pkg, err := scanOneWayPackage(q.db.QueryRow(ctx, createOneWayPackage,
		arg.SourceID, arg.DestinationID, arg.CabID, arg.PriceFixed,
		arg.DistanceKm, arg.EstimatedHours, arg.EstimatedMinutes, arg.PackageFeatures))
	if isUniqueViolation(err) {
		return domain.OneWayPackage{}, domain.ErrDuplicateOffer
	}
	return pkg, err
}

const getOneWayPackage = `
SELECT id, source_id, destination_id, cab_id, price_fixed, distance_km,
       estimated_hours, estimated_minutes, package_features, created_at, updated_at
FROM one_way_packages WHERE id = $1`

func (q *Queries) GetOneWayPackage(ctx context.Context, id int64) (domain.OneWayPackage, error) {
	pkg, err := scanOneWayPackage(q.db.QueryRow(ctx, getOneWayPackage, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.OneWayPackage{}, domain.ErrNotFound
	}
	return pkg, err
}

const listOneWayPackages = `
SELECT id, source_id, destination_id, cab_id, price_fixed, distance_km,
       estimated_hours, estimated_minutes, package_features, created_at, updated_at
FROM one_way_packages ORDER BY created_at DESC`

func (q *Queries) ListOneWayPackages(ctx context.Context) ([]domain.OneWayPackage, error) {
	rows, err := q.db.Query(ctx, listOneWayPackages)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOneWayPackages(rows)
}

// Newest row first within a price so that when duplicate rows exist for
// the same route and cab, the most recently created one wins.
const listOneWayPackagesByRoute = `
SELECT id, source_id, destination_id, cab_id, price_fixed, distance_km,
       estimated_hours, estimated_minutes, package_features, created_at, updated_at
FROM one_way_packages
WHERE source_id = $1 AND destination_id = $2
ORDER BY price_fixed ASC, created_at DESC`

func (q *Queries) ListOneWayPackagesByRoute(ctx context.Context, sourceID, destinationID int64) ([]domain.OneWayPackage, error) {
	rows, err := q.db.Query(ctx, listOneWayPackagesByRoute, sourceID, destinationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOneWayPackages(rows)
}

type UpdateOneWayPackageParams struct {
	ID               int64
	SourceID         int64
	DestinationID    int64
	CabID            int64
	PriceFixed       int64
	DistanceKm       *float64
	EstimatedHours   int
	EstimatedMinutes int
}

const updateOneWayPackage = `
UPDATE one_way_packages
SET source_id = $2, destination_id = $3, cab_id = $4, price_fixed = $5,
    distance_km = $6, estimated_hours = $7, estimated_minutes = $8, updated_at = now()
WHERE id = $1
RETURNING id, source_id, destination_id, cab_id, price_fixed, distance_km,
          estimated_hours, estimated_minutes, package_features, created_at, updated_at`

func (q *Queries) UpdateOneWayPackage(ctx context.Context, arg UpdateOneWayPackageParams) (domain.OneWayPackage, error) {
	pkg, err := scanOneWayPackage(q.db.QueryRow(ctx, updateOneWayPackage,
		arg.ID, arg.SourceID, arg.DestinationID, arg.CabID, arg.PriceFixed,
		arg.DistanceKm, arg.EstimatedHours, arg.EstimatedMinutes))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.OneWayPackage{}, domain.ErrNotFound
	}
	if isUniqueViolation(err) {
		return domain.OneWayPackage{}, domain.ErrDuplicateOffer
	}
	return pkg, err
}

const deleteOneWayPackage = `DELETE FROM one_way_packages WHERE id = $1`

func (q *Queries) DeleteOneWayPackage(ctx context.Context, id int64) error {
	tag, err := q.db.Exec(ctx, deleteOneWayPackage, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type CreateLocalPackageParams struct {
	CabID         int64
	HoursIncluded int
	KmIncluded    int
	PriceFixed    int64
	ExtraKmRate   float64
	ExtraHourRate float64
}

const createLocalPackage = `
INSERT INTO local_packages (cab_id, hours_included, km_included, price_fixed, extra_km_rate, extra_hour_rate)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, cab_id, hours_included, km_included, price_fixed, extra_km_rate, extra_hour_rate, created_at, updated_at`

func (q *Queries) CreateLocalPackage(ctx context.Context, arg CreateLocalPackageParams) (domain.LocalPackage, error) {
	row := q.db.QueryRow(ctx, createLocalPackage,
		arg.CabID, arg.HoursIncluded, arg.KmIncluded, arg.PriceFixed, arg.ExtraKmRate, arg.ExtraHourRate)
	return scanLocalPackage(row)
}

const listLocalPackages = `
SELECT id, cab_id, hours_included, km_included, price_fixed, extra_km_rate, extra_hour_rate, created_at, updated_at
FROM local_packages ORDER BY created_at DESC`

func (q *Queries) ListLocalPackages(ctx context.Context) ([]domain.LocalPackage, error) {
	rows, err := q.db.Query(ctx, listLocalPackages)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.LocalPackage
	for rows.Next() {
		pkg, err := scanLocalPackage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, pkg)
	}
	return out, rows.Err()
}

type UpdateLocalPackageParams struct {
	ID            int64
	HoursIncluded int
	KmIncluded    int
	PriceFixed    int64
	ExtraKmRate   float64
	ExtraHourRate float64
}

const updateLocalPackage = `
UPDATE local_packages
SET hours_included = $2, km_included = $3, price_fixed = $4,
    extra_km_rate = $5, extra_hour_rate = $6, updated_at = now()
WHERE id = $1
RETURNING id, cab_id, hours_included, km_included, price_fixed, extra_km_rate, extra_hour_rate, created_at, updated_at`

func (q *Queries) UpdateLocalPackage(ctx context.Context, arg UpdateLocalPackageParams) (domain.LocalPackage, error) {
	pkg, err := scanLocalPackage(q.db.QueryRow(ctx, updateLocalPackage,
		arg.ID, arg.HoursIncluded, arg.KmIncluded, arg.PriceFixed, arg.ExtraKmRate, arg.ExtraHourRate))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.LocalPackage{}, domain.ErrNotFound
	}
	return pkg, err
}

const deleteLocalPackage = `DELETE FROM local_packages WHERE id = $1`

func (q *Queries) DeleteLocalPackage(ctx context.Context, id int64) error {
	tag, err := q.db.Exec(ctx, deleteLocalPackage, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectOneWayPackages(rows pgx.Rows) ([]domain.OneWayPackage, error) {
	var out []domain.OneWayPackage
	for rows.Next() {
		pkg, err := scanOneWayPackage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, pkg)
	}
	return out, rows.Err()
}

func scanOneWayPackage(row pgx.Row) (domain.OneWayPackage, error) {
	var pkg domain.OneWayPackage
	err := row.Scan(&pkg.ID, &pkg.SourceID, &pkg.DestinationID, &pkg.CabID, &pkg.PriceFixed,
		&pkg.DistanceKm, &pkg.EstimatedHours, &pkg.EstimatedMinutes, &pkg.PackageFeatures,
		&pkg.CreatedAt, &pkg.UpdatedAt)
	return pkg, err
}

func scanLocalPackage(row pgx.Row) (domain.LocalPackage, error) {
	var pkg domain.LocalPackage
	err := row.Scan(&pkg.ID, &pkg.CabID, &pkg.HoursIncluded, &pkg.KmIncluded, &pkg.PriceFixed,
		&pkg.ExtraKmRate, &pkg.ExtraHourRate, &pkg.CreatedAt, &pkg.UpdatedAt)
	return pkg, err
}

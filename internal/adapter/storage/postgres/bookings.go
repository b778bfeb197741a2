package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"
)

type CreateBookingParams struct {
	Reference         string
	TripType          domain.TripType
	PickupLocationID  *int64
	DropLocationID    *int64
	PickupDate        *time.Time
	PickupTime        string
	JourneyDays       *int
	CustomerName      string
	Mobile            string
	Email             string
	AlternativeNumber string
	FlightNumber      string
	SpecialRequest    string
	CabID             *int64
	OneWayPackageID   *int64
	LocalPackageID    *int64
	EstimatedPrice    *int64
}

const createBooking = `
INSERT INTO bookings
  (reference, trip_type, pickup_location_id, drop_location_id, pickup_date, pickup_time,
   journey_days, customer_name, mobile, email, alternative_number, flight_number,
   special_request, cab_id, one_way_package_id, local_package_id, estimated_price, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, 'PENDING')
RETURNING id, reference, trip_type, pickup_location_id, drop_location_id, pickup_date, pickup_time,
          journey_days, customer_name, mobile, email, alternative_number, flight_number,
          special_request, cab_id, one_way_package_id, local_package_id, estimated_price,
          status, created_at, updated_at`

func (q *Queries) CreateBooking(ctx context.Context, arg CreateBookingParams) (domain.Booking, error) {
	row := q.db.QueryRow(ctx, createBooking,
		arg.Reference, arg.TripType, arg.PickupLocationID, arg.DropLocationID, arg.PickupDate,
		arg.PickupTime, arg.JourneyDays, arg.CustomerName, arg.Mobile, arg.Email,
		arg.AlternativeNumber, arg.FlightNumber, arg.SpecialRequest, arg.CabID,
		arg.OneWayPackageID, arg.LocalPackageID, arg.EstimatedPrice)
	return scanBooking(row)
}

const getBooking = `
SELECT id, reference, trip_type, pickup_location_id, drop_location_id, pickup_date, pickup_time,
       journey_days, customer_name, mobile, email, alternative_number, flight_number,
       special_request, cab_id, one_way_package_id, local_package_id, estimated_price,
       status, created_at, updated_at
FROM bookings WHERE id = $1`

func (q *Queries) GetBooking(ctx context.Context, id int64) (domain.Booking, error) {
	b, err := scanBooking(q.db.QueryRow(ctx, getBooking, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, err
}

const listBookings = `
SELECT id, reference, trip_type, pickup_location_id, drop_location_id, pickup_date, pickup_time,
       journey_days, customer_name, mobile, email, alternative_number, flight_number,
       special_request, cab_id, one_way_package_id, local_package_id, estimated_price,
       status, created_at, updated_at
FROM bookings ORDER BY created_at DESC`

func (q *Queries) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	rows, err := q.db.Query(ctx, listBookings)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

const updateBookingStatus = `
UPDATE bookings SET status = $2, updated_at = now()
WHERE id = $1
RETURNING id, reference, trip_type, pickup_location_id, drop_location_id, pickup_date, pickup_time,
          journey_days, customer_name, mobile, email, alternative_number, flight_number,
          special_request, cab_id, one_way_package_id, local_package_id, estimated_price,
          status, created_at, updated_at`

func (q *Queries) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) (domain.Booking, error) {
	b, err := scanBooking(q.db.QueryRow(ctx, updateBookingStatus, id, status))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, err
}

func scanBooking(row pgx.Row) (domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.ID, &b.Reference, &b.TripType, &b.PickupLocationID, &b.DropLocationID,
		&b.PickupDate, &b.PickupTime, &b.JourneyDays, &b.CustomerName, &b.Mobile, &b.Email,
		&b.AlternativeNumber, &b.FlightNumber, &b.SpecialRequest, &b.CabID,
		&b.OneWayPackageID, &b.LocalPackageID, &b.EstimatedPrice, &b.Status,
		&b.CreatedAt, &b.UpdatedAt)
	return b, err
}

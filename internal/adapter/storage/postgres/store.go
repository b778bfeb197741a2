package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx so the same query
// methods run inside and outside transactions.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

// Querier is the full query surface. Services depend on this interface
// so tests can substitute mocks.
type Querier interface {
	CreateLocation(ctx context.Context, arg CreateLocationParams) (domain.Location, error)
	GetLocation(ctx context.Context, id int64) (domain.Location, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
	UpdateLocation(ctx context.Context, arg UpdateLocationParams) (domain.Location, error)
	DeleteLocation(ctx context.Context, id int64) error
	CountPackagesUsingLocation(ctx context.Context, id int64) (int64, error)

	CreateCab(ctx context.Context, arg CreateCabParams) (domain.Cab, error)
	GetCab(ctx context.Context, id int64) (domain.Cab, error)
	ListCabs(ctx context.Context) ([]domain.Cab, error)
	UpdateCab(ctx context.Context, arg UpdateCabParams) (domain.Cab, error)
	DeleteCab(ctx context.Context, id int64) error

	CreateOneWayPackage(ctx context.Context, arg CreateOneWayPackageParams) (domain.OneWayPackage, error)
	GetOneWayPackage(ctx context.Context, id int64) (domain.OneWayPackage, error)
	ListOneWayPackages(ctx context.Context) ([]domain.OneWayPackage, error)
	ListOneWayPackagesByRoute(ctx context.Context, sourceID, destinationID int64) ([]domain.OneWayPackage, error)
	UpdateOneWayPackage(ctx context.Context, arg UpdateOneWayPackageParams) (domain.OneWayPackage, error)
	DeleteOneWayPackage(ctx context.Context, id int64) error

	CreateLocalPackage(ctx context.Context, arg CreateLocalPackageParams) (domain.LocalPackage, error)
	ListLocalPackages(ctx context.Context) ([]domain.LocalPackage, error)
	UpdateLocalPackage(ctx context.Context, arg UpdateLocalPackageParams) (domain.LocalPackage, error)
	DeleteLocalPackage(ctx context.Context, id int64) error

	CreateRoundTripRate(ctx context.Context, arg CreateRoundTripRateParams) (domain.RoundTripRate, error)
	ListRoundTripRates(ctx context.Context) ([]domain.RoundTripRate, error)
	UpdateRoundTripRate(ctx context.Context, arg UpdateRoundTripRateParams) (domain.RoundTripRate, error)
	DeleteRoundTripRate(ctx context.Context, id int64) error

	CreateBooking(ctx context.Context, arg CreateBookingParams) (domain.Booking, error)
	GetBooking(ctx context.Context, id int64) (domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) (domain.Booking, error)

	GetAdminByUsername(ctx context.Context, username string) (Admin, error)
}

type Store interface {
	Querier
	ExecTx(ctx context.Context, fn func(Querier) error) error
}

type SQLStore struct {
	*Queries
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) Store {
	return &SQLStore{
		Queries: New(db),
		db:      db,
	}
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (store *SQLStore) ExecTx(ctx context.Context, fn func(Querier) error) error {
	tx, err := store.db.Begin(ctx)
	if err != nil {
		return err
	}

	q := New(tx)
	if err := fn(q); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}

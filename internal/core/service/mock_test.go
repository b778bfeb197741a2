package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/adapter/storage/postgres"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"
)

type MockQuerier struct {
	mock.Mock
}

func (m *MockQuerier) CreateLocation(ctx context.Context, arg postgres.CreateLocationParams) (domain.Location, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(domain.Location), args.Error(1)
}

func (m *MockQuerier) GetLocation(ctx context.Context, id int64) (domain.Location, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Location), args.Error(1)
}

func (m *MockQuerier) ListLocations(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *MockQuerier) UpdateLocation(ctx context.Context, arg postgres.UpdateLocationParams) (domain.Location, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(domain.Location), args.Error(1)
}

func (m *MockQuerier) DeleteLocation(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuerier) CountPackagesUsingLocation(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuerier) CreateCab(ctx context.Context, arg postgres.CreateCabParams) (domain.Cab, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(domain.Cab), args.Error(1)
}

func (m *MockQuerier) GetCab(ctx context.Context, id int64) (domain.Cab, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Cab), args.Error(1)
}

func (m *MockQuerier) ListCabs(ctx context.Context) ([]domain.Cab, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Cab), args.Error(1)
}

func (m *MockQuerier) UpdateCab(ctx context.Context, arg postgres.UpdateCabParams) (domain.Cab, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(domain.Cab), args.Error(1)
}

func (m *MockQuerier) DeleteCab(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuerier) CreateOneWayPackage(ctx context.Context, arg postgres.CreateOneWayPackageParams) (domain.OneWayPackage, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(domain.OneWayPackage), args.Error(1)
}

func (m *MockQuerier) GetOneWayPackage(ctx context.Context, id int64) (domain.OneWayPackage, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.OneWayPackage), args.Error(1)
}

func (m *MockQuerier) ListOneWayPackages(ctx context.Context) ([]domain.OneWayPackage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.OneWayPackage), args.Error(1)
}

func (m *MockQuerier) ListOneWayPackagesByRoute(ctx context.Context, sourceID, destinationID int64) ([]domain.OneWayPackage, error) {
	args := m.Called(ctx, sourceID, destinationID)
	return args.Get(0).([]domain.OneWayPackage), args.Error(1)
}

func (m *MockQuerier) UpdateOneWayPackage(ctx context.Context, arg postgres.UpdateOneWayPackageParams) (domain.OneWayPackage, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(domain.OneWayPackage), args.Error(1)
}

func (m *MockQuerier) DeleteOneWayPackage(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuerier) CreateLocalPackage(ctx context.Context, arg postgres.CreateLocalPackageParams) (domain.LocalPackage, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(domain.LocalPackage), args.Error(1)
}

func (m *MockQuerier) ListLocalPackages(ctx context.Context) ([]domain.LocalPackage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.LocalPackage), args.Error(1)
}

func (m *MockQuerier) UpdateLocalPackage(ctx context.Context, arg postgres.UpdateLocalPackageParams) (domain.LocalPackage, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(domain.LocalPackage), args.Error(1)
}

func (m *MockQuerier) DeleteLocalPackage(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuerier) CreateRoundTripRate(ctx context.Context, arg postgres.CreateRoundTripRateParams) (domain.RoundTripRate, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(domain.RoundTripRate), args.Error(1)
}

func (m *MockQuerier) ListRoundTripRates(ctx context.Context) ([]domain.RoundTripRate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RoundTripRate), args.Error(1)
}

func (m *MockQuerier) UpdateRoundTripRate(ctx context.Context, arg postgres.UpdateRoundTripRateParams) (domain.RoundTripRate, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(domain.RoundTripRate), args.Error(1)
}

func (m *MockQuerier) DeleteRoundTripRate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuerier) CreateBooking(ctx context.Context, arg postgres.CreateBookingParams) (domain.Booking, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *MockQuerier) GetBooking(ctx context.Context, id int64) (domain.Booking, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *MockQuerier) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockQuerier) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) (domain.Booking, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *MockQuerier) GetAdminByUsername(ctx context.Context, username string) (postgres.Admin, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(postgres.Admin), args.Error(1)
}

// memCache is an in-process ReferenceCache for read-through tests.
type memCache struct {
	data map[string]any
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string]any)}
}

func (c *memCache) Get(_ context.Context, key string, dest any) bool {
	val, ok := c.data[key]
	if !ok {
		return false
	}
	switch d := dest.(type) {
	case *[]domain.OneWayPackage:
		*d = val.([]domain.OneWayPackage)
	case *[]domain.LocalPackage:
		*d = val.([]domain.LocalPackage)
	case *[]domain.RoundTripRate:
		*d = val.([]domain.RoundTripRate)
	default:
		return false
	}
	return true
}

func (c *memCache) Set(_ context.Context, key string, val any) {
	c.data[key] = val
}

func (c *memCache) Invalidate(_ context.Context, keys ...string) {
	for _, key := range keys {
		delete(c.data, key)
	}
}

// recordingNotifier captures booking events for assertions.
type recordingNotifier struct {
	created []domain.Booking
	updated []domain.Booking
}

func (n *recordingNotifier) BookingCreated(b domain.Booking) {
	n.created = append(n.created, b)
}

func (n *recordingNotifier) BookingUpdated(b domain.Booking) {
	n.updated = append(n.updated, b)
}

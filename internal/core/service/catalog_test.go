package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/adapter/storage/postgres"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/service/geo"
)

func intPtr(i int) *int { return &i }

func setupCatalogRouteMocks(repo *MockQuerier) *postgres.CreateOneWayPackageParams {
	repo.On("GetLocation", mock.Anything, int64(1)).
		Return(domain.Location{ID: 1, CityName: "Mumbai"}, nil)
	repo.On("GetLocation", mock.Anything, int64(2)).
		Return(domain.Location{ID: 2, CityName: "Surat"}, nil)

	var captured postgres.CreateOneWayPackageParams
	repo.On("CreateOneWayPackage", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(postgres.CreateOneWayPackageParams)
		}).
		Return(domain.OneWayPackage{ID: 99}, nil)
	return &captured
}

func TestCatalogService_CreateOneWayPackage_AutoDistance(t *testing.T) {
	repo := new(MockQuerier)
	svc := NewCatalogService(repo, nil, zap.NewNop())
	captured := setupCatalogRouteMocks(repo)

	_, err := svc.CreateOneWayPackage(context.Background(), OneWayPackageInput{
		SourceID: 1, DestinationID: 2, CabID: 10, PriceFixed: 2500,
	})

	assert.NoError(t, err)
	assert.NotNil(t, captured.DistanceKm)
	assert.InDelta(t, 233.5, *captured.DistanceKm, 1.0)

	// Travel time follows the resolved distance.
	expected := geo.EstimateTravelTime(*captured.DistanceKm)
	assert.Equal(t, expected.Hours, captured.EstimatedHours)
	assert.Equal(t, expected.Minutes, captured.EstimatedMinutes)
}

func TestCatalogService_CreateOneWayPackage_ExplicitDistanceWins(t *testing.T) {
	repo := new(MockQuerier)
	svc := NewCatalogService(repo, nil, zap.NewNop())
	captured := setupCatalogRouteMocks(repo)

	_, err := svc.CreateOneWayPackage(context.Background(), OneWayPackageInput{
		SourceID: 1, DestinationID: 2, CabID: 10, PriceFixed: 2500,
		DistanceKm: floatPtr(300),
	})

	assert.NoError(t, err)
	assert.NotNil(t, captured.DistanceKm)
	assert.Equal(t, 300.0, *captured.DistanceKm)
	assert.Equal(t, 6, captured.EstimatedHours)
	assert.Equal(t, 0, captured.EstimatedMinutes)
}

func TestCatalogService_CreateOneWayPackage_SuppliedTimeOverrides(t *testing.T) {
	repo := new(MockQuerier)
	svc := NewCatalogService(repo, nil, zap.NewNop())
	captured := setupCatalogRouteMocks(repo)

	_, err := svc.CreateOneWayPackage(context.Background(), OneWayPackageInput{
		SourceID: 1, DestinationID: 2, CabID: 10, PriceFixed: 2500,
		DistanceKm: floatPtr(300), Hours: intPtr(5), Minutes: intPtr(45),
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, captured.EstimatedHours)
	assert.Equal(t, 45, captured.EstimatedMinutes)
}

func TestCatalogService_CreateOneWayPackage_UnknownCityStoresNull(t *testing.T) {
	repo := new(MockQuerier)
	svc := NewCatalogService(repo, nil, zap.NewNop())

	repo.On("GetLocation", mock.Anything, int64(1)).
		Return(domain.Location{ID: 1, CityName: "Mumbai"}, nil)
	repo.On("GetLocation", mock.Anything, int64(3)).
		Return(domain.Location{ID: 3, CityName: "Navsari"}, nil)

	var captured postgres.CreateOneWayPackageParams
	repo.On("CreateOneWayPackage", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(postgres.CreateOneWayPackageParams)
		}).
		Return(domain.OneWayPackage{ID: 100}, nil)

	_, err := svc.CreateOneWayPackage(context.Background(), OneWayPackageInput{
		SourceID: 1, DestinationID: 3, CabID: 10, PriceFixed: 1800,
	})

	assert.NoError(t, err)
	assert.Nil(t, captured.DistanceKm)
	assert.Zero(t, captured.EstimatedHours)
	assert.Zero(t, captured.EstimatedMinutes)
}

func TestCatalogService_UpdateOneWayPackage_MovesRoute(t *testing.T) {
	repo := new(MockQuerier)
	cache := newMemCache()
	svc := NewCatalogService(repo, cache, zap.NewNop())

	repo.On("GetOneWayPackage", mock.Anything, int64(1)).
		Return(domain.OneWayPackage{ID: 1, SourceID: 1, DestinationID: 2, CabID: 10}, nil)
	repo.On("GetLocation", mock.Anything, int64(3)).
		Return(domain.Location{ID: 3, CityName: "Mumbai"}, nil)
	repo.On("GetLocation", mock.Anything, int64(4)).
		Return(domain.Location{ID: 4, CityName: "Pune"}, nil)

	var captured postgres.UpdateOneWayPackageParams
	repo.On("UpdateOneWayPackage", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(postgres.UpdateOneWayPackageParams)
		}).
		Return(domain.OneWayPackage{ID: 1, SourceID: 3, DestinationID: 4, CabID: 11}, nil)

	cache.Set(context.Background(), cacheKeyOneWayRoute(1, 2), []domain.OneWayPackage{{ID: 1}})
	cache.Set(context.Background(), cacheKeyOneWayRoute(3, 4), []domain.OneWayPackage{{ID: 9}})

	pkg, err := svc.UpdateOneWayPackage(context.Background(), 1, OneWayPackageInput{
		SourceID: 3, DestinationID: 4, CabID: 11, PriceFixed: 2100,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), captured.SourceID)
	assert.Equal(t, int64(4), captured.DestinationID)
	assert.Equal(t, int64(11), captured.CabID)
	assert.Equal(t, int64(11), pkg.CabID)

	// The estimate follows the new route, not the stored one.
	mumbai, _ := geo.CityCoordinates("Mumbai")
	pune, _ := geo.CityCoordinates("Pune")
	assert.NotNil(t, captured.DistanceKm)
	assert.Equal(t, geo.DistanceKm(mumbai.Lat, mumbai.Lng, pune.Lat, pune.Lng), *captured.DistanceKm)

	// Both the old and new route listings are dropped.
	var cached []domain.OneWayPackage
	assert.False(t, cache.Get(context.Background(), cacheKeyOneWayRoute(1, 2), &cached))
	assert.False(t, cache.Get(context.Background(), cacheKeyOneWayRoute(3, 4), &cached))
}

func TestCatalogService_CreateOneWayPackage_NegativePrice(t *testing.T) {
	repo := new(MockQuerier)
	svc := NewCatalogService(repo, nil, zap.NewNop())

	_, err := svc.CreateOneWayPackage(context.Background(), OneWayPackageInput{
		SourceID: 1, DestinationID: 2, CabID: 10, PriceFixed: -100,
	})

	assert.ErrorIs(t, err, domain.ErrNegativePrice)
	repo.AssertNotCalled(t, "CreateOneWayPackage")
}

func TestCatalogService_DeleteLocation_Blocked(t *testing.T) {
	repo := new(MockQuerier)
	svc := NewCatalogService(repo, nil, zap.NewNop())

	repo.On("CountPackagesUsingLocation", mock.Anything, int64(5)).Return(int64(3), nil)

	err := svc.DeleteLocation(context.Background(), 5)

	assert.ErrorIs(t, err, domain.ErrLocationInUse)
	repo.AssertNotCalled(t, "DeleteLocation")
}

func TestCatalogService_DeleteLocation_Unreferenced(t *testing.T) {
	repo := new(MockQuerier)
	svc := NewCatalogService(repo, nil, zap.NewNop())

	repo.On("CountPackagesUsingLocation", mock.Anything, int64(6)).Return(int64(0), nil)
	repo.On("DeleteLocation", mock.Anything, int64(6)).Return(nil)

	err := svc.DeleteLocation(context.Background(), 6)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCatalogService_CreateRoundTripRate_Validation(t *testing.T) {
	repo := new(MockQuerier)
	svc := NewCatalogService(repo, nil, zap.NewNop())

	_, err := svc.CreateRoundTripRate(context.Background(), postgres.CreateRoundTripRateParams{
		CabID: 10, RatePerKm: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRate)

	_, err = svc.CreateRoundTripRate(context.Background(), postgres.CreateRoundTripRateParams{
		CabID: 10, RatePerKm: 12, DailyKmLimit: -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidKmLimit)
}

func TestCatalogService_WriteInvalidatesCache(t *testing.T) {
	repo := new(MockQuerier)
	cache := newMemCache()
	svc := NewCatalogService(repo, cache, zap.NewNop())

	cache.Set(context.Background(), cacheKeyRoundTripRates, []domain.RoundTripRate{{ID: 1}})

	repo.On("CreateRoundTripRate", mock.Anything, mock.Anything).
		Return(domain.RoundTripRate{ID: 2, CabID: 10, RatePerKm: 12}, nil)

	_, err := svc.CreateRoundTripRate(context.Background(), postgres.CreateRoundTripRateParams{
		CabID: 10, RatePerKm: 12, DailyKmLimit: 300,
	})

	assert.NoError(t, err)
	var cached []domain.RoundTripRate
	assert.False(t, cache.Get(context.Background(), cacheKeyRoundTripRates, &cached))
}

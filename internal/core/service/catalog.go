package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/adapter/storage/postgres"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/port"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/service/geo"
)

// fixedPackageFeatures is the feature list stamped onto every one-way
// package, mirroring what the storefront displays.
var fixedPackageFeatures = []string{
	"Toll & State Tax Included",
	"Driver Allowance Included",
	"One Pickup & One Drop",
	"AC Cab",
}

// CatalogService owns the admin-side reference data: locations, cabs,
// packages, and rates. It layers validation and the one-way package
// distance side-effect over the store, and keeps the reference cache
// coherent on writes.
type CatalogService struct {
	repo   postgres.Querier
	cache  port.ReferenceCache
	logger *zap.Logger
}

func NewCatalogService(repo postgres.Querier, cache port.ReferenceCache, logger *zap.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, logger: logger}
}

func (s *CatalogService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return s.repo.ListLocations(ctx)
}

func (s *CatalogService) CreateLocation(ctx context.Context, arg postgres.CreateLocationParams) (domain.Location, error) {
	return s.repo.CreateLocation(ctx, arg)
}

func (s *CatalogService) UpdateLocation(ctx context.Context, arg postgres.UpdateLocationParams) (domain.Location, error) {
	return s.repo.UpdateLocation(ctx, arg)
}

// DeleteLocation refuses to remove a location referenced by a package.
func (s *CatalogService) DeleteLocation(ctx context.Context, id int64) error {
	n, err := s.repo.CountPackagesUsingLocation(ctx, id)
	if err != nil {
		return fmt.Errorf("check location usage: %w", err)
	}
	if n > 0 {
		return domain.ErrLocationInUse
	}
	return s.repo.DeleteLocation(ctx, id)
}

func (s *CatalogService) ListCabs(ctx context.Context) ([]domain.Cab, error) {
	return s.repo.ListCabs(ctx)
}

func (s *CatalogService) GetCab(ctx context.Context, id int64) (domain.Cab, error) {
	return s.repo.GetCab(ctx, id)
}

func (s *CatalogService) CreateCab(ctx context.Context, arg postgres.CreateCabParams) (domain.Cab, error) {
	return s.repo.CreateCab(ctx, arg)
}

func (s *CatalogService) UpdateCab(ctx context.Context, arg postgres.UpdateCabParams) (domain.Cab, error) {
	return s.repo.UpdateCab(ctx, arg)
}

func (s *CatalogService) DeleteCab(ctx context.Context, id int64) error {
	return s.repo.DeleteCab(ctx, id)
}

// OneWayPackageInput is the admin write shape. DistanceKm, Hours, and
// Minutes are optional; absent values trigger automatic estimation.
type OneWayPackageInput struct {
	SourceID      int64
	DestinationID int64
	CabID         int64
	PriceFixed    int64
	DistanceKm    *float64
	Hours         *int
	Minutes       *int
}

// CreateOneWayPackage stores a new fixed-price route offer. Distance
// resolution runs once, here: an explicitly supplied distance always
// wins; otherwise the coordinate table is consulted, and if either city
// is unknown the distance is stored as null for manual entry later.
// Supplied hours/minutes always override the automatic estimate.
func (s *CatalogService) CreateOneWayPackage(ctx context.Context, in OneWayPackageInput) (domain.OneWayPackage, error) {
	if in.PriceFixed < 0 {
		return domain.OneWayPackage{}, domain.ErrNegativePrice
	}

	source, err := s.repo.GetLocation(ctx, in.SourceID)
	if err != nil {
		return domain.OneWayPackage{}, fmt.Errorf("source location: %w", err)
	}
	destination, err := s.repo.GetLocation(ctx, in.DestinationID)
	if err != nil {
		return domain.OneWayPackage{}, fmt.Errorf("destination location: %w", err)
	}

	distance, travelTime := resolveRouteEstimate(in.DistanceKm, source.CityName, destination.CityName)
	if distance == nil {
		s.logger.Info("could not auto-resolve distance, storing null",
			zap.String("source", source.CityName),
			zap.String("destination", destination.CityName))
	}

	hours, minutes := travelTime.Hours, travelTime.Minutes
	if in.Hours != nil {
		hours = *in.Hours
	}
	if in.Minutes != nil {
		minutes = *in.Minutes
	}

	pkg, err := s.repo.CreateOneWayPackage(ctx, postgres.CreateOneWayPackageParams{
		SourceID:         in.SourceID,
		DestinationID:    in.DestinationID,
		CabID:            in.CabID,
		PriceFixed:       in.PriceFixed,
		DistanceKm:       distance,
		EstimatedHours:   hours,
		EstimatedMinutes: minutes,
		PackageFeatures:  fixedPackageFeatures,
	})
	if err != nil {
		return domain.OneWayPackage{}, err
	}

	s.invalidate(ctx, cacheKeyOneWayRoute(in.SourceID, in.DestinationID))
	return pkg, nil
}

func (s *CatalogService) ListOneWayPackages(ctx context.Context) ([]domain.OneWayPackage, error) {
	return s.repo.ListOneWayPackages(ctx)
}

// UpdateOneWayPackage re-runs the same estimation policy as creation.
// The supplied route and cab replace the stored ones, so a package can
// be moved between routes.
func (s *CatalogService) UpdateOneWayPackage(ctx context.Context, id int64, in OneWayPackageInput) (domain.OneWayPackage, error) {
	if in.PriceFixed < 0 {
		return domain.OneWayPackage{}, domain.ErrNegativePrice
	}

	existing, err := s.repo.GetOneWayPackage(ctx, id)
	if err != nil {
		return domain.OneWayPackage{}, err
	}
	source, err := s.repo.GetLocation(ctx, in.SourceID)
	if err != nil {
		return domain.OneWayPackage{}, fmt.Errorf("source location: %w", err)
	}
	destination, err := s.repo.GetLocation(ctx, in.DestinationID)
	if err != nil {
		return domain.OneWayPackage{}, fmt.Errorf("destination location: %w", err)
	}

	distance, travelTime := resolveRouteEstimate(in.DistanceKm, source.CityName, destination.CityName)
	hours, minutes := travelTime.Hours, travelTime.Minutes
	if in.Hours != nil {
		hours = *in.Hours
	}
	if in.Minutes != nil {
		minutes = *in.Minutes
	}

	pkg, err := s.repo.UpdateOneWayPackage(ctx, postgres.UpdateOneWayPackageParams{
		ID:               id,
		SourceID:         in.SourceID,
		DestinationID:    in.DestinationID,
		CabID:            in.CabID,
		PriceFixed:       in.PriceFixed,
		DistanceKm:       distance,
		EstimatedHours:   hours,
		EstimatedMinutes: minutes,
	})
	if err != nil {
		return domain.OneWayPackage{}, err
	}

	// Both the old and new route listings are stale after a move.
	s.invalidate(ctx,
		cacheKeyOneWayRoute(existing.SourceID, existing.DestinationID),
		cacheKeyOneWayRoute(in.SourceID, in.DestinationID))
	return pkg, nil
}

func (s *CatalogService) DeleteOneWayPackage(ctx context.Context, id int64) error {
	pkg, err := s.repo.GetOneWayPackage(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteOneWayPackage(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, cacheKeyOneWayRoute(pkg.SourceID, pkg.DestinationID))
	return nil
}

func (s *CatalogService) ListLocalPackages(ctx context.Context) ([]domain.LocalPackage, error) {
	return s.repo.ListLocalPackages(ctx)
}

func (s *CatalogService) CreateLocalPackage(ctx context.Context, arg postgres.CreateLocalPackageParams) (domain.LocalPackage, error) {
	if arg.PriceFixed < 0 {
		return domain.LocalPackage{}, domain.ErrNegativePrice
	}
	pkg, err := s.repo.CreateLocalPackage(ctx, arg)
	if err != nil {
		return domain.LocalPackage{}, err
	}
	s.invalidate(ctx, cacheKeyLocalPackages)
	return pkg, nil
}

func (s *CatalogService) UpdateLocalPackage(ctx context.Context, arg postgres.UpdateLocalPackageParams) (domain.LocalPackage, error) {
	if arg.PriceFixed < 0 {
		return domain.LocalPackage{}, domain.ErrNegativePrice
	}
	pkg, err := s.repo.UpdateLocalPackage(ctx, arg)
	if err != nil {
		return domain.LocalPackage{}, err
	}
	s.invalidate(ctx, cacheKeyLocalPackages)
	return pkg, nil
}

func (s *CatalogService) DeleteLocalPackage(ctx context.Context, id int64) error {
	if err := s.repo.DeleteLocalPackage(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, cacheKeyLocalPackages)
	return nil
}

func (s *CatalogService) ListRoundTripRates(ctx context.Context) ([]domain.RoundTripRate, error) {
	return s.repo.ListRoundTripRates(ctx)
}

func (s *CatalogService) CreateRoundTripRate(ctx context.Context, arg postgres.CreateRoundTripRateParams) (domain.RoundTripRate, error) {
	if arg.RatePerKm <= 0 {
		return domain.RoundTripRate{}, domain.ErrInvalidRate
	}
	if arg.DailyKmLimit < 0 {
		return domain.RoundTripRate{}, domain.ErrInvalidKmLimit
	}
	rate, err := s.repo.CreateRoundTripRate(ctx, arg)
	if err != nil {
		return domain.RoundTripRate{}, err
	}
	s.invalidate(ctx, cacheKeyRoundTripRates)
	return rate, nil
}

func (s *CatalogService) UpdateRoundTripRate(ctx context.Context, arg postgres.UpdateRoundTripRateParams) (domain.RoundTripRate, error) {
	if arg.RatePerKm <= 0 {
		return domain.RoundTripRate{}, domain.ErrInvalidRate
	}
	if arg.DailyKmLimit < 0 {
		return domain.RoundTripRate{}, domain.ErrInvalidKmLimit
	}
	rate, err := s.repo.UpdateRoundTripRate(ctx, arg)
	if err != nil {
		return domain.RoundTripRate{}, err
	}
	s.invalidate(ctx, cacheKeyRoundTripRates)
	return rate, nil
}

func (s *CatalogService) DeleteRoundTripRate(ctx context.Context, id int64) error {
	if err := s.repo.DeleteRoundTripRate(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, cacheKeyRoundTripRates)
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	s.cache.Invalidate(ctx, keys...)
}

// resolveRouteEstimate applies the creation-time distance policy: an
// explicit nonzero distance wins and still yields a time estimate;
// otherwise both cities must be in the coordinate table or the distance
// stays nil.
func resolveRouteEstimate(explicit *float64, sourceCity, destinationCity string) (*float64, geo.TravelTime) {
	if explicit != nil && *explicit != 0 {
		return explicit, geo.EstimateTravelTime(*explicit)
	}

	from, ok := geo.CityCoordinates(sourceCity)
	if !ok {
		return nil, geo.TravelTime{}
	}
	to, ok := geo.CityCoordinates(destinationCity)
	if !ok {
		return nil, geo.TravelTime{}
	}

	km := geo.DistanceKm(from.Lat, from.Lng, to.Lat, to.Lng)
	return &km, geo.EstimateTravelTime(km)
}

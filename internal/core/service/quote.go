package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/adapter/storage/postgres"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/port"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/service/fare"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/service/geo"
)

const (
	cacheKeyLocalPackages  = "packages:local"
	cacheKeyRoundTripRates = "rates:roundtrip"
)

func cacheKeyOneWayRoute(sourceID, destinationID int64) string {
	return fmt.Sprintf("packages:oneway:%d:%d", sourceID, destinationID)
}

// QuoteRequest is the storefront's quote query. DestinationID is only
// meaningful for one-way trips, JourneyDays only for round trips.
type QuoteRequest struct {
	TripType      domain.TripType
	SourceID      int64
	DestinationID int64
	JourneyDays   int
}

// Offer is one candidate cab with its quote. Exactly one of the package
// or rate fields is set, matching the trip type.
type Offer struct {
	Cab           domain.Cab            `json:"cab"`
	Quote         domain.Quote          `json:"quote"`
	EstimatedTime *geo.TravelTime       `json:"estimated_time,omitempty"`
	OneWayPackage *domain.OneWayPackage `json:"one_way_package,omitempty"`
	LocalPackage  *domain.LocalPackage  `json:"local_package,omitempty"`
	RoundTripRate *domain.RoundTripRate `json:"round_trip_rate,omitempty"`
}

// QuoteService assembles per-cab offers for a trip request. Quotes are
// computed fresh on every call; only the reference rows behind them are
// cached.
type QuoteService struct {
	repo   postgres.Querier
	cache  port.ReferenceCache
	logger *zap.Logger
}

func NewQuoteService(repo postgres.Querier, cache port.ReferenceCache, logger *zap.Logger) *QuoteService {
	return &QuoteService{repo: repo, cache: cache, logger: logger}
}

// Quote returns the candidate offers for the request, cheapest first.
// An empty slice means no offer is configured for the route; that is not
// an error.
func (s *QuoteService) Quote(ctx context.Context, req QuoteRequest) ([]Offer, error) {
	switch req.TripType {
	case domain.TripOneWay:
		return s.oneWayOffers(ctx, req.SourceID, req.DestinationID)
	case domain.TripLocal:
		return s.localOffers(ctx)
	case domain.TripRoundTrip:
		return s.roundTripOffers(ctx, req.JourneyDays)
	default:
		return nil, domain.ErrInvalidTripType
	}
}

func (s *QuoteService) oneWayOffers(ctx context.Context, sourceID, destinationID int64) ([]Offer, error) {
	key := cacheKeyOneWayRoute(sourceID, destinationID)

	var pkgs []domain.OneWayPackage
	if !s.cacheGet(ctx, key, &pkgs) {
		var err error
		pkgs, err = s.repo.ListOneWayPackagesByRoute(ctx, sourceID, destinationID)
		if err != nil {
			return nil, fmt.Errorf("list one-way packages: %w", err)
		}
		s.cacheSet(ctx, key, pkgs)
	}

	// Duplicate rows per (route, cab) are possible; the most recently
	// created row wins.
	latest := make(map[int64]domain.OneWayPackage)
	for _, pkg := range pkgs {
		if cur, ok := latest[pkg.CabID]; !ok || pkg.CreatedAt.After(cur.CreatedAt) {
			latest[pkg.CabID] = pkg
		}
	}

	offers := make([]Offer, 0, len(latest))
	for _, pkg := range latest {
		cab, err := s.repo.GetCab(ctx, pkg.CabID)
		if err != nil {
			s.logger.Warn("skipping package with missing cab",
				zap.Int64("package_id", pkg.ID), zap.Int64("cab_id", pkg.CabID))
			continue
		}

		pkg := pkg
		var distance float64
		if pkg.DistanceKm != nil {
			distance = *pkg.DistanceKm
		}
		price := float64(pkg.PriceFixed)

		offers = append(offers, Offer{
			Cab:           cab,
			OneWayPackage: &pkg,
			EstimatedTime: &geo.TravelTime{Hours: pkg.EstimatedHours, Minutes: pkg.EstimatedMinutes},
			Quote: domain.Quote{
				CabID:      cab.ID,
				TotalPrice: price,
				DistanceKm: distance,
				Breakdown:  domain.Breakdown{Total: price},
			},
		})
	}

	sortOffersByPrice(offers)
	return offers, nil
}

func (s *QuoteService) localOffers(ctx context.Context) ([]Offer, error) {
	var pkgs []domain.LocalPackage
	if !s.cacheGet(ctx, cacheKeyLocalPackages, &pkgs) {
		var err error
		pkgs, err = s.repo.ListLocalPackages(ctx)
		if err != nil {
			return nil, fmt.Errorf("list local packages: %w", err)
		}
		s.cacheSet(ctx, cacheKeyLocalPackages, pkgs)
	}

	// A cab legitimately carries several local packages (hour tiers),
	// so every row is its own offer.
	offers := make([]Offer, 0, len(pkgs))
	for _, pkg := range pkgs {
		cab, err := s.repo.GetCab(ctx, pkg.CabID)
		if err != nil {
			s.logger.Warn("skipping local package with missing cab",
				zap.Int64("package_id", pkg.ID), zap.Int64("cab_id", pkg.CabID))
			continue
		}

		pkg := pkg
		price := float64(pkg.PriceFixed)
		offers = append(offers, Offer{
			Cab:          cab,
			LocalPackage: &pkg,
			Quote: domain.Quote{
				CabID:      cab.ID,
				TotalPrice: price,
				DistanceKm: float64(pkg.KmIncluded),
				Breakdown:  domain.Breakdown{Total: price},
			},
		})
	}

	sortOffersByPrice(offers)
	return offers, nil
}

func (s *QuoteService) roundTripOffers(ctx context.Context, journeyDays int) ([]Offer, error) {
	days := journeyDays
	if days < 1 {
		days = 1
	}

	var rates []domain.RoundTripRate
	if !s.cacheGet(ctx, cacheKeyRoundTripRates, &rates) {
		var err error
		rates, err = s.repo.ListRoundTripRates(ctx)
		if err != nil {
			return nil, fmt.Errorf("list round trip rates: %w", err)
		}
		s.cacheSet(ctx, cacheKeyRoundTripRates, rates)
	}

	// One rate row per cab is only soft-enforced in the admin UI; if
	// duplicates slipped in, the most recently created row wins.
	latest := make(map[int64]domain.RoundTripRate)
	for _, rate := range rates {
		if cur, ok := latest[rate.CabID]; !ok || rate.CreatedAt.After(cur.CreatedAt) {
			latest[rate.CabID] = rate
		}
	}

	offers := make([]Offer, 0, len(latest))
	for _, rate := range latest {
		cab, err := s.repo.GetCab(ctx, rate.CabID)
		if err != nil {
			s.logger.Warn("skipping rate with missing cab",
				zap.Int64("rate_id", rate.ID), zap.Int64("cab_id", rate.CabID))
			continue
		}

		rate := rate
		limit := rate.DailyKmLimit
		if limit <= 0 {
			limit = fare.DefaultDailyKmLimit
		}

		// The quote bills the full daily minimum; the actual route
		// distance is not known at selection time.
		quote := fare.RoundTripPrice(0, rate.RatePerKm, fare.RoundTripConfig{
			DailyKmLimit:          limit,
			DriverAllowancePerDay: rate.DriverAllowancePerDay,
			Days:                  days,
		})
		quote.CabID = cab.ID

		offers = append(offers, Offer{
			Cab:           cab,
			RoundTripRate: &rate,
			Quote:         quote,
		})
	}

	sortOffersByPrice(offers)
	return offers, nil
}

func (s *QuoteService) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	return s.cache.Get(ctx, key, dest)
}

func (s *QuoteService) cacheSet(ctx context.Context, key string, val any) {
	if s.cache == nil {
		return
	}
	s.cache.Set(ctx, key, val)
}

// sortOffersByPrice orders cheapest first. Offers come out of map
// iteration, so price ties break on cab ID to keep the listing stable
// across requests.
func sortOffersByPrice(offers []Offer) {
	sort.SliceStable(offers, func(i, j int) bool {
		if offers[i].Quote.TotalPrice != offers[j].Quote.TotalPrice {
			return offers[i].Quote.TotalPrice < offers[j].Quote.TotalPrice
		}
		return offers[i].Cab.ID < offers[j].Cab.ID
	})
}

// Package fare computes trip prices from distances and per-km rates.
package fare

import (
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/port"
)

const (
	// baseFare is the flat component added to one-way, local, and
	// legacy round-trip fares.
	baseFare = 500.0

	// localNominalKm is the nominal distance billed for local trips on
	// the generic calculator path.
	localNominalKm = 50.0

	// DefaultDailyKmLimit applies when a round-trip rate has no daily
	// km limit configured.
	DefaultDailyKmLimit = 300
)

// RoundTripConfig carries the per-day terms for a configured round trip.
type RoundTripConfig struct {
	DailyKmLimit          int
	DriverAllowancePerDay float64
	Days                  int
}

// RoundTripPrice prices a configured round trip: the chargeable distance
// is the actual out-and-back distance or the daily minimum times days,
// whichever is larger, and the driver allowance accrues per day. There
// is no separate base fare in this model. This is the single round-trip
// formula; both the generic calculator and the package selector call it.
func RoundTripPrice(oneWayKm float64, ratePerKm float64, cfg RoundTripConfig) domain.Quote {
	minKmTotal := float64(cfg.DailyKmLimit * cfg.Days)
	actual := oneWayKm * 2

	chargeable := actual
	if minKmTotal > chargeable {
		chargeable = minKmTotal
	}

	distanceFare := chargeable * ratePerKm
	allowance := cfg.DriverAllowancePerDay * float64(cfg.Days)
	total := distanceFare + allowance

	return domain.Quote{
		TotalPrice: total,
		DistanceKm: chargeable,
		Breakdown: domain.Breakdown{
			DistanceFare:    distanceFare,
			MinKmCharge:     minKmTotal,
			DriverAllowance: allowance,
			Total:           total,
		},
	}
}

// Calculator produces quotes for the generic per-km path. The package
// selector path supersedes it for one-way and local trips backed by
// fixed packages, but both paths stay reachable from the booking forms.
type Calculator struct {
	distances port.DistanceResolver
}

func NewCalculator(distances port.DistanceResolver) *Calculator {
	return &Calculator{distances: distances}
}

// Compute prices a trip between two cities at the given per-km rate.
// cfg may be nil; for round trips that selects the legacy
// base+outbound+return formula.
func (c *Calculator) Compute(fromCity, toCity string, ratePerKm float64, tripType domain.TripType, cfg *RoundTripConfig) domain.Quote {
	if tripType == domain.TripLocal {
		distanceFare := localNominalKm * ratePerKm
		total := baseFare + distanceFare
		return domain.Quote{
			TotalPrice: total,
			DistanceKm: localNominalKm,
			Breakdown: domain.Breakdown{
				BaseFare:     baseFare,
				DistanceFare: distanceFare,
				Total:        total,
			},
		}
	}

	distance, _ := c.distances.ResolveDistance(fromCity, toCity)
	distanceFare := distance * ratePerKm

	if tripType == domain.TripRoundTrip {
		if cfg != nil {
			return RoundTripPrice(distance, ratePerKm, *cfg)
		}

		// Legacy fallback: bill the return leg at the same rate on
		// top of the base fare.
		returnFare := distance * ratePerKm
		total := baseFare + distanceFare + returnFare
		return domain.Quote{
			TotalPrice: total,
			DistanceKm: distance * 2,
			Breakdown: domain.Breakdown{
				BaseFare:     baseFare,
				DistanceFare: distanceFare,
				ReturnFare:   returnFare,
				Total:        total,
			},
		}
	}

	total := baseFare + distanceFare
	return domain.Quote{
		TotalPrice: total,
		DistanceKm: distance,
		Breakdown: domain.Breakdown{
			BaseFare:     baseFare,
			DistanceFare: distanceFare,
			Total:        total,
		},
	}
}

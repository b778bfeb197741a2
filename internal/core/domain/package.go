package domain

import "time"

// OneWayPackage is a pre-priced offer for a (source, destination, cab)
// route. DistanceKm is nil when automatic resolution failed at creation
// time and an administrator has not filled it in yet.
type OneWayPackage struct {
	ID               int64     `json:"id"`
	SourceID         int64     `json:"source_id"`
	DestinationID    int64     `json:"destination_id"`
	CabID            int64     `json:"cab_id"`
	PriceFixed       int64     `json:"price_fixed"`
	DistanceKm       *float64  `json:"distance_km"`
	EstimatedHours   int       `json:"estimated_hours"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	PackageFeatures  []string  `json:"package_features"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// LocalPackage is a fixed-duration, fixed-distance city package.
// ExtraKmRate and ExtraHourRate are carried on the record and shown to
// customers but are not multiplied into any quote, since actual usage is
// not known before the trip runs.
type LocalPackage struct {
	ID            int64     `json:"id"`
	CabID         int64     `json:"cab_id"`
	HoursIncluded int       `json:"hours_included"`
	KmIncluded    int       `json:"km_included"`
	PriceFixed    int64     `json:"price_fixed"`
	ExtraKmRate   float64   `json:"extra_km_rate"`
	ExtraHourRate float64   `json:"extra_hour_rate"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RoundTripRate prices multi-day round trips per kilometre. DailyKmLimit
// was called minimumKm in the old admin API; the write handler still
// accepts that alias.
type RoundTripRate struct {
	ID                    int64     `json:"id"`
	CabID                 int64     `json:"cab_id"`
	RatePerKm             float64   `json:"rate_per_km"`
	DailyKmLimit          int       `json:"daily_km_limit"`
	DriverAllowancePerDay float64   `json:"driver_allowance_per_day"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

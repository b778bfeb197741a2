package domain

// Breakdown names every fare component that contributed a nonzero amount.
// Zero components are omitted from the serialized form so presentation
// layers can skip them.
type Breakdown struct {
	BaseFare        float64 `json:"base_fare,omitempty"`
	DistanceFare    float64 `json:"distance_fare,omitempty"`
	ReturnFare      float64 `json:"return_fare,omitempty"`
	DriverAllowance float64 `json:"driver_allowance,omitempty"`
	MinKmCharge     float64 `json:"min_km_charge,omitempty"`
	Total           float64 `json:"total"`
}

// Quote is computed fresh per request and never persisted or cached.
type Quote struct {
	CabID      int64     `json:"cab_id"`
	TotalPrice float64   `json:"total_price"`
	DistanceKm float64   `json:"distance_km"`
	Breakdown  Breakdown `json:"breakdown"`
}

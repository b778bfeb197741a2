// Package geo holds the pure geographic computations behind fare
// quotation: coordinate lookup, great-circle distance, and travel-time
// estimation.
package geo

import "math"

const (
	earthRadiusKm = 6371.0

	// averageSpeedKmh is the assumed city-to-city cruising speed used
	// when deriving a travel-time estimate from distance.
	averageSpeedKmh = 50.0
)

type Coordinates struct {
	Lat float64
	Lng float64
}

// cityCoordinates covers the major cities the storefront offers. Lookup
// is by exact name; anything else is unknown and callers fall back to
// the distance matrix.
var cityCoordinates = map[string]Coordinates{
	"Mumbai":           {Lat: 19.0760, Lng: 72.8777},
	"Delhi":            {Lat: 28.7041, Lng: 77.1025},
	"Bangalore":        {Lat: 12.9716, Lng: 77.5946},
	"Hyderabad":        {Lat: 17.3850, Lng: 78.4867},
	"Chennai":          {Lat: 13.0827, Lng: 80.2707},
	"Kolkata":          {Lat: 22.5726, Lng: 88.3639},
	"Pune":             {Lat: 18.5204, Lng: 73.8567},
	"Ahmedabad":        {Lat: 23.0225, Lng: 72.5714},
	"Jaipur":           {Lat: 26.9124, Lng: 75.7873},
	"Surat":            {Lat: 21.1702, Lng: 72.8311},
	"Lucknow":          {Lat: 26.8467, Lng: 80.9462},
	"Kanpur":           {Lat: 26.4499, Lng: 80.3319},
	"Nagpur":           {Lat: 21.1458, Lng: 79.0882},
	"Indore":           {Lat: 22.7196, Lng: 75.8577},
	"Thane":            {Lat: 19.2183, Lng: 72.9781},
	"Bhopal":           {Lat: 23.2599, Lng: 77.4126},
	"Visakhapatnam":    {Lat: 17.6868, Lng: 83.2185},
	"Pimpri-Chinchwad": {Lat: 18.6298, Lng: 73.7997},
	"Patna":            {Lat: 25.5941, Lng: 85.1376},
	"Vadodara":         {Lat: 22.3072, Lng: 73.1812},
}

// CityCoordinates returns the known coordinates for a city. The lookup
// is case-sensitive; ok is false for any city not in the table.
func CityCoordinates(name string) (Coordinates, bool) {
	c, ok := cityCoordinates[name]
	return c, ok
}

// DistanceKm returns the haversine great-circle distance between two
// points in decimal degrees, rounded to one decimal place.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*10) / 10
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

type TravelTime struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// EstimateTravelTime derives hours and minutes from a distance at the
// assumed average speed.
func EstimateTravelTime(distanceKm float64) TravelTime {
	totalMinutes := int(math.Round(distanceKm / averageSpeedKmh * 60))
	return TravelTime{
		Hours:   totalMinutes / 60,
		Minutes: totalMinutes % 60,
	}
}

// Estimator resolves distances from the coordinate table. It satisfies
// port.DistanceResolver.
type Estimator struct{}

func NewEstimator() *Estimator {
	return &Estimator{}
}

func (e *Estimator) ResolveDistance(fromCity, toCity string) (float64, bool) {
	from, ok := CityCoordinates(fromCity)
	if !ok {
		return 0, false
	}
	to, ok := CityCoordinates(toCity)
	if !ok {
		return 0, false
	}
	return DistanceKm(from.Lat, from.Lng, to.Lat, to.Lng), true
}

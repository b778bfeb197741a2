package domain

type TripType string

const (
	TripOneWay    TripType = "oneway"
	TripRoundTrip TripType = "roundtrip"
	TripLocal     TripType = "local"
)

// ParseTripType maps the storefront's historical spellings onto the
// canonical values. Unknown input defaults to one-way, matching what the
// booking form has always sent.
func ParseTripType(s string) TripType {
	switch s {
	case "oneway", "one-way":
		return TripOneWay
	case "roundtrip", "round-trip":
		return TripRoundTrip
	case "local":
		return TripLocal
	default:
		return TripOneWay
	}
}

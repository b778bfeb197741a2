package port

// DistanceResolver answers the road distance in kilometres between two
// city names. ok is false when the resolver does not know both cities;
// callers fall through to the next resolver rather than failing.
type DistanceResolver interface {
	ResolveDistance(fromCity, toCity string) (km float64, ok bool)
}

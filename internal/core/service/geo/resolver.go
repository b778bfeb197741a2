package geo

import "github.com/1Burhanuddin/oneway-taxi-backend/internal/core/port"

// ChainResolver tries each resolver in order and returns the first
// answer. Road distances from the matrix are preferred over great-circle
// estimates, so the matrix sits at the front of the production chain.
type ChainResolver struct {
	resolvers []port.DistanceResolver
}

func NewChainResolver(resolvers ...port.DistanceResolver) *ChainResolver {
	return &ChainResolver{resolvers: resolvers}
}

func (c *ChainResolver) ResolveDistance(fromCity, toCity string) (float64, bool) {
	for _, r := range c.resolvers {
		if km, ok := r.ResolveDistance(fromCity, toCity); ok {
			return km, true
		}
	}
	return 0, false
}

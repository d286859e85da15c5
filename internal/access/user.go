package access

import (
	"slices"

	"swapnet-ops/internal/recommend"
	"swapnet-ops/internal/station"
	"swapnet-ops/internal/store"
)

// UserStore is read-only. Drivers browse recommendations and plan swaps.
type UserStore interface {
	Reader
	NetworkRecommendations() []station.NetworkRecommendation
	Locations() []recommend.Location
	SwapRecommendations(route recommend.Route, f recommend.Filter, key recommend.SortKey) recommend.Recommendation
}

type userFacade struct {
	reader
	locations []recommend.Location
}

// ForUser returns the user view of s. Routes are planned between locations.
func ForUser(s *store.Store, locations []recommend.Location) UserStore {
	return userFacade{reader: reader{s: s}, locations: slices.Clone(locations)}
}

func (u userFacade) NetworkRecommendations() []station.NetworkRecommendation {
	return u.s.NetworkRecommendations()
}

func (u userFacade) Locations() []recommend.Location { return slices.Clone(u.locations) }

func (u userFacade) SwapRecommendations(route recommend.Route, f recommend.Filter, key recommend.SortKey) recommend.Recommendation {
	return recommend.ForRoute(route, u.s.Stations(), f, key, u.s.Now().UTC())
}

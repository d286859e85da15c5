// Package recommend ranks swap stations for a driver on a planned route.
package recommend

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"time"

	"swapnet-ops/internal/station"
)

// KmPerDegree is the rough distance of one degree used for route estimates.
const KmPerDegree = 111

// Coordinates is a point in degrees.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Location is a named place a route can start or end at.
type Location struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Address     string      `json:"address" yaml:"address"`
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates"`
}

// SwapStation is a station as presented to a driver.
type SwapStation struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Location            Location `json:"location"`
	DistanceFromRoute   float64  `json:"distanceFromRoute"`   // km
	EstimatedTravelTime int      `json:"estimatedTravelTime"` // minutes
	EstimatedWaitTime   int      `json:"estimatedWaitTime"`   // minutes
	ComfortScore        int      `json:"comfortScore"`        // 0-100
	AvailableSlots      int      `json:"availableSlots"`
	BatteryInventory    int      `json:"batteryInventory"`
	Rating              float64  `json:"rating"`
	Amenities           []string `json:"amenities"`
	PricePerSwap        float64  `json:"pricePerSwap"`
}

// Route is a requested trip.
type Route struct {
	Origin      Location `json:"origin"`
	Destination Location `json:"destination"`
}

// Recommendation is the ranked station list for a route.
type Recommendation struct {
	RouteID             string        `json:"routeId"`
	RecommendedStations []SwapStation `json:"recommendedStations"`
	TotalDistance       float64       `json:"totalDistance"`     // km
	EstimatedDuration   int           `json:"estimatedDuration"` // minutes
	GeneratedAt         time.Time     `json:"generatedAt"`
}

// jsRound rounds half up.
func jsRound(v float64) float64 { return math.Floor(v + 0.5) }

// WaitTime estimates the wait in minutes from the queue and active chargers.
func WaitTime(queue, activeChargers int) int {
	if activeChargers <= 0 {
		return 0
	}
	return int(math.Ceil(float64(queue) / float64(activeChargers) * 5))
}

// ComfortScore weighs load, inventory, free slots and queue into 0-100.
func ComfortScore(s station.Station) int {
	slots := float64(s.TotalChargers - s.ActiveChargers)
	load := (100 - s.StationLoad) / 100
	inventory := math.Min(float64(s.ChargedBatteryInventory)/20, 1)
	availability := math.Min(slots/5, 1)
	queue := math.Max(1-float64(s.QueueLength)/15, 0)
	return int(jsRound(load*30 + inventory*30 + availability*25 + queue*15))
}

// Build derives a SwapStation for every station. Distance and price grow
// with the station's position in the list.
func Build(stations []station.Station) []SwapStation {
	out := make([]SwapStation, 0, len(stations))
	for i, s := range stations {
		slots := s.TotalChargers - s.ActiveChargers
		comfort := ComfortScore(s)
		distance := 0.5 + float64(i)*1.2
		out = append(out, SwapStation{
			ID:   s.ID,
			Name: s.Name,
			Location: Location{
				ID:          s.ID,
				Name:        s.Name,
				Address:     s.Name + " Battery Swap Station",
				Coordinates: Coordinates{Lat: 28.6 + float64(i)*0.1, Lng: 77.2 + float64(i)*0.1},
			},
			DistanceFromRoute:   distance,
			EstimatedTravelTime: int(math.Ceil(distance * 3)),
			EstimatedWaitTime:   WaitTime(s.QueueLength, s.ActiveChargers),
			ComfortScore:        comfort,
			AvailableSlots:      slots,
			BatteryInventory:    s.ChargedBatteryInventory,
			Rating:              4.2 + float64(comfort)/200,
			Amenities:           amenities(s.ChargedBatteryInventory, slots, s.StationLoad),
			PricePerSwap:        12 + float64(i)*0.5,
		})
	}
	return out
}

func amenities(inventory, slots int, load float64) []string {
	a := make([]string, 0, 3)
	if inventory > 15 {
		a = append(a, "High Inventory")
	} else {
		a = append(a, "Limited Stock")
	}
	if slots > 3 {
		a = append(a, "Multiple Slots")
	} else {
		a = append(a, "Limited Availability")
	}
	if load < 70 {
		a = append(a, "Fast Service")
	} else {
		a = append(a, "Busy")
	}
	return a
}

// SortKey orders recommendations.
type SortKey string

// Sort keys. Comfort sorts descending, the rest ascending.
const (
	SortComfort  SortKey = "comfort"
	SortDistance SortKey = "distance"
	SortWaitTime SortKey = "waitTime"
	SortPrice    SortKey = "price"
)

// ParseSortKey validates s. Empty means comfort.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case "":
		return SortComfort, nil
	case SortComfort, SortDistance, SortWaitTime, SortPrice:
		return k, nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// Sort orders stations in place by key. Ties keep their input order.
func Sort(stations []SwapStation, key SortKey) {
	slices.SortStableFunc(stations, func(a, b SwapStation) int {
		switch key {
		case SortDistance:
			return cmp.Compare(a.DistanceFromRoute, b.DistanceFromRoute)
		case SortWaitTime:
			return cmp.Compare(a.EstimatedWaitTime, b.EstimatedWaitTime)
		case SortPrice:
			return cmp.Compare(a.PricePerSwap, b.PricePerSwap)
		default:
			return cmp.Compare(b.ComfortScore, a.ComfortScore)
		}
	})
}

// Filter bounds a recommendation list. Zero fields do not filter.
type Filter struct {
	MinComfort  int
	MaxDistance float64
	MaxWait     int
}

// Apply returns the stations that pass f.
func (f Filter) Apply(stations []SwapStation) []SwapStation {
	out := make([]SwapStation, 0, len(stations))
	for _, s := range stations {
		if f.MinComfort > 0 && s.ComfortScore < f.MinComfort {
			continue
		}
		if f.MaxDistance > 0 && s.DistanceFromRoute > f.MaxDistance {
			continue
		}
		if f.MaxWait > 0 && s.EstimatedWaitTime > f.MaxWait {
			continue
		}
		out = append(out, s)
	}
	return out
}

// ComfortClass buckets a comfort score.
func ComfortClass(score int) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 75:
		return "good"
	case score >= 60:
		return "fair"
	}
	return "poor"
}

// RouteDistance is the straight-line estimate between two locations in km,
// rounded to one decimal.
func RouteDistance(a, b Location) float64 {
	dLat := b.Coordinates.Lat - a.Coordinates.Lat
	dLng := b.Coordinates.Lng - a.Coordinates.Lng
	return math.Round(math.Sqrt(dLat*dLat+dLng*dLng)*KmPerDegree*10) / 10
}

// ForRoute builds, filters and sorts recommendations for r.
func ForRoute(r Route, stations []station.Station, f Filter, key SortKey, now time.Time) Recommendation {
	list := f.Apply(Build(stations))
	Sort(list, key)
	total := RouteDistance(r.Origin, r.Destination)
	return Recommendation{
		RouteID:             r.Origin.ID + "-" + r.Destination.ID,
		RecommendedStations: list,
		TotalDistance:       total,
		EstimatedDuration:   int(math.Ceil(total * 3)),
		GeneratedAt:         now,
	}
}

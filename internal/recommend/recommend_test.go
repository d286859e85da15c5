package recommend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swapnet-ops/internal/station"
)

var testStations = []station.Station{
	{ID: "ST-001", Name: "Calm", QueueLength: 3, ActiveChargers: 3, TotalChargers: 8, ChargedBatteryInventory: 20, StationLoad: 50},
	{ID: "ST-002", Name: "Packed", QueueLength: 15, ActiveChargers: 4, TotalChargers: 4, ChargedBatteryInventory: 5, StationLoad: 90},
	{ID: "ST-003", Name: "Dark", QueueLength: 2, ActiveChargers: 0, TotalChargers: 2, ChargedBatteryInventory: 12, StationLoad: 0},
}

func TestComfortScore(t *testing.T) {
	assert.Equal(t, 82, ComfortScore(testStations[0]))
	assert.Equal(t, 11, ComfortScore(testStations[1]))
}

func TestWaitTime(t *testing.T) {
	assert.Equal(t, 5, WaitTime(3, 3))
	assert.Equal(t, 19, WaitTime(15, 4))
	assert.Equal(t, 0, WaitTime(2, 0), "no active chargers reports zero wait")
}

func TestBuild(t *testing.T) {
	got := Build(testStations)
	require.Len(t, got, 3)

	first := got[0]
	assert.Equal(t, 0.5, first.DistanceFromRoute)
	assert.Equal(t, 2, first.EstimatedTravelTime)
	assert.Equal(t, 5, first.AvailableSlots)
	assert.Equal(t, 12.0, first.PricePerSwap)
	assert.InDelta(t, 4.61, first.Rating, 1e-9)
	assert.Equal(t, []string{"High Inventory", "Multiple Slots", "Fast Service"}, first.Amenities)

	second := got[1]
	assert.InDelta(t, 1.7, second.DistanceFromRoute, 1e-9)
	assert.Equal(t, 6, second.EstimatedTravelTime)
	assert.Equal(t, 12.5, second.PricePerSwap)
	assert.Equal(t, []string{"Limited Stock", "Limited Availability", "Busy"}, second.Amenities)
}

func TestSort(t *testing.T) {
	list := Build(testStations)

	Sort(list, SortComfort)
	for i := 1; i < len(list); i++ {
		assert.GreaterOrEqual(t, list[i-1].ComfortScore, list[i].ComfortScore)
	}

	Sort(list, SortWaitTime)
	assert.Equal(t, "ST-003", list[0].ID)
	assert.Equal(t, "ST-002", list[2].ID)

	Sort(list, SortPrice)
	assert.Equal(t, []string{"ST-001", "ST-002", "ST-003"}, ids(list))
}

func TestFilter(t *testing.T) {
	list := Build(testStations)
	assert.Equal(t, []string{"ST-001", "ST-003"}, ids(Filter{MinComfort: 60}.Apply(list)))
	assert.Equal(t, []string{"ST-001", "ST-002"}, ids(Filter{MaxDistance: 2}.Apply(list)))
	assert.Equal(t, []string{"ST-001", "ST-003"}, ids(Filter{MaxWait: 10}.Apply(list)))
	assert.Len(t, Filter{}.Apply(list), 3)
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortComfort, k)

	_, err = ParseSortKey("rating")
	assert.Error(t, err)
}

func TestComfortClass(t *testing.T) {
	assert.Equal(t, "excellent", ComfortClass(90))
	assert.Equal(t, "good", ComfortClass(89))
	assert.Equal(t, "good", ComfortClass(75))
	assert.Equal(t, "fair", ComfortClass(60))
	assert.Equal(t, "poor", ComfortClass(59))
}

func TestForRoute(t *testing.T) {
	locs := DefaultLocations()
	origin, ok := FindLocation(locs, "loc1")
	require.True(t, ok)
	dest, ok := FindLocation(locs, "loc3")
	require.True(t, ok)

	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	rec := ForRoute(Route{Origin: origin, Destination: dest}, testStations, Filter{}, SortComfort, now)
	assert.Equal(t, "loc1-loc3", rec.RouteID)
	assert.Equal(t, 5.6, rec.TotalDistance)
	assert.Equal(t, 17, rec.EstimatedDuration)
	assert.Equal(t, now, rec.GeneratedAt)
	assert.Equal(t, "ST-001", rec.RecommendedStations[0].ID)

	_, ok = FindLocation(locs, "nowhere")
	assert.False(t, ok)
}

func ids(list []SwapStation) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.ID)
	}
	return out
}

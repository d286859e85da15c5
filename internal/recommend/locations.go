package recommend

// DefaultLocations are the route endpoints offered when none are configured.
func DefaultLocations() []Location {
	return []Location{
		{ID: "loc1", Name: "Downtown Business District", Address: "123 Main Street, City Center", Coordinates: Coordinates{Lat: 40.7128, Lng: -74.0060}},
		{ID: "loc2", Name: "Airport Terminal", Address: "International Airport, Terminal 2", Coordinates: Coordinates{Lat: 40.6413, Lng: -73.7781}},
		{ID: "loc3", Name: "Tech Park North", Address: "456 Innovation Drive, North District", Coordinates: Coordinates{Lat: 40.7589, Lng: -73.9851}},
		{ID: "loc4", Name: "Residential Complex West", Address: "789 Sunset Boulevard, West End", Coordinates: Coordinates{Lat: 40.7282, Lng: -74.0776}},
		{ID: "loc5", Name: "Shopping Mall East", Address: "321 Commerce Plaza, East Side", Coordinates: Coordinates{Lat: 40.7489, Lng: -73.9680}},
	}
}

// FindLocation returns the location with id.
func FindLocation(locs []Location, id string) (Location, bool) {
	for _, l := range locs {
		if l.ID == id {
			return l, true
		}
	}
	return Location{}, false
}

// README: Embedded reference data used when no catalog database is configured.
package catalog

var seedAirports = []Airport{
	{Code: "JFK", City: "New York", Lat: 40.6413, Lng: -73.7781},
	{Code: "EWR", City: "Newark", Lat: 40.6895, Lng: -74.1745},
	{Code: "LGA", City: "New York", Lat: 40.7769, Lng: -73.8740},
	{Code: "BOS", City: "Boston", Lat: 42.3656, Lng: -71.0096},
	{Code: "MIA", City: "Miami", Lat: 25.7959, Lng: -80.2870},
	{Code: "FLL", City: "Fort Lauderdale", Lat: 26.0726, Lng: -80.1527},
	{Code: "LAX", City: "Los Angeles", Lat: 33.9416, Lng: -118.4085},
	{Code: "SFO", City: "San Francisco", Lat: 37.6213, Lng: -122.3790},
	{Code: "LAS", City: "Las Vegas", Lat: 36.0840, Lng: -115.1537},
	{Code: "ORD", City: "Chicago", Lat: 41.9742, Lng: -87.9073},
	{Code: "DFW", City: "Dallas", Lat: 32.8998, Lng: -97.0403},
	{Code: "SEA", City: "Seattle", Lat: 47.4502, Lng: -122.3088},
}

var seedAircraft = []AircraftClass{
	{Name: "Very Light Jet", Capacity: 4, Tier: 0, CruiseSpeedKt: 400, RatePerNM: 9.0, RangeNM: 1200, Amenities: "Basic comfort"},
	{Name: "Light Jet", Capacity: 7, Tier: 1, CruiseSpeedKt: 450, RatePerNM: 11.0, RangeNM: 1500, Amenities: "Enhanced comfort"},
	{Name: "Midsize Jet", Capacity: 9, Tier: 2, CruiseSpeedKt: 500, RatePerNM: 13.5, RangeNM: 2000, Amenities: "Premium comfort"},
	{Name: "Super Midsize", Capacity: 10, Tier: 3, CruiseSpeedKt: 550, RatePerNM: 15.0, RangeNM: 2500, Amenities: "Luxury comfort"},
	{Name: "Heavy Jet", Capacity: 16, Tier: 4, CruiseSpeedKt: 600, RatePerNM: 18.0, RangeNM: 3000, Amenities: "Ultra luxury"},
}

// cityAliases maps informal city names to canonical catalog cities.
var cityAliases = map[string]string{
	"la":    "Los Angeles",
	"nyc":   "New York",
	"ny":    "New York",
	"vegas": "Las Vegas",
	"sf":    "San Francisco",
}

// NewSeeded builds a catalog from the embedded reference data.
func NewSeeded() *Catalog {
	return New(seedAirports, seedAircraft)
}

// README: Read-only lookup service for airports and aircraft classes.
package catalog

import (
	"sort"
	"strings"
)

// Catalog is immutable after construction and safe for concurrent reads.
type Catalog struct {
	airports    map[string]Airport
	cityToCodes map[string][]string
	aircraft    []AircraftClass // sorted by tier ascending
}

func New(airports []Airport, aircraft []AircraftClass) *Catalog {
	c := &Catalog{
		airports:    make(map[string]Airport, len(airports)),
		cityToCodes: make(map[string][]string),
		aircraft:    make([]AircraftClass, len(aircraft)),
	}
	for _, a := range airports {
		code := strings.ToUpper(a.Code)
		a.Code = code
		c.airports[code] = a
		city := strings.ToLower(a.City)
		c.cityToCodes[city] = append(c.cityToCodes[city], code)
	}
	for alias, city := range cityAliases {
		if codes, ok := c.cityToCodes[strings.ToLower(city)]; ok {
			c.cityToCodes[alias] = codes
		}
	}
	copy(c.aircraft, aircraft)
	sort.Slice(c.aircraft, func(i, j int) bool { return c.aircraft[i].Tier < c.aircraft[j].Tier })
	return c
}

// Airport looks up an airport by exact IATA code.
func (c *Catalog) Airport(code string) (Airport, bool) {
	a, ok := c.airports[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

// FindAirport resolves a free-text token to an airport: exact IATA code
// first, then city name or alias, then partial city match (>= 3 chars).
func (c *Catalog) FindAirport(token string) (Airport, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Airport{}, false
	}
	if a, ok := c.airports[strings.ToUpper(token)]; ok {
		return a, true
	}
	city := strings.ToLower(token)
	if codes, ok := c.cityToCodes[city]; ok {
		return c.airports[codes[0]], true
	}
	if len(city) >= 3 {
		// Deterministic partial match: scan cities in sorted order.
		names := make([]string, 0, len(c.cityToCodes))
		for name := range c.cityToCodes {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if strings.Contains(name, city) {
				return c.airports[c.cityToCodes[name][0]], true
			}
		}
	}
	return Airport{}, false
}

// Airports returns all airports ordered by code.
func (c *Catalog) Airports() []Airport {
	codes := make([]string, 0, len(c.airports))
	for code := range c.airports {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	out := make([]Airport, 0, len(codes))
	for _, code := range codes {
		out = append(out, c.airports[code])
	}
	return out
}

// Aircraft returns all classes ordered by tier ascending.
func (c *Catalog) Aircraft() []AircraftClass {
	out := make([]AircraftClass, len(c.aircraft))
	copy(out, c.aircraft)
	return out
}

// Eligible returns classes whose capacity covers the passenger count,
// ordered by tier ascending.
func (c *Catalog) Eligible(passengers int) []AircraftClass {
	var out []AircraftClass
	for _, a := range c.aircraft {
		if a.CanAccommodate(passengers) {
			out = append(out, a)
		}
	}
	return out
}

// ImpliedClass returns the lowest-tier class that fits the passenger count.
// For counts above the largest capacity the largest class is returned.
func (c *Catalog) ImpliedClass(passengers int) AircraftClass {
	for _, a := range c.aircraft {
		if a.CanAccommodate(passengers) {
			return a
		}
	}
	return c.aircraft[len(c.aircraft)-1]
}

// NextTier returns the class one tier above the given one. ok is false when
// the given tier is already the highest.
func (c *Catalog) NextTier(tier int) (AircraftClass, bool) {
	for _, a := range c.aircraft {
		if a.Tier > tier {
			return a, true
		}
	}
	return AircraftClass{}, false
}

// PrevTier returns the class one tier below the given one.
func (c *Catalog) PrevTier(tier int) (AircraftClass, bool) {
	for i := len(c.aircraft) - 1; i >= 0; i-- {
		if c.aircraft[i].Tier < tier {
			return c.aircraft[i], true
		}
	}
	return AircraftClass{}, false
}

// MinPassengersFor returns the smallest passenger count for which the given
// class is the implied (smallest eligible) one: the capacity of the tier
// below, plus one. For the lowest tier this is 1.
func (c *Catalog) MinPassengersFor(class AircraftClass) int {
	prev, ok := c.PrevTier(class.Tier)
	if !ok {
		return 1
	}
	return prev.Capacity + 1
}

// AirportCount reports the number of loaded airports.
func (c *Catalog) AirportCount() int { return len(c.airports) }

// AircraftCount reports the number of loaded aircraft classes.
func (c *Catalog) AircraftCount() int { return len(c.aircraft) }

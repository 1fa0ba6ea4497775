// README: Pricing engine: distance, eligibility, per-aircraft cost breakdown.
package pricing

import (
	"errors"
	"fmt"
	"time"

	"skyquote/internal/modules/catalog"
	"skyquote/internal/types"
)

const (
	minBillableNM = 250.0
	landingFee    = 600.0
	segmentFee    = 350.0
	taxRate       = 0.075
)

// ErrNoEligibleAircraft is returned when no class fits the passenger count.
var ErrNoEligibleAircraft = errors.New("no aircraft class fits the requested passenger count")

// UnknownAirportError reports an airport code the catalog does not know.
// Field names the offending slot ("origin" or "destination").
type UnknownAirportError struct {
	Code  string
	Field string
}

func (e *UnknownAirportError) Error() string {
	return fmt.Sprintf("unknown airport %q for %s", e.Code, e.Field)
}

// Engine computes quotes for complete trip requests. It is a pure function
// over the catalog snapshot apart from the clock used for the lead-time
// multiplier.
type Engine struct {
	cat *catalog.Catalog
	now func() time.Time
}

func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat, now: time.Now}
}

// WithClock overrides the time source used for the lead-time multiplier.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Price returns one quote per eligible aircraft class, ordered by capacity
// ascending (smallest fit first) with price breaking ties.
func (e *Engine) Price(trip types.TripRequest) ([]Quote, error) {
	origin, ok := e.cat.Airport(trip.Origin)
	if !ok {
		return nil, &UnknownAirportError{Code: trip.Origin, Field: "origin"}
	}
	dest, ok := e.cat.Airport(trip.Destination)
	if !ok {
		return nil, &UnknownAirportError{Code: trip.Destination, Field: "destination"}
	}

	distance := haversineNM(origin.Lat, origin.Lng, dest.Lat, dest.Lng)
	passengers := trip.EffectivePassengers()

	eligible := e.cat.Eligible(passengers)
	if len(eligible) == 0 {
		return nil, ErrNoEligibleAircraft
	}

	quotes := make([]Quote, 0, len(eligible))
	for _, class := range eligible {
		quotes = append(quotes, e.quoteFor(class, distance, trip))
	}

	sortBy(quotes, func(a, b Quote) bool {
		if a.Aircraft.Capacity != b.Aircraft.Capacity {
			return a.Aircraft.Capacity < b.Aircraft.Capacity
		}
		return a.Breakdown.Total < b.Breakdown.Total
	})
	return quotes, nil
}

func (e *Engine) quoteFor(class catalog.AircraftClass, distance float64, trip types.TripRequest) Quote {
	billable := distance
	if billable < minBillableNM {
		billable = minBillableNM
	}

	leadMult := leadTimeMultiplier(trip.DepartureDate, e.now())
	weekendMult := weekendMultiplier(trip.DepartureDate)

	base := billable * class.RatePerNM * leadMult * weekendMult
	if trip.IsRoundTrip() {
		// A round trip doubles the distance-based component only; landing
		// and segment fees are charged once.
		base *= 2
	}

	subtotal := base + landingFee + segmentFee
	taxes := subtotal * taxRate

	return Quote{
		Aircraft:        class,
		DistanceNM:      distance,
		FlightTimeHours: distance / class.CruiseSpeedKt,
		RoundTrip:       trip.IsRoundTrip(),
		Breakdown: Breakdown{
			BillableNM:         billable,
			RatePerNM:          class.RatePerNM,
			BaseCost:           base,
			LandingFee:         landingFee,
			SegmentFee:         segmentFee,
			LeadTimeMultiplier: leadMult,
			WeekendMultiplier:  weekendMult,
			Subtotal:           subtotal,
			Taxes:              taxes,
			Total:              subtotal + taxes,
		},
	}
}

// leadTimeMultiplier surcharges short-notice departures.
func leadTimeMultiplier(departure, now time.Time) float64 {
	days := int(departure.Sub(truncateToDate(now)).Hours() / 24)
	switch {
	case days <= 3:
		return 1.30
	case days <= 7:
		return 1.15
	default:
		return 1.00
	}
}

// weekendMultiplier surcharges Saturday and Sunday departures.
func weekendMultiplier(departure time.Time) float64 {
	if wd := departure.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return 1.10
	}
	return 1.00
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

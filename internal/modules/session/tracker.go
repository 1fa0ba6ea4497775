// README: Dialogue state tracker: merges extraction deltas into session state.
package session

import (
	"skyquote/internal/modules/catalog"
	"skyquote/internal/modules/extract"
	"skyquote/internal/types"
)

// Tracker is the sole mutator of session state. Callers hold the session
// lock across Merge and any subsequent reads of the merged state.
type Tracker struct {
	cat *catalog.Catalog
}

func NewTracker(cat *catalog.Catalog) *Tracker {
	return &Tracker{cat: cat}
}

// Merge applies a delta to the session's trip request and appends the raw
// message to the bounded history. Semantics per field: absent retains,
// absolute overwrites, relative tier steps recompute the passenger count
// from the currently implied aircraft tier.
func (t *Tracker) Merge(s *Session, message string, d extract.Delta) types.TripRequest {
	s.History.Add(message)

	trip := &s.Trip
	if d.Origin.Kind == extract.Absolute {
		trip.Origin = d.Origin.Value
	}
	if d.Destination.Kind == extract.Absolute {
		trip.Destination = d.Destination.Value
	}
	if d.DepartureDate.Kind == extract.Absolute {
		trip.DepartureDate = d.DepartureDate.Value
	}
	if d.ReturnDate.Kind == extract.Absolute {
		trip.ReturnDate = d.ReturnDate.Value
	}
	if d.RoundTrip {
		s.PendingRoundTrip = true
	}
	if !trip.ReturnDate.IsZero() {
		s.PendingRoundTrip = false
	} else if s.PendingRoundTrip && !trip.DepartureDate.IsZero() {
		trip.ReturnDate = trip.DepartureDate
		s.PendingRoundTrip = false
	}
	if d.Passengers.Kind == extract.Absolute {
		trip.Passengers = d.Passengers.Value
	}
	if d.TierSteps.Kind == extract.Relative {
		t.applyTierSteps(trip, d.TierSteps.Steps)
	}

	// Passenger count has an implicit default of 1; it never blocks
	// completeness on its own.
	if trip.Passengers <= 0 {
		trip.Passengers = 1
	}
	return *trip
}

// applyTierSteps moves the implied aircraft tier up or down and sets the
// passenger count to the target tier's representative minimum, so the
// target becomes the smallest eligible class. At either end of the tier
// ladder the step is a no-op.
func (t *Tracker) applyTierSteps(trip *types.TripRequest, steps int) {
	current := t.cat.ImpliedClass(trip.EffectivePassengers())
	target := current
	for i := 0; i < steps; i++ {
		next, ok := t.cat.NextTier(target.Tier)
		if !ok {
			break
		}
		target = next
	}
	for i := 0; i > steps; i-- {
		prev, ok := t.cat.PrevTier(target.Tier)
		if !ok {
			break
		}
		target = prev
	}
	if target.Tier == current.Tier {
		return
	}
	trip.Passengers = t.cat.MinPassengersFor(target)
}

// ClearOrigin resets the origin slot, e.g. after pricing reported the code
// as unknown, so the planner asks for it again.
func (t *Tracker) ClearOrigin(s *Session) { s.Trip.Origin = "" }

// ClearDestination resets the destination slot.
func (t *Tracker) ClearDestination(s *Session) { s.Trip.Destination = "" }

// README: Extraction delta: tagged slot updates found in one message.
package extract

import (
	"context"
	"time"

	"skyquote/internal/types"
)

// Source indicates which extraction path produced a slot value.
type Source string

const (
	SourceRule  Source = "rule"
	SourceModel Source = "model"
)

// Kind tags a slot update. Absent means the message said nothing about the
// slot; Absolute replaces the prior value; Relative adjusts it.
type Kind int

const (
	Absent Kind = iota
	Absolute
	Relative
)

// StringSlot is an airport-code slot update.
type StringSlot struct {
	Kind   Kind
	Value  string
	Source Source
}

// DateSlot is a calendar-date slot update.
type DateSlot struct {
	Kind   Kind
	Value  time.Time
	Source Source
}

// CountSlot is a passenger-count or tier-step slot update. Absolute updates
// carry Value; Relative updates carry Steps (tier steps, signed).
type CountSlot struct {
	Kind   Kind
	Value  int
	Steps  int
	Source Source
}

// Delta is the sparse set of slot values found in one message.
type Delta struct {
	Origin        StringSlot
	Destination   StringSlot
	DepartureDate DateSlot
	ReturnDate    DateSlot

	// Passengers carries absolute counts ("change to 6 passengers").
	Passengers CountSlot

	// TierSteps carries relative aircraft-size hints ("bigger" = +1).
	TierSteps CountSlot

	// RoundTrip is set when the user asked for a round trip without naming
	// a return date; the tracker resolves it against the departure date.
	RoundTrip bool
}

// Empty reports whether no slot was found at all.
func (d Delta) Empty() bool {
	return d.Origin.Kind == Absent &&
		d.Destination.Kind == Absent &&
		d.DepartureDate.Kind == Absent &&
		d.ReturnDate.Kind == Absent &&
		d.Passengers.Kind == Absent &&
		d.TierSteps.Kind == Absent &&
		!d.RoundTrip
}

// Extractor turns free text into a partial slot set. Implementations must
// never fail on malformed input; the worst case is an empty delta. The error
// return exists so the fallback wrapper can detect collaborator failures;
// the rule-based implementation always returns nil.
type Extractor interface {
	Extract(ctx context.Context, message string, prior types.TripRequest, history []string) (Delta, error)
}

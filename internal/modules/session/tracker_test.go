package session

import (
	"testing"
	"time"

	"skyquote/internal/modules/catalog"
	"skyquote/internal/modules/extract"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func absSlot(code string) extract.StringSlot {
	return extract.StringSlot{Kind: extract.Absolute, Value: code, Source: extract.SourceRule}
}

func TestMergeFillsAndOverwrites(t *testing.T) {
	tr := NewTracker(catalog.NewSeeded())
	s := NewSession("s1", 0)

	trip := tr.Merge(s, "from bos to lax", extract.Delta{
		Origin:      absSlot("BOS"),
		Destination: absSlot("LAX"),
	})
	if trip.Origin != "BOS" || trip.Destination != "LAX" {
		t.Fatalf("trip = %+v, want BOS->LAX", trip)
	}
	if trip.Passengers != 1 {
		t.Errorf("passengers = %d, want default 1", trip.Passengers)
	}

	// Absent fields retain prior values.
	trip = tr.Merge(s, "on friday", extract.Delta{
		DepartureDate: extract.DateSlot{Kind: extract.Absolute, Value: date(2026, 9, 4), Source: extract.SourceRule},
	})
	if trip.Origin != "BOS" || trip.Destination != "LAX" {
		t.Errorf("route lost on merge: %+v", trip)
	}
	if !trip.DepartureDate.Equal(date(2026, 9, 4)) {
		t.Errorf("departure = %s, want 2026-09-04", trip.DepartureDate)
	}

	// Absolute values overwrite, and re-merging the same delta is idempotent.
	trip = tr.Merge(s, "actually from miami", extract.Delta{Origin: absSlot("MIA")})
	if trip.Origin != "MIA" || trip.Destination != "LAX" {
		t.Errorf("trip after overwrite = %+v, want MIA->LAX", trip)
	}
	again := tr.Merge(s, "actually from miami", extract.Delta{Origin: absSlot("MIA")})
	if again != trip {
		t.Errorf("repeated absolute merge changed state: %+v vs %+v", again, trip)
	}
}

func TestMergeRoundTripResolvesReturn(t *testing.T) {
	tr := NewTracker(catalog.NewSeeded())
	s := NewSession("s1", 0)

	trip := tr.Merge(s, "round trip on friday", extract.Delta{
		DepartureDate: extract.DateSlot{Kind: extract.Absolute, Value: date(2026, 9, 4), Source: extract.SourceRule},
		RoundTrip:     true,
	})
	if !trip.ReturnDate.Equal(date(2026, 9, 4)) {
		t.Errorf("return = %s, want resolved to departure", trip.ReturnDate)
	}

	// An explicit return date is never overwritten by the flag.
	trip = tr.Merge(s, "back on monday", extract.Delta{
		ReturnDate: extract.DateSlot{Kind: extract.Absolute, Value: date(2026, 9, 7), Source: extract.SourceRule},
		RoundTrip:  true,
	})
	if !trip.ReturnDate.Equal(date(2026, 9, 7)) {
		t.Errorf("return = %s, want 2026-09-07", trip.ReturnDate)
	}
}

func TestMergeRoundTripBeforeDeparture(t *testing.T) {
	tr := NewTracker(catalog.NewSeeded())
	s := NewSession("s1", 0)

	// The flag arrives first and must survive until a date is known.
	trip := tr.Merge(s, "round trip from bos to lax", extract.Delta{
		Origin:      absSlot("BOS"),
		Destination: absSlot("LAX"),
		RoundTrip:   true,
	})
	if !trip.ReturnDate.IsZero() {
		t.Fatalf("return = %s, want unresolved without a departure date", trip.ReturnDate)
	}

	trip = tr.Merge(s, "on friday", extract.Delta{
		DepartureDate: extract.DateSlot{Kind: extract.Absolute, Value: date(2026, 9, 4), Source: extract.SourceRule},
	})
	if !trip.ReturnDate.Equal(date(2026, 9, 4)) {
		t.Errorf("return = %s, want resolved to departure on the later turn", trip.ReturnDate)
	}
	if s.PendingRoundTrip {
		t.Error("pending flag should clear once resolved")
	}
}

func TestMergeTierStepping(t *testing.T) {
	tr := NewTracker(catalog.NewSeeded())
	s := NewSession("s1", 0)
	cat := catalog.NewSeeded()

	bigger := extract.Delta{TierSteps: extract.CountSlot{Kind: extract.Relative, Steps: 1, Source: extract.SourceRule}}

	// 1 pax implies Very Light Jet; one step up targets Light Jet.
	trip := tr.Merge(s, "bigger", bigger)
	if trip.Passengers != 5 {
		t.Fatalf("passengers after step = %d, want 5", trip.Passengers)
	}
	if got := cat.ImpliedClass(trip.Passengers); got.Name != "Light Jet" {
		t.Errorf("implied class = %s, want Light Jet", got.Name)
	}

	// Stepping up never shrinks the implied class.
	prev := cat.ImpliedClass(trip.Passengers).Tier
	trip = tr.Merge(s, "bigger", bigger)
	if got := cat.ImpliedClass(trip.Passengers).Tier; got <= prev {
		t.Errorf("tier after second step = %d, want above %d", got, prev)
	}

	// At the top of the ladder further steps are no-ops.
	s2 := NewSession("s2", 0)
	tr.Merge(s2, "16 people", extract.Delta{
		Passengers: extract.CountSlot{Kind: extract.Absolute, Value: 16, Source: extract.SourceRule},
	})
	trip = tr.Merge(s2, "bigger", bigger)
	if trip.Passengers != 16 {
		t.Errorf("passengers = %d, want unchanged 16 at top tier", trip.Passengers)
	}

	// Likewise stepping down from the bottom.
	s3 := NewSession("s3", 0)
	trip = tr.Merge(s3, "smaller", extract.Delta{
		TierSteps: extract.CountSlot{Kind: extract.Relative, Steps: -1, Source: extract.SourceRule},
	})
	if trip.Passengers != 1 {
		t.Errorf("passengers = %d, want unchanged 1 at bottom tier", trip.Passengers)
	}
}

func TestClearSlots(t *testing.T) {
	tr := NewTracker(catalog.NewSeeded())
	s := NewSession("s1", 0)
	tr.Merge(s, "from zzz to lax", extract.Delta{
		Origin:      absSlot("ZZZ"),
		Destination: absSlot("LAX"),
	})

	tr.ClearOrigin(s)
	if s.Trip.Origin != "" {
		t.Errorf("origin = %q, want cleared", s.Trip.Origin)
	}
	if s.Trip.Destination != "LAX" {
		t.Errorf("destination = %q, want retained", s.Trip.Destination)
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(3)
	for _, m := range []string{"one", "two", "three", "four"} {
		h.Add(m)
	}
	got := h.Items()
	want := []string{"two", "three", "four"}
	if len(got) != len(want) {
		t.Fatalf("history = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("history[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if h.Len() != 3 {
		t.Errorf("Len = %d, want 3", h.Len())
	}
}

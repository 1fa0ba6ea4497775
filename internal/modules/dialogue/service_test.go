package dialogue

import (
	"context"
	"strings"
	"testing"
	"time"

	"skyquote/internal/logger"
	"skyquote/internal/modules/catalog"
	"skyquote/internal/modules/extract"
	"skyquote/internal/modules/pricing"
	"skyquote/internal/modules/session"
)

// Tuesday, 2026-09-01.
var anchor = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestService() *Service {
	cat := catalog.NewSeeded()
	clock := func() time.Time { return anchor }
	return NewService(
		extract.NewRuleExtractor(cat).WithClock(clock),
		session.NewMemoryStore(0),
		session.NewTracker(cat),
		pricing.NewEngine(cat).WithClock(clock),
		logger.NewNop(),
		nil,
	)
}

func TestChatSlotFillingToQuote(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	r := svc.Chat(ctx, "s1", "i need a jet")
	if r.Complete {
		t.Fatal("turn 1 should not be complete")
	}
	if !strings.Contains(r.Text, "Where are you flying from, and where to?") {
		t.Errorf("turn 1 reply = %q, want route question", r.Text)
	}

	r = svc.Chat(ctx, "s1", "from bos to lax")
	if r.Complete {
		t.Fatal("turn 2 should not be complete")
	}
	if !strings.Contains(r.Text, "When would you like to depart from BOS to LAX?") {
		t.Errorf("turn 2 reply = %q, want date question naming the route", r.Text)
	}

	r = svc.Chat(ctx, "s1", "on friday")
	if !r.Complete {
		t.Fatalf("turn 3 should complete, reply = %q", r.Text)
	}
	if len(r.Quotes) == 0 {
		t.Fatal("turn 3 produced no quotes")
	}
	if r.Quotes[0].Aircraft.Name != "Very Light Jet" {
		t.Errorf("top quote = %s, want Very Light Jet for 1 pax", r.Quotes[0].Aircraft.Name)
	}
	if r.Trip.Passengers != 1 {
		t.Errorf("passengers = %d, want default 1", r.Trip.Passengers)
	}
	if !strings.Contains(r.Text, "Total: $") {
		t.Errorf("quote reply = %q, want a total", r.Text)
	}
	if !strings.Contains(r.Text, "departing 2026-09-04") {
		t.Errorf("quote reply = %q, want departure 2026-09-04", r.Text)
	}
}

func TestChatBiggerAircraftReprices(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	svc.Chat(ctx, "s1", "from bos to lax on friday")
	r := svc.Chat(ctx, "s1", "i want a bigger aircraft")
	if !r.Complete {
		t.Fatalf("size change should re-price, reply = %q", r.Text)
	}
	if r.Quotes[0].Aircraft.Name != "Light Jet" {
		t.Errorf("top quote = %s, want Light Jet after stepping up", r.Quotes[0].Aircraft.Name)
	}
	if r.Trip.Passengers != 5 {
		t.Errorf("passengers = %d, want 5", r.Trip.Passengers)
	}
}

func TestChatUnknownAirportRecovery(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	r := svc.Chat(ctx, "s1", "from zzz to lax on friday")
	if r.Complete {
		t.Fatal("unknown airport must not complete the turn")
	}
	if !strings.Contains(r.Text, "ZZZ") {
		t.Errorf("reply = %q, want the unrecognized code named", r.Text)
	}
	if r.Trip.Origin != "" {
		t.Errorf("origin = %q, want cleared for re-ask", r.Trip.Origin)
	}

	r = svc.Chat(ctx, "s1", "from bos")
	if !r.Complete {
		t.Fatalf("corrected origin should complete, reply = %q", r.Text)
	}
	if r.Trip.Origin != "BOS" || r.Trip.Destination != "LAX" {
		t.Errorf("trip = %+v, want BOS->LAX", r.Trip)
	}
}

func TestChatNoEligibleAircraft(t *testing.T) {
	svc := newTestService()

	r := svc.Chat(context.Background(), "s1", "from bos to lax on friday for 20 people")
	if r.Complete {
		t.Fatal("oversized group must not complete the turn")
	}
	if !strings.Contains(r.Text, "20 passengers") {
		t.Errorf("reply = %q, want the group size named", r.Text)
	}
}

func TestChatRoundTripBeforeDate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	r := svc.Chat(ctx, "s1", "round trip from bos to lax")
	if r.Complete {
		t.Fatalf("reply = %q, want a date question", r.Text)
	}

	r = svc.Chat(ctx, "s1", "on friday")
	if !r.Complete {
		t.Fatalf("reply = %q, want a quote", r.Text)
	}
	if !r.Quotes[0].RoundTrip {
		t.Error("quote priced one-way despite the earlier round-trip request")
	}
	if !strings.Contains(r.Text, "returning 2026-09-04") {
		t.Errorf("reply = %q, want a return date", r.Text)
	}
}

func TestChatSessionsAreIndependent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	svc.Chat(ctx, "a", "from bos to lax")
	r := svc.Chat(ctx, "b", "hello")
	if r.Trip.Origin != "" || r.Trip.Destination != "" {
		t.Errorf("session b picked up session a state: %+v", r.Trip)
	}
}

func TestComposeQuotesRendersAlternates(t *testing.T) {
	svc := newTestService()

	r := svc.Chat(context.Background(), "s1", "from bos to lax on friday for 8 people")
	if !r.Complete {
		t.Fatalf("reply = %q, want a quote", r.Text)
	}
	// 8 pax: Midsize, Super Midsize, and Heavy are eligible.
	if len(r.Quotes) != 3 {
		t.Fatalf("got %d quotes, want 3", len(r.Quotes))
	}
	if !strings.Contains(r.Text, "Alternates:") {
		t.Errorf("reply = %q, want alternates listed", r.Text)
	}
	if !strings.Contains(r.Text, "8 pax on Midsize Jet") {
		t.Errorf("reply = %q, want top option for 8 pax", r.Text)
	}
}

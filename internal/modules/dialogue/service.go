// README: Dialogue service: one chat turn from message to reply.
package dialogue

import (
	"context"
	"errors"
	"time"

	"skyquote/internal/logger"
	"skyquote/internal/metrics"
	"skyquote/internal/modules/extract"
	"skyquote/internal/modules/pricing"
	"skyquote/internal/modules/session"
	"skyquote/internal/types"
)

// Reply is the outcome of one conversational turn.
type Reply struct {
	Text     string
	Complete bool
	Trip     types.TripRequest
	Quotes   []pricing.Quote // non-nil only when the turn produced a quote
}

// Service orchestrates a turn: extract a delta, merge it into session
// state, then either ask the next question or price the trip. It never
// surfaces internal errors to the caller; failures degrade to clarification
// or apology text.
type Service struct {
	extractor extract.Extractor
	store     session.Store
	tracker   *session.Tracker
	engine    *pricing.Engine
	log       logger.Logger
	metrics   *metrics.Metrics // optional
}

func NewService(extractor extract.Extractor, store session.Store, tracker *session.Tracker, engine *pricing.Engine, log logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		extractor: extractor,
		store:     store,
		tracker:   tracker,
		engine:    engine,
		log:       log,
		metrics:   m,
	}
}

// Chat processes one inbound message for the given session.
func (s *Service) Chat(ctx context.Context, sessionID, message string) Reply {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ChatTurns.Inc()
			s.metrics.TurnDuration.Observe(time.Since(start).Seconds())
		}
	}()

	sess := s.store.GetOrCreate(sessionID)
	sess.Lock()
	defer sess.Unlock()

	history := sess.History.Items()
	delta, err := s.extractor.Extract(ctx, message, sess.Trip, history)
	if err != nil {
		// The fallback wrapper recovers collaborator failures itself; an
		// error here means a programming bug, not user input. Degrade to an
		// empty delta so the turn still produces a question.
		s.log.Error("extraction failed", "session_id", sessionID, "error", err)
		delta = extract.Delta{}
	}

	trip := s.tracker.Merge(sess, message, delta)

	if q := NextQuestion(trip); q != "" {
		return Reply{Text: q, Trip: trip}
	}

	quotes, err := s.engine.Price(trip)
	if err != nil {
		return s.recoverPricing(sess, trip, err)
	}

	if s.metrics != nil {
		s.metrics.QuotesGenerated.Inc()
	}
	return Reply{
		Text:     composeQuotes(trip, quotes),
		Complete: true,
		Trip:     trip,
		Quotes:   quotes,
	}
}

// recoverPricing maps pricing failures to clarification or apology text on
// the chat path. Unknown airports additionally clear the offending slot so
// the planner re-asks on the next turn instead of re-pricing a known-bad
// request.
func (s *Service) recoverPricing(sess *session.Session, trip types.TripRequest, err error) Reply {
	var unknown *pricing.UnknownAirportError
	if errors.As(err, &unknown) {
		if unknown.Field == "origin" {
			s.tracker.ClearOrigin(sess)
		} else {
			s.tracker.ClearDestination(sess)
		}
		if s.metrics != nil {
			s.metrics.ErrorsCount.WithLabelValues("unknown_airport").Inc()
		}
		return Reply{Text: composeUnknownAirport(unknown), Trip: sess.Trip}
	}

	if errors.Is(err, pricing.ErrNoEligibleAircraft) {
		if s.metrics != nil {
			s.metrics.ErrorsCount.WithLabelValues("no_eligible_aircraft").Inc()
		}
		return Reply{Text: composeNoAircraft(trip.EffectivePassengers()), Trip: trip}
	}

	s.log.Error("pricing failed", "session_id", sess.ID, "error", err)
	if s.metrics != nil {
		s.metrics.ErrorsCount.WithLabelValues("pricing").Inc()
	}
	return Reply{Text: "I'm sorry, I couldn't price that trip. Could you rephrase your request?", Trip: trip}
}

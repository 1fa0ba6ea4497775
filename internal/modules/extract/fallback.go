// README: Fallback wrapper: model-assisted extraction with the rule path as guarantee.
package extract

import (
	"context"
	"time"

	"skyquote/internal/ai"
	"skyquote/internal/logger"
	"skyquote/internal/types"
)

// FallbackExtractor prefers the model-assisted collaborator and degrades to
// the rule-based path on any failure: timeout, malformed output, or the
// collaborator simply not being configured. Failures never reach the user.
type FallbackExtractor struct {
	model   ai.IntentExtractor // nil when not configured
	rules   *RuleExtractor
	timeout time.Duration
	log     logger.Logger
	now     func() time.Time

	// OnFallback is invoked whenever a configured model path failed and
	// rules took over. Optional; used for metrics.
	OnFallback func()
}

func NewFallbackExtractor(model ai.IntentExtractor, rules *RuleExtractor, timeout time.Duration, log logger.Logger) *FallbackExtractor {
	return &FallbackExtractor{
		model:   model,
		rules:   rules,
		timeout: timeout,
		log:     log,
		now:     time.Now,
	}
}

// Configured reports whether the model-assisted path is available.
func (f *FallbackExtractor) Configured() bool { return f.model != nil }

func (f *FallbackExtractor) Extract(ctx context.Context, message string, prior types.TripRequest, history []string) (Delta, error) {
	if f.model == nil {
		return f.rules.Extract(ctx, message, prior, history)
	}

	mctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	cands, err := f.model.ExtractSlots(mctx, message, history, f.now())
	if err != nil {
		f.log.Warn("model extraction failed, using rules", "error", err)
		if f.OnFallback != nil {
			f.OnFallback()
		}
		return f.rules.Extract(ctx, message, prior, history)
	}

	d := f.convert(cands)
	if d.Empty() {
		// An empty model result may just mean "no slots in this message",
		// but the deterministic path costs nothing and catches phrasing the
		// model missed.
		return f.rules.Extract(ctx, message, prior, history)
	}
	return d, nil
}

// convert maps the collaborator's structured output onto a Delta. Malformed
// fields are skipped rather than failing the whole extraction.
func (f *FallbackExtractor) convert(c *ai.SlotCandidates) Delta {
	var d Delta
	if c == nil {
		return d
	}
	if code := resolveCode(c.Origin); code != "" {
		d.Origin = StringSlot{Kind: Absolute, Value: code, Source: SourceModel}
	}
	if code := resolveCode(c.Destination); code != "" {
		d.Destination = StringSlot{Kind: Absolute, Value: code, Source: SourceModel}
	}
	if t, ok := parseISODate(c.DepartureDate); ok {
		d.DepartureDate = DateSlot{Kind: Absolute, Value: t, Source: SourceModel}
	}
	if t, ok := parseISODate(c.ReturnDate); ok {
		d.ReturnDate = DateSlot{Kind: Absolute, Value: t, Source: SourceModel}
	}
	d.RoundTrip = c.RoundTrip
	if c.Passengers != nil && *c.Passengers > 0 {
		d.Passengers = CountSlot{Kind: Absolute, Value: *c.Passengers, Source: SourceModel}
	}
	if c.SizeSteps != 0 {
		d.TierSteps = CountSlot{Kind: Relative, Steps: c.SizeSteps, Source: SourceModel}
	}
	return d
}

func resolveCode(s *string) string {
	if s == nil {
		return ""
	}
	v := *s
	if len(v) != 3 {
		return ""
	}
	out := make([]byte, 3)
	for i := 0; i < 3; i++ {
		c := v[i]
		switch {
		case c >= 'a' && c <= 'z':
			out[i] = c - 'a' + 'A'
		case c >= 'A' && c <= 'Z':
			out[i] = c
		default:
			return ""
		}
	}
	return string(out)
}

func parseISODate(s *string) (time.Time, bool) {
	if s == nil {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

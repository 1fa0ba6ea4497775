// README: Deterministic rule-based slot extraction (the guaranteed path).
package extract

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"skyquote/internal/modules/catalog"
	"skyquote/internal/types"
)

var (
	reFromTo    = regexp.MustCompile(`(?i)\bfrom\s+([a-z][a-z ]*?)\s+to\s+([a-z][a-z ]*)`)
	reBareRoute = regexp.MustCompile(`(?i)\b([a-z][a-z ]*?)\s+to\s+([a-z][a-z ]*)`)
	reFromOnly  = regexp.MustCompile(`(?i)\bfrom\s+([a-z][a-z ]*)`)
	reToOnly    = regexp.MustCompile(`(?i)\bto\s+([a-z][a-z ]*)`)

	reReturn    = regexp.MustCompile(`(?i)\breturn(?:ing)?\s+(?:on\s+)?([^,.!?]+)`)
	reBackOn    = regexp.MustCompile(`(?i)\bback\s+on\s+([^,.!?]+)`)
	reRoundTrip = regexp.MustCompile(`(?i)\bround\s*trip\b`)

	reDepartOn   = regexp.MustCompile(`(?i)\b(?:on|depart(?:ing)?|leav\w+)\s+([^,.!?]+)`)
	reDatePhrase = regexp.MustCompile(`(?i)\b(next weekend|this weekend|next [a-z]+|this [a-z]+|tomorrow|today|\d{4}-\d{2}-\d{2})\b`)
	reWeekday    = regexp.MustCompile(`(?i)\b(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`)

	reChangePax = regexp.MustCompile(`(?i)\bchange\s+to\s+(\d+)\s*(?:pax|people|passengers)?\b`)
	reForPax    = regexp.MustCompile(`(?i)\bfor\s+(\d+)(?:\s*([a-z]+))?`)
	rePax       = regexp.MustCompile(`(?i)\b(\d+)\s*(?:pax|people|passengers)\b`)

	reBigger  = regexp.MustCompile(`(?i)\b(?:bigger|larger)\b`)
	reSmaller = regexp.MustCompile(`(?i)\bsmaller\b`)
)

// Common three-letter English words that must not be mistaken for an
// unrecognized IATA code in route position.
var codeStopwords = map[string]bool{
	"the": true, "and": true, "for": true, "you": true, "get": true,
	"fly": true, "jet": true, "our": true, "his": true, "her": true,
	"its": true, "out": true, "now": true, "one": true, "two": true,
	"six": true, "ten": true, "via": true, "any": true,
}

// RuleExtractor is the deterministic regex/keyword extraction path.
type RuleExtractor struct {
	cat *catalog.Catalog
	now func() time.Time
}

func NewRuleExtractor(cat *catalog.Catalog) *RuleExtractor {
	return &RuleExtractor{cat: cat, now: time.Now}
}

// WithClock overrides the time source used to anchor relative dates.
func (r *RuleExtractor) WithClock(now func() time.Time) *RuleExtractor {
	r.now = now
	return r
}

// Extract never returns an error; malformed input yields an empty delta.
func (r *RuleExtractor) Extract(_ context.Context, message string, prior types.TripRequest, _ []string) (Delta, error) {
	var d Delta
	msg := strings.TrimSpace(message)
	if msg == "" {
		return d, nil
	}

	r.extractRoute(msg, prior, &d)

	// Return phrases are matched first and blanked out so "return friday"
	// cannot also be read as a departure date.
	remainder := r.extractReturn(msg, &d)
	r.extractDeparture(remainder, &d)

	extractPassengers(msg, &d)
	extractSize(msg, &d)
	return d, nil
}

func (r *RuleExtractor) extractRoute(msg string, prior types.TripRequest, d *Delta) {
	for _, re := range []*regexp.Regexp{reFromTo, reBareRoute} {
		for _, m := range re.FindAllStringSubmatch(msg, -1) {
			origin, ookay := r.resolveEndpoint(m[1])
			dest, dokay := r.resolveEndpoint(m[2])
			if ookay && dokay {
				d.Origin = StringSlot{Kind: Absolute, Value: origin, Source: SourceRule}
				d.Destination = StringSlot{Kind: Absolute, Value: dest, Source: SourceRule}
				return
			}
		}
	}

	// Single-endpoint phrases ("from boston", "to miami").
	for _, m := range reFromOnly.FindAllStringSubmatch(msg, -1) {
		if code, ok := r.resolveEndpoint(m[1]); ok {
			d.Origin = StringSlot{Kind: Absolute, Value: code, Source: SourceRule}
			break
		}
	}
	for _, m := range reToOnly.FindAllStringSubmatch(msg, -1) {
		if code, ok := r.resolveEndpoint(m[1]); ok {
			d.Destination = StringSlot{Kind: Absolute, Value: code, Source: SourceRule}
			break
		}
	}
	if d.Origin.Kind != Absent || d.Destination.Kind != Absent {
		return
	}

	// Last resort: scan for known city/code mentions in order of appearance.
	mentions := r.scanMentions(msg)
	switch {
	case len(mentions) >= 2:
		d.Origin = StringSlot{Kind: Absolute, Value: mentions[0], Source: SourceRule}
		d.Destination = StringSlot{Kind: Absolute, Value: mentions[1], Source: SourceRule}
	case len(mentions) == 1:
		// One city alone is only unambiguous when exactly one endpoint is
		// still open.
		if prior.Origin == "" && prior.Destination != "" {
			d.Origin = StringSlot{Kind: Absolute, Value: mentions[0], Source: SourceRule}
		} else if prior.Origin != "" && prior.Destination == "" {
			d.Destination = StringSlot{Kind: Absolute, Value: mentions[0], Source: SourceRule}
		}
	}
}

// resolveEndpoint maps a captured route token to an airport code. The token
// may run past the airport name ("lax on friday"), so word prefixes are
// tried longest-first. A three-letter token that resolves to nothing is
// accepted verbatim as a candidate code; pricing reports it as unknown.
func (r *RuleExtractor) resolveEndpoint(token string) (string, bool) {
	words := strings.Fields(strings.TrimSpace(token))
	// A later "from" starts a new clause; never resolve across it.
	for i := 1; i < len(words); i++ {
		if words[i] == "from" {
			words = words[:i]
			break
		}
	}
	for n := len(words); n >= 1; n-- {
		cand := strings.Join(words[:n], " ")
		if a, ok := r.cat.FindAirport(cand); ok {
			return a.Code, true
		}
	}
	// Captures can also lead with filler ("go to vegas"); try suffixes,
	// skipping ones that begin mid-preposition.
	for i := 1; i < len(words); i++ {
		if words[i] == "to" || words[i] == "and" {
			continue
		}
		if a, ok := r.cat.FindAirport(strings.Join(words[i:], " ")); ok {
			return a.Code, true
		}
	}
	if len(words) > 0 {
		w := strings.ToLower(words[0])
		if len(w) == 3 && isAlpha(w) && !codeStopwords[w] {
			return strings.ToUpper(w), true
		}
	}
	return "", false
}

// scanMentions finds airport codes or city names anywhere in the message,
// ordered by position.
func (r *RuleExtractor) scanMentions(msg string) []string {
	lower := strings.ToLower(msg)
	type hit struct {
		pos  int
		code string
	}
	var hits []hit
	for _, a := range r.cat.Airports() {
		best := -1
		for _, needle := range []string{strings.ToLower(a.Code), strings.ToLower(a.City)} {
			if i := indexWord(lower, needle); i >= 0 && (best < 0 || i < best) {
				best = i
			}
		}
		if best >= 0 {
			hits = append(hits, hit{pos: best, code: a.Code})
		}
	}
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].pos < hits[j-1].pos; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	out := make([]string, 0, len(hits))
	seen := map[string]bool{}
	for _, h := range hits {
		if !seen[h.code] {
			seen[h.code] = true
			out = append(out, h.code)
		}
	}
	return out
}

func (r *RuleExtractor) extractReturn(msg string, d *Delta) string {
	today := r.now()
	remainder := msg
	for _, re := range []*regexp.Regexp{reReturn, reBackOn} {
		if m := re.FindStringSubmatch(remainder); m != nil {
			if t, ok := resolveDateToken(m[1], today); ok {
				d.ReturnDate = DateSlot{Kind: Absolute, Value: t, Source: SourceRule}
			}
			remainder = strings.Replace(remainder, m[0], " ", 1)
		}
	}
	if reRoundTrip.MatchString(remainder) {
		d.RoundTrip = true
		remainder = reRoundTrip.ReplaceAllString(remainder, " ")
	}
	return remainder
}

func (r *RuleExtractor) extractDeparture(msg string, d *Delta) {
	today := r.now()
	if m := reDepartOn.FindStringSubmatch(msg); m != nil {
		if t, ok := resolveDateToken(m[1], today); ok {
			d.DepartureDate = DateSlot{Kind: Absolute, Value: t, Source: SourceRule}
			return
		}
	}
	if m := reDatePhrase.FindStringSubmatch(msg); m != nil {
		if t, ok := resolveDatePhrase(m[1], today); ok {
			d.DepartureDate = DateSlot{Kind: Absolute, Value: t, Source: SourceRule}
			return
		}
	}
	if m := reWeekday.FindStringSubmatch(msg); m != nil {
		if t, ok := resolveDatePhrase(m[1], today); ok {
			d.DepartureDate = DateSlot{Kind: Absolute, Value: t, Source: SourceRule}
		}
	}
}

// resolveDateToken handles captures that may run past the date phrase
// ("friday morning please"): word prefixes are tried longest-first.
func resolveDateToken(token string, today time.Time) (time.Time, bool) {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(token)))
	max := len(words)
	if max > 3 {
		max = 3
	}
	for n := max; n >= 1; n-- {
		if t, ok := resolveDatePhrase(strings.Join(words[:n], " "), today); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// paxSuffixes are the words that may follow a bare "for N" and still mean a
// passenger count. Anything else ("for 3 days") is not a head count.
var paxSuffixes = map[string]bool{
	"":           true,
	"pax":        true,
	"people":     true,
	"person":     true,
	"persons":    true,
	"passenger":  true,
	"passengers": true,
	"guest":      true,
	"guests":     true,
}

func extractPassengers(msg string, d *Delta) {
	for _, re := range []*regexp.Regexp{reChangePax, rePax} {
		if m := re.FindStringSubmatch(msg); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				d.Passengers = CountSlot{Kind: Absolute, Value: n, Source: SourceRule}
				return
			}
		}
	}
	if m := reForPax.FindStringSubmatch(msg); m != nil && paxSuffixes[strings.ToLower(m[2])] {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			d.Passengers = CountSlot{Kind: Absolute, Value: n, Source: SourceRule}
		}
	}
}

func extractSize(msg string, d *Delta) {
	switch {
	case reBigger.MatchString(msg):
		d.TierSteps = CountSlot{Kind: Relative, Steps: 1, Source: SourceRule}
	case reSmaller.MatchString(msg):
		d.TierSteps = CountSlot{Kind: Relative, Steps: -1, Source: SourceRule}
	}
}

func isAlpha(s string) bool {
	for _, c := range s {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

func indexWord(haystack, needle string) int {
	if needle == "" {
		return -1
	}
	from := 0
	for {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			return -1
		}
		i += from
		j := i + len(needle)
		beforeOK := i == 0 || !isWordChar(haystack[i-1])
		afterOK := j == len(haystack) || !isWordChar(haystack[j])
		if beforeOK && afterOK {
			return i
		}
		from = i + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// README: Relative date phrase resolution.
package extract

import (
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// resolveDatePhrase turns a date phrase into a calendar date anchored at
// today. Ambiguous day-of-week phrases resolve to the next occurrence of
// that weekday strictly after today.
func resolveDatePhrase(phrase string, today time.Time) (time.Time, bool) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	today = truncateToDate(today)

	switch phrase {
	case "today":
		return today, true
	case "tomorrow":
		return today.AddDate(0, 0, 1), true
	case "next weekend":
		// The Saturday after the upcoming one when today is already Saturday.
		d := daysUntil(today, time.Saturday)
		if d == 0 {
			d = 7
		}
		return today.AddDate(0, 0, d), true
	case "this weekend", "weekend":
		// Upcoming Saturday, today if it is Saturday.
		return today.AddDate(0, 0, daysUntil(today, time.Saturday)), true
	}

	if t, err := time.Parse("2006-01-02", phrase); err == nil {
		return t, true
	}

	// "next friday", "this friday", "friday" all mean the next occurrence
	// strictly after today.
	name := strings.TrimPrefix(strings.TrimPrefix(phrase, "next "), "this ")
	if wd, ok := weekdays[name]; ok {
		d := daysUntil(today, wd)
		if d == 0 {
			d = 7
		}
		return today.AddDate(0, 0, d), true
	}

	return time.Time{}, false
}

// daysUntil returns the number of days from today to the given weekday,
// zero when today already is that weekday.
func daysUntil(today time.Time, wd time.Weekday) int {
	return (int(wd) - int(today.Weekday()) + 7) % 7
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// README: Session entity with bounded conversation history.
package session

import (
	"sync"

	"skyquote/internal/types"
)

// DefaultHistorySize is the number of raw messages retained per session.
const DefaultHistorySize = 3

// Session holds one conversation's evolving state. Turns for the same
// session id serialize on the session mutex; the caller locks for the
// duration of a turn.
type Session struct {
	ID      string
	Trip    types.TripRequest
	History *History

	// PendingRoundTrip remembers a "round trip" request made before the
	// departure date is known; the tracker resolves it once a date arrives.
	PendingRoundTrip bool

	mu sync.Mutex
}

func NewSession(id string, historySize int) *Session {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	return &Session{ID: id, History: NewHistory(historySize)}
}

// Lock serializes turn processing for this session.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the turn lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// History is a fixed-capacity ring buffer of raw messages. Insertion beyond
// capacity evicts the oldest entry.
type History struct {
	buf   []string
	start int
	count int
}

func NewHistory(capacity int) *History {
	return &History{buf: make([]string, capacity)}
}

// Add appends a message, evicting the oldest when the buffer is full.
func (h *History) Add(message string) {
	if h.count < len(h.buf) {
		h.buf[(h.start+h.count)%len(h.buf)] = message
		h.count++
		return
	}
	h.buf[h.start] = message
	h.start = (h.start + 1) % len(h.buf)
}

// Items returns the retained messages, oldest first.
func (h *History) Items() []string {
	out := make([]string, 0, h.count)
	for i := 0; i < h.count; i++ {
		out = append(out, h.buf[(h.start+i)%len(h.buf)])
	}
	return out
}

// Len reports the number of retained messages.
func (h *History) Len() int { return h.count }

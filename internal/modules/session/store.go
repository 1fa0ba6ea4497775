// README: Session store interface and in-memory implementation.
package session

import "sync"

// Store owns session lookup. Implementations must be safe for concurrent
// use; sessions for different ids are fully independent.
type Store interface {
	// Get returns the session for id, or nil when none exists.
	Get(id string) *Session

	// GetOrCreate returns the existing session or creates a fresh one.
	GetOrCreate(id string) *Session

	// Put stores a session under its id, replacing any existing one.
	Put(s *Session)

	// Evict removes a session. Idempotent.
	Evict(id string)
}

// MemoryStore keeps sessions in memory for the process lifetime. Idle
// eviction is the caller's concern.
type MemoryStore struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	historySize int
}

func NewMemoryStore(historySize int) *MemoryStore {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	return &MemoryStore{
		sessions:    make(map[string]*Session),
		historySize: historySize,
	}
}

func (m *MemoryStore) Get(id string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

func (m *MemoryStore) GetOrCreate(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := NewSession(id, m.historySize)
	m.sessions[id] = s
	return s
}

func (m *MemoryStore) Put(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
}

func (m *MemoryStore) Evict(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

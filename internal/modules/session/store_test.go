package session

import (
	"sync"
	"testing"
)

func TestMemoryStoreGetOrCreate(t *testing.T) {
	store := NewMemoryStore(0)

	s1 := store.GetOrCreate("abc")
	if s1 == nil || s1.ID != "abc" {
		t.Fatalf("GetOrCreate returned %+v", s1)
	}
	if s2 := store.GetOrCreate("abc"); s2 != s1 {
		t.Error("second GetOrCreate returned a different session")
	}
	if got := store.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %+v, want nil", got)
	}

	store.Evict("abc")
	if got := store.Get("abc"); got != nil {
		t.Errorf("session survived eviction: %+v", got)
	}
	store.Evict("abc") // idempotent
}

func TestMemoryStoreConcurrentGetOrCreate(t *testing.T) {
	store := NewMemoryStore(0)

	const goroutines = 32
	out := make([]*Session, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i] = store.GetOrCreate("shared")
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if out[i] != out[0] {
			t.Fatal("concurrent GetOrCreate produced distinct sessions")
		}
	}
}

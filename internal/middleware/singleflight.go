package middleware

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/semaphore"
)

// SingleFlight allows at most one in-flight request per client key. The UI
// already disables its submit control while a call is outstanding; this guard
// enforces the same invariant server-side against duplicate submissions.
// Keying by RealIP means clients behind one NAT share a slot; that is accepted
// as an approximation of per-session limiting.
type SingleFlight struct {
	mu      sync.Mutex
	entries map[string]*flightEntry
}

// flightEntry is refcounted so the map entry can be evicted once the last
// request referencing the key finishes.
type flightEntry struct {
	sem  *semaphore.Weighted
	refs int
}

func NewSingleFlight() *SingleFlight {
	return &SingleFlight{entries: make(map[string]*flightEntry)}
}

func (s *SingleFlight) acquire(key string) bool {
	s.mu.Lock()
	e := s.entries[key]
	if e == nil {
		e = &flightEntry{sem: semaphore.NewWeighted(1)}
		s.entries[key] = e
	}
	e.refs++
	s.mu.Unlock()
	return e.sem.TryAcquire(1)
}

func (s *SingleFlight) release(key string, acquired bool) {
	s.mu.Lock()
	e := s.entries[key]
	if acquired {
		e.sem.Release(1)
	}
	e.refs--
	if e.refs == 0 {
		delete(s.entries, key)
	}
	s.mu.Unlock()
}

// Limit rejects a request with 429 when the same client already has one
// outstanding. It never queues: duplicates fail fast.
func (s *SingleFlight) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.RealIP()
		acquired := s.acquire(key)
		defer s.release(key, acquired)
		if !acquired {
			return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
				"error": map[string]string{
					"code":    "generation_in_progress",
					"message": "a generation request is already in progress",
				},
			})
		}
		return next(c)
	}
}

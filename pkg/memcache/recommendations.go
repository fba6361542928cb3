// pkg/memcache/recommendations.go
package mem

import (
	"sync"
	"time"

	"aura/internal/models/response_models"
)

// RecommendationStore keeps the latest personalized recommendations per user
// so the dashboard can show them without another AI round trip.
type RecommendationStore interface {
	Set(userID string, recs []response_models.Recommendation, ttl time.Duration)

	// Peek returns the recommendations for userID if present and not expired.
	Peek(userID string) ([]response_models.Recommendation, bool)
}

type entry struct {
	recs      []response_models.Recommendation
	expiresAt time.Time
}

type Recommendations struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewRecommendations() *Recommendations {
	return &Recommendations{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *Recommendations) Set(userID string, recs []response_models.Recommendation, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = entry{
		recs:      append([]response_models.Recommendation(nil), recs...),
		expiresAt: s.now().Add(ttl),
	}
}

func (s *Recommendations) Peek(userID string) ([]response_models.Recommendation, bool) {
	s.mu.RLock()
	e, ok := s.data[userID]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		// re-check: a concurrent Set may have refreshed the entry
		if cur, ok := s.data[userID]; ok && s.now().After(cur.expiresAt) {
			delete(s.data, userID)
		}
		s.mu.Unlock()
		return nil, false
	}
	return append([]response_models.Recommendation(nil), e.recs...), true
}

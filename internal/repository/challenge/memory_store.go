package challenge

import (
	"context"
	"sync"
	"time"

	"freightforge/internal/entities"
	"freightforge/internal/service/registration"
)

// MemoryStore keeps challenges in process. Expired entries stay until
// DeleteExpired runs but are never returned.
type MemoryStore struct {
	mu         sync.Mutex
	challenges map[string]entities.VerificationChallenge
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		challenges: make(map[string]entities.VerificationChallenge),
	}
}

func (s *MemoryStore) Save(_ context.Context, challenge entities.VerificationChallenge, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge.ExpiresAt = time.Now().UTC().Add(ttl)
	s.challenges[challenge.ID] = challenge
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*entities.VerificationChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge, ok := s.challenges[id]
	if !ok || challenge.Expired(time.Now().UTC()) {
		return nil, registration.ErrChallengeNotFound
	}
	return &challenge, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.challenges, id)
	return nil
}

// DeleteExpired drops every challenge past its expiry and reports how many went.
func (s *MemoryStore) DeleteExpired(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	var removed int64
	for id, challenge := range s.challenges {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if challenge.Expired(now) {
			delete(s.challenges, id)
			removed++
		}
	}
	return removed, nil
}

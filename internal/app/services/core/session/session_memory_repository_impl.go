package session

import (
	"context"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/models"
	"sync"
	"time"
)

type storedSession struct {
	session   models.VerificationSession
	expiresAt time.Time
}

type sessionMemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]storedSession
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionMemoryRepository(ttl time.Duration) contracts.SessionRepository {
	return &sessionMemoryRepository{
		sessions: make(map[string]storedSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (repo *sessionMemoryRepository) Get(ctx context.Context, sessionID string) (*models.VerificationSession, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, ok := repo.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	if repo.now().After(stored.expiresAt) {
		delete(repo.sessions, sessionID)
		return nil, nil
	}

	session := stored.session
	session.Candidate = stored.session.Candidate.Clone()
	return &session, nil
}

func (repo *sessionMemoryRepository) Save(ctx context.Context, session *models.VerificationSession) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	copied := *session
	copied.Candidate = session.Candidate.Clone()
	repo.sessions[session.SessionID] = storedSession{
		session:   copied,
		expiresAt: repo.now().Add(repo.ttl),
	}
	return nil
}

func (repo *sessionMemoryRepository) Delete(ctx context.Context, sessionID string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.sessions, sessionID)
	return nil
}

// Sweep drops sessions whose ttl has passed and reports how many were removed.
func (repo *sessionMemoryRepository) Sweep(now time.Time) int {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	removed := 0
	for sessionID, stored := range repo.sessions {
		if now.After(stored.expiresAt) {
			delete(repo.sessions, sessionID)
			removed++
		}
	}
	return removed
}

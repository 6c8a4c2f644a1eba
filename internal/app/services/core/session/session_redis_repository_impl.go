package session

import (
	"context"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type sessionRedisRepository struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

// NewSessionRedisRepository stores verification sessions as JSON with a
// sliding expiry that is renewed on every save.
func NewSessionRedisRepository(redisRepository contracts.RedisRepository, ttl time.Duration) contracts.SessionRepository {
	return &sessionRedisRepository{
		RedisRepository: redisRepository,
		TTL:             ttl,
	}
}

func (repo *sessionRedisRepository) Get(ctx context.Context, sessionID string) (*models.VerificationSession, error) {
	data, err := repo.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	session := new(models.VerificationSession)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (repo *sessionRedisRepository) Save(ctx context.Context, session *models.VerificationSession) error {
	return repo.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, repo.TTL)
}

func (repo *sessionRedisRepository) Delete(ctx context.Context, sessionID string) error {
	return repo.RedisRepository.Delete(ctx, sessionKey(sessionID))
}

func sessionKey(sessionID string) string {
	return constvars.RedisSessionKeyPrefix + sessionID
}

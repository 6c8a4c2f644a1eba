package session

import (
	"context"
	"testing"
	"time"

	"patient-records-service/internal/app/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) CompareAndDelete(ctx context.Context, key string, value interface{}) (bool, bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

func TestSessionRedisRepository_GetDecodesStoredJSON(t *testing.T) {
	ctx := context.Background()
	redisRepo := new(MockRedisRepository)
	repo := NewSessionRedisRepository(redisRepo, time.Hour)

	stored := models.NewVerificationSession("s1")
	stored.Step = models.StepAwaitingConfirmation
	stored.Candidate = &models.Patient{IDNumber: "P101", Name: "Alice Johnson"}
	data, err := json.Marshal(stored)
	require.NoError(t, err)

	redisRepo.On("Get", ctx, "verification_session:s1").Return(string(data), nil).Once()

	session, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingConfirmation, session.Step)
	assert.Equal(t, "Alice Johnson", session.Candidate.Name)
}

func TestSessionRedisRepository_GetMissing(t *testing.T) {
	ctx := context.Background()
	redisRepo := new(MockRedisRepository)
	repo := NewSessionRedisRepository(redisRepo, time.Hour)

	redisRepo.On("Get", ctx, "verification_session:s1").Return("", nil).Once()

	session, err := repo.Get(ctx, "s1")
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionRedisRepository_SaveUsesTTL(t *testing.T) {
	ctx := context.Background()
	redisRepo := new(MockRedisRepository)
	repo := NewSessionRedisRepository(redisRepo, 30*time.Minute)
	session := models.NewVerificationSession("s1")

	redisRepo.On("Set", ctx, "verification_session:s1", session, 30*time.Minute).Return(nil).Once()
	redisRepo.On("Delete", ctx, "verification_session:s1").Return(nil).Once()

	require.NoError(t, repo.Save(ctx, session))
	require.NoError(t, repo.Delete(ctx, "s1"))
	redisRepo.AssertExpectations(t)
}

func TestSessionMemoryRepository_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionMemoryRepository(time.Hour)

	session := models.NewVerificationSession("s1")
	session.Candidate = &models.Patient{IDNumber: "P101"}
	require.NoError(t, repo.Save(ctx, session))

	session.Candidate.Name = "mutated after save"

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, got.Candidate.Name)

	require.NoError(t, repo.Delete(ctx, "s1"))
	got, err = repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionMemoryRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionMemoryRepository(time.Minute).(*sessionMemoryRepository)
	now := time.Now()
	repo.now = func() time.Time { return now }

	require.NoError(t, repo.Save(ctx, models.NewVerificationSession("s1")))

	now = now.Add(2 * time.Minute)
	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionMemoryRepository_Sweep(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionMemoryRepository(time.Minute).(*sessionMemoryRepository)
	start := time.Now()
	repo.now = func() time.Time { return start }

	require.NoError(t, repo.Save(ctx, models.NewVerificationSession("old")))
	repo.now = func() time.Time { return start.Add(50 * time.Second) }
	require.NoError(t, repo.Save(ctx, models.NewVerificationSession("fresh")))

	assert.Equal(t, 1, repo.Sweep(start.Add(90*time.Second)))
	assert.Len(t, repo.sessions, 1)
	assert.Contains(t, repo.sessions, "fresh")
}

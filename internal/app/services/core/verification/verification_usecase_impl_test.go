package verification

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"patient-records-service/internal/app/config"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/app/services/core/identifiers"
	"patient-records-service/internal/app/services/core/patients"
	"patient-records-service/internal/app/services/core/session"
	"patient-records-service/internal/app/services/shared/locker"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type MockOTPNotifier struct {
	mock.Mock
}

func (m *MockOTPNotifier) SendOTP(ctx context.Context, phone, code string, expiresAt time.Time) error {
	args := m.Called(ctx, phone, code, expiresAt)
	return args.Error(0)
}

type fixture struct {
	usecase  *verificationUsecase
	notifier *MockOTPNotifier
	now      time.Time
	codes    []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	internalConfig := &config.InternalConfig{
		App: config.App{
			SessionLockExpiredTimeInSeconds:  5,
			OTPExpiredTimeInMinutes:          5,
			OTPHashCost:                      bcrypt.MinCost,
			OTPDemoEcho:                      true,
			RecordsRevealDelayInMilliseconds: 1000,
		},
	}
	memory := patients.NewPatientMemoryRepository(patients.SamplePatients(constvars.IdentifierSchemeNationalID))
	notifier := new(MockOTPNotifier)
	notifier.On("SendOTP", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	f := &fixture{notifier: notifier, now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	f.usecase = NewVerificationUsecase(
		session.NewSessionMemoryRepository(time.Hour),
		locker.NewMemoryLocker(),
		patients.NewPatientUsecase(memory, memory, zap.NewNop()),
		identifiers.New(constvars.IdentifierSchemeNationalID),
		notifier,
		internalConfig,
		zap.NewNop(),
	).(*verificationUsecase)
	f.usecase.now = func() time.Time { return f.now }

	next := 100000
	f.usecase.generateOTP = func() (string, error) {
		next++
		code := fmt.Sprintf("%06d", next)
		f.codes = append(f.codes, code)
		return code, nil
	}
	return f
}

func (f *fixture) lastCode() string {
	return f.codes[len(f.codes)-1]
}

func (f *fixture) toAwaitingCode(t *testing.T, ctx context.Context) {
	t.Helper()
	_, err := f.usecase.SubmitID(ctx, "s1", "0211120351080")
	require.NoError(t, err)
	_, err = f.usecase.Confirm(ctx, "s1")
	require.NoError(t, err)
}

func TestSubmitID_AdvancesToConfirmation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	state, err := f.usecase.SubmitID(ctx, "s1", "021112-0351080")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingConfirmation, state.Step)
	assert.Equal(t, "Alice Johnson", state.PatientName)
	assert.Equal(t, "Patient found: Alice Johnson", state.Message)
}

func TestSubmitID_RejectionsKeepState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for input, code := range map[string]string{
		"":              exceptions.CodeIdentifierEmpty,
		" \t ":          exceptions.CodeIdentifierEmpty,
		"123":           exceptions.CodeIdentifierLength,
		"0000000000000": exceptions.CodeIdentifierInvalid,
		"9901011234567": exceptions.CodePatientNotFound,
	} {
		_, err := f.usecase.SubmitID(ctx, "s1", input)
		assert.True(t, exceptions.HasCode(err, code), "input %q: %v", input, err)

		status, err := f.usecase.Status(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, models.StepAwaitingID, status.Step)
	}
}

func TestConfirm_IssuesCodeAndDelivers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.toAwaitingCode(t, ctx)

	status, err := f.usecase.Status(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingCode, status.Step)
	require.NotNil(t, status.CodeExpiresAt)
	assert.Equal(t, f.now.Add(5*time.Minute), *status.CodeExpiresAt)

	f.notifier.AssertCalled(t, "SendOTP", mock.Anything, "+27-82-123-4567", f.lastCode(), f.now.Add(5*time.Minute))
}

func TestConfirm_MessageEchoesCodeInDemoMode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.usecase.SubmitID(ctx, "s1", "0211120351080")
	require.NoError(t, err)

	state, err := f.usecase.Confirm(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "OTP sent to +27-82-123-4567. Code: "+f.lastCode()+" (Demo)", state.Message)
}

func TestConfirm_WrongStep(t *testing.T) {
	f := newFixture(t)

	_, err := f.usecase.Confirm(context.Background(), "s1")
	assert.True(t, exceptions.HasCode(err, exceptions.CodeWrongStep))
}

func TestConfirm_DeliveryFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.usecase.SubmitID(ctx, "s1", "0211120351080")
	require.NoError(t, err)

	f.notifier.ExpectedCalls = nil
	f.notifier.On("SendOTP", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("queue down"))

	_, err = f.usecase.Confirm(ctx, "s1")
	require.Error(t, err)

	status, err := f.usecase.Status(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingConfirmation, status.Step)
}

func TestDeny_ReturnsToAwaitingID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.usecase.SubmitID(ctx, "s1", "0211120351080")
	require.NoError(t, err)

	state, err := f.usecase.Deny(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingID, state.Step)
	assert.Empty(t, state.PatientName)
	assert.Equal(t, constvars.PatientDeniedMessage, state.Message)
}

func TestSubmitCode_MatchBeforeExpiryAuthenticates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.toAwaitingCode(t, ctx)

	f.now = f.now.Add(4*time.Minute + 59*time.Second)
	state, err := f.usecase.SubmitCode(ctx, "s1", f.lastCode())
	require.NoError(t, err)
	assert.Equal(t, models.StepAuthenticated, state.Step)
	assert.Equal(t, constvars.OTPVerifiedMessage, state.Message)

	session, err := f.usecase.AuthenticatedSession(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, session.RecordsVisibleAt)
	assert.Equal(t, f.now.Add(time.Second), *session.RecordsVisibleAt)
	assert.Empty(t, session.CodeHash)
}

func TestSubmitCode_AfterExpiryReportsExpired(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.toAwaitingCode(t, ctx)

	f.now = f.now.Add(5*time.Minute + time.Second)
	_, err := f.usecase.SubmitCode(ctx, "s1", f.lastCode())
	assert.True(t, exceptions.HasCode(err, exceptions.CodeOTPExpired))

	status, err := f.usecase.Status(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingCode, status.Step)

	_, err = f.usecase.AuthenticatedSession(ctx, "s1")
	assert.True(t, exceptions.HasCode(err, exceptions.CodeNotAuthenticated))
}

func TestSubmitCode_EmptyAndMismatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.toAwaitingCode(t, ctx)

	_, err := f.usecase.SubmitCode(ctx, "s1", "  ")
	assert.True(t, exceptions.HasCode(err, exceptions.CodeOTPEmpty))

	_, err = f.usecase.SubmitCode(ctx, "s1", "999999")
	assert.True(t, exceptions.HasCode(err, exceptions.CodeOTPInvalid))

	status, err := f.usecase.Status(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingCode, status.Step)
}

func TestResend_InvalidatesPreviousCode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.toAwaitingCode(t, ctx)
	first := f.lastCode()

	state, err := f.usecase.Resend(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingCode, state.Step)
	second := f.lastCode()
	require.NotEqual(t, first, second)

	_, err = f.usecase.SubmitCode(ctx, "s1", first)
	assert.True(t, exceptions.HasCode(err, exceptions.CodeOTPInvalid))

	state, err = f.usecase.SubmitCode(ctx, "s1", second)
	require.NoError(t, err)
	assert.Equal(t, models.StepAuthenticated, state.Step)
}

func TestResend_RenewsExpiry(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.toAwaitingCode(t, ctx)

	f.now = f.now.Add(6 * time.Minute)
	_, err := f.usecase.SubmitCode(ctx, "s1", f.lastCode())
	require.True(t, exceptions.HasCode(err, exceptions.CodeOTPExpired))

	_, err = f.usecase.Resend(ctx, "s1")
	require.NoError(t, err)

	state, err := f.usecase.SubmitCode(ctx, "s1", f.lastCode())
	require.NoError(t, err)
	assert.Equal(t, models.StepAuthenticated, state.Step)
}

func TestLogout_ClearsSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.toAwaitingCode(t, ctx)
	_, err := f.usecase.SubmitCode(ctx, "s1", f.lastCode())
	require.NoError(t, err)

	require.NoError(t, f.usecase.Logout(ctx, "s1"))

	status, err := f.usecase.Status(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingID, status.Step)
	assert.Empty(t, status.PatientName)

	_, err = f.usecase.AuthenticatedSession(ctx, "s1")
	assert.True(t, exceptions.HasCode(err, exceptions.CodeNotAuthenticated))
}

func TestSubmitCode_ConcurrentAttemptsAuthenticateOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.toAwaitingCode(t, ctx)
	code := f.lastCode()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.usecase.SubmitCode(ctx, "s1", code); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}

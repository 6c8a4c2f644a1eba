package records

import (
	"bytes"
	"context"
	"testing"
	"time"

	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/dto/responses"
	"patient-records-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockVerificationUsecase struct {
	mock.Mock
}

func (m *MockVerificationUsecase) SubmitID(ctx context.Context, sessionID, rawID string) (*responses.VerificationState, error) {
	return nil, nil
}

func (m *MockVerificationUsecase) Confirm(ctx context.Context, sessionID string) (*responses.VerificationState, error) {
	return nil, nil
}

func (m *MockVerificationUsecase) Deny(ctx context.Context, sessionID string) (*responses.VerificationState, error) {
	return nil, nil
}

func (m *MockVerificationUsecase) SubmitCode(ctx context.Context, sessionID, code string) (*responses.VerificationState, error) {
	return nil, nil
}

func (m *MockVerificationUsecase) Resend(ctx context.Context, sessionID string) (*responses.VerificationState, error) {
	return nil, nil
}

func (m *MockVerificationUsecase) Logout(ctx context.Context, sessionID string) error {
	return nil
}

func (m *MockVerificationUsecase) Status(ctx context.Context, sessionID string) (*responses.VerificationState, error) {
	return nil, nil
}

func (m *MockVerificationUsecase) AuthenticatedSession(ctx context.Context, sessionID string) (*models.VerificationSession, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.VerificationSession)
	return session, args.Error(1)
}

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) Lookup(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientUsecase) AppendItems(ctx context.Context, patientID string, items []models.FolderItem) error {
	args := m.Called(ctx, patientID, items)
	return args.Error(0)
}

func authenticatedSession(visibleAt time.Time) *models.VerificationSession {
	return &models.VerificationSession{
		SessionID:        "s1",
		Step:             models.StepAuthenticated,
		Candidate:        &models.Patient{IDNumber: "0211120351080", Name: "Alice Johnson"},
		RecordsVisibleAt: &visibleAt,
	}
}

func TestGetRecords_WaitsUntilVisible(t *testing.T) {
	ctx := context.Background()
	verification := new(MockVerificationUsecase)
	patientUsecase := new(MockPatientUsecase)
	usecase := NewRecordUsecase(verification, patientUsecase, zap.NewNop())

	visibleAt := time.Now().Add(60 * time.Millisecond)
	verification.On("AuthenticatedSession", ctx, "s1").Return(authenticatedSession(visibleAt), nil).Once()
	patientUsecase.On("Lookup", ctx, "0211120351080").Return(&models.Patient{IDNumber: "0211120351080", Name: "Alice Johnson"}, nil).Once()

	view, err := usecase.GetRecords(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, time.Now().Before(visibleAt))
	assert.Equal(t, "Alice Johnson", view.Name)
}

func TestGetRecords_CancelledWhileWaiting(t *testing.T) {
	verification := new(MockVerificationUsecase)
	patientUsecase := new(MockPatientUsecase)
	usecase := NewRecordUsecase(verification, patientUsecase, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	verification.On("AuthenticatedSession", ctx, "s1").Return(authenticatedSession(time.Now().Add(time.Hour)), nil).Once()

	_, err := usecase.GetRecords(ctx, "s1")
	require.Error(t, err)
	patientUsecase.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
}

func TestGetRecords_RequiresAuthentication(t *testing.T) {
	ctx := context.Background()
	verification := new(MockVerificationUsecase)
	usecase := NewRecordUsecase(verification, new(MockPatientUsecase), zap.NewNop())

	verification.On("AuthenticatedSession", ctx, "s1").Return(nil, exceptions.ErrNotAuthenticated(nil)).Once()

	_, err := usecase.GetRecords(ctx, "s1")
	assert.True(t, exceptions.HasCode(err, exceptions.CodeNotAuthenticated))
}

func TestRenderHTML(t *testing.T) {
	usecase := NewRecordUsecase(new(MockVerificationUsecase), new(MockPatientUsecase), zap.NewNop())
	view := Render(&models.Patient{
		Name:     "Alice <Johnson>",
		IDNumber: "0211120351080",
		Folder: []models.FolderItem{
			{Type: models.FolderItemTypeDocument, Title: "Local scan", Content: "blob:abc"},
			{Type: models.FolderItemTypeDocument, Title: "Note", Content: "Allergic to penicillin"},
		},
	})

	var buf bytes.Buffer
	require.NoError(t, usecase.RenderHTML(&buf, view))

	html := buf.String()
	assert.Contains(t, html, "Alice &lt;Johnson&gt;")
	assert.Contains(t, html, `href="../blobs/abc"`)
	assert.Contains(t, html, "Allergic to penicillin")
	assert.Contains(t, html, "DOCUMENT")
}

func TestRenderHTML_Placeholder(t *testing.T) {
	usecase := NewRecordUsecase(new(MockVerificationUsecase), new(MockPatientUsecase), zap.NewNop())

	var buf bytes.Buffer
	require.NoError(t, usecase.RenderHTML(&buf, Render(&models.Patient{Name: "Dana"})))
	assert.Contains(t, buf.String(), "No records found for this patient.")
	assert.NotContains(t, buf.String(), "record-card")
}
